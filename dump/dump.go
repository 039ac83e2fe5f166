package dump

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/marksantaniello/jsobj/ir"
)

type EncState struct {
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Dump renders node to w and appends one trailing newline. Nested
// rendering never emits the trailing newline itself.
func Dump(w io.Writer, node *ir.Node, opts ...Option) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := dump1(node, w, es, 0, 0); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// String renders node to a string, exactly the bytes Dump writes.
func String(node *ir.Node, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(buf, node, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// MustString renders node with surrounding space trimmed, for inline
// display.
func MustString(node *ir.Node) string {
	return strings.TrimSpace(String(node))
}

// dump1 renders one node. indent is the node's own leading indent in
// levels, applied only by scalars; containers are positioned by their
// caller and use cindent, the level their children and closing bracket
// hang from.
func dump1(node *ir.Node, w io.Writer, es *EncState, indent, cindent int) error {
	switch node.Type {
	case ir.DictType:
		return dumpDict(node, w, es, cindent)
	case ir.ArrayType:
		return dumpArray(node, w, es, cindent)
	case ir.StringType:
		return dumpString(node, w, es, indent)
	case ir.IntegerType:
		return dumpInteger(node, w, es, indent)
	case ir.RealType:
		return dumpReal(node, w, es, indent)
	case ir.BoolType:
		return dumpBool(node, w, es, indent)
	case ir.NullType:
		return dumpNull(node, w, es, indent)
	default:
		panic("type")
	}
}

func dumpDict(node *ir.Node, w io.Writer, es *EncState, cindent int) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.DictType, SepColor, "{ }"))
	}
	if err := writeString(w, applyColor(es, ir.DictType, SepColor, "{")+"\n"); err != nil {
		return err
	}
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.DictType, SepColor, ",")+"\n"); err != nil {
				return err
			}
		}
		if err := writeIndent(w, es, cindent+1); err != nil {
			return err
		}
		key := `"` + QuoteString(node.Fields[i]) + `"`
		if err := writeString(w, applyColor(es, ir.DictType, FieldColor, key)); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.DictType, SepColor, " : ")); err != nil {
			return err
		}
		// the value renders inline after the colon, so its own indent
		// is zero while its children still nest one level deeper
		if err := dump1(node.Values[i], w, es, 0, cindent+1); err != nil {
			return err
		}
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	if err := writeIndent(w, es, cindent); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.DictType, SepColor, "}"))
}

func dumpArray(node *ir.Node, w io.Writer, es *EncState, cindent int) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, "[ ]"))
	}
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")+"\n"); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ",")+"\n"); err != nil {
				return err
			}
		}
		// scalars indent themselves; containers are positioned here
		if !v.Type.IsLeaf() {
			if err := writeIndent(w, es, cindent+1); err != nil {
				return err
			}
		}
		if err := dump1(v, w, es, cindent+1, cindent+1); err != nil {
			return err
		}
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	if err := writeIndent(w, es, cindent); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func dumpString(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if err := writeIndent(w, es, indent); err != nil {
		return err
	}
	v := `"` + QuoteString(node.String) + `"`
	return writeString(w, applyColor(es, ir.StringType, ValueColor, v))
}

func dumpInteger(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if err := writeIndent(w, es, indent); err != nil {
		return err
	}
	v := strconv.FormatInt(node.Int64, 10)
	return writeString(w, applyColor(es, ir.IntegerType, ValueColor, v))
}

func dumpReal(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if err := writeIndent(w, es, indent); err != nil {
		return err
	}
	v := strconv.FormatFloat(node.Float64, 'g', -1, 64)
	// distinguish 3.0 from 3 so the variant survives a round trip
	if !strings.ContainsAny(v, ".e") {
		v += ".0"
	}
	return writeString(w, applyColor(es, ir.RealType, ValueColor, v))
}

func dumpBool(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if err := writeIndent(w, es, indent); err != nil {
		return err
	}
	v := strconv.FormatBool(node.Bool)
	return writeString(w, applyColor(es, ir.BoolType, ValueColor, v))
}

func dumpNull(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if err := writeIndent(w, es, indent); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
}

func writeIndent(w io.Writer, es *EncState, n int) error {
	if n == 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", n*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
