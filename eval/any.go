package eval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/marksantaniello/jsobj/ir"
)

// ToAny lowers a tree to plain Go values: map[string]any, []any,
// int64, float64, string, bool, nil. Dictionary insertion order is
// not representable in a Go map; use MarshalJSON where order matters.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.DictType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.IntegerType:
		return node.Int64
	case ir.RealType:
		return node.Float64
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("type")
	}
}

// FromAny lifts plain Go values into a tree. Maps come out with keys
// in sorted order. Values outside the direct set (structs, ...) round
// trip through encoding/json.
func FromAny(v any) (*ir.Node, error) {
	switch v := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return v.Clone(), nil
	case bool:
		return ir.FromBool(v), nil
	case string:
		return ir.FromString(v), nil
	case int:
		return ir.FromInt(int64(v)), nil
	case int8:
		return ir.FromInt(int64(v)), nil
	case int16:
		return ir.FromInt(int64(v)), nil
	case int32:
		return ir.FromInt(int64(v)), nil
	case int64:
		return ir.FromInt(v), nil
	case uint:
		return ir.FromInt(int64(v)), nil
	case uint8:
		return ir.FromInt(int64(v)), nil
	case uint16:
		return ir.FromInt(int64(v)), nil
	case uint32:
		return ir.FromInt(int64(v)), nil
	case uint64:
		if v > 1<<63-1 {
			return ir.FromFloat(float64(v)), nil
		}
		return ir.FromInt(int64(v)), nil
	case float32:
		return ir.FromFloat(float64(v)), nil
	case float64:
		return ir.FromFloat(v), nil
	case json.Number:
		return fromNumber(v)
	case []any:
		res := ir.NewArray()
		for _, elt := range v {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Append(y)
		}
		return res, nil
	case []*ir.Node:
		res := ir.NewArray()
		for _, elt := range v {
			res.Append(elt.Clone())
		}
		return res, nil
	case map[string]any:
		res := ir.NewDict()
		for _, k := range slices.Sorted(maps.Keys(v)) {
			y, err := FromAny(v[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, y)
		}
		return res, nil
	case map[string]*ir.Node:
		m := make(map[string]any, len(v))
		for k, n := range v {
			m[k] = n
		}
		return FromAny(m)
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cannot lift %T: %w", v, err)
		}
		dec := json.NewDecoder(bytes.NewReader(d))
		dec.UseNumber()
		var plain any
		if err := dec.Decode(&plain); err != nil {
			return nil, err
		}
		return FromAny(plain)
	}
}

func fromNumber(v json.Number) (*ir.Node, error) {
	if !strings.ContainsAny(v.String(), ".eE") {
		i, err := v.Int64()
		if err == nil {
			return ir.FromInt(i), nil
		}
	}
	f, err := v.Float64()
	if err != nil {
		return nil, err
	}
	return ir.FromFloat(f), nil
}

// MarshalJSON renders a tree as strict JSON, preserving dictionary
// insertion order. Strings escape per encoding/json, so the output is
// accepted by any JSON reader; non-finite reals are an error.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	var b bytes.Buffer
	if err := writeJSON(&b, node); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, node *ir.Node) error {
	switch node.Type {
	case ir.DictType:
		b.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			kd, err := json.Marshal(f)
			if err != nil {
				return err
			}
			b.Write(kd)
			b.WriteByte(':')
			if err := writeJSON(b, node.Values[i]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
		return nil
	case ir.ArrayType:
		b.WriteByte('[')
		for i, elt := range node.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(b, elt); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		b.Write(d)
		return nil
	case ir.IntegerType:
		b.WriteString(strconv.FormatInt(node.Int64, 10))
		return nil
	case ir.RealType:
		if math.IsNaN(node.Float64) || math.IsInf(node.Float64, 0) {
			return fmt.Errorf("cannot marshal %v", node.Float64)
		}
		// keep .0 on integral reals so reparsing yields a real again
		s := strconv.FormatFloat(node.Float64, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		b.WriteString(s)
		return nil
	case ir.BoolType:
		b.WriteString(strconv.FormatBool(node.Bool))
		return nil
	case ir.NullType:
		b.WriteString("null")
		return nil
	default:
		panic("type")
	}
}
