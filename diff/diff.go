package diff

import (
	"fmt"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/marksantaniello/jsobj/dump"
	"github.com/marksantaniello/jsobj/ir"
	"github.com/marksantaniello/jsobj/ir/jspath"
)

// Op classifies one delta.
type Op int

const (
	OpAdd Op = iota
	OpDelete
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Delta is one difference between two trees. Path addresses the node
// in the to tree for adds and in the from tree for deletes; replaces
// have a node on both sides. The missing side is nil.
type Delta struct {
	Op   Op
	Path *jspath.Path
	From *ir.Node
	To   *ir.Node
}

func (d *Delta) String() string {
	path := d.Path.String()
	if path == "" {
		path = "(root)"
	}
	switch d.Op {
	case OpAdd:
		return fmt.Sprintf("add %s: %s", path, dump.MustString(d.To))
	case OpDelete:
		return fmt.Sprintf("delete %s: %s", path, dump.MustString(d.From))
	default:
		return fmt.Sprintf("replace %s: %s -> %s", path,
			dump.MustString(d.From), dump.MustString(d.To))
	}
}

// Nodes reports the differences between two trees as a flat delta
// list in document order. Equal subtrees contribute nothing; a
// subtree that changed kind or scalar value reports one replace for
// the whole subtree. A dictionary field that moved reports as a
// delete and add pair, since field order is part of the document.
func Nodes(from, to *ir.Node) []Delta {
	var res []Delta
	walk(nil, from, to, &res)
	return res
}

// Reverse returns the deltas describing the opposite direction, in
// reverse order so a sequential reading still makes sense.
func Reverse(ds []Delta) []Delta {
	n := len(ds)
	res := make([]Delta, n)
	for i, d := range ds {
		r := Delta{Path: d.Path, From: d.To, To: d.From}
		switch d.Op {
		case OpAdd:
			r.Op = OpDelete
		case OpDelete:
			r.Op = OpAdd
		default:
			r.Op = OpReplace
		}
		res[n-1-i] = r
	}
	return res
}

func walk(at *jspath.Path, from, to *ir.Node, res *[]Delta) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		*res = append(*res, Delta{Op: OpAdd, Path: at, To: to})
		return
	case to == nil:
		*res = append(*res, Delta{Op: OpDelete, Path: at, From: from})
		return
	case from.Type != to.Type:
		*res = append(*res, Delta{Op: OpReplace, Path: at, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.DictType:
		walkDicts(at, from, to, res)
	case ir.ArrayType:
		walkArrays(at, from, to, res)
	default:
		if ir.Compare(from, to) != 0 {
			*res = append(*res, Delta{Op: OpReplace, Path: at, From: from, To: to})
		}
	}
}

// walkDicts aligns fields by name: each distinct name becomes a rune
// and the two field sequences run through a text diff. Shared names
// recurse on their values, one sided names become deltas.
func walkDicts(at *jspath.Path, from, to *ir.Node, res *[]Delta) {
	fieldRunes := map[string]rune{}
	runeFields := map[rune]string{}
	fromRunes := mapFieldsTo(fieldRunes, runeFields, from)
	toRunes := mapFieldsTo(fieldRunes, runeFields, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				*res = append(*res, Delta{
					Op:   OpDelete,
					Path: at.Child(runeFields[r]),
					From: from.Values[fi],
				})
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				walk(at.Child(runeFields[r]), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				*res = append(*res, Delta{
					Op:   OpAdd,
					Path: at.Child(runeFields[r]),
					To:   to.Values[ti],
				})
				ti++
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

// walkArrays aligns elements by identity: structurally equal elements
// share a rune. A delete run straight before an insert run pairs off
// positionally as changed elements and recurses into the pairs, so an
// edit deep inside one element surfaces as its own delta.
func walkArrays(at *jspath.Path, from, to *ir.Node, res *[]Delta) {
	keyRunes := map[string]rune{}
	fromRunes := mapElemsTo(keyRunes, from)
	toRunes := mapElemsTo(keyRunes, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffEqual:
			n := utf8.RuneCountInString(d.Text)
			fi += n
			ti += n
		case diffpatch.DiffDelete:
			nd := utf8.RuneCountInString(d.Text)
			ni := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ni = utf8.RuneCountInString(diffs[i+1].Text)
				i++
			}
			for nd > 0 && ni > 0 {
				walk(at.At(ti), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
				nd--
				ni--
			}
			for ; nd > 0; nd-- {
				*res = append(*res, Delta{Op: OpDelete, Path: at.At(fi), From: from.Values[fi]})
				fi++
			}
			for ; ni > 0; ni-- {
				*res = append(*res, Delta{Op: OpAdd, Path: at.At(ti), To: to.Values[ti]})
				ti++
			}
		case diffpatch.DiffInsert:
			for range utf8.RuneCountInString(d.Text) {
				*res = append(*res, Delta{Op: OpAdd, Path: at.At(ti), To: to.Values[ti]})
				ti++
			}
		}
	}
}

func mapElemsTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, elt := range node.Values {
		k := dump.MustString(elt)
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}
