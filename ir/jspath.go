package ir

import (
	"github.com/marksantaniello/jsobj/ir/jspath"
)

// GetPath resolves a parsed path against node. Semantics match
// Traverse: nil for a missing key, an out of range index, or a type
// mismatch at any segment. A nil path resolves to node itself.
func (node *Node) GetPath(p *jspath.Path) *Node {
	if node == nil {
		return nil
	}
	res := node
	for ; p != nil; p = p.Next {
		switch {
		case p.Index != nil:
			if res.Type != ArrayType {
				return nil
			}
			i := *p.Index
			if i < 0 || i >= len(res.Values) {
				return nil
			}
			res = res.Values[i]
		case p.Key != nil:
			if res.Type != DictType {
				return nil
			}
			res = res.Get(*p.Key)
			if res == nil {
				return nil
			}
		default:
			return nil
		}
	}
	return res
}

// JSPath returns node's position in its tree as a parsed path, nil for
// a root. The string form of the result is Path().
func (node *Node) JSPath() *jspath.Path {
	if node.Parent == nil {
		return nil
	}
	prefix := node.Parent.JSPath()
	switch node.Parent.Type {
	case DictType:
		return prefix.Child(node.ParentField)
	case ArrayType:
		return prefix.At(node.ParentIndex)
	default:
		panic("parent but not in container")
	}
}
