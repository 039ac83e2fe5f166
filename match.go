package jsobj

import "github.com/marksantaniello/jsobj/ir"

// Match reports whether doc structurally matches pattern. A Null
// pattern matches any node. A Dictionary pattern matches when every
// one of its fields matches the same field of doc; extra doc fields
// are ignored. An Array pattern matches element-wise at equal length.
// Scalars match on exact type and value.
func Match(doc, pattern *ir.Node) bool {
	if pattern.Type == ir.NullType {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.DictType:
		return matchDict(doc, pattern)
	case ir.ArrayType:
		return matchArray(doc, pattern)
	default:
		return ir.Compare(doc, pattern) == 0
	}
}

func matchDict(doc, pattern *ir.Node) bool {
	count := 0
	for i, field := range doc.Fields {
		p := pattern.Get(field)
		if p == nil {
			continue
		}
		if !Match(doc.Values[i], p) {
			return false
		}
		count++
	}
	return count == pattern.Len()
}

func matchArray(doc, pattern *ir.Node) bool {
	if doc.Len() != pattern.Len() {
		return false
	}
	for i := range doc.Values {
		if !Match(doc.Values[i], pattern.Values[i]) {
			return false
		}
	}
	return true
}
