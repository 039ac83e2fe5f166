package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a tree, scalar or container. Type discriminates;
// the payload fields after it are meaningful only for their own variant.
//
// Containers own their children exclusively. Append and Set refuse a
// node that is already attached somewhere; Detach releases one for
// reattachment.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields holds dictionary keys, parallel to Values. Arrays use
	// Values alone.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: RealType, Float64: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func NewDict() *Node {
	return &Node{Type: DictType}
}

// FromSlice builds an array owning each element of vs in order.
func FromSlice(vs []*Node) *Node {
	res := NewArray()
	res.Values = make([]*Node, 0, len(vs))
	for _, v := range vs {
		res.Append(v)
	}
	return res
}

// FromMap builds a dictionary from m with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := NewDict()
	res.Fields = make([]string, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a dictionary from ordered key value pairs,
// preserving their order.
func FromKeyVals(kvs ...KeyVal) *Node {
	res := NewDict()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func (y *Node) attach(v *Node, i int, field string) {
	if v.Parent != nil {
		panic("node already attached")
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
}

func release(v *Node) {
	v.Parent = nil
	v.ParentIndex = 0
	v.ParentField = ""
}

// Append adds v at the end of an array, taking sole ownership of it.
// Appending to a non-array or appending a node that already has a
// parent panics.
func (y *Node) Append(v *Node) {
	if y.Type != ArrayType {
		panic("append to " + y.Type.String())
	}
	y.attach(v, len(y.Values), "")
	y.Values = append(y.Values, v)
}

// Set binds key to v in a dictionary, taking sole ownership of v. A key
// set twice keeps its original position and takes the new value; the
// displaced value is released. Setting on a non-dictionary or setting a
// node that already has a parent panics.
func (y *Node) Set(key string, v *Node) {
	if y.Type != DictType {
		panic("set on " + y.Type.String())
	}
	for i := range y.Fields {
		if y.Fields[i] != key {
			continue
		}
		old := y.Values[i]
		y.attach(v, i, key)
		y.Values[i] = v
		release(old)
		return
	}
	y.attach(v, len(y.Values), key)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Get returns the value bound to field, or nil when absent. Lookup is
// case sensitive and exact. Non-dictionaries have no fields and return
// nil for every key.
func (y *Node) Get(field string) *Node {
	if y == nil || y.Type != DictType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// At returns the i'th element of an array, or nil when i is out of
// range or y is not an array.
func (y *Node) At(i int) *Node {
	if y == nil || y.Type != ArrayType {
		return nil
	}
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Len returns the number of elements or entries of a container, 0 for
// scalars and nil.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	return len(y.Values)
}

// Key returns the i'th dictionary key, or "" when out of range or y is
// not a dictionary.
func (y *Node) Key(i int) string {
	if y == nil || y.Type != DictType {
		return ""
	}
	if i < 0 || i >= len(y.Fields) {
		return ""
	}
	return y.Fields[i]
}

// Detach removes y from its parent container, renumbering later
// siblings, and returns y unattached. Detaching a root is a no-op.
func (y *Node) Detach() *Node {
	p := y.Parent
	if p == nil {
		return y
	}
	i := y.ParentIndex
	p.Values = slices.Delete(p.Values, i, i+1)
	if p.Type == DictType {
		p.Fields = slices.Delete(p.Fields, i, i+1)
	}
	for j := i; j < len(p.Values); j++ {
		p.Values[j].ParentIndex = j
	}
	release(y)
	return y
}

func (y *Node) AsInt64() (int64, bool) {
	if y == nil || y.Type != IntegerType {
		return 0, false
	}
	return y.Int64, true
}

func (y *Node) AsFloat64() (float64, bool) {
	if y == nil || y.Type != RealType {
		return 0, false
	}
	return y.Float64, true
}

func (y *Node) AsString() (string, bool) {
	if y == nil || y.Type != StringType {
		return "", false
	}
	return y.String, true
}

func (y *Node) AsBool() (bool, bool) {
	if y == nil || y.Type != BoolType {
		return false, false
	}
	return y.Bool, true
}

func (y *Node) IsNull() bool {
	return y != nil && y.Type == NullType
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep-copies y into dst and returns dst. The copy keeps y's
// parent linkage so a clone can stand in for the original; children are
// fresh nodes owned by the copy.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values == nil {
		dst.Values = nil
		return dst
	}
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		c := &Node{}
		yv.CloneTo(c)
		c.Parent = dst
		dst.Values[i] = c
	}
	return dst
}

// Visit walks the tree rooted at y in document order. f runs twice per
// node, before and after its children (isPost false, then true). A
// false pre return skips the children; an error stops the walk.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Path returns y's position in its tree in the traversal grammar:
// dictionary steps as ".field" (no leading dot on the first segment),
// array steps as "[i]". Field names are emitted verbatim; a name with a
// bare '.' or '[' in it is not addressable by Traverse, which keeps
// backslashes in lookup keys.
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	switch y.Parent.Type {
	case DictType:
		prefix := y.Parent.Path()
		if prefix == "" {
			return y.ParentField
		}
		return prefix + "." + y.ParentField
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Equal reports structural equality: same variants, scalar values,
// element order, and key order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
