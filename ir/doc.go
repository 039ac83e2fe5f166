// Package ir provides the in-memory representation of JSON documents
// as a tree of nodes.
//
// # Node Structure
//
// A Node represents a single value. Nodes come in seven variants:
//
//   - NullType: null
//   - BoolType: true or false
//   - IntegerType: 64 bit signed integer
//   - RealType: 64 bit float
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - DictType: key to value entries in insertion order
//
// The Type field discriminates, so narrowing never needs a cast: check
// Type, or use the AsInt64, AsFloat64, AsString, AsBool helpers, which
// report "not this variant" instead of failing.
//
// # Structure Constraints
//
// Dictionaries keep keys in Fields parallel to their values in Values;
// iteration order is insertion order, keys are unique, and lookup is
// case sensitive with no normalization. Arrays use Values alone.
//
// Every attached node carries Parent, ParentIndex, and (under a
// dictionary) ParentField backlinks. Containers own their children
// exclusively: attaching a node that already has a parent panics, which
// keeps trees acyclic by construction. Detach releases a node so it can
// move.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	d := ir.NewDict()
//	d.Set("greeting", s)
//	a := ir.FromSlice([]*ir.Node{n})
//
// # Navigation
//
// Get, At, and Key read containers without error returns; absent means
// nil. Traverse resolves a whole path expression such as "a.b[1]"
// against a tree, again with nil for every kind of failure.
//
// # Thread Safety
//
// Nodes have no internal locking. A fully built tree may be read
// (Traverse, Visit, Compare, encoding) from any number of goroutines;
// mutation (Append, Set, Detach) must be serialized by the caller.
package ir
