package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Integers and reals share a rank and compare numerically; when the
// values are equal the integer sorts first.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerType, RealType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case DictType:
		return compareDicts(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Integer,Real < String < Array < Dict
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntegerType, RealType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case DictType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Type == IntegerType && b.Type == IntegerType {
		return cmp.Compare(a.Int64, b.Int64)
	}
	if c := cmp.Compare(numValue(a), numValue(b)); c != 0 {
		return c
	}
	return cmp.Compare(numSubRank(a), numSubRank(b))
}

func numValue(n *Node) float64 {
	if n.Type == IntegerType {
		return float64(n.Int64)
	}
	return n.Float64
}

func numSubRank(n *Node) int {
	if n.Type == IntegerType {
		return 0
	}
	return 1
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareDicts(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
