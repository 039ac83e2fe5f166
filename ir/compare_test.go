package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Integer,Real < String < Array < Dict
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Integer", FromBool(true), FromInt(1), -1},
		{"Real < String", FromFloat(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Dict", FromSlice(nil), NewDict(), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Numbers: integers and reals compare by value, integer first on ties
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Real < Real", FromFloat(1.0), FromFloat(2.0), -1},
		{"Int == Int", FromInt(7), FromInt(7), 0},
		{"Int < Real same value", FromInt(1), FromFloat(1.0), -1},
		{"Real > Int same value", FromFloat(1.0), FromInt(1), 1},
		{"Int < Real by value", FromInt(1), FromFloat(1.5), -1},
		{"Real < Int by value", FromFloat(1.5), FromInt(2), -1},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Dict Comparison
		{"Empty Dict == Empty Dict", NewDict(), NewDict(), 0},
		{"Short Dict < Long Dict",
			FromKeyVals(KeyVal{"a", FromInt(1)}),
			FromKeyVals(KeyVal{"a", FromInt(1)}, KeyVal{"b", FromInt(2)}),
			-1},
		{"Dict Key Comparison",
			FromKeyVals(KeyVal{"a", FromInt(1)}),
			FromKeyVals(KeyVal{"b", FromInt(1)}),
			-1},
		{"Dict Value Comparison",
			FromKeyVals(KeyVal{"a", FromInt(1)}),
			FromKeyVals(KeyVal{"a", FromInt(2)}),
			-1},
		{"Dict Order Matters",
			FromKeyVals(KeyVal{"a", FromInt(1)}, KeyVal{"b", FromInt(2)}),
			FromKeyVals(KeyVal{"b", FromInt(2)}, KeyVal{"a", FromInt(1)}),
			-1},

		// Nil handling
		{"nil < node", nil, Null(), -1},
		{"node > nil", Null(), nil, 1},
		{"nil == nil", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
		})
	}
}
