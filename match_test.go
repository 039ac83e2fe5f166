package jsobj

import (
	"testing"

	"github.com/marksantaniello/jsobj/ir"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		doc     *ir.Node
		pattern *ir.Node
		want    bool
	}{
		{"equal ints", ir.FromInt(1), ir.FromInt(1), true},
		{"unequal ints", ir.FromInt(0), ir.FromInt(1), false},
		{"int vs real", ir.FromInt(3), ir.FromFloat(3), false},
		{"strings", ir.FromString("s"), ir.FromString("s"), true},
		{"null matches anything",
			ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromInt(1)}),
			ir.Null(), true},
		{"subset dict",
			ir.FromKeyVals(
				ir.KeyVal{Key: "a", Val: ir.FromString("b")},
				ir.KeyVal{Key: "c", Val: ir.FromString("d")},
			),
			ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromString("b")}),
			true},
		{"superset pattern",
			ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromString("b")}),
			ir.FromKeyVals(
				ir.KeyVal{Key: "a", Val: ir.FromString("b")},
				ir.KeyVal{Key: "c", Val: ir.FromString("d")},
			),
			false},
		{"field wildcard",
			ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromString("b")}),
			ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.Null()}),
			true},
		{"missing field",
			ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromString("b")}),
			ir.FromKeyVals(ir.KeyVal{Key: "z", Val: ir.Null()}),
			false},
		{"empty pattern dict",
			ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromInt(1)}),
			ir.NewDict(), true},
		{"arrays equal",
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
			true},
		{"array length",
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
			ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
			false},
		{"array element",
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(3)}),
			false},
		{"nested",
			ir.FromKeyVals(ir.KeyVal{Key: "m", Val: ir.FromKeyVals(
				ir.KeyVal{Key: "x", Val: ir.FromInt(1)},
				ir.KeyVal{Key: "y", Val: ir.FromInt(2)},
			)}),
			ir.FromKeyVals(ir.KeyVal{Key: "m", Val: ir.FromKeyVals(
				ir.KeyVal{Key: "y", Val: ir.FromInt(2)},
			)}),
			true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Match(test.doc, test.pattern); got != test.want {
				t.Errorf("got %t, want %t", got, test.want)
			}
		})
	}
}
