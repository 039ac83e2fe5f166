package eval

import (
	"testing"

	"github.com/marksantaniello/jsobj/ir"
)

func evalDoc() *ir.Node {
	return ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "b", Val: ir.FromSlice([]*ir.Node{
				ir.FromInt(10), ir.FromInt(20), ir.FromInt(30),
			})},
		)},
		ir.KeyVal{Key: "name", Val: ir.FromString("leaf")},
	)
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want *ir.Node
	}{
		{"index", "doc.a.b[1]", ir.FromInt(20)},
		{"field", "doc.name", ir.FromString("leaf")},
		{"arith", "doc.a.b[0] + doc.a.b[2]", ir.FromInt(40)},
		{"array", "doc.a.b", ir.FromSlice([]*ir.Node{
			ir.FromInt(10), ir.FromInt(20), ir.FromInt(30),
		})},
		{"filter", "filter(doc.a.b, # > 10)", ir.FromSlice([]*ir.Node{
			ir.FromInt(20), ir.FromInt(30),
		})},
		{"len", "len(doc.a.b)", ir.FromInt(3)},
		{"get", `get("a.b[2]")`, ir.FromInt(30)},
		{"get miss", `get("a.zzz")`, ir.Null()},
		{"typeof", `typeof("a.b")`, ir.FromString("Array")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Eval(tc.expr, evalDoc())
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tc.want) {
				t.Errorf("tree mismatch: compare = %d", ir.Compare(got, tc.want))
			}
		})
	}
}

func TestEvalGetenv(t *testing.T) {
	t.Setenv("JSOBJ_EVAL_TEST", "v")
	got, err := Eval(`getenv("JSOBJ_EVAL_TEST")`, ir.NewDict())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, ir.FromString("v")) {
		t.Errorf("got %v", got)
	}
}

func TestEvalCompileError(t *testing.T) {
	if _, err := Eval("doc.(", ir.NewDict()); err == nil {
		t.Error("no error for bad expression")
	}
}

func TestEvalRuntimeError(t *testing.T) {
	if _, err := Eval("doc.a.b[99]", evalDoc()); err == nil {
		t.Error("no error for out of range index")
	}
}
