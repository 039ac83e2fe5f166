package dump

import (
	"strings"
	"testing"

	"github.com/marksantaniello/jsobj/ir"
)

func TestDumpDocument(t *testing.T) {
	doc := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(10),
			ir.FromString("s"),
		})},
		ir.KeyVal{Key: "e", Val: ir.NewArray()},
		ir.KeyVal{Key: "d", Val: ir.NewDict()},
	)
	want := `{
    "a" : [
        10,
        "s"
    ],
    "e" : [ ],
    "d" : { }
}
`
	if got := String(doc); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpNestedContainers(t *testing.T) {
	doc := ir.FromSlice([]*ir.Node{
		ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
		ir.FromKeyVals(ir.KeyVal{Key: "k", Val: ir.Null()}),
	})
	want := `[
    [
        1
    ],
    {
        "k" : null
    }
]
`
	if got := String(doc); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpScalars(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"integer", ir.FromInt(10), "10\n"},
		{"negative integer", ir.FromInt(-3), "-3\n"},
		{"string", ir.FromString("hi"), "\"hi\"\n"},
		{"bool true", ir.FromBool(true), "true\n"},
		{"bool false", ir.FromBool(false), "false\n"},
		{"null", ir.Null(), "null\n"},
		{"real keeps point", ir.FromFloat(3), "3.0\n"},
		{"real fraction", ir.FromFloat(0.25), "0.25\n"},
		{"real negative", ir.FromFloat(-2.5), "-2.5\n"},
		{"real exponent", ir.FromFloat(1e21), "1e+21\n"},
		{"real small exponent", ir.FromFloat(1e-7), "1e-07\n"},
		{"real whole hundred", ir.FromFloat(100), "100.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.node); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDumpIndentOption(t *testing.T) {
	doc := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
	)
	want := "{\n  \"a\" : [\n    1\n  ]\n}\n"
	if got := String(doc, WithIndent(2)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDumpTrailingNewline(t *testing.T) {
	for _, node := range []*ir.Node{
		ir.FromInt(1),
		ir.NewDict(),
		ir.FromSlice([]*ir.Node{ir.Null()}),
	} {
		got := String(node)
		if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
			t.Errorf("%q does not end in exactly one newline", got)
		}
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromInt(7)); got != "7" {
		t.Errorf("MustString = %q", got)
	}
	if got := MustString(ir.NewDict()); got != "{ }" {
		t.Errorf("MustString = %q", got)
	}
}
