package eval

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/marksantaniello/jsobj/ir"
)

func TestAnyRoundTrip(t *testing.T) {
	doc := ir.FromKeyVals(
		ir.KeyVal{Key: "b", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromBool(true),
			ir.Null(),
			ir.FromFloat(2.5),
			ir.FromString("x"),
		})},
	)
	got, err := FromAny(ToAny(doc))
	if err != nil {
		t.Fatal(err)
	}
	// map keys come back sorted
	want := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromBool(true),
			ir.Null(),
			ir.FromFloat(2.5),
			ir.FromString("x"),
		})},
		ir.KeyVal{Key: "b", Val: ir.FromInt(1)},
	)
	if !ir.Equal(got, want) {
		t.Errorf("tree mismatch: compare = %d", ir.Compare(got, want))
	}
}

func TestToAnyScalars(t *testing.T) {
	if v := ToAny(ir.FromInt(7)); v != int64(7) {
		t.Errorf("int: %v (%T)", v, v)
	}
	if v := ToAny(ir.FromFloat(2.5)); v != 2.5 {
		t.Errorf("real: %v (%T)", v, v)
	}
	if v := ToAny(ir.FromString("s")); v != "s" {
		t.Errorf("string: %v (%T)", v, v)
	}
	if v := ToAny(ir.Null()); v != nil {
		t.Errorf("null: %v (%T)", v, v)
	}
}

func TestFromAnyNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *ir.Node
	}{
		{"int", int(3), ir.FromInt(3)},
		{"int32", int32(-9), ir.FromInt(-9)},
		{"uint8", uint8(255), ir.FromInt(255)},
		{"uint64 wide", uint64(math.MaxUint64), ir.FromFloat(1.8446744073709552e+19)},
		{"float32", float32(0.5), ir.FromFloat(0.5)},
		{"number int", json.Number("12"), ir.FromInt(12)},
		{"number real", json.Number("1e3"), ir.FromFloat(1000)},
		{"number wide", json.Number("9223372036854775808"), ir.FromFloat(9.223372036854776e+18)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromAny(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tc.want) {
				t.Errorf("got %v %v, want %v %v", got.Type, got, tc.want.Type, tc.want)
			}
		})
	}
}

func TestFromAnyStruct(t *testing.T) {
	type cfg struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}
	got, err := FromAny(cfg{Host: "h", Port: 80})
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals(
		ir.KeyVal{Key: "host", Val: ir.FromString("h")},
		ir.KeyVal{Key: "port", Val: ir.FromInt(80)},
	)
	if !ir.Equal(got, want) {
		t.Errorf("tree mismatch: compare = %d", ir.Compare(got, want))
	}
}

func TestFromAnyNodePassThrough(t *testing.T) {
	orig := ir.FromKeyVals(ir.KeyVal{Key: "k", Val: ir.FromInt(1)})
	got, err := FromAny(orig)
	if err != nil {
		t.Fatal(err)
	}
	if got == orig {
		t.Error("expected a clone, got the same node")
	}
	if !ir.Equal(got, orig) {
		t.Error("clone differs")
	}
}

func TestMarshalJSONOrder(t *testing.T) {
	doc := ir.FromKeyVals(
		ir.KeyVal{Key: "b", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})},
		ir.KeyVal{Key: "r", Val: ir.FromFloat(3)},
		ir.KeyVal{Key: "s", Val: ir.FromString("x\x01\"")},
	)
	d, err := MarshalJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":1,"a":[true,null],"r":3.0,"s":"x\u0001\""}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}

func TestMarshalJSONNonFinite(t *testing.T) {
	doc := ir.FromSlice([]*ir.Node{ir.FromFloat(math.Inf(1))})
	if _, err := MarshalJSON(doc); err == nil {
		t.Error("no error for +Inf")
	}
}
