package jsobj

import (
	"strings"
	"testing"

	"github.com/marksantaniello/jsobj/dump"
	"github.com/marksantaniello/jsobj/ir"
)

type patchTest struct {
	doc     string
	patch   string
	res     string
	wantErr bool
}

// Result docs list root keys sorted: the patch engine rebuilds every
// object it traverses from a Go map.
var patchTests = []patchTest{
	{
		doc:   `{"a": 1, "b": 2}`,
		patch: `[{"op": "add", "path": "/c", "value": 3}]`,
		res:   `{"a": 1, "b": 2, "c": 3}`,
	},
	{
		doc:   `{"a": 1, "b": 2}`,
		patch: `[{"op": "remove", "path": "/b"}]`,
		res:   `{"a": 1}`,
	},
	{
		doc:   `{"a": 1}`,
		patch: `[{"op": "replace", "path": "/a", "value": "x"}]`,
		res:   `{"a": "x"}`,
	},
	{
		doc:   `{"xs": [1, 2, 3]}`,
		patch: `[{"op": "add", "path": "/xs/1", "value": 9}]`,
		res:   `{"xs": [1, 9, 2, 3]}`,
	},
	{
		doc:   `{"xs": [1, 2, 3]}`,
		patch: `[{"op": "remove", "path": "/xs/0"}]`,
		res:   `{"xs": [2, 3]}`,
	},
	{
		doc:   `{"a": {"deep": true}}`,
		patch: `[{"op": "move", "from": "/a", "path": "/z"}]`,
		res:   `{"z": {"deep": true}}`,
	},
	{
		doc:   `{"a": 1}`,
		patch: `[{"op": "copy", "from": "/a", "path": "/b"}]`,
		res:   `{"a": 1, "b": 1}`,
	},
	{
		doc: `{"a": 2}`,
		patch: `[{"op": "test", "path": "/a", "value": 2},
		         {"op": "add", "path": "/ok", "value": true}]`,
		res: `{"a": 2, "ok": true}`,
	},
	{
		doc:     `{"a": 2}`,
		patch:   `[{"op": "test", "path": "/a", "value": 3}]`,
		wantErr: true,
	},
	{
		doc:     `{"a": 1}`,
		patch:   `not json`,
		wantErr: true,
	},
}

func TestPatch(t *testing.T) {
	for i := range patchTests {
		test := &patchTests[i]
		doc, err := ParseBytes([]byte(test.doc))
		if err != nil {
			t.Errorf("test %d: decoding doc: %v", i, err)
			continue
		}
		got, err := Patch(doc, []byte(test.patch))
		if err != nil {
			if !test.wantErr {
				t.Errorf("test %d: unexpected error %v", i, err)
			}
			continue
		}
		if test.wantErr {
			t.Errorf("test %d: expected an error", i)
			continue
		}
		want, err := ParseBytes([]byte(test.res))
		if err != nil {
			t.Errorf("test %d: decoding result: %v", i, err)
			continue
		}
		if !ir.Equal(got, want) {
			t.Errorf("test %d:\ngot\n%swant\n%s", i,
				dump.MustString(got), dump.MustString(want))
		}
	}
}

// Subtrees no operation touches come back in original key order even
// though traversed objects are rebuilt sorted.
func TestPatchUntouchedOrder(t *testing.T) {
	doc, err := ParseBytes([]byte(`{"m": {"z": 1, "y": 2}, "a": 0}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Patch(doc, []byte(`[{"op": "add", "path": "/b", "value": 1}]`))
	if err != nil {
		t.Fatal(err)
	}
	keys := make([]string, 0, got.Len())
	for i := range got.Len() {
		keys = append(keys, got.Key(i))
	}
	if strings.Join(keys, ",") != "a,b,m" {
		t.Errorf("root keys: %v", keys)
	}
	m := got.Get("m")
	if m.Key(0) != "z" || m.Key(1) != "y" {
		t.Errorf("m keys reordered: %q, %q", m.Key(0), m.Key(1))
	}
}

func TestPatchNode(t *testing.T) {
	doc, err := ParseBytes([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	patch := ir.FromSlice([]*ir.Node{ir.FromKeyVals(
		ir.KeyVal{Key: "op", Val: ir.FromString("replace")},
		ir.KeyVal{Key: "path", Val: ir.FromString("/a")},
		ir.KeyVal{Key: "value", Val: ir.FromFloat(1.5)},
	)})
	got, err := PatchNode(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := got.Get("a").AsFloat64(); !ok || v != 1.5 {
		t.Errorf("a: got %v, %t", v, ok)
	}
}
