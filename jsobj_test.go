package jsobj

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/marksantaniello/jsobj/dump"
	"github.com/marksantaniello/jsobj/ir"
)

func TestParseBytes(t *testing.T) {
	doc, err := ParseBytes([]byte(
		`{"a": {"b": [1, 2.5, "x"]}, "on": true, "none": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := ir.Traverse(doc, "a.b[0]").AsInt64(); !ok || v != 1 {
		t.Errorf("a.b[0]: got %d, %t", v, ok)
	}
	if v, ok := ir.Traverse(doc, "a.b[1]").AsFloat64(); !ok || v != 2.5 {
		t.Errorf("a.b[1]: got %v, %t", v, ok)
	}
	if v, ok := ir.Traverse(doc, "a.b[2]").AsString(); !ok || v != "x" {
		t.Errorf("a.b[2]: got %q, %t", v, ok)
	}
	if v, ok := ir.Traverse(doc, "on").AsBool(); !ok || !v {
		t.Errorf("on: got %t, %t", v, ok)
	}
	if !ir.Traverse(doc, "none").IsNull() {
		t.Errorf("none: not null")
	}
	if ir.Traverse(doc, "a.missing") != nil {
		t.Errorf("a.missing: want nil")
	}
}

func TestParseArrayRootRejected(t *testing.T) {
	_, err := ParseBytes([]byte(`[1, 2]`))
	if !errors.Is(err, ErrRoot) {
		t.Errorf("got %v, want ErrRoot", err)
	}
}

func TestParseAbortsOnFirstError(t *testing.T) {
	_, err := ParseBytes([]byte(`{"a": &}`))
	if !errors.Is(err, ErrAborted) {
		t.Errorf("got %v, want ErrAborted", err)
	}
}

func TestParseErrorFuncContinues(t *testing.T) {
	var lines []uint
	doc, err := ParseBytes([]byte("{\"a\": &,\n\"b\": 2}"),
		WithErrorFunc(func(line, col uint, msg string) bool {
			lines = append(lines, line)
			return true
		}))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != 1 {
		t.Errorf("error lines: %v", lines)
	}
	if v, ok := ir.Traverse(doc, "b").AsInt64(); !ok || v != 2 {
		t.Errorf("b: got %d, %t", v, ok)
	}
}

func TestParseIncomplete(t *testing.T) {
	_, err := ParseBytes([]byte(`{"a": {"b": 1}`),
		WithErrorFunc(func(uint, uint, string) bool { return true }))
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("got %v, want ErrIncomplete", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	_, err := ParseBytes([]byte(`{"a": {"b": {"c": 1}}}`), WithMaxDepth(2))
	if !errors.Is(err, ErrAborted) {
		t.Errorf("got %v, want ErrAborted", err)
	}
	if _, err := ParseBytes([]byte(`{"a": {"b": 1}}`), WithMaxDepth(2)); err != nil {
		t.Errorf("depth 2 doc at limit 2: %v", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"a": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := doc.Get("a").AsInt64(); !ok || v != 1 {
		t.Errorf("a: got %d, %t", v, ok)
	}
	if _, err := ParseFile(""); err == nil {
		t.Errorf("empty path: want error")
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Errorf("absent file: want error")
	}
}

func TestRoundTrip(t *testing.T) {
	d, err := os.ReadFile(filepath.Join("testdata", "roundtrip.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	ar := txtar.Parse(d)
	for _, f := range ar.Files {
		t.Run(f.Name, func(t *testing.T) {
			doc, err := ParseBytes(f.Data)
			if err != nil {
				t.Fatal(err)
			}
			text := dump.String(doc)
			re, err := ParseBytes([]byte(text))
			if err != nil {
				t.Fatalf("reparse: %v\n%s", err, text)
			}
			if !ir.Equal(doc, re) {
				t.Errorf("round trip changed the tree:\n%s", text)
			}
			if text2 := dump.String(re); text2 != text {
				t.Errorf("dump not stable:\ngot\n%swant\n%s", text2, text)
			}
		})
	}
}
