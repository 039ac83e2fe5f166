package ir

import (
	"testing"

	"github.com/marksantaniello/jsobj/ir/jspath"
)

func TestGetPath(t *testing.T) {
	root := traverseDoc()
	for _, path := range []string{
		"",
		"a",
		"a.b",
		"a.b[1]",
		`a\.b`,
	} {
		t.Run("path "+path, func(t *testing.T) {
			p, err := jspath.Parse(path)
			if err != nil {
				t.Fatal(err)
			}
			want := Traverse(root, path)
			got := root.GetPath(p)
			if want == nil || got == nil {
				t.Fatalf("GetPath(%q) = %v, Traverse = %v", path, got, want)
			}
			if got != want {
				t.Errorf("GetPath(%q) and Traverse disagree", path)
			}
		})
	}

	for _, path := range []string{"a.c", "a.b[3]", "s.x"} {
		t.Run("absent "+path, func(t *testing.T) {
			p, err := jspath.Parse(path)
			if err != nil {
				t.Fatal(err)
			}
			if got := root.GetPath(p); got != nil {
				t.Errorf("GetPath(%q) = %v, want nil", path, got)
			}
		})
	}
}

func TestJSPath(t *testing.T) {
	root := FromKeyVals(
		KeyVal{"a", FromSlice([]*Node{
			FromKeyVals(KeyVal{"b", FromString("v")}),
		})},
	)
	leaf := root.Values[0].Values[0].Values[0]
	p := leaf.JSPath()
	if got := p.String(); got != "a[0].b" {
		t.Errorf("JSPath = %q, want a[0].b", got)
	}
	if got := root.GetPath(p); got != leaf {
		t.Errorf("JSPath does not resolve back to the node")
	}
	if NewDict().JSPath() != nil {
		t.Errorf("root JSPath != nil")
	}
}
