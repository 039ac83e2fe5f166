// Package jspath provides the parsed form of path expressions such as
// "a.b[1]" used to address nodes in a document tree.
//
// A path is a linked list of segments. Each segment is either a
// dictionary key or an array index:
//
//   - "a.b" → key "a", then key "b"
//   - "a[0]" → key "a", then index 0
//   - "" → the root (a nil *Path)
//
// A backslash before '.' or '[' keeps that byte inside a key instead of
// ending the segment. The backslash is not stripped: the segment for
// "a\.b" is the four byte key `a\.b`, and lookups use it verbatim.
// Indices are parsed leniently with the usual base prefixes accepted
// (0x, 0o, 0b, and a leading 0 for octal).
package jspath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPath = errors.New("path syntax error")

// Path is one segment of a parsed path expression. Exactly one of Key
// and Index is set; Next is nil on the last segment.
type Path struct {
	Key   *string
	Index *int
	Next  *Path
}

// Parse parses a path expression into its segment list. The empty path
// parses to nil, which addresses the root.
func Parse(path string) (*Path, error) {
	if path == "" {
		return nil, nil
	}
	root := &Path{}
	if err := parseFrag(path, true, root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, first bool, parent *Path) error {
	switch {
	case frag[0] == '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("%w: expected '[' <index> ']'", ErrPath)
		}
		index, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], false, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case frag[0] == '.' || first:
		if frag[0] == '.' {
			frag = frag[1:]
		}
		field, rest := parseField(frag)
		parent.Key = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, false, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("%w: expected '.' or '[', got %q", ErrPath, frag[0])
	}
}

// parseIndex parses a bracketed array index. Base prefixes are
// accepted; an empty or otherwise malformed index is an error.
func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid array index %q", ErrPath, is)
	}
	return int(u64), nil
}

// parseField scans a key segment. It stops at the first '.' or '[' not
// preceded by a backslash; escaping backslashes stay in the key.
func parseField(frag string) (field, rest string) {
	i := 0
	for i < len(frag) {
		if frag[i] == '\\' && i+1 < len(frag) && (frag[i+1] == '.' || frag[i+1] == '[') {
			i += 2
			continue
		}
		if frag[i] == '.' || frag[i] == '[' {
			break
		}
		i++
	}
	return frag[:i], frag[i:]
}

// String returns the path expression for p. Keys are emitted verbatim,
// indices in decimal, so String canonicalizes index spellings and a
// leading dot but otherwise round-trips through Parse.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Key != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(*x.Key)
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// Child returns p extended by a key segment. p is not modified.
func (p *Path) Child(key string) *Path {
	return p.append(&Path{Key: &key})
}

// At returns p extended by an index segment. p is not modified.
func (p *Path) At(index int) *Path {
	return p.append(&Path{Index: &index})
}

func (p *Path) append(seg *Path) *Path {
	if p == nil {
		return seg
	}
	res := p.clone()
	last := res
	for last.Next != nil {
		last = last.Next
	}
	last.Next = seg
	return res
}

func (p *Path) clone() *Path {
	if p == nil {
		return nil
	}
	res := &Path{Next: p.Next.clone()}
	if p.Key != nil {
		k := *p.Key
		res.Key = &k
	}
	if p.Index != nil {
		i := *p.Index
		res.Index = &i
	}
	return res
}

// Len returns the number of segments.
func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}
