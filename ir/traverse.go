package ir

import (
	"strconv"
	"strings"
)

// Traverse resolves path against the tree rooted at root and returns
// the node it names, or nil when the path does not resolve. It never
// fails hard: malformed paths, missing keys, out of range indices, and
// type mismatches at a segment all come back as nil.
//
// The grammar is small. "[i]" indexes an array. ".key" looks key up in
// a dictionary; the leading dot is optional for the first segment. A
// backslash before '.' or '[' keeps that byte inside the key instead of
// ending it, and the backslash stays in the lookup key: "a\.b" names
// the entry whose key is literally `a\.b`. Indices accept the usual
// base prefixes (0x, 0o, 0b, and a leading 0 for octal).
func Traverse(root *Node, path string) *Node {
	if root == nil {
		return nil
	}
	node := root
	i := 0
	for i < len(path) {
		switch {
		case path[i] == '[':
			if node.Type != ArrayType {
				return nil
			}
			end := strings.IndexByte(path[i+1:], ']')
			if end < 0 {
				return nil
			}
			idx, err := strconv.ParseUint(path[i+1:i+1+end], 0, 64)
			if err != nil {
				return nil
			}
			if idx >= uint64(len(node.Values)) {
				return nil
			}
			node = node.Values[idx]
			i += end + 2
		case path[i] == '.' || i == 0:
			// a bare key is only valid as the first segment
			if path[i] == '.' {
				i++
			}
			if node.Type != DictType {
				return nil
			}
			start := i
			for i < len(path) {
				if path[i] == '\\' && i+1 < len(path) && (path[i+1] == '.' || path[i+1] == '[') {
					i += 2
					continue
				}
				if path[i] == '.' || path[i] == '[' {
					break
				}
				i++
			}
			node = node.Get(path[start:i])
			if node == nil {
				return nil
			}
		default:
			return nil
		}
	}
	return node
}
