// Package dump renders node trees as indented text.
//
// # Usage
//
//	node := ir.FromKeyVals(
//	    ir.KeyVal{Key: "name", Val: ir.FromString("alice")},
//	    ir.KeyVal{Key: "age", Val: ir.FromInt(30)},
//	)
//	err := dump.Dump(os.Stdout, node)
//
//	// or with options
//	s := dump.String(node, dump.WithIndent(2))
//
// The output is indented one level per nesting depth (4 spaces by
// default), children separated by ",\n", closing brackets on their own
// line at the container's indent, and empty containers inline as "[ ]"
// and "{ }". Dictionary entries render as "key" : value. The top level
// call appends one trailing newline.
//
// String escaping quotes '"' and '\' with a backslash and renders every
// byte below 0x20 as a backslash followed by two lowercase hex digits,
// so the output of a tree holding arbitrary control bytes is still one
// printable line per value. Standard JSON readers accept everything but
// that control byte form; the scan package reads it back.
//
// # Related Packages
//
//   - github.com/marksantaniello/jsobj/ir - node trees
//   - github.com/marksantaniello/jsobj/scan - reads dumped text back
package dump
