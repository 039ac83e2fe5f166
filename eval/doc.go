// Package eval bridges trees to plain Go values and to expressions.
//
// ToAny and FromAny convert between *ir.Node and the generic
// map[string]any / []any / scalar shapes that encoding/json and
// expression engines speak. MarshalJSON renders strict,
// insertion-ordered JSON for interchange with tools that only read
// the standard escapes.
//
// Eval runs an expr-lang expression with the document bound to `doc`:
//
//	res, err := eval.Eval(`doc.servers[0].host`, root)
//
// plus helpers get(path), typeof(path), and getenv(name) closing over
// the document.
package eval
