package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/marksantaniello/jsobj/debug"
	"github.com/marksantaniello/jsobj/ir"
)

// Eval compiles and runs an expression against a document. The tree
// is exposed to the expression as `doc` in its ToAny lowering, so
// `doc.servers[0].host` reads straight into it; the result is lifted
// back with FromAny.
func Eval(code string, doc *ir.Node) (*ir.Node, error) {
	prg, err := expr.Compile(code, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, map[string]any{"doc": ToAny(doc)})
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %v\n", code, res)
	}
	return FromAny(res)
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			res := ir.Traverse(doc, params[0].(string))
			if res == nil {
				return nil, nil
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("typeof", func(params ...any) (any, error) {
			res := ir.Traverse(doc, params[0].(string))
			if res == nil {
				return "", nil
			}
			return res.Type.String(), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
