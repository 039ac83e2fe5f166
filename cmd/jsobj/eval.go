package main

import (
	"fmt"

	"github.com/marksantaniello/jsobj/eval"

	"github.com/scott-cotton/cli"
)

func jsEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	code := cfg.Expr
	if code == "" {
		if len(args) == 0 {
			return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
		}
		code = args[0]
		args = args[1:]
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		doc, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := eval.Eval(code, doc)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", arg, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := putObj(cfg.MainConfig, cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}
