package main

import (
	"fmt"

	"github.com/marksantaniello/jsobj/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	n := 0
	for _, arg := range args {
		doc, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res := ir.Traverse(doc, path)
		if res == nil {
			// don't encode anything and don't yell either
			continue
		}
		if n > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		n++
		if err := putObj(cfg.MainConfig, cc.Out, res); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
