package main

import (
	"fmt"

	"github.com/marksantaniello/jsobj"
	"github.com/marksantaniello/jsobj/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument and files to which to apply it", cli.ErrUsage)
	}
	raw, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	// yaml patches go through the tree form, json ones stay raw
	var patchNode *ir.Node
	if cfg.inFormat().IsYAML() {
		patchNode, err = jsobj.FromYAML(raw)
		if err != nil {
			return fmt.Errorf("error decoding patch: %w", err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		target, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		var res *ir.Node
		if patchNode != nil {
			res, err = jsobj.PatchNode(target, patchNode)
		} else {
			res, err = jsobj.Patch(target, raw)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := putObj(cfg.MainConfig, cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	d, err := getish(cfg.String, cfg.File, cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
