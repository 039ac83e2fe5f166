package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func reformat(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		node, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := putObj(cfg.MainConfig, cc.Out, node); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
