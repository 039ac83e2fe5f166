package main

import (
	"fmt"

	libdiff "github.com/marksantaniello/jsobj/diff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	deltas := libdiff.Nodes(a, b)
	if len(deltas) == 0 {
		return nil
	}
	if cfg.Reverse {
		deltas = libdiff.Reverse(deltas)
	}
	for i := range deltas {
		if _, err := fmt.Fprintln(cc.Out, deltas[i].String()); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
