package main

import (
	"fmt"

	"github.com/marksantaniello/jsobj"
	"github.com/marksantaniello/jsobj/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match document", cli.ErrUsage)
	}
	pattern, err := getMatch(cfg, cc, args[0])
	if err != nil {
		return err
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
		if !jsobj.Match(doc, pattern) {
			continue
		}
		if n > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		n++
		if err := putObj(cfg.MainConfig, cc.Out, doc); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}

func getMatch(cfg *MatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	d, err := getish(cfg.String, cfg.File, cc, arg)
	if err != nil {
		return nil, err
	}
	res, err := decodeDoc(cfg.MainConfig, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding match: %w", err)
	}
	return res, nil
}
