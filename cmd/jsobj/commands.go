package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 4}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jsobj").
		WithSynopsis("jsobj [opts] [command] [opts] [files]").
		WithDescription("jsobj is a tool for working with json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			MatchCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("reformat json documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return reformat(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get document elements from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff json documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <matchobj> [files]").
		WithDescription("print documents matching a pattern document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> [files]").
		WithDescription("apply a json patch to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e expr] [files]").
		WithDescription("evaluate an expression against documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}
