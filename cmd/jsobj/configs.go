package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marksantaniello/jsobj"
	"github.com/marksantaniello/jsobj/dump"
	"github.com/marksantaniello/jsobj/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='output indent width'"`
	Lax    bool `cli:"name=k aliases=keep desc='report syntax errors to stderr and keep going'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Query string `cli:"name=q desc='select this dotted path before output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []jsobj.ParseOption {
	if !cfg.Lax {
		return nil
	}
	return []jsobj.ParseOption{
		jsobj.WithErrorFunc(func(line, col uint, msg string) bool {
			fmt.Fprintf(os.Stderr, "%d:%d: %s\n", line, col, msg)
			return true
		}),
	}
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.Option {
	res := []dump.Option{
		dump.WithIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, dump.WithColors(dump.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, dump.WithColors(dump.NewColors()))
		return res
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='expression to evaluate, instead of the first argument'"`

	Eval *cli.Command
}
