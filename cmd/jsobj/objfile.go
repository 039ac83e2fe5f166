package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marksantaniello/jsobj"
	"github.com/marksantaniello/jsobj/dump"
	"github.com/marksantaniello/jsobj/ir"

	"github.com/scott-cotton/cli"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return decodeDoc(cfg, d)
}

func decodeDoc(cfg *MainConfig, d []byte) (*ir.Node, error) {
	if cfg.inFormat().IsYAML() {
		return jsobj.FromYAML(d)
	}
	return jsobj.ParseBytes(d, cfg.parseOpts()...)
}

// putObj renders one result, honoring the global -q selection and the
// output format.
func putObj(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if cfg.Query != "" {
		sel := ir.Traverse(node, cfg.Query)
		if sel == nil {
			return fmt.Errorf("no value at %q", cfg.Query)
		}
		node = sel
	}
	if cfg.outFormat().IsYAML() {
		d, err := jsobj.ToYAML(node)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return dump.Dump(w, node, cfg.dumpOpts(w)...)
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}

// getish resolves an inline argument that is a document by default
// (or with -s) and a file path with -f.
func getish(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}

	var r io.Reader
	if s {
		r = strings.NewReader(arg)
	} else if f {
		switch arg {
		case "-":
			r = os.Stdin
		default:
			fl, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer fl.Close()
			r = fl
		}
	} else {
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return d, nil
}
