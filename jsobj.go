// Package jsobj parses JSON documents into value trees, addresses
// them with path expressions, and renders them back out.
package jsobj

import (
	"fmt"
	"io"
	"os"

	"github.com/marksantaniello/jsobj/ir"
	"github.com/marksantaniello/jsobj/scan"
	"github.com/marksantaniello/jsobj/stream"
)

type parseConfig struct {
	buildOpts []stream.BuildOption
	scanOpts  []scan.Option
}

// ParseOption configures the Parse entry points.
type ParseOption func(*parseConfig)

// WithErrorFunc installs the syntax error predicate. The predicate is
// called once per error with a 1-based position; returning true
// continues the parse, false aborts it. Without a predicate the first
// error aborts.
func WithErrorFunc(f stream.ErrorFunc) ParseOption {
	return func(c *parseConfig) {
		c.buildOpts = append(c.buildOpts, stream.WithErrorFunc(f))
	}
}

// WithMaxDepth bounds container nesting during the scan.
func WithMaxDepth(n int) ParseOption {
	return func(c *parseConfig) {
		c.scanOpts = append(c.scanOpts, scan.WithMaxDepth(n))
	}
}

// ParseBytes parses a JSON document into a value tree. The document
// root must be an object; anything else is an error wrapping ErrRoot.
// An aborted parse returns ErrAborted with no partial tree.
func ParseBytes(d []byte, opts ...ParseOption) (*ir.Node, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	b := stream.NewBuilder(cfg.buildOpts...)
	if err := scan.ScanBytes(d, b, cfg.scanOpts...); err != nil {
		return nil, err
	}
	root, err := b.Root()
	if err != nil {
		return nil, err
	}
	if root.Type != ir.DictType {
		return nil, fmt.Errorf("%w, got %s", ErrRoot, root.Type)
	}
	return root, nil
}

// Parse reads r to the end and parses the contents. The caller owns r.
func Parse(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(d, opts...)
}

// ParseFile parses the JSON document at path. The empty path is an
// error, as is a file that cannot be opened or read.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	if path == "" {
		return nil, fmt.Errorf("no input path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts...)
}
