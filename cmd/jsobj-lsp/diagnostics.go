package main

import (
	"context"
	"sync"

	"github.com/marksantaniello/jsobj/debug"
	"github.com/marksantaniello/jsobj/ir"
	"github.com/marksantaniello/jsobj/scan"
	"github.com/marksantaniello/jsobj/stream"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32

	// node is nil when the text never closed its root, positions and
	// diags are filled either way.
	node      *ir.Node
	positions map[*ir.Node]*stream.Pos
	diags     []protocol.Diagnostic
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put parses content once, collecting every syntax error as a
// diagnostic and keeping whatever tree the error recovery produced.
func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	positions := make(map[*ir.Node]*stream.Pos)
	diags := []protocol.Diagnostic{}
	b := stream.NewBuilder(
		stream.WithErrorFunc(func(line, col uint, msg string) bool {
			diags = append(diags, syntaxDiagnostic(line, col, msg))
			return true
		}),
		stream.WithPositions(positions),
	)

	var node *ir.Node
	if err := scan.ScanBytes([]byte(content), b); err == nil {
		node, _ = b.Root()
	}
	if debug.LSP() {
		debug.Logf("put %s v%d: %d diagnostics, tree=%v\n",
			uri, version, len(diags), node != nil)
	}
	ds.docs[uri] = &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		positions: positions,
		diags:     diags,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// syntaxDiagnostic converts a 1-based scan position to a 0-based
// protocol range covering the offending byte.
func syntaxDiagnostic(line, col uint, msg string) protocol.Diagnostic {
	if line > 0 {
		line--
	}
	if col > 0 {
		col--
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  msg,
		Source:   "jsobj",
	}
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: doc.diags,
		})
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	// Apply changes
	content := doc.content
	for _, change := range params.ContentChanges {
		// A zero range means full document replacement
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			// Incremental change
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
