package main

import (
	"bytes"
	"context"

	"github.com/marksantaniello/jsobj/dump"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	// Text with syntax errors keeps its bytes. Error recovery drops the
	// bad members, and a format must not.
	if doc.node == nil || len(doc.diags) > 0 {
		return nil, nil
	}

	formatted := dump.String(doc.node)

	// If content hasn't changed, return empty edits
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	// Calculate line count for the range
	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// Return a single edit that replaces the entire document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
