package main

import (
	"context"

	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	pos := params.Position
	line := int(pos.Line)
	col := int(pos.Character)

	// Get the line content up to the cursor
	contentRunes := []rune(doc.content)
	currentLineStart := 0
	currentLine := 0
	for i, r := range contentRunes {
		if currentLine == line {
			currentLineStart = i
			break
		}
		if r == '\n' {
			currentLine++
		}
	}

	lineEnd := currentLineStart + col
	if lineEnd > len(contentRunes) {
		lineEnd = len(contentRunes)
	}
	for i := currentLineStart; i < lineEnd; i++ {
		if contentRunes[i] == '\n' {
			lineEnd = i
			break
		}
	}
	lineContent := string(contentRunes[currentLineStart:lineEnd])

	// The character just before the cursor decides the context
	var last byte
	if len(lineContent) > 0 {
		last = lineContent[len(lineContent)-1]
	}

	completions := []protocol.CompletionItem{}

	// After a key's colon, suggest values
	if last == ':' {
		completions = append(completions,
			protocol.CompletionItem{
				Label:      "null",
				Kind:       protocol.CompletionItemKindValue,
				InsertText: " null",
			},
			protocol.CompletionItem{
				Label:      "empty object",
				Kind:       protocol.CompletionItemKindSnippet,
				InsertText: " { }",
			},
			protocol.CompletionItem{
				Label:      "empty array",
				Kind:       protocol.CompletionItemKindSnippet,
				InsertText: " [ ]",
			},
			protocol.CompletionItem{
				Label:      "empty string",
				Kind:       protocol.CompletionItemKindSnippet,
				InsertText: ` ""`,
			},
		)
	}

	// At an array opener or after a separator, suggest literals
	if last == '[' || last == ',' {
		completions = append(completions,
			protocol.CompletionItem{
				Label:      "null",
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: "null",
			},
			protocol.CompletionItem{
				Label:      "true",
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: "true",
			},
			protocol.CompletionItem{
				Label:      "false",
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: "false",
			},
		)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions,
	}, nil
}
