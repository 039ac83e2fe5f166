package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/marksantaniello/jsobj/ir"
	"github.com/marksantaniello/jsobj/stream"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	// Scan positions are 1-based, protocol positions 0-based
	pos := params.Position
	line := uint(pos.Line) + 1
	col := uint(pos.Character) + 1

	targetNode := findNodeAtPosition(doc.node, doc.positions, line, col)
	if targetNode == nil {
		return nil, nil
	}

	hoverText := buildHoverText(targetNode)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtPosition returns the node whose recorded position sits on
// line, closest to col. Containers spanning the line only win when no
// child starts nearer the cursor.
func findNodeAtPosition(root *ir.Node, positions map[*ir.Node]*stream.Pos, line, col uint) *ir.Node {
	var bestNode *ir.Node
	var bestPos *stream.Pos

	var visit func(*ir.Node)
	visit = func(node *ir.Node) {
		if node == nil {
			return
		}

		if pos := positions[node]; pos != nil && pos.Line == line {
			if bestPos == nil || absDelta(pos.Col, col) < absDelta(bestPos.Col, col) {
				bestNode = node
				bestPos = pos
			}
		}

		for _, child := range node.Values {
			visit(child)
		}
	}

	visit(root)
	return bestNode
}

func absDelta(a, b uint) uint {
	if a < b {
		return b - a
	}
	return a - b
}

func buildHoverText(node *ir.Node) string {
	if node == nil {
		return ""
	}

	var parts []string

	typeInfo := getTypeInfo(node)
	if typeInfo != "" {
		parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo))
	}

	if path := node.Path(); path != "" {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", path))
	}

	valueInfo := getValueInfo(node)
	if valueInfo != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", valueInfo))
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "\n\n")
}

func getTypeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return "boolean"
	case ir.IntegerType:
		return "integer"
	case ir.RealType:
		return "real"
	case ir.StringType:
		return "string"
	case ir.ArrayType:
		return "array"
	case ir.DictType:
		return "object"
	default:
		return "unknown"
	}
}

func getValueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "`null`"
	case ir.BoolType:
		if node.Bool {
			return "`true`"
		}
		return "`false`"
	case ir.IntegerType:
		return fmt.Sprintf("`%d`", node.Int64)
	case ir.RealType:
		return fmt.Sprintf("`%g`", node.Float64)
	case ir.StringType:
		if node.String != "" {
			val := node.String
			if len(val) > 50 {
				val = val[:50] + "..."
			}
			return fmt.Sprintf("`%s`", val)
		}
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.DictType:
		return fmt.Sprintf("object with %d keys", len(node.Values))
	}
	return ""
}
