package main

import (
	"context"
	"fmt"

	"github.com/marksantaniello/jsobj/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	syms := documentSymbols(doc, doc.node)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// documentSymbols lists the members of a container, one symbol per
// field or element. The root itself gets no symbol, its members are
// the outline's top level.
func documentSymbols(doc *document, node *ir.Node) []protocol.DocumentSymbol {
	var syms []protocol.DocumentSymbol
	switch node.Type {
	case ir.DictType:
		for i, field := range node.Fields {
			syms = append(syms, symbolFor(doc, field, node.Values[i]))
		}
	case ir.ArrayType:
		for i, v := range node.Values {
			syms = append(syms, symbolFor(doc, fmt.Sprintf("[%d]", i), v))
		}
	}
	return syms
}

func symbolFor(doc *document, name string, node *ir.Node) protocol.DocumentSymbol {
	sym := protocol.DocumentSymbol{
		Name:  name,
		Kind:  symbolKind(node),
		Range: doc.rangeOf(node),
	}
	sym.SelectionRange = sym.Range
	if node.Type == ir.DictType || node.Type == ir.ArrayType {
		sym.Children = documentSymbols(doc, node)
	}
	return sym
}

func symbolKind(node *ir.Node) protocol.SymbolKind {
	switch node.Type {
	case ir.DictType:
		return protocol.SymbolKindObject
	case ir.ArrayType:
		return protocol.SymbolKindArray
	case ir.StringType:
		return protocol.SymbolKindString
	case ir.IntegerType, ir.RealType:
		return protocol.SymbolKindNumber
	case ir.BoolType:
		return protocol.SymbolKindBoolean
	default:
		return protocol.SymbolKindNull
	}
}

// rangeOf converts a node's recorded 1-based span to a 0-based
// protocol range. The exclusive protocol end of a container lands just
// past its closing bracket. Scalars span a single character at their
// start.
func (d *document) rangeOf(n *ir.Node) protocol.Range {
	p := d.positions[n]
	if p == nil || p.Line == 0 {
		return protocol.Range{}
	}
	r := protocol.Range{
		Start: protocol.Position{Line: uint32(p.Line - 1), Character: uint32(p.Col - 1)},
	}
	if p.EndLine > 0 {
		r.End = protocol.Position{Line: uint32(p.EndLine - 1), Character: uint32(p.EndCol)}
	} else {
		r.End = protocol.Position{Line: r.Start.Line, Character: r.Start.Character + 1}
	}
	return r
}
