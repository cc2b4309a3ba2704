package lsp

import (
	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/check"
	"github.com/kpumuk/bagelcore/internal/printer"
	"github.com/kpumuk/bagelcore/internal/source"
	"github.com/kpumuk/bagelcore/internal/types"
	"github.com/kpumuk/bagelcore/internal/walk"
)

// Hover resolves the node at pos and renders its inferred type, or nil
// if pos lands on a node the type engine has nothing to say about.
func Hover(doc *Document, pos Position) (*Hover, error) {
	if doc == nil || doc.Module == nil {
		return nil, ErrDocumentNotOpen
	}
	li := source.NewLineIndex(doc.Code)
	off, err := li.OffsetForPoint(source.Point{Line: pos.Line, Column: pos.Character})
	if err != nil {
		return nil, err
	}
	n := walk.FindNodeAt(doc.Module, off)
	if n == nil {
		return nil, nil
	}

	var ty types.Type
	switch node := n.(type) {
	case ast.Expression:
		ctx := check.RootContext(doc.Module)
		ty = types.SimplifyType(ctx, types.InferType(ctx, node))
	case ast.TypeExpression:
		ctx := check.RootContext(doc.Module)
		ty = types.SimplifyType(ctx, types.ResolveType(ctx, node))
	default:
		return nil, nil
	}

	span := n.Span()
	startPt, err := li.OffsetToPoint(span.Start)
	if err != nil {
		return nil, err
	}
	endPt, err := li.OffsetToPoint(span.End)
	if err != nil {
		return nil, err
	}
	return &Hover{
		Contents: printer.DisplayType(ty),
		Range: &Range{
			Start: Position{Line: startPt.Line, Character: startPt.Column},
			End:   Position{Line: endPt.Line, Character: endPt.Column},
		},
	}, nil
}
