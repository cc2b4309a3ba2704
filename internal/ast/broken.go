package ast

import "github.com/kpumuk/bagelcore/internal/source"

// Broken subtree nodes are produced only by explicit backtrack points in
// the parser (internal/combinator's backtrack) and carry the recovery
// error message plus the span of the failed range (spec.md §3 invariant
// 5). They are opaque to the type engine: simplification always maps
// them to the poisoned type, never attempting to interpret Message.
//
// One variant per syntactic position a broken subtree can appear in, so
// each still satisfies the interface the grammar expected there.

// BrokenTypeSubtree stands in for a type expression the parser could not
// parse.
type BrokenTypeSubtree struct {
	base
	Message string
}

func (b *BrokenTypeSubtree) Kind() Kind        { return KindBrokenTypeSubtree }
func (b *BrokenTypeSubtree) isTypeExpression() {}
func (b *BrokenTypeSubtree) children() []Node  { return nil }

// NewBrokenTypeSubtree constructs a BrokenTypeSubtree node.
func NewBrokenTypeSubtree(span source.Span, message string) *BrokenTypeSubtree {
	return &BrokenTypeSubtree{base: newBase(span, nil), Message: message}
}

// BrokenExprSubtree stands in for an expression the parser could not
// parse.
type BrokenExprSubtree struct {
	base
	Message string
}

func (b *BrokenExprSubtree) Kind() Kind     { return KindBrokenExprSubtree }
func (b *BrokenExprSubtree) isExpression()  {}
func (b *BrokenExprSubtree) children() []Node { return nil }

// NewBrokenExprSubtree constructs a BrokenExprSubtree node.
func NewBrokenExprSubtree(span source.Span, message string) *BrokenExprSubtree {
	return &BrokenExprSubtree{base: newBase(span, nil), Message: message}
}

// BrokenStmtSubtree stands in for a statement the parser could not parse.
type BrokenStmtSubtree struct {
	base
	Message string
}

func (b *BrokenStmtSubtree) Kind() Kind       { return KindBrokenStmtSubtree }
func (b *BrokenStmtSubtree) isStatement()     {}
func (b *BrokenStmtSubtree) children() []Node { return nil }

// NewBrokenStmtSubtree constructs a BrokenStmtSubtree node.
func NewBrokenStmtSubtree(span source.Span, message string) *BrokenStmtSubtree {
	return &BrokenStmtSubtree{base: newBase(span, nil), Message: message}
}
