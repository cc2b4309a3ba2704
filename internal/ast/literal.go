package ast

import "github.com/kpumuk/bagelcore/internal/source"

// ObjectLiteral is the structurally polymorphic object/record shape:
// `{ k: v, ...spread }`. The same node doubles as a value expression
// (Context == ContextExpression) and a structural record type
// (Context == ContextTypeExpression) — spec.md §3's "structurally
// polymorphic" design, option (i) from spec.md §9 Design Notes. Entries
// holds *KeyValue and *Spread children in source order.
type ObjectLiteral struct {
	base
	Context Context
	Entries []Node
}

func (o *ObjectLiteral) Kind() Kind {
	if o.Context == ContextTypeExpression {
		return KindObjectType
	}
	return KindObjectLiteral
}
func (o *ObjectLiteral) children() []Node    { return o.Entries }
func (o *ObjectLiteral) isExpression()       {}
func (o *ObjectLiteral) isTypeExpression()   {}

// NewObjectLiteral constructs an ObjectLiteral node.
func NewObjectLiteral(span source.Span, ctx Context, entries []Node, leading []*Comment) *ObjectLiteral {
	return &ObjectLiteral{base: newBase(span, leading), Context: ctx, Entries: entries}
}

// ArrayLiteral is the structurally polymorphic array/tuple shape:
// `[a, b, ...spread]`, doubling as a value expression or a fixed-length
// tuple type the same way ObjectLiteral does.
type ArrayLiteral struct {
	base
	Context  Context
	Elements []Node // each is an Expression/TypeExpression or *Spread
}

func (a *ArrayLiteral) Kind() Kind {
	if a.Context == ContextTypeExpression {
		return KindArrayType
	}
	return KindArrayLiteral
}
func (a *ArrayLiteral) children() []Node  { return a.Elements }
func (a *ArrayLiteral) isExpression()     {}
func (a *ArrayLiteral) isTypeExpression() {}

// NewArrayLiteral constructs an ArrayLiteral node.
func NewArrayLiteral(span source.Span, ctx Context, elements []Node, leading []*Comment) *ArrayLiteral {
	return &ArrayLiteral{base: newBase(span, leading), Context: ctx, Elements: elements}
}

// StringLiteral is a single-quoted string; as a type expression it is the
// literal string singleton type.
type StringLiteral struct {
	base
	Context Context
	Value   string
}

func (s *StringLiteral) Kind() Kind {
	if s.Context == ContextTypeExpression {
		return KindLiteralType
	}
	return KindStringLiteral
}
func (s *StringLiteral) children() []Node  { return nil }
func (s *StringLiteral) isExpression()     {}
func (s *StringLiteral) isTypeExpression() {}

// NewStringLiteral constructs a StringLiteral node.
func NewStringLiteral(span source.Span, ctx Context, value string, leading []*Comment) *StringLiteral {
	return &StringLiteral{base: newBase(span, leading), Context: ctx, Value: value}
}

// NumberLiteral is a `[0-9]+` literal, parsed to host floating point; as a
// type expression it is the literal number singleton type.
type NumberLiteral struct {
	base
	Context Context
	Value   float64
}

func (n *NumberLiteral) Kind() Kind {
	if n.Context == ContextTypeExpression {
		return KindLiteralType
	}
	return KindNumberLiteral
}
func (n *NumberLiteral) children() []Node  { return nil }
func (n *NumberLiteral) isExpression()     {}
func (n *NumberLiteral) isTypeExpression() {}

// NewNumberLiteral constructs a NumberLiteral node.
func NewNumberLiteral(span source.Span, ctx Context, value float64, leading []*Comment) *NumberLiteral {
	return &NumberLiteral{base: newBase(span, leading), Context: ctx, Value: value}
}

// BooleanLiteral is `true`/`false`; as a type expression it is the
// literal boolean singleton type.
type BooleanLiteral struct {
	base
	Context Context
	Value   bool
}

func (b *BooleanLiteral) Kind() Kind {
	if b.Context == ContextTypeExpression {
		return KindLiteralType
	}
	return KindBooleanLiteral
}
func (b *BooleanLiteral) children() []Node  { return nil }
func (b *BooleanLiteral) isExpression()     {}
func (b *BooleanLiteral) isTypeExpression() {}

// NewBooleanLiteral constructs a BooleanLiteral node.
func NewBooleanLiteral(span source.Span, ctx Context, value bool, leading []*Comment) *BooleanLiteral {
	return &BooleanLiteral{base: newBase(span, leading), Context: ctx, Value: value}
}

// NilLiteral is `nil`.
type NilLiteral struct {
	base
	Context Context
}

func (n *NilLiteral) Kind() Kind {
	if n.Context == ContextTypeExpression {
		return KindLiteralType
	}
	return KindNilLiteral
}
func (n *NilLiteral) children() []Node  { return nil }
func (n *NilLiteral) isExpression()     {}
func (n *NilLiteral) isTypeExpression() {}

// NewNilLiteral constructs a NilLiteral node.
func NewNilLiteral(span source.Span, ctx Context, leading []*Comment) *NilLiteral {
	return &NilLiteral{base: newBase(span, leading), Context: ctx}
}

// RangeNode is `start..end` (at least one endpoint present), doubling as
// a numeric range value expression and a numeric range type expression
// (spec.md §3 "Range type"; glossary).
type RangeNode struct {
	base
	Context Context
	Start   *NumberLiteral // nil if open on the left
	End     *NumberLiteral // nil if open on the right
}

func (r *RangeNode) Kind() Kind {
	if r.Context == ContextTypeExpression {
		return KindRangeType
	}
	return KindRangeExpr
}
func (r *RangeNode) children() []Node {
	var out []Node
	if r.Start != nil {
		out = append(out, r.Start)
	}
	if r.End != nil {
		out = append(out, r.End)
	}
	return out
}
func (r *RangeNode) isExpression()     {}
func (r *RangeNode) isTypeExpression() {}

// NewRangeNode constructs a RangeNode node.
func NewRangeNode(span source.Span, ctx Context, start, end *NumberLiteral) *RangeNode {
	return &RangeNode{base: newBase(span, nil), Context: ctx, Start: start, End: end}
}
