package ast

import "github.com/kpumuk/bagelcore/internal/source"

// Node is implemented by every AST variant. It is a sealed interface: the
// unexported isNode method means only types in this package can satisfy
// it, which is this tree's stand-in for the exhaustive tagged-union match
// the source language gets natively (spec.md §9).
type Node interface {
	Kind() Kind
	Span() source.Span
	// Parent returns the node's parent, or nil for the module root. Parent
	// back-references are filled by AttachParents after construction
	// (spec.md §3 invariant 2); they must never be followed by a generic
	// walk (spec.md §5 "Resource discipline").
	Parent() Node
	// PrecedingComments returns any comment cluster immediately preceding
	// this node in source order (spec.md §4.D "Comments").
	PrecedingComments() []*Comment

	setParent(Node)
	children() []Node
	isNode()
}

// base is embedded by every concrete node type. It supplies the common
// Span/Parent/PrecedingComments storage; Kind() and children() are
// supplied by each concrete type since they vary per variant.
type base struct {
	span     source.Span
	parent   Node
	leading  []*Comment
}

func (b *base) Span() source.Span              { return b.span }
func (b *base) Parent() Node                    { return b.parent }
func (b *base) PrecedingComments() []*Comment   { return b.leading }
func (b *base) setParent(p Node)                { b.parent = p }
func (b *base) isNode()                         {}

func newBase(span source.Span, leading []*Comment) base {
	return base{span: span, leading: leading}
}

// Comment is a line (// ...) or block (/* ... */) comment cluster entry,
// attached to the node it precedes, or hung off the module for trailing
// module comments (spec.md §4.D).
type Comment struct {
	base
	Text  string // content with delimiters stripped
	Block bool   // true for /* ... */, false for // ...
}

func (c *Comment) Kind() Kind        { return KindComment }
func (c *Comment) children() []Node  { return nil }

// NewComment constructs a Comment node.
func NewComment(span source.Span, text string, block bool) *Comment {
	return &Comment{base: newBase(span, nil), Text: text, Block: block}
}

// PlainIdentifier is a bare identifier token reused across many auxiliary
// positions (import items, generic parameter names, property names,
// markup tag names) where it is not itself an expression or a type
// (spec.md §3 "Auxiliary").
type PlainIdentifier struct {
	base
	Name string
}

func (p *PlainIdentifier) Kind() Kind       { return KindPlainIdentifier }
func (p *PlainIdentifier) children() []Node { return nil }

// NewPlainIdentifier constructs a PlainIdentifier node.
func NewPlainIdentifier(span source.Span, name string, leading []*Comment) *PlainIdentifier {
	return &PlainIdentifier{base: newBase(span, leading), Name: name}
}

// Expression is implemented by every node usable as a value expression.
type Expression interface {
	Node
	isExpression()
}

// TypeExpression is implemented by every node usable as a type
// expression.
type TypeExpression interface {
	Node
	isTypeExpression()
}

// Statement is implemented by every node usable inside a function body
// (spec.md §3 "Statement (only inside function bodies)").
type Statement interface {
	Node
	isStatement()
}

// Declaration is implemented by the three top-level declaration forms.
type Declaration interface {
	Node
	isDeclaration()
}
