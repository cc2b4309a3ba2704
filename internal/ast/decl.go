package ast

import "github.com/kpumuk/bagelcore/internal/source"

// ImportDeclaration is `[export] from '<module>' import { items }`.
type ImportDeclaration struct {
	base
	Exported bool
	From     *StringLiteral
	Items    []*ImportItem
}

func (d *ImportDeclaration) Kind() Kind        { return KindImportDeclaration }
func (d *ImportDeclaration) isDeclaration()    {}
func (d *ImportDeclaration) children() []Node {
	out := []Node{d.From}
	for _, i := range d.Items {
		out = append(out, i)
	}
	return out
}

// NewImportDeclaration constructs an ImportDeclaration node.
func NewImportDeclaration(span source.Span, exported bool, from *StringLiteral, items []*ImportItem, leading []*Comment) *ImportDeclaration {
	d := &ImportDeclaration{base: newBase(span, leading), Exported: exported, From: from, Items: items}
	return d
}

// TypeDeclaration is `[export] type Name[<P...>] = TypeExpr`.
type TypeDeclaration struct {
	base
	Exported bool
	Name     *PlainIdentifier
	Generics []*GenericTypeParameter
	Value    TypeExpression
}

func (d *TypeDeclaration) Kind() Kind     { return KindTypeDeclaration }
func (d *TypeDeclaration) isDeclaration() {}
func (d *TypeDeclaration) children() []Node {
	out := []Node{d.Name}
	for _, g := range d.Generics {
		out = append(out, g)
	}
	return append(out, d.Value)
}

// NewTypeDeclaration constructs a TypeDeclaration node.
func NewTypeDeclaration(span source.Span, exported bool, name *PlainIdentifier, generics []*GenericTypeParameter, value TypeExpression, leading []*Comment) *TypeDeclaration {
	return &TypeDeclaration{base: newBase(span, leading), Exported: exported, Name: name, Generics: generics, Value: value}
}

// VariableDeclaration is `[export] (const|let) nameAndType = expr` at
// module scope.
type VariableDeclaration struct {
	base
	Exported bool
	IsConst  bool
	Target   *NameAndType
	Value    Expression
}

func (d *VariableDeclaration) Kind() Kind     { return KindVariableDeclaration }
func (d *VariableDeclaration) isDeclaration() {}
func (d *VariableDeclaration) children() []Node {
	return []Node{d.Target, d.Value}
}

// NewVariableDeclaration constructs a VariableDeclaration node.
func NewVariableDeclaration(span source.Span, exported, isConst bool, target *NameAndType, value Expression, leading []*Comment) *VariableDeclaration {
	return &VariableDeclaration{base: newBase(span, leading), Exported: exported, IsConst: isConst, Target: target, Value: value}
}
