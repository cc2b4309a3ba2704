package ast

import "github.com/kpumuk/bagelcore/internal/source"

// TypeofType is `typeof expr`: the type of a value expression.
type TypeofType struct {
	base
	Expr Expression
}

func (t *TypeofType) Kind() Kind          { return KindTypeofType }
func (t *TypeofType) children() []Node    { return []Node{t.Expr} }
func (t *TypeofType) isTypeExpression()   {}

// NewTypeofType constructs a TypeofType node.
func NewTypeofType(span source.Span, expr Expression) *TypeofType {
	return &TypeofType{base: newBase(span, nil), Expr: expr}
}

// FunctionType is a function type signature `(T1, T2) => R` with no body.
type FunctionType struct {
	base
	Params     []TypeExpression
	ReturnType TypeExpression
}

func (f *FunctionType) Kind() Kind        { return KindFunctionType }
func (f *FunctionType) isTypeExpression() {}
func (f *FunctionType) children() []Node {
	out := make([]Node, 0, len(f.Params)+1)
	for _, p := range f.Params {
		out = append(out, p)
	}
	return append(out, f.ReturnType)
}

// NewFunctionType constructs a FunctionType node.
func NewFunctionType(span source.Span, params []TypeExpression, ret TypeExpression) *FunctionType {
	return &FunctionType{base: newBase(span, nil), Params: params, ReturnType: ret}
}

// UnionType is `A | B | C`, with an optional leading `|` (not
// semantically significant, just grammar sugar; spec.md §4.D).
type UnionType struct {
	base
	Members []TypeExpression
}

func (u *UnionType) Kind() Kind        { return KindUnionType }
func (u *UnionType) isTypeExpression() {}
func (u *UnionType) children() []Node {
	out := make([]Node, len(u.Members))
	for i, m := range u.Members {
		out[i] = m
	}
	return out
}

// NewUnionType constructs a UnionType node.
func NewUnionType(span source.Span, members []TypeExpression) *UnionType {
	return &UnionType{base: newBase(span, nil), Members: members}
}

// GenericType is a generic abstraction `<P extends Bound, ...>T`.
type GenericType struct {
	base
	Params []*GenericTypeParameter
	Inner  TypeExpression
}

func (g *GenericType) Kind() Kind        { return KindGenericType }
func (g *GenericType) isTypeExpression() {}
func (g *GenericType) children() []Node {
	out := make([]Node, 0, len(g.Params)+1)
	for _, p := range g.Params {
		out = append(out, p)
	}
	return append(out, g.Inner)
}

// NewGenericType constructs a GenericType node.
func NewGenericType(span source.Span, params []*GenericTypeParameter, inner TypeExpression) *GenericType {
	return &GenericType{base: newBase(span, nil), Params: params, Inner: inner}
}

// ParameterizedType is a generic application `T<A1, A2, ...>`.
type ParameterizedType struct {
	base
	Inner TypeExpression
	Args  []TypeExpression
}

func (p *ParameterizedType) Kind() Kind        { return KindParameterizedType }
func (p *ParameterizedType) isTypeExpression() {}
func (p *ParameterizedType) children() []Node {
	out := []Node{p.Inner}
	for _, a := range p.Args {
		out = append(out, a)
	}
	return out
}

// NewParameterizedType constructs a ParameterizedType node.
func NewParameterizedType(span source.Span, inner TypeExpression, args []TypeExpression) *ParameterizedType {
	return &ParameterizedType{base: newBase(span, nil), Inner: inner, Args: args}
}

// PrimitiveKeyword identifies which primitive type keyword a
// PrimitiveType names.
type PrimitiveKeyword string

const (
	PrimitiveString  PrimitiveKeyword = "string"
	PrimitiveNumber  PrimitiveKeyword = "number"
	PrimitiveBoolean PrimitiveKeyword = "boolean"
	PrimitiveUnknown PrimitiveKeyword = "unknown"
)

// PrimitiveType is one of the bare primitive keywords.
type PrimitiveType struct {
	base
	Keyword PrimitiveKeyword
}

func (p *PrimitiveType) Kind() Kind        { return KindPrimitiveType }
func (p *PrimitiveType) isTypeExpression() {}
func (p *PrimitiveType) children() []Node  { return nil }

// NewPrimitiveType constructs a PrimitiveType node.
func NewPrimitiveType(span source.Span, kw PrimitiveKeyword) *PrimitiveType {
	return &PrimitiveType{base: newBase(span, nil), Keyword: kw}
}

// ArrayOfType is a homogeneous array type `T[]` or a fixed-length
// homogeneous array type `T[n]` (spec.md §3: "array-of-T with optional
// length"); distinct from ArrayLiteral's tuple-shaped `[T1, T2]` form.
type ArrayOfType struct {
	base
	Element TypeExpression
	Length  *NumberLiteral // nil if no length was written
}

func (a *ArrayOfType) Kind() Kind        { return KindArrayType }
func (a *ArrayOfType) isTypeExpression() {}
func (a *ArrayOfType) children() []Node {
	if a.Length == nil {
		return []Node{a.Element}
	}
	return []Node{a.Element, a.Length}
}

// NewArrayOfType constructs an ArrayOfType node.
func NewArrayOfType(span source.Span, element TypeExpression, length *NumberLiteral) *ArrayOfType {
	return &ArrayOfType{base: newBase(span, nil), Element: element, Length: length}
}

// NamedType is a reference to a named, in-scope type (a type alias, a
// generic parameter, or a built-in name).
type NamedType struct {
	base
	Name *PlainIdentifier
}

func (n *NamedType) Kind() Kind        { return KindNamedType }
func (n *NamedType) isTypeExpression() {}
func (n *NamedType) children() []Node  { return []Node{n.Name} }

// NewNamedType constructs a NamedType node.
func NewNamedType(span source.Span, name *PlainIdentifier) *NamedType {
	return &NamedType{base: newBase(span, nil), Name: name}
}
