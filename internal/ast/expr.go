package ast

import "github.com/kpumuk/bagelcore/internal/source"

// PropertyAccess is `subject.name` or `subject[expr]`. The parser
// normalizes `.name` by lifting the identifier into a string-literal
// Property, and `[expr]` by using expr directly as Property (spec.md
// §4.D "Property-access / invocation chains").
type PropertyAccess struct {
	base
	Subject  Expression
	Property Expression
	Optional bool // reserved for a future `?.`; unused by this grammar
}

func (p *PropertyAccess) Kind() Kind      { return KindPropertyAccess }
func (p *PropertyAccess) isExpression()   {}
func (p *PropertyAccess) children() []Node { return []Node{p.Subject, p.Property} }

// NewPropertyAccess constructs a PropertyAccess node.
func NewPropertyAccess(span source.Span, subject, property Expression) *PropertyAccess {
	return &PropertyAccess{base: newBase(span, nil), Subject: subject, Property: property}
}

// AsCast is `expr as Type`.
type AsCast struct {
	base
	Expr   Expression
	Target TypeExpression
}

func (a *AsCast) Kind() Kind       { return KindAsCast }
func (a *AsCast) isExpression()    {}
func (a *AsCast) children() []Node { return []Node{a.Expr, a.Target} }

// NewAsCast constructs an AsCast node.
func NewAsCast(span source.Span, expr Expression, target TypeExpression) *AsCast {
	return &AsCast{base: newBase(span, nil), Expr: expr, Target: target}
}

// FunctionExpr is a function expression. Exactly one of BodyExpr /
// BodyStatements is set: an expression body (`=> expr`) or a statement
// block body (`{ ...statements }`), per spec.md §3's Statement category
// being valid only inside function bodies.
type FunctionExpr struct {
	base
	IsAsync       bool
	IsPure        bool
	Generics      []*GenericTypeParameter
	Params        []*NameAndType
	ReturnType    TypeExpression // nil if not annotated
	BodyExpr      Expression     // nil if the body is a statement block
	BodyStatements []Statement   // nil if the body is an expression
}

func (f *FunctionExpr) Kind() Kind     { return KindFunctionExpr }
func (f *FunctionExpr) isExpression()  {}
func (f *FunctionExpr) children() []Node {
	var out []Node
	for _, g := range f.Generics {
		out = append(out, g)
	}
	for _, p := range f.Params {
		out = append(out, p)
	}
	if f.ReturnType != nil {
		out = append(out, f.ReturnType)
	}
	if f.BodyExpr != nil {
		out = append(out, f.BodyExpr)
	}
	for _, s := range f.BodyStatements {
		out = append(out, s)
	}
	return out
}

// NewFunctionExpr constructs a FunctionExpr node.
func NewFunctionExpr(span source.Span, isAsync, isPure bool, generics []*GenericTypeParameter, params []*NameAndType, ret TypeExpression, bodyExpr Expression, bodyStmts []Statement) *FunctionExpr {
	return &FunctionExpr{
		base:           newBase(span, nil),
		IsAsync:        isAsync,
		IsPure:         isPure,
		Generics:       generics,
		Params:         params,
		ReturnType:     ret,
		BodyExpr:       bodyExpr,
		BodyStatements: bodyStmts,
	}
}

// Invocation is `subject(args)`, `await subject(args)`, or
// `detach subject(args)` — at most one of Await/Detach may be set, and
// the leading keyword (when present) attaches to the outermost
// invocation of a property-access/invocation chain (spec.md §4.D).
type Invocation struct {
	base
	Subject  Expression
	TypeArgs []TypeExpression
	Args     []Expression
	Await    bool
	Detach   bool
}

func (i *Invocation) Kind() Kind     { return KindInvocation }
func (i *Invocation) isExpression()  {}
func (i *Invocation) children() []Node {
	out := []Node{i.Subject}
	for _, t := range i.TypeArgs {
		out = append(out, t)
	}
	for _, a := range i.Args {
		out = append(out, a)
	}
	return out
}

// NewInvocation constructs an Invocation node.
func NewInvocation(span source.Span, subject Expression, typeArgs []TypeExpression, args []Expression, await, detach bool) *Invocation {
	return &Invocation{base: newBase(span, nil), Subject: subject, TypeArgs: typeArgs, Args: args, Await: await, Detach: detach}
}

// BinaryOperation is `left op right`, the result of left-folding a chain
// of same-precedence binary operators (spec.md §4.D "Binary operations").
type BinaryOperation struct {
	base
	Left  Expression
	Op    string
	Right Expression
}

func (b *BinaryOperation) Kind() Kind     { return KindBinaryOperation }
func (b *BinaryOperation) isExpression()  {}
func (b *BinaryOperation) children() []Node { return []Node{b.Left, b.Right} }

// NewBinaryOperation constructs a BinaryOperation node.
func NewBinaryOperation(span source.Span, left Expression, op string, right Expression) *BinaryOperation {
	return &BinaryOperation{base: newBase(span, nil), Left: left, Op: op, Right: right}
}

// SwitchExpr is `switch subject { case Type { outcome } ... default { outcome } }`.
type SwitchExpr struct {
	base
	Subject Expression
	Cases   []*SwitchCase
	Default Expression // nil if absent
}

func (s *SwitchExpr) Kind() Kind    { return KindSwitchExpr }
func (s *SwitchExpr) isExpression() {}
func (s *SwitchExpr) children() []Node {
	out := []Node{s.Subject}
	for _, c := range s.Cases {
		out = append(out, c)
	}
	if s.Default != nil {
		out = append(out, s.Default)
	}
	return out
}

// NewSwitchExpr constructs a SwitchExpr node.
func NewSwitchExpr(span source.Span, subject Expression, cases []*SwitchCase, def Expression) *SwitchExpr {
	return &SwitchExpr{base: newBase(span, nil), Subject: subject, Cases: cases, Default: def}
}

// IfElseExpr is `if cond1 { out1 } else if cond2 { out2 } else { out3 }`.
type IfElseExpr struct {
	base
	Cases   []*IfElseCase
	Default Expression // nil if absent
}

func (i *IfElseExpr) Kind() Kind    { return KindIfElseExpr }
func (i *IfElseExpr) isExpression() {}
func (i *IfElseExpr) children() []Node {
	out := make([]Node, 0, len(i.Cases)+1)
	for _, c := range i.Cases {
		out = append(out, c)
	}
	if i.Default != nil {
		out = append(out, i.Default)
	}
	return out
}

// NewIfElseExpr constructs an IfElseExpr node.
func NewIfElseExpr(span source.Span, cases []*IfElseCase, def Expression) *IfElseExpr {
	return &IfElseExpr{base: newBase(span, nil), Cases: cases, Default: def}
}

// MarkupExpr is an open/close tagged tree with props: `<Tag prop={v}>...children...</Tag>`.
type MarkupExpr struct {
	base
	OpenTag  *PlainIdentifier
	CloseTag *PlainIdentifier // checker verifies this matches OpenTag
	Props    []*KeyValue
	Children []Expression
}

func (m *MarkupExpr) Kind() Kind    { return KindMarkupExpr }
func (m *MarkupExpr) isExpression() {}
func (m *MarkupExpr) children() []Node {
	out := []Node{m.OpenTag}
	for _, p := range m.Props {
		out = append(out, p)
	}
	for _, c := range m.Children {
		out = append(out, c)
	}
	out = append(out, m.CloseTag)
	return out
}

// NewMarkupExpr constructs a MarkupExpr node.
func NewMarkupExpr(span source.Span, open, close *PlainIdentifier, props []*KeyValue, children []Expression) *MarkupExpr {
	return &MarkupExpr{base: newBase(span, nil), OpenTag: open, CloseTag: close, Props: props, Children: children}
}

// Parenthesis is `(expr)`.
type Parenthesis struct {
	base
	Inner Expression
}

func (p *Parenthesis) Kind() Kind       { return KindParenthesis }
func (p *Parenthesis) isExpression()    {}
func (p *Parenthesis) children() []Node { return []Node{p.Inner} }

// NewParenthesis constructs a Parenthesis node.
func NewParenthesis(span source.Span, inner Expression) *Parenthesis {
	return &Parenthesis{base: newBase(span, nil), Inner: inner}
}

// LocalIdentifier is a bare value-scope name reference.
type LocalIdentifier struct {
	base
	Name string
}

func (l *LocalIdentifier) Kind() Kind       { return KindLocalIdentifier }
func (l *LocalIdentifier) isExpression()    {}
func (l *LocalIdentifier) children() []Node { return nil }

// NewLocalIdentifier constructs a LocalIdentifier node.
func NewLocalIdentifier(span source.Span, name string) *LocalIdentifier {
	return &LocalIdentifier{base: newBase(span, nil), Name: name}
}
