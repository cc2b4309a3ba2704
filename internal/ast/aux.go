package ast

import "github.com/kpumuk/bagelcore/internal/source"

// KeyValue is one entry of an object literal (value or type context);
// Value is an Expression when the enclosing literal's Context is
// ContextExpression, a TypeExpression when it is ContextTypeExpression
// (spec.md §3 "Auxiliary").
type KeyValue struct {
	base
	Key   *PlainIdentifier
	Value Node
}

func (k *KeyValue) Kind() Kind       { return KindKeyValue }
func (k *KeyValue) children() []Node { return []Node{k.Key, k.Value} }

// NewKeyValue constructs a KeyValue node.
func NewKeyValue(span source.Span, key *PlainIdentifier, value Node, leading []*Comment) *KeyValue {
	return &KeyValue{base: newBase(span, leading), Key: key, Value: value}
}

// Spread is `...expr` inside an object or array literal (value or type
// context); Value mirrors the enclosing literal's context the same way
// KeyValue.Value does.
type Spread struct {
	base
	Value Node
}

func (s *Spread) Kind() Kind       { return KindSpread }
func (s *Spread) children() []Node { return []Node{s.Value} }

// NewSpread constructs a Spread node.
func NewSpread(span source.Span, value Node, leading []*Comment) *Spread {
	return &Spread{base: newBase(span, leading), Value: value}
}

// NameAndType is `name: Type` or a bare `name`, used for function
// parameters and variable-declaration targets.
type NameAndType struct {
	base
	Name *PlainIdentifier
	Type TypeExpression // nil if no annotation was written
}

func (n *NameAndType) Kind() Kind { return KindNameAndType }
func (n *NameAndType) children() []Node {
	if n.Type == nil {
		return []Node{n.Name}
	}
	return []Node{n.Name, n.Type}
}

// NewNameAndType constructs a NameAndType node.
func NewNameAndType(span source.Span, name *PlainIdentifier, ty TypeExpression) *NameAndType {
	return &NameAndType{base: newBase(span, nil), Name: name, Type: ty}
}

// GenericTypeParameter is one parameter of a generic abstraction
// (`<P extends Bound>`).
type GenericTypeParameter struct {
	base
	Name    *PlainIdentifier
	Extends TypeExpression // nil if no bound was written
}

func (g *GenericTypeParameter) Kind() Kind { return KindGenericTypeParameter }
func (g *GenericTypeParameter) children() []Node {
	if g.Extends == nil {
		return []Node{g.Name}
	}
	return []Node{g.Name, g.Extends}
}

// NewGenericTypeParameter constructs a GenericTypeParameter node.
func NewGenericTypeParameter(span source.Span, name *PlainIdentifier, extends TypeExpression) *GenericTypeParameter {
	return &GenericTypeParameter{base: newBase(span, nil), Name: name, Extends: extends}
}

// ImportItem is one `{ items }` entry of an import declaration.
type ImportItem struct {
	base
	Name *PlainIdentifier
}

func (i *ImportItem) Kind() Kind       { return KindImportItem }
func (i *ImportItem) children() []Node { return []Node{i.Name} }

// NewImportItem constructs an ImportItem node.
func NewImportItem(span source.Span, name *PlainIdentifier) *ImportItem {
	return &ImportItem{base: newBase(span, nil), Name: name}
}

// IfElseCase is one `condition { outcome }` arm of an if-else chain.
type IfElseCase struct {
	base
	Condition Expression
	Outcome   Expression
}

func (c *IfElseCase) Kind() Kind       { return KindIfElseCase }
func (c *IfElseCase) children() []Node { return []Node{c.Condition, c.Outcome} }

// NewIfElseCase constructs an IfElseCase node.
func NewIfElseCase(span source.Span, cond, outcome Expression) *IfElseCase {
	return &IfElseCase{base: newBase(span, nil), Condition: cond, Outcome: outcome}
}

// SwitchCase is one `case Type { outcome }` arm of a switch expression.
type SwitchCase struct {
	base
	CaseType TypeExpression
	Outcome  Expression
}

func (c *SwitchCase) Kind() Kind       { return KindSwitchCase }
func (c *SwitchCase) children() []Node { return []Node{c.CaseType, c.Outcome} }

// NewSwitchCase constructs a SwitchCase node.
func NewSwitchCase(span source.Span, caseType TypeExpression, outcome Expression) *SwitchCase {
	return &SwitchCase{base: newBase(span, nil), CaseType: caseType, Outcome: outcome}
}
