package ast

import "github.com/kpumuk/bagelcore/internal/source"

// Module is the root node: an ordered list of top-level declarations
// plus trailing comments (spec.md §3 "Module").
type Module struct {
	base
	Code             *source.Code
	Declarations     []Declaration
	TrailingComments []*Comment
}

func (m *Module) Kind() Kind { return KindModule }
func (m *Module) children() []Node {
	out := make([]Node, 0, len(m.Declarations)+len(m.TrailingComments))
	for _, d := range m.Declarations {
		out = append(out, d)
	}
	for _, c := range m.TrailingComments {
		out = append(out, c)
	}
	return out
}

// NewModule constructs a Module node spanning the whole source.
func NewModule(code *source.Code, decls []Declaration, trailing []*Comment) *Module {
	span := source.Span{Code: code, Start: 0, End: source.Offset(len(code.Text))}
	return &Module{base: newBase(span, nil), Code: code, Declarations: decls, TrailingComments: trailing}
}
