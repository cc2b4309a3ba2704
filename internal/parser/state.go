// Package parser builds the language grammar on top of internal/combinator,
// producing an internal/ast tree (spec.md §4.D). Every exported entry point
// is ParseModule; everything else is grammar plumbing shared across the
// declaration, type-expression, expression, and statement productions.
package parser

import (
	"fmt"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/combinator"
	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/source"
)

// grammar carries the per-parse memo cache that every precedence-level
// dispatcher and recursive rule shares. It must never outlive a single
// ParseModule call (spec.md §5).
type grammar struct {
	cache *combinator.MemoCache
}

// Expression precedence levels, loosest to tightest (spec.md §4.D). Each
// level's parser is implemented as "try this level's own production, else
// delegate to exprLevel+1" — the delegation target is the "starting-after"
// operand the spec describes, expressed here as plain level+1 recursion
// rather than an explicit token, since Go gives us real recursive
// functions instead of a single generic dispatcher.
const (
	levelMarkup = iota
	levelAsCast
	levelNullish
	levelOr
	levelAnd
	levelEquality
	levelComparison
	levelAdditive
	levelMultiplicative
	levelChain
	levelSwitch
	levelIfElse
	levelFunction
	levelParenthesis
	levelObjectLiteral
	levelArrayLiteral
	levelLiteral
	levelIdentifier
	levelCount
)

// ParseModule parses the complete source of code into a Module, running
// the parenting pass on success (spec.md §4.D "Top level"). A non-empty
// diagnostics slice on a nil-free result still means parsing completed —
// malformed subexpressions appear as broken-subtree nodes, not as a
// failed parse; the only hard failure is trailing unconsumed input.
func ParseModule(code *source.Code) (*ast.Module, []diag.Diagnostic) {
	g := &grammar{cache: combinator.NewMemoCache()}
	in := source.NewInput(code)

	leading := g.commentsAndWhitespace()(in)
	cur := leading.Input
	firstLeading := leading.Value

	var decls []ast.Declaration
	pending := firstLeading
	for {
		ws := g.whitespace()(cur)
		cur = ws.Input
		if cur.AtEOF() {
			break
		}
		dr := g.declaration(pending)(cur)
		if !dr.IsSuccess() {
			break
		}
		decls = append(decls, dr.Value)
		cur = dr.Input
		tr := g.commentsAndWhitespace()(cur)
		cur = tr.Input
		pending = tr.Value
	}

	trailing := pending
	var diags []diag.Diagnostic
	if !cur.AtEOF() {
		diags = append(diags, diag.Diagnostic{
			Severity: diag.SeverityError,
			Code:     "parse/unconsumed-input",
			Message:  fmt.Sprintf("Failed to consume entire module source at index %d", cur.Index),
			Span:     source.Span{Code: code, Start: cur.Index, End: source.Offset(len(code.Text))},
		})
	}

	mod := ast.NewModule(code, decls, trailing)
	ast.AttachParents(mod)
	return mod, diags
}
