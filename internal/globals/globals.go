// Package globals is the platform globals module: a small static table of
// pre-resolved value and type bindings inserted as the outermost scope when
// a lookup walks off the top of the AST (spec.md §4.F "globals module").
package globals

import (
	"sync"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/source"
)

var (
	once   sync.Once
	values map[string]ast.Node
	types  map[string]ast.Node
)

// code backs every synthetic span in this package. Globals don't come from
// parsed text, so their spans are zero-width at offset 0 of a dedicated
// placeholder buffer rather than pointing into a real module.
var code = source.NewCode("<globals>", "")

func zeroSpan() source.Span {
	return source.Span{Code: code, Start: 0, End: 0}
}

func ident(name string) *ast.PlainIdentifier {
	return ast.NewPlainIdentifier(zeroSpan(), name, nil)
}

func numberType() ast.TypeExpression {
	return ast.NewPrimitiveType(zeroSpan(), ast.PrimitiveNumber)
}

func stringType() ast.TypeExpression {
	return ast.NewPrimitiveType(zeroSpan(), ast.PrimitiveString)
}

func nilType() ast.TypeExpression {
	return ast.NewNamedType(zeroSpan(), ident("nil"))
}

func fn(params []ast.TypeExpression, ret ast.TypeExpression) ast.TypeExpression {
	return ast.NewFunctionType(zeroSpan(), params, ret)
}

func field(name string, ty ast.TypeExpression) *ast.KeyValue {
	return ast.NewKeyValue(zeroSpan(), ident(name), ty, nil)
}

func object(entries ...*ast.KeyValue) ast.TypeExpression {
	nodes := make([]ast.Node, len(entries))
	for i, e := range entries {
		nodes[i] = e
	}
	return ast.NewObjectLiteral(zeroSpan(), ast.ContextTypeExpression, nodes, nil)
}

// variable builds a synthetic top-level `const name: ty = nil` declaration to
// stand in for a platform value. The initializer is never evaluated — only
// the declared type and the Target identity as a Binding.Decl matter.
func variable(name string, ty ast.TypeExpression) *ast.VariableDeclaration {
	target := ast.NewNameAndType(zeroSpan(), ident(name), ty)
	placeholder := ast.NewNilLiteral(zeroSpan(), ast.ContextExpression, nil)
	return ast.NewVariableDeclaration(zeroSpan(), false, true, target, placeholder, nil)
}

func alias(name string, ty ast.TypeExpression) *ast.TypeDeclaration {
	return ast.NewTypeDeclaration(zeroSpan(), false, ident(name), nil, ty, nil)
}

func build() {
	logObject := object(
		field("info", fn([]ast.TypeExpression{stringType()}, nilType())),
		field("warn", fn([]ast.TypeExpression{stringType()}, nilType())),
		field("error", fn([]ast.TypeExpression{stringType()}, nilType())),
	)
	mathObject := object(
		field("PI", numberType()),
		field("floor", fn([]ast.TypeExpression{numberType()}, numberType())),
		field("ceil", fn([]ast.TypeExpression{numberType()}, numberType())),
		field("round", fn([]ast.TypeExpression{numberType()}, numberType())),
		field("abs", fn([]ast.TypeExpression{numberType()}, numberType())),
		field("max", fn([]ast.TypeExpression{numberType(), numberType()}, numberType())),
		field("min", fn([]ast.TypeExpression{numberType(), numberType()}, numberType())),
	)
	rangeType := ast.NewRangeNode(zeroSpan(), ast.ContextTypeExpression,
		ast.NewNumberLiteral(zeroSpan(), ast.ContextTypeExpression, 0, nil),
		ast.NewNumberLiteral(zeroSpan(), ast.ContextTypeExpression, 0, nil),
	)

	values = map[string]ast.Node{
		"Log":   variable("Log", logObject),
		"Math":  variable("Math", mathObject),
		"range": variable("range", fn([]ast.TypeExpression{numberType(), numberType()}, rangeType)),
	}
	types = map[string]ast.Node{
		"Range": alias("Range", rangeType),
	}
}

// Lookup resolves name in the globals table for either the type or the
// value namespace, matching the (ast.Node, bool) shape scope.Resolve's
// fallback expects.
func Lookup(isType bool, name string) (ast.Node, bool) {
	once.Do(build)
	table := values
	if isType {
		table = types
	}
	n, ok := table[name]
	return n, ok
}
