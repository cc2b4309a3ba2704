package parser

import (
	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/combinator"
	"github.com/kpumuk/bagelcore/internal/source"
)

// Type-expression precedence levels, loosest to tightest. Distinct from
// the expression levels in state.go but dispatched the same way (spec.md
// §4.D "Type expressions. Same layering, distinct dispatcher").
const (
	typeLevelGeneric = iota
	typeLevelUnion
	typeLevelFunction
	typeLevelTypeof
	typeLevelPostfix
	typeLevelPrimary
	typeLevelCount
)

func (g *grammar) typeExpr() combinator.Parser[ast.TypeExpression] {
	return g.typeExprAtLevel(typeLevelGeneric)
}

func (g *grammar) typeExprAtLevel(level int) combinator.Parser[ast.TypeExpression] {
	if level >= typeLevelCount {
		level = typeLevelCount - 1
	}
	rule := ruleNameForType(level)
	return combinator.Memo(g.cache, rule, func(in source.Input) combinator.Result[ast.TypeExpression] {
		switch level {
		case typeLevelGeneric:
			return g.genericAbstraction(level)(in)
		case typeLevelUnion:
			return g.unionType(level)(in)
		case typeLevelFunction:
			return combinator.OneOf(g.functionType(), g.typeExprAtLevel(level+1))(in)
		case typeLevelTypeof:
			return combinator.OneOf(g.typeofType(), g.typeExprAtLevel(level+1))(in)
		case typeLevelPostfix:
			return g.postfixType(level)(in)
		default:
			return g.primaryType()(in)
		}
	})
}

func ruleNameForType(level int) string {
	names := []string{"type-generic", "type-union", "type-function", "type-typeof", "type-postfix", "type-primary"}
	return names[level]
}

// genericAbstraction is `<P extends Bound, ...>T`.
func (g *grammar) genericAbstraction(level int) combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		open := lexeme(g, g.symbol("<"))(in)
		if !open.IsSuccess() {
			return g.typeExprAtLevel(level + 1)(in)
		}
		params := lexeme(g, combinator.ManySep1(g.genericTypeParameter(), lexeme(g, g.symbol(","))))(open.Input)
		if !params.IsSuccess() {
			return g.typeExprAtLevel(level + 1)(in)
		}
		closeR := lexeme(g, g.symbol(">"))(params.Input)
		if !closeR.IsSuccess() {
			return g.typeExprAtLevel(level + 1)(in)
		}
		inner := combinator.Required(g.typeExprAtLevel(typeLevelGeneric), "expected a type after generic parameter list")(closeR.Input)
		if inner.Status != combinator.Success {
			return combinator.Fail[ast.TypeExpression](closeR.Input, inner.Err)
		}
		span := inner.Input.SpanSince(in)
		return combinator.Ok(in, inner.Input, span, ast.NewGenericType(span, params.Value, inner.Value))
	}
}

func (g *grammar) genericTypeParameter() combinator.Parser[*ast.GenericTypeParameter] {
	return func(in source.Input) combinator.Result[*ast.GenericTypeParameter] {
		name := lexeme(g, g.plainIdentifier())(in)
		if !name.IsSuccess() {
			return combinator.NoMatch[*ast.GenericTypeParameter](in)
		}
		cur := name.Input
		var extends ast.TypeExpression
		ext := lexeme(g, g.keyword("extends"))(cur)
		if ext.IsSuccess() {
			boundR := combinator.Required(g.typeExprAtLevel(typeLevelUnion), "expected a bound type after 'extends'")(ext.Input)
			if boundR.Status != combinator.Success {
				return combinator.Fail[*ast.GenericTypeParameter](ext.Input, boundR.Err)
			}
			extends = boundR.Value
			cur = boundR.Input
		}
		span := cur.SpanSince(in)
		return combinator.Ok(in, cur, span, ast.NewGenericTypeParameter(span, name.Value, extends))
	}
}

// unionType is `[|] T1 | T2 | ...` (an optional leading `|` is sugar).
func (g *grammar) unionType(level int) combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		leadBar := lexeme(g, g.symbol("|"))(in)
		start := in
		if leadBar.IsSuccess() {
			start = leadBar.Input
		}
		members := combinator.ManySep1(g.typeExprAtLevel(level+1), lexeme(g, g.symbol("|")))(start)
		if !members.IsSuccess() {
			return g.typeExprAtLevel(level + 1)(in)
		}
		if len(members.Value) == 1 && !leadBar.IsSuccess() {
			return combinator.Ok(in, members.Input, members.Input.SpanSince(in), members.Value[0])
		}
		span := members.Input.SpanSince(in)
		return combinator.Ok(in, members.Input, span, ast.NewUnionType(span, members.Value))
	}
}

// functionType is `(T1, T2) => R` with no body.
func (g *grammar) functionType() combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		open := lexeme(g, g.symbol("("))(in)
		if !open.IsSuccess() {
			return combinator.NoMatch[ast.TypeExpression](in)
		}
		params := lexeme(g, combinator.ManySep0(g.typeExprAtLevel(typeLevelUnion), lexeme(g, g.symbol(","))))(open.Input)
		closeR := lexeme(g, g.symbol(")"))(params.Input)
		if !closeR.IsSuccess() {
			return combinator.NoMatch[ast.TypeExpression](in)
		}
		arrow := lexeme(g, g.symbol("=>"))(closeR.Input)
		if !arrow.IsSuccess() {
			return combinator.NoMatch[ast.TypeExpression](in)
		}
		ret := combinator.Required(g.typeExprAtLevel(typeLevelUnion), "expected a return type after '=>'")(arrow.Input)
		if ret.Status != combinator.Success {
			return combinator.Fail[ast.TypeExpression](arrow.Input, ret.Err)
		}
		span := ret.Input.SpanSince(in)
		return combinator.Ok(in, ret.Input, span, ast.NewFunctionType(span, params.Value, ret.Value))
	}
}

// typeofType is `typeof expr`.
func (g *grammar) typeofType() combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		kw := lexeme(g, g.keyword("typeof"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[ast.TypeExpression](in)
		}
		expr := combinator.Required(g.expr(), "expected an expression after 'typeof'")(kw.Input)
		if expr.Status != combinator.Success {
			return combinator.Fail[ast.TypeExpression](kw.Input, expr.Err)
		}
		span := expr.Input.SpanSince(in)
		return combinator.Ok(in, expr.Input, span, ast.NewTypeofType(span, expr.Value))
	}
}

// postfixType applies `<Args>` (generic application) and `[]`/`[n]`
// (array-of) suffixes, left-folded, to a primary type.
func (g *grammar) postfixType(level int) combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		base := g.typeExprAtLevel(level + 1)(in)
		if !base.IsSuccess() {
			return base
		}
		cur := base.Input
		result := base.Value
		for {
			if app := g.genericApplication(cur); app.IsSuccess() {
				span := app.Input.SpanSince(in)
				result = ast.NewParameterizedType(span, result, app.Value)
				cur = app.Input
				continue
			}
			if arr, ok := g.arraySuffix(cur); ok {
				span := arr.end.SpanSince(in)
				result = ast.NewArrayOfType(span, result, arr.length)
				cur = arr.end
				continue
			}
			break
		}
		return combinator.Ok(in, cur, cur.SpanSince(in), result)
	}
}

func (g *grammar) genericApplication(in source.Input) combinator.Result[[]ast.TypeExpression] {
	open := lexeme(g, g.symbol("<"))(in)
	if !open.IsSuccess() {
		return combinator.NoMatch[[]ast.TypeExpression](in)
	}
	args := combinator.ManySep1(g.typeExprAtLevel(typeLevelUnion), lexeme(g, g.symbol(",")))(open.Input)
	if !args.IsSuccess() {
		return combinator.NoMatch[[]ast.TypeExpression](in)
	}
	closeR := lexeme(g, g.symbol(">"))(args.Input)
	if !closeR.IsSuccess() {
		return combinator.NoMatch[[]ast.TypeExpression](in)
	}
	return combinator.Ok(in, closeR.Input, closeR.Input.SpanSince(in), args.Value)
}

type arrayTypeSuffix struct {
	end    source.Input
	length *ast.NumberLiteral
}

func (g *grammar) arraySuffix(in source.Input) (arrayTypeSuffix, bool) {
	open := lexeme(g, g.symbol("["))(in)
	if !open.IsSuccess() {
		return arrayTypeSuffix{}, false
	}
	numR := lexeme(g, g.numberLiteralToken())(open.Input)
	after := open.Input
	var length *ast.NumberLiteral
	if numR.IsSuccess() {
		length = ast.NewNumberLiteral(numR.Span, ast.ContextTypeExpression, numR.Value, nil)
		after = numR.Input
	}
	closeR := lexeme(g, g.symbol("]"))(after)
	if !closeR.IsSuccess() {
		return arrayTypeSuffix{}, false
	}
	return arrayTypeSuffix{end: closeR.Input, length: length}, true
}

// primaryType is the tightest level: primitive keywords, object/array
// type literals, ranges, and named type references.
func (g *grammar) primaryType() combinator.Parser[ast.TypeExpression] {
	return combinator.OneOf(
		g.primitiveType(),
		g.objectTypeLiteral(),
		g.arrayTypeLiteral(),
		g.rangeType(),
		g.namedType(),
	)
}

func (g *grammar) primitiveType() combinator.Parser[ast.TypeExpression] {
	kw := combinator.OneOf(
		g.keyword("string"), g.keyword("number"), g.keyword("boolean"), g.keyword("unknown"),
	)
	return combinator.Map(lexeme(g, kw), func(word string, span source.Span) ast.TypeExpression {
		return ast.NewPrimitiveType(span, ast.PrimitiveKeyword(word))
	})
}

func (g *grammar) namedType() combinator.Parser[ast.TypeExpression] {
	return combinator.Map(lexeme(g, g.plainIdentifier()), func(name *ast.PlainIdentifier, span source.Span) ast.TypeExpression {
		return ast.NewNamedType(span, name)
	})
}

func (g *grammar) rangeType() combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		startR := lexeme(g, g.numberLiteralToken())(in)
		cur := in
		var start *ast.NumberLiteral
		if startR.IsSuccess() {
			start = ast.NewNumberLiteral(startR.Span, ast.ContextTypeExpression, startR.Value, nil)
			cur = startR.Input
		}
		dots := lexeme(g, g.symbol(".."))(cur)
		if !dots.IsSuccess() {
			return combinator.NoMatch[ast.TypeExpression](in)
		}
		endR := lexeme(g, g.numberLiteralToken())(dots.Input)
		var end *ast.NumberLiteral
		last := dots.Input
		if endR.IsSuccess() {
			end = ast.NewNumberLiteral(endR.Span, ast.ContextTypeExpression, endR.Value, nil)
			last = endR.Input
		}
		if start == nil && end == nil {
			return combinator.NoMatch[ast.TypeExpression](in)
		}
		span := last.SpanSince(in)
		return combinator.Ok(in, last, span, ast.NewRangeNode(span, ast.ContextTypeExpression, start, end))
	}
}

// backtrackDelimitedType wraps a body parser in a broken-subtree
// recovery point for one balanced-delimiter construct (spec.md §4.D
// "Recovery"): `{...}`, `[...]`, `(...)`, `<...>`.
func backtrackDelimitedType(body combinator.Parser[ast.TypeExpression], closer string) combinator.Parser[ast.TypeExpression] {
	return combinator.Backtrack(body, combinator.TakeUntil(closer), func(err error, span source.Span) ast.TypeExpression {
		return ast.NewBrokenTypeSubtree(span, err.Error())
	})
}

func (g *grammar) objectTypeLiteral() combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		open := lexeme(g, g.symbol("{"))(in)
		if !open.IsSuccess() {
			return combinator.NoMatch[ast.TypeExpression](in)
		}
		body := backtrackDelimitedType(g.objectTypeBody(), "}")(open.Input)
		return combinator.Ok(in, body.Input, body.Input.SpanSince(in), body.Value)
	}
}

func (g *grammar) objectTypeBody() combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		entries := combinator.ManySep0(g.objectTypeEntry(), lexeme(g, g.symbol(",")))(in)
		closeR := lexeme(g, g.symbol("}"))(entries.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.TypeExpression](entries.Input, &combinator.ParseError{Index: entries.Input.Index, Message: "expected '}' to close object type"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.NewObjectLiteral(span, ast.ContextTypeExpression, entries.Value, nil))
	}
}

func (g *grammar) objectTypeEntry() combinator.Parser[ast.Node] {
	return combinator.OneOf(
		combinator.Map(combinator.Tuple2(
			lexeme(g, g.symbol("...")),
			combinator.Required(g.typeExprAtLevel(typeLevelUnion), "expected a type after '...'"),
		), func(t combinator.Pair[string, ast.TypeExpression], span source.Span) ast.Node {
			return ast.NewSpread(span, t.Second, nil)
		}),
		g.keyValueTypeEntry(),
	)
}

func (g *grammar) keyValueTypeEntry() combinator.Parser[ast.Node] {
	return func(in source.Input) combinator.Result[ast.Node] {
		key := lexeme(g, g.plainIdentifier())(in)
		if !key.IsSuccess() {
			return combinator.NoMatch[ast.Node](in)
		}
		colon := lexeme(g, g.symbol(":"))(key.Input)
		if !colon.IsSuccess() {
			return combinator.NoMatch[ast.Node](in)
		}
		val := combinator.Required(g.typeExprAtLevel(typeLevelUnion), "expected a type after ':'")(colon.Input)
		if val.Status != combinator.Success {
			return combinator.Fail[ast.Node](colon.Input, val.Err)
		}
		span := val.Input.SpanSince(in)
		return combinator.Ok(in, val.Input, span, ast.Node(ast.NewKeyValue(span, key.Value, val.Value, nil)))
	}
}

func (g *grammar) arrayTypeLiteral() combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		open := lexeme(g, g.symbol("["))(in)
		if !open.IsSuccess() {
			return combinator.NoMatch[ast.TypeExpression](in)
		}
		body := backtrackDelimitedType(g.arrayTypeBody(), "]")(open.Input)
		return combinator.Ok(in, body.Input, body.Input.SpanSince(in), body.Value)
	}
}

func (g *grammar) arrayTypeBody() combinator.Parser[ast.TypeExpression] {
	return func(in source.Input) combinator.Result[ast.TypeExpression] {
		elems := combinator.ManySep0(g.arrayTypeElement(), lexeme(g, g.symbol(",")))(in)
		closeR := lexeme(g, g.symbol("]"))(elems.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.TypeExpression](elems.Input, &combinator.ParseError{Index: elems.Input.Index, Message: "expected ']' to close array type"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.NewArrayLiteral(span, ast.ContextTypeExpression, elems.Value, nil))
	}
}

func (g *grammar) arrayTypeElement() combinator.Parser[ast.Node] {
	return combinator.OneOf(
		combinator.Map(combinator.Tuple2(
			lexeme(g, g.symbol("...")),
			combinator.Required(g.typeExprAtLevel(typeLevelUnion), "expected a type after '...'"),
		), func(t combinator.Pair[string, ast.TypeExpression], span source.Span) ast.Node {
			return ast.NewSpread(span, t.Second, nil)
		}),
		combinator.Map(g.typeExprAtLevel(typeLevelUnion), func(t ast.TypeExpression, span source.Span) ast.Node { return t }),
	)
}
