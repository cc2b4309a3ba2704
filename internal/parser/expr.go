package parser

import (
	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/combinator"
	"github.com/kpumuk/bagelcore/internal/source"
)

// binaryTier names one precedence level parsed as `expr (op expr)+` and
// left-folded (spec.md §4.D "Binary operations").
type binaryTier struct {
	ops []string
}

var binaryTiers = map[int]binaryTier{
	levelNullish:         {ops: []string{"??"}},
	levelOr:              {ops: []string{"||"}},
	levelAnd:             {ops: []string{"&&"}},
	levelEquality:        {ops: []string{"==", "!="}},
	levelComparison:      {ops: []string{"<=", ">=", "<", ">"}},
	levelAdditive:        {ops: []string{"+", "-"}},
	levelMultiplicative:  {ops: []string{"*", "/"}},
}

// expr is the entry point for the whole expression grammar.
func (g *grammar) expr() combinator.Parser[ast.Expression] {
	return g.exprAtLevel(levelMarkup)
}

func (g *grammar) exprAtLevel(level int) combinator.Parser[ast.Expression] {
	if level >= levelCount {
		level = levelCount - 1
	}
	rule := ruleNameForExpr(level)
	return combinator.Memo(g.cache, rule, func(in source.Input) combinator.Result[ast.Expression] {
		if tier, ok := binaryTiers[level]; ok {
			return g.binaryOperationAtLevel(level, tier)(in)
		}
		switch level {
		case levelMarkup:
			return combinator.OneOf(g.markupExpr(), g.exprAtLevel(level+1))(in)
		case levelAsCast:
			return g.asCastAtLevel(level)(in)
		case levelChain:
			return g.chainAtLevel(level)(in)
		case levelSwitch:
			return combinator.OneOf(g.switchExpr(), g.exprAtLevel(level+1))(in)
		case levelIfElse:
			return combinator.OneOf(g.ifElseExpr(), g.exprAtLevel(level+1))(in)
		case levelFunction:
			return combinator.OneOf(g.functionExpr(), g.exprAtLevel(level+1))(in)
		case levelParenthesis:
			return combinator.OneOf(g.parenthesisExpr(), g.exprAtLevel(level+1))(in)
		case levelObjectLiteral:
			return combinator.OneOf(g.objectLiteralExpr(), g.exprAtLevel(level+1))(in)
		case levelArrayLiteral:
			return combinator.OneOf(g.arrayLiteralExpr(), g.exprAtLevel(level+1))(in)
		case levelLiteral:
			return combinator.OneOf(g.primitiveLiteralExpr(), g.exprAtLevel(level+1))(in)
		default:
			return g.localIdentifierExpr()(in)
		}
	})
}

func ruleNameForExpr(level int) string {
	names := []string{
		"expr-markup", "expr-as-cast", "expr-nullish", "expr-or", "expr-and",
		"expr-equality", "expr-comparison", "expr-additive", "expr-multiplicative",
		"expr-chain", "expr-switch", "expr-if-else", "expr-function",
		"expr-parenthesis", "expr-object-literal", "expr-array-literal",
		"expr-literal", "expr-identifier",
	}
	return names[level]
}

// binaryOperationAtLevel parses `operand (op operand)*` for one tier and
// left-folds the chain into nested BinaryOperation nodes.
func (g *grammar) binaryOperationAtLevel(level int, tier binaryTier) combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		first := g.exprAtLevel(level + 1)(in)
		if !first.IsSuccess() {
			return first
		}
		result := first.Value
		cur := first.Input
		for {
			opR, matched := g.matchAnyOp(cur, tier.ops)
			if !matched {
				break
			}
			rhs := combinator.Required(g.exprAtLevel(level+1), "expected an operand after '"+opR.op+"'")(opR.input)
			if rhs.Status != combinator.Success {
				return combinator.Fail[ast.Expression](opR.input, rhs.Err)
			}
			span := rhs.Input.SpanSince(in)
			result = ast.NewBinaryOperation(span, result, opR.op, rhs.Value)
			cur = rhs.Input
		}
		return combinator.Ok(in, cur, cur.SpanSince(in), result)
	}
}

type opMatch struct {
	op    string
	input source.Input
}

func (g *grammar) matchAnyOp(in source.Input, ops []string) (opMatch, bool) {
	for _, op := range ops {
		r := lexeme(g, g.symbol(op))(in)
		if r.IsSuccess() {
			return opMatch{op: op, input: r.Input}, true
		}
	}
	return opMatch{}, false
}

// asCastAtLevel is `expr as Type`, postfix and left-associative (only one
// cast is typical, but a chain of casts is accepted and left-folded the
// same way a binary tier would be).
func (g *grammar) asCastAtLevel(level int) combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		first := g.exprAtLevel(level + 1)(in)
		if !first.IsSuccess() {
			return first
		}
		result := first.Value
		cur := first.Input
		for {
			kw := lexeme(g, g.keyword("as"))(cur)
			if !kw.IsSuccess() {
				break
			}
			target := combinator.Required(g.typeExpr(), "expected a type after 'as'")(kw.Input)
			if target.Status != combinator.Success {
				return combinator.Fail[ast.Expression](kw.Input, target.Err)
			}
			span := target.Input.SpanSince(in)
			result = ast.NewAsCast(span, result, target.Value)
			cur = target.Input
		}
		return combinator.Ok(in, cur, cur.SpanSince(in), result)
	}
}

// chainAtLevel parses a subject followed by a non-empty sequence of
// `.name`, `[expr]`, and `(args)` applications, left-folded, with an
// optional leading `await`/`detach` attaching to the outermost invocation
// (spec.md §4.D "Property-access / invocation chains").
func (g *grammar) chainAtLevel(level int) combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		await := lexeme(g, g.keyword("await"))(in)
		detach := combinator.Result[string]{}
		cur := in
		isAwait, isDetach := false, false
		if await.IsSuccess() {
			isAwait = true
			cur = await.Input
		} else {
			detach = lexeme(g, g.keyword("detach"))(in)
			if detach.IsSuccess() {
				isDetach = true
				cur = detach.Input
			}
		}

		subject := g.exprAtLevel(level + 1)(cur)
		if !subject.IsSuccess() {
			if isAwait || isDetach {
				return combinator.Fail[ast.Expression](cur, &combinator.ParseError{Index: cur.Index, Message: "expected an expression after 'await'/'detach'"})
			}
			return subject
		}
		result := subject.Value
		at := subject.Input
		var lastInvocation *ast.Invocation
		appliedAny := false
		for {
			if dot := lexeme(g, g.symbol("."))(at); dot.IsSuccess() {
				name := combinator.Required(g.plainIdentifier(), "expected a property name after '.'")(dot.Input)
				if name.Status != combinator.Success {
					return combinator.Fail[ast.Expression](dot.Input, name.Err)
				}
				prop := ast.NewStringLiteral(name.Span, ast.ContextExpression, name.Value.Name, nil)
				span := name.Input.SpanSince(in)
				result = ast.NewPropertyAccess(span, result, prop)
				at = name.Input
				appliedAny = true
				continue
			}
			if open := lexeme(g, g.symbol("["))(at); open.IsSuccess() {
				idx := combinator.Required(g.expr(), "expected an expression inside '['")(open.Input)
				if idx.Status != combinator.Success {
					return combinator.Fail[ast.Expression](open.Input, idx.Err)
				}
				closeR := lexeme(g, g.symbol("]"))(idx.Input)
				if !closeR.IsSuccess() {
					return combinator.Fail[ast.Expression](idx.Input, &combinator.ParseError{Index: idx.Input.Index, Message: "expected ']'"})
				}
				span := closeR.Input.SpanSince(in)
				result = ast.NewPropertyAccess(span, result, idx.Value)
				at = closeR.Input
				appliedAny = true
				continue
			}
			if callR, ok := g.invocationArgs(at); ok {
				span := callR.end.SpanSince(in)
				inv := ast.NewInvocation(span, result, callR.typeArgs, callR.args, false, false)
				result = inv
				lastInvocation = inv
				at = callR.end
				appliedAny = true
				continue
			}
			break
		}
		if !appliedAny {
			if isAwait || isDetach {
				return combinator.Fail[ast.Expression](in, &combinator.ParseError{Index: in.Index, Message: "expected an invocation chain after 'await'/'detach'"})
			}
			return combinator.Ok(in, at, at.SpanSince(in), result)
		}
		if lastInvocation != nil {
			lastInvocation.Await = isAwait
			lastInvocation.Detach = isDetach
		} else if isAwait || isDetach {
			return combinator.Fail[ast.Expression](in, &combinator.ParseError{Index: in.Index, Message: "'await'/'detach' requires an invocation"})
		}
		return combinator.Ok(in, at, at.SpanSince(in), result)
	}
}

type invocationArgs struct {
	typeArgs []ast.TypeExpression
	args     []ast.Expression
	end      source.Input
}

// invocationArgs parses `(args)`, recovering a malformed argument list as
// a single broken-subtree argument rather than derailing the whole chain
// (spec.md §4.D "Recovery").
func (g *grammar) invocationArgs(in source.Input) (invocationArgs, bool) {
	open := lexeme(g, g.symbol("("))(in)
	if !open.IsSuccess() {
		return invocationArgs{}, false
	}
	args := combinator.ManySep0(g.exprAtLevel(levelMarkup), lexeme(g, g.symbol(",")))(open.Input)
	closeR := lexeme(g, g.symbol(")"))(args.Input)
	if !closeR.IsSuccess() {
		rec := combinator.TakeUntil(")")(args.Input)
		broken := ast.NewBrokenExprSubtree(rec.Span, "expected ')' to close argument list")
		return invocationArgs{args: []ast.Expression{broken}, end: rec.Input}, true
	}
	return invocationArgs{args: args.Value, end: closeR.Input}, true
}

func backtrackDelimitedExpr(body combinator.Parser[ast.Expression], closer string) combinator.Parser[ast.Expression] {
	return combinator.Backtrack(body, combinator.TakeUntil(closer), func(err error, span source.Span) ast.Expression {
		return ast.NewBrokenExprSubtree(span, err.Error())
	})
}

func (g *grammar) switchExpr() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		kw := lexeme(g, g.keyword("switch"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		subject := combinator.Required(g.expr(), "expected an expression after 'switch'")(kw.Input)
		if subject.Status != combinator.Success {
			return combinator.Fail[ast.Expression](kw.Input, subject.Err)
		}
		open := lexeme(g, g.symbol("{"))(subject.Input)
		if !open.IsSuccess() {
			return combinator.Fail[ast.Expression](subject.Input, &combinator.ParseError{Index: subject.Input.Index, Message: "expected '{' after switch subject"})
		}
		cases := combinator.Many0(g.switchCase())(open.Input)
		var def ast.Expression
		cur := cases.Input
		if dkw := lexeme(g, g.keyword("default"))(cur); dkw.IsSuccess() {
			dopen := lexeme(g, g.symbol("{"))(dkw.Input)
			if dopen.IsSuccess() {
				dexpr := combinator.Required(g.expr(), "expected an expression in default case")(dopen.Input)
				dclose := lexeme(g, g.symbol("}"))(dexpr.Input)
				if dclose.IsSuccess() {
					def = dexpr.Value
					cur = dclose.Input
				}
			}
		}
		closeR := lexeme(g, g.symbol("}"))(cur)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.Expression](cur, &combinator.ParseError{Index: cur.Index, Message: "expected '}' to close switch"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.NewSwitchExpr(span, subject.Value, cases.Value, def))
	}
}

func (g *grammar) switchCase() combinator.Parser[*ast.SwitchCase] {
	return func(in source.Input) combinator.Result[*ast.SwitchCase] {
		kw := lexeme(g, g.keyword("case"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[*ast.SwitchCase](in)
		}
		caseType := combinator.Required(g.typeExpr(), "expected a type after 'case'")(kw.Input)
		if caseType.Status != combinator.Success {
			return combinator.Fail[*ast.SwitchCase](kw.Input, caseType.Err)
		}
		open := lexeme(g, g.symbol("{"))(caseType.Input)
		if !open.IsSuccess() {
			return combinator.Fail[*ast.SwitchCase](caseType.Input, &combinator.ParseError{Index: caseType.Input.Index, Message: "expected '{' after case type"})
		}
		outcome := combinator.Required(g.expr(), "expected an expression in case body")(open.Input)
		if outcome.Status != combinator.Success {
			return combinator.Fail[*ast.SwitchCase](open.Input, outcome.Err)
		}
		closeR := lexeme(g, g.symbol("}"))(outcome.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[*ast.SwitchCase](outcome.Input, &combinator.ParseError{Index: outcome.Input.Index, Message: "expected '}' to close case"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.NewSwitchCase(span, caseType.Value, outcome.Value))
	}
}

func (g *grammar) ifElseExpr() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		first := g.ifElseCase()(in)
		if !first.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		cases := []*ast.IfElseCase{first.Value}
		cur := first.Input
		var def ast.Expression
		for {
			elseKw := lexeme(g, g.keyword("else"))(cur)
			if !elseKw.IsSuccess() {
				break
			}
			if ifCase := g.ifElseCase()(elseKw.Input); ifCase.IsSuccess() {
				cases = append(cases, ifCase.Value)
				cur = ifCase.Input
				continue
			}
			open := lexeme(g, g.symbol("{"))(elseKw.Input)
			if !open.IsSuccess() {
				return combinator.Fail[ast.Expression](elseKw.Input, &combinator.ParseError{Index: elseKw.Input.Index, Message: "expected 'if' or '{' after 'else'"})
			}
			outcome := combinator.Required(g.expr(), "expected an expression in else body")(open.Input)
			if outcome.Status != combinator.Success {
				return combinator.Fail[ast.Expression](open.Input, outcome.Err)
			}
			closeR := lexeme(g, g.symbol("}"))(outcome.Input)
			if !closeR.IsSuccess() {
				return combinator.Fail[ast.Expression](outcome.Input, &combinator.ParseError{Index: outcome.Input.Index, Message: "expected '}' to close else body"})
			}
			def = outcome.Value
			cur = closeR.Input
			break
		}
		span := cur.SpanSince(in)
		return combinator.Ok(in, cur, span, ast.NewIfElseExpr(span, cases, def))
	}
}

func (g *grammar) ifElseCase() combinator.Parser[*ast.IfElseCase] {
	return func(in source.Input) combinator.Result[*ast.IfElseCase] {
		kw := lexeme(g, g.keyword("if"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[*ast.IfElseCase](in)
		}
		cond := combinator.Required(g.expr(), "expected a condition after 'if'")(kw.Input)
		if cond.Status != combinator.Success {
			return combinator.Fail[*ast.IfElseCase](kw.Input, cond.Err)
		}
		open := lexeme(g, g.symbol("{"))(cond.Input)
		if !open.IsSuccess() {
			return combinator.Fail[*ast.IfElseCase](cond.Input, &combinator.ParseError{Index: cond.Input.Index, Message: "expected '{' after condition"})
		}
		outcome := combinator.Required(g.expr(), "expected an expression in if body")(open.Input)
		if outcome.Status != combinator.Success {
			return combinator.Fail[*ast.IfElseCase](open.Input, outcome.Err)
		}
		closeR := lexeme(g, g.symbol("}"))(outcome.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[*ast.IfElseCase](outcome.Input, &combinator.ParseError{Index: outcome.Input.Index, Message: "expected '}' to close if body"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.NewIfElseCase(span, cond.Value, outcome.Value))
	}
}

func (g *grammar) functionExpr() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		cur := in
		isAsync := false
		if a := lexeme(g, g.keyword("async"))(cur); a.IsSuccess() {
			isAsync = true
			cur = a.Input
		}
		isPure := false
		if p := lexeme(g, g.keyword("pure"))(cur); p.IsSuccess() {
			isPure = true
			cur = p.Input
		}
		var generics []*ast.GenericTypeParameter
		if open := lexeme(g, g.symbol("<"))(cur); open.IsSuccess() {
			gp := combinator.ManySep1(g.genericTypeParameter(), lexeme(g, g.symbol(",")))(open.Input)
			closeR := lexeme(g, g.symbol(">"))(gp.Input)
			if gp.IsSuccess() && closeR.IsSuccess() {
				generics = gp.Value
				cur = closeR.Input
			}
		}
		open := lexeme(g, g.symbol("("))(cur)
		if !open.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		params := combinator.ManySep0(g.nameAndType(), lexeme(g, g.symbol(",")))(open.Input)
		closeR := lexeme(g, g.symbol(")"))(params.Input)
		if !closeR.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		at := closeR.Input
		var ret ast.TypeExpression
		if colon := lexeme(g, g.symbol(":"))(at); colon.IsSuccess() {
			retR := combinator.Required(g.typeExprAtLevel(typeLevelUnion), "expected a return type after ':'")(colon.Input)
			if retR.Status != combinator.Success {
				return combinator.Fail[ast.Expression](colon.Input, retR.Err)
			}
			ret = retR.Value
			at = retR.Input
		}
		arrow := lexeme(g, g.symbol("=>"))(at)
		if !arrow.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		if block := lexeme(g, g.symbol("{"))(arrow.Input); block.IsSuccess() {
			stmts := combinator.Many0(g.statement())(block.Input)
			closeBlock := lexeme(g, g.symbol("}"))(stmts.Input)
			if !closeBlock.IsSuccess() {
				return combinator.Fail[ast.Expression](stmts.Input, &combinator.ParseError{Index: stmts.Input.Index, Message: "expected '}' to close function body"})
			}
			span := closeBlock.Input.SpanSince(in)
			return combinator.Ok(in, closeBlock.Input, span, ast.NewFunctionExpr(span, isAsync, isPure, generics, params.Value, ret, nil, stmts.Value))
		}
		body := combinator.Required(g.expr(), "expected an expression after '=>'")(arrow.Input)
		if body.Status != combinator.Success {
			return combinator.Fail[ast.Expression](arrow.Input, body.Err)
		}
		span := body.Input.SpanSince(in)
		return combinator.Ok(in, body.Input, span, ast.NewFunctionExpr(span, isAsync, isPure, generics, params.Value, ret, body.Value, nil))
	}
}

func (g *grammar) nameAndType() combinator.Parser[*ast.NameAndType] {
	return func(in source.Input) combinator.Result[*ast.NameAndType] {
		name := lexeme(g, g.plainIdentifier())(in)
		if !name.IsSuccess() {
			return combinator.NoMatch[*ast.NameAndType](in)
		}
		cur := name.Input
		var ty ast.TypeExpression
		if colon := lexeme(g, g.symbol(":"))(cur); colon.IsSuccess() {
			tyR := combinator.Required(g.typeExprAtLevel(typeLevelUnion), "expected a type after ':'")(colon.Input)
			if tyR.Status != combinator.Success {
				return combinator.Fail[*ast.NameAndType](colon.Input, tyR.Err)
			}
			ty = tyR.Value
			cur = tyR.Input
		}
		span := cur.SpanSince(in)
		return combinator.Ok(in, cur, span, ast.NewNameAndType(span, name.Value, ty))
	}
}

func (g *grammar) parenthesisExpr() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		open := lexeme(g, g.symbol("("))(in)
		if !open.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		body := backtrackDelimitedExpr(g.parenthesisBody(), ")")(open.Input)
		return combinator.Ok(in, body.Input, body.Input.SpanSince(in), body.Value)
	}
}

func (g *grammar) parenthesisBody() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		inner := combinator.Required(g.expr(), "expected an expression after '('")(in)
		if inner.Status != combinator.Success {
			return combinator.Fail[ast.Expression](in, inner.Err)
		}
		closeR := lexeme(g, g.symbol(")"))(inner.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.Expression](inner.Input, &combinator.ParseError{Index: inner.Input.Index, Message: "expected ')'"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.Expression(ast.NewParenthesis(span, inner.Value)))
	}
}

func (g *grammar) markupExpr() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		open := lexeme(g, g.symbol("<"))(in)
		if !open.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		tag := lexeme(g, g.plainIdentifier())(open.Input)
		if !tag.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		props := combinator.Many0(g.markupProp())(tag.Input)
		closeOpen := lexeme(g, g.symbol(">"))(props.Input)
		if !closeOpen.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		children := combinator.Many0(combinator.OneOf(g.markupExpr(), g.markupTextChild()))(closeOpen.Input)
		closeTagOpen := lexeme(g, g.symbol("</"))(children.Input)
		if !closeTagOpen.IsSuccess() {
			return combinator.Fail[ast.Expression](children.Input, &combinator.ParseError{Index: children.Input.Index, Message: "expected closing tag"})
		}
		closeName := combinator.Required(g.plainIdentifier(), "expected a closing tag name")(closeTagOpen.Input)
		if closeName.Status != combinator.Success {
			return combinator.Fail[ast.Expression](closeTagOpen.Input, closeName.Err)
		}
		closeFinal := lexeme(g, g.symbol(">"))(closeName.Input)
		if !closeFinal.IsSuccess() {
			return combinator.Fail[ast.Expression](closeName.Input, &combinator.ParseError{Index: closeName.Input.Index, Message: "expected '>' to finish closing tag"})
		}
		span := closeFinal.Input.SpanSince(in)
		return combinator.Ok(in, closeFinal.Input, span, ast.NewMarkupExpr(span, tag.Value, closeName.Value, props.Value, children.Value))
	}
}

func (g *grammar) markupProp() combinator.Parser[*ast.KeyValue] {
	return func(in source.Input) combinator.Result[*ast.KeyValue] {
		name := lexeme(g, g.plainIdentifier())(in)
		if !name.IsSuccess() {
			return combinator.NoMatch[*ast.KeyValue](in)
		}
		eq := lexeme(g, g.symbol("="))(name.Input)
		if !eq.IsSuccess() {
			return combinator.NoMatch[*ast.KeyValue](in)
		}
		brace := lexeme(g, g.symbol("{"))(eq.Input)
		if !brace.IsSuccess() {
			return combinator.NoMatch[*ast.KeyValue](in)
		}
		val := combinator.Required(g.expr(), "expected an expression inside '{'")(brace.Input)
		if val.Status != combinator.Success {
			return combinator.Fail[*ast.KeyValue](brace.Input, val.Err)
		}
		closeR := lexeme(g, g.symbol("}"))(val.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[*ast.KeyValue](val.Input, &combinator.ParseError{Index: val.Input.Index, Message: "expected '}' to close markup prop"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.NewKeyValue(span, name.Value, val.Value, nil))
	}
}

// markupTextChild handles a `{expr}` interpolation child; bare text nodes
// between tags are out of scope for this grammar (spec.md's markup
// expression models structure, not a full templating text mode).
func (g *grammar) markupTextChild() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		brace := lexeme(g, g.symbol("{"))(in)
		if !brace.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		val := combinator.Required(g.expr(), "expected an expression inside '{'")(brace.Input)
		if val.Status != combinator.Success {
			return combinator.Fail[ast.Expression](brace.Input, val.Err)
		}
		closeR := lexeme(g, g.symbol("}"))(val.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.Expression](val.Input, &combinator.ParseError{Index: val.Input.Index, Message: "expected '}' to close markup child"})
		}
		return combinator.Ok(in, closeR.Input, closeR.Input.SpanSince(in), val.Value)
	}
}

func (g *grammar) objectLiteralExpr() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		open := lexeme(g, g.symbol("{"))(in)
		if !open.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		body := backtrackDelimitedExpr(g.objectLiteralBody(), "}")(open.Input)
		return combinator.Ok(in, body.Input, body.Input.SpanSince(in), body.Value)
	}
}

func (g *grammar) objectLiteralBody() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		entries := combinator.ManySep0(g.objectLiteralEntry(), lexeme(g, g.symbol(",")))(in)
		closeR := lexeme(g, g.symbol("}"))(entries.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.Expression](entries.Input, &combinator.ParseError{Index: entries.Input.Index, Message: "expected '}' to close object literal"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.Expression(ast.NewObjectLiteral(span, ast.ContextExpression, entries.Value, nil)))
	}
}

func (g *grammar) objectLiteralEntry() combinator.Parser[ast.Node] {
	return combinator.OneOf(
		combinator.Map(combinator.Tuple2(
			lexeme(g, g.symbol("...")),
			combinator.Required(g.exprAtLevel(levelMarkup), "expected an expression after '...'"),
		), func(t combinator.Pair[string, ast.Expression], span source.Span) ast.Node {
			return ast.NewSpread(span, t.Second, nil)
		}),
		g.keyValueExprEntry(),
	)
}

func (g *grammar) keyValueExprEntry() combinator.Parser[ast.Node] {
	return func(in source.Input) combinator.Result[ast.Node] {
		key := lexeme(g, g.plainIdentifier())(in)
		if !key.IsSuccess() {
			return combinator.NoMatch[ast.Node](in)
		}
		colon := lexeme(g, g.symbol(":"))(key.Input)
		if !colon.IsSuccess() {
			return combinator.NoMatch[ast.Node](in)
		}
		val := combinator.Required(g.exprAtLevel(levelMarkup), "expected an expression after ':'")(colon.Input)
		if val.Status != combinator.Success {
			return combinator.Fail[ast.Node](colon.Input, val.Err)
		}
		span := val.Input.SpanSince(in)
		return combinator.Ok(in, val.Input, span, ast.Node(ast.NewKeyValue(span, key.Value, val.Value, nil)))
	}
}

func (g *grammar) arrayLiteralExpr() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		open := lexeme(g, g.symbol("["))(in)
		if !open.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		body := backtrackDelimitedExpr(g.arrayLiteralBody(), "]")(open.Input)
		return combinator.Ok(in, body.Input, body.Input.SpanSince(in), body.Value)
	}
}

func (g *grammar) arrayLiteralBody() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		elems := combinator.ManySep0(g.arrayLiteralElement(), lexeme(g, g.symbol(",")))(in)
		closeR := lexeme(g, g.symbol("]"))(elems.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.Expression](elems.Input, &combinator.ParseError{Index: elems.Input.Index, Message: "expected ']' to close array literal"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.Expression(ast.NewArrayLiteral(span, ast.ContextExpression, elems.Value, nil)))
	}
}

func (g *grammar) arrayLiteralElement() combinator.Parser[ast.Node] {
	return combinator.OneOf(
		combinator.Map(combinator.Tuple2(
			lexeme(g, g.symbol("...")),
			combinator.Required(g.exprAtLevel(levelMarkup), "expected an expression after '...'"),
		), func(t combinator.Pair[string, ast.Expression], span source.Span) ast.Node {
			return ast.NewSpread(span, t.Second, nil)
		}),
		combinator.Map(g.exprAtLevel(levelMarkup), func(e ast.Expression, span source.Span) ast.Node { return e }),
	)
}

func (g *grammar) primitiveLiteralExpr() combinator.Parser[ast.Expression] {
	return combinator.OneOf(
		combinator.Map(lexeme(g, g.stringLiteralToken()), func(v string, span source.Span) ast.Expression {
			return ast.NewStringLiteral(span, ast.ContextExpression, v, nil)
		}),
		combinator.Map(lexeme(g, g.numberLiteralToken()), func(v float64, span source.Span) ast.Expression {
			return ast.NewNumberLiteral(span, ast.ContextExpression, v, nil)
		}),
		combinator.Map(lexeme(g, g.keyword("true")), func(string, span source.Span) ast.Expression {
			return ast.NewBooleanLiteral(span, ast.ContextExpression, true, nil)
		}),
		combinator.Map(lexeme(g, g.keyword("false")), func(string, span source.Span) ast.Expression {
			return ast.NewBooleanLiteral(span, ast.ContextExpression, false, nil)
		}),
		combinator.Map(lexeme(g, g.keyword("nil")), func(string, span source.Span) ast.Expression {
			return ast.NewNilLiteral(span, ast.ContextExpression, nil)
		}),
	)
}

var reservedWords = map[string]bool{
	"true": true, "false": true, "nil": true, "if": true, "else": true,
	"switch": true, "case": true, "default": true, "typeof": true,
	"as": true, "async": true, "pure": true, "await": true, "detach": true,
	"const": true, "let": true, "return": true, "for": true, "of": true,
	"import": true, "export": true, "from": true, "type": true, "extends": true,
	"string": true, "number": true, "boolean": true, "unknown": true,
}

func (g *grammar) localIdentifierExpr() combinator.Parser[ast.Expression] {
	return func(in source.Input) combinator.Result[ast.Expression] {
		r := lexeme(g, g.identifierName())(in)
		if !r.IsSuccess() {
			return combinator.NoMatch[ast.Expression](in)
		}
		if reservedWords[r.Value] {
			return combinator.NoMatch[ast.Expression](in)
		}
		return combinator.Ok(in, r.Input, r.Span, ast.Expression(ast.NewLocalIdentifier(r.Span, r.Value)))
	}
}
