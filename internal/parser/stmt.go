package parser

import (
	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/combinator"
	"github.com/kpumuk/bagelcore/internal/source"
)

// statement parses one statement inside a function body (spec.md §3
// "Statement (only inside function bodies)").
func (g *grammar) statement() combinator.Parser[ast.Statement] {
	return combinator.OneOf(
		g.variableDeclStmt(),
		g.returnStatement(),
		g.switchStatement(),
		g.ifElseStatement(),
		g.forLoopStatement(),
		g.assignmentOrInvocationStatement(),
	)
}

func (g *grammar) variableDeclStmt() combinator.Parser[ast.Statement] {
	return func(in source.Input) combinator.Result[ast.Statement] {
		var isConst bool
		kw := lexeme(g, g.keyword("const"))(in)
		if kw.IsSuccess() {
			isConst = true
		} else {
			kw = lexeme(g, g.keyword("let"))(in)
			if !kw.IsSuccess() {
				return combinator.NoMatch[ast.Statement](in)
			}
		}
		target := combinator.Required(g.nameAndType(), "expected a name after 'const'/'let'")(kw.Input)
		if target.Status != combinator.Success {
			return combinator.Fail[ast.Statement](kw.Input, target.Err)
		}
		eq := combinator.Required(lexeme(g, g.symbol("=")), "expected '=' in variable declaration")(target.Input)
		if eq.Status != combinator.Success {
			return combinator.Fail[ast.Statement](target.Input, eq.Err)
		}
		value := combinator.Required(g.expr(), "expected an expression after '='")(eq.Input)
		if value.Status != combinator.Success {
			return combinator.Fail[ast.Statement](eq.Input, value.Err)
		}
		span := value.Input.SpanSince(in)
		return combinator.Ok(in, value.Input, span, ast.Statement(ast.NewVariableDeclStmt(span, isConst, target.Value, value.Value)))
	}
}

func (g *grammar) returnStatement() combinator.Parser[ast.Statement] {
	return func(in source.Input) combinator.Result[ast.Statement] {
		kw := lexeme(g, g.keyword("return"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[ast.Statement](in)
		}
		valueR := g.expr()(kw.Input)
		var value ast.Expression
		end := kw.Input
		if valueR.IsSuccess() {
			value = valueR.Value
			end = valueR.Input
		}
		span := end.SpanSince(in)
		return combinator.Ok(in, end, span, ast.Statement(ast.NewReturnStatement(span, value)))
	}
}

func (g *grammar) switchStatement() combinator.Parser[ast.Statement] {
	return func(in source.Input) combinator.Result[ast.Statement] {
		kw := lexeme(g, g.keyword("switch"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[ast.Statement](in)
		}
		subject := combinator.Required(g.expr(), "expected an expression after 'switch'")(kw.Input)
		if subject.Status != combinator.Success {
			return combinator.Fail[ast.Statement](kw.Input, subject.Err)
		}
		open := lexeme(g, g.symbol("{"))(subject.Input)
		if !open.IsSuccess() {
			return combinator.Fail[ast.Statement](subject.Input, &combinator.ParseError{Index: subject.Input.Index, Message: "expected '{' after switch subject"})
		}
		cases := combinator.Many0(g.switchStmtCase())(open.Input)
		cur := cases.Input
		var def []ast.Statement
		if dkw := lexeme(g, g.keyword("default"))(cur); dkw.IsSuccess() {
			dopen := lexeme(g, g.symbol("{"))(dkw.Input)
			if dopen.IsSuccess() {
				body := combinator.Many0(g.statement())(dopen.Input)
				dclose := lexeme(g, g.symbol("}"))(body.Input)
				if dclose.IsSuccess() {
					def = body.Value
					cur = dclose.Input
				}
			}
		}
		closeR := lexeme(g, g.symbol("}"))(cur)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.Statement](cur, &combinator.ParseError{Index: cur.Index, Message: "expected '}' to close switch"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.Statement(ast.NewSwitchStatement(span, subject.Value, cases.Value, def)))
	}
}

func (g *grammar) switchStmtCase() combinator.Parser[*ast.SwitchStmtCase] {
	return func(in source.Input) combinator.Result[*ast.SwitchStmtCase] {
		kw := lexeme(g, g.keyword("case"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[*ast.SwitchStmtCase](in)
		}
		caseType := combinator.Required(g.typeExpr(), "expected a type after 'case'")(kw.Input)
		if caseType.Status != combinator.Success {
			return combinator.Fail[*ast.SwitchStmtCase](kw.Input, caseType.Err)
		}
		open := lexeme(g, g.symbol("{"))(caseType.Input)
		if !open.IsSuccess() {
			return combinator.Fail[*ast.SwitchStmtCase](caseType.Input, &combinator.ParseError{Index: caseType.Input.Index, Message: "expected '{' after case type"})
		}
		body := combinator.Many0(g.statement())(open.Input)
		closeR := lexeme(g, g.symbol("}"))(body.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[*ast.SwitchStmtCase](body.Input, &combinator.ParseError{Index: body.Input.Index, Message: "expected '}' to close case"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.NewSwitchStmtCase(span, caseType.Value, body.Value))
	}
}

func (g *grammar) ifElseStatement() combinator.Parser[ast.Statement] {
	return func(in source.Input) combinator.Result[ast.Statement] {
		first := g.ifElseStmtCase()(in)
		if !first.IsSuccess() {
			return combinator.NoMatch[ast.Statement](in)
		}
		cases := []*ast.IfElseStmtCase{first.Value}
		cur := first.Input
		var def []ast.Statement
		for {
			elseKw := lexeme(g, g.keyword("else"))(cur)
			if !elseKw.IsSuccess() {
				break
			}
			if next := g.ifElseStmtCase()(elseKw.Input); next.IsSuccess() {
				cases = append(cases, next.Value)
				cur = next.Input
				continue
			}
			open := lexeme(g, g.symbol("{"))(elseKw.Input)
			if !open.IsSuccess() {
				return combinator.Fail[ast.Statement](elseKw.Input, &combinator.ParseError{Index: elseKw.Input.Index, Message: "expected 'if' or '{' after 'else'"})
			}
			body := combinator.Many0(g.statement())(open.Input)
			closeR := lexeme(g, g.symbol("}"))(body.Input)
			if !closeR.IsSuccess() {
				return combinator.Fail[ast.Statement](body.Input, &combinator.ParseError{Index: body.Input.Index, Message: "expected '}' to close else body"})
			}
			def = body.Value
			cur = closeR.Input
			break
		}
		span := cur.SpanSince(in)
		return combinator.Ok(in, cur, span, ast.Statement(ast.NewIfElseStatement(span, cases, def)))
	}
}

func (g *grammar) ifElseStmtCase() combinator.Parser[*ast.IfElseStmtCase] {
	return func(in source.Input) combinator.Result[*ast.IfElseStmtCase] {
		kw := lexeme(g, g.keyword("if"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[*ast.IfElseStmtCase](in)
		}
		cond := combinator.Required(g.expr(), "expected a condition after 'if'")(kw.Input)
		if cond.Status != combinator.Success {
			return combinator.Fail[*ast.IfElseStmtCase](kw.Input, cond.Err)
		}
		open := lexeme(g, g.symbol("{"))(cond.Input)
		if !open.IsSuccess() {
			return combinator.Fail[*ast.IfElseStmtCase](cond.Input, &combinator.ParseError{Index: cond.Input.Index, Message: "expected '{' after condition"})
		}
		body := combinator.Many0(g.statement())(open.Input)
		closeR := lexeme(g, g.symbol("}"))(body.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[*ast.IfElseStmtCase](body.Input, &combinator.ParseError{Index: body.Input.Index, Message: "expected '}' to close if body"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.NewIfElseStmtCase(span, cond.Value, body.Value))
	}
}

func (g *grammar) forLoopStatement() combinator.Parser[ast.Statement] {
	return func(in source.Input) combinator.Result[ast.Statement] {
		kw := lexeme(g, g.keyword("for"))(in)
		if !kw.IsSuccess() {
			return combinator.NoMatch[ast.Statement](in)
		}
		item := combinator.Required(g.plainIdentifier(), "expected an item name after 'for'")(kw.Input)
		if item.Status != combinator.Success {
			return combinator.Fail[ast.Statement](kw.Input, item.Err)
		}
		cur := item.Input
		var index *ast.PlainIdentifier
		if comma := lexeme(g, g.symbol(","))(cur); comma.IsSuccess() {
			idx := combinator.Required(g.plainIdentifier(), "expected an index name after ','")(comma.Input)
			if idx.Status != combinator.Success {
				return combinator.Fail[ast.Statement](comma.Input, idx.Err)
			}
			index = idx.Value
			cur = idx.Input
		}
		ofKw := combinator.Required(lexeme(g, g.keyword("of")), "expected 'of' in for-loop")(cur)
		if ofKw.Status != combinator.Success {
			return combinator.Fail[ast.Statement](cur, ofKw.Err)
		}
		iterable := combinator.Required(g.expr(), "expected an iterable expression after 'of'")(ofKw.Input)
		if iterable.Status != combinator.Success {
			return combinator.Fail[ast.Statement](ofKw.Input, iterable.Err)
		}
		open := lexeme(g, g.symbol("{"))(iterable.Input)
		if !open.IsSuccess() {
			return combinator.Fail[ast.Statement](iterable.Input, &combinator.ParseError{Index: iterable.Input.Index, Message: "expected '{' after for-loop iterable"})
		}
		body := combinator.Many0(g.statement())(open.Input)
		closeR := lexeme(g, g.symbol("}"))(body.Input)
		if !closeR.IsSuccess() {
			return combinator.Fail[ast.Statement](body.Input, &combinator.ParseError{Index: body.Input.Index, Message: "expected '}' to close for-loop body"})
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.Statement(ast.NewForLoopStatement(span, item.Value, index, iterable.Value, body.Value)))
	}
}

// assignmentOrInvocationStatement parses an expression and then decides,
// by what follows, whether it's an assignment target, a bare invocation
// statement, or neither (a hard error — expressions aren't statements on
// their own, per spec.md §3's Statement category).
func (g *grammar) assignmentOrInvocationStatement() combinator.Parser[ast.Statement] {
	return func(in source.Input) combinator.Result[ast.Statement] {
		lhs := g.expr()(in)
		if !lhs.IsSuccess() {
			return combinator.NoMatch[ast.Statement](in)
		}
		eq := lexeme(g, g.symbol("="))(lhs.Input)
		if eq.IsSuccess() {
			rhs := combinator.Required(g.expr(), "expected an expression after '='")(eq.Input)
			if rhs.Status != combinator.Success {
				return combinator.Fail[ast.Statement](eq.Input, rhs.Err)
			}
			span := rhs.Input.SpanSince(in)
			return combinator.Ok(in, rhs.Input, span, ast.Statement(ast.NewAssignmentStatement(span, lhs.Value, rhs.Value)))
		}
		if inv, ok := lhs.Value.(*ast.Invocation); ok {
			span := lhs.Input.SpanSince(in)
			return combinator.Ok(in, lhs.Input, span, ast.Statement(ast.NewInvocationStatement(span, inv)))
		}
		return combinator.Fail[ast.Statement](in, &combinator.ParseError{Index: in.Index, Message: "expected an assignment or invocation statement"})
	}
}
