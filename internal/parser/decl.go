package parser

import (
	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/combinator"
	"github.com/kpumuk/bagelcore/internal/source"
)

// declaration parses one top-level import/type/variable declaration,
// attaching leading as its preceding-comment cluster (spec.md §4.D
// "Declarations").
func (g *grammar) declaration(leading []*ast.Comment) combinator.Parser[ast.Declaration] {
	return combinator.OneOf(
		g.importDeclaration(leading),
		g.typeDeclaration(leading),
		g.variableDeclaration(leading),
	)
}

func (g *grammar) exportPrefix(in source.Input) (source.Input, bool) {
	r := lexeme(g, g.keyword("export"))(in)
	if r.IsSuccess() {
		return r.Input, true
	}
	return in, false
}

func (g *grammar) importDeclaration(leading []*ast.Comment) combinator.Parser[ast.Declaration] {
	return func(in source.Input) combinator.Result[ast.Declaration] {
		cur, exported := g.exportPrefix(in)
		kw := lexeme(g, g.keyword("from"))(cur)
		if !kw.IsSuccess() {
			return combinator.NoMatch[ast.Declaration](in)
		}
		from := combinator.Required(lexeme(g, g.stringLiteralToken()), "expected a module path string after 'from'")(kw.Input)
		if from.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](kw.Input, from.Err)
		}
		fromNode := ast.NewStringLiteral(from.Span, ast.ContextExpression, from.Value, nil)
		importKw := combinator.Required(lexeme(g, g.keyword("import")), "expected 'import' after module path")(from.Input)
		if importKw.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](from.Input, importKw.Err)
		}
		open := combinator.Required(lexeme(g, g.symbol("{")), "expected '{' after 'import'")(importKw.Input)
		if open.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](importKw.Input, open.Err)
		}
		items := combinator.ManySep0(g.importItem(), lexeme(g, g.symbol(",")))(open.Input)
		closeR := combinator.Required(lexeme(g, g.symbol("}")), "expected '}' to close import list")(items.Input)
		if closeR.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](items.Input, closeR.Err)
		}
		span := closeR.Input.SpanSince(in)
		return combinator.Ok(in, closeR.Input, span, ast.Declaration(ast.NewImportDeclaration(span, exported, fromNode, items.Value, leading)))
	}
}

func (g *grammar) importItem() combinator.Parser[*ast.ImportItem] {
	return combinator.Map(lexeme(g, g.plainIdentifier()), func(name *ast.PlainIdentifier, span source.Span) *ast.ImportItem {
		return ast.NewImportItem(span, name)
	})
}

func (g *grammar) typeDeclaration(leading []*ast.Comment) combinator.Parser[ast.Declaration] {
	return func(in source.Input) combinator.Result[ast.Declaration] {
		cur, exported := g.exportPrefix(in)
		kw := lexeme(g, g.keyword("type"))(cur)
		if !kw.IsSuccess() {
			return combinator.NoMatch[ast.Declaration](in)
		}
		name := combinator.Required(g.plainIdentifier(), "expected a name after 'type'")(kw.Input)
		if name.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](kw.Input, name.Err)
		}
		cur2 := name.Input
		var generics []*ast.GenericTypeParameter
		if open := lexeme(g, g.symbol("<"))(cur2); open.IsSuccess() {
			gp := combinator.Required(combinator.ManySep1(g.genericTypeParameter(), lexeme(g, g.symbol(","))), "expected generic parameters")(open.Input)
			if gp.Status != combinator.Success {
				return combinator.Fail[ast.Declaration](open.Input, gp.Err)
			}
			closeR := combinator.Required(lexeme(g, g.symbol(">")), "expected '>' to close generic parameter list")(gp.Input)
			if closeR.Status != combinator.Success {
				return combinator.Fail[ast.Declaration](gp.Input, closeR.Err)
			}
			generics = gp.Value
			cur2 = closeR.Input
		}
		eq := combinator.Required(lexeme(g, g.symbol("=")), "expected '=' in type declaration")(cur2)
		if eq.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](cur2, eq.Err)
		}
		value := combinator.Required(g.typeExpr(), "expected a type expression after '='")(eq.Input)
		if value.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](eq.Input, value.Err)
		}
		span := value.Input.SpanSince(in)
		return combinator.Ok(in, value.Input, span, ast.Declaration(ast.NewTypeDeclaration(span, exported, name.Value, generics, value.Value, leading)))
	}
}

func (g *grammar) variableDeclaration(leading []*ast.Comment) combinator.Parser[ast.Declaration] {
	return func(in source.Input) combinator.Result[ast.Declaration] {
		cur, exported := g.exportPrefix(in)
		var isConst bool
		kw := lexeme(g, g.keyword("const"))(cur)
		if kw.IsSuccess() {
			isConst = true
		} else {
			kw = lexeme(g, g.keyword("let"))(cur)
			if !kw.IsSuccess() {
				return combinator.NoMatch[ast.Declaration](in)
			}
		}
		target := combinator.Required(g.nameAndType(), "expected a name after 'const'/'let'")(kw.Input)
		if target.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](kw.Input, target.Err)
		}
		eq := combinator.Required(lexeme(g, g.symbol("=")), "expected '=' in variable declaration")(target.Input)
		if eq.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](target.Input, eq.Err)
		}
		value := combinator.Required(g.expr(), "expected an expression after '='")(eq.Input)
		if value.Status != combinator.Success {
			return combinator.Fail[ast.Declaration](eq.Input, value.Err)
		}
		span := value.Input.SpanSince(in)
		return combinator.Ok(in, value.Input, span, ast.Declaration(ast.NewVariableDeclaration(span, exported, isConst, target.Value, value.Value, leading)))
	}
}
