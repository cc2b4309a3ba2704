package check

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/scope"
	"github.com/kpumuk/bagelcore/internal/types"
)

func checkAssignment(stmt *ast.AssignmentStatement, sink Sink) {
	if _, ok := stmt.Target.(*ast.PropertyAccess); ok {
		return
	}
	ident, ok := stmt.Target.(*ast.LocalIdentifier)
	if !ok {
		sink(Diagnostic{Code: "check/invalid-assignment-target", Message: "assignment target must be an identifier or a property access", Span: stmt.Span()})
		return
	}
	b, ok := scope.Resolve(stmt, scope.Value, ident.Name)
	if !ok {
		return // already reported by the local-identifier check
	}
	switch decl := b.Decl.(type) {
	case *ast.NameAndType:
		if isFunctionParam(decl) {
			sink(Diagnostic{Code: "check/assign-to-parameter", Message: "cannot assign to a function parameter", Span: stmt.Span()})
		}
	case *ast.VariableDeclaration:
		if decl.IsConst {
			sink(Diagnostic{Code: "check/assign-to-const", Message: "cannot assign to a const declaration", Span: stmt.Span()})
		}
	case *ast.VariableDeclStmt:
		if decl.IsConst {
			sink(Diagnostic{Code: "check/assign-to-const", Message: "cannot assign to a const declaration", Span: stmt.Span()})
		}
	}
}

func isFunctionParam(n *ast.NameAndType) bool {
	fn, ok := n.Parent().(*ast.FunctionExpr)
	if !ok {
		return false
	}
	for _, p := range fn.Params {
		if p == n {
			return true
		}
	}
	return false
}

func checkMarkup(m *ast.MarkupExpr, sink Sink) {
	if m.OpenTag.Name != m.CloseTag.Name {
		sink(Diagnostic{
			Code:    "check/markup-tag-mismatch",
			Message: fmt.Sprintf("closing tag </%s> does not match opening tag <%s>", m.CloseTag.Name, m.OpenTag.Name),
			Span:    m.Span(),
		})
	}
}

func checkPropertyAccess(p *ast.PropertyAccess, ctx *types.Context, sink Sink) {
	subjectKeys := types.SimplifyType(ctx, &types.KeysType{Of: types.InferType(ctx, p.Subject)})
	propertyType := types.SimplifyType(ctx, types.InferType(ctx, p.Property))
	issues := types.SubsumationIssues(ctx, subjectKeys, propertyType)
	if len(issues) == 0 {
		return
	}
	if lit, ok := p.Property.(*ast.StringLiteral); ok {
		sink(Diagnostic{
			Code:    "check/unknown-property",
			Message: fmt.Sprintf("Property %s doesn't exist on this type", lit.Value),
			Span:    p.Span(),
		})
		return
	}
	sink(Diagnostic{Code: "check/unknown-index", Message: "this index does not exist on the subject's type", Span: p.Span()})
}

func checkAsCast(cast *ast.AsCast, ctx *types.Context, sink Sink) {
	target := types.ResolveType(ctx, cast.Target)
	source := types.SimplifyType(ctx, types.InferType(ctx, cast.Expr))
	reportSubsumation(ctx, target, source, cast.Span(), sink)
}

func checkFunctionExpr(fn *ast.FunctionExpr, ctx *types.Context, sink Sink) *types.Context {
	next := ctx
	for _, p := range fn.Params {
		var ty types.Type = &types.Unknown{}
		if p.Type != nil {
			ty = types.ResolveType(ctx, p.Type)
		}
		next = next.WithValue(p.Name.Name, ty)
	}
	if fn.ReturnType != nil && fn.BodyExpr != nil {
		declared := types.ResolveType(ctx, fn.ReturnType)
		actual := types.SimplifyType(next, types.InferType(next, fn.BodyExpr))
		reportSubsumation(next, declared, actual, fn.BodyExpr.Span(), sink)
	}
	return next
}

func checkInvocation(inv *ast.Invocation, ctx *types.Context, sink Sink) {
	subject := types.SimplifyType(ctx, types.InferType(ctx, inv.Subject))
	if fn, ok := subject.(*types.Function); ok {
		args := lo.Map(inv.Args, func(a ast.Expression, _ int) types.Type {
			return types.SimplifyType(ctx, types.InferType(ctx, a))
		})
		paramTypes := lo.Map(fn.Params, func(p types.FunctionParam, _ int) types.Type { return p.Type })
		params := &types.Array{Tuple: true, Elements: paramTypes}
		argsType := &types.Array{Tuple: true, Elements: args}
		reportSubsumation(ctx, params, argsType, inv.Span(), sink)
	}
	checkAwaitDetachDiscipline(inv, sink)
}

// checkAwaitDetachDiscipline enforces spec.md §4.H's invocation
// await/detach rule against the declared async-ness of the callee, when
// the callee's async-ness is statically visible as a *ast.FunctionExpr.
func checkAwaitDetachDiscipline(inv *ast.Invocation, sink Sink) {
	isAsync, known := calleeIsAsync(inv.Subject)
	if !known {
		return
	}
	if isAsync && !inv.Await && !inv.Detach {
		sink(Diagnostic{Code: "check/missing-await-or-detach", Message: "calls to an async function require 'await' or 'detach'", Span: inv.Span()})
	}
	if !isAsync && (inv.Await || inv.Detach) {
		sink(Diagnostic{Code: "check/unexpected-await-or-detach", Message: "'await'/'detach' are only valid on async calls", Span: inv.Span()})
	}
	if inv.Detach {
		if _, isExprContext := inv.Parent().(ast.Expression); isExprContext {
			sink(Diagnostic{Code: "check/detach-in-expression", Message: "'detach' is not allowed in expression context", Span: inv.Span()})
		}
	}
}

func calleeIsAsync(subject ast.Expression) (bool, bool) {
	fn, ok := subject.(*ast.FunctionExpr)
	if !ok {
		return false, false
	}
	return fn.IsAsync, true
}

func checkBinaryOperation(op *ast.BinaryOperation, ctx *types.Context, sink Sink) {
	result := types.SimplifyType(ctx, types.InferType(ctx, op))
	if p, ok := result.(*types.Poisoned); ok {
		sink(Diagnostic{Code: "check/invalid-operation", Message: p.Reason, Span: op.Span()})
	}
}

func stmtConditions(s *ast.IfElseStatement) []ast.Expression {
	return lo.Map(s.Cases, func(c *ast.IfElseStmtCase, _ int) ast.Expression { return c.Condition })
}

// checkIfElseConditions flags a statement's branch condition that's
// statically true or false. It only runs for if-else statements: an
// if-else expression relies on exactly this short-circuit to drop dead
// branches during simplification, so the same condition there is the
// intended use, not a mistake.
func checkIfElseConditions(conds []ast.Expression, ctx *types.Context, sink Sink) {
	for _, cond := range conds {
		result := types.SimplifyType(ctx, types.InferType(ctx, cond))
		if types.IsDefinitelyTrue(result) || types.IsDefinitelyFalse(result) {
			sink(Diagnostic{Code: "check/redundant-conditional", Message: "conditional is redundant", Span: cond.Span()})
		}
	}
}

func checkRange(r *ast.RangeNode, sink Sink) {
	if r.Start != nil && r.End != nil && r.Start.Value > r.End.Value {
		sink(Diagnostic{Code: "check/invalid-range", Message: "range start must not be greater than its end", Span: r.Span()})
	}
}

func checkLocalIdentifier(id *ast.LocalIdentifier, sink Sink) {
	if _, ok := scope.Resolve(id, scope.Value, id.Name); !ok {
		sink(Diagnostic{Code: "check/unresolved-identifier", Message: fmt.Sprintf("'%s' is not defined", id.Name), Span: id.Span()})
	}
}

func checkParameterizedType(p *ast.ParameterizedType, ctx *types.Context, sink Sink) {
	inner := types.SimplifyType(ctx, types.ResolveType(ctx, p.Inner))
	generic, ok := inner.(*types.GenericType)
	if !ok {
		sink(Diagnostic{Code: "check/not-generic", Message: "this type is not generic and cannot be applied to type arguments", Span: p.Span()})
		return
	}
	n := len(generic.Params)
	if len(p.Args) < n {
		n = len(p.Args)
	}
	for i := 0; i < n; i++ {
		bound := generic.Params[i].Extends
		if bound == nil {
			continue
		}
		arg := types.SimplifyType(ctx, types.ResolveType(ctx, p.Args[i]))
		reportSubsumation(ctx, bound, arg, p.Args[i].Span(), sink)
	}
}
