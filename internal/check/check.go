// Package check runs the single diagnostic-producing traversal over a
// parsed module: one arm per node kind, each validating that node and
// then recursing into its children with whatever scope extension that
// node kind introduces (spec.md §4.H).
package check

import (
	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/source"
	"github.com/kpumuk/bagelcore/internal/types"
)

// Diagnostic is the checker's diagnostic shape; it's the same shape the
// parser already reports with, so callers can merge both lists and sort
// them once with diag.SortDiagnostics.
type Diagnostic = diag.Diagnostic

// Sink receives diagnostics as they're found (spec.md §4.H "Diagnostics
// are delivered by calling a user-supplied error sink").
type Sink func(Diagnostic)

// Module runs every validation in spec.md §4.H over module, reporting
// through sink. module must already have had ast.AttachParents run over
// it (parser.ParseModule does this).
func Module(module *ast.Module, sink Sink) {
	ctx := RootContext(module)
	checkNode(module, ctx, sink)
}

// RootContext seeds the type scope from every module-level type
// declaration and the value scope from every module-level variable
// declaration, so NamedType/LocalIdentifier references into top-level
// declarations simplify instead of staying opaque placeholders. It's
// exported so callers that need to infer a type outside a full checker
// run (the language server's hover handler) can seed the same context.
func RootContext(module *ast.Module) *types.Context {
	ctx := types.NewContext()
	for _, decl := range module.Declarations {
		switch d := decl.(type) {
		case *ast.TypeDeclaration:
			ctx.TypeScope.Set(d.Name.Name, types.ResolveType(ctx, d.Value))
		case *ast.VariableDeclaration:
			ctx.ValueScope.Set(d.Target.Name.Name, types.InferType(ctx, d.Value))
		}
	}
	return ctx
}

func checkNode(n ast.Node, ctx *types.Context, sink Sink) {
	if n == nil {
		return
	}
	next := validate(n, ctx, sink)
	for _, child := range ast.Children(n) {
		checkNode(child, next, sink)
	}
}

// validate runs the node-specific check for n and returns the context its
// children should see — extended with any bindings n introduces at a
// module or function-expression boundary (spec.md §4.H step 2).
func validate(n ast.Node, ctx *types.Context, sink Sink) *types.Context {
	switch node := n.(type) {
	case *ast.VariableDeclaration:
		checkVariableTarget(node.Target, node.Value, ctx, sink)
	case *ast.VariableDeclStmt:
		checkVariableTarget(node.Target, node.Value, ctx, sink)
	case *ast.AssignmentStatement:
		checkAssignment(node, sink)
	case *ast.MarkupExpr:
		checkMarkup(node, sink)
	case *ast.PropertyAccess:
		checkPropertyAccess(node, ctx, sink)
	case *ast.AsCast:
		checkAsCast(node, ctx, sink)
	case *ast.FunctionExpr:
		return checkFunctionExpr(node, ctx, sink)
	case *ast.Invocation:
		checkInvocation(node, ctx, sink)
	case *ast.BinaryOperation:
		checkBinaryOperation(node, ctx, sink)
	case *ast.IfElseStatement:
		checkIfElseConditions(stmtConditions(node), ctx, sink)
	case *ast.RangeNode:
		checkRange(node, sink)
	case *ast.LocalIdentifier:
		checkLocalIdentifier(node, sink)
	case *ast.ParameterizedType:
		checkParameterizedType(node, ctx, sink)
	case *ast.BrokenExprSubtree:
		sink(Diagnostic{Code: "check/broken-subtree", Message: node.Message, Span: node.Span()})
	case *ast.BrokenTypeSubtree:
		sink(Diagnostic{Code: "check/broken-subtree", Message: node.Message, Span: node.Span()})
	case *ast.BrokenStmtSubtree:
		sink(Diagnostic{Code: "check/broken-subtree", Message: node.Message, Span: node.Span()})
	}
	return ctx
}

func checkVariableTarget(target *ast.NameAndType, value ast.Expression, ctx *types.Context, sink Sink) {
	if target.Type == nil {
		return
	}
	declared := types.SimplifyType(ctx, types.ResolveType(ctx, target.Type))
	actual := types.SimplifyType(ctx, types.InferType(ctx, value))
	reportSubsumation(ctx, declared, actual, value.Span(), sink)
}

// reportSubsumation runs SubsumationIssues(to, from) and, if it's
// non-empty, reports the first issue as the primary diagnostic and the
// rest as details, all located at span (spec.md §4.H "first issue in the
// primary diagnostic, remaining issues as related details").
func reportSubsumation(ctx *types.Context, to, from types.Type, span source.Span, sink Sink) {
	issues := types.SubsumationIssues(ctx, to, from)
	if len(issues) == 0 {
		return
	}
	d := Diagnostic{Code: "check/type-mismatch", Message: issues[0], Span: span}
	for _, extra := range issues[1:] {
		d.Details = append(d.Details, diag.Detail{Message: extra, Span: span})
	}
	sink(d)
}
