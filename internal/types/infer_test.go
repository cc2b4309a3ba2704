package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
	"github.com/kpumuk/bagelcore/internal/types"
)

func parseValueExpr(t *testing.T, text string) ast.Expression {
	t.Helper()
	code := source.NewCode("<test>", "const x = "+text+"\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)
	require.Len(t, module.Declarations, 1)
	vd := module.Declarations[0].(*ast.VariableDeclaration)
	return vd.Value
}

func TestInferType_Literals(t *testing.T) {
	ctx := types.NewContext()

	num, ok := types.InferType(ctx, parseValueExpr(t, "12")).(*types.Number)
	require.True(t, ok)
	assert.Equal(t, float64(12), *num.Value)

	str, ok := types.InferType(ctx, parseValueExpr(t, "'hi'")).(*types.String)
	require.True(t, ok)
	assert.Equal(t, "hi", *str.Value)

	_, ok = types.InferType(ctx, parseValueExpr(t, "nil")).(*types.Nil)
	assert.True(t, ok)
}

func TestInferType_ArrayLiteralIsTuple(t *testing.T) {
	ctx := types.NewContext()
	got := types.InferType(ctx, parseValueExpr(t, "[1, 'two']"))
	arr, ok := got.(*types.Array)
	require.True(t, ok, "expected *types.Array, got %T", got)
	assert.True(t, arr.Tuple)
	assert.Len(t, arr.Elements, 2)
}

func TestInferType_BinaryOperationIsComputed(t *testing.T) {
	ctx := types.NewContext()
	got := types.InferType(ctx, parseValueExpr(t, "1 + 2"))
	binOp, ok := got.(*types.BinaryOperationType)
	require.True(t, ok, "InferType should not eagerly fold; expected *types.BinaryOperationType, got %T", got)
	assert.Equal(t, "+", binOp.Op)

	simplified := types.SimplifyType(ctx, got)
	num, ok := simplified.(*types.Number)
	require.True(t, ok, "expected folding to happen on simplify, got %T", simplified)
	assert.Equal(t, float64(3), *num.Value)
}

func TestInferType_FunctionExprWithAnnotatedParams(t *testing.T) {
	ctx := types.NewContext()
	got := types.InferType(ctx, parseValueExpr(t, "(n: number) => n"))
	fn, ok := got.(*types.Function)
	require.True(t, ok, "expected *types.Function, got %T", got)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "n", fn.Params[0].Name)
	_, ok = fn.Params[0].Type.(*types.Number)
	assert.True(t, ok, "expected the parameter to resolve to *types.Number, got %T", fn.Params[0].Type)
}
