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

func parseTypeExpr(t *testing.T, text string) ast.TypeExpression {
	t.Helper()
	code := source.NewCode("<test>", "type T = "+text+"\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)
	require.Len(t, module.Declarations, 1)
	td := module.Declarations[0].(*ast.TypeDeclaration)
	return td.Value
}

func TestResolveType_Primitives(t *testing.T) {
	ctx := types.NewContext()

	numTy := types.ResolveType(ctx, parseTypeExpr(t, "number"))
	_, ok := numTy.(*types.Number)
	assert.True(t, ok, "expected *types.Number, got %T", numTy)

	strTy := types.ResolveType(ctx, parseTypeExpr(t, "string"))
	_, ok = strTy.(*types.String)
	assert.True(t, ok, "expected *types.String, got %T", strTy)
}

func TestResolveType_Union(t *testing.T) {
	ctx := types.NewContext()
	got := types.ResolveType(ctx, parseTypeExpr(t, "number | string"))
	union, ok := got.(*types.Union)
	require.True(t, ok, "expected *types.Union, got %T", got)
	assert.Len(t, union.Members, 2)
}

func TestResolveType_NamedTypeIsNotSimplified(t *testing.T) {
	ctx := types.NewContext()
	got := types.ResolveType(ctx, parseTypeExpr(t, "Foo"))
	named, ok := got.(*types.NamedType)
	require.True(t, ok, "ResolveType should leave named references unresolved, got %T", got)
	assert.Equal(t, "Foo", named.Name)
}

func TestResolveType_TupleArrayType(t *testing.T) {
	ctx := types.NewContext()
	got := types.ResolveType(ctx, parseTypeExpr(t, "[number, string]"))
	arr, ok := got.(*types.Array)
	require.True(t, ok, "expected *types.Array, got %T", got)
	assert.True(t, arr.Tuple)
	assert.Len(t, arr.Elements, 2)
}
