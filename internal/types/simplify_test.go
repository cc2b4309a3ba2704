package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/types"
)

func TestSimplifyType_FoldsNumericBinaryOperation(t *testing.T) {
	ctx := types.NewContext()
	expr := &types.BinaryOperationType{Left: numVal(2), Op: "+", Right: numVal(3)}
	got := types.SimplifyType(ctx, expr)
	num, ok := got.(*types.Number)
	require.True(t, ok, "expected *types.Number, got %T", got)
	require.NotNil(t, num.Value)
	assert.Equal(t, float64(5), *num.Value)
}

func TestSimplifyType_FoldsStringConcatenation(t *testing.T) {
	ctx := types.NewContext()
	expr := &types.BinaryOperationType{Left: strVal("foo"), Op: "+", Right: strVal("bar")}
	got := types.SimplifyType(ctx, expr)
	s, ok := got.(*types.String)
	require.True(t, ok, "expected *types.String, got %T", got)
	require.NotNil(t, s.Value)
	assert.Equal(t, "foobar", *s.Value)
}

func TestSimplifyType_IfElseDropsDefinitelyFalseBranch(t *testing.T) {
	ctx := types.NewContext()
	falseVal := false
	ifElse := &types.IfElseType{
		Branches: []types.IfElseBranch{
			{Condition: &types.Boolean{Value: &falseVal}, Outcome: numVal(12)},
		},
		Default: strVal("foo"),
	}
	got := types.SimplifyType(ctx, ifElse)
	s, ok := got.(*types.String)
	require.True(t, ok, "a single surviving outcome should be returned unwrapped, got %T", got)
	require.NotNil(t, s.Value)
	assert.Equal(t, "foo", *s.Value)
}

func TestSimplifyType_IfElseKeepsUndeterminedBranchesAsUnion(t *testing.T) {
	ctx := types.NewContext()
	ifElse := &types.IfElseType{
		Branches: []types.IfElseBranch{
			{Condition: &types.Boolean{}, Outcome: numVal(12)},
		},
		Default: strVal("foo"),
	}
	got := types.SimplifyType(ctx, ifElse)
	union, ok := got.(*types.Union)
	require.True(t, ok, "expected *types.Union, got %T", got)
	assert.Len(t, union.Members, 2)
}

func TestSimplifyType_InvocationBindsArgumentIntoReturnExpression(t *testing.T) {
	ctx := types.NewContext()
	fn := &types.Function{
		Params: []types.FunctionParam{{Name: "n", Type: &types.Number{}}},
		Return: &types.LocalIdentifier{Name: "n"},
	}
	inv := &types.InvocationType{Subject: fn, Args: []types.Type{numVal(9)}}
	got := types.SimplifyType(ctx, inv)
	num, ok := got.(*types.Number)
	require.True(t, ok, "expected the parameter name to resolve the argument's value into the return expression, got %T", got)
	require.NotNil(t, num.Value)
	assert.Equal(t, float64(9), *num.Value)
}

func TestSimplifyType_LocalIdentifierResolvesFromValueScope(t *testing.T) {
	ctx := types.NewContext().WithValue("x", numVal(7))
	got := types.SimplifyType(ctx, &types.LocalIdentifier{Name: "x"})
	num, ok := got.(*types.Number)
	require.True(t, ok, "expected *types.Number, got %T", got)
	require.NotNil(t, num.Value)
	assert.Equal(t, float64(7), *num.Value)
}
