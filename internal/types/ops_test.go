package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/types"
)

func TestSimplifyType_BinaryOperation_UnboundedNumericAddition(t *testing.T) {
	ctx := types.NewContext()
	got := types.SimplifyType(ctx, &types.BinaryOperationType{Left: &types.Number{}, Op: "+", Right: &types.Number{}})
	_, ok := got.(*types.Number)
	assert.True(t, ok, "unbounded number + unbounded number widens to number, got %T", got)
}

func TestSimplifyType_BinaryOperation_InvalidOperandsArePoisoned(t *testing.T) {
	ctx := types.NewContext()
	got := types.SimplifyType(ctx, &types.BinaryOperationType{Left: &types.Boolean{}, Op: "-", Right: &types.Number{}})
	p, ok := got.(*types.Poisoned)
	require.True(t, ok, "expected *types.Poisoned, got %T", got)
	assert.NotEmpty(t, p.Reason)
}

func TestSimplifyType_BinaryOperation_ComparisonYieldsBoolean(t *testing.T) {
	ctx := types.NewContext()
	got := types.SimplifyType(ctx, &types.BinaryOperationType{Left: &types.Number{}, Op: "==", Right: &types.String{}})
	_, ok := got.(*types.Boolean)
	assert.True(t, ok, "expected *types.Boolean, got %T", got)
}

func TestSimplifyType_BinaryOperation_NullishCoalescingExcludesNilFromUnion(t *testing.T) {
	ctx := types.NewContext()
	left := &types.Union{Members: []types.Type{&types.Number{}, &types.Nil{}}}
	got := types.SimplifyType(ctx, &types.BinaryOperationType{Left: left, Op: "??", Right: &types.String{}})
	union, ok := got.(*types.Union)
	require.True(t, ok, "expected *types.Union, got %T", got)
	assert.Len(t, union.Members, 2)
	for _, m := range union.Members {
		_, isNil := m.(*types.Nil)
		assert.False(t, isNil, "nil should be excluded from the left side of '??'")
	}
}

func TestSimplifyType_BinaryOperation_NullishCoalescingOnBareNilReturnsRight(t *testing.T) {
	ctx := types.NewContext()
	got := types.SimplifyType(ctx, &types.BinaryOperationType{Left: &types.Nil{}, Op: "??", Right: &types.String{}})
	_, ok := got.(*types.String)
	assert.True(t, ok, "nil ?? right should collapse to right, got %T", got)
}
