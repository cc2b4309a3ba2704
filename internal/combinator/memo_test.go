package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/combinator"
	"github.com/kpumuk/bagelcore/internal/source"
)

func TestMemo_CachesRepeatedAttemptsAtSamePosition(t *testing.T) {
	cache := combinator.NewMemoCache()
	calls := 0
	counting := func(in source.Input) combinator.Result[string] {
		calls++
		return combinator.Exact("let")(in)
	}
	p := combinator.Memo(cache, "keyword-let", counting)

	in := input("let x")
	r1 := p(in)
	r2 := p(in)

	require.True(t, r1.IsSuccess())
	require.True(t, r2.IsSuccess())
	assert.Equal(t, 1, calls, "second attempt at the same rule/position should hit the cache")
	assert.Equal(t, r1.Value, r2.Value)
}

func TestMemo_DistinctPositionsAreNotConflated(t *testing.T) {
	cache := combinator.NewMemoCache()
	calls := 0
	counting := func(in source.Input) combinator.Result[string] {
		calls++
		return combinator.Exact("x")(in)
	}
	p := combinator.Memo(cache, "x", counting)

	full := input("xx")
	r1 := p(full)
	require.True(t, r1.IsSuccess())
	r2 := p(r1.Input)
	require.True(t, r2.IsSuccess())

	assert.Equal(t, 2, calls, "different positions must each invoke the wrapped parser once")
}
