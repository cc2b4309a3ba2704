package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/combinator"
)

func TestTuple2_SequencesBothParsers(t *testing.T) {
	p := combinator.Tuple2(combinator.Exact("let"), combinator.Exact(" x"))
	r := p(input("let x rest"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "let", r.Value.First)
	assert.Equal(t, " x", r.Value.Second)
	assert.Equal(t, " rest", r.Input.Remaining())
}

func TestTuple2_FailsIfSecondParserDoesNotMatch(t *testing.T) {
	p := combinator.Tuple2(combinator.Exact("let"), combinator.Exact(" x"))
	r := p(input("let y"))
	assert.False(t, r.IsSuccess())
}

func TestTuple3_SequencesThreeParsers(t *testing.T) {
	p := combinator.Tuple3(combinator.Exact("a"), combinator.Exact("b"), combinator.Exact("c"))
	r := p(input("abc"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "a", r.Value.First)
	assert.Equal(t, "b", r.Value.Second)
	assert.Equal(t, "c", r.Value.Third)
}

func TestTuple4_SequencesFourParsers(t *testing.T) {
	p := combinator.Tuple4(combinator.Exact("a"), combinator.Exact("b"), combinator.Exact("c"), combinator.Exact("d"))
	r := p(input("abcd"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "a", r.Value.First)
	assert.Equal(t, "b", r.Value.Second)
	assert.Equal(t, "c", r.Value.Third)
	assert.Equal(t, "d", r.Value.Fourth)
}
