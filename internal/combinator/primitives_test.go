package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/combinator"
	"github.com/kpumuk/bagelcore/internal/source"
)

func input(text string) source.Input {
	return source.NewInput(source.NewCode("<test>", text))
}

func TestExact(t *testing.T) {
	tests := []struct {
		name    string
		lit     string
		text    string
		matches bool
	}{
		{"matches prefix", "let", "let x", true},
		{"no match", "let", "const x", false},
		{"empty input", "let", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := combinator.Exact(tt.lit)(input(tt.text))
			assert.Equal(t, tt.matches, r.IsSuccess())
		})
	}
}

func TestTake0AndTake1(t *testing.T) {
	r0 := combinator.Take0(combinator.NumericChar)(input(""))
	require.True(t, r0.IsSuccess(), "Take0 always succeeds, even on no matches")
	assert.Equal(t, "", r0.Value)

	r1 := combinator.Take1(combinator.NumericChar)(input("abc"))
	assert.True(t, r1.IsNone(), "Take1 requires at least one match")

	r2 := combinator.Take1(combinator.NumericChar)(input("123abc"))
	require.True(t, r2.IsSuccess())
	assert.Equal(t, "123", r2.Value)
}

func TestOneOfTriesAlternativesInOrder(t *testing.T) {
	p := combinator.OneOf(combinator.Exact("const"), combinator.Exact("let"))
	r := p(input("let x"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "let", r.Value)
}

func TestRequiredFailsHard(t *testing.T) {
	p := combinator.Required(combinator.Exact("}"), "expected '}'")
	r := p(input("x"))
	assert.True(t, r.IsErr())
	require.Error(t, r.Err)
	assert.Contains(t, r.Err.Error(), "expected '}'")
}

func TestManySep0(t *testing.T) {
	p := combinator.ManySep0(combinator.NumericChar, combinator.Exact(","))
	r := p(input("1,2,3 rest"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, []byte{'1', '2', '3'}, r.Value)
	assert.Equal(t, " rest", r.Input.Remaining())
}
