package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpumuk/bagelcore/internal/types"
)

func numVal(v float64) *types.Number { return &types.Number{Value: &v} }
func strVal(v string) *types.String  { return &types.String{Value: &v} }

func TestSubsumationIssues_LiteralIntoWidened(t *testing.T) {
	ctx := types.NewContext()
	assert.Empty(t, types.SubsumationIssues(ctx, &types.Number{}, numVal(12)),
		"a number literal should subsume into the unbounded number type")
}

func TestSubsumationIssues_StringIntoNumberMismatches(t *testing.T) {
	ctx := types.NewContext()
	issues := types.SubsumationIssues(ctx, &types.Number{}, strVal("hello world"))
	assert.Equal(t, []string{"Can't assign 'hello world' into number"}, issues)
}

func TestSubsumationIssues_UnionMember(t *testing.T) {
	ctx := types.NewContext()
	union := &types.Union{Members: []types.Type{&types.Number{}, &types.String{}}}
	assert.Empty(t, types.SubsumationIssues(ctx, union, numVal(1)))
	assert.Empty(t, types.SubsumationIssues(ctx, union, strVal("x")))
	assert.NotEmpty(t, types.SubsumationIssues(ctx, union, &types.Boolean{}))
}

func TestSubsumationIssues_PoisonedAbsorbsEitherSide(t *testing.T) {
	ctx := types.NewContext()
	poisoned := &types.Poisoned{Reason: "broken"}
	assert.Empty(t, types.SubsumationIssues(ctx, poisoned, &types.Number{}))
	assert.Empty(t, types.SubsumationIssues(ctx, &types.Number{}, poisoned))
}

func TestSubsumationIssues_TupleArity(t *testing.T) {
	ctx := types.NewContext()
	to := &types.Array{Tuple: true, Elements: []types.Type{&types.Number{}, &types.Number{}}}
	from := &types.Array{Tuple: true, Elements: []types.Type{numVal(1)}}
	issues := types.SubsumationIssues(ctx, to, from)
	assert.Equal(t, []string{"Array type [1] has fewer elements than destination array type [number, number]"}, issues)
}
