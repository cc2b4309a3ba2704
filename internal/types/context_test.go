package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/types"
)

func TestContext_WithValueDoesNotMutateOriginal(t *testing.T) {
	base := types.NewContext()
	extended := base.WithValue("x", &types.Number{})

	_, ok := base.ValueScope.Get("x")
	assert.False(t, ok, "WithValue must not mutate the receiver")

	bound, ok := extended.ValueScope.Get("x")
	require.True(t, ok)
	_, ok = bound.(*types.Number)
	assert.True(t, ok)
}

func TestContext_WithTypeDoesNotMutateOriginal(t *testing.T) {
	base := types.NewContext()
	extended := base.WithType("T", &types.String{})

	_, ok := base.TypeScope.Get("T")
	assert.False(t, ok)

	_, ok = extended.TypeScope.Get("T")
	assert.True(t, ok)
}

func TestContext_WithValuePreservesExistingBindings(t *testing.T) {
	base := types.NewContext().WithValue("a", &types.Number{})
	extended := base.WithValue("b", &types.String{})

	_, ok := extended.ValueScope.Get("a")
	assert.True(t, ok, "extending the scope should not drop earlier bindings")
	_, ok = extended.ValueScope.Get("b")
	assert.True(t, ok)
}
