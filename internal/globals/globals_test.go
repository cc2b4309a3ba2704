package globals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpumuk/bagelcore/internal/globals"
)

func TestLookup_ValuesNamespace(t *testing.T) {
	decl, ok := globals.Lookup(false, "Log")
	assert.True(t, ok)
	assert.NotNil(t, decl)

	decl, ok = globals.Lookup(false, "Math")
	assert.True(t, ok)
	assert.NotNil(t, decl)

	decl, ok = globals.Lookup(false, "range")
	assert.True(t, ok)
	assert.NotNil(t, decl)
}

func TestLookup_TypesNamespace(t *testing.T) {
	decl, ok := globals.Lookup(true, "Range")
	assert.True(t, ok)
	assert.NotNil(t, decl)
}

func TestLookup_UnknownNameNotFound(t *testing.T) {
	_, ok := globals.Lookup(false, "DoesNotExist")
	assert.False(t, ok)

	_, ok = globals.Lookup(true, "DoesNotExist")
	assert.False(t, ok)
}

func TestLookup_NamespacesAreIndependent(t *testing.T) {
	_, ok := globals.Lookup(true, "Log")
	assert.False(t, ok, "Log is a value, not a type")

	_, ok = globals.Lookup(false, "Range")
	assert.False(t, ok, "Range is a type, not a value")
}
