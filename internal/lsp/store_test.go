package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/lsp"
)

func TestStore_OpenParsesAndChecksDocument(t *testing.T) {
	store := lsp.NewStore()
	doc := store.Open("file:///a.bagel", 1, "const x: number = 12\n")
	require.NotNil(t, doc)
	assert.Equal(t, int32(1), doc.Version)
	assert.NotNil(t, doc.Module)
	assert.Empty(t, doc.Diagnostics)
}

func TestStore_OpenSurfacesCheckerDiagnostics(t *testing.T) {
	store := lsp.NewStore()
	doc := store.Open("file:///b.bagel", 1, "const x: number = 'hello'\n")
	require.NotNil(t, doc)
	assert.NotEmpty(t, doc.Diagnostics)
}

func TestStore_GetReturnsLatestSnapshot(t *testing.T) {
	store := lsp.NewStore()
	store.Open("file:///c.bagel", 1, "const x: number = 1\n")
	store.Open("file:///c.bagel", 2, "const x: number = 2\n")

	doc, err := store.Get("file:///c.bagel")
	require.NoError(t, err)
	assert.Equal(t, int32(2), doc.Version)
}

func TestStore_GetUnopenedDocumentErrors(t *testing.T) {
	store := lsp.NewStore()
	_, err := store.Get("file:///missing.bagel")
	assert.ErrorIs(t, err, lsp.ErrDocumentNotOpen)
}

func TestStore_CloseDropsDocument(t *testing.T) {
	store := lsp.NewStore()
	store.Open("file:///d.bagel", 1, "const x: number = 1\n")
	store.Close("file:///d.bagel")

	_, err := store.Get("file:///d.bagel")
	assert.ErrorIs(t, err, lsp.ErrDocumentNotOpen)
}
