package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/lsp"
)

func TestHover_ReportsInferredTypeOfLiteral(t *testing.T) {
	store := lsp.NewStore()
	doc := store.Open("file:///a.bagel", 1, "const x: number = 12\n")

	hover, err := lsp.Hover(doc, lsp.Position{Line: 0, Character: 19})
	require.NoError(t, err)
	require.NotNil(t, hover)
	assert.Equal(t, "12", hover.Contents)
	require.NotNil(t, hover.Range)
	assert.Equal(t, 0, hover.Range.Start.Line)
}

func TestHover_NilDocumentErrors(t *testing.T) {
	_, err := lsp.Hover(nil, lsp.Position{})
	assert.ErrorIs(t, err, lsp.ErrDocumentNotOpen)
}

func TestHover_PositionPastEndOfDocumentErrors(t *testing.T) {
	store := lsp.NewStore()
	doc := store.Open("file:///b.bagel", 1, "const x: number = 1\n")

	hover, err := lsp.Hover(doc, lsp.Position{Line: 10, Character: 0})
	assert.Error(t, err, "a position past the end of the document should fail to resolve to an offset")
	assert.Nil(t, hover)
}
