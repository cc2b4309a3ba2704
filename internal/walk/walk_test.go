package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
	"github.com/kpumuk/bagelcore/internal/walk"
)

func TestWalkVisitsEveryDeclaration(t *testing.T) {
	code := source.NewCode("<test>", "const a: number = 1\nconst b: number = 2\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)

	var names []string
	walk.Walk(module, func(n ast.Node) bool {
		if vd, ok := n.(*ast.VariableDeclaration); ok {
			names = append(names, vd.Target.Name.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestFindNodeAt_ReturnsInnermostNode(t *testing.T) {
	text := "const x: number = 12\n"
	code := source.NewCode("<test>", text)
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)

	off := source.Offset(len("const x: number = "))
	n := walk.FindNodeAt(module, off)
	require.NotNil(t, n)

	lit, ok := n.(*ast.NumberLiteral)
	require.True(t, ok, "expected innermost node to be *ast.NumberLiteral, got %T", n)
	assert.Equal(t, float64(12), lit.Value)
}

func TestFindNodeAt_OutsideModuleSpanReturnsNil(t *testing.T) {
	code := source.NewCode("<test>", "const x: number = 1\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)

	n := walk.FindNodeAt(module, source.Offset(10_000))
	assert.Nil(t, n)
}
