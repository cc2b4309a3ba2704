package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
)

func parse(t *testing.T, text string) (*ast.Module, []ast.Declaration) {
	t.Helper()
	code := source.NewCode("<test>", text)
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags, "expected no parse diagnostics")
	require.NotNil(t, module)
	return module, module.Declarations
}

func TestParseModule_VariableDeclaration(t *testing.T) {
	_, decls := parse(t, "const x: number = 12\n")
	require.Len(t, decls, 1)

	vd, ok := decls[0].(*ast.VariableDeclaration)
	require.True(t, ok, "expected *ast.VariableDeclaration, got %T", decls[0])
	assert.True(t, vd.IsConst)
	assert.Equal(t, "x", vd.Target.Name.Name)

	lit, ok := vd.Value.(*ast.NumberLiteral)
	require.True(t, ok, "expected *ast.NumberLiteral, got %T", vd.Value)
	assert.Equal(t, float64(12), lit.Value)
}

func TestParseModule_TypeDeclaration(t *testing.T) {
	_, decls := parse(t, "type Pair = [number, number]\n")
	require.Len(t, decls, 1)

	td, ok := decls[0].(*ast.TypeDeclaration)
	require.True(t, ok, "expected *ast.TypeDeclaration, got %T", decls[0])
	assert.Equal(t, "Pair", td.Name.Name)
}

func TestParseModule_MultipleDeclarations(t *testing.T) {
	_, decls := parse(t, "const a: number = 1\nconst b: number = 2\nconst c: number = 3\n")
	require.Len(t, decls, 3)
	for i, d := range decls {
		vd, ok := d.(*ast.VariableDeclaration)
		require.True(t, ok, "decl %d: expected *ast.VariableDeclaration, got %T", i, d)
		assert.True(t, vd.IsConst)
	}
}

func TestParseModule_PreservesLeadingComment(t *testing.T) {
	module, diags := parser.ParseModule(source.NewCode("<test>", "// a note\nconst x: number = 1\n"))
	require.Empty(t, diags)
	require.Len(t, module.Declarations, 1)

	vd := module.Declarations[0].(*ast.VariableDeclaration)
	leading := vd.PrecedingComments()
	require.Len(t, leading, 1)
	assert.Equal(t, " a note", leading[0].Text)
}

func TestParseModule_ReportsTrailingGarbage(t *testing.T) {
	_, diags := parser.ParseModule(source.NewCode("<test>", "const x: number = 1\n)))\n"))
	assert.NotEmpty(t, diags, "trailing unparsable input should produce a diagnostic")
}
