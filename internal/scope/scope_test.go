package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/scope"
	"github.com/kpumuk/bagelcore/internal/source"
)

func TestResolve_ModuleLevelConst(t *testing.T) {
	code := source.NewCode("<test>", "const x: number = 1\nconst y: number = x\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)
	require.Len(t, module.Declarations, 2)

	second := module.Declarations[1].(*ast.VariableDeclaration)
	use := second.Value.(*ast.LocalIdentifier)

	b, ok := scope.Resolve(use, scope.Value, "x")
	require.True(t, ok)
	vd, ok := b.Decl.(*ast.NameAndType)
	require.True(t, ok, "expected *ast.NameAndType, got %T", b.Decl)
	assert.Equal(t, "x", vd.Name.Name)
}

func TestResolve_FunctionParamShadowsOuterScope(t *testing.T) {
	code := source.NewCode("<test>", "const x: number = 1\nconst f = (x: number) => x\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)
	require.Len(t, module.Declarations, 2)

	outer := module.Declarations[0].(*ast.VariableDeclaration)
	fn := module.Declarations[1].(*ast.VariableDeclaration).Value.(*ast.FunctionExpr)
	use := fn.BodyExpr.(*ast.LocalIdentifier)

	b, ok := scope.Resolve(use, scope.Value, "x")
	require.True(t, ok)
	param, ok := b.Decl.(*ast.NameAndType)
	require.True(t, ok, "expected the function parameter, got %T", b.Decl)
	assert.Equal(t, "x", param.Name.Name)
	assert.NotSame(t, outer.Target, b.Decl, "resolving inside the function body must not return the outer const")
}

func TestResolve_FallsBackToGlobals(t *testing.T) {
	code := source.NewCode("<test>", "const x: number = 1\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)

	b, ok := scope.Resolve(module, scope.Value, "Math")
	require.True(t, ok)
	assert.Equal(t, "Math", b.Name)
}

func TestResolve_UnknownNameNotFound(t *testing.T) {
	code := source.NewCode("<test>", "const x: number = 1\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)

	_, ok := scope.Resolve(module, scope.Value, "nope")
	assert.False(t, ok)
}
