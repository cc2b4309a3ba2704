package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
	"github.com/kpumuk/bagelcore/internal/walk"
)

// TestArrayLiteralWithInteriorComment exercises the scenario described in
// spec.md's worked examples: an array literal whose middle element
// carries a preceding line comment. Asserts the element kinds via go-cmp
// for a precise structural diff on mismatch.
func TestArrayLiteralWithInteriorComment(t *testing.T) {
	code := source.NewCode("<test>", "const xs = [true,\n// foo\n 12, nil]\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)
	require.Len(t, module.Declarations, 1)

	vd := module.Declarations[0].(*ast.VariableDeclaration)
	arr, ok := vd.Value.(*ast.ArrayLiteral)
	require.True(t, ok, "expected *ast.ArrayLiteral, got %T", vd.Value)
	require.Len(t, arr.Elements, 3)

	var gotKinds []ast.Kind
	for _, el := range arr.Elements {
		gotKinds = append(gotKinds, el.Kind())
	}
	wantKinds := []ast.Kind{ast.KindBooleanLiteral, ast.KindNumberLiteral, ast.KindNilLiteral}
	if diff := cmp.Diff(wantKinds, gotKinds); diff != "" {
		t.Fatalf("element kinds mismatch (-want +got):\n%s", diff)
	}

	numberLit := arr.Elements[1].(*ast.NumberLiteral)
	leading := numberLit.PrecedingComments()
	require.Len(t, leading, 1)
	require.Equal(t, " foo", leading[0].Text)
}

// TestAttachParentsIsIdempotent re-runs the parenting pass a second time
// and checks every non-root node still reports the same parent, matching
// spec.md's "parenting idempotence" invariant.
func TestAttachParentsIsIdempotent(t *testing.T) {
	code := source.NewCode("<test>", "const x: number = 1\n")
	module, diags := parser.ParseModule(code)
	require.Empty(t, diags)

	before := map[ast.Node]ast.Node{}
	walk.Walk(module, func(n ast.Node) bool {
		before[n] = n.Parent()
		return true
	})

	ast.AttachParents(module)

	walk.Walk(module, func(n ast.Node) bool {
		require.Same(t, before[n], n.Parent(), "parent changed for node of kind %s", n.Kind())
		return true
	})
}
