package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/check"
	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
)

func diagnosticCodes(t *testing.T, text string) []string {
	t.Helper()
	code := source.NewCode("<test>", text)
	module, parseDiags := parser.ParseModule(code)
	require.Empty(t, parseDiags, "expected no parse diagnostics")

	var diags []diag.Diagnostic
	check.Module(module, func(d diag.Diagnostic) { diags = append(diags, d) })

	codes := make([]string, len(diags))
	for i, d := range diags {
		codes[i] = string(d.Code)
	}
	return codes
}

func TestCheckAssignment_ToConstRejected(t *testing.T) {
	codes := diagnosticCodes(t, "const f = () => { const x = 1\nx = 2 }\n")
	assert.Contains(t, codes, "check/assign-to-const")
}

func TestCheckAssignment_ToFunctionParamRejected(t *testing.T) {
	codes := diagnosticCodes(t, "const f = (p: number) => { p = 2 }\n")
	assert.Contains(t, codes, "check/assign-to-parameter")
}

func TestCheckAssignment_InvalidTarget(t *testing.T) {
	codes := diagnosticCodes(t, "const f = () => { 1 = 2 }\n")
	assert.Contains(t, codes, "check/invalid-assignment-target")
}

func TestCheckMarkup_TagMismatch(t *testing.T) {
	codes := diagnosticCodes(t, "const m = <div></span>\n")
	assert.Contains(t, codes, "check/markup-tag-mismatch")
}

func TestCheckPropertyAccess_UnknownProperty(t *testing.T) {
	codes := diagnosticCodes(t, "const y = ({a: 1}).b\n")
	assert.Contains(t, codes, "check/unknown-property")
}

func TestCheckIfElseConditions_RedundantLiteralCondition(t *testing.T) {
	// The redundant-conditional rule only fires for if-else statements: an
	// if-else expression with a literally true/false condition is exactly
	// how its short-circuit simplification is meant to be used (spec.md §8
	// S3), so flagging it there would contradict the scenario it's built
	// to support.
	codes := diagnosticCodes(t, "const f = () => { if true { return 1 } }\n")
	assert.Contains(t, codes, "check/redundant-conditional")
}

func TestCheckIfElseConditions_ExpressionFormDoesNotFlagLiteralCondition(t *testing.T) {
	codes := diagnosticCodes(t, "const x: number = if true { 12 } else { 'foo' }\n")
	assert.NotContains(t, codes, "check/redundant-conditional")
}

func TestCheckRange_StartAfterEndRejected(t *testing.T) {
	codes := diagnosticCodes(t, "type R = 5..2\n")
	assert.Contains(t, codes, "check/invalid-range")
}

func TestCheckLocalIdentifier_UnresolvedNameRejected(t *testing.T) {
	codes := diagnosticCodes(t, "const z = undefinedName\n")
	assert.Contains(t, codes, "check/unresolved-identifier")
}

func TestCheckParameterizedType_NonGenericRejected(t *testing.T) {
	codes := diagnosticCodes(t, "type T = number\nconst v: T<number> = 1\n")
	assert.Contains(t, codes, "check/not-generic")
}
