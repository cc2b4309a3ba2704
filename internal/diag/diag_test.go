package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/source"
)

func span(start, end source.Offset) source.Span {
	return source.Span{Start: start, End: end}
}

func TestSortDiagnostics_OrdersBySpanStart(t *testing.T) {
	diags := []diag.Diagnostic{
		{Message: "second", Span: span(10, 12)},
		{Message: "first", Span: span(0, 2)},
	}
	diag.SortDiagnostics(diags)
	assert.Equal(t, []string{"first", "second"}, []string{diags[0].Message, diags[1].Message})
}

func TestSortDiagnostics_TiesBrokenBySeverity(t *testing.T) {
	diags := []diag.Diagnostic{
		{Message: "warning", Severity: diag.SeverityWarning, Span: span(0, 2)},
		{Message: "error", Severity: diag.SeverityError, Span: span(0, 2)},
		{Message: "info", Severity: diag.SeverityInfo, Span: span(0, 2)},
	}
	diag.SortDiagnostics(diags)
	assert.Equal(t, []string{"error", "warning", "info"}, []string{diags[0].Message, diags[1].Message, diags[2].Message})
}

func TestSortDiagnostics_StableForEqualSpans(t *testing.T) {
	diags := []diag.Diagnostic{
		{Message: "a", Span: span(5, 8)},
		{Message: "b", Span: span(5, 8)},
	}
	diag.SortDiagnostics(diags)
	assert.Equal(t, []string{"a", "b"}, []string{diags[0].Message, diags[1].Message})
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", diag.SeverityError.String())
	assert.Equal(t, "warning", diag.SeverityWarning.String())
	assert.Equal(t, "info", diag.SeverityInfo.String())
}
