// Package diag defines the diagnostic shape shared by the parser and the
// checker (spec.md §6.3): a message, the span it points at, and optional
// related detail spans. internal/check.Diagnostic is this type; keeping it
// in its own package lets the parser report malformed input without
// importing the checker.
package diag

import "github.com/kpumuk/bagelcore/internal/source"

// Severity classifies a Diagnostic the way the teacher's lint package
// does, generalized from warning-or-error to the three levels a type
// checker actually needs.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// Code identifies the kind of diagnostic, stable across releases so
// tooling (the language server, the CLI's check output) can identify it.
type Code string

// Detail is a secondary span attached to a Diagnostic, e.g. pointing back
// at a conflicting declaration.
type Detail struct {
	Message string
	Span    source.Span
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Span     source.Span
	Details  []Detail
}

// SortDiagnostics orders diagnostics by span start, then span end, then
// severity (errors before warnings before info), matching the teacher's
// lint.SortDiagnostics ordering so CLI and LSP output is deterministic.
func SortDiagnostics(diags []Diagnostic) {
	sortBySpanThenSeverity(diags)
}

func sortBySpanThenSeverity(diags []Diagnostic) {
	// Simple insertion sort: diagnostic lists per file are small, and this
	// keeps the dependency list free of a sort-specific import for a
	// one-off comparator.
	for i := 1; i < len(diags); i++ {
		j := i
		for j > 0 && less(diags[j], diags[j-1]) {
			diags[j], diags[j-1] = diags[j-1], diags[j]
			j--
		}
	}
}

func less(a, b Diagnostic) bool {
	if a.Span.Start != b.Span.Start {
		return a.Span.Start < b.Span.Start
	}
	if a.Span.End != b.Span.End {
		return a.Span.End < b.Span.End
	}
	return a.Severity < b.Severity
}
