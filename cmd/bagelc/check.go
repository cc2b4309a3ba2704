package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kpumuk/bagelcore/internal/check"
	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and type-check a module, printing diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, path string) error {
	//nolint:gosec // CLI intentionally reads a user-provided file path.
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	code := source.NewCode(path, string(text))
	module, diags := parser.ParseModule(code)
	if module != nil {
		check.Module(module, func(d diag.Diagnostic) {
			diags = append(diags, d)
		})
	}
	diag.SortDiagnostics(diags)

	li := source.NewLineIndex(code)
	for _, d := range diags {
		printDiagnostic(cmd, path, li, d)
	}
	if hasError(diags) {
		return fmt.Errorf("%d diagnostic(s) reported", len(diags))
	}
	return nil
}

func printDiagnostic(cmd *cobra.Command, path string, li *source.LineIndex, d diag.Diagnostic) {
	loc := d.Span.String()
	if p, err := li.OffsetToPoint(d.Span.Start); err == nil {
		loc = p.String()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s:%s: %s: %s: %s\n", path, loc, d.Severity, d.Code, d.Message)
	for _, detail := range d.Details {
		detailLoc := detail.Span.String()
		if p, err := li.OffsetToPoint(detail.Span.Start); err == nil {
			detailLoc = p.String()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s:%s: %s\n", path, detailLoc, detail.Message)
	}
}

func hasError(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}
