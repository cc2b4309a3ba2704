package check_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kpumuk/bagelcore/internal/check"
	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
	"github.com/kpumuk/bagelcore/internal/testutil"
)

// TestCheckGoldens parses and checks each fixture under testdata/check and
// compares the rendered diagnostic report against its golden file. Each
// line is `code: message`, without the path, position, severity or
// details that cmd/bagelc check prints, so fixtures stay portable across
// checkouts.
func TestCheckGoldens(t *testing.T) {
	cases, err := testutil.CheckGoldenCases()
	require.NoError(t, err)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			src := testutil.ReadFile(t, c.InputPath)
			code := source.NewCode(c.InputPath, string(src))
			module, diags := parser.ParseModule(code)
			require.NotNil(t, module, "parse failed for %s", c.Name)

			check.Module(module, func(d diag.Diagnostic) {
				diags = append(diags, d)
			})
			diag.SortDiagnostics(diags)

			testutil.AssertGolden(t, c.ExpectedPath, renderDiagnostics(diags))
		})
	}
}

func renderDiagnostics(diags []diag.Diagnostic) string {
	if len(diags) == 0 {
		return "(no diagnostics)\n"
	}
	var sb strings.Builder
	for _, d := range diags {
		fmt.Fprintf(&sb, "%s: %s\n", d.Code, d.Message)
	}
	return sb.String()
}
