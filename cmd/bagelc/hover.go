package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/check"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/printer"
	"github.com/kpumuk/bagelcore/internal/source"
	"github.com/kpumuk/bagelcore/internal/types"
	"github.com/kpumuk/bagelcore/internal/walk"
)

func newHoverCmd() *cobra.Command {
	var pos string
	cmd := &cobra.Command{
		Use:   "hover <file>",
		Short: "Print the inferred type at a 1-based line:column position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHover(cmd, args[0], pos)
		},
	}
	cmd.Flags().StringVar(&pos, "pos", "", "1-based \"line:column\" to hover over (required)")
	_ = cmd.MarkFlagRequired("pos")
	return cmd
}

func runHover(cmd *cobra.Command, path, pos string) error {
	line, col, err := parsePosition(pos)
	if err != nil {
		return err
	}
	//nolint:gosec // CLI intentionally reads a user-provided file path.
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	code := source.NewCode(path, string(text))
	module, _ := parser.ParseModule(code)
	if module == nil {
		return fmt.Errorf("%s: failed to parse", path)
	}

	li := source.NewLineIndex(code)
	off, err := li.OffsetForPoint(source.Point{Line: line, Column: col})
	if err != nil {
		return err
	}
	n := walk.FindNodeAt(module, off)
	if n == nil {
		return fmt.Errorf("no node at %s", pos)
	}

	ctx := check.RootContext(module)
	var ty types.Type
	switch node := n.(type) {
	case ast.Expression:
		ty = types.SimplifyType(ctx, types.InferType(ctx, node))
	case ast.TypeExpression:
		ty = types.SimplifyType(ctx, types.ResolveType(ctx, node))
	default:
		return fmt.Errorf("node at %s has no inferrable type", pos)
	}
	fmt.Fprintln(cmd.OutOrStdout(), printer.DisplayType(ty))
	return nil
}

// parsePosition parses a 1-based "line:column" string into the 0-based
// (line, byte-column) pair internal/source.Point expects.
func parsePosition(pos string) (int, int, error) {
	lineStr, colStr, ok := strings.Cut(pos, ":")
	if !ok {
		return 0, 0, fmt.Errorf("--pos must be \"line:column\", got %q", pos)
	}
	line, err := cast.ToIntE(lineStr)
	if err != nil {
		return 0, 0, fmt.Errorf("--pos line: %w", err)
	}
	col, err := cast.ToIntE(colStr)
	if err != nil {
		return 0, 0, fmt.Errorf("--pos column: %w", err)
	}
	if line < 1 || col < 1 {
		return 0, 0, fmt.Errorf("--pos must use 1-based line/column, got %q", pos)
	}
	return line - 1, col - 1, nil
}
