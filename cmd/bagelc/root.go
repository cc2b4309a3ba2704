package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the bagelc command tree: check and hover, nothing
// else. There is no config file and no plugin mechanism — the CLI is an
// external collaborator around the checker, kept deliberately thin.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bagelc",
		Short:         "Parse and type-check a bagel-core module",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newCheckCmd())
	root.AddCommand(newHoverCmd())
	return root
}
