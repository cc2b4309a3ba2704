// Package printer renders a types.Type back into the language's own
// surface syntax: the canonical textual form shown in hover tooltips and
// diagnostic messages (spec.md component I "DisplayType").
package printer

import "github.com/kpumuk/bagelcore/internal/types"

// DisplayType renders ty as the type-expression syntax a user would write
// to produce it. The rendering lives in package types itself (so the
// checker can use it to build subsumption diagnostics without an import
// cycle back into this package); this is a re-export for callers outside
// types/check, such as the language server's hover handler.
func DisplayType(ty types.Type) string {
	return types.DisplayType(ty)
}
