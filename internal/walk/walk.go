// Package walk provides generic traversal over internal/ast trees: a
// pre-order visitor and a point-containment lookup used by the language
// server and the CLI's hover command (spec.md component E "AST walker").
package walk

import (
	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/source"
)

// Visit is called once per node in pre-order. Returning false stops the
// walk from descending into that node's children; it does not stop
// sibling traversal.
type Visit func(n ast.Node) (descend bool)

// Walk performs a pre-order traversal of n and its descendants.
// Preceding comments are not visited — they're trivia, not part of the
// tree the type engine and checker operate over (spec.md §5 "Resource
// discipline").
func Walk(n ast.Node, visit Visit) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range ast.Children(n) {
		Walk(c, visit)
	}
}

// FindNodeAt returns the innermost node whose span contains off, or nil
// if off falls outside module's span entirely. Ties between a parent and
// a zero-width child at the same boundary favor the more specific
// (deeper) node, matching what a hover/completion request expects.
func FindNodeAt(module *ast.Module, off source.Offset) ast.Node {
	if module == nil || !module.Span().ContainsOrTouches(off) {
		return nil
	}
	var best ast.Node = module
	var search func(n ast.Node)
	search = func(n ast.Node) {
		for _, c := range ast.Children(n) {
			if c.Span().ContainsOrTouches(off) {
				best = c
				search(c)
			}
		}
	}
	search(module)
	return best
}
