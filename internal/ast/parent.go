package ast

// AttachParents walks module and sets every descendant's parent to its
// immediate container, skipping any node whose parent is already set
// (spec.md §4.D "Parenting pass": "must not follow already-set parent
// edges"). It is idempotent — re-running it on an already-parented tree
// is a no-op (spec.md §8 invariant 6).
func AttachParents(module *Module) {
	attach(module, nil)
}

func attach(n Node, parent Node) {
	if n == nil {
		return
	}
	if parent != nil && n.Parent() == nil {
		n.setParent(parent)
	}
	for _, c := range n.PrecedingComments() {
		if c.Parent() == nil {
			c.setParent(n)
		}
	}
	for _, c := range n.children() {
		attach(c, n)
	}
}
