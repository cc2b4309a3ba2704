package combinator

import "github.com/kpumuk/bagelcore/internal/source"

// MemoKey identifies one memoized parse attempt: a named rule at a byte
// position. Go closures don't carry a stable identity the way the
// combinator libraries this package is modeled on rely on, so every
// memoized rule is given an explicit string name instead (spec.md §4.B
// "memoize(name, p)").
type MemoKey struct {
	Rule string
	Pos  source.Offset
}

// MemoCache holds memoized results for exactly one parseModule call. It
// must never be shared across goroutines or reused between calls — the
// whole engine is single-threaded and a cache is scoped to one parse
// (spec.md §5).
type MemoCache struct {
	entries map[MemoKey]any
}

// NewMemoCache constructs an empty cache.
func NewMemoCache() *MemoCache {
	return &MemoCache{entries: make(map[MemoKey]any)}
}

// Memo wraps p so repeated attempts to parse rule at the same position
// within one cache return the cached Result instead of re-running p.
// This is what makes unbounded backtracking in the precedence cascade
// (internal/parser) cheap enough to run on every keystroke of an editor
// session (spec.md §4.B, §4.D).
func Memo[T any](cache *MemoCache, rule string, p Parser[T]) Parser[T] {
	return func(in source.Input) Result[T] {
		key := MemoKey{Rule: rule, Pos: in.Index}
		if cached, ok := cache.entries[key]; ok {
			return cached.(Result[T])
		}
		r := p(in)
		cache.entries[key] = r
		return r
	}
}
