package combinator

import "github.com/kpumuk/bagelcore/internal/source"

// Pair holds the result of Tuple2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the result of Tuple3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad holds the result of Tuple4.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple2 sequences two parsers, failing fast (None or Err) on the first
// one that doesn't succeed. Go's generics don't support a variadic
// heterogeneous tuple combinator, so the grammar builds up from this and
// Tuple3/Tuple4 instead of a single n-ary tuple() (spec.md §4.B).
func Tuple2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(in source.Input) Result[Pair[A, B]] {
		ra := pa(in)
		if !ra.IsSuccess() {
			return carryStatus[A, Pair[A, B]](ra)
		}
		rb := pb(ra.Input)
		if !rb.IsSuccess() {
			return carryStatus[B, Pair[A, B]](rb)
		}
		return Ok(in, rb.Input, rb.Input.SpanSince(in), Pair[A, B]{ra.Value, rb.Value})
	}
}

// Tuple3 sequences three parsers.
func Tuple3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple[A, B, C]] {
	return func(in source.Input) Result[Triple[A, B, C]] {
		ra := pa(in)
		if !ra.IsSuccess() {
			return carryStatus[A, Triple[A, B, C]](ra)
		}
		rb := pb(ra.Input)
		if !rb.IsSuccess() {
			return carryStatus[B, Triple[A, B, C]](rb)
		}
		rc := pc(rb.Input)
		if !rc.IsSuccess() {
			return carryStatus[C, Triple[A, B, C]](rc)
		}
		return Ok(in, rc.Input, rc.Input.SpanSince(in), Triple[A, B, C]{ra.Value, rb.Value, rc.Value})
	}
}

// Tuple4 sequences four parsers.
func Tuple4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Quad[A, B, C, D]] {
	return func(in source.Input) Result[Quad[A, B, C, D]] {
		ra := pa(in)
		if !ra.IsSuccess() {
			return carryStatus[A, Quad[A, B, C, D]](ra)
		}
		rb := pb(ra.Input)
		if !rb.IsSuccess() {
			return carryStatus[B, Quad[A, B, C, D]](rb)
		}
		rc := pc(rb.Input)
		if !rc.IsSuccess() {
			return carryStatus[C, Quad[A, B, C, D]](rc)
		}
		rd := pd(rc.Input)
		if !rd.IsSuccess() {
			return carryStatus[D, Quad[A, B, C, D]](rd)
		}
		return Ok(in, rd.Input, rd.Input.SpanSince(in), Quad[A, B, C, D]{ra.Value, rb.Value, rc.Value, rd.Value})
	}
}

// carryStatus forwards a non-Success Result's status/input/err across a
// value-type change, for use where a sequencing combinator's component
// parser did not succeed.
func carryStatus[From, To any](r Result[From]) Result[To] {
	switch r.Status {
	case Err:
		return Fail[To](r.Input, r.Err)
	default:
		return NoMatch[To](r.Input)
	}
}
