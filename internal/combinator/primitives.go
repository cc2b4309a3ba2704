package combinator

import (
	"strings"

	"github.com/kpumuk/bagelcore/internal/source"
)

// Exact matches a literal prefix.
func Exact(lit string) Parser[string] {
	return func(in source.Input) Result[string] {
		if strings.HasPrefix(in.Remaining(), lit) {
			end := in.Advance(len(lit))
			return Ok(in, end, end.SpanSince(in), lit)
		}
		return NoMatch[string](in)
	}
}

// Char matches any single byte before EOF.
func Char() Parser[byte] {
	return Filter(func(byte) bool { return true })
}

// Filter matches a single byte satisfying pred.
func Filter(pred func(byte) bool) Parser[byte] {
	return func(in source.Input) Result[byte] {
		if in.AtEOF() {
			return NoMatch[byte](in)
		}
		b := in.Peek()
		if !pred(b) {
			return NoMatch[byte](in)
		}
		end := in.Advance(1)
		return Ok(in, end, end.SpanSince(in), b)
	}
}

// AlphaChar matches a single ASCII letter.
var AlphaChar = Filter(func(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
})

// NumericChar matches a single ASCII digit.
var NumericChar = Filter(func(b byte) bool { return b >= '0' && b <= '9' })

// WhitespaceChar matches a single ASCII whitespace byte.
var WhitespaceChar = Filter(func(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
})

// IdentStartChar matches the first character of an identifier (spec.md
// §6.1: `[A-Za-z][A-Za-z0-9_]*`, ASCII only per §9 "Open questions").
var IdentStartChar = Filter(func(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
})

// IdentPartChar matches a non-leading identifier character.
var IdentPartChar = Filter(func(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
})

// Take0 greedily captures zero or more bytes matching p.
func Take0(p Parser[byte]) Parser[string] {
	return func(in source.Input) Result[string] {
		cur := in
		var sb strings.Builder
		for {
			r := p(cur)
			if !r.IsSuccess() {
				break
			}
			sb.WriteByte(r.Value)
			cur = r.Input
		}
		return Ok(in, cur, cur.SpanSince(in), sb.String())
	}
}

// Take1 greedily captures one or more bytes matching p; None if zero
// matched.
func Take1(p Parser[byte]) Parser[string] {
	return func(in source.Input) Result[string] {
		r := Take0(p)(in)
		if r.Value == "" {
			return NoMatch[string](in)
		}
		return Result[string]{Status: Success, Input: r.Input, Span: source.Span{Code: in.Code, Start: in.Index, End: r.Input.Index}, Value: r.Value}
	}
}

// Many0 applies p repeatedly until it stops matching, collecting results.
// Always succeeds (possibly with zero elements).
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(in source.Input) Result[[]T] {
		cur := in
		out := []T{}
		for {
			r := p(cur)
			if !r.IsSuccess() {
				break
			}
			out = append(out, r.Value)
			if r.Input.Index == cur.Index {
				// Zero-width match: stop to avoid an infinite loop.
				break
			}
			cur = r.Input
		}
		return Result[[]T]{Status: Success, Input: cur, Span: source.Span{Code: in.Code, Start: in.Index, End: cur.Index}, Value: out}
	}
}

// Many1 is Many0 requiring at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(in source.Input) Result[[]T] {
		r := Many0(p)(in)
		if len(r.Value) == 0 {
			return NoMatch[[]T](in)
		}
		return r
	}
}

// ManySep0 applies p interleaved with sep, zero or more times.
func ManySep0[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return manySep(p, sep, 0)
}

// ManySep1 applies p interleaved with sep, at least once.
func ManySep1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return manySep(p, sep, 1)
}

// ManySep2 applies p interleaved with sep, at least twice (used where the
// grammar distinguishes a single value from an actual list, e.g. a binary
// operator chain needs at least 2 operands to count as one).
func ManySep2[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return manySep(p, sep, 2)
}

func manySep[T, S any](p Parser[T], sep Parser[S], min int) Parser[[]T] {
	return func(in source.Input) Result[[]T] {
		cur := in
		out := []T{}
		first := p(cur)
		if !first.IsSuccess() {
			if min == 0 {
				return Result[[]T]{Status: Success, Input: in, Span: source.Span{Code: in.Code, Start: in.Index, End: in.Index}}
			}
			return NoMatch[[]T](in)
		}
		out = append(out, first.Value)
		cur = first.Input
		for {
			sr := sep(cur)
			if !sr.IsSuccess() {
				break
			}
			pr := p(sr.Input)
			if !pr.IsSuccess() {
				break
			}
			out = append(out, pr.Value)
			cur = pr.Input
		}
		if len(out) < min {
			return NoMatch[[]T](in)
		}
		return Result[[]T]{Status: Success, Input: cur, Span: source.Span{Code: in.Code, Start: in.Index, End: cur.Index}, Value: out}
	}
}

// Map transforms a successful result's value; f also receives the
// matched span so it can build a source-span-carrying AST node.
func Map[T, U any](p Parser[T], f func(T, source.Span) U) Parser[U] {
	return func(in source.Input) Result[U] {
		r := p(in)
		switch r.Status {
		case Success:
			return Ok(in, r.Input, r.Span, f(r.Value, r.Span))
		case Err:
			return Fail[U](r.Input, r.Err)
		default:
			return NoMatch[U](r.Input)
		}
	}
}

// FilterResult keeps only successes whose value satisfies pred.
func FilterResult[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return func(in source.Input) Result[T] {
		r := p(in)
		if r.IsSuccess() && !pred(r.Value) {
			return NoMatch[T](in)
		}
		return r
	}
}

// SubParser chains p into a parser built from its result (monadic bind).
func SubParser[T, U any](p Parser[T], next func(T) Parser[U]) Parser[U] {
	return func(in source.Input) Result[U] {
		r := p(in)
		switch r.Status {
		case Success:
			return next(r.Value)(r.Input)
		case Err:
			return Fail[U](r.Input, r.Err)
		default:
			return NoMatch[U](r.Input)
		}
	}
}

// Optional lifts a None result to a successful nil value (spec.md §4.B
// "optional(p) — lifts none to a successful undefined").
func Optional[T any](p Parser[T]) Parser[*T] {
	return func(in source.Input) Result[*T] {
		r := p(in)
		switch r.Status {
		case Success:
			v := r.Value
			return Ok(in, r.Input, r.Span, &v)
		case Err:
			return Fail[*T](r.Input, r.Err)
		default:
			return Result[*T]{Status: Success, Input: in, Span: source.Span{Code: in.Code, Start: in.Index, End: in.Index}, Value: nil}
		}
	}
}

// Required promotes a None to a hard Err carrying msg.
func Required[T any](p Parser[T], msg string) Parser[T] {
	return func(in source.Input) Result[T] {
		r := p(in)
		if r.IsNone() {
			return Fail[T](in, errorf(in, msg))
		}
		return r
	}
}

// OneOf returns the first non-None result among ps, in order; an Err
// result stops the search immediately (it does not fall through to later
// alternatives) per spec.md §4.B.
func OneOf[T any](ps ...Parser[T]) Parser[T] {
	return func(in source.Input) Result[T] {
		for _, p := range ps {
			r := p(in)
			if !r.IsNone() {
				return r
			}
		}
		return NoMatch[T](in)
	}
}

// Drop matches p but discards its value, useful for punctuation.
func Drop[T any](p Parser[T]) Parser[struct{}] {
	return Map(p, func(T, source.Span) struct{} { return struct{}{} })
}

// EndOfFile succeeds only when the input is fully consumed.
func EndOfFile() Parser[struct{}] {
	return func(in source.Input) Result[struct{}] {
		if in.AtEOF() {
			return Ok(in, in, in.SpanSince(in), struct{}{})
		}
		return NoMatch[struct{}](in)
	}
}

// TakeUntil greedily consumes bytes up to and including the first
// occurrence of terminator, used by backtrack-based error recovery.
func TakeUntil(terminator string) Parser[string] {
	return func(in source.Input) Result[string] {
		idx := strings.Index(in.Remaining(), terminator)
		if idx < 0 {
			rest := in.Remaining()
			end := in.Advance(len(rest))
			return Ok(in, end, end.SpanSince(in), rest)
		}
		end := in.Advance(idx + len(terminator))
		return Result[string]{Status: Success, Input: end, Span: source.Span{Code: in.Code, Start: in.Index, End: end.Index}, Value: in.Code.Text[in.Index:end.Index]}
	}
}

// Backtrack runs inner; on Err, it consumes up to a terminator with
// recover and succeeds with make(err, consumedSpan) instead of
// propagating the failure — this is how a single malformed subexpression
// becomes one broken-subtree node rather than derailing the whole parse
// (spec.md §4.D "Recovery").
func Backtrack[T any](inner Parser[T], recover Parser[string], make func(err error, span source.Span) T) Parser[T] {
	return func(in source.Input) Result[T] {
		r := inner(in)
		if r.Status != Err {
			return r
		}
		rec := recover(in)
		end := rec.Input
		span := source.Span{Code: in.Code, Start: in.Index, End: end.Index}
		return Ok(in, end, span, make(r.Err, span))
	}
}

func errorf(in source.Input, msg string) error {
	return &ParseError{Index: in.Index, Message: msg}
}

// ParseError is a hard parser failure (spec.md §7 channel 2).
type ParseError struct {
	Index   source.Offset
	Message string
}

func (e *ParseError) Error() string { return e.Message }
