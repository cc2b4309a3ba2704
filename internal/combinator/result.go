// Package combinator is the parser-combinator primitive library internal/parser
// is built on (spec.md §4.B). A parser is a function from a source.Input to
// a Result[T]; parsers are deterministic, total, and never panic. They
// consume input monotonically and, on failure, leave the caller free to
// retry from the same position (spec.md §3 "Parse input").
package combinator

import "github.com/kpumuk/bagelcore/internal/source"

// Status is the outcome tag of a Result.
type Status uint8

const (
	// None means the parser didn't match but the input isn't malformed;
	// ordered choice (OneOf) tries the next alternative. No allocation is
	// implied by a None result (spec.md §4.B).
	None Status = iota
	// Success means the parser matched and consumed input up to
	// Result.Input.
	Success
	// Err means a hard failure: the caller committed to this alternative
	// (via Required or past a backtrack point) and parsing cannot
	// continue along this path.
	Err
)

// Result is the outcome of applying a Parser to an Input: one of
// success{input', span, value}, error{input, err}, or none (spec.md §3
// "Parse result").
type Result[T any] struct {
	Status Status
	// Input is the input *after* a Success, or the original input a
	// None/Err was produced at (so the caller can retry from there).
	Input source.Input
	Span  source.Span
	Value T
	Err   error
}

// Parser consumes a source.Input and produces a Result[T].
type Parser[T any] func(source.Input) Result[T]

// Ok builds a Success result.
func Ok[T any](start, end source.Input, span source.Span, value T) Result[T] {
	return Result[T]{Status: Success, Input: end, Span: span, Value: value}
}

// NoMatch builds a None result at in (the position to retry from).
func NoMatch[T any](in source.Input) Result[T] {
	return Result[T]{Status: None, Input: in}
}

// Fail builds an Err result at in (the position the failure occurred at).
func Fail[T any](in source.Input, err error) Result[T] {
	return Result[T]{Status: Err, Input: in, Err: err}
}

func (r Result[T]) IsSuccess() bool { return r.Status == Success }
func (r Result[T]) IsNone() bool    { return r.Status == None }
func (r Result[T]) IsErr() bool     { return r.Status == Err }
