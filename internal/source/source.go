// Package source defines the position/span model over immutable module text.
package source

import "fmt"

// Offset is a byte index into a UTF-8 source buffer.
type Offset int

// IsValid reports whether the offset is non-negative.
func (o Offset) IsValid() bool {
	return o >= 0
}

// Code is an immutable handle to a module's full source text. Spans and
// parse inputs reference a Code by pointer rather than copying the text.
type Code struct {
	URI  string
	Text string
}

// NewCode wraps raw module text under a URI (or any stable identifier).
func NewCode(uri, text string) *Code {
	return &Code{URI: uri, Text: text}
}

// Len returns the source length in bytes.
func (c *Code) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Text)
}

// Slice returns the text covered by span. Callers must ensure span belongs
// to this Code.
func (c *Code) Slice(span Span) string {
	if c == nil {
		return ""
	}
	return c.Text[span.Start:span.End]
}

// Span is a half-open byte range [Start, End) into a Code's text.
//
// Spans are immutable and are attached to every AST node and every
// user-visible diagnostic (spec.md §3).
type Span struct {
	Code  *Code
	Start Offset
	End   Offset
}

// NewSpan constructs a validated span.
func NewSpan(code *Code, start, end Offset) (Span, error) {
	s := Span{Code: code, Start: start, End: end}
	if err := s.Validate(); err != nil {
		return Span{}, err
	}
	return s, nil
}

// Validate reports an error if the span bounds are malformed.
func (s Span) Validate() error {
	if !s.Start.IsValid() {
		return fmt.Errorf("invalid span start: %d", s.Start)
	}
	if !s.End.IsValid() {
		return fmt.Errorf("invalid span end: %d", s.End)
	}
	if s.End < s.Start {
		return fmt.Errorf("invalid span bounds: end (%d) < start (%d)", s.End, s.Start)
	}
	return nil
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() Offset {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether off is within the half-open span [Start, End).
func (s Span) Contains(off Offset) bool {
	return s.Start <= off && off < s.End
}

// ContainsOrTouches reports whether off lies anywhere in [Start, End],
// inclusive of the end — useful for cursor-at-end-of-node hover queries.
func (s Span) ContainsOrTouches(off Offset) bool {
	return s.Start <= off && off <= s.End
}

// ContainsSpan reports whether other is fully contained within s, as
// required by the "span coverage" invariant (spec.md §8.1): for every
// child c of a node n, n.Span().ContainsSpan(c.Span()) must hold.
func (s Span) ContainsSpan(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Cover returns the smallest span enclosing both s and other. Both must
// share the same Code.
func (s Span) Cover(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Code: s.Code, Start: start, End: end}
}

// Text returns the source text covered by the span.
func (s Span) Text() string {
	return s.Code.Slice(s)
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Input is the current position of a parser over an immutable Code.
//
// Parsers consume input monotonically; on failure they must leave the
// caller free to retry from the same position (spec.md §3 "Parse input").
type Input struct {
	Code  *Code
	Index Offset
}

// NewInput begins parsing at the start of code.
func NewInput(code *Code) Input {
	return Input{Code: code, Index: 0}
}

// AtEOF reports whether the input is exhausted.
func (in Input) AtEOF() bool {
	return int(in.Index) >= len(in.Code.Text)
}

// Peek returns the byte at the current index, or 0 at EOF.
func (in Input) Peek() byte {
	if in.AtEOF() {
		return 0
	}
	return in.Code.Text[in.Index]
}

// PeekAt returns the byte delta positions ahead of the current index, or 0
// if out of range.
func (in Input) PeekAt(delta int) byte {
	idx := int(in.Index) + delta
	if idx < 0 || idx >= len(in.Code.Text) {
		return 0
	}
	return in.Code.Text[idx]
}

// Advance returns a new Input moved forward n bytes.
func (in Input) Advance(n int) Input {
	return Input{Code: in.Code, Index: in.Index + Offset(n)}
}

// Remaining returns the unconsumed suffix of the source.
func (in Input) Remaining() string {
	return in.Code.Text[in.Index:]
}

// SpanSince builds a Span from start to the current position.
func (in Input) SpanSince(start Input) Span {
	return Span{Code: in.Code, Start: start.Index, End: in.Index}
}

// Point is a UTF-8 byte-based source location (0-based line, byte column).
type Point struct {
	Line   int
	Column int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}
