package source

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf16"
	"unicode/utf8"
)

// LineIndex maps byte offsets to line/column locations over a Code's text.
//
// Line numbers are 0-based; Point columns are byte columns; UTF-16
// positions (OffsetToUTF16Position) are LSP-facing, though internal/lsp
// itself reports byte columns via OffsetToPoint and does not call it
// (spec.md §6 lists LSP glue as an external collaborator interface).
type LineIndex struct {
	src        string
	lineStarts []Offset
}

var (
	errNilLineIndex            = errors.New("nil LineIndex")
	errInvalidUTF8Sequence     = errors.New("invalid UTF-8 sequence")
	errSplitUTF16SurrogatePair = errors.New("UTF-16 position splits surrogate pair")
)

// NewLineIndex builds an index over code's text.
func NewLineIndex(code *Code) *LineIndex {
	src := code.Text
	starts := []Offset{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, Offset(i+1))
		}
	}
	return &LineIndex{src: src, lineStarts: starts}
}

// LineCount returns the number of logical lines in the source.
func (li *LineIndex) LineCount() int {
	if li == nil {
		return 0
	}
	return len(li.lineStarts)
}

// OffsetToPoint converts a byte offset to a line/column point.
func (li *LineIndex) OffsetToPoint(off Offset) (Point, error) {
	if li == nil {
		return Point{}, errNilLineIndex
	}
	if err := li.validateOffset(off); err != nil {
		return Point{}, err
	}
	line := li.lineForOffset(off)
	start := li.lineStarts[line]
	return Point{Line: line, Column: int(off - start)}, nil
}

// UTF16Position is an LSP-facing UTF-16 position.
type UTF16Position struct {
	Line      int
	Character int
}

// OffsetToUTF16Position converts a byte offset to an LSP-facing position.
func (li *LineIndex) OffsetToUTF16Position(off Offset) (UTF16Position, error) {
	if li == nil {
		return UTF16Position{}, errNilLineIndex
	}
	if err := li.validateOffset(off); err != nil {
		return UTF16Position{}, err
	}

	line := li.lineForOffset(off)
	start, nextStart, contentEnd := li.lineBounds(line)
	if off > contentEnd && off < nextStart {
		off = contentEnd
	}

	char, err := utf16UnitsForSlice(li.src[start:off])
	if err != nil {
		return UTF16Position{}, err
	}
	return UTF16Position{Line: line, Character: char}, nil
}

// OffsetForPoint converts a 0-based line/byte-column point back to an
// offset, clamping the column to the line's content length. Used at the
// LSP transport edge to turn a hover position into a lookup offset.
func (li *LineIndex) OffsetForPoint(p Point) (Offset, error) {
	if li == nil {
		return 0, errNilLineIndex
	}
	if p.Line < 0 || p.Line >= len(li.lineStarts) {
		return 0, fmt.Errorf("line out of range: %d", p.Line)
	}
	start, _, contentEnd := li.lineBounds(p.Line)
	off := start + Offset(p.Column)
	if off > contentEnd {
		off = contentEnd
	}
	return off, nil
}

func (li *LineIndex) validateOffset(off Offset) error {
	if !off.IsValid() {
		return fmt.Errorf("offset out of range: %d", off)
	}
	if int(off) > len(li.src) {
		return fmt.Errorf("offset out of range: %d > %d", off, len(li.src))
	}
	return nil
}

func (li *LineIndex) lineForOffset(off Offset) int {
	i, found := slices.BinarySearch(li.lineStarts, off)
	if found {
		return i
	}
	return i - 1
}

func (li *LineIndex) lineBounds(line int) (start, nextStart, contentEnd Offset) {
	start = li.lineStarts[line]
	if line+1 < len(li.lineStarts) {
		nextStart = li.lineStarts[line+1]
	} else {
		nextStart = Offset(len(li.src))
	}
	contentEnd = nextStart
	if contentEnd > start && li.src[contentEnd-1] == '\n' {
		contentEnd--
		if contentEnd > start && li.src[contentEnd-1] == '\r' {
			contentEnd--
		}
	}
	return start, nextStart, contentEnd
}

func utf16UnitsForSlice(b string) (int, error) {
	units := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRuneInString(b)
		if r == utf8.RuneError && size == 1 {
			return 0, errInvalidUTF8Sequence
		}
		units += utf16RuneUnits(r)
		b = b[size:]
	}
	return units, nil
}

func utf16RuneUnits(r rune) int {
	if utf16.IsSurrogate(r) {
		return 1
	}
	if r <= 0xFFFF {
		return 1
	}
	return 2
}
