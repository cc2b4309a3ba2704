package parser

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/combinator"
	"github.com/kpumuk/bagelcore/internal/source"
)

// whitespace consumes zero or more ASCII whitespace bytes (spec.md §6.1).
func (g *grammar) whitespace() combinator.Parser[string] {
	return combinator.Take0(combinator.WhitespaceChar)
}

// lineComment matches `// ... \n` (the newline is not included in Text).
func (g *grammar) lineComment() combinator.Parser[*ast.Comment] {
	return func(in source.Input) combinator.Result[*ast.Comment] {
		if !strings.HasPrefix(in.Remaining(), "//") {
			return combinator.NoMatch[*ast.Comment](in)
		}
		rest := in.Advance(2)
		idx := strings.IndexByte(rest.Remaining(), '\n')
		var end source.Input
		var text string
		if idx < 0 {
			text = rest.Remaining()
			end = rest.Advance(len(text))
		} else {
			text = rest.Remaining()[:idx]
			end = rest.Advance(idx)
		}
		span := end.SpanSince(in)
		return combinator.Ok(in, end, span, ast.NewComment(span, text, false))
	}
}

// blockComment matches `/* ... */`.
func (g *grammar) blockComment() combinator.Parser[*ast.Comment] {
	return func(in source.Input) combinator.Result[*ast.Comment] {
		if !strings.HasPrefix(in.Remaining(), "/*") {
			return combinator.NoMatch[*ast.Comment](in)
		}
		rest := in.Advance(2)
		idx := strings.Index(rest.Remaining(), "*/")
		if idx < 0 {
			return combinator.Fail[*ast.Comment](in, &combinator.ParseError{Index: in.Index, Message: "unterminated block comment"})
		}
		text := rest.Remaining()[:idx]
		end := rest.Advance(idx + 2)
		span := end.SpanSince(in)
		return combinator.Ok(in, end, span, ast.NewComment(span, text, true))
	}
}

func (g *grammar) comment() combinator.Parser[*ast.Comment] {
	return combinator.OneOf(g.lineComment(), g.blockComment())
}

// commentsAndWhitespace consumes interleaved whitespace and comments,
// returning the comment cluster collected (spec.md §4.D "Comments"). It
// always succeeds, possibly with an empty slice.
func (g *grammar) commentsAndWhitespace() combinator.Parser[[]*ast.Comment] {
	return func(in source.Input) combinator.Result[[]*ast.Comment] {
		cur := in
		var comments []*ast.Comment
		for {
			ws := g.whitespace()(cur)
			cur = ws.Input
			cr := g.comment()(cur)
			if !cr.IsSuccess() {
				break
			}
			comments = append(comments, cr.Value)
			cur = cr.Input
		}
		return combinator.Ok(in, cur, cur.SpanSince(in), comments)
	}
}

// lexeme skips leading whitespace/comments then runs p; comments found
// there are discarded, since only declaration- and statement-level
// productions attach a preceding-comment cluster to a node.
func lexeme[T any](g *grammar, p combinator.Parser[T]) combinator.Parser[T] {
	return func(in source.Input) combinator.Result[T] {
		trivia := g.commentsAndWhitespace()(in)
		return p(trivia.Input)
	}
}

// keyword matches word as a whole identifier token, not a prefix of a
// longer identifier (so `lethal` doesn't get scanned as `let` + `hal`).
func (g *grammar) keyword(word string) combinator.Parser[string] {
	return func(in source.Input) combinator.Result[string] {
		if !strings.HasPrefix(in.Remaining(), word) {
			return combinator.NoMatch[string](in)
		}
		end := in.Advance(len(word))
		if !end.AtEOF() {
			b := end.Peek()
			if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_' {
				return combinator.NoMatch[string](in)
			}
		}
		return combinator.Ok(in, end, end.SpanSince(in), word)
	}
}

// symbol matches a literal punctuation/operator sequence with surrounding
// whitespace skipped by the caller (spec.md §6.1).
func (g *grammar) symbol(lit string) combinator.Parser[string] {
	return combinator.Exact(lit)
}

// identifierName matches a bare `[A-Za-z][A-Za-z0-9_]*` token (spec.md
// §6.1; ASCII-only per the Open Questions resolution in DESIGN.md).
func (g *grammar) identifierName() combinator.Parser[string] {
	return func(in source.Input) combinator.Result[string] {
		first := combinator.IdentStartChar(in)
		if !first.IsSuccess() {
			return combinator.NoMatch[string](in)
		}
		rest := combinator.Take0(combinator.IdentPartChar)(first.Input)
		name := string(first.Value) + rest.Value
		return combinator.Ok(in, rest.Input, rest.Input.SpanSince(in), name)
	}
}

// plainIdentifier parses an identifier into a *ast.PlainIdentifier node.
func (g *grammar) plainIdentifier() combinator.Parser[*ast.PlainIdentifier] {
	return combinator.Map(g.identifierName(), func(name string, span source.Span) *ast.PlainIdentifier {
		return ast.NewPlainIdentifier(span, name, nil)
	})
}

// numberLiteralToken matches `[0-9]+` and parses it as a float64 (spec.md
// §3 "number literal"). Floating-point suffixes and exponents are out of
// scope for this grammar's literal syntax.
func (g *grammar) numberLiteralToken() combinator.Parser[float64] {
	return combinator.SubParser(combinator.Take1(combinator.NumericChar), func(digits string) combinator.Parser[float64] {
		return func(in source.Input) combinator.Result[float64] {
			v, err := cast.ToFloat64E(digits)
			if err != nil {
				return combinator.Fail[float64](in, err)
			}
			return combinator.Ok(in, in, in.SpanSince(in), v)
		}
	})
}

// stringLiteralToken matches a single-quoted string with backslash
// escapes for `\\` and `\'` (spec.md §3 "string literal").
func (g *grammar) stringLiteralToken() combinator.Parser[string] {
	return func(in source.Input) combinator.Result[string] {
		if in.Peek() != '\'' {
			return combinator.NoMatch[string](in)
		}
		cur := in.Advance(1)
		var sb strings.Builder
		for {
			if cur.AtEOF() {
				return combinator.Fail[string](in, &combinator.ParseError{Index: in.Index, Message: "unterminated string literal"})
			}
			b := cur.Peek()
			if b == '\'' {
				cur = cur.Advance(1)
				break
			}
			if b == '\\' {
				next := cur.PeekAt(1)
				switch next {
				case '\'', '\\':
					sb.WriteByte(next)
				case 'n':
					sb.WriteByte('\n')
				case 't':
					sb.WriteByte('\t')
				default:
					sb.WriteByte(next)
				}
				cur = cur.Advance(2)
				continue
			}
			sb.WriteByte(b)
			cur = cur.Advance(1)
		}
		return combinator.Ok(in, cur, cur.SpanSince(in), sb.String())
	}
}
