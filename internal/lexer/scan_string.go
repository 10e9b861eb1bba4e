package lexer

import (
	"nimble/internal/diag"
	"nimble/internal/token"
)

// scanString consumes a double-quoted string literal. Nimble strings have no
// escape sequences and may not span lines. Token text keeps the quotes so
// the parse tree renders coverage exactly as written.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Pos()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
		if ch == '"' {
			return token.Token{
				Kind: token.StringLit,
				Span: lx.cursor.SpanFrom(start),
				Text: lx.cursor.TextFrom(start),
			}
		}
	}

	span := lx.cursor.SpanFrom(start)
	diag.ReportError(lx.reporter, diag.LexUnterminatedString, span, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.TextFrom(start)}
}
