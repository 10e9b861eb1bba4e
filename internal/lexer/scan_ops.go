package lexer

import (
	"fmt"

	"nimble/internal/diag"
	"nimble/internal/token"
)

// scanOperatorOrPunct consumes one operator or punctuation token, preferring
// the longest match (<=, ==, !=, ->).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Pos()
	ch := lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		if lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			kind = token.Arrow
		} else {
			kind = token.Minus
		}
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '<':
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.LtEq
		} else {
			kind = token.Lt
		}
	case '=':
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.EqEq
		} else {
			kind = token.Assign
		}
	case '!':
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.BangEq
		} else {
			kind = token.Bang
		}
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	}

	span := lx.cursor.SpanFrom(start)
	text := lx.cursor.TextFrom(start)
	if kind == token.Invalid {
		diag.ReportError(lx.reporter, diag.LexUnknownChar, span,
			fmt.Sprintf("unexpected character %q", text))
	}
	return token.Token{Kind: kind, Span: span, Text: text}
}
