package lexer

import (
	"nimble/internal/diag"
	"nimble/internal/token"
)

// scanNumber consumes a decimal integer literal. A literal immediately
// followed by identifier characters (e.g. "12abc") is a lexical error; the
// whole run is consumed so the parser does not see the tail as a name.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Pos()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if !lx.cursor.EOF() && isIdentStart(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		span := lx.cursor.SpanFrom(start)
		diag.ReportError(lx.reporter, diag.LexBadNumber, span,
			"malformed integer literal "+lx.cursor.TextFrom(start))
		return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.TextFrom(start)}
	}

	return token.Token{
		Kind: token.IntLit,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.TextFrom(start),
	}
}
