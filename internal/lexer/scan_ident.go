package lexer

import (
	"golang.org/x/text/unicode/norm"

	"nimble/internal/token"
)

// scanIdentOrKeyword consumes an identifier and classifies it against the
// keyword table. Identifier spellings are NFC-normalized so visually
// identical names compare equal in the symbol table.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Pos()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := norm.NFC.String(lx.cursor.TextFrom(start))
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: lx.cursor.SpanFrom(start),
		Text: text,
	}
}
