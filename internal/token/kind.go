package token

// Kind enumerates every token the Nimble lexer can produce.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	// literals and names
	Ident
	IntLit
	StringLit

	// operators and punctuation
	Plus
	Minus
	Star
	Slash
	Lt
	LtEq
	EqEq
	BangEq
	Bang
	Assign
	Colon
	Comma
	Arrow
	LParen
	RParen
	LBrace
	RBrace

	// keywords
	KwLet
	KwPrint
	KwWhile
	KwIf
	KwElse
	KwFunc
	KwReturn
	KwTrue
	KwFalse
)

var kindNames = [...]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Ident:     "ident",
	IntLit:    "int",
	StringLit: "string",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Lt:        "<",
	LtEq:      "<=",
	EqEq:      "==",
	BangEq:    "!=",
	Bang:      "!",
	Assign:    "=",
	Colon:     ":",
	Comma:     ",",
	Arrow:     "->",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	KwLet:     "let",
	KwPrint:   "print",
	KwWhile:   "while",
	KwIf:      "if",
	KwElse:    "else",
	KwFunc:    "func",
	KwReturn:  "return",
	KwTrue:    "true",
	KwFalse:   "false",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}
