package token

var keywords = map[string]Kind{
	"let":    KwLet,
	"print":  KwPrint,
	"while":  KwWhile,
	"if":     KwIf,
	"else":   KwElse,
	"func":   KwFunc,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword returns the keyword kind for text, or Ident when text is an
// ordinary name.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}
