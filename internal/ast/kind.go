package ast

// Kind tags every node variant in the parse tree. The set is closed:
// analysis code dispatches on the tag with a single switch instead of
// chains of type assertions.
type Kind uint8

const (
	KindInvalid Kind = iota

	// expression kinds
	KindIntLit
	KindStringLit
	KindBoolLit
	KindName
	KindUnary
	KindBinary
	KindCall
	KindParen

	// statement kinds
	KindCallStmt
	KindVarDecl
	KindAssign
	KindPrint
	KindWhile
	KindIf
	KindReturn
	KindFuncDef
	KindBlock

	// root kinds
	KindScript
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindIntLit:    "int_lit",
	KindStringLit: "string_lit",
	KindBoolLit:   "bool_lit",
	KindName:      "name",
	KindUnary:     "unary",
	KindBinary:    "binary",
	KindCall:      "call",
	KindParen:     "paren",
	KindCallStmt:  "call_stmt",
	KindVarDecl:   "var_decl",
	KindAssign:    "assign",
	KindPrint:     "print",
	KindWhile:     "while",
	KindIf:        "if",
	KindReturn:    "return",
	KindFuncDef:   "func_def",
	KindBlock:     "block",
	KindScript:    "script",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsExpr reports whether k is an expression kind.
func (k Kind) IsExpr() bool {
	return k >= KindIntLit && k <= KindParen
}
