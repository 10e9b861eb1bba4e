package diag

import "fmt"

// Code is a compact numeric diagnostic identifier with a stable string form.
// Ranges are reserved per phase: 1xxx lexical, 2xxx syntax, 3xxx semantic.
type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// syntax
	SynUnexpectedToken  Code = 2001
	SynExpectExpression Code = 2002
	SynExpectIdentifier Code = 2003
	SynExpectType       Code = 2004
	SynUnclosedParen    Code = 2005
	SynUnclosedBrace    Code = 2006
	SynExpectColon      Code = 2007
	SynTrailingInput    Code = 2008

	// semantic: scopes and symbols
	SemaDuplicateSymbol  Code = 3001
	SemaUnresolvedSymbol Code = 3002

	// semantic: types and constraints
	SemaTypeMismatch          Code = 3101
	SemaInvalidUnaryOperand   Code = 3102
	SemaInvalidBinaryOperands Code = 3103
	SemaConditionNotBool      Code = 3104
	SemaNotCallable           Code = 3105
	SemaWrongArgCount         Code = 3106
	SemaVoidInExpression      Code = 3107
	SemaReturnOutsideFunction Code = 3108
	SemaReturnTypeMismatch    Code = 3109
	SemaUnknownTypeName       Code = 3110
)

// String returns the stable identifier used in output and golden files.
func (c Code) String() string {
	return fmt.Sprintf("NIM%04d", uint16(c))
}
