package ast

import (
	"nimble/internal/source"
	"nimble/internal/token"
)

// IntLit is a decimal integer literal.
type IntLit struct {
	base
	Text string
}

func (*IntLit) Kind() Kind { return KindIntLit }

func NewIntLit(span source.Span, first, last int, text string) *IntLit {
	return &IntLit{base: makeBase(span, first, last), Text: text}
}

// StringLit is a double-quoted string literal. Text keeps the quotes.
type StringLit struct {
	base
	Text string
}

func (*StringLit) Kind() Kind { return KindStringLit }

func NewStringLit(span source.Span, first, last int, text string) *StringLit {
	return &StringLit{base: makeBase(span, first, last), Text: text}
}

// BoolLit is true or false.
type BoolLit struct {
	base
	Value bool
}

func (*BoolLit) Kind() Kind { return KindBoolLit }

func NewBoolLit(span source.Span, first, last int, value bool) *BoolLit {
	return &BoolLit{base: makeBase(span, first, last), Value: value}
}

// Name is a reference to a declared variable.
type Name struct {
	base
	Ident string
}

func (*Name) Kind() Kind { return KindName }

func NewName(span source.Span, first, last int, ident string) *Name {
	return &Name{base: makeBase(span, first, last), Ident: ident}
}

// Unary applies - or ! to an operand.
type Unary struct {
	base
	Op      token.Kind
	Operand Node
}

func (*Unary) Kind() Kind { return KindUnary }

func NewUnary(span source.Span, first, last int, op token.Kind, operand Node) *Unary {
	return &Unary{base: makeBase(span, first, last), Op: op, Operand: operand}
}

// Binary applies an infix operator to two operands.
type Binary struct {
	base
	Op    token.Kind
	Left  Node
	Right Node
}

func (*Binary) Kind() Kind { return KindBinary }

func NewBinary(span source.Span, first, last int, op token.Kind, left, right Node) *Binary {
	return &Binary{base: makeBase(span, first, last), Op: op, Left: left, Right: right}
}

// Call is a function call in expression position.
type Call struct {
	base
	Callee     string
	CalleeSpan source.Span
	Args       []Node
}

func (*Call) Kind() Kind { return KindCall }

func NewCall(span source.Span, first, last int, callee string, calleeSpan source.Span, args []Node) *Call {
	return &Call{base: makeBase(span, first, last), Callee: callee, CalleeSpan: calleeSpan, Args: args}
}

// Paren is a parenthesized sub-expression. It is collected as an expression
// in its own right (its rendered text includes the parentheses).
type Paren struct {
	base
	Inner Node
}

func (*Paren) Kind() Kind { return KindParen }

func NewParen(span source.Span, first, last int, inner Node) *Paren {
	return &Paren{base: makeBase(span, first, last), Inner: inner}
}
