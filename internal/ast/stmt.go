package ast

import (
	"nimble/internal/source"
	"nimble/internal/symbols"
)

// CallStmt is a function call in statement position. It wraps the same Call
// node the expression grammar produces; the distinct kind is what lets
// statement-position calls be collected alongside expressions.
type CallStmt struct {
	base
	Call *Call
}

func (*CallStmt) Kind() Kind { return KindCallStmt }

func NewCallStmt(span source.Span, first, last int, call *Call) *CallStmt {
	return &CallStmt{base: makeBase(span, first, last), Call: call}
}

// VarDecl declares a variable: let NAME : TYPE (= expr)?
type VarDecl struct {
	base
	Name     string
	NameSpan source.Span
	TypeName string
	TypeSpan source.Span
	Init     Node // nil when omitted
}

func (*VarDecl) Kind() Kind { return KindVarDecl }

// Assign stores a value into a declared variable.
type Assign struct {
	base
	Name     string
	NameSpan source.Span
	Value    Node
}

func (*Assign) Kind() Kind { return KindAssign }

// Print writes one value to the output.
type Print struct {
	base
	Value Node
}

func (*Print) Kind() Kind { return KindPrint }

// While loops over Body while Cond holds.
type While struct {
	base
	Cond Node
	Body *Block
}

func (*While) Kind() Kind { return KindWhile }

// If runs Then when Cond holds, otherwise Else (which may be nil).
type If struct {
	base
	Cond Node
	Then *Block
	Else *Block
}

func (*If) Kind() Kind { return KindIf }

// Return exits the enclosing function, optionally with a value.
type Return struct {
	base
	Value Node // nil for bare return
}

func (*Return) Kind() Kind { return KindReturn }

// Param is one function parameter. Parameters are not nodes: they are never
// collected and carry no type annotation of their own.
type Param struct {
	Name     string
	NameSpan source.Span
	TypeName string
	TypeSpan source.Span
}

// FuncDef declares a function: func NAME(params) (-> TYPE)? { body }
type FuncDef struct {
	base
	Name           string
	NameSpan       source.Span
	Params         []Param
	ReturnTypeName string // "" for void
	ReturnTypeSpan source.Span
	Body           *Block
	// Scope is the function's body scope, attached by the scope phase.
	Scope *symbols.Scope
}

func (*FuncDef) Kind() Kind { return KindFuncDef }

// Block is a braced statement sequence.
type Block struct {
	base
	Stmts []Node
}

func (*Block) Kind() Kind { return KindBlock }

// Script is the root of a whole-program parse.
type Script struct {
	base
	Stmts []Node
}

func (*Script) Kind() Kind { return KindScript }

// Stamp sets location info on statement nodes the parser builds field by
// field. first and last are inclusive token indices.
func Stamp(n Node, span source.Span, first, last int) {
	switch v := n.(type) {
	case *CallStmt:
		v.base = makeBase(span, first, last)
	case *VarDecl:
		v.base = makeBase(span, first, last)
	case *Assign:
		v.base = makeBase(span, first, last)
	case *Print:
		v.base = makeBase(span, first, last)
	case *While:
		v.base = makeBase(span, first, last)
	case *If:
		v.base = makeBase(span, first, last)
	case *Return:
		v.base = makeBase(span, first, last)
	case *FuncDef:
		v.base = makeBase(span, first, last)
	case *Block:
		v.base = makeBase(span, first, last)
	case *Script:
		v.base = makeBase(span, first, last)
	default:
		panic("ast: Stamp on unsupported node kind " + n.Kind().String())
	}
}
