package ast

import (
	"nimble/internal/source"
	"nimble/internal/types"
)

// Node is the common surface of every parse-tree node.
//
// Every node carries an optional type annotation, absent (types.None) until
// an analysis phase writes one. The annotation is a plain field on the
// node's static structure, never a dynamic attribute.
type Node interface {
	Kind() Kind
	Span() source.Span
	// TokenRange returns the inclusive range of indices into the owning
	// Tree's token slice covered by this node.
	TokenRange() (first, last int)
	Type() types.Type
	SetType(types.Type)
}

// base carries the bookkeeping shared by all node variants.
type base struct {
	span  source.Span
	first int
	last  int
	ty    types.Type
}

func (b *base) Span() source.Span      { return b.span }
func (b *base) TokenRange() (int, int) { return b.first, b.last }
func (b *base) Type() types.Type       { return b.ty }
func (b *base) SetType(t types.Type)   { b.ty = t }

func makeBase(span source.Span, first, last int) base {
	return base{span: span, first: first, last: last}
}
