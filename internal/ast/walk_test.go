package ast

import (
	"testing"

	"nimble/internal/source"
	"nimble/internal/token"
)

func TestWalkVisitsDepthFirstPreOrder(t *testing.T) {
	// (1+2) as: Paren{Binary{IntLit, IntLit}}
	one := NewIntLit(source.Span{Start: 1, End: 2}, 1, 1, "1")
	two := NewIntLit(source.Span{Start: 3, End: 4}, 3, 3, "2")
	sum := NewBinary(source.Span{Start: 1, End: 4}, 1, 3, token.Plus, one, two)
	paren := NewParen(source.Span{Start: 0, End: 5}, 0, 4, sum)

	var order []Kind
	Walk(paren, func(n Node) {
		order = append(order, n.Kind())
	})

	want := []Kind{KindParen, KindBinary, KindIntLit, KindIntLit}
	if len(order) != len(want) {
		t.Fatalf("visited %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}

func TestWalkSkipsNilChildren(t *testing.T) {
	// a parser error can leave a binary with a missing right operand
	one := NewIntLit(source.Span{}, 0, 0, "1")
	broken := NewBinary(source.Span{}, 0, 1, token.Plus, one, nil)

	count := 0
	Walk(broken, func(Node) { count++ })
	if count != 2 {
		t.Fatalf("visited %d nodes, want 2", count)
	}
}

func TestTypeAnnotationDefaultsToAbsent(t *testing.T) {
	n := NewName(source.Span{}, 0, 0, "x")
	if n.Type().String() != "<no type>" {
		t.Fatalf("fresh node carries %v", n.Type())
	}
}

func TestTextOfConcatenatesTokenTexts(t *testing.T) {
	toks := []token.Token{
		{Kind: token.IntLit, Text: "1", Span: source.Span{Start: 0, End: 1}},
		{Kind: token.Plus, Text: "+", Span: source.Span{Start: 2, End: 3}},
		{Kind: token.IntLit, Text: "2", Span: source.Span{Start: 4, End: 5}},
		{Kind: token.EOF},
	}
	tree := &Tree{Tokens: toks}
	sum := NewBinary(source.Span{Start: 0, End: 5}, 0, 2, token.Plus, nil, nil)
	if got := tree.TextOf(sum); got != "1+2" {
		t.Fatalf("got %q", got)
	}
}
