package ast

import (
	"strings"

	"nimble/internal/source"
	"nimble/internal/symbols"
	"nimble/internal/token"
)

// Tree is one parsed file: the root node, the token slice nodes index into,
// and the source file for position resolution. Analysis phases may attach
// the resolved top-level scope to Scope; it stays nil otherwise.
//
// The tree is built once by the parser and never restructured. Phases only
// write node type annotations and the Scope field.
type Tree struct {
	Root   Node
	Tokens []token.Token
	File   *source.File
	Scope  *symbols.Scope
}

// TextOf renders the full source text covered by n: the exact concatenation
// of its tokens' texts, with no separating whitespace. This matches how the
// tree itself defines coverage, so "1 + 2" renders as "1+2".
func (t *Tree) TextOf(n Node) string {
	first, last := n.TokenRange()
	var b strings.Builder
	for i := first; i <= last; i++ {
		b.WriteString(t.Tokens[i].Text)
	}
	return b.String()
}

// LineOf returns the 1-based source line of n's first token.
func (t *Tree) LineOf(n Node) int {
	first, _ := n.TokenRange()
	return int(t.File.Line(t.Tokens[first].Span.Start))
}
