package semtest

import (
	"nimble/internal/ast"
	"nimble/internal/types"
)

// TypeIndex maps line number -> rendered expression text -> inferred type.
// Values are types.None for nodes the phases never annotated.
type TypeIndex map[int]map[string]types.Type

// Put inserts or overwrites the entry at [line][text], creating the inner
// map when the line is new. Two nodes on one line rendering identical text
// share a key; the later Put wins. That collision policy is a documented
// limitation of the index, kept from the original harness.
func (ix TypeIndex) Put(line int, text string, ty types.Type) {
	inner, ok := ix[line]
	if !ok {
		inner = make(map[string]types.Type)
		ix[line] = inner
	}
	inner[text] = ty
}

// Lookup returns the recorded type at [line][text].
func (ix TypeIndex) Lookup(line int, text string) (types.Type, bool) {
	inner, ok := ix[line]
	if !ok {
		return types.None, false
	}
	ty, ok := inner[text]
	return ty, ok
}

// Len returns the total number of entries across all lines.
func (ix TypeIndex) Len() int {
	n := 0
	for _, inner := range ix {
		n += len(inner)
	}
	return n
}

// CollectTypes walks every node of the tree in its natural depth-first
// order and records the current type annotation of each expression and
// function-call statement. Nodes of any other kind are ignored. Run it
// after the analysis phases; on a fresh tree every entry is types.None.
func CollectTypes(tree *ast.Tree) TypeIndex {
	index := make(TypeIndex)
	ast.Walk(tree.Root, func(n ast.Node) {
		switch k := n.Kind(); {
		case k.IsExpr() || k == ast.KindCallStmt:
			index.Put(tree.LineOf(n), tree.TextOf(n), n.Type())
		}
	})
	return index
}
