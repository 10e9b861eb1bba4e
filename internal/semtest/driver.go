// Package semtest is a harness for testing Nimble's semantic analysis.
//
// Analyze drives the two analysis phases over one piece of source text and
// harvests their side effects into an indexed form: for every source line,
// the inferred type of every expression and function-call statement on it,
// keyed by the expression's rendered text. Tests can then assert "on line L,
// the expression S has type T" without depending on traversal order or node
// identity.
package semtest

import (
	"nimble/internal/diag"
	"nimble/internal/lexer"
	"nimble/internal/parser"
	"nimble/internal/sema"
	"nimble/internal/source"
	"nimble/internal/symbols"
)

// maxDiagnostics bounds one run's bag; test programs are small.
const maxDiagnostics = 64

// Result of one analysis run.
type Result struct {
	// Errors holds everything the lexer, parser, and phases reported,
	// in emission order.
	Errors *diag.Bag
	// Global is the top-level scope the phases attached to the tree's
	// root, or nil when none was attached.
	Global *symbols.Scope
	// Types is the line-and-text-indexed view of every inferred type.
	Types TypeIndex
}

// Analyze parses src under the given start rule, runs the scope phase, runs
// the type phase unless firstPhaseOnly is set, and collects the resulting
// annotations.
//
// Every call builds fresh state; nothing is shared between runs. Semantic
// problems in src are never Go errors: they land in Result.Errors. A panic
// out of a phase is a harness bug and is deliberately not recovered.
func Analyze(src string, start parser.StartRule, firstPhaseOnly bool) Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("input.nim", []byte(src)))

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	tokens := lexer.New(file, reporter).ScanAll()
	tree := parser.Parse(file, tokens, start, parser.Options{Reporter: reporter})

	sema.DefineScopesAndSymbols(tree, reporter)
	if !firstPhaseOnly {
		sema.InferTypesAndCheckConstraints(tree, reporter)
	}

	return Result{
		Errors: bag,
		Global: tree.Scope,
		Types:  CollectTypes(tree),
	}
}
