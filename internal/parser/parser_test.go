package parser_test

import (
	"testing"

	"nimble/internal/ast"
	"nimble/internal/diag"
	"nimble/internal/lexer"
	"nimble/internal/parser"
	"nimble/internal/source"
)

func parseSource(t *testing.T, src string, start parser.StartRule) (*ast.Tree, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.nim", []byte(src))
	bag := diag.NewBag(32)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.New(fs.Get(id), reporter).ScanAll()
	tree := parser.Parse(fs.Get(id), toks, start, parser.Options{Reporter: reporter})
	return tree, bag
}

func TestParseVarDecl(t *testing.T) {
	tree, bag := parseSource(t, "let x : Int = 1 + 2", parser.StartStatement)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Messages())
	}
	decl, ok := tree.Root.(*ast.VarDecl)
	if !ok {
		t.Fatalf("root is %v, want var_decl", tree.Root.Kind())
	}
	if decl.Name != "x" || decl.TypeName != "Int" {
		t.Fatalf("got name %q type %q", decl.Name, decl.TypeName)
	}
	bin, ok := decl.Init.(*ast.Binary)
	if !ok {
		t.Fatalf("initializer is %T, want binary", decl.Init)
	}
	if tree.TextOf(bin) != "1+2" {
		t.Fatalf("rendered text %q, want %q", tree.TextOf(bin), "1+2")
	}
}

func TestRenderedTextStripsWhitespace(t *testing.T) {
	tree, _ := parseSource(t, "f( 1 , 2 + 3 )", parser.StartExpression)
	if got := tree.TextOf(tree.Root); got != "f(1,2+3)" {
		t.Fatalf("rendered %q", got)
	}
}

func TestPrecedence(t *testing.T) {
	tree, bag := parseSource(t, "1 + 2 * 3 < 10", parser.StartExpression)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Messages())
	}
	cmp, ok := tree.Root.(*ast.Binary)
	if !ok {
		t.Fatalf("root is %T", tree.Root)
	}
	sum, ok := cmp.Left.(*ast.Binary)
	if !ok || tree.TextOf(sum) != "1+2*3" {
		t.Fatalf("comparison left is %T (%q)", cmp.Left, tree.TextOf(cmp.Left))
	}
	prod, ok := sum.Right.(*ast.Binary)
	if !ok || tree.TextOf(prod) != "2*3" {
		t.Fatalf("addition right is %T", sum.Right)
	}
}

func TestCallStatementVersusAssignment(t *testing.T) {
	tree, bag := parseSource(t, "f(1)\nx = 2", parser.StartScript)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Messages())
	}
	script := tree.Root.(*ast.Script)
	if len(script.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(script.Stmts))
	}
	if script.Stmts[0].Kind() != ast.KindCallStmt {
		t.Errorf("first statement is %v, want call_stmt", script.Stmts[0].Kind())
	}
	if script.Stmts[1].Kind() != ast.KindAssign {
		t.Errorf("second statement is %v, want assign", script.Stmts[1].Kind())
	}
}

func TestFuncDef(t *testing.T) {
	src := "func add(a: Int, b: Int) -> Int {\n  return a + b\n}"
	tree, bag := parseSource(t, src, parser.StartStatement)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Messages())
	}
	def := tree.Root.(*ast.FuncDef)
	if def.Name != "add" || def.ReturnTypeName != "Int" {
		t.Fatalf("got name %q return %q", def.Name, def.ReturnTypeName)
	}
	if len(def.Params) != 2 || def.Params[1].Name != "b" {
		t.Fatalf("params: %+v", def.Params)
	}
	if len(def.Body.Stmts) != 1 || def.Body.Stmts[0].Kind() != ast.KindReturn {
		t.Fatalf("body: %+v", def.Body.Stmts)
	}
}

func TestIfElseAndWhile(t *testing.T) {
	src := "while x < 10 {\n  if x == 5 { print x } else { x = x + 1 }\n}"
	tree, bag := parseSource(t, src, parser.StartScript)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Messages())
	}
	loop := tree.Root.(*ast.Script).Stmts[0].(*ast.While)
	cond := loop.Cond.(*ast.Binary)
	if tree.TextOf(cond) != "x<10" {
		t.Fatalf("condition rendered %q", tree.TextOf(cond))
	}
	ifStmt := loop.Body.Stmts[0].(*ast.If)
	if ifStmt.Else == nil {
		t.Fatalf("expected else branch")
	}
}

func TestSyntaxErrorsAreReportedNotFatal(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"let = 1", diag.SynExpectIdentifier},
		{"let x Int = 1", diag.SynExpectColon},
		{"print (1 + 2", diag.SynUnclosedParen},
		{"while true { print 1", diag.SynUnclosedBrace},
		{"print +", diag.SynExpectExpression},
		{"1 + 2 extra", diag.SynTrailingInput},
	}
	for _, tc := range cases {
		start := parser.StartScript
		if tc.src == "1 + 2 extra" {
			start = parser.StartExpression
		}
		_, bag := parseSource(t, tc.src, start)
		found := false
		for _, d := range bag.Items() {
			if d.Code == tc.code {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%q: expected code %v, got %v", tc.src, tc.code, bag.Messages())
		}
	}
}

func TestStatementStartRuleRejectsTrailingInput(t *testing.T) {
	_, bag := parseSource(t, "print 1 print 2", parser.StartStatement)
	if !bag.HasErrors() {
		t.Fatalf("expected trailing-input diagnostic")
	}
}

func TestEmptyScript(t *testing.T) {
	tree, bag := parseSource(t, "", parser.StartScript)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Messages())
	}
	if len(tree.Root.(*ast.Script).Stmts) != 0 {
		t.Fatalf("expected empty script")
	}
}
