package sema_test

import (
	"strings"
	"testing"

	"nimble/internal/diag"
	"nimble/internal/parser"
	"nimble/internal/semtest"
	"nimble/internal/types"
)

// expectType analyzes src as a script and asserts one index entry.
func expectType(t *testing.T, src string, line int, text string, want types.Type) {
	t.Helper()
	res := semtest.Analyze(src, parser.StartScript, false)
	got, ok := res.Types.Lookup(line, text)
	if !ok {
		t.Fatalf("no entry for %q on line %d:\n%s", text, line, semtest.FormatTypes(res.Types))
	}
	if got != want {
		t.Fatalf("%q on line %d: got %s, want %s", text, line, got, want)
	}
}

// expectError analyzes src as a script and asserts a diagnostic code.
func expectError(t *testing.T, src string, code diag.Code) {
	t.Helper()
	res := semtest.Analyze(src, parser.StartScript, false)
	for _, d := range res.Errors.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("expected %v, got: %v", code, res.Errors.Messages())
}

func TestLiteralTypes(t *testing.T) {
	expectType(t, `print 42`, 1, "42", types.Int)
	expectType(t, `print "hi"`, 1, `"hi"`, types.String)
	expectType(t, `print true`, 1, "true", types.Bool)
	expectType(t, `print false`, 1, "false", types.Bool)
}

func TestArithmetic(t *testing.T) {
	expectType(t, "print 1 + 2 * 3", 1, "1+2*3", types.Int)
	expectType(t, "print 1 + 2 * 3", 1, "2*3", types.Int)
	expectType(t, "print -5", 1, "-5", types.Int)
	expectType(t, "print 10 / 2 - 3", 1, "10/2-3", types.Int)
}

func TestStringConcatenation(t *testing.T) {
	expectType(t, `print "a" + "b"`, 1, `"a"+"b"`, types.String)
	expectError(t, `print "a" + 1`, diag.SemaInvalidBinaryOperands)
}

func TestComparisons(t *testing.T) {
	expectType(t, "print 1 < 2", 1, "1<2", types.Bool)
	expectType(t, "print 1 <= 2", 1, "1<=2", types.Bool)
	expectType(t, "print 1 == 2", 1, "1==2", types.Bool)
	expectType(t, `print "a" != "b"`, 1, `"a"!="b"`, types.Bool)
	expectError(t, `print "a" < "b"`, diag.SemaInvalidBinaryOperands)
	expectError(t, `print 1 == true`, diag.SemaInvalidBinaryOperands)
}

func TestUnaryOperators(t *testing.T) {
	expectType(t, "print !true", 1, "!true", types.Bool)
	expectError(t, "print !1", diag.SemaInvalidUnaryOperand)
	expectError(t, `print -"a"`, diag.SemaInvalidUnaryOperand)
}

func TestVariableTypesFlowThroughScope(t *testing.T) {
	src := "let s : String = \"x\"\nprint s + s"
	expectType(t, src, 2, "s+s", types.String)
	expectType(t, src, 2, "s", types.String)
}

func TestDeclarationConstraints(t *testing.T) {
	expectError(t, "let x : Int = true", diag.SemaTypeMismatch)
	expectError(t, "let x : Int = 1\nlet x : Bool = true", diag.SemaDuplicateSymbol)
	expectError(t, "let x : Float = 1", diag.SemaUnknownTypeName)
}

func TestUndeclaredNames(t *testing.T) {
	expectError(t, "print y", diag.SemaUnresolvedSymbol)
	expectError(t, "y = 1", diag.SemaUnresolvedSymbol)
	expectError(t, "f(1)", diag.SemaUnresolvedSymbol)
	// declare-before-use: a call above the definition is unresolved
	expectError(t, "f()\nfunc f() { print 1 }", diag.SemaUnresolvedSymbol)
}

func TestAssignmentConstraints(t *testing.T) {
	expectError(t, "let x : Int = 1\nx = true", diag.SemaTypeMismatch)
	src := "let x : Int = 1\nx = x + 1"
	res := semtest.Analyze(src, parser.StartScript, false)
	if res.Errors.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Errors.Messages())
	}
}

func TestConditionMustBeBool(t *testing.T) {
	expectError(t, "while 1 { print 1 }", diag.SemaConditionNotBool)
	expectError(t, "if \"s\" { print 1 }", diag.SemaConditionNotBool)
	res := semtest.Analyze("while true { print 1 }", parser.StartScript, false)
	if res.Errors.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Errors.Messages())
	}
}

func TestCallConstraints(t *testing.T) {
	def := "func add(a: Int, b: Int) -> Int {\n  return a + b\n}\n"
	expectType(t, def+"print add(1, 2)", 4, "add(1,2)", types.Int)
	expectError(t, def+"print add(1)", diag.SemaWrongArgCount)
	expectError(t, def+"print add(1, true)", diag.SemaTypeMismatch)
	expectError(t, "let x : Int = 1\nx(1)", diag.SemaNotCallable)
	expectError(t, def+"print add", diag.SemaNotCallable)
}

func TestVoidCalls(t *testing.T) {
	def := "func log(s: String) {\n  print s\n}\n"
	// statement position is fine and stays unannotated
	res := semtest.Analyze(def+`log("x")`, parser.StartScript, false)
	if res.Errors.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Errors.Messages())
	}
	if ty, ok := res.Types.Lookup(4, `log("x")`); !ok || ty != types.None {
		t.Fatalf("void call statement: got %s (present=%v)", ty, ok)
	}
	// expression position is an error
	expectError(t, def+`let x : Int = log("x")`, diag.SemaVoidInExpression)
}

func TestReturnConstraints(t *testing.T) {
	expectError(t, "return 1", diag.SemaReturnOutsideFunction)
	expectError(t, "func f() -> Int { return true }", diag.SemaReturnTypeMismatch)
	expectError(t, "func f() -> Int { return }", diag.SemaReturnTypeMismatch)
	expectError(t, "func f() { return 1 }", diag.SemaReturnTypeMismatch)
}

func TestErrorsDoNotCascade(t *testing.T) {
	// y is unresolved; the enclosing sum must not add a second complaint
	res := semtest.Analyze("print y + 1", parser.StartScript, false)
	var count int
	for _, d := range res.Errors.Items() {
		if d.Severity == diag.SevError {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors.Messages())
	}
	if ty, _ := res.Types.Lookup(1, "y+1"); ty != types.Error {
		t.Fatalf("y+1 annotated %s, want ERROR", ty)
	}
}

func TestParamsVisibleOnlyInsideFunction(t *testing.T) {
	res := semtest.Analyze("func f(n: Int) -> Int {\n  return n\n}\nprint n", parser.StartScript, false)
	found := false
	for _, d := range res.Errors.Items() {
		if d.Code == diag.SemaUnresolvedSymbol && strings.Contains(d.Message, `"n"`) {
			found = true
		}
	}
	if !found {
		t.Fatalf("parameter leaked into the global scope: %v", res.Errors.Messages())
	}
}

func TestGlobalScopeListsDeclarations(t *testing.T) {
	src := "let a : Int = 1\nfunc f() { print a }\nlet b : Bool = true"
	res := semtest.Analyze(src, parser.StartScript, false)
	if res.Global == nil {
		t.Fatalf("expected a global scope")
	}
	names := make([]string, 0, res.Global.Len())
	for _, sym := range res.Global.Symbols() {
		names = append(names, sym.Name)
	}
	want := []string{"a", "f", "b"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}
