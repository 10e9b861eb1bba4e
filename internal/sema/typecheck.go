package sema

import (
	"fmt"

	"nimble/internal/ast"
	"nimble/internal/diag"
	"nimble/internal/symbols"
	"nimble/internal/token"
	"nimble/internal/types"
)

// InferTypesAndCheckConstraints runs phase two over the tree, writing a type
// annotation onto every expression node and reporting constraint violations.
// It expects DefineScopesAndSymbols to have run first; names the scope phase
// could not resolve get types.Error here without a second diagnostic.
func InferTypesAndCheckConstraints(tree *ast.Tree, reporter diag.Reporter) {
	c := &typeChecker{tree: tree, reporter: reporter}
	c.checkStmt(tree.Root, tree.Scope, nil)
}

type typeChecker struct {
	tree     *ast.Tree
	reporter diag.Reporter
}

// checkStmt checks one statement (or root) inside scope. fn is the symbol of
// the enclosing function, nil at top level.
func (c *typeChecker) checkStmt(n ast.Node, scope *symbols.Scope, fn *symbols.Symbol) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case *ast.Script:
		for _, s := range v.Stmts {
			c.checkStmt(s, scope, fn)
		}
	case *ast.Block:
		for _, s := range v.Stmts {
			c.checkStmt(s, scope, fn)
		}
	case *ast.VarDecl:
		c.checkVarDecl(v, scope)
	case *ast.Assign:
		c.checkAssign(v, scope)
	case *ast.Print:
		c.checkPrint(v, scope)
	case *ast.While:
		c.checkCondition(v.Cond, scope, "while")
		c.checkStmt(v.Body, scope, fn)
	case *ast.If:
		c.checkCondition(v.Cond, scope, "if")
		c.checkStmt(v.Then, scope, fn)
		if v.Else != nil {
			c.checkStmt(v.Else, scope, fn)
		}
	case *ast.Return:
		c.checkReturn(v, scope, fn)
	case *ast.FuncDef:
		c.checkFuncDef(v, scope)
	case *ast.CallStmt:
		// statement position: a void callee is fine here
		t := c.inferCall(v.Call, scope, true)
		v.SetType(t)
	default:
		// a bare expression as the tree root (expression start rule)
		c.inferExpr(n, scope)
	}
}

func (c *typeChecker) checkVarDecl(v *ast.VarDecl, scope *symbols.Scope) {
	if v.Init == nil {
		return
	}
	got := c.inferExpr(v.Init, scope)
	if v.Name == "" || scope == nil {
		return
	}
	sym := scope.Resolve(v.Name)
	if sym == nil {
		return
	}
	want := sym.Type
	if want.Primitive() && got.Primitive() && got != want {
		diag.ReportError(c.reporter, diag.SemaTypeMismatch, v.Init.Span(),
			fmt.Sprintf("cannot initialize %s variable %q with %s", want, v.Name, got))
	}
}

func (c *typeChecker) checkAssign(v *ast.Assign, scope *symbols.Scope) {
	got := c.inferExpr(v.Value, scope)
	sym := resolve(scope, v.Name)
	if sym == nil || sym.Kind == symbols.SymFunction {
		return // unresolved or not assignable; scope phase reported it
	}
	if sym.Type.Primitive() && got.Primitive() && got != sym.Type {
		diag.ReportError(c.reporter, diag.SemaTypeMismatch, v.Value.Span(),
			fmt.Sprintf("cannot assign %s to %s variable %q", got, sym.Type, v.Name))
	}
}

func (c *typeChecker) checkPrint(v *ast.Print, scope *symbols.Scope) {
	t := c.inferExpr(v.Value, scope)
	if t != types.Error && !t.Primitive() && v.Value != nil {
		diag.ReportError(c.reporter, diag.SemaTypeMismatch, v.Value.Span(),
			"print requires an Int, Bool, or String value")
	}
}

func (c *typeChecker) checkCondition(cond ast.Node, scope *symbols.Scope, stmt string) {
	t := c.inferExpr(cond, scope)
	if t != types.Bool && t != types.Error && cond != nil {
		diag.ReportError(c.reporter, diag.SemaConditionNotBool, cond.Span(),
			fmt.Sprintf("%s condition must be Bool, found %s", stmt, t))
	}
}

func (c *typeChecker) checkReturn(v *ast.Return, scope *symbols.Scope, fn *symbols.Symbol) {
	var got types.Type
	if v.Value != nil {
		got = c.inferExpr(v.Value, scope)
	}
	if fn == nil {
		diag.ReportError(c.reporter, diag.SemaReturnOutsideFunction, v.Span(),
			"return outside of a function")
		return
	}
	want := fn.Sig.Return
	switch {
	case want == types.None && v.Value != nil:
		diag.ReportError(c.reporter, diag.SemaReturnTypeMismatch, v.Value.Span(),
			fmt.Sprintf("%q does not return a value", fn.Name))
	case want.Primitive() && v.Value == nil:
		diag.ReportError(c.reporter, diag.SemaReturnTypeMismatch, v.Span(),
			fmt.Sprintf("%q must return %s", fn.Name, want))
	case want.Primitive() && got.Primitive() && got != want:
		diag.ReportError(c.reporter, diag.SemaReturnTypeMismatch, v.Value.Span(),
			fmt.Sprintf("%q returns %s, found %s", fn.Name, want, got))
	}
}

func (c *typeChecker) checkFuncDef(v *ast.FuncDef, scope *symbols.Scope) {
	var fn *symbols.Symbol
	if scope != nil {
		if sym := scope.Resolve(v.Name); sym != nil && sym.Kind == symbols.SymFunction {
			fn = sym
		}
	}
	body := v.Scope
	if body == nil {
		body = scope // scope phase did not run standalone; degrade gracefully
	}
	c.checkStmt(v.Body, body, fn)
}

// inferExpr computes, annotates, and returns the type of an expression.
// Operands already typed Error are accepted by every rule so a single
// mistake is reported once.
func (c *typeChecker) inferExpr(n ast.Node, scope *symbols.Scope) types.Type {
	if n == nil {
		return types.Error
	}
	t := types.Error
	switch v := n.(type) {
	case *ast.IntLit:
		t = types.Int
	case *ast.StringLit:
		t = types.String
	case *ast.BoolLit:
		t = types.Bool
	case *ast.Name:
		t = c.inferName(v, scope)
	case *ast.Unary:
		t = c.inferUnary(v, scope)
	case *ast.Binary:
		t = c.inferBinary(v, scope)
	case *ast.Paren:
		t = c.inferExpr(v.Inner, scope)
	case *ast.Call:
		t = c.inferCall(v, scope, false)
	default:
		panic("sema: inferExpr on non-expression kind " + n.Kind().String())
	}
	n.SetType(t)
	return t
}

func (c *typeChecker) inferName(v *ast.Name, scope *symbols.Scope) types.Type {
	sym := resolve(scope, v.Ident)
	if sym == nil {
		return types.Error // reported by the scope phase
	}
	if sym.Kind == symbols.SymFunction {
		diag.ReportError(c.reporter, diag.SemaNotCallable, v.Span(),
			fmt.Sprintf("function %q used as a value", v.Ident))
		return types.Error
	}
	return sym.Type
}

func (c *typeChecker) inferUnary(v *ast.Unary, scope *symbols.Scope) types.Type {
	operand := c.inferExpr(v.Operand, scope)
	if operand == types.Error {
		return types.Error
	}
	switch v.Op {
	case token.Minus:
		if operand == types.Int {
			return types.Int
		}
	case token.Bang:
		if operand == types.Bool {
			return types.Bool
		}
	}
	diag.ReportError(c.reporter, diag.SemaInvalidUnaryOperand, v.Span(),
		fmt.Sprintf("operator %q cannot be applied to %s", v.Op, operand))
	return types.Error
}

func (c *typeChecker) inferBinary(v *ast.Binary, scope *symbols.Scope) types.Type {
	left := c.inferExpr(v.Left, scope)
	right := c.inferExpr(v.Right, scope)
	if left == types.Error || right == types.Error {
		return types.Error
	}

	switch v.Op {
	case token.Plus:
		// Int addition and String concatenation share the operator
		if left == types.Int && right == types.Int {
			return types.Int
		}
		if left == types.String && right == types.String {
			return types.String
		}
	case token.Minus, token.Star, token.Slash:
		if left == types.Int && right == types.Int {
			return types.Int
		}
	case token.Lt, token.LtEq:
		if left == types.Int && right == types.Int {
			return types.Bool
		}
	case token.EqEq, token.BangEq:
		if left == right {
			return types.Bool
		}
	}
	diag.ReportError(c.reporter, diag.SemaInvalidBinaryOperands, v.Span(),
		fmt.Sprintf("operator %q cannot be applied to %s and %s", v.Op, left, right))
	return types.Error
}

// inferCall types a call node. stmtPosition relaxes the void rule: a call
// whose callee returns nothing is legal as a statement but not inside an
// expression. Void calls keep the absent annotation.
func (c *typeChecker) inferCall(v *ast.Call, scope *symbols.Scope, stmtPosition bool) types.Type {
	argTypes := make([]types.Type, len(v.Args))
	for i, a := range v.Args {
		argTypes[i] = c.inferExpr(a, scope)
	}

	sym := resolve(scope, v.Callee)
	if sym == nil {
		v.SetType(types.Error)
		return types.Error // reported by the scope phase
	}
	if sym.Kind != symbols.SymFunction {
		diag.ReportError(c.reporter, diag.SemaNotCallable, v.CalleeSpan,
			fmt.Sprintf("%q is a %s, not a function", v.Callee, sym.Kind))
		v.SetType(types.Error)
		return types.Error
	}

	sig := sym.Sig
	if len(argTypes) != len(sig.Params) {
		diag.ReportError(c.reporter, diag.SemaWrongArgCount, v.Span(),
			fmt.Sprintf("%q expects %d argument(s), found %d", v.Callee, len(sig.Params), len(argTypes)))
	} else {
		for i, want := range sig.Params {
			got := argTypes[i]
			if want.Primitive() && got.Primitive() && got != want {
				diag.ReportError(c.reporter, diag.SemaTypeMismatch, v.Args[i].Span(),
					fmt.Sprintf("argument %d of %q must be %s, found %s", i+1, v.Callee, want, got))
			}
		}
	}

	ret := sig.Return
	if ret == types.None {
		if !stmtPosition {
			diag.ReportError(c.reporter, diag.SemaVoidInExpression, v.Span(),
				fmt.Sprintf("%q does not return a value", v.Callee))
			v.SetType(types.Error)
			return types.Error
		}
		// leave the annotation absent: there is no value here
		return types.None
	}
	v.SetType(ret)
	return ret
}

func resolve(scope *symbols.Scope, name string) *symbols.Symbol {
	if scope == nil || name == "" {
		return nil
	}
	return scope.Resolve(name)
}
