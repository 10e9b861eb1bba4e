// Package sema implements Nimble's two semantic-analysis phases.
//
// Both phases are full traversals of one parse tree. Phase one
// (DefineScopesAndSymbols) builds the scope hierarchy, declares every
// symbol, and reports duplicate declarations and uses of undeclared names.
// Phase two (InferTypesAndCheckConstraints) annotates every expression node
// with its inferred type and reports constraint violations. All findings go
// through diag.Reporter; neither phase returns errors.
package sema

import (
	"fmt"

	"nimble/internal/ast"
	"nimble/internal/diag"
	"nimble/internal/source"
	"nimble/internal/symbols"
	"nimble/internal/types"
)

// DefineScopesAndSymbols runs phase one over the tree. The resolved
// top-level scope is attached to tree.Scope; function scopes are attached
// to their FuncDef nodes for phase two.
//
// A tree parsed from a bare expression with no names needs no scope, and
// none is attached.
func DefineScopesAndSymbols(tree *ast.Tree, reporter diag.Reporter) {
	d := &scopeDefiner{tree: tree, reporter: reporter}
	d.walk(tree.Root)
}

type scopeDefiner struct {
	tree     *ast.Tree
	reporter diag.Reporter
	current  *symbols.Scope
}

// scope returns the current scope, creating and attaching the global scope
// on first demand. Trees parsed from a single statement get a scope this
// way; trees parsed from a script get theirs when the root is visited.
func (d *scopeDefiner) scope() *symbols.Scope {
	if d.current == nil {
		d.current = symbols.NewScope(symbols.ScopeGlobal, nil, "")
		d.tree.Scope = d.current
	}
	return d.current
}

func (d *scopeDefiner) walk(n ast.Node) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case *ast.Script:
		d.scope()
		for _, s := range v.Stmts {
			d.walk(s)
		}
	case *ast.VarDecl:
		d.walk(v.Init)
		d.declareVar(v)
	case *ast.FuncDef:
		d.declareFunc(v)
	case *ast.Assign:
		d.checkResolved(v.Name, v.NameSpan)
		d.walk(v.Value)
	case *ast.Name:
		d.checkResolved(v.Ident, v.Span())
	case *ast.Call:
		d.checkResolved(v.Callee, v.CalleeSpan)
		for _, a := range v.Args {
			d.walk(a)
		}
	default:
		for _, c := range ast.Children(n) {
			d.walk(c)
		}
	}
}

func (d *scopeDefiner) declareVar(v *ast.VarDecl) {
	if v.Name == "" {
		return // parser already reported the malformed declaration
	}
	sym := &symbols.Symbol{
		Name: v.Name,
		Kind: symbols.SymVariable,
		Type: d.resolveTypeName(v.TypeName, v.TypeSpan),
		Span: v.NameSpan,
	}
	if !d.scope().Declare(sym) {
		diag.ReportError(d.reporter, diag.SemaDuplicateSymbol, v.NameSpan,
			fmt.Sprintf("%q is already declared in this scope", v.Name))
	}
}

func (d *scopeDefiner) declareFunc(v *ast.FuncDef) {
	sig := &symbols.Signature{Return: types.None}
	if v.ReturnTypeName != "" {
		sig.Return = d.resolveTypeName(v.ReturnTypeName, v.ReturnTypeSpan)
	}
	for _, p := range v.Params {
		sig.Params = append(sig.Params, d.resolveTypeName(p.TypeName, p.TypeSpan))
	}

	if v.Name != "" {
		sym := &symbols.Symbol{
			Name: v.Name,
			Kind: symbols.SymFunction,
			Sig:  sig,
			Span: v.NameSpan,
		}
		if !d.scope().Declare(sym) {
			diag.ReportError(d.reporter, diag.SemaDuplicateSymbol, v.NameSpan,
				fmt.Sprintf("%q is already declared in this scope", v.Name))
		}
	}

	fnScope := symbols.NewScope(symbols.ScopeFunction, d.scope(), v.Name)
	v.Scope = fnScope
	for i, p := range v.Params {
		if p.Name == "" {
			continue
		}
		ok := fnScope.Declare(&symbols.Symbol{
			Name: p.Name,
			Kind: symbols.SymParam,
			Type: sig.Params[i],
			Span: p.NameSpan,
		})
		if !ok {
			diag.ReportError(d.reporter, diag.SemaDuplicateSymbol, p.NameSpan,
				fmt.Sprintf("duplicate parameter %q", p.Name))
		}
	}

	prev := d.current
	d.current = fnScope
	d.walk(v.Body)
	d.current = prev
}

// checkResolved reports a use of a name with no visible declaration.
// Nimble is declare-before-use: a call above the function's definition is
// an error here too.
func (d *scopeDefiner) checkResolved(name string, span source.Span) {
	if name == "" {
		return
	}
	if d.scope().Resolve(name) == nil {
		diag.ReportError(d.reporter, diag.SemaUnresolvedSymbol, span,
			fmt.Sprintf("%q is not declared", name))
	}
}

// resolveTypeName maps a written type name to its types.Type, reporting
// unknown names once at the declaration site.
func (d *scopeDefiner) resolveTypeName(name string, span source.Span) types.Type {
	if name == "" {
		return types.Error // parser already complained
	}
	t := types.FromName(name)
	if t == types.None {
		diag.ReportError(d.reporter, diag.SemaUnknownTypeName, span,
			fmt.Sprintf("unknown type name %q", name))
		return types.Error
	}
	return t
}
