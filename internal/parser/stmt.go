package parser

import (
	"fmt"

	"nimble/internal/ast"
	"nimble/internal/diag"
	"nimble/internal/token"
)

// parseScript parses statements up to EOF.
func (p *Parser) parseScript() ast.Node {
	first := p.pos
	script := &ast.Script{}
	for !p.atEOF() && !p.opts.Enough() {
		before := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			script.Stmts = append(script.Stmts, stmt)
		}
		if p.pos == before {
			// no progress: skip the offending token to avoid looping
			p.advance()
		}
	}
	return p.stamp(script, first)
}

// parseStatementRoot parses one statement and requires EOF after it.
func (p *Parser) parseStatementRoot() ast.Node {
	first := p.pos
	stmt := p.parseStatement()
	if stmt == nil {
		stmt = p.stamp(&ast.Script{}, first)
	}
	if !p.atEOF() {
		p.errorAt(p.peek(), diag.SynTrailingInput, "expected a single statement")
	}
	return stmt
}

// parseExpressionRoot parses one expression and requires EOF after it.
func (p *Parser) parseExpressionRoot() ast.Node {
	first := p.pos
	expr := p.parseExpression()
	if expr == nil {
		expr = p.stamp(&ast.Script{}, first)
	}
	if !p.atEOF() {
		p.errorAt(p.peek(), diag.SynTrailingInput, "expected a single expression")
	}
	return expr
}

func (p *Parser) parseStatement() ast.Node {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseVarDecl()
	case token.KwPrint:
		return p.parsePrint()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwIf:
		return p.parseIf()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwFunc:
		return p.parseFuncDef()
	case token.Ident:
		return p.parseAssignOrCallStmt()
	default:
		p.errorAt(p.peek(), diag.SynUnexpectedToken,
			fmt.Sprintf("unexpected token %q at statement start", p.peek().Text))
		return nil
	}
}

// parseVarDecl parses: let NAME : TYPE (= expr)?
func (p *Parser) parseVarDecl() ast.Node {
	first := p.pos
	p.advance() // let

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name after 'let'")
	if !ok {
		return p.stamp(&ast.VarDecl{}, first)
	}
	decl := &ast.VarDecl{Name: name.Text, NameSpan: name.Span}

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after variable name"); ok {
		if typ, ok := p.expect(token.Ident, diag.SynExpectType, "expected type name after ':'"); ok {
			decl.TypeName = typ.Text
			decl.TypeSpan = typ.Span
		}
	}

	if p.at(token.Assign) {
		p.advance()
		decl.Init = p.parseExpression()
	}
	return p.stamp(decl, first)
}

// parseAssignOrCallStmt disambiguates NAME = expr from NAME(args).
func (p *Parser) parseAssignOrCallStmt() ast.Node {
	first := p.pos
	name := p.advance()

	switch p.peek().Kind {
	case token.LParen:
		call := p.parseCallTail(name, first)
		return p.stamp(&ast.CallStmt{Call: call}, first)
	case token.Assign:
		p.advance()
		value := p.parseExpression()
		return p.stamp(&ast.Assign{Name: name.Text, NameSpan: name.Span, Value: value}, first)
	default:
		p.errorAt(p.peek(), diag.SynUnexpectedToken,
			fmt.Sprintf("expected '=' or '(' after %q", name.Text))
		return p.stamp(&ast.Assign{Name: name.Text, NameSpan: name.Span}, first)
	}
}

func (p *Parser) parsePrint() ast.Node {
	first := p.pos
	p.advance() // print
	value := p.parseExpression()
	return p.stamp(&ast.Print{Value: value}, first)
}

func (p *Parser) parseWhile() ast.Node {
	first := p.pos
	p.advance() // while
	cond := p.parseExpression()
	body := p.parseBlock()
	return p.stamp(&ast.While{Cond: cond, Body: body}, first)
}

func (p *Parser) parseIf() ast.Node {
	first := p.pos
	p.advance() // if
	cond := p.parseExpression()
	then := p.parseBlock()
	stmt := &ast.If{Cond: cond, Then: then}
	if p.at(token.KwElse) {
		p.advance()
		stmt.Else = p.parseBlock()
	}
	return p.stamp(stmt, first)
}

func (p *Parser) parseReturn() ast.Node {
	first := p.pos
	p.advance() // return
	stmt := &ast.Return{}
	// a value is present unless the next token cannot start an expression
	if startsExpression(p.peek().Kind) {
		stmt.Value = p.parseExpression()
	}
	return p.stamp(stmt, first)
}

// parseFuncDef parses: func NAME(p: T, ...) (-> TYPE)? { body }
func (p *Parser) parseFuncDef() ast.Node {
	first := p.pos
	p.advance() // func

	def := &ast.FuncDef{}
	if name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name after 'func'"); ok {
		def.Name = name.Text
		def.NameSpan = name.Span
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); ok {
		for !p.at(token.RParen) && !p.atEOF() {
			param := ast.Param{}
			if name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name"); ok {
				param.Name = name.Text
				param.NameSpan = name.Span
			} else {
				break
			}
			if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); ok {
				if typ, ok := p.expect(token.Ident, diag.SynExpectType, "expected parameter type"); ok {
					param.TypeName = typ.Text
					param.TypeSpan = typ.Span
				}
			}
			def.Params = append(def.Params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")
	}

	if p.at(token.Arrow) {
		p.advance()
		if typ, ok := p.expect(token.Ident, diag.SynExpectType, "expected return type after '->'"); ok {
			def.ReturnTypeName = typ.Text
			def.ReturnTypeSpan = typ.Span
		}
	}

	def.Body = p.parseBlock()
	return p.stamp(def, first)
}

// parseBlock parses: { stmt* }
func (p *Parser) parseBlock() *ast.Block {
	first := p.pos
	block := &ast.Block{}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		p.stamp(block, first)
		return block
	}
	for !p.at(token.RBrace) && !p.atEOF() && !p.opts.Enough() {
		before := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	p.stamp(block, first)
	return block
}

func startsExpression(k token.Kind) bool {
	switch k {
	case token.IntLit, token.StringLit, token.KwTrue, token.KwFalse,
		token.Ident, token.Minus, token.Bang, token.LParen:
		return true
	default:
		return false
	}
}
