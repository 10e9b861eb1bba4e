package parser

import (
	"fmt"

	"nimble/internal/ast"
	"nimble/internal/diag"
	"nimble/internal/token"
)

// parseExpression parses a comparison, the loosest Nimble expression level.
// Comparisons are non-associative: a < b < c is a syntax error caught by
// the type checker (the first comparison yields Bool, not Int).
func (p *Parser) parseExpression() ast.Node {
	first := p.pos
	left := p.parseAdditive()
	if left == nil {
		return nil
	}

	switch p.peek().Kind {
	case token.Lt, token.LtEq, token.EqEq, token.BangEq:
		op := p.advance()
		right := p.parseAdditive()
		return ast.NewBinary(p.spanFrom(first), first, p.lastIndexFrom(first), op.Kind, left, right)
	default:
		return left
	}
}

func (p *Parser) parseAdditive() ast.Node {
	first := p.pos
	left := p.parseMultiplicative()
	if left == nil {
		return nil
	}
	for p.at(token.Plus) || p.at(token.Minus) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = ast.NewBinary(p.spanFrom(first), first, p.lastIndexFrom(first), op.Kind, left, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Node {
	first := p.pos
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for p.at(token.Star) || p.at(token.Slash) {
		op := p.advance()
		right := p.parseUnary()
		left = ast.NewBinary(p.spanFrom(first), first, p.lastIndexFrom(first), op.Kind, left, right)
	}
	return left
}

func (p *Parser) parseUnary() ast.Node {
	if p.at(token.Minus) || p.at(token.Bang) {
		first := p.pos
		op := p.advance()
		operand := p.parseUnary()
		return ast.NewUnary(p.spanFrom(first), first, p.lastIndexFrom(first), op.Kind, operand)
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Node {
	first := p.pos
	switch tok := p.peek(); tok.Kind {
	case token.IntLit:
		p.advance()
		return ast.NewIntLit(tok.Span, first, first, tok.Text)
	case token.StringLit:
		p.advance()
		return ast.NewStringLit(tok.Span, first, first, tok.Text)
	case token.KwTrue, token.KwFalse:
		p.advance()
		return ast.NewBoolLit(tok.Span, first, first, tok.Kind == token.KwTrue)
	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			return p.parseCallTail(tok, first)
		}
		return ast.NewName(tok.Span, first, first, tok.Text)
	case token.LParen:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		return ast.NewParen(p.spanFrom(first), first, p.lastIndexFrom(first), inner)
	default:
		p.errorAt(tok, diag.SynExpectExpression,
			fmt.Sprintf("expected expression, found %q", tok.Text))
		return nil
	}
}

// parseCallTail parses the (args...) following a callee name already
// consumed at token index first.
func (p *Parser) parseCallTail(callee token.Token, first int) *ast.Call {
	p.advance() // (
	var args []ast.Node
	for !p.at(token.RParen) && !p.atEOF() {
		arg := p.parseExpression()
		if arg == nil {
			break
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	return ast.NewCall(p.spanFrom(first), first, p.lastIndexFrom(first), callee.Text, callee.Span, args)
}
