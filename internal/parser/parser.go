// Package parser builds a Nimble parse tree from a token slice.
//
// The entry point is selectable: a whole script, a single statement, or a
// single expression, so tests can analyze partial programs. Syntax errors go
// through diag.Reporter; the parser recovers by skipping tokens and always
// returns a tree (possibly with missing sub-expressions).
package parser

import (
	"nimble/internal/ast"
	"nimble/internal/diag"
	"nimble/internal/source"
	"nimble/internal/token"
)

// StartRule selects which grammar production parsing begins from.
type StartRule uint8

const (
	// StartScript parses a whole program: a statement sequence up to EOF.
	StartScript StartRule = iota
	// StartStatement parses exactly one statement.
	StartStatement
	// StartExpression parses exactly one expression.
	StartExpression
)

func (r StartRule) String() string {
	switch r {
	case StartScript:
		return "script"
	case StartStatement:
		return "statement"
	case StartExpression:
		return "expression"
	default:
		return "invalid"
	}
}

// Options configure one parse.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state for parsing one file.
type Parser struct {
	file   *source.File
	tokens []token.Token // EOF-terminated
	pos    int
	opts   Options
}

// Parse builds a tree from an EOF-terminated token slice under the given
// start rule. The returned tree always has a non-nil root.
func Parse(file *source.File, tokens []token.Token, start StartRule, opts Options) *ast.Tree {
	p := Parser{
		file:   file,
		tokens: tokens,
		opts:   opts,
	}

	var root ast.Node
	switch start {
	case StartStatement:
		root = p.parseStatementRoot()
	case StartExpression:
		root = p.parseExpressionRoot()
	default:
		root = p.parseScript()
	}

	return &ast.Tree{
		Root:   root,
		Tokens: tokens,
		File:   file,
	}
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atEOF() bool {
	return p.at(token.EOF)
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

// expect consumes a token of kind k or reports the diagnostic and leaves
// the position unchanged.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorAt(p.peek(), code, msg)
	return p.peek(), false
}

func (p *Parser) errorAt(tok token.Token, code diag.Code, msg string) {
	p.opts.CurrentErrors++
	diag.ReportError(p.opts.Reporter, code, tok.Span, msg)
}

// spanFrom covers tokens[first] through the last consumed token.
func (p *Parser) spanFrom(first int) source.Span {
	last := p.lastIndexFrom(first)
	return p.tokens[first].Span.Cover(p.tokens[last].Span)
}

// lastIndexFrom returns the index of the last consumed token, never less
// than first (nodes cover at least one token).
func (p *Parser) lastIndexFrom(first int) int {
	last := p.pos - 1
	if last < first {
		last = first
	}
	return last
}

// stamp finalizes a statement node built field by field.
func (p *Parser) stamp(n ast.Node, first int) ast.Node {
	ast.Stamp(n, p.spanFrom(first), first, p.lastIndexFrom(first))
	return n
}
