/*
File    : solparse/parser/control.go
Package : parser

Control-flow statement productions (spec §4.3 dispatch table): if/while/
do-while/for/unchecked. Grounded on go-mix parser_conditionals.go's
if/else shape and parser_loops.go's for/while shape, re-targeted to
Solidity's `(Cond)`-parenthesized condition grammar; `for`'s init/cond
clause optionality is grounded on original_source's parse_stmt_for
(crates/parse/src/parser/stmt.rs).
*/
package parser

import (
	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/token"
)

// parseIf parses `if (Cond) Then [else Else]`.
func (p *Parser) parseIf() ast.Stmt {
	start := p.tok.Span
	p.bump() // `if`
	p.expectOpenDelim(token.Paren, "`(`")
	cond := p.parseExpr()
	p.expectCloseDelim(token.Paren, "`)`")
	then := p.ParseStmt()
	var els ast.Stmt
	end := then.Span()
	if p.checkKeyword("else") {
		p.bump()
		els = p.ParseStmt()
		end = els.Span()
	}
	return &ast.IfStmt{Sp: start.To(end), Cond: cond, Then: then, Else: els}
}

// parseWhile parses `while (Cond) Body`.
func (p *Parser) parseWhile() ast.Stmt {
	start := p.tok.Span
	p.bump() // `while`
	p.expectOpenDelim(token.Paren, "`(`")
	cond := p.parseExpr()
	p.expectCloseDelim(token.Paren, "`)`")
	body := p.ParseStmt()
	return &ast.WhileStmt{Sp: start.To(body.Span()), Cond: cond, Body: body}
}

// parseDoWhile parses `do Block while (Cond);`.
func (p *Parser) parseDoWhile() ast.Stmt {
	start := p.tok.Span
	p.bump() // `do`
	body := p.parseBlock()
	p.expectKeyword("while")
	p.expectOpenDelim(token.Paren, "`(`")
	cond := p.parseExpr()
	end := p.tok.Span
	p.expectCloseDelim(token.Paren, "`)`")
	p.expect(token.Semi, "`;`")
	return &ast.DoWhileStmt{Sp: start.To(end), Body: body, Cond: cond}
}

// parseFor parses `for (Init?; Cond?; Next?) Body`, where Init is a
// simple statement (declaration or expression) with its own `;`, per
// spec §4.3's table row for `for`.
func (p *Parser) parseFor() ast.Stmt {
	start := p.tok.Span
	p.bump() // `for`
	p.expectOpenDelim(token.Paren, "`(`")

	var init ast.Stmt
	if !p.check(token.Semi) {
		init = p.parseSimpleStmtKind()
	}
	p.expect(token.Semi, "`;`")

	var cond ast.Expr
	if !p.check(token.Semi) {
		cond = p.parseExpr()
	}
	p.expect(token.Semi, "`;`")

	var next ast.Expr
	if !p.tok.IsCloseDelim(token.Paren) {
		next = p.parseExpr()
	}
	p.expectCloseDelim(token.Paren, "`)`")

	body := p.ParseStmt()
	return &ast.ForStmt{Sp: start.To(body.Span()), Init: init, Cond: cond, Post: next, Body: body}
}

// parseUnchecked parses `unchecked Block`.
func (p *Parser) parseUnchecked() ast.Stmt {
	start := p.tok.Span
	p.bump() // `unchecked`
	body := p.parseBlock()
	return &ast.UncheckedBlockStmt{Sp: start.To(body.Span()), Body: body}
}
