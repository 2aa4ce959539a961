/*
File    : solparse/parser/try_catch.go
Package : parser

`try`/`catch` parsing (spec §4.3 dispatch table): at least one `catch`
clause is required (spec §9 Open Question (b), resolved in SPEC_FULL.md
per original_source's unconditional `self.expect_keyword(kw::Catch)?`),
subsequent clauses gathered while the next token is `catch`. Each catch
clause may be unnamed, named, with or without a parenthesized parameter
list, followed by a block. Grounded on original_source's
`parse_stmt_try` (crates/parse/src/parser/stmt.rs), expressed in go-mix
parser_functions.go's call-argument-list parsing idiom for the
parameter/argument lists.
*/
package parser

import (
	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/token"
)

// parseTry parses `try Expr [returns (...)] Block catch+`.
func (p *Parser) parseTry() ast.Stmt {
	start := p.tok.Span
	p.bump() // `try`
	callExpr := p.parseExpr()

	var returns []*ast.VarDecl
	if p.checkKeyword("returns") {
		p.bump()
		returns = parseOptionalItemsSeq(p, token.Paren, func(p *Parser) *ast.VarDecl {
			return p.parseVariableDefinition()
		})
	}

	block := p.parseBlock()

	var catches []*ast.CatchClause
	if !p.checkKeyword("catch") {
		p.dcx.Err("expected `catch`, found " + p.describe(p.tok)).Span(p.tok.Span).Emit()
	}
	for p.checkKeyword("catch") {
		catches = append(catches, p.parseCatchClause())
	}

	end := block.Span()
	if n := len(catches); n > 0 {
		end = catches[n-1].Span()
	}
	return &ast.TryStmt{Sp: start.To(end), CallExpr: callExpr, Returns: returns, Block: block, Catches: catches}
}

// parseCatchClause parses one `catch [Name] ([Params])? Block` arm.
func (p *Parser) parseCatchClause() *ast.CatchClause {
	start := p.tok.Span
	p.bump() // `catch`

	name := ""
	if p.tok.IsIdent() {
		name = p.tok.Text()
		p.bump()
	}

	var params []*ast.VarDecl
	if p.tok.IsOpenDelim(token.Paren) {
		params = parseOptionalItemsSeq(p, token.Paren, func(p *Parser) *ast.VarDecl {
			return p.parseVariableDefinition()
		})
	}

	block := p.parseBlock()
	return &ast.CatchClause{Sp: start.To(block.Span()), Name: name, Params: params, Block: block}
}
