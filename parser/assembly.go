/*
File    : solparse/parser/assembly.go
Package : parser

Inline assembly (Yul) is an external collaborator (spec §1's Non-goals
list "the inline-assembly (Yul) sub-grammar"); this file only recognizes
`assembly ["dialect"] [(flags,...)] { ... }` far enough to skip the
balanced brace block and retain it as raw source text, so that a
statement list containing an assembly block can still be parsed in
full. Grounded on original_source's `parse_stmt_assembly` shape
(crates/parse/src/parser/stmt.rs) for the dialect/flags grammar, with
the Yul block body itself treated as opaque per spec §1 ("treated as an
opaque sink").
*/
package parser

import (
	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/session"
	"github.com/akashmaji946/solparse/token"
)

// parseAssembly parses `assembly ["dialect"] [(flags,...)] { ... }`,
// retaining the `{ ... }` body verbatim rather than parsing Yul.
func (p *Parser) parseAssembly() ast.Stmt {
	start := p.tok.Span
	p.bump() // `assembly`

	dialect := ""
	if p.tok.Kind == token.Literal {
		dialect = session.Resolve(p.tok.Lit.Sym)
		p.bump()
	}

	var flags []session.Symbol
	if p.tok.IsOpenDelim(token.Paren) {
		p.bump()
		for !p.tok.IsCloseDelim(token.Paren) {
			if p.tok.Kind == token.Literal {
				flags = append(flags, p.tok.Lit.Sym)
				p.bump()
			} else {
				p.dcx.Err("expected string literal in assembly flags list").Span(p.tok.Span).Emit()
				break
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expectCloseDelim(token.Paren, "`)`")
	}

	bodyStart := p.tok.Span
	if p.expectOpenDelim(token.Brace, "`{`") != nil {
		return &ast.AssemblyStmt{Sp: start.To(p.tok.Span), Dialect: dialect, Flags: flags}
	}
	depth := 1
	for depth > 0 && !p.tok.IsEOF() {
		switch {
		case p.tok.IsOpenDelim(token.Brace):
			depth++
		case p.tok.IsCloseDelim(token.Brace):
			depth--
		}
		p.bump()
	}
	end := p.prevSpan
	raw := p.lx.SpanText(bodyStart.To(end))

	return &ast.AssemblyStmt{Sp: start.To(end), Dialect: dialect, Flags: flags, RawBody: raw}
}
