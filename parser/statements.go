/*
File    : solparse/parser/statements.go
Package : parser

The top-level statement dispatch (spec §4.3): decides, from the current
token alone (plus the IAP lookahead for the ambiguous "bare expression
vs. declaration" case), which concrete statement grammar rule to run.
Grounded on go-mix parser_statements.go's keyword-to-parse-function
dispatch table, generalized to Solidity's statement keyword set and to
fall through to the IAP algorithm (parser/simple_stmt.go) instead of a
default expression-statement rule.
*/
package parser

import (
	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/token"
)

// ParseStmt parses and returns one statement, recovering to the next
// statement boundary on a local error so that a single malformed
// statement does not abort the whole file (spec §7).
func (p *Parser) ParseStmt() ast.Stmt {
	before := p.dcx.Count()
	start := p.tok.Span
	stmt := p.parseStmtKind()
	if p.dcx.Count() > before {
		// A statement that already consumed its own `;` or `}` is not
		// resynchronized, so the statement after it is kept.
		consumed := p.prevSpan.Lo >= start.Lo
		if last := p.lx.SpanText(p.prevSpan); !consumed || (last != ";" && last != "}") {
			p.recoverToStmtBoundary()
		}
	}
	return stmt
}

// parseStmtKind dispatches on the current token to the matching
// statement production (spec §4.3's dispatch table).
func (p *Parser) parseStmtKind() ast.Stmt {
	switch {
	case p.tok.IsOpenDelim(token.Brace):
		return p.parseBlock()
	case p.checkKeyword("if"):
		return p.parseIf()
	case p.checkKeyword("while"):
		return p.parseWhile()
	case p.checkKeyword("do"):
		return p.parseDoWhile()
	case p.checkKeyword("for"):
		return p.parseFor()
	case p.checkKeyword("continue"):
		return p.parseContinue()
	case p.checkKeyword("break"):
		return p.parseBreak()
	case p.checkKeyword("return"):
		return p.parseReturn()
	case p.checkKeyword("throw"):
		return p.parseThrow()
	case p.checkKeyword("emit"):
		return p.parseEmit()
	case p.checkKeyword("revert") && p.peek().IsIdent():
		return p.parseRevert()
	case p.checkKeyword("try"):
		return p.parseTry()
	case p.checkKeyword("unchecked"):
		return p.parseUnchecked()
	case p.checkKeyword("assembly"):
		return p.parseAssembly()
	case p.tok.IsIdentNamed("_") && p.peekIsSemi():
		return p.parsePlaceholder()
	default:
		return p.parseSimpleStmt()
	}
}

func (p *Parser) peekIsSemi() bool { return p.peek().Kind == token.Semi }

// parseBlock parses `{ Stmt* }`.
func (p *Parser) parseBlock() *ast.Block {
	start := p.tok.Span
	p.bump() // `{`
	var stmts []ast.Stmt
	for !p.tok.IsCloseDelim(token.Brace) && !p.tok.IsEOF() {
		stmts = append(stmts, p.ParseStmt())
	}
	end := p.tok.Span
	p.expectCloseDelim(token.Brace, "`}`")
	return &ast.Block{Sp: start.To(end), Stmts: stmts}
}

func (p *Parser) parseContinue() ast.Stmt {
	start := p.tok.Span
	p.bump()
	end := p.tok.Span
	p.expect(token.Semi, "`;`")
	return &ast.ContinueStmt{Sp: start.To(end)}
}

func (p *Parser) parseBreak() ast.Stmt {
	start := p.tok.Span
	p.bump()
	end := p.tok.Span
	p.expect(token.Semi, "`;`")
	return &ast.BreakStmt{Sp: start.To(end)}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.tok.Span
	p.bump()
	var value ast.Expr
	if !p.check(token.Semi) {
		value = p.parseExpr()
	}
	end := p.tok.Span
	p.expect(token.Semi, "`;`")
	return &ast.ReturnStmt{Sp: start.To(end), Value: value}
}

// parseThrow accepts the `throw;` syntax, then reports it as removed
// from the language rather than failing with a generic parse error
// (original_source's parser carries this exact special case).
func (p *Parser) parseThrow() ast.Stmt {
	start := p.tok.Span
	p.bump()
	end := p.tok.Span
	p.expect(token.Semi, "`;`")
	span := start.To(end)
	p.dcx.Err("`throw` statements have been removed; use `revert`, `require`, or `assert` instead").
		Span(span).Emit()
	return &ast.ThrowStmt{Sp: span}
}

func (p *Parser) parseEmit() ast.Stmt {
	start := p.tok.Span
	p.bump()
	callExpr := p.parseExpr()
	call, ok := callExpr.(*ast.CallExpr)
	if !ok {
		p.dcx.Err("expected a call expression after `emit`").Span(callExpr.Span()).Emit()
	}
	end := p.tok.Span
	p.expect(token.Semi, "`;`")
	return &ast.EmitStmt{Sp: start.To(end), Call: call}
}

func (p *Parser) parseRevert() ast.Stmt {
	start := p.tok.Span
	p.bump()
	var call *ast.CallExpr
	if !p.check(token.Semi) {
		callExpr := p.parseExpr()
		if c, ok := callExpr.(*ast.CallExpr); ok {
			call = c
		} else {
			p.dcx.Err("expected a call expression after `revert`").Span(callExpr.Span()).Emit()
		}
	}
	end := p.tok.Span
	p.expect(token.Semi, "`;`")
	return &ast.RevertStmt{Sp: start.To(end), Call: call}
}

func (p *Parser) parsePlaceholder() ast.Stmt {
	start := p.tok.Span
	p.bump() // `_`
	end := p.tok.Span
	p.expect(token.Semi, "`;`")
	return &ast.PlaceholderStmt{Sp: start.To(end)}
}
