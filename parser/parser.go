/*
File    : solparse/parser/parser.go
Package : parser

The Statement Parser (spec §4.3): a hand-written recursive-descent
parser over the cooked token stream, with a one-token lookahead buffer
and error recovery via a resync-to-statement-boundary strategy. Grounded
on go-mix parser/parser.go's `Parser` struct (CurrToken/NextToken
two-token-lookahead, Errors []string accumulation), generalized to pull
from the real `lexer.Lexer` instead of an in-memory token slice and to
emit `session.Diagnostic`s instead of plain strings.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/lexer"
	"github.com/akashmaji946/solparse/session"
	"github.com/akashmaji946/solparse/token"
)

// ErrRecover is returned by parsing functions that hit a local error and
// already emitted its diagnostic; nothing is skipped at that point
// (ParseStmt does the resynchronization to a statement boundary). Callers
// use it as a sentinel to avoid layering further diagnostics on top.
var ErrRecover = fmt.Errorf("parser: recovered from a local parse error")

// Parser holds one file's token stream and parsing state.
type Parser struct {
	dcx *session.DiagCtxt
	lx  *lexer.Lexer

	tok    token.Token  // current token
	peeked *token.Token // one-token lookahead buffer, nil if not yet filled

	prevSpan session.Span
}

// New creates a Parser over src, using dcx for diagnostics.
func New(dcx *session.DiagCtxt, src string, startPos session.BytePos) *Parser {
	lx := lexer.New(dcx, src, startPos, nil)
	p := &Parser{dcx: dcx, lx: lx}
	p.tok = p.lx.NextToken()
	return p
}

// ParseSourceUnit parses an entire file's statement list into a
// synthetic top-level block (spec §4.3's entry point). `import ...;`
// directives are skipped up to their `;` (the driver reads them with its
// own scan); other Solidity declarations (pragma/contract) are not this
// module's grammar and are parsed as statements.
func (p *Parser) ParseSourceUnit() *ast.Block {
	start := p.tok.Span
	var stmts []ast.Stmt
	for !p.tok.IsEOF() {
		if p.checkKeyword("import") {
			for !p.tok.IsEOF() && !p.check(token.Semi) {
				p.bump()
			}
			p.eat(token.Semi)
			continue
		}
		stmts = append(stmts, p.ParseStmt())
	}
	end := p.prevSpan
	return &ast.Block{Sp: start.To(end), Stmts: stmts}
}

// ---- token-stream primitives ----

// bump consumes the current token and returns it, advancing to the next.
func (p *Parser) bump() token.Token {
	cur := p.tok
	p.prevSpan = cur.Span
	if p.peeked != nil {
		p.tok = *p.peeked
		p.peeked = nil
	} else {
		p.tok = p.lx.NextToken()
	}
	return cur
}

// peek returns the token after the current one without consuming it.
func (p *Parser) peek() token.Token {
	if p.peeked == nil {
		t := p.lx.NextToken()
		p.peeked = &t
	}
	return *p.peeked
}

// check reports whether the current token has the given kind.
func (p *Parser) check(k token.Kind) bool { return p.tok.Kind == k }

// checkKeyword reports whether the current token is the identifier name.
func (p *Parser) checkKeyword(name string) bool { return p.tok.IsKeywordAny(name) }

// eat consumes and returns true if the current token has kind k.
func (p *Parser) eat(k token.Kind) bool {
	if p.check(k) {
		p.bump()
		return true
	}
	return false
}

// eatKeyword consumes and returns true if the current token is name.
func (p *Parser) eatKeyword(name string) bool {
	if p.checkKeyword(name) {
		p.bump()
		return true
	}
	return false
}

// expect consumes a token of kind k, emitting a diagnostic and
// returning ErrRecover if the current token doesn't match.
func (p *Parser) expect(k token.Kind, what string) error {
	if p.eat(k) {
		return nil
	}
	p.dcx.Err(fmt.Sprintf("expected %s, found %s", what, p.describe(p.tok))).
		Span(p.tok.Span).Emit()
	return ErrRecover
}

// expectKeyword consumes the keyword-shaped identifier name, emitting a
// diagnostic and returning ErrRecover otherwise.
func (p *Parser) expectKeyword(name string) error {
	if p.eatKeyword(name) {
		return nil
	}
	p.dcx.Err(fmt.Sprintf("expected `%s`, found %s", name, p.describe(p.tok))).
		Span(p.tok.Span).Emit()
	return ErrRecover
}

// expectCloseDelim consumes a closing delimiter of the given family,
// emitting a diagnostic and returning ErrRecover otherwise.
func (p *Parser) expectCloseDelim(d token.Delimiter, what string) error {
	if p.tok.IsCloseDelim(d) {
		p.bump()
		return nil
	}
	p.dcx.Err(fmt.Sprintf("expected %s, found %s", what, p.describe(p.tok))).
		Span(p.tok.Span).Emit()
	return ErrRecover
}

// expectOpenDelim consumes an opening delimiter of the given family,
// emitting a diagnostic and returning ErrRecover otherwise.
func (p *Parser) expectOpenDelim(d token.Delimiter, what string) error {
	if p.tok.IsOpenDelim(d) {
		p.bump()
		return nil
	}
	p.dcx.Err(fmt.Sprintf("expected %s, found %s", what, p.describe(p.tok))).
		Span(p.tok.Span).Emit()
	return ErrRecover
}

func (p *Parser) describe(t token.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident:
		return fmt.Sprintf("identifier `%s`", t.Text())
	case token.Literal:
		return fmt.Sprintf("literal `%s`", session.Resolve(t.Lit.Sym))
	default:
		return fmt.Sprintf("`%s`", t.Kind.String())
	}
}

// recoverToStmtBoundary advances past tokens until it reaches a `;`
// (consumed), a `}` (not consumed, so the enclosing block parser can
// close out), or EOF — the statement-level error-recovery strategy
// spec §7 requires ("Parser errors: recoverable... resynchronize at the
// next statement boundary").
func (p *Parser) recoverToStmtBoundary() {
	depth := 0
	for {
		switch {
		case p.tok.IsEOF():
			return
		case p.tok.IsOpenDelim(token.Brace):
			depth++
			p.bump()
		case p.tok.IsCloseDelim(token.Brace):
			if depth == 0 {
				return
			}
			depth--
			p.bump()
		case p.check(token.Semi) && depth == 0:
			p.bump()
			return
		default:
			p.bump()
		}
	}
}
