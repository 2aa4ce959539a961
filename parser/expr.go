/*
File    : solparse/parser/expr.go
Package : parser

The expression grammar: a standard precedence-climbing parser with a
lowest-precedence right-associative assignment level and a ternary level
above it. Grounded on go-mix parser_precedence.go/parser_expressions.go's
Pratt-parser shape (prefix/infix function tables keyed by token type),
rewritten as direct recursive-descent-with-precedence since this
parser's real complexity lives in the statement grammar (simple_stmt.go)
rather than in expression parsing. parseExprWith allows the IAP
algorithm (simple_stmt.go) to hand off an already-built primary+postfix
expression and continue parsing from there.
*/
package parser

import (
	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/token"
)

// parseExpr parses a full expression from scratch.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssign()
}

// parseExprWith continues expression parsing from an already-built
// partial expression (spec §4.3's IAP hand-off), applying any further
// postfix operators before resuming at assignment/ternary/binary level.
func (p *Parser) parseExprWith(partial ast.Expr) ast.Expr {
	if partial == nil {
		return p.parseAssign()
	}
	base := p.parsePostfix(partial)
	return p.parseAssignFrom(base)
}

func (p *Parser) parseAssign() ast.Expr {
	return p.parseAssignFrom(p.parseUnary())
}

func (p *Parser) assignOpText() (string, bool) {
	if p.tok.Kind == token.Eq {
		return "=", true
	}
	if p.tok.Kind == token.BinOpEq {
		return binOpText(p.tok.BinOp) + "=", true
	}
	return "", false
}

func (p *Parser) parseAssignFrom(lhs ast.Expr) ast.Expr {
	t := p.parseTernaryFrom(lhs)
	if op, ok := p.assignOpText(); ok {
		p.bump()
		rhs := p.parseAssign()
		return &ast.AssignExpr{Sp: t.Span().To(rhs.Span()), Op: op, Lhs: t, Rhs: rhs}
	}
	return t
}

func (p *Parser) parseTernaryFrom(lhs ast.Expr) ast.Expr {
	cond := p.parseBinaryFrom(lhs, 0)
	if p.check(token.Question) {
		p.bump()
		thenE := p.parseExpr()
		p.expect(token.Colon, "`:`")
		elseE := p.parseAssign()
		return &ast.TernaryExpr{Sp: cond.Span().To(elseE.Span()), Cond: cond, Then: thenE, Else: elseE}
	}
	return cond
}

// precedence returns the binding power of the current token as a
// binary operator, and whether it is one at all.
func (p *Parser) precedence() (int, bool) {
	switch p.tok.Kind {
	case token.OrOr:
		return 1, true
	case token.AndAnd:
		return 2, true
	case token.EqEq, token.Ne:
		return 3, true
	case token.Lt, token.Gt, token.Le, token.Ge:
		return 4, true
	case token.BinOp:
		switch p.tok.BinOp {
		case token.Or:
			return 5, true
		case token.Caret:
			return 6, true
		case token.And:
			return 7, true
		case token.Shl, token.Shr, token.Sar:
			return 8, true
		case token.Plus, token.Minus:
			return 9, true
		case token.Star, token.Slash, token.Percent:
			return 10, true
		case token.StarStar:
			return 11, true
		}
	}
	return 0, false
}

func binOpText(b token.BinOpToken) string {
	switch b {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.StarStar:
		return "**"
	case token.Slash:
		return "/"
	case token.Percent:
		return "%"
	case token.Caret:
		return "^"
	case token.And:
		return "&"
	case token.Or:
		return "|"
	case token.Shl:
		return "<<"
	case token.Shr:
		return ">>"
	case token.Sar:
		return ">>>"
	default:
		return "?"
	}
}

func (p *Parser) tokOpText() string {
	switch p.tok.Kind {
	case token.OrOr:
		return "||"
	case token.AndAnd:
		return "&&"
	case token.EqEq:
		return "=="
	case token.Ne:
		return "!="
	case token.Lt:
		return "<"
	case token.Gt:
		return ">"
	case token.Le:
		return "<="
	case token.Ge:
		return ">="
	case token.BinOp:
		return binOpText(p.tok.BinOp)
	default:
		return "?"
	}
}

func (p *Parser) parseBinaryFrom(lhs ast.Expr, minPrec int) ast.Expr {
	for {
		prec, ok := p.precedence()
		if !ok || prec < minPrec {
			return lhs
		}
		op := p.tokOpText()
		p.bump()
		rhs := p.parseUnary()
		for {
			nextPrec, nextOk := p.precedence()
			if !nextOk || nextPrec <= prec {
				break
			}
			rhs = p.parseBinaryFrom(rhs, prec+1)
		}
		lhs = &ast.BinaryExpr{Sp: lhs.Span().To(rhs.Span()), Op: op, X: lhs, Y: rhs}
	}
}

var prefixOps = map[string]bool{"!": true, "~": true, "+": true, "-": true, "delete": true}

func (p *Parser) parseUnary() ast.Expr {
	start := p.tok.Span
	switch {
	case p.tok.Kind == token.Not:
		p.bump()
		x := p.parseUnary()
		return &ast.UnaryExpr{Sp: start.To(x.Span()), Op: "!", X: x}
	case p.tok.Kind == token.Tilde:
		p.bump()
		x := p.parseUnary()
		return &ast.UnaryExpr{Sp: start.To(x.Span()), Op: "~", X: x}
	case p.tok.Kind == token.BinOp && p.tok.BinOp == token.Minus:
		p.bump()
		x := p.parseUnary()
		return &ast.UnaryExpr{Sp: start.To(x.Span()), Op: "-", X: x}
	case p.tok.Kind == token.BinOp && p.tok.BinOp == token.Plus:
		p.bump()
		x := p.parseUnary()
		return &ast.UnaryExpr{Sp: start.To(x.Span()), Op: "+", X: x}
	case p.tok.Kind == token.PlusPlus:
		p.bump()
		x := p.parseUnary()
		return &ast.UnaryExpr{Sp: start.To(x.Span()), Op: "++", X: x}
	case p.tok.Kind == token.MinusMinus:
		p.bump()
		x := p.parseUnary()
		return &ast.UnaryExpr{Sp: start.To(x.Span()), Op: "--", X: x}
	case p.checkKeyword("delete"):
		p.bump()
		x := p.parseUnary()
		return &ast.UnaryExpr{Sp: start.To(x.Span()), Op: "delete", X: x}
	case p.checkKeyword("new"):
		p.bump()
		ty := p.parseType()
		return p.parsePostfix(&ast.NewExpr{Sp: start.To(ty.Span()), Type: ty})
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix applies the postfix-operator chain (`.name`, `(args)`,
// `[index]`/`[lo:hi]`, trailing `++`/`--`) to an already-parsed base.
func (p *Parser) parsePostfix(x ast.Expr) ast.Expr {
	for {
		switch {
		case p.check(token.Dot):
			p.bump()
			if !p.tok.IsIdent() {
				p.dcx.Err("expected identifier after `.`").Span(p.tok.Span).Emit()
				return x
			}
			name := ast.Ident{Sp: p.tok.Span, Sym: p.tok.Sym}
			end := p.tok.Span
			p.bump()
			x = &ast.MemberExpr{Sp: x.Span().To(end), X: x, Name: name}
		case p.tok.IsOpenDelim(token.Paren):
			x = p.parseCallArgs(x)
		case p.tok.IsOpenDelim(token.Brace):
			// A `{` after a completed call opens a block (e.g. a try body).
			if _, called := x.(*ast.CallExpr); called {
				return x
			}
			opts, _ := p.parseNamedArgs()
			if call, ok := p.parseCallArgs(x).(*ast.CallExpr); ok {
				call.CallOpts = opts
				x = call
			}
		case p.tok.IsOpenDelim(token.Bracket):
			ik := p.parseExprIndexKind()
			if ik.isSlice {
				x = &ast.IndexExpr{Sp: x.Span(), X: x, Index: ik.lo, End: ik.hi}
			} else {
				x = &ast.IndexExpr{Sp: x.Span(), X: x, Index: ik.index}
			}
		case p.tok.Kind == token.PlusPlus:
			end := p.tok.Span
			p.bump()
			x = &ast.UnaryExpr{Sp: x.Span().To(end), Op: "++", X: x, Postfix: true}
		case p.tok.Kind == token.MinusMinus:
			end := p.tok.Span
			p.bump()
			x = &ast.UnaryExpr{Sp: x.Span().To(end), Op: "--", X: x, Postfix: true}
		default:
			return x
		}
	}
}

// parseCallArgs parses `(args)` or `({name: value, ...})` call
// arguments. A preceding `{gas: ..., value: ...}` call-options block, if
// any, is recognized by parsePostfix before calling this.
func (p *Parser) parseCallArgs(fn ast.Expr) ast.Expr {
	p.bump() // `(`
	var args []ast.Expr
	var argNames []ast.Ident
	if p.tok.IsOpenDelim(token.Brace) {
		args, argNames = p.parseNamedArgs()
	} else {
		for !p.tok.IsCloseDelim(token.Paren) {
			args = append(args, p.parseExpr())
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	end := p.tok.Span
	p.expectCloseDelim(token.Paren, "`)`")
	return &ast.CallExpr{Sp: fn.Span().To(end), Fn: fn, Args: args, ArgNames: argNames}
}

func (p *Parser) parseNamedArgs() ([]ast.Expr, []ast.Ident) {
	p.bump() // `{`
	var args []ast.Expr
	var names []ast.Ident
	for !p.tok.IsCloseDelim(token.Brace) {
		if !p.tok.IsIdent() {
			p.dcx.Err("expected identifier in named argument list").Span(p.tok.Span).Emit()
			break
		}
		names = append(names, ast.Ident{Sp: p.tok.Span, Sym: p.tok.Sym})
		p.bump()
		p.expect(token.Colon, "`:`")
		args = append(args, p.parseExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expectCloseDelim(token.Brace, "`}`")
	return args, names
}

func (p *Parser) parsePrimary() ast.Expr {
	start := p.tok.Span
	switch {
	case p.tok.Kind == token.Literal:
		lit := p.tok
		p.bump()
		return &ast.LiteralExpr{Sp: start, Kind: int(lit.Lit.Kind), Sym: lit.Lit.Sym}
	case p.tok.IsKeywordAny("true"):
		p.bump()
		return &ast.BoolLiteralExpr{Sp: start, Value: true}
	case p.tok.IsKeywordAny("false"):
		p.bump()
		return &ast.BoolLiteralExpr{Sp: start, Value: false}
	case p.tok.IsOpenDelim(token.Paren):
		return p.parseParenOrTuple()
	case p.tok.IsOpenDelim(token.Bracket):
		return p.parseArrayExpr()
	case p.tok.IsElementaryType():
		ty := p.parseElementaryType()
		return &ast.TypeExpr{Sp: ty.Span(), Type: ty}
	case p.tok.IsIdent():
		id := ast.Ident{Sp: p.tok.Span, Sym: p.tok.Sym}
		p.bump()
		return &id
	default:
		p.dcx.Err("expected an expression, found " + p.describe(p.tok)).Span(p.tok.Span).Emit()
		p.bump()
		return &ast.Ident{Sp: start}
	}
}

func (p *Parser) parseParenOrTuple() ast.Expr {
	start := p.tok.Span
	p.bump() // `(`
	var elems []ast.Expr
	for !p.tok.IsCloseDelim(token.Paren) {
		if p.check(token.Comma) {
			elems = append(elems, nil)
		} else {
			elems = append(elems, p.parseExpr())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.tok.Span
	p.expectCloseDelim(token.Paren, "`)`")
	span := start.To(end)
	if len(elems) == 1 && elems[0] != nil {
		return elems[0]
	}
	return &ast.TupleExpr{Sp: span, Elems: elems}
}

func (p *Parser) parseArrayExpr() ast.Expr {
	start := p.tok.Span
	p.bump() // `[`
	var elems []ast.Expr
	for !p.tok.IsCloseDelim(token.Bracket) {
		elems = append(elems, p.parseExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.tok.Span
	p.expectCloseDelim(token.Bracket, "`]`")
	return &ast.ArrayExpr{Sp: start.To(end), Elems: elems}
}
