/*
File    : solparse/parser/simple_stmt.go
Package : parser

The simple-statement disambiguation algorithm (spec §4.3 "Simple
statement disambiguation" and "Tuple handling inside `(`") — the hard
part this whole component exists for. Solidity allows arbitrarily
nested tuple/array/member access before a parser can tell whether it is
looking at a variable declaration (`T x`, `(T1 a, , b)`) or an
expression (`f()`, `(a, , c) = g()`). Grounded directly on
original_source's `try_parse_iap`/`peek_statement_type`/`parse_iap`/
`IndexAccessedPath::into_ty`/`into_expr` (crates/parse/src/parser/stmt.rs),
translated into Go in go-mix's plain-function-per-production idiom.
*/
package parser

import (
	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/session"
	"github.com/akashmaji946/solparse/token"
)

// lookAheadInfo classifies what a simple statement's leading tokens
// turned out to be, per spec §4.3 step 2/3.
type lookAheadInfo int

const (
	// laIndexAccessStructure is an intermediate result only; tryParseIAP
	// never returns it to its caller (spec §9 "never commits to a node
	// type" — it always resolves to one of the two below first).
	laIndexAccessStructure lookAheadInfo = iota
	laVariableDeclaration
	laExpression
)

// iapElemKind distinguishes the three shapes an index-accessed-path
// component can take.
type iapElemKind int

const (
	iapMember iapElemKind = iota
	iapMemberTy
	iapIndex
)

// iapElem is one component of an indexAccessedPath: either a dotted
// identifier, a leading elementary-type name, or a trailing `[...]`.
type iapElem struct {
	kind  iapElemKind
	sp    session.Span
	ident ast.Ident // iapMember
	ty    ast.Ty    // iapMemberTy
	idx   indexKind // iapIndex
}

// indexAccessedPath is the speculative parse spec §4.3 step 3/GLOSSARY
// describes: a dotted-identifier-or-elementary-type prefix (its first
// nIdents elements), followed by zero or more `[...]` accesses. It
// commits to neither a type nor an expression until a caller asks.
type indexAccessedPath struct {
	path    []iapElem
	nIdents int
}

// peekStatementType is spec §4.3 step 2: classify the statement from
// the leading token(s) alone, without consuming anything, falling back
// to laIndexAccessStructure only when a `[`/`.` makes declaration vs.
// expression genuinely ambiguous.
func (p *Parser) peekStatementType() lookAheadInfo {
	if p.checkKeyword("mapping") || p.checkKeyword("function") {
		return laVariableDeclaration
	}
	if p.tok.IsNonReservedIdent() || p.tok.IsElementaryType() {
		next := p.peek()
		if p.tok.IsElementaryType() && next.IsIdentNamed("payable") {
			return laVariableDeclaration
		}
		if next.IsNonReservedIdent() || next.IsLocationSpecifier() {
			return laVariableDeclaration
		}
		if next.IsOpenDelim(token.Bracket) || next.Kind == token.Dot {
			return laIndexAccessStructure
		}
	}
	return laExpression
}

// tryParseIAP is spec §4.3 steps 2-3 combined: resolve the unambiguous
// cases directly (returning an empty indexAccessedPath, since none was
// needed), otherwise speculatively parse the path and classify by the
// follow-token. Never returns laIndexAccessStructure.
func (p *Parser) tryParseIAP() (lookAheadInfo, indexAccessedPath) {
	if la := p.peekStatementType(); la == laVariableDeclaration || la == laExpression {
		return la, indexAccessedPath{}
	}
	iap := p.parseIAP()
	if p.tok.IsNonReservedIdent() || p.tok.IsLocationSpecifier() {
		return laVariableDeclaration, iap
	}
	return laExpression, iap
}

// parseIAP is spec §4.3 step 3's `path := (Ident (. Ident)*) |
// ElementaryType; path := path ([...] index)*`.
func (p *Parser) parseIAP() indexAccessedPath {
	var path []iapElem
	if p.tok.IsNonReservedIdent() {
		start := p.tok.Span
		path = append(path, iapElem{kind: iapMember, sp: start, ident: ast.Ident{Sp: start, Sym: p.tok.Sym}})
		p.bump()
		for p.check(token.Dot) {
			p.bump()
			if !p.tok.IsIdent() {
				p.dcx.Err("expected identifier after `.`").Span(p.tok.Span).Emit()
				break
			}
			sp := p.tok.Span
			path = append(path, iapElem{kind: iapMember, sp: sp, ident: ast.Ident{Sp: sp, Sym: p.tok.Sym}})
			p.bump()
		}
	} else {
		start := p.tok.Span
		ty := p.parseElementaryType()
		path = append(path, iapElem{kind: iapMemberTy, sp: start.To(ty.Span()), ty: ty})
	}
	nIdents := len(path)

	for p.tok.IsOpenDelim(token.Bracket) {
		start := p.tok.Span
		ik := p.parseExprIndexKind()
		end := p.prevSpan
		path = append(path, iapElem{kind: iapIndex, sp: start.To(end), idx: ik})
	}
	return indexAccessedPath{path: path, nIdents: nIdents}
}

// intoTy materializes the path as a type (spec §4.3 step 4
// "Declaration"): the leading nIdents identifiers (or the single
// elementary type) become the base type, then each trailing `[...]`
// wraps it in an ArrayTy, left-to-right. Returns nil for an empty path
// (the unambiguous-declaration-keyword case in tryParseIAP, where the
// caller parses the type fresh instead). A range-style index degrades
// to "keep whichever bound is present" after reporting the error, per
// original_source's into_ty.
func (iap indexAccessedPath) intoTy(p *Parser) ast.Ty {
	if len(iap.path) == 0 {
		return nil
	}
	first := iap.path[0]
	var ty ast.Ty
	if first.kind == iapMemberTy {
		ty = first.ty
	} else {
		segs := make([]ast.Ident, iap.nIdents)
		for i := 0; i < iap.nIdents; i++ {
			segs[i] = iap.path[i].ident
		}
		pathSpan := segs[0].Sp.To(segs[len(segs)-1].Sp)
		ty = &ast.PathTy{Sp: pathSpan, Path: ast.Path{Sp: pathSpan, Segments: segs}}
	}
	for _, e := range iap.path[iap.nIdents:] {
		var size ast.Expr
		if e.idx.isSlice {
			p.dcx.Err("expected array length, got range expression").Span(e.sp).Emit()
			if e.idx.lo != nil {
				size = e.idx.lo
			} else {
				size = e.idx.hi
			}
		} else {
			size = e.idx.index
		}
		ty = &ast.ArrayTy{Sp: ty.Span().To(e.sp), Elem: ty, Len: size}
	}
	return ty
}

// intoExpr materializes the path as an expression (spec §4.3 step 4
// "Expression"): the first component becomes a primary, each following
// component becomes a Member or Index expression. Returns nil for an
// empty path.
func (iap indexAccessedPath) intoExpr(_ *Parser) ast.Expr {
	if len(iap.path) == 0 {
		return nil
	}
	first := iap.path[0]
	var expr ast.Expr
	switch first.kind {
	case iapMember:
		id := first.ident
		expr = &id
	case iapMemberTy:
		expr = &ast.TypeExpr{Sp: first.sp, Type: first.ty}
	}
	for _, e := range iap.path[1:] {
		switch e.kind {
		case iapMember:
			expr = &ast.MemberExpr{Sp: expr.Span().To(e.sp), X: expr, Name: e.ident}
		case iapIndex:
			if e.idx.isSlice {
				expr = &ast.IndexExpr{Sp: expr.Span().To(e.sp), X: expr, Index: e.idx.lo, End: e.idx.hi}
			} else {
				expr = &ast.IndexExpr{Sp: expr.Span().To(e.sp), X: expr, Index: e.idx.index}
			}
		}
	}
	return expr
}

// parseSimpleStmt parses a simple statement (declaration or expression)
// and its trailing `;` — the §4.3 dispatch table's "otherwise" row. Used
// everywhere except a `for` loop's init clause, which parses the same
// grammar via parseSimpleStmtKind and consumes its own `;`.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	stmt := p.parseSimpleStmtKind()
	p.expect(token.Semi, "`;`")
	return stmt
}

// parseSimpleStmtKind is spec §4.3's core disambiguation algorithm,
// without consuming a trailing `;`.
func (p *Parser) parseSimpleStmtKind() ast.Stmt {
	start := p.tok.Span
	if p.tok.IsOpenDelim(token.Paren) {
		return p.parseParenSimpleStmt(start)
	}

	la, iap := p.tryParseIAP()
	switch la {
	case laVariableDeclaration:
		decl := p.parseVariableDefinitionWith(iap.intoTy(p))
		var init ast.Expr
		end := decl.Sp
		if p.eat(token.Eq) {
			init = p.parseExpr()
			end = init.Span()
		}
		return &ast.VarDeclStmt{Sp: decl.Sp.To(end), Vars: []*ast.VarDecl{decl}, Init: init}
	default:
		expr := p.parseExprWith(iap.intoExpr(p))
		return &ast.ExprStmt{Sp: expr.Span(), X: expr}
	}
}

// parseParenSimpleStmt is spec §4.3 "Tuple handling inside `(`": after
// consuming leading empty components, disambiguate the first element
// with the same IAP algorithm, then materialize either a tuple
// destructuring declaration or a tuple expression.
func (p *Parser) parseParenSimpleStmt(start session.Span) ast.Stmt {
	p.bump() // `(`
	emptyComponents := 0
	for p.eat(token.Comma) {
		emptyComponents++
	}

	la, iap := p.tryParseIAP()
	switch la {
	case laVariableDeclaration:
		vars := make([]*ast.VarDecl, emptyComponents)
		first := p.parseVariableDefinitionWith(iap.intoTy(p))
		vars = append(vars, first)
		parseOptionalItemsSeqRequired(p, token.Paren, &vars, func(p *Parser) *ast.VarDecl {
			return p.parseVariableDefinition()
		})
		p.expect(token.Eq, "`=`")
		init := p.parseExpr()
		return &ast.VarDeclStmt{Sp: start.To(init.Span()), Vars: vars, Init: init}
	default:
		elems := make([]ast.Expr, emptyComponents)
		firstExpr := p.parseExprWith(iap.intoExpr(p))
		elems = append(elems, firstExpr)
		parseOptionalItemsSeqRequired(p, token.Paren, &elems, func(p *Parser) ast.Expr {
			return p.parseExpr()
		})
		tuple := &ast.TupleExpr{Sp: start.To(p.prevSpan), Elems: elems}
		full := p.parseExprWith(tuple)
		return &ast.ExprStmt{Sp: full.Span(), X: full}
	}
}
