/*
File    : solparse/parser/types.go
Package : parser

Type-position grammar: elementary types, array/mapping/function type
constructors, and the index-or-slice parse the IAP algorithm needs
(spec §4.3). original_source's own elementary/array/mapping type grammar
(`Self::parse_elementary_type` and friends, referenced but not defined in
the pack's stmt.rs) isn't part of this retrieval pack, so this file is
grounded instead on what stmt.rs does show: `peek_statement_type`
recognizing `mapping`/`function` as declaration-leading keywords (line
297) and `into_ty`'s index-to-array-type materialization, plus Solidity's
own published grammar for the shapes those keywords introduce. Expressed
in go-mix's plain-function-per-production style.
*/
package parser

import (
	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/token"
)

// parseElementaryType consumes one elementary-type-shaped identifier,
// plus an optional trailing `payable` for `address payable`.
func (p *Parser) parseElementaryType() ast.Ty {
	start := p.tok.Span
	name := p.tok.Text()
	p.bump()
	payable := false
	if name == "address" && p.tok.IsIdentNamed("payable") {
		payable = true
		p.bump()
	}
	end := p.prevSpan
	return &ast.ElementaryTy{Sp: start.To(end), Name: name, Payable: payable}
}

// parsePathType consumes a dotted identifier path used as a type name.
func (p *Parser) parsePathType() *ast.PathTy {
	path := p.parsePath()
	return &ast.PathTy{Sp: path.Sp, Path: *path}
}

// parsePath consumes `Ident (. Ident)*`.
func (p *Parser) parsePath() *ast.Path {
	start := p.tok.Span
	var segs []ast.Ident
	segs = append(segs, ast.Ident{Sp: p.tok.Span, Sym: p.tok.Sym})
	p.bump()
	for p.check(token.Dot) {
		p.bump()
		if !p.tok.IsIdent() {
			p.dcx.Err("expected identifier after `.`").Span(p.tok.Span).Emit()
			break
		}
		segs = append(segs, ast.Ident{Sp: p.tok.Span, Sym: p.tok.Sym})
		p.bump()
	}
	end := p.prevSpan
	return &ast.Path{Sp: start.To(end), Segments: segs}
}

// parseTypeSuffixes wraps base in `[Len]`/`[]` array constructors. It
// only handles the postfix array-bracket chain shared by every type;
// `mapping(...)` and elementary keywords start their own productions.
func (p *Parser) parseTypeSuffixes(base ast.Ty) ast.Ty {
	ty := base
	for p.tok.IsOpenDelim(token.Bracket) {
		start := ty.Span()
		p.bump()
		var length ast.Expr
		if !p.tok.IsCloseDelim(token.Bracket) {
			length = p.parseExpr()
		}
		end := p.tok.Span
		p.expectCloseDelim(token.Bracket, "`]`")
		ty = &ast.ArrayTy{Sp: start.To(end), Elem: ty, Len: length}
	}
	return ty
}

// parseMappingType parses `mapping ( [KeyName] KeyTy => [ValueName] ValueTy )`.
func (p *Parser) parseMappingType() ast.Ty {
	start := p.tok.Span
	p.bump() // `mapping`
	p.expectOpenDelim(token.Paren, "`(`")
	keyTy := p.parseType()
	var keyName *ast.Ident
	if p.tok.IsNonReservedIdent() {
		id := ast.Ident{Sp: p.tok.Span, Sym: p.tok.Sym}
		keyName = &id
		p.bump()
	}
	p.expect(token.FatArrow, "`=>`")
	valueTy := p.parseType()
	var valueName *ast.Ident
	if p.tok.IsNonReservedIdent() {
		id := ast.Ident{Sp: p.tok.Span, Sym: p.tok.Sym}
		valueName = &id
		p.bump()
	}
	end := p.tok.Span
	p.expectCloseDelim(token.Paren, "`)`")
	return &ast.MappingTy{Sp: start.To(end), KeyName: keyName, Key: keyTy, ValueName: valueName, Value: valueTy}
}

// parseFunctionType parses `function ( ParamTypes ) [visibility]
// [mutability] [returns ( ResultTypes )]`, the other declaration-leading
// keyword `peek_statement_type` names alongside `mapping`.
func (p *Parser) parseFunctionType() ast.Ty {
	start := p.tok.Span
	p.bump() // `function`
	params := parseOptionalItemsSeq(p, token.Paren, func(p *Parser) ast.Ty { return p.parseType() })

	visibility, mutability := "", ""
	end := p.prevSpan
	for isFunctionTyModifier(p.tok) {
		name := p.tok.Text()
		switch name {
		case "pure", "view", "payable":
			mutability = name
		default:
			visibility = name
		}
		end = p.tok.Span
		p.bump()
	}

	var results []ast.Ty
	if p.checkKeyword("returns") {
		p.bump()
		results = parseOptionalItemsSeq(p, token.Paren, func(p *Parser) ast.Ty { return p.parseType() })
		end = p.prevSpan
	}
	return &ast.FunctionTy{Sp: start.To(end), Params: params, Visibility: visibility, Mutability: mutability, Results: results}
}

// isFunctionTyModifier reports whether tok is a visibility or state-
// mutability keyword that can follow a function type's parameter list.
func isFunctionTyModifier(tok token.Token) bool {
	if !tok.IsIdent() {
		return false
	}
	switch tok.Text() {
	case "external", "internal", "public", "private", "pure", "view", "payable":
		return true
	default:
		return false
	}
}

// parseType parses any type-position production, used by mapping/array
// element positions and variable declarations once the IAP algorithm
// has resolved that a declaration is being parsed.
func (p *Parser) parseType() ast.Ty {
	var base ast.Ty
	switch {
	case p.checkKeyword("mapping"):
		return p.parseMappingType()
	case p.checkKeyword("function"):
		return p.parseFunctionType()
	case p.tok.IsElementaryType():
		base = p.parseElementaryType()
	default:
		base = p.parsePathType()
	}
	return p.parseTypeSuffixes(base)
}

// indexKind is the parsed content of one `[...]` in an IAP or postfix
// index expression: either a single index or a `lo:hi` slice, any side
// of which may be omitted.
type indexKind struct {
	isSlice  bool
	index    ast.Expr
	lo, hi   ast.Expr
}

// parseExprIndexKind parses the content of `[ ... ]` after the opening
// bracket has already been checked (not consumed): an index expression,
// a slice `lo:hi`, or either half of a slice omitted.
func (p *Parser) parseExprIndexKind() indexKind {
	p.bump() // `[`
	if p.check(token.Colon) {
		p.bump()
		var hi ast.Expr
		if !p.tok.IsCloseDelim(token.Bracket) {
			hi = p.parseExpr()
		}
		p.expectCloseDelim(token.Bracket, "`]`")
		return indexKind{isSlice: true, hi: hi}
	}
	if p.tok.IsCloseDelim(token.Bracket) {
		p.bump()
		return indexKind{}
	}
	first := p.parseExpr()
	if p.check(token.Colon) {
		p.bump()
		var hi ast.Expr
		if !p.tok.IsCloseDelim(token.Bracket) {
			hi = p.parseExpr()
		}
		p.expectCloseDelim(token.Bracket, "`]`")
		return indexKind{isSlice: true, lo: first, hi: hi}
	}
	p.expectCloseDelim(token.Bracket, "`]`")
	return indexKind{index: first}
}
