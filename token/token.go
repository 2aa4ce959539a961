/*
File    : solparse/token/token.go
Package : token

The cooked Token type and the predicates the statement parser's IAP
lookahead (spec §4.3) needs. Grounded on go-mix lexer/token.go's Token
struct (Type + Literal + position), generalized to span + interned
symbol + kind-specific payload.
*/
package token

import "github.com/akashmaji946/solparse/session"

// Token is a single grammar-level token (spec §3 "Cooked token").
// Which of Sym/Lit/BinOp/Delim/Comment is meaningful depends on Kind.
type Token struct {
	Kind    Kind
	Span    session.Span
	Sym     session.Symbol    // Ident, DocComment content
	Lit     Lit               // Literal
	BinOp   BinOpToken        // BinOp, BinOpEq
	Delim   Delimiter         // OpenDelim, CloseDelim
	Comment CommentKind       // DocComment
}

// Lit is the payload of a Literal token.
type Lit struct {
	Kind LitKind
	Sym  session.Symbol
}

// DUMMY is the zero-value placeholder token, used before the lexer has
// produced a first real token.
var DUMMY = Token{Kind: EOF}

// IsEOF reports whether tok is the end-of-stream token.
func (tok Token) IsEOF() bool { return tok.Kind == EOF }

// Text returns the token's interned source text, for Ident and
// DocComment tokens only.
func (tok Token) Text() string { return session.Resolve(tok.Sym) }

// IsIdent reports whether tok is an identifier (keyword or not — this
// lexer never distinguishes them, per spec §3's Cooked token kinds).
func (tok Token) IsIdent() bool { return tok.Kind == Ident }

// IsIdentNamed reports whether tok is the identifier spelled name.
func (tok Token) IsIdentNamed(name string) bool {
	return tok.Kind == Ident && tok.Text() == name
}

// IsKeyword reports whether tok is the identifier-shaped keyword name.
func (tok Token) IsKeyword(name string) bool {
	return tok.Kind == Ident && tok.Text() == name
}

// IsKeywordAny reports whether tok's text matches any of names.
func (tok Token) IsKeywordAny(names ...string) bool {
	if tok.Kind != Ident {
		return false
	}
	text := tok.Text()
	for _, n := range names {
		if text == n {
			return true
		}
	}
	return false
}

// IsNonReservedIdent reports whether tok is an identifier usable as a
// variable/function name (spec §4.3's "non-reserved identifier").
func (tok Token) IsNonReservedIdent() bool {
	return tok.Kind == Ident && !IsReserved(tok.Text())
}

// IsLocationSpecifier reports whether tok spells `memory`/`storage`/
// `calldata`.
func (tok Token) IsLocationSpecifier() bool {
	return tok.Kind == Ident && IsLocationSpecifier(tok.Text())
}

// IsElementaryType reports whether tok names an elementary type.
func (tok Token) IsElementaryType() bool {
	return tok.Kind == Ident && IsElementaryType(tok.Text())
}

// IsOpenDelim reports whether tok opens the given bracket family.
func (tok Token) IsOpenDelim(d Delimiter) bool {
	return tok.Kind == OpenDelim && tok.Delim == d
}

// IsCloseDelim reports whether tok closes the given bracket family.
func (tok Token) IsCloseDelim(d Delimiter) bool {
	return tok.Kind == CloseDelim && tok.Delim == d
}
