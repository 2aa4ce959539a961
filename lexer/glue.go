/*
File    : solparse/lexer/glue.go
Package : lexer

Operator glueing (spec §4.2): when two cooked tokens are adjacent with
no intervening whitespace/comment, they may combine into a larger
compound operator. New file — go-mix's lexer recognizes compound
operators with an inline one-token peek inside NextToken's switch (e.g.
`case '=': if lex.Peek() == '=' { ... }`); that peek-and-combine shape is
generalized here into a pure, table-driven `glue(prev, next)` function so
the cooked lexer can re-enter it in a loop and build arbitrarily long
chains (`>>>=` from four single-char tokens).
*/
package lexer

import "github.com/akashmaji946/solparse/token"

// glue reports whether prev and next combine into a single larger
// token, returning the glued kind/binop and true if so. The glue table
// must be reproduced bit-exact per spec §4.2.
func glue(prev, next token.Token) (token.Kind, token.BinOpToken, bool) {
	switch prev.Kind {
	case token.Eq:
		switch next.Kind {
		case token.Eq:
			return token.EqEq, 0, true
		case token.Gt:
			return token.FatArrow, 0, true
		}
	case token.Not:
		if next.Kind == token.Eq {
			return token.Ne, 0, true
		}
	case token.Lt:
		switch {
		case next.Kind == token.Eq:
			return token.Le, 0, true
		case next.Kind == token.Lt:
			return token.BinOp, token.Shl, true
		}
	case token.Gt:
		switch {
		case next.Kind == token.Eq:
			return token.Ge, 0, true
		case next.Kind == token.Gt:
			return token.BinOp, token.Shr, true
		}
	case token.BinOp:
		switch prev.BinOp {
		case token.Shr:
			if next.Kind == token.Gt {
				return token.BinOp, token.Sar, true
			}
			if next.Kind == token.Eq {
				return token.BinOpEq, token.Shr, true
			}
		case token.Sar:
			if next.Kind == token.Eq {
				return token.BinOpEq, token.Sar, true
			}
		case token.Shl:
			if next.Kind == token.Eq {
				return token.BinOpEq, token.Shl, true
			}
		case token.Plus:
			switch {
			case next.Kind == token.BinOp && next.BinOp == token.Plus:
				return token.PlusPlus, 0, true
			case next.Kind == token.Eq:
				return token.BinOpEq, token.Plus, true
			}
		case token.Minus:
			switch {
			case next.Kind == token.BinOp && next.BinOp == token.Minus:
				return token.MinusMinus, 0, true
			case next.Kind == token.Gt:
				return token.Arrow, 0, true
			case next.Kind == token.Eq:
				return token.BinOpEq, token.Minus, true
			}
		case token.Star:
			switch {
			case next.Kind == token.BinOp && next.BinOp == token.Star:
				return token.BinOp, token.StarStar, true
			case next.Kind == token.Eq:
				return token.BinOpEq, token.Star, true
			}
		case token.Slash:
			if next.Kind == token.Eq {
				return token.BinOpEq, token.Slash, true
			}
		case token.Percent:
			if next.Kind == token.Eq {
				return token.BinOpEq, token.Percent, true
			}
		case token.Or:
			switch {
			case next.Kind == token.BinOp && next.BinOp == token.Or:
				return token.OrOr, 0, true
			case next.Kind == token.Eq:
				return token.BinOpEq, token.Or, true
			}
		case token.And:
			switch {
			case next.Kind == token.BinOp && next.BinOp == token.And:
				return token.AndAnd, 0, true
			case next.Kind == token.Eq:
				return token.BinOpEq, token.And, true
			}
		case token.Caret:
			if next.Kind == token.Eq {
				return token.BinOpEq, token.Caret, true
			}
		}
	case token.Colon:
		if next.Kind == token.Eq {
			return token.Walrus, 0, true
		}
	}
	return 0, 0, false
}
