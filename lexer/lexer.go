/*
File    : solparse/lexer/lexer.go
Package : lexer

The Cooked Lexer (spec §4.2): wraps the Raw Cursor, interns token text,
emits diagnostics, and performs operator glueing. Grounded on go-mix
lexer/lexer.go's NextToken dispatch-by-character structure, generalized
to dispatch by RawKind and to emit diagnostics instead of returning
INVALID_TYPE tokens.
*/
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/akashmaji946/solparse/session"
	"github.com/akashmaji946/solparse/token"
)

// Lexer converts raw tokens into cooked tokens for one file's source
// text.
type Lexer struct {
	dcx *session.DiagCtxt

	startPos session.BytePos
	pos      session.BytePos
	src      string
	cursor   *Cursor

	// token is the token already cooked but not yet returned by
	// NextToken — the "pending" token that a following adjacent token
	// may still glue onto.
	token token.Token

	overrideSpan *session.Span

	// nbspIsWhitespace is set once an "unknown start of token" diagnostic
	// for a non-breaking space has been emitted for this file; subsequent non-breaking
	// spaces are then silently treated as whitespace (spec §4.2).
	nbspIsWhitespace bool
}

// New creates a Lexer over src. startPos is the byte offset this file's
// text begins at within the (conceptual) global source map; overrideSpan,
// if non-nil, is attached to every token instead of the token's real
// span (used when re-lexing synthetic source, per spec §3).
func New(dcx *session.DiagCtxt, src string, startPos session.BytePos, overrideSpan *session.Span) *Lexer {
	lx := &Lexer{
		dcx:          dcx,
		startPos:     startPos,
		pos:          startPos,
		src:          src,
		cursor:       NewCursor(src),
		overrideSpan: overrideSpan,
	}
	lx.token, _ = lx.bump()
	return lx
}

// NextToken returns the next cooked token, advancing the lexer.
func (lx *Lexer) NextToken() token.Token {
	var next token.Token
	for {
		var precededByWhitespace bool
		next, precededByWhitespace = lx.bump()
		if precededByWhitespace {
			break
		}
		if kind, binOp, ok := glue(lx.token, next); ok {
			lx.token = token.Token{Kind: kind, BinOp: binOp, Span: lx.token.Span.To(next.Span)}
			continue
		}
		break
	}
	result := lx.token
	lx.token = next
	return result
}

// IntoTokens drains the lexer into a slice, stopping before EOF.
func (lx *Lexer) IntoTokens() []token.Token {
	var out []token.Token
	for {
		t := lx.NextToken()
		if t.IsEOF() {
			break
		}
		out = append(out, t)
	}
	return out
}

// bump cooks and returns the next token along with whether it was
// preceded by whitespace or a skipped (non-doc) comment.
func (lx *Lexer) bump() (token.Token, bool) {
	precededByWhitespace := false
	swallowNextInvalid := 0

	for {
		raw := lx.cursor.Advance()
		start := lx.pos
		lx.pos = lx.pos.Add(raw.Len)

		var kind token.Kind
		var tok token.Token

		switch raw.Kind {
		case RawLineComment:
			if !raw.IsDoc {
				precededByWhitespace = true
				continue
			}
			contentStart := start.Add(3)
			content := lx.strFromTo(contentStart, lx.pos)
			tok = lx.cookDocComment(contentStart, content, token.CommentLine)

		case RawBlockComment:
			if !raw.Terminated {
				lx.reportUnterminatedBlockComment(start, raw.IsDoc)
			}
			if !raw.IsDoc {
				precededByWhitespace = true
				continue
			}
			contentStart := start.Add(3)
			contentEnd := lx.pos
			if raw.Terminated {
				contentEnd = contentEnd.Sub(2)
			}
			content := lx.strFromTo(contentStart, contentEnd)
			tok = lx.cookDocComment(contentStart, content, token.CommentBlock)

		case RawWhitespace:
			precededByWhitespace = true
			continue

		case RawIdent:
			kind = token.Ident
			tok = token.Token{Kind: kind, Sym: lx.symbolFrom(start)}

		case RawUnknownPrefix:
			lx.reportUnknownPrefix(start)
			tok = token.Token{Kind: token.Ident, Sym: lx.symbolFrom(start)}

		case RawLiteral:
			litKind, sym := lx.cookLiteral(start, lx.pos, raw)
			tok = token.Token{Kind: token.Literal, Lit: token.Lit{Kind: litKind, Sym: sym}}
			if !raw.Terminated && (raw.LitKind == RawLitStr || raw.LitKind == RawLitHexStr) {
				// An unterminated string is fatal: the rest of the file is
				// skipped and a synthetic EOF is yielded in its place.
				lx.pos = lx.pos.Add(uint32(len(lx.src) - lx.cursor.pos))
				lx.cursor.pos = len(lx.src)
				start = lx.pos
				tok = token.Token{Kind: token.EOF}
			}

		case RawSemi:
			tok = token.Token{Kind: token.Semi}
		case RawComma:
			tok = token.Token{Kind: token.Comma}
		case RawDot:
			tok = token.Token{Kind: token.Dot}
		case RawOpenParen:
			tok = token.Token{Kind: token.OpenDelim, Delim: token.Paren}
		case RawCloseParen:
			tok = token.Token{Kind: token.CloseDelim, Delim: token.Paren}
		case RawOpenBrace:
			tok = token.Token{Kind: token.OpenDelim, Delim: token.Brace}
		case RawCloseBrace:
			tok = token.Token{Kind: token.CloseDelim, Delim: token.Brace}
		case RawOpenBracket:
			tok = token.Token{Kind: token.OpenDelim, Delim: token.Bracket}
		case RawCloseBracket:
			tok = token.Token{Kind: token.CloseDelim, Delim: token.Bracket}
		case RawTilde:
			tok = token.Token{Kind: token.Tilde}
		case RawQuestion:
			tok = token.Token{Kind: token.Question}
		case RawColon:
			tok = token.Token{Kind: token.Colon}
		case RawEq:
			tok = token.Token{Kind: token.Eq}
		case RawBang:
			tok = token.Token{Kind: token.Not}
		case RawLt:
			tok = token.Token{Kind: token.Lt}
		case RawGt:
			tok = token.Token{Kind: token.Gt}
		case RawMinus:
			tok = token.Token{Kind: token.BinOp, BinOp: token.Minus}
		case RawAnd:
			tok = token.Token{Kind: token.BinOp, BinOp: token.And}
		case RawOr:
			tok = token.Token{Kind: token.BinOp, BinOp: token.Or}
		case RawPlus:
			tok = token.Token{Kind: token.BinOp, BinOp: token.Plus}
		case RawStar:
			tok = token.Token{Kind: token.BinOp, BinOp: token.Star}
		case RawSlash:
			tok = token.Token{Kind: token.BinOp, BinOp: token.Slash}
		case RawCaret:
			tok = token.Token{Kind: token.BinOp, BinOp: token.Caret}
		case RawPercent:
			tok = token.Token{Kind: token.BinOp, BinOp: token.Percent}

		case RawUnknown:
			if swallowNextInvalid > 0 {
				swallowNextInvalid--
				continue
			}
			r, w := utf8.DecodeRuneInString(lx.strFromToEnd(start))
			if r == ' ' {
				if lx.nbspIsWhitespace {
					precededByWhitespace = true
					continue
				}
				lx.nbspIsWhitespace = true
			}
			repeats := countRun(lx.strFromToEnd(start), r, w)
			swallowNextInvalid = repeats

			span := lx.newSpan(start, lx.pos.Add(uint32(repeats*w)))
			b := lx.dcx.Err(fmt.Sprintf("unknown start of token: %s", escapedChar(r))).Span(span)
			if r == 0 {
				b = b.Help("source files must contain UTF-8 encoded text, unexpected null bytes might occur when a different encoding is used")
			}
			if repeats == 1 {
				b = b.Note("character repeats once more")
			} else if repeats > 1 {
				b = b.Note(fmt.Sprintf("character repeats %d more times", repeats))
			}
			b.Emit()

			precededByWhitespace = true
			continue

		case RawEOF:
			tok = token.Token{Kind: token.EOF}
		}

		tok.Span = lx.newSpan(start, lx.pos)
		return tok, precededByWhitespace
	}
}

func countRun(s string, r rune, width int) int {
	n := 0
	i := width
	for i < len(s) {
		c, w := utf8.DecodeRuneInString(s[i:])
		if c != r {
			break
		}
		n++
		i += w
	}
	return n
}

// escapedChar renders c for an error message, printable ASCII as-is.
func escapedChar(c rune) string {
	if c >= 0x20 && c <= 0x7e {
		return string(c)
	}
	return fmt.Sprintf("%q", c)
}

func (lx *Lexer) cookDocComment(contentStart session.BytePos, content string, kind token.CommentKind) token.Token {
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' {
			span := session.NewSpan(contentStart.Add(uint32(i)), contentStart.Add(uint32(i+1)))
			block := ""
			if kind == token.CommentBlock {
				block = "block "
			}
			lx.dcx.Err(fmt.Sprintf("bare CR not allowed in %sdoc-comment", block)).Span(span).Emit()
		}
	}
	return token.Token{Kind: token.DocComment, Comment: kind, Sym: session.Intern(content)}
}

func (lx *Lexer) newSpan(lo, hi session.BytePos) session.Span {
	if lx.overrideSpan != nil {
		return *lx.overrideSpan
	}
	return session.NewSpan(lo, hi)
}

// SpanText returns the raw source text covered by sp. Used by callers
// that need to retain an un-tokenized region verbatim, such as the
// statement parser's opaque inline-assembly stand-in (spec §1: the Yul
// sub-grammar is an external collaborator).
func (lx *Lexer) SpanText(sp session.Span) string {
	return lx.strFromTo(sp.Lo, sp.Hi)
}

func (lx *Lexer) srcIndex(pos session.BytePos) int { return int(pos - lx.startPos) }

func (lx *Lexer) strFromTo(lo, hi session.BytePos) string {
	return lx.src[lx.srcIndex(lo):lx.srcIndex(hi)]
}

func (lx *Lexer) strFromToEnd(lo session.BytePos) string {
	return lx.src[lx.srcIndex(lo):]
}

func (lx *Lexer) symbolFrom(start session.BytePos) session.Symbol {
	return session.Intern(lx.strFromTo(start, lx.pos))
}

func (lx *Lexer) symbolFromTo(start, end session.BytePos) session.Symbol {
	return session.Intern(lx.strFromTo(start, end))
}

func (lx *Lexer) reportUnterminatedBlockComment(start session.BytePos, isDoc bool) {
	msg := "unterminated block comment"
	if isDoc {
		msg = "unterminated block doc-comment"
	}
	lx.dcx.Fatal(msg).Span(lx.newSpan(start, lx.pos)).Emit()
}

func (lx *Lexer) reportUnknownPrefix(start session.BytePos) {
	prefix := lx.strFromTo(start, lx.pos)
	lx.dcx.Err(fmt.Sprintf("prefix %s is unknown", prefix)).Span(lx.newSpan(start, lx.pos)).Emit()
}

// cookLiteral dispatches on the raw literal sub-kind (spec §4.2
// "Cook-literal").
func (lx *Lexer) cookLiteral(start, end session.BytePos, raw RawToken) (token.LitKind, session.Symbol) {
	switch raw.LitKind {
	case RawLitStr:
		if !raw.Terminated {
			lx.dcx.Fatal("unterminated string").Span(lx.newSpan(start, end)).Emit()
		}
		kind := token.LitStr
		prefixLen := uint32(0)
		if raw.Unicode {
			kind = token.LitUnicodeStr
			prefixLen = 7 // `unicode`
		}
		return lx.cookQuoted(kind, start, end, prefixLen)

	case RawLitHexStr:
		if !raw.Terminated {
			lx.dcx.Fatal("unterminated hex string").Span(lx.newSpan(start, end)).Emit()
		}
		return lx.cookQuoted(token.LitHexStr, start, end, 3) // `hex`

	case RawLitInt:
		if raw.EmptyInt {
			lx.dcx.Err("no valid digits found for number").Span(lx.newSpan(start, end)).Emit()
			return token.LitInteger, session.Intern("0")
		}
		if raw.Base == BaseBinary || raw.Base == BaseOctal {
			msgStart := start.Add(2)
			msg := fmt.Sprintf("integers in base %s are not supported", baseName(raw.Base))
			lx.dcx.Err(msg).Span(lx.newSpan(msgStart, end)).Emit()
		}
		return token.LitInteger, lx.symbolFromTo(start, end)

	case RawLitRational:
		if raw.EmptyExponent {
			lx.dcx.Err("expected at least one digit in exponent").Span(lx.newSpan(start, lx.pos)).Emit()
		}
		if raw.Base == BaseBinary || raw.Base == BaseOctal || raw.Base == BaseHexadecimal {
			msg := fmt.Sprintf("%s rational numbers are not supported", baseName(raw.Base))
			lx.dcx.Err(msg).Span(lx.newSpan(start, end)).Emit()
		}
		return token.LitRational, lx.symbolFromTo(start, end)
	}
	panic("unreachable literal kind")
}

func baseName(b Base) string {
	switch b {
	case BaseBinary:
		return "binary"
	case BaseOctal:
		return "octal"
	case BaseHexadecimal:
		return "hexadecimal"
	default:
		return "decimal"
	}
}

// cookQuoted computes a quoted literal's content (excluding the opening
// quote+prefix and the closing quote), validates its escapes, and
// returns Err with the quote-inclusive symbol on a fatal escape error,
// or the plain kind with the raw (unescaped) content otherwise (spec
// §4.2: "the symbol is the raw (not unescaped) content").
func (lx *Lexer) cookQuoted(kind token.LitKind, start, end session.BytePos, prefixLen uint32) (token.LitKind, session.Symbol) {
	mode := modeStr
	switch kind {
	case token.LitUnicodeStr:
		mode = modeUnicodeStr
	case token.LitHexStr:
		mode = modeHexStr
	}

	contentStart := start.Add(1 + prefixLen)
	contentEnd := end.Sub(1)
	if contentEnd < contentStart {
		contentEnd = contentStart
	}
	content := lx.strFromTo(contentStart, contentEnd)

	hasFatalErr := checkEscapes(lx.dcx, content, contentStart, mode)
	if hasFatalErr {
		return token.LitErr, lx.symbolFromTo(start, end)
	}
	return kind, session.Intern(content)
}
