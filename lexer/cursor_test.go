/*
File    : solparse/lexer/cursor_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func advanceAll(src string) []RawToken {
	c := NewCursor(src)
	var out []RawToken
	for {
		tok := c.Advance()
		out = append(out, tok)
		if tok.Kind == RawEOF {
			return out
		}
	}
}

func kinds(toks []RawToken) []RawKind {
	out := make([]RawKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestCursor_Empty(t *testing.T) {
	toks := advanceAll("")
	assert.Equal(t, []RawKind{RawEOF}, kinds(toks))
}

func TestCursor_WhitespaceCoalesces(t *testing.T) {
	toks := advanceAll("  \t\n  x")
	assert.Equal(t, []RawKind{RawWhitespace, RawIdent, RawEOF}, kinds(toks))
	assert.EqualValues(t, 6, toks[0].Len)
}

func TestCursor_LineCommentVsDocComment(t *testing.T) {
	toks := advanceAll("// plain\n/// doc\n//// not doc\n")
	assert.Len(t, toks, 7) // 3 comments + 3 newline-whitespace + EOF; comments stop before \n
	assert.False(t, toks[0].IsDoc)
	// toks[1] is the whitespace-newline between comments
}

func TestCursor_DocLineComment(t *testing.T) {
	c := NewCursor("/// hello")
	tok := c.Advance()
	assert.Equal(t, RawLineComment, tok.Kind)
	assert.True(t, tok.IsDoc)
}

func TestCursor_QuadSlashIsNotDoc(t *testing.T) {
	c := NewCursor("//// hello")
	tok := c.Advance()
	assert.Equal(t, RawLineComment, tok.Kind)
	assert.False(t, tok.IsDoc)
}

func TestCursor_BlockCommentDocVsEmpty(t *testing.T) {
	c1 := NewCursor("/** doc */")
	tok1 := c1.Advance()
	assert.True(t, tok1.IsDoc)
	assert.True(t, tok1.Terminated)

	c2 := NewCursor("/**/")
	tok2 := c2.Advance()
	assert.False(t, tok2.IsDoc)
	assert.True(t, tok2.Terminated)
}

func TestCursor_UnterminatedBlockComment(t *testing.T) {
	c := NewCursor("/* never closes")
	tok := c.Advance()
	assert.Equal(t, RawBlockComment, tok.Kind)
	assert.False(t, tok.Terminated)
}

func TestCursor_StringPrefixes(t *testing.T) {
	c := NewCursor(`unicode"hi"`)
	tok := c.Advance()
	assert.Equal(t, RawLiteral, tok.Kind)
	assert.Equal(t, RawLitStr, tok.LitKind)
	assert.True(t, tok.Unicode)

	c2 := NewCursor(`hex"ab"`)
	tok2 := c2.Advance()
	assert.Equal(t, RawLitHexStr, tok2.LitKind)

	// Unprefixed: unknown prefix followed by a bare string literal.
	c3 := NewCursor(`foo"hi"`)
	tok3 := c3.Advance()
	assert.Equal(t, RawUnknownPrefix, tok3.Kind)
	assert.EqualValues(t, 3, tok3.Len) // just "foo", quote left unconsumed
	tok4 := c3.Advance()
	assert.Equal(t, RawLiteral, tok4.Kind)
	assert.Equal(t, RawLitStr, tok4.LitKind)
}

func TestCursor_NumberClassification(t *testing.T) {
	cases := []struct {
		src       string
		wantKinds []RawKind
	}{
		{"0.e1", []RawKind{RawLiteral, RawDot, RawIdent, RawEOF}},
		{"0.", []RawKind{RawLiteral, RawEOF}},
		{"0.0", []RawKind{RawLiteral, RawEOF}},
		{"0.0e1", []RawKind{RawLiteral, RawEOF}},
		{"0.0e-1", []RawKind{RawLiteral, RawEOF}},
		{"0e1", []RawKind{RawLiteral, RawEOF}},
		{"0e1.", []RawKind{RawLiteral, RawDot, RawEOF}},
		{"0a", []RawKind{RawLiteral, RawIdent, RawEOF}},
	}
	for _, tc := range cases {
		toks := advanceAll(tc.src)
		assert.Equal(t, tc.wantKinds, kinds(toks), "src=%q", tc.src)
	}
}

func TestCursor_NumberIsRational(t *testing.T) {
	c := NewCursor("0.0e1")
	tok := c.Advance()
	assert.Equal(t, RawLitRational, tok.LitKind)

	c2 := NewCursor("0e1")
	tok2 := c2.Advance()
	assert.Equal(t, RawLitRational, tok2.LitKind)

	c3 := NewCursor("0a")
	tok3 := c3.Advance()
	assert.Equal(t, RawLitInt, tok3.LitKind)
}

func TestCursor_HexIntegerBase(t *testing.T) {
	c := NewCursor("0x1A_2b")
	tok := c.Advance()
	assert.Equal(t, RawLitInt, tok.LitKind)
	assert.Equal(t, BaseHexadecimal, tok.Base)
	assert.False(t, tok.EmptyInt)
}

func TestCursor_EmptyIntBase(t *testing.T) {
	c := NewCursor("0x")
	tok := c.Advance()
	assert.True(t, tok.EmptyInt)
}

func TestCursor_UnterminatedString(t *testing.T) {
	c := NewCursor(`"abc`)
	tok := c.Advance()
	assert.False(t, tok.Terminated)

	c2 := NewCursor("\"abc\ndef\"")
	tok2 := c2.Advance()
	assert.False(t, tok2.Terminated)
}

func TestCursor_StringLineContinuation(t *testing.T) {
	c := NewCursor("\"abc\\\ndef\"")
	tok := c.Advance()
	assert.True(t, tok.Terminated)
}

func TestCursor_SingleCharOperators(t *testing.T) {
	toks := advanceAll(";,.(){}[]~?:=!<>-&|+*/^%")
	want := []RawKind{
		RawSemi, RawComma, RawDot, RawOpenParen, RawCloseParen,
		RawOpenBrace, RawCloseBrace, RawOpenBracket, RawCloseBracket,
		RawTilde, RawQuestion, RawColon, RawEq, RawBang, RawLt, RawGt,
		RawMinus, RawAnd, RawOr, RawPlus, RawStar, RawSlash, RawCaret,
		RawPercent, RawEOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestCursor_UnknownByte(t *testing.T) {
	c := NewCursor("`")
	tok := c.Advance()
	assert.Equal(t, RawUnknown, tok.Kind)
}

func TestCursor_NBSPIsUnknown(t *testing.T) {
	c := NewCursor(" ")
	tok := c.Advance()
	assert.Equal(t, RawUnknown, tok.Kind)
}
