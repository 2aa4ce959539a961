/*
File    : solparse/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/solparse/session"
	"github.com/akashmaji946/solparse/token"
)

func newTestDcx() *session.DiagCtxt { return session.NewDiagCtxt() }

func TestLexer_Basic(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "uint256 x = 1 + 2;", 0, nil)
	toks := lx.IntoTokens()
	assert.False(t, dcx.HasErrors())
	assert.Len(t, toks, 7)
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, "uint256", toks[0].Text())
	assert.Equal(t, token.Ident, toks[1].Kind)
	assert.Equal(t, token.Eq, toks[2].Kind)
	assert.Equal(t, token.Literal, toks[3].Kind)
	assert.Equal(t, token.LitInteger, toks[3].Lit.Kind)
	assert.Equal(t, token.BinOp, toks[4].Kind)
	assert.Equal(t, token.Plus, toks[4].BinOp)
	assert.Equal(t, token.Semi, toks[6].Kind)
}

func TestLexer_DocCommentStripsDelimiters(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "/// hello world", 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.DocComment, tok.Kind)
	assert.Equal(t, " hello world", tok.Text())
}

func TestLexer_BlockDocComment(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "/** hello */", 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.DocComment, tok.Kind)
	assert.Equal(t, token.CommentBlock, tok.Comment)
	assert.Equal(t, " hello ", tok.Text())
}

func TestLexer_PlainCommentsAreSkipped(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "// not kept\nx", 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.Ident, tok.Kind)
	assert.Equal(t, "x", tok.Text())
}

func TestLexer_DocCommentBareCR(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "/// a\rb", 0, nil)
	lx.NextToken()
	diags := dcx.Diagnostics()
	if assert.Len(t, diags, 1) {
		assert.Contains(t, diags[0].Message, "bare CR")
	}
}

func TestLexer_UnknownPrefixEmitsError(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, `foo"hi"`, 0, nil)
	tok1 := lx.NextToken()
	assert.Equal(t, token.Ident, tok1.Kind)
	assert.Equal(t, "foo", tok1.Text())
	tok2 := lx.NextToken()
	assert.Equal(t, token.Literal, tok2.Kind)
	assert.Equal(t, token.LitStr, tok2.Lit.Kind)

	diags := dcx.Diagnostics()
	if assert.Len(t, diags, 1) {
		assert.Contains(t, diags[0].Message, "prefix foo is unknown")
	}
}

func TestLexer_StringLiteralRetainsRawContent(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, `"hello \n world"`, 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.LitStr, tok.Lit.Kind)
	assert.Equal(t, `hello \n world`, session.Resolve(tok.Lit.Sym))
}

func TestLexer_UnterminatedStringIsFatal(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, `"abc`, 0, nil)
	lx.NextToken()
	assert.Equal(t, 1, dcx.FatalErrorCount())
}

func TestLexer_UnknownEscapeIsLitErr(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, `"bad \q escape"`, 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.LitErr, tok.Lit.Kind)
	assert.True(t, dcx.HasErrors())
}

func TestLexer_HexStringValidation(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, `hex"a1b2"`, 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.LitHexStr, tok.Lit.Kind)
	assert.False(t, dcx.HasErrors())

	dcx2 := newTestDcx()
	lx2 := New(dcx2, `hex"a1b"`, 0, nil)
	tok2 := lx2.NextToken()
	assert.Equal(t, token.LitErr, tok2.Lit.Kind)
	assert.True(t, dcx2.HasErrors())
}

func TestLexer_EmptyIntFallsBackToZero(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "0x", 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.LitInteger, tok.Lit.Kind)
	assert.Equal(t, "0", session.Resolve(tok.Lit.Sym))
	assert.True(t, dcx.HasErrors())
}

func TestLexer_BinaryOctalIntegerUnsupportedButLexemeRetained(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "0b101", 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.LitInteger, tok.Lit.Kind)
	assert.Equal(t, "0b101", session.Resolve(tok.Lit.Sym))
	assert.True(t, dcx.HasErrors())
}

func TestLexer_EmptyExponentReported(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "1e", 0, nil)
	lx.NextToken()
	assert.True(t, dcx.HasErrors())
}

func TestLexer_UnknownByteRunElision(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "```x", 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.Ident, tok.Kind)
	assert.Equal(t, "x", tok.Text())
	diags := dcx.Diagnostics()
	if assert.Len(t, diags, 1) {
		assert.Contains(t, diags[0].Note, "2 more times")
	}
}

func TestLexer_NBSPBecomesWhitespaceAfterFirstDiagnostic(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "a  b", 0, nil)
	tok1 := lx.NextToken()
	tok2 := lx.NextToken()
	assert.Equal(t, "a", tok1.Text())
	assert.Equal(t, "b", tok2.Text())
	assert.Len(t, dcx.Diagnostics(), 1)
}

func TestLexer_SpanDisjointness(t *testing.T) {
	dcx := newTestDcx()
	lx := New(dcx, "foo bar baz", 0, nil)
	toks := lx.IntoTokens()
	for i := 1; i < len(toks); i++ {
		assert.LessOrEqual(t, uint32(toks[i-1].Span.Hi), uint32(toks[i].Span.Lo))
	}
}

func TestLexer_OverrideSpan(t *testing.T) {
	dcx := newTestDcx()
	span := session.NewSpan(100, 200)
	lx := New(dcx, "a b", 0, &span)
	tok := lx.NextToken()
	assert.Equal(t, span, tok.Span)
}
