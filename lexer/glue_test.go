/*
File    : solparse/lexer/glue_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/solparse/token"
)

func lexKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	lx := New(newTestDcx(), src, 0, nil)
	var out []token.Kind
	for {
		tok := lx.NextToken()
		if tok.IsEOF() {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func TestGlue_Chains(t *testing.T) {
	cases := []struct {
		src  string
		want []token.Kind
	}{
		{"==", []token.Kind{token.EqEq}},
		{"=>", []token.Kind{token.FatArrow}},
		{"!=", []token.Kind{token.Ne}},
		{"<=", []token.Kind{token.Le}},
		{"<<", []token.Kind{token.BinOp}},
		{">=", []token.Kind{token.Ge}},
		{">>", []token.Kind{token.BinOp}},
		{">>>", []token.Kind{token.BinOp}},
		{"<<=", []token.Kind{token.BinOpEq}},
		{">>=", []token.Kind{token.BinOpEq}},
		{">>>=", []token.Kind{token.BinOpEq}},
		{"++", []token.Kind{token.PlusPlus}},
		{"--", []token.Kind{token.MinusMinus}},
		{"->", []token.Kind{token.Arrow}},
		{"**", []token.Kind{token.BinOp}},
		{"||", []token.Kind{token.OrOr}},
		{"&&", []token.Kind{token.AndAnd}},
		{"|=", []token.Kind{token.BinOpEq}},
		{"&=", []token.Kind{token.BinOpEq}},
		{"^=", []token.Kind{token.BinOpEq}},
		{"+=", []token.Kind{token.BinOpEq}},
		{"-=", []token.Kind{token.BinOpEq}},
		{"*=", []token.Kind{token.BinOpEq}},
		{"/=", []token.Kind{token.BinOpEq}},
		{"%=", []token.Kind{token.BinOpEq}},
		{":=", []token.Kind{token.Walrus}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lexKinds(t, tc.src), "src=%q", tc.src)
	}
}

func TestGlue_WhitespaceBreaksChain(t *testing.T) {
	got := lexKinds(t, "> >>=")
	assert.Equal(t, []token.Kind{token.Gt, token.BinOpEq}, got)
}

func TestGlue_FourCharChain(t *testing.T) {
	lx := New(newTestDcx(), ">>>=", 0, nil)
	tok := lx.NextToken()
	assert.Equal(t, token.BinOpEq, tok.Kind)
	assert.Equal(t, token.Sar, tok.BinOp)
	assert.EqualValues(t, 0, tok.Span.Lo)
	assert.EqualValues(t, 4, tok.Span.Hi)
}
