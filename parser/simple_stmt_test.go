/*
File    : solparse/parser/simple_stmt_test.go
Package : parser

Covers the index-accessed-path disambiguation (spec §4.3, §8 scenario
5) in the teacher's table-driven testify style (parser_test.go).
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/session"
)

func parseOneStmt(t *testing.T, src string) ast.Stmt {
	t.Helper()
	dcx := session.NewDiagCtxt()
	p := New(dcx, src, 0)
	stmt := p.ParseStmt()
	require.NotNil(t, stmt)
	return stmt
}

func TestSimpleStmt_ArrayDeclarationWithInit(t *testing.T) {
	stmt := parseOneStmt(t, "uint256[] memory x = y;")
	decl, ok := stmt.(*ast.VarDeclStmt)
	require.True(t, ok, "expected *ast.VarDeclStmt, got %T", stmt)
	require.Len(t, decl.Vars, 1)

	arr, ok := decl.Vars[0].Type.(*ast.ArrayTy)
	require.True(t, ok, "expected *ast.ArrayTy, got %T", decl.Vars[0].Type)
	assert.Nil(t, arr.Len)

	elem, ok := arr.Elem.(*ast.ElementaryTy)
	require.True(t, ok)
	assert.Equal(t, "uint256", elem.Name)

	assert.Equal(t, "memory", decl.Vars[0].Location)
	assert.Equal(t, "x", decl.Vars[0].Name.Sym.String())

	require.NotNil(t, decl.Init)
	ident, ok := decl.Init.(*ast.Ident)
	require.True(t, ok)
	assert.Equal(t, "y", ident.Sym.String())
}

func TestSimpleStmt_TypeIndexExpressionCall(t *testing.T) {
	stmt := parseOneStmt(t, "uint256[3](x);")
	exprStmt, ok := stmt.(*ast.ExprStmt)
	require.True(t, ok, "expected *ast.ExprStmt, got %T", stmt)

	call, ok := exprStmt.X.(*ast.CallExpr)
	require.True(t, ok, "expected *ast.CallExpr, got %T", exprStmt.X)
	require.Len(t, call.Args, 1)

	idx, ok := call.Fn.(*ast.IndexExpr)
	require.True(t, ok, "expected *ast.IndexExpr as call target, got %T", call.Fn)

	tyExpr, ok := idx.X.(*ast.TypeExpr)
	require.True(t, ok, "expected *ast.TypeExpr, got %T", idx.X)
	elem, ok := tyExpr.Type.(*ast.ElementaryTy)
	require.True(t, ok)
	assert.Equal(t, "uint256", elem.Name)
}

func TestSimpleStmt_SimpleDeclarationNoInit(t *testing.T) {
	stmt := parseOneStmt(t, "uint x;")
	decl, ok := stmt.(*ast.VarDeclStmt)
	require.True(t, ok, "expected *ast.VarDeclStmt, got %T", stmt)
	require.Len(t, decl.Vars, 1)
	assert.Equal(t, "x", decl.Vars[0].Name.Sym.String())
	assert.Nil(t, decl.Init)
}

func TestSimpleStmt_PlainExpressionStatement(t *testing.T) {
	stmt := parseOneStmt(t, "x + 1;")
	exprStmt, ok := stmt.(*ast.ExprStmt)
	require.True(t, ok, "expected *ast.ExprStmt, got %T", stmt)
	_, ok = exprStmt.X.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestSimpleStmt_MemberAccessExpression(t *testing.T) {
	stmt := parseOneStmt(t, "a.b.c;")
	exprStmt, ok := stmt.(*ast.ExprStmt)
	require.True(t, ok, "expected *ast.ExprStmt, got %T", stmt)
	outer, ok := exprStmt.X.(*ast.MemberExpr)
	require.True(t, ok, "expected *ast.MemberExpr, got %T", exprStmt.X)
	assert.Equal(t, "c", outer.Name.Sym.String())
	inner, ok := outer.X.(*ast.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Sym.String())
}

func TestSimpleStmt_PathTypeDeclaration(t *testing.T) {
	stmt := parseOneStmt(t, "Foo.Bar x;")
	decl, ok := stmt.(*ast.VarDeclStmt)
	require.True(t, ok, "expected *ast.VarDeclStmt, got %T", stmt)
	pt, ok := decl.Vars[0].Type.(*ast.PathTy)
	require.True(t, ok, "expected *ast.PathTy, got %T", decl.Vars[0].Type)
	require.Len(t, pt.Path.Segments, 2)
	assert.Equal(t, "Foo", pt.Path.Segments[0].Sym.String())
	assert.Equal(t, "Bar", pt.Path.Segments[1].Sym.String())
}

func TestSimpleStmt_TupleDestructuringWithInit(t *testing.T) {
	dcx := session.NewDiagCtxt()
	p := New(dcx, "(uint x, uint y) = f();", 0)
	stmt := p.ParseStmt()
	require.NotNil(t, stmt)
	assert.False(t, dcx.HasErrors(), "well-formed tuple decl should not error")

	decl, ok := stmt.(*ast.VarDeclStmt)
	require.True(t, ok, "expected *ast.VarDeclStmt, got %T", stmt)
	require.Len(t, decl.Vars, 2)
	require.NotNil(t, decl.Init)
}

func TestSimpleStmt_TupleDestructuringMissingInitErrors(t *testing.T) {
	dcx := session.NewDiagCtxt()
	p := New(dcx, "(uint x, uint y);", 0)
	_ = p.ParseStmt()
	assert.True(t, dcx.HasErrors())
}

func TestSimpleStmt_PlainTupleExpression(t *testing.T) {
	stmt := parseOneStmt(t, "(a, b) = (1, 2);")
	exprStmt, ok := stmt.(*ast.ExprStmt)
	require.True(t, ok, "expected *ast.ExprStmt, got %T", stmt)
	assign, ok := exprStmt.X.(*ast.AssignExpr)
	require.True(t, ok, "expected *ast.AssignExpr, got %T", exprStmt.X)
	_, ok = assign.Lhs.(*ast.TupleExpr)
	assert.True(t, ok)
}
