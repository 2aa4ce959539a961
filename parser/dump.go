/*
File    : solparse/parser/dump.go
Package : parser

A debug AST printer used by tests and cmd/solparse, dumping a parsed
statement as an indented tree. Grounded on go-mix main/print_visitor.go's
indenting-buffer-writer idiom (an Indent counter plus a bytes.Buffer),
adapted from go-mix's visitor-interface dispatch to a plain type switch
since this package's AST (package ast) does not define an Accept/Visitor
protocol.
*/
package parser

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/solparse/ast"
)

const dumpIndentSize = 2

// Dump renders stmt as an indented tree, for debugging and tests.
func Dump(stmt ast.Stmt) string {
	d := &dumper{}
	d.stmt(stmt)
	return d.buf.String()
}

// DumpExpr renders a single expression as an indented tree.
func DumpExpr(expr ast.Expr) string {
	d := &dumper{}
	d.expr(expr)
	return d.buf.String()
}

type dumper struct {
	buf    bytes.Buffer
	indent int
}

func (d *dumper) line(format string, args ...any) {
	d.buf.WriteString(string(bytes.Repeat([]byte{' '}, d.indent)))
	fmt.Fprintf(&d.buf, format+"\n", args...)
}

func (d *dumper) nest(f func()) {
	d.indent += dumpIndentSize
	f()
	d.indent -= dumpIndentSize
}

func (d *dumper) stmt(s ast.Stmt) {
	if s == nil {
		d.line("<nil stmt>")
		return
	}
	switch n := s.(type) {
	case *ast.Block:
		d.line("Block")
		d.nest(func() {
			for _, st := range n.Stmts {
				d.stmt(st)
			}
		})
	case *ast.ExprStmt:
		d.line("ExprStmt")
		d.nest(func() { d.expr(n.X) })
	case *ast.VarDeclStmt:
		d.line("VarDeclStmt")
		d.nest(func() {
			for _, v := range n.Vars {
				d.varDecl(v)
			}
			if n.Init != nil {
				d.line("Init:")
				d.nest(func() { d.expr(n.Init) })
			}
		})
	case *ast.IfStmt:
		d.line("IfStmt")
		d.nest(func() {
			d.line("Cond:")
			d.nest(func() { d.expr(n.Cond) })
			d.line("Then:")
			d.nest(func() { d.stmt(n.Then) })
			if n.Else != nil {
				d.line("Else:")
				d.nest(func() { d.stmt(n.Else) })
			}
		})
	case *ast.WhileStmt:
		d.line("WhileStmt")
		d.nest(func() {
			d.expr(n.Cond)
			d.stmt(n.Body)
		})
	case *ast.DoWhileStmt:
		d.line("DoWhileStmt")
		d.nest(func() {
			d.stmt(n.Body)
			d.expr(n.Cond)
		})
	case *ast.ForStmt:
		d.line("ForStmt")
		d.nest(func() {
			if n.Init != nil {
				d.line("Init:")
				d.nest(func() { d.stmt(n.Init) })
			}
			if n.Cond != nil {
				d.line("Cond:")
				d.nest(func() { d.expr(n.Cond) })
			}
			if n.Post != nil {
				d.line("Post:")
				d.nest(func() { d.expr(n.Post) })
			}
			d.line("Body:")
			d.nest(func() { d.stmt(n.Body) })
		})
	case *ast.ContinueStmt:
		d.line("ContinueStmt")
	case *ast.BreakStmt:
		d.line("BreakStmt")
	case *ast.ReturnStmt:
		d.line("ReturnStmt")
		if n.Value != nil {
			d.nest(func() { d.expr(n.Value) })
		}
	case *ast.ThrowStmt:
		d.line("ThrowStmt")
	case *ast.EmitStmt:
		d.line("EmitStmt")
		if n.Call != nil {
			d.nest(func() { d.expr(n.Call) })
		}
	case *ast.RevertStmt:
		d.line("RevertStmt")
		if n.Call != nil {
			d.nest(func() { d.expr(n.Call) })
		}
	case *ast.UncheckedBlockStmt:
		d.line("UncheckedBlockStmt")
		d.nest(func() { d.stmt(n.Body) })
	case *ast.AssemblyStmt:
		d.line("AssemblyStmt dialect=%q flags=%d", n.Dialect, len(n.Flags))
	case *ast.TryStmt:
		d.line("TryStmt")
		d.nest(func() {
			d.line("Call:")
			d.nest(func() { d.expr(n.CallExpr) })
			for _, r := range n.Returns {
				d.varDecl(r)
			}
			d.line("Block:")
			d.nest(func() { d.stmt(n.Block) })
			for _, c := range n.Catches {
				d.line("Catch %q", c.Name)
				d.nest(func() {
					for _, p := range c.Params {
						d.varDecl(p)
					}
					d.stmt(c.Block)
				})
			}
		})
	case *ast.PlaceholderStmt:
		d.line("PlaceholderStmt")
	default:
		d.line("<unknown stmt %T>", s)
	}
}

func (d *dumper) varDecl(v *ast.VarDecl) {
	if v == nil {
		d.line("VarDecl <elided>")
		return
	}
	name := "<elided>"
	if v.Name != nil {
		name = v.Name.Sym.String()
	}
	d.line("VarDecl %s loc=%q", name, v.Location)
	if v.Type != nil {
		d.nest(func() { d.ty(v.Type) })
	}
}

func (d *dumper) expr(e ast.Expr) {
	if e == nil {
		d.line("<nil expr>")
		return
	}
	switch n := e.(type) {
	case *ast.Ident:
		d.line("Ident %s", n.Sym.String())
	case *ast.Path:
		d.line("Path %s", pathString(n))
	case *ast.LiteralExpr:
		d.line("LiteralExpr kind=%d %s", n.Kind, n.Sym.String())
	case *ast.BoolLiteralExpr:
		d.line("BoolLiteralExpr %v", n.Value)
	case *ast.UnaryExpr:
		d.line("UnaryExpr %s postfix=%v", n.Op, n.Postfix)
		d.nest(func() { d.expr(n.X) })
	case *ast.BinaryExpr:
		d.line("BinaryExpr %s", n.Op)
		d.nest(func() {
			d.expr(n.X)
			d.expr(n.Y)
		})
	case *ast.AssignExpr:
		d.line("AssignExpr %s", n.Op)
		d.nest(func() {
			d.expr(n.Lhs)
			d.expr(n.Rhs)
		})
	case *ast.TernaryExpr:
		d.line("TernaryExpr")
		d.nest(func() {
			d.expr(n.Cond)
			d.expr(n.Then)
			d.expr(n.Else)
		})
	case *ast.CallExpr:
		d.line("CallExpr")
		d.nest(func() {
			d.expr(n.Fn)
			for _, a := range n.Args {
				d.expr(a)
			}
		})
	case *ast.IndexExpr:
		d.line("IndexExpr")
		d.nest(func() {
			d.expr(n.X)
			if n.Index != nil {
				d.expr(n.Index)
			}
			if n.End != nil {
				d.expr(n.End)
			}
		})
	case *ast.MemberExpr:
		d.line("MemberExpr .%s", n.Name.Sym.String())
		d.nest(func() { d.expr(n.X) })
	case *ast.TupleExpr:
		d.line("TupleExpr")
		d.nest(func() {
			for _, el := range n.Elems {
				d.expr(el)
			}
		})
	case *ast.ArrayExpr:
		d.line("ArrayExpr")
		d.nest(func() {
			for _, el := range n.Elems {
				d.expr(el)
			}
		})
	case *ast.NewExpr:
		d.line("NewExpr")
		d.nest(func() { d.ty(n.Type) })
	case *ast.TypeExpr:
		d.line("TypeExpr")
		d.nest(func() { d.ty(n.Type) })
	default:
		d.line("<unknown expr %T>", e)
	}
}

func (d *dumper) ty(t ast.Ty) {
	if t == nil {
		d.line("<nil ty>")
		return
	}
	switch n := t.(type) {
	case *ast.ElementaryTy:
		d.line("ElementaryTy %s payable=%v", n.Name, n.Payable)
	case *ast.PathTy:
		d.line("PathTy %s", pathString(&n.Path))
	case *ast.ArrayTy:
		d.line("ArrayTy")
		d.nest(func() {
			d.ty(n.Elem)
			if n.Len != nil {
				d.expr(n.Len)
			}
		})
	case *ast.MappingTy:
		d.line("MappingTy")
		d.nest(func() {
			d.ty(n.Key)
			d.ty(n.Value)
		})
	case *ast.FunctionTy:
		d.line("FunctionTy visibility=%q mutability=%q", n.Visibility, n.Mutability)
		d.nest(func() {
			for _, param := range n.Params {
				d.ty(param)
			}
			for _, result := range n.Results {
				d.ty(result)
			}
		})
	default:
		d.line("<unknown ty %T>", t)
	}
}

func pathString(p *ast.Path) string {
	var b bytes.Buffer
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Sym.String())
	}
	return b.String()
}
