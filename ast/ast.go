/*
File    : solparse/ast/ast.go
Package : ast

Minimal statement/expression/type node types. Spec §1 treats the real
AST as an external collaborator of the parser; this package is the
stand-in concrete type the statement parser (package parser) builds so
it has something to return. Grounded on go-mix parser/node.go's plain-
struct node shapes (one struct per concrete construct, a Literal()-style
string method, a common marker interface per node family) adapted from
go-mix's expression-language grammar to Solidity's statement grammar.

Every node carries its span in an exported Sp field and implements
Span() explicitly, rather than embedding a shared base type, so that
package parser can build nodes with ordinary struct literals.
*/
package ast

import "github.com/akashmaji946/solparse/session"

// Stmt is the marker interface every statement node implements.
type Stmt interface {
	Span() session.Span
	stmtNode()
}

// Expr is the marker interface every expression node implements.
type Expr interface {
	Span() session.Span
	exprNode()
}

// Ty is the marker interface every type node implements.
type Ty interface {
	Span() session.Span
	tyNode()
}

// Ident is a single interned identifier occurrence.
type Ident struct {
	Sp  session.Span
	Sym session.Symbol
}

func (n *Ident) Span() session.Span { return n.Sp }
func (*Ident) exprNode()            {}

// Path is a dotted sequence of identifiers, e.g. `a.b.c` used as a type
// or expression path (spec §4.3's Index-Accessed-Path produces these).
type Path struct {
	Sp       session.Span
	Segments []Ident
}

func (n *Path) Span() session.Span { return n.Sp }
func (*Path) exprNode()            {}

// Block is a brace-delimited statement list.
type Block struct {
	Sp    session.Span
	Stmts []Stmt
}

func (n *Block) Span() session.Span { return n.Sp }
func (*Block) stmtNode()            {}

// ---- Statements ----

// ExprStmt is a bare expression used as a statement (`f();`), including
// tuple-destructuring assignment targets (spec §4.3 IAP "Tuple").
type ExprStmt struct {
	Sp session.Span
	X  Expr
}

func (n *ExprStmt) Span() session.Span { return n.Sp }
func (*ExprStmt) stmtNode()            {}

// VarDeclStmt declares one or more variables, with an optional
// initializer (spec §4.3's declaration path through the IAP algorithm).
type VarDeclStmt struct {
	Sp   session.Span
	Vars []*VarDecl
	Init Expr // nil if no initializer
}

func (n *VarDeclStmt) Span() session.Span { return n.Sp }
func (*VarDeclStmt) stmtNode()            {}

// VarDecl is one declared variable: its type (nil for an elided
// tuple-component slot), optional storage location, and name.
type VarDecl struct {
	Sp       session.Span
	Type     Ty     // nil for an elided slot, e.g. `(, y) = f()`
	Location string // "", "memory", "storage", "calldata"
	Name     *Ident // nil for an elided slot
}

func (n *VarDecl) Span() session.Span { return n.Sp }

// IfStmt is `if (Cond) Then [else Else]`.
type IfStmt struct {
	Sp   session.Span
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else-branch
}

func (n *IfStmt) Span() session.Span { return n.Sp }
func (*IfStmt) stmtNode()            {}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Sp   session.Span
	Cond Expr
	Body Stmt
}

func (n *WhileStmt) Span() session.Span { return n.Sp }
func (*WhileStmt) stmtNode()            {}

// DoWhileStmt is `do Body while (Cond);`.
type DoWhileStmt struct {
	Sp   session.Span
	Body Stmt
	Cond Expr
}

func (n *DoWhileStmt) Span() session.Span { return n.Sp }
func (*DoWhileStmt) stmtNode()            {}

// ForStmt is `for (Init; Cond; Post) Body`; any clause may be absent.
type ForStmt struct {
	Sp   session.Span
	Init Stmt // ExprStmt, VarDeclStmt, or nil
	Cond Expr // nil
	Post Expr // nil
	Body Stmt
}

func (n *ForStmt) Span() session.Span { return n.Sp }
func (*ForStmt) stmtNode()            {}

// ContinueStmt is `continue;`.
type ContinueStmt struct{ Sp session.Span }

func (n *ContinueStmt) Span() session.Span { return n.Sp }
func (*ContinueStmt) stmtNode()            {}

// BreakStmt is `break;`.
type BreakStmt struct{ Sp session.Span }

func (n *BreakStmt) Span() session.Span { return n.Sp }
func (*BreakStmt) stmtNode()            {}

// ReturnStmt is `return [Value];`.
type ReturnStmt struct {
	Sp    session.Span
	Value Expr // nil for bare `return;`
}

func (n *ReturnStmt) Span() session.Span { return n.Sp }
func (*ReturnStmt) stmtNode()            {}

// ThrowStmt exists only to be rejected by the parser with a dedicated
// diagnostic (`throw` was removed from Solidity; it is still recognized
// syntactically so the parser can say so instead of failing generically).
type ThrowStmt struct{ Sp session.Span }

func (n *ThrowStmt) Span() session.Span { return n.Sp }
func (*ThrowStmt) stmtNode()            {}

// EmitStmt is `emit Event(Args...);`.
type EmitStmt struct {
	Sp   session.Span
	Call *CallExpr
}

func (n *EmitStmt) Span() session.Span { return n.Sp }
func (*EmitStmt) stmtNode()            {}

// RevertStmt is `revert [Error(Args...)];`.
type RevertStmt struct {
	Sp   session.Span
	Call *CallExpr // nil for bare `revert;`
}

func (n *RevertStmt) Span() session.Span { return n.Sp }
func (*RevertStmt) stmtNode()            {}

// UncheckedBlockStmt is `unchecked { ... }`.
type UncheckedBlockStmt struct {
	Sp   session.Span
	Body *Block
}

func (n *UncheckedBlockStmt) Span() session.Span { return n.Sp }
func (*UncheckedBlockStmt) stmtNode()            {}

// AssemblyStmt is an inline-assembly block; its Yul body is opaque
// (the Non-goals exclude a Yul parser) and retained only as raw source
// text for later out-of-scope processing.
type AssemblyStmt struct {
	Sp      session.Span
	Dialect string // "", or a quoted dialect string like "evmasm"
	Flags   []session.Symbol
	RawBody string
}

func (n *AssemblyStmt) Span() session.Span { return n.Sp }
func (*AssemblyStmt) stmtNode()            {}

// TryStmt is `try Expr [returns (...)] Block CatchClauses`.
type TryStmt struct {
	Sp       session.Span
	CallExpr Expr
	Returns  []*VarDecl
	Block    *Block
	Catches  []*CatchClause
}

func (n *TryStmt) Span() session.Span { return n.Sp }
func (*TryStmt) stmtNode()            {}

// CatchClause is one `catch [Name] ([Params]) Block` arm.
type CatchClause struct {
	Sp     session.Span
	Name   string // "", "Error", "Panic", or a custom error name
	Params []*VarDecl
	Block  *Block
}

func (n *CatchClause) Span() session.Span { return n.Sp }

// PlaceholderStmt is the modifier-body placeholder `_;`.
type PlaceholderStmt struct{ Sp session.Span }

func (n *PlaceholderStmt) Span() session.Span { return n.Sp }
func (*PlaceholderStmt) stmtNode()            {}

// ---- Expressions ----

// LiteralExpr is a string/hex-string/integer/rational literal carried
// straight from the cooked lexer (spec §4.2's Lit payload). Kind mirrors
// token.LitKind as a plain int to keep this package acyclic with token.
type LiteralExpr struct {
	Sp   session.Span
	Kind int
	Sym  session.Symbol
}

func (n *LiteralExpr) Span() session.Span { return n.Sp }
func (*LiteralExpr) exprNode()            {}

// BoolLiteralExpr is `true`/`false`.
type BoolLiteralExpr struct {
	Sp    session.Span
	Value bool
}

func (n *BoolLiteralExpr) Span() session.Span { return n.Sp }
func (*BoolLiteralExpr) exprNode()            {}

// UnaryExpr is a prefix or postfix unary operator application.
type UnaryExpr struct {
	Sp      session.Span
	Op      string
	X       Expr
	Postfix bool
}

func (n *UnaryExpr) Span() session.Span { return n.Sp }
func (*UnaryExpr) exprNode()            {}

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	Sp   session.Span
	Op   string
	X, Y Expr
}

func (n *BinaryExpr) Span() session.Span { return n.Sp }
func (*BinaryExpr) exprNode()            {}

// AssignExpr is `Lhs Op Rhs` where Op is `=` or a compound assignment.
type AssignExpr struct {
	Sp       session.Span
	Op       string
	Lhs, Rhs Expr
}

func (n *AssignExpr) Span() session.Span { return n.Sp }
func (*AssignExpr) exprNode()            {}

// TernaryExpr is `Cond ? Then : Else`.
type TernaryExpr struct {
	Sp               session.Span
	Cond, Then, Else Expr
}

func (n *TernaryExpr) Span() session.Span { return n.Sp }
func (*TernaryExpr) exprNode()            {}

// CallExpr is `Fn(Args...)`, optionally with named arguments or
// `{gas: ..., value: ...}` call options.
type CallExpr struct {
	Sp       session.Span
	Fn       Expr
	Args     []Expr
	ArgNames []Ident // non-nil when called with `{name: value, ...}`
	CallOpts []Expr  // parsed generically as assignment expressions
}

func (n *CallExpr) Span() session.Span { return n.Sp }
func (*CallExpr) exprNode()            {}

// IndexExpr is `X[Index]`, or `X[Start:End]` when End != nil (slice).
type IndexExpr struct {
	Sp         session.Span
	X          Expr
	Index, End Expr
}

func (n *IndexExpr) Span() session.Span { return n.Sp }
func (*IndexExpr) exprNode()            {}

// MemberExpr is `X.Name`.
type MemberExpr struct {
	Sp   session.Span
	X    Expr
	Name Ident
}

func (n *MemberExpr) Span() session.Span { return n.Sp }
func (*MemberExpr) exprNode()            {}

// TupleExpr is a parenthesized, comma-separated expression list, used
// both for grouping and for multi-value assignment targets (spec
// §4.3's IAP "Tuple" shape). An element is nil for an elided slot.
type TupleExpr struct {
	Sp    session.Span
	Elems []Expr
}

func (n *TupleExpr) Span() session.Span { return n.Sp }
func (*TupleExpr) exprNode()            {}

// ArrayExpr is `[Elems...]`.
type ArrayExpr struct {
	Sp    session.Span
	Elems []Expr
}

func (n *ArrayExpr) Span() session.Span { return n.Sp }
func (*ArrayExpr) exprNode()            {}

// NewExpr is `new Type`.
type NewExpr struct {
	Sp   session.Span
	Type Ty
}

func (n *NewExpr) Span() session.Span { return n.Sp }
func (*NewExpr) exprNode()            {}

// TypeExpr wraps a Ty used in expression position, e.g. as a cast
// target `Type(x)` or the callee of `new Type(...)`.
type TypeExpr struct {
	Sp   session.Span
	Type Ty
}

func (n *TypeExpr) Span() session.Span { return n.Sp }
func (*TypeExpr) exprNode()            {}

// ---- Types ----

// ElementaryTy is a built-in type name: `uint256`, `address payable`,
// `bool`, `bytes32`, ...
type ElementaryTy struct {
	Sp      session.Span
	Name    string
	Payable bool // `address payable` only
}

func (n *ElementaryTy) Span() session.Span { return n.Sp }
func (*ElementaryTy) tyNode()              {}

// PathTy is a user-defined type referenced by (possibly dotted) name.
type PathTy struct {
	Sp   session.Span
	Path Path
}

func (n *PathTy) Span() session.Span { return n.Sp }
func (*PathTy) tyNode()              {}

// ArrayTy is `Elem[Len]` (Len == nil for a dynamic array `Elem[]`).
type ArrayTy struct {
	Sp   session.Span
	Elem Ty
	Len  Expr
}

func (n *ArrayTy) Span() session.Span { return n.Sp }
func (*ArrayTy) tyNode()              {}

// MappingTy is `mapping(Key => Value)`, with optional parameter names
// introduced by newer Solidity versions.
type MappingTy struct {
	Sp        session.Span
	KeyName   *Ident
	Key       Ty
	ValueName *Ident
	Value     Ty
}

func (n *MappingTy) Span() session.Span { return n.Sp }
func (*MappingTy) tyNode()              {}

// FunctionTy is `function(Params) [visibility] [mutability] [returns (Results)]`.
type FunctionTy struct {
	Sp         session.Span
	Params     []Ty
	Visibility string
	Mutability string
	Results    []Ty
}

func (n *FunctionTy) Span() session.Span { return n.Sp }
func (*FunctionTy) tyNode()              {}
