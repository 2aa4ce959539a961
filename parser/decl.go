/*
File    : solparse/parser/decl.go
Package : parser

Variable declaration parsing: type + optional storage location + name,
the tail the IAP algorithm (simple_stmt.go) hands off to once it has
decided a simple statement is a declaration (spec §4.3 "Materialize:
Declaration"). Grounded on go-mix parser_assignments.go's declaration-
with-optional-initializer shape, re-targeted to Solidity's
type/location/name grammar; the surrounding `= E` initializer is spec
§4.3's job, not this file's, since a single-variable declaration's
initializer is optional while a tuple-destructuring declaration's is
required.
*/
package parser

import "github.com/akashmaji946/solparse/ast"

// parseVariableDefinition parses a full `Type [Location] Name` from
// scratch, used for every slot after the first in a tuple-destructuring
// declaration (spec §4.3's optional-items continuation), where no IAP
// ambiguity remains to resolve.
func (p *Parser) parseVariableDefinition() *ast.VarDecl {
	return p.parseVariableDefinitionWith(nil)
}

// parseVariableDefinitionWith parses `[Location] Name` on top of an
// already-resolved type. ty is nil whenever the statement-type peek
// classified the statement as a declaration on its own (for example
// `mapping`, `function`, `address payable`, or `T x`/`T memory x`)
// without building an IndexAccessedPath to convert — in that case the
// type is parsed fresh here instead.
func (p *Parser) parseVariableDefinitionWith(ty ast.Ty) *ast.VarDecl {
	if ty == nil {
		ty = p.parseType()
	}
	start := ty.Span()
	location := ""
	if p.tok.IsLocationSpecifier() {
		location = p.tok.Text()
		p.bump()
	}
	var name *ast.Ident
	end := start
	if p.tok.IsNonReservedIdent() {
		id := ast.Ident{Sp: p.tok.Span, Sym: p.tok.Sym}
		name = &id
		end = id.Sp
		p.bump()
	} else {
		p.dcx.Err("expected variable name, found " + p.describe(p.tok)).Span(p.tok.Span).Emit()
	}
	return &ast.VarDecl{Sp: start.To(end), Type: ty, Location: location, Name: name}
}
