/*
File    : solparse/driver/imports.go
Package : driver

Extracts `import` directives from a file's token stream (spec §4.4's
`imports_of(s.ast)`). Full declaration parsing (pragma/import/contract)
is out of this module's grammar (spec §1's "declaration/item parser" is
an external collaborator) — this is a narrow, driver-local scan of the
cooked token stream for the one piece of declaration syntax the driver
itself needs to discover the import graph, grounded on the same
token-stream primitives the statement parser uses (lexer.Lexer,
token.Token), not on parser.Parser or the statement AST.

Recognized forms (Solidity's import directive grammar):

	import "path";
	import "path" as ident;
	import * as ident from "path";
	import { ident [as ident] [, ...] } from "path";
*/
package driver

import (
	"github.com/akashmaji946/solparse/lexer"
	"github.com/akashmaji946/solparse/session"
	"github.com/akashmaji946/solparse/token"
)

// importDirective is one `import ...;` occurrence, in source order.
type importDirective struct {
	itemId int
	path   string
}

// scanImports tokenizes src with its own fresh DiagCtxt (import scanning
// must not duplicate lexical diagnostics already reported by the real
// parse of the same file) and returns every import directive found.
func scanImports(src string) []importDirective {
	dcx := session.NewDiagCtxt()
	lx := lexer.New(dcx, src, 0, nil)

	var out []importDirective
	itemId := 0
	tok := lx.NextToken()
	for !tok.IsEOF() {
		if tok.IsIdentNamed("import") {
			if path, ok := scanOneImport(lx, &tok); ok {
				out = append(out, importDirective{itemId: itemId, path: path})
				itemId++
			}
			continue
		}
		tok = lx.NextToken()
	}
	return out
}

// scanOneImport consumes tokens starting at `import` (tok holds it on
// entry and is advanced in place, ending on the token after the `;`)
// looking for the first string literal that the
// grammar promises is the import path, then skips to the terminating
// `;`. Reports ok=false if the directive doesn't resolve to a path
// literal before a `;` or EOF (a malformed/unsupported form).
func scanOneImport(lx *lexer.Lexer, tok *token.Token) (string, bool) {
	*tok = lx.NextToken()
	var path string
	found := false
	for !tok.IsEOF() && tok.Kind != token.Semi {
		if !found && tok.Kind == token.Literal && tok.Lit.Kind == token.LitStr {
			path = session.Resolve(tok.Lit.Sym)
			found = true
		}
		*tok = lx.NextToken()
	}
	if tok.Kind == token.Semi {
		*tok = lx.NextToken()
	}
	return path, found
}
