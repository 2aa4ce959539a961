/*
File    : solparse/driver/source.go
Package : driver

The driver's source set (spec §3 "Source", §4.4): a dense, insertion-
ordered vector of files addressed by SourceId, each mutated exactly
twice (ast assignment, topological remap) per spec §5's mutation
discipline. Grounded on pongo2's TemplateSet "own a growing named
collection of parsed units, resolved by path" shape (reference pattern
only, not copied code — pongo2 is not the teacher) combined with
go-mix's one-file-at-a-time Lexer/Parser construction generalized to
many files.
*/
package driver

import (
	"github.com/akashmaji946/solparse/ast"
)

// SourceId is a dense index into a Driver's sources vector. Stable only
// within one driver run; remapped once by Toposort (spec §3).
type SourceId int

// FileHandle identifies a loaded file by pointer identity, so that two
// resolutions of the same underlying file compare equal regardless of
// how the path was spelled (spec §3: "deduplication on identity of file
// handles"). The FileResolver guarantees this by caching and returning
// the same *FileHandle for the same underlying file on every call.
type FileHandle struct {
	Path string
	Text string
}

// Import is one resolved `import` directive: ItemId is the directive's
// position within its source (declaration order), ToId is the resolved
// target source.
type Import struct {
	ItemId int
	ToId   SourceId
}

// Source is one file in the driver's set: unparsed until Ast is set,
// then populated with its resolved imports (spec §3's two-state Source).
type Source struct {
	File    *FileHandle
	Ast     *ast.Block
	Imports []Import
}

// Parsed reports whether s has already been parsed.
func (s *Source) Parsed() bool { return s.Ast != nil }
