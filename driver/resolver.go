/*
File    : solparse/driver/resolver.go
Package : driver

The file resolver is an external collaborator (spec §1, §6): "the
source-map/file-resolver subsystem (treated as an opaque service that
canonicalizes paths and returns file contents)". This file only defines
the interface the driver consumes, plus a small in-memory implementation
used by tests so the driver
package has no filesystem dependency of its own.
*/
package driver

import "fmt"

// FileResolver resolves import paths and the initial CLI arguments to
// FileHandles (spec §6 "Consumed services: File resolver"). Callers
// must canonicalize parentDir/path themselves before returning a handle
// so that two different spellings of the same file yield the identical
// *FileHandle pointer (the dedup key, per spec §3).
type FileResolver interface {
	Resolve(path string, parentDir string) (*FileHandle, error)
	LoadStdin() (*FileHandle, error)
}

// MapResolver is a FileResolver backed by an in-memory path-to-text
// map, with canonicalization limited to map-key lookup. It caches
// returned handles so repeated resolutions of the same path are
// identity-equal, satisfying the driver's dedup invariant.
type MapResolver struct {
	Files map[string]string

	cache map[string]*FileHandle
}

// NewMapResolver builds a MapResolver over files, a path->source map.
func NewMapResolver(files map[string]string) *MapResolver {
	return &MapResolver{Files: files, cache: make(map[string]*FileHandle)}
}

// Resolve looks path up verbatim in m.Files (parentDir is accepted for
// interface compatibility but unused: this resolver has no directory
// notion, matching its in-memory/test-only scope).
func (m *MapResolver) Resolve(path string, _ string) (*FileHandle, error) {
	if h, ok := m.cache[path]; ok {
		return h, nil
	}
	text, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("driver: unresolved import %q", path)
	}
	h := &FileHandle{Path: path, Text: text}
	m.cache[path] = h
	return h, nil
}

// LoadStdin resolves the reserved "-" path to a handle, if present.
func (m *MapResolver) LoadStdin() (*FileHandle, error) {
	return m.Resolve("-", "")
}
