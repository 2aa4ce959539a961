/*
File    : solparse/driver/driver.go
Package : driver

The Parse Driver (spec §4.4): owns the growing source set, parses each
file, resolves `import` directives to new files, deduplicates by file
identity, and (via toposort.go) topologically orders the result.
Grounded on go-mix's single-file Lexer/Parser construction (parser.New
per file) generalized to many files, with the parallel frontier fan-out
modeled on the zurustar-son-et pack's use of golang.org/x/sync/errgroup
for bounded concurrent work with first-error propagation.
*/
package driver

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akashmaji946/solparse/ast"
	"github.com/akashmaji946/solparse/parser"
	"github.com/akashmaji946/solparse/session"
)

// Options configures one driver run (SPEC_FULL "Configuration": a
// constructor-argument struct, not a config file, matching go-mix's
// NewParser/NewLexer idiom).
type Options struct {
	// Parallel selects the work-stealing frontier fan-out (spec §5
	// "Parallel") over the single-worker sequential loop.
	Parallel bool
	// MaxFatalErrors is the fatal-diagnostic threshold past which the
	// driver refuses to start further parsing tasks (spec §5
	// "Cancellation & timeouts"). Zero means unlimited.
	MaxFatalErrors int
	// StopAfterParsing short-circuits AST-pass/lowering invocation
	// (spec §4.4 "Stopping conditions"). The driver itself never runs
	// those passes, and Run does not read this field.
	StopAfterParsing bool
}

// Driver owns the growing Source vector for one parse session.
type Driver struct {
	Sess     *session.Session
	Resolver FileResolver
	Opts     Options

	sources []*Source
	handles map[*FileHandle]SourceId
}

// New creates a Driver over resolver, using sess for diagnostics and
// symbol interning (spec §6 "Session globals": established once, for
// the lifetime of the parse).
func New(sess *session.Session, resolver FileResolver, opts Options) *Driver {
	return &Driver{
		Sess:     sess,
		Resolver: resolver,
		Opts:     opts,
		handles:  make(map[*FileHandle]SourceId),
	}
}

// Result is what a completed driver run hands to downstream passes
// (spec §6 "Produced outputs").
type Result struct {
	Sources   []*Source
	HasErrors bool
}

// AddRoot resolves path as an initial (CLI-argument) file and appends
// it to the source set, returning its SourceId. Call before Run.
func (d *Driver) AddRoot(path string) (SourceId, error) {
	h, err := d.Resolver.Resolve(path, "")
	if err != nil {
		d.Sess.Dcx.Err(fmt.Sprintf("could not load %q: %v", path, err)).Emit()
		return 0, err
	}
	return d.intern(h), nil
}

// intern registers h in the source set, deduplicating by handle
// identity (spec §3 "No two sources share file identity"), and returns
// its SourceId either way.
func (d *Driver) intern(h *FileHandle) SourceId {
	if id, ok := d.handles[h]; ok {
		return id
	}
	id := SourceId(len(d.sources))
	d.sources = append(d.sources, &Source{File: h})
	d.handles[h] = id
	return id
}

// fatalErrorThresholdCrossed reports whether the driver should refuse
// to start further parsing tasks (spec §5).
func (d *Driver) fatalErrorThresholdCrossed() bool {
	if d.Opts.MaxFatalErrors <= 0 {
		return false
	}
	return d.Sess.Dcx.FatalErrorCount() >= d.Opts.MaxFatalErrors
}

// Run drives the loading loop to completion (spec §4.4 "Loading loop"),
// then topologically sorts the result. It dispatches to the sequential
// or parallel loop per d.Opts.Parallel; both produce the identical
// final Source vector and diagnostic set for a given input (spec §5
// "Ordering guarantees").
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	if len(d.sources) == 0 {
		d.Sess.Dcx.Err("no input files").Emit()
		return &Result{HasErrors: true}, fmt.Errorf("driver: no input files")
	}

	var err error
	if d.Opts.Parallel {
		err = d.runParallel(ctx)
	} else {
		err = d.runSequential()
	}
	if err != nil {
		return nil, err
	}

	Toposort(d.sources)

	return &Result{Sources: d.sources, HasErrors: d.Sess.Dcx.HasErrors()}, nil
}

// runSequential is spec §4.4's loading loop in its literal form: a
// single cursor over the (growing) sources vector.
func (d *Driver) runSequential() error {
	for id := 0; id < len(d.sources); id++ {
		if d.fatalErrorThresholdCrossed() {
			break
		}
		d.parseOne(SourceId(id))
	}
	return nil
}

// parseOne parses sources[id] in place and resolves its imports,
// appending newly discovered sources to d.sources. Used by the
// sequential loop; the parallel loop does its own parse-and-integrate
// steps inline.
func (d *Driver) parseOne(id SourceId) {
	s := d.sources[id]
	s.Ast = d.parseText(s.File.Text)

	for _, imp := range scanImports(s.File.Text) {
		parentDir := filepath.Dir(s.File.Path)
		h, err := d.Resolver.Resolve(imp.path, parentDir)
		if err != nil {
			d.Sess.Dcx.Err(fmt.Sprintf("unresolved import %q in %q: %v", imp.path, s.File.Path, err)).Emit()
			continue
		}
		toId := d.intern(h)
		s.Imports = append(s.Imports, Import{ItemId: imp.itemId, ToId: toId})
	}
}

// parseText runs the statement parser over one file's full text.
func (d *Driver) parseText(src string) *ast.Block {
	p := parser.New(d.Sess.Dcx, src, 0)
	return p.ParseSourceUnit()
}

// frontierResult is what one parallel parsing task hands back to the
// sequential integration step: everything needed to mutate the global
// state without re-parsing (spec §5 "parsing tasks compute (local_index,
// ast, unresolved_imports) in any order").
type frontierResult struct {
	localIndex int
	ast        *ast.Block
	imports    []importDirective
	parentDir  string
}

// runParallel processes the current frontier (every currently-unparsed
// source) concurrently, then integrates results sequentially, repeating
// until the frontier is empty (spec §4.4 "Parallel form").
func (d *Driver) runParallel(ctx context.Context) error {
	next := 0
	for next < len(d.sources) {
		if d.fatalErrorThresholdCrossed() {
			break
		}
		frontier := d.sources[next:]
		results := make([]frontierResult, len(frontier))

		g, gctx := errgroup.WithContext(ctx)
		for i, s := range frontier {
			i, s := i, s
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = frontierResult{
					localIndex: i,
					ast:        d.parseText(s.File.Text),
					imports:    scanImports(s.File.Text),
					parentDir:  filepath.Dir(s.File.Path),
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		// Sequential integration: merge in local_index order so
		// SourceId assignment is deterministic regardless of which
		// worker finished first (spec §5).
		newFrontierStart := len(d.sources)
		for i := range frontier {
			r := results[i]
			s := frontier[i]
			s.Ast = r.ast
			for _, imp := range r.imports {
				h, err := d.Resolver.Resolve(imp.path, r.parentDir)
				if err != nil {
					d.Sess.Dcx.Err(fmt.Sprintf("unresolved import %q in %q: %v", imp.path, s.File.Path, err)).Emit()
					continue
				}
				toId := d.intern(h)
				s.Imports = append(s.Imports, Import{ItemId: imp.itemId, ToId: toId})
			}
		}
		// newly appended sources from this wave's imports, if any,
		// become the next wave's frontier; the outer loop condition
		// exits once nothing new was appended.
		next = newFrontierStart
	}
	return nil
}
