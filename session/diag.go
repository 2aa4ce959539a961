/*
File    : solparse/session/diag.go
Package : session

Diagnostic context: the opaque sink every lexer/parser diagnostic is
emitted through (spec §6, §7). Replaces go-mix's Parser.Errors []string
accumulation with span + note + help, synchronized for concurrent
emission from parallel parsing workers (spec §5).
*/
package session

import "sync"

// Severity classifies a Diagnostic.
type Severity int

const (
	// SeverityError is recoverable: emission continues, parsing resumes.
	SeverityError Severity = iota
	// SeverityFatal aborts the current lexing/parsing unit; the lexer
	// yields a synthetic EOF (spec §7 "Lexical fatal").
	SeverityFatal
)

// Diagnostic is one reported problem with an optional note/help string.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     Span
	Note     string
	Help     string
}

// DiagCtxt accumulates diagnostics for one parsing session. It is safe
// for concurrent use by any number of parsing workers.
type DiagCtxt struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewDiagCtxt creates an empty diagnostic context.
func NewDiagCtxt() *DiagCtxt {
	return &DiagCtxt{}
}

// DiagBuilder accumulates the fields of one diagnostic before Emit.
type DiagBuilder struct {
	dcx *DiagCtxt
	d   Diagnostic
}

// Err starts building an error-severity diagnostic.
func (dcx *DiagCtxt) Err(msg string) *DiagBuilder {
	return &DiagBuilder{dcx: dcx, d: Diagnostic{Severity: SeverityError, Message: msg}}
}

// Fatal starts building a fatal-severity diagnostic.
func (dcx *DiagCtxt) Fatal(msg string) *DiagBuilder {
	return &DiagBuilder{dcx: dcx, d: Diagnostic{Severity: SeverityFatal, Message: msg}}
}

// Span attaches the primary span to the diagnostic being built.
func (b *DiagBuilder) Span(s Span) *DiagBuilder {
	b.d.Span = s
	return b
}

// Note attaches a note string.
func (b *DiagBuilder) Note(s string) *DiagBuilder {
	b.d.Note = s
	return b
}

// Help attaches a help string.
func (b *DiagBuilder) Help(s string) *DiagBuilder {
	b.d.Help = s
	return b
}

// Emit appends the built diagnostic to the context.
func (b *DiagBuilder) Emit() {
	b.dcx.mu.Lock()
	defer b.dcx.mu.Unlock()
	b.dcx.diags = append(b.dcx.diags, b.d)
}

// HasErrors reports whether any diagnostic (of any severity — fatal
// diagnostics are errors too) has been emitted.
func (dcx *DiagCtxt) HasErrors() bool {
	dcx.mu.Lock()
	defer dcx.mu.Unlock()
	return len(dcx.diags) > 0
}

// Count reports how many diagnostics have been emitted so far, used by
// the parser to detect whether a statement's parse raised a fresh error
// that needs resynchronizing past (spec §7).
func (dcx *DiagCtxt) Count() int {
	dcx.mu.Lock()
	defer dcx.mu.Unlock()
	return len(dcx.diags)
}

// FatalErrorCount reports how many fatal diagnostics have been emitted,
// used by the driver to decide whether to stop starting new parsing
// tasks (spec §5 "Cancellation & timeouts").
func (dcx *DiagCtxt) FatalErrorCount() int {
	dcx.mu.Lock()
	defer dcx.mu.Unlock()
	n := 0
	for _, d := range dcx.diags {
		if d.Severity == SeverityFatal {
			n++
		}
	}
	return n
}

// Diagnostics returns a snapshot of all diagnostics emitted so far,
// sorted by span as spec §5 requires of downstream consumers.
func (dcx *DiagCtxt) Diagnostics() []Diagnostic {
	dcx.mu.Lock()
	defer dcx.mu.Unlock()
	out := make([]Diagnostic, len(dcx.diags))
	copy(out, dcx.diags)
	sortDiagnosticsBySpan(out)
	return out
}

func sortDiagnosticsBySpan(diags []Diagnostic) {
	// Small, already-mostly-sorted slices per file: insertion sort avoids
	// pulling in sort.Slice's reflection-based comparator for a hot path
	// that runs once per file at diagnostic-reporting time.
	for i := 1; i < len(diags); i++ {
		for j := i; j > 0 && diags[j].Span.Lo < diags[j-1].Span.Lo; j-- {
			diags[j], diags[j-1] = diags[j-1], diags[j]
		}
	}
}
