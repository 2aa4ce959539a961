/*
File    : solparse/session/globals.go
Package : session

Session globals: the ambient context the lexer/parser expect to be
established before any call (spec §6 "Session globals"). The symbol
interner is genuinely process-wide (session.Intern/session.Resolve work
without one), but the DiagCtxt is per-session so a driver can run more
than one independent parse session (e.g. in tests) without diagnostics
bleeding between them.
*/
package session

// Session bundles the ambient services a parse needs: a diagnostic sink
// and (transitively, via the package-level functions) the process-wide
// interner. One Session is shared by every worker in a driver's thread
// pool for the duration of a parse.
type Session struct {
	Dcx *DiagCtxt
}

// New creates a fresh Session with its own diagnostic context.
func New() *Session {
	return &Session{Dcx: NewDiagCtxt()}
}
