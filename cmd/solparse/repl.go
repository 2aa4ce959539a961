/*
File    : solparse/cmd/solparse/repl.go
Package : main

The interactive Read-Eval-Print Loop (an evaluation-free "Read-Parse-
Print Loop"): lexes and parses one statement per line and prints its AST
and any diagnostics. Grounded directly on go-mix repl/repl.go's Repl
struct, banner, readline wiring, and panic-recovery discipline, with
`eval.Evaluator` replaced by `parser.Parser` + `parser.Dump` since this
module stops at the AST (spec §1's "AST-pass and lowering phases after
parsing" are out of scope).
*/
package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/solparse/parser"
	"github.com/akashmaji946/solparse/session"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is the interactive statement-parser console.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner/identification text.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage instructions.
func (r *Repl) PrintBannerInfo(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "solparse — Solidity lexer/statement-parser console")
	cyanColor.Fprintf(w, "%s\n", "Type one statement and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL main loop until '.exit', EOF, or a readline error.
func (r *Repl) Start(w io.Writer) {
	r.PrintBannerInfo(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(w, line)
	}
}

// executeWithRecovery parses one line as a statement and prints its AST
// (or diagnostics), recovering from any panic so a malformed line never
// kills the session (go-mix repl.go's "unlike file mode, we don't exit").
func (r *Repl) executeWithRecovery(w io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	dcx := session.NewDiagCtxt()
	p := parser.New(dcx, line, 0)
	stmt := p.ParseStmt()

	for _, d := range dcx.Diagnostics() {
		redColor.Fprintf(w, "error: %s\n", d.Message)
	}
	if dcx.HasErrors() {
		return
	}
	yellowColor.Fprintf(w, "%s", parser.Dump(stmt))
}
