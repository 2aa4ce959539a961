/*
File    : solparse/cmd/solparse/main.go
Package : main

The demo entry point (SPEC_FULL "cmd/solparse"): an interactive REPL
with no arguments, or batch mode — drive a set of files through the
Parse Driver — when given paths. Adapted from go-mix's root main.go
(banner + "Hello, go-mix!" smoke demo) and repl/repl.go's Start wiring;
`eval`'s tree-walking evaluator has no place here since this module
stops at an AST (§1 Non-goals).
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/solparse/driver"
	"github.com/akashmaji946/solparse/session"
)

const banner = `
   _____       __
  / ___/____  / /___  ____ ______________
  \__ \/ __ \/ / __ \/ __ '/ ___/ ___/ _ \
 ___/ / /_/ / / /_/ / /_/ / /  (__  )  __/
/____/\____/_/ .___/\__,_/_/  /____/\___/
            /_/
`

func main() {
	if len(os.Args) <= 1 {
		repl := NewRepl(banner, "0.1.0", "solparse", "------------------------------------------------------------", "MIT", "solparse >>> ")
		repl.Start(os.Stdout)
		return
	}
	runBatch(os.Args[1:])
}

// runBatch drives the Parse Driver over the given file paths (spec
// §4.4), parallelized across root files, and prints a per-source
// summary plus every diagnostic.
func runBatch(paths []string) {
	sess := session.New()
	resolver := newFsResolver()
	d := driver.New(sess, resolver, driver.Options{Parallel: true})

	for _, p := range paths {
		if _, err := d.AddRoot(p); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		}
	}

	res, err := d.Run(context.Background())
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	for i, s := range res.Sources {
		green.Printf("[%d] %s", i, s.File.Path)
		if len(s.Imports) > 0 {
			fmt.Printf(" (%d import(s))", len(s.Imports))
		}
		fmt.Println()
	}
	for _, diag := range sess.Dcx.Diagnostics() {
		red.Printf("error: %s\n", diag.Message)
	}

	if res.HasErrors {
		os.Exit(1)
	}
}
