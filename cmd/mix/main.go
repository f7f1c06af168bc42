/*
File   : mix/cmd/mix/main.go
Package main is the entry point for the Mix interpreter.

Mix runs a single source file to completion; there is no REPL or server
mode (spec.md's Non-goals exclude incremental/interactive execution).
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/mix/internal/ast"
	"github.com/akashmaji946/mix/internal/diag"
	"github.com/akashmaji946/mix/internal/eval"
	"github.com/akashmaji946/mix/internal/parser"
	"github.com/akashmaji946/mix/internal/semant"
	"github.com/fatih/color"
	"github.com/pborman/getopt/v2"
)

// VERSION is the interpreter's version string.
var VERSION = "v0.1.0"

// AUTHOR is the interpreter's maintainer contact, surfaced by --version.
var AUTHOR = "akashmaji946/mix"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	help := getopt.BoolLong("help", 'h', "display this help message")
	version := getopt.BoolLong("version", 0, "display version information")
	trace := getopt.BoolLong("trace", 0, "print the resolved AST as S-expressions before evaluating")
	getopt.SetParameters("<source_file>")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if *help {
		getopt.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if *version {
		cyanColor.Printf("mix %s\n", VERSION)
		cyanColor.Printf("%s\n", AUTHOR)
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		redColor.Fprintln(os.Stderr, "Error: expected exactly one source file argument")
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: could not read file %q: %v\n", args[0], err)
		os.Exit(1)
	}

	run(string(source), *trace, os.Stdout, os.Stderr)
}

// run executes the lexer -> parser -> semantic analyzer -> evaluator
// pipeline over src, writing program output to stdout and diagnostics to
// errOut. Diagnostics at every phase are reported but never stop the
// pipeline short (spec.md §7); only a startup failure (handled in main,
// above) yields a non-zero exit. Writers are parameters rather than bare
// os.Stdout/os.Stderr references so the pipeline can be exercised in tests
// without touching the real console.
func run(src string, withTrace bool, stdout, errOut io.Writer) {
	reporter := diag.NewConsoleReporterWithWriter(errOut)

	p := parser.New(src, reporter)
	prog := p.Parse()

	if withTrace {
		var pv ast.PrintingVisitor
		prog.Accept(&pv)
		fmt.Fprint(stdout, pv.String())
	}

	semant.NewAnalyzer(reporter).Analyze(prog)

	// A final outermost recover guards against anything the evaluator
	// itself doesn't catch as a RuntimeError — the reference behavior's
	// "catch at the top of the evaluator, report, and terminate"
	// (spec.md §7), applied defensively around the whole run.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(errOut, "Error: %v\n", r)
		}
	}()
	eval.New(reporter, stdout).Run(prog)
}
