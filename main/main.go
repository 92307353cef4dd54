/*
File    : lumen/main/main.go

Package main is the entry point for the Lumen interpreter. It supports
three modes: interactive REPL (default, or with -i), evaluating a single
expression passed with -e, and running a source file given as a positional
argument.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/cmertz/lumen/eval"
	"github.com/cmertz/lumen/gc"
	"github.com/cmertz/lumen/parser"
	"github.com/cmertz/lumen/repl"
	"github.com/cmertz/lumen/values"
)

var VERSION = "v0.1.0"
var AUTHOR = "cmertz"
var LICENCE = "MIT"
var PROMPT = "lumen >>> "

var BANNER = `
 888
 888
 888
 888      888  888 88888b.d88b.   .d88b.  88888b.
 888      888  888 888 "888 "88b d8P  Y8b 888 "88b
 888      888  888 888  888  888 88888888 888  888
 888      Y88b 888 888  888  888 Y8b.     888  888
 88888888  "Y88888 888  888  888  "Y8888  888  888
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0 || args[0] == "-i":
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case args[0] == "--help" || args[0] == "-h":
		showHelp()
	case args[0] == "--version" || args[0] == "-v":
		showVersion()
	case args[0] == "-e":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] -e requires an expression argument\n")
			os.Exit(1)
		}
		runSource(args[1])
	default:
		runFile(args[0])
	}
}

func showHelp() {
	cyanColor.Println("Lumen - a small expression-oriented interpreted language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lumen                  Start interactive REPL mode")
	yellowColor.Println("  lumen -i               Start interactive REPL mode")
	yellowColor.Println("  lumen -e 'EXPR'        Evaluate a single expression")
	yellowColor.Println("  lumen <path-to-file>   Execute a Lumen source file")
	yellowColor.Println("  lumen --help           Display this help message")
	yellowColor.Println("  lumen --version        Display version information")
}

func showVersion() {
	cyanColor.Printf("Lumen %s (%s license)\n", VERSION, LICENCE)
}

// runFile reads and executes a Lumen source file.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	run(string(content))
}

// runSource evaluates a single expression string given via -e.
func runSource(source string) {
	run(source)
}

// run parses and evaluates source against a fresh root environment,
// printing the final result (or the first runtime error) and exiting
// non-zero on any parse or runtime error.
func run(source string) {
	par := parser.NewParser(source)
	program := par.Parse()

	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", parseErr)
		}
		os.Exit(1)
	}

	env := values.NewEnvironment()
	collector := gc.NewCollector(env)
	evaluator := eval.NewEvaluator()
	evaluator.Collector = collector

	result := evaluator.Eval(program, env)
	collector.Run()

	if result == nil {
		return
	}
	if result.Type() == values.ErrorType {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout, result.Inspect())
}
