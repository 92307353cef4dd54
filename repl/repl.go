/*
File    : lumen/repl/repl.go

A Read-Eval-Print Loop, kept in the teacher's own shape: readline for line
editing and history, fatih/color for feedback, and a per-session Repl
struct carrying the banner/version/prompt strings to print at startup.
Unlike the teacher's REPL, which created a fresh parser per line but
otherwise had no persistent variable state across lines (bindings lived in
a scope passed in by the caller), this REPL keeps one root Environment
alive for the whole session so `let` bindings from one line are visible on
the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cmertz/lumen/eval"
	"github.com/cmertz/lumen/gc"
	"github.com/cmertz/lumen/parser"
	"github.com/cmertz/lumen/values"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the display strings printed at session startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given banner/version/author/separator/
// license/prompt strings.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lumen!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main read-eval-print loop against reader/writer. reader
// is accepted for interface symmetry with file execution but readline
// itself talks to the controlling terminal.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := values.NewEnvironment()
	collector := gc.NewCollector(env)
	evaluator := eval.NewEvaluator()
	evaluator.Collector = collector

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator, env)
		collector.Run()
	}
}

// executeWithRecovery parses and evaluates one line of input, displaying
// either the parse errors, the runtime error, or the result value. A panic
// during evaluation is caught and reported rather than killing the
// session, since the REPL keeps running after a bad line.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator, env *values.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.NewParser(line)
	program := par.Parse()

	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", parseErr)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == values.ErrorType {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
