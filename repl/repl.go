// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. Connects an input stream to the lex-parse-execute pipeline
//          and keeps one persistent top-level Scope across inputs, so a variable or class bound on
//          one line is visible on the next: the interactive analogue of runner.Run's single-shot,
//          fresh-scope execution. Colored output uses github.com/fatih/color.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pyrite-lang/pyrite/ast"
	"github.com/pyrite-lang/pyrite/config"
	"github.com/pyrite-lang/pyrite/internal/pyritelog"
	"github.com/pyrite-lang/pyrite/object"
	"github.com/pyrite-lang/pyrite/parser"
)

const prompt = "pyrite> "

const logo = `
  ____                  _ _
 |  _ \ _   _ _ __ _ __ (_) |_ ___
 | |_) | | | | '__| '__|| | __/ _ \
 |  __/| |_| | |  | |   | | ||  __/
 |_|    \__, |_|  |_|   |_|\__\___|
        |___/
`

// REPL runs an interactive session reading from in and writing to out,
// keeping one persistent top-level Scope across evaluated lines.
type REPL struct {
	in    *bufio.Scanner
	out   io.Writer
	scope *object.Scope
	cfg   config.Config
}

// New constructs a REPL over in/out using cfg for color and log-level
// behavior.
func New(in io.Reader, out io.Writer, cfg config.Config) *REPL {
	return &REPL{
		in:    bufio.NewScanner(in),
		out:   out,
		scope: object.NewScope(),
		cfg:   cfg,
	}
}

// Run prints the banner and evaluates lines until EOF, or until the user
// types `exit`/`quit`.
func (r *REPL) Run() {
	ast.SetOutput(r.out)

	banner := color.New(color.FgHiMagenta, color.Bold)
	if !r.cfg.Color {
		banner.DisableColor()
	}
	banner.Fprintln(r.out, logo)

	promptColor := color.New(color.FgGreen)
	if !r.cfg.Color {
		promptColor.DisableColor()
	}

	for {
		promptColor.Fprint(r.out, prompt)
		if !r.in.Scan() {
			return
		}
		line := r.in.Text()
		switch line {
		case "exit", "quit":
			return
		case "":
			continue
		}
		r.evalLine(line)
	}
}

func (r *REPL) evalLine(line string) {
	program, err := parser.ParseProgramWithIndent(line, r.cfg.IndentWidth)
	if err != nil {
		r.reportError(err)
		return
	}
	if _, err := program.Execute(r.scope); err != nil {
		r.reportError(err)
	}
}

func (r *REPL) reportError(err error) {
	pyritelog.L().Debugw("repl evaluation failed", "error", err)
	errColor := color.New(color.FgRed)
	if !r.cfg.Color {
		errColor.DisableColor()
	}
	errColor.Fprintf(r.out, "%s\n", fmt.Sprint(err))
}
