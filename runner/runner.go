// ==============================================================================================
// FILE: runner/runner.go
// ==============================================================================================
// PACKAGE: runner
// PURPOSE: The lex-parse-execute pipeline, and the process-wide output sink every Print
//          statement writes through. This is the one place that wires lexer, parser, ast, and
//          object together into a single "run this program" operation, exercised end to end
//          against literal stdout expectations.
// ==============================================================================================

package runner

import (
	"io"

	"github.com/pyrite-lang/pyrite/ast"
	"github.com/pyrite-lang/pyrite/object"
	"github.com/pyrite-lang/pyrite/parser"
)

// SetOutput installs the process-wide sink that every Print statement in
// any subsequently executed program writes to. Must be called before Run;
// the default is os.Stdout.
func SetOutput(w io.Writer) {
	ast.SetOutput(w)
}

// Run parses source and executes it against a fresh top-level scope,
// using the lexer's default two-space indent unit, and returns the first
// error encountered from either phase. Execution halts immediately on
// error; any output already written is retained.
func Run(source string) error {
	return RunWithIndent(source, 0)
}

// RunWithIndent is Run with an explicit indent width, in spaces, for the
// lexer's Indent/Dedent synthesis.
func RunWithIndent(source string, indentUnit int) error {
	program, err := parser.ParseProgramWithIndent(source, indentUnit)
	if err != nil {
		return err
	}
	scope := object.NewScope()
	_, err = program.Execute(scope)
	return err
}
