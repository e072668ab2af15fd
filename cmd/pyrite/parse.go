// ==============================================================================================
// FILE: cmd/pyrite/parse.go
// ==============================================================================================
// Debug subcommand that parses a script and dumps its AST. Uses go-spew
// (already pulled in transitively by testify) for a readable, recursive
// struct dump instead of hand-rolling a tree printer.
// ==============================================================================================

package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/pyrite-lang/pyrite/parser"
)

var parseEvalSource string

var parseCmd = &cobra.Command{
	Use:   "parse [script.pyr]",
	Short: "Parse a Pyrite script and dump the resulting AST",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args, parseEvalSource)
		if err != nil {
			return err
		}

		program, err := parser.ParseProgramWithIndent(source, cfg.IndentWidth)
		if err != nil {
			return err
		}
		spew.Dump(program)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseEvalSource, "eval", "e", "", "parse an inline source string instead of a file")
	rootCmd.AddCommand(parseCmd)
}
