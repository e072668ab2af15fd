// ==============================================================================================
// FILE: cmd/pyrite/lex.go
// ==============================================================================================
// Debug subcommand that prints a script's raw token stream.
// ==============================================================================================

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyrite-lang/pyrite/lexer"
	"github.com/pyrite-lang/pyrite/token"
)

var lexEvalSource string

var lexCmd = &cobra.Command{
	Use:   "lex [script.pyr]",
	Short: "Tokenize a Pyrite script and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args, lexEvalSource)
		if err != nil {
			return err
		}

		l := lexer.NewWithIndent(source, cfg.IndentWidth)
		for {
			tok := l.Current()
			fmt.Printf("%-10s line=%d col=%d\n", tok.Kind, tok.Line, tok.Column)
			if tok.Kind == token.Eof {
				break
			}
			l.Next()
		}
		return nil
	},
}

func init() {
	lexCmd.Flags().StringVarP(&lexEvalSource, "eval", "e", "", "tokenize an inline source string instead of a file")
	rootCmd.AddCommand(lexCmd)
}
