// ==============================================================================================
// FILE: cmd/pyrite/repl.go
// ==============================================================================================

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pyrite-lang/pyrite/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Pyrite session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repl.New(os.Stdin, os.Stdout, cfg).Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
