// ==============================================================================================
// FILE: cmd/pyrite/run.go
// ==============================================================================================

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pyrite-lang/pyrite/runner"
)

var evalSource string

var runCmd = &cobra.Command{
	Use:   "run [script.pyr]",
	Short: "Run a Pyrite script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner.SetOutput(os.Stdout)

		source, err := readSource(args, evalSource)
		if err != nil {
			return err
		}
		return runner.RunWithIndent(source, cfg.IndentWidth)
	},
}

func init() {
	runCmd.Flags().StringVarP(&evalSource, "eval", "e", "", "evaluate an inline source string instead of a file")
	rootCmd.AddCommand(runCmd)
}

// readSource resolves the script source from either a file argument or an
// inline --eval string.
func readSource(args []string, inline string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) == 0 {
		return "", errNoSource
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
