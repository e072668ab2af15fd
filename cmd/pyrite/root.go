// ==============================================================================================
// FILE: cmd/pyrite/root.go
// ==============================================================================================
// PACKAGE: main (cmd/pyrite)
// PURPOSE: The cobra command tree root. Grounded on go-dws's cmd/dwscript/cmd/root.go: a
//          persistent --config flag feeding config.Load, a persistent --log-level flag, and
//          subcommands for each pipeline stage (run, lex, parse, repl) instead of one
//          do-everything binary.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pyrite-lang/pyrite/config"
	"github.com/pyrite-lang/pyrite/internal/pyritelog"
)

var (
	configPath string
	logLevel   string
	noColor    bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pyrite",
	Short: "The Pyrite language interpreter",
	Long: `pyrite is a tree-walking interpreter for the Pyrite language: a small,
dynamically-typed, indentation-structured, class-based scripting language.

Run a .pyr file, inspect the lexer's or parser's output, or drop into an
interactive session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if noColor {
			cfg.Color = false
		}
		pyritelog.Init(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a pyrite config file (default: ./.pyrite.yaml or $HOME/.pyrite.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func main() {
	defer pyritelog.Sync()
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}
