// ==============================================================================================
// FILE: config/config.go
// ==============================================================================================
// PACKAGE: config
// PURPOSE: Process configuration, layered the way a cobra/viper CLI conventionally does: defaults,
//          then an optional config file ($HOME/.pyrite.yaml or ./.pyrite.yaml), then PYRITE_*
//          environment variables, then command-line flags (bound by cmd/pyrite). The language
//          runtime itself carries no persistent state, but the driver around it (verbosity, indent
//          width, color output) is exactly the kind of ambient surface a real CLI carries.
// ==============================================================================================

package config

import (
	"github.com/spf13/viper"
)

// Config is the resolved process configuration for one invocation of the
// pyrite CLI.
type Config struct {
	// LogLevel controls internal/pyritelog's verbosity: debug, info, warn, error.
	LogLevel string
	// Color enables ANSI-colored REPL output via github.com/fatih/color.
	Color bool
	// IndentWidth is the number of spaces the lexer treats as one
	// indentation unit. The language's own convention is 2; exposing it as
	// configuration lets the CLI lex and parse sources written with a
	// different indent width without forking the lexer.
	IndentWidth int
}

// Default returns the configuration baseline before any file, env, or
// flag layer is applied.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Color:       true,
		IndentWidth: 2,
	}
}

// Load resolves a Config from defaults, an optional config file, and
// PYRITE_*-prefixed environment variables. configPath, if non-empty,
// overrides viper's default search path (current directory and $HOME).
func Load(configPath string) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("color", d.Color)
	v.SetDefault("indent_width", d.IndentWidth)

	v.SetEnvPrefix("PYRITE")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".pyrite")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}

	return Config{
		LogLevel:    v.GetString("log_level"),
		Color:       v.GetBool("color"),
		IndentWidth: v.GetInt("indent_width"),
	}, nil
}
