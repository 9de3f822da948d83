package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlp/parser"
	"github.com/katalvlaran/lvlp/solver/simplex"
)

// envPrefix scopes environment overrides: LVLP_SOLVE, LVLP_LOG_LEVEL, ...
const envPrefix = "LVLP"

// config is the resolved command configuration.
// Precedence (highest first): flags set on the command line, LVLP_* environment
// variables, the --config file, flag defaults.
type config struct {
	Dir             string
	Solve           bool
	Relax           bool
	Tolerance       float64
	Comma           rune
	LogLevel        string
	VariablesFile   string
	ObjectiveFiles  []string
	ConstraintsFile string
}

const usageText = `
lvlp - load a tabular LP/MILP model and print its array form.

Usage:
  lvlp [options] DATA_DIR

Arguments:
  DATA_DIR
    Directory holding variables.csv, objective.csv (or objectives.csv)
    and constraints.csv.

Options:
`

// parseConfig reads flags, environment and the optional config file.
// It returns shouldExit=true when help was requested.
func parseConfig(args []string, output io.Writer) (*config, bool, error) {
	fs := pflag.NewFlagSet("lvlp", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usageText)
		fs.PrintDefaults()
	}

	fs.String("config", "", "Path to a YAML/TOML/JSON config file.")
	fs.Bool("solve", false, "Solve the model with the simplex backend.")
	fs.Bool("relax", false, "Solve the LP relaxation of integer and binary variables.")
	fs.Float64("tolerance", simplex.DefaultTolerance, "Simplex tolerance.")
	fs.String("comma", ",", "Field delimiter: a single character, or 'tab'.")
	fs.String("log-level", "info", "Log level: debug, info, warn, error.")
	fs.String("variables-file", parser.DefaultVariablesFile, "Variables table file name.")
	fs.StringSlice("objective-files", parser.DefaultObjectiveFiles, "Objective table candidates, first existing wins.")
	fs.String("constraints-file", parser.DefaultConstraintsFile, "Constraints table file name.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, false, &ExitError{Code: exitUsage, Message: fmt.Sprintf("reading config %s: %v", path, err)}
		}
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, false, &ExitError{Code: exitUsage, Message: fmt.Sprintf("expected exactly one DATA_DIR, got %d arguments", fs.NArg())}
	}

	comma, err := parseComma(v.GetString("comma"))
	if err != nil {
		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}

	return &config{
		Dir:             fs.Arg(0),
		Solve:           v.GetBool("solve"),
		Relax:           v.GetBool("relax"),
		Tolerance:       v.GetFloat64("tolerance"),
		Comma:           comma,
		LogLevel:        strings.ToLower(v.GetString("log-level")),
		VariablesFile:   v.GetString("variables-file"),
		ObjectiveFiles:  v.GetStringSlice("objective-files"),
		ConstraintsFile: v.GetString("constraints-file"),
	}, false, nil
}

func parseComma(s string) (rune, error) {
	if strings.EqualFold(s, "tab") || s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid comma %q: must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}
