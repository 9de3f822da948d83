// SPDX-License-Identifier: MIT

package parser

import (
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

// Default file names and delimiter.
const (
	DefaultVariablesFile   = "variables.csv"
	DefaultConstraintsFile = "constraints.csv"
	DefaultComma           = ','
)

// DefaultObjectiveFiles are tried in order; the first existing one is used.
var DefaultObjectiveFiles = []string{"objective.csv", "objectives.csv"}

const (
	panicCommaInvalid = "parser: WithComma: delimiter must be a valid non-quote, non-newline rune"
	panicNameEmpty    = "parser: file name must not be empty"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of one ParseDir call.
type Options struct {
	fs              afero.Fs
	logger          logr.Logger
	comma           rune
	variablesFile   string
	objectiveFiles  []string
	constraintsFile string
}

func defaultOptions() Options {
	return Options{
		fs:              afero.NewOsFs(),
		logger:          logr.Discard(),
		comma:           DefaultComma,
		variablesFile:   DefaultVariablesFile,
		objectiveFiles:  DefaultObjectiveFiles,
		constraintsFile: DefaultConstraintsFile,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithFs reads tables from fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(o *Options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithLogger receives the informational notes (constraint renames).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	if r == 0 || r == '"' || r == '\r' || r == '\n' || r == 0xFFFD {
		panic(panicCommaInvalid)
	}

	return func(o *Options) { o.comma = r }
}

// WithVariablesFile overrides the variables table name.
func WithVariablesFile(name string) Option {
	mustName(name)

	return func(o *Options) { o.variablesFile = name }
}

// WithObjectiveFiles overrides the objective table candidates, tried in order.
func WithObjectiveFiles(names ...string) Option {
	if len(names) == 0 {
		panic(panicNameEmpty)
	}
	for _, n := range names {
		mustName(n)
	}
	cp := append([]string(nil), names...)

	return func(o *Options) { o.objectiveFiles = cp }
}

// WithConstraintsFile overrides the constraints table name.
func WithConstraintsFile(name string) Option {
	mustName(name)

	return func(o *Options) { o.constraintsFile = name }
}

func mustName(name string) {
	if name == "" {
		panic(panicNameEmpty)
	}
}
