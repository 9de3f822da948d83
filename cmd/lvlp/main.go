// Command lvlp loads an LP/MILP directory (variables.csv, objective.csv or
// objectives.csv, constraints.csv), prints its array form as YAML and
// optionally solves it with the pure-Go simplex backend.
//
// Exit codes:
//
//	0  success
//	1  the input tables are invalid (parse error)
//	2  the solve finished with a non-optimal status
//	3  internal or solver failure
//	4  bad flags or configuration
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlp"
	"github.com/katalvlaran/lvlp/arrays"
	"github.com/katalvlaran/lvlp/parser"
	"github.com/katalvlaran/lvlp/solver"
	"github.com/katalvlaran/lvlp/solver/simplex"
)

const (
	exitParse      = 1
	exitNotOptimal = 2
	exitInternal   = 3
	exitUsage      = 4
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInternal)
	}
}

// run holds the whole command so tests can drive it with arguments and buffers.
func run(outW, errW io.Writer, args []string) (err error) {
	cfg, shouldExit, err := parseConfig(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	zl, err := newLogger(errW, cfg.LogLevel)
	if err != nil {
		return &ExitError{Code: exitUsage, Message: fmt.Sprintf("invalid log-level: %v", err)}
	}
	defer func() { _ = zl.Sync() }()
	log := zapr.NewLogger(zl)

	// Option constructors panic on nonsensical values (bad delimiter, negative
	// tolerance); report those as configuration errors.
	defer func() {
		if r := recover(); r != nil {
			err = &ExitError{Code: exitUsage, Message: fmt.Sprintf("invalid configuration: %v", r)}
		}
	}()

	m, am, err := lvlp.Load(cfg.Dir,
		parser.WithLogger(log),
		parser.WithComma(cfg.Comma),
		parser.WithVariablesFile(cfg.VariablesFile),
		parser.WithObjectiveFiles(cfg.ObjectiveFiles...),
		parser.WithConstraintsFile(cfg.ConstraintsFile),
	)
	if err != nil {
		return classify(err)
	}
	log.Info("model loaded", "dir", cfg.Dir, "variables", am.NumVariables(), "constraints", am.NumConstraints())

	rep := newReport(cfg.Dir, m, am)

	var res *solver.Result
	if cfg.Solve {
		opts := []simplex.Option{simplex.WithTolerance(cfg.Tolerance)}
		if cfg.Relax {
			opts = append(opts, simplex.WithRelaxIntegrality())
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		res, err = simplex.New(opts...).Solve(ctx, am)
		if err != nil {
			return &ExitError{Code: exitInternal, Message: err.Error()}
		}
		log.Info("solve finished", "status", res.Status.String())
		rep.Solution = newSolutionReport(res)
	}

	if err = writeReport(outW, rep); err != nil {
		return err
	}
	if res != nil && res.Status != solver.Optimal {
		return &ExitError{Code: exitNotOptimal, Message: "solve status: " + res.Status.String()}
	}

	return nil
}

// classify maps a load failure onto its exit code.
func classify(err error) error {
	var pe *parser.ParseError
	switch {
	case errors.As(err, &pe):
		return &ExitError{Code: exitParse, Message: pe.Error()}
	case errors.Is(err, arrays.ErrInvariant):
		return &ExitError{Code: exitInternal, Message: "internal error: " + err.Error()}
	default:
		return &ExitError{Code: exitInternal, Message: err.Error()}
	}
}

// newLogger builds a console zap logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}
