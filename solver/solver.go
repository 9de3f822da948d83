// SPDX-License-Identifier: MIT

// Package solver defines the boundary between the array model and an
// optimization backend.
//
// A Backend receives an *arrays.ArrayModel and returns a *Result. Backends are
// black boxes; this package only fixes the contract both sides rely on:
//
//   - Bound normalization: binary variables are solved over [0,1] regardless of
//     their declared bounds; an unset upper bound means +Inf. The parser and the
//     array builder keep declared bounds verbatim. See EffectiveBounds.
//   - Row form: "<=", ">=", "==" rows become ranges lo ≤ a·x ≤ hi. See RowBounds.
//   - Results are keyed by variable and constraint names, not positions.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlp/arrays"
	"github.com/katalvlaran/lvlp/model"
)

// ErrNilModel is returned when a backend is handed a nil array model.
var ErrNilModel = errors.New("solver: nil array model")

// Status is the outcome of a solve.
type Status int

const (
	// NotSolved is the zero value: no backend has reported yet.
	NotSolved Status = iota
	// Optimal means Values hold a proven optimum.
	Optimal
	// Infeasible means no point satisfies every row and bound.
	Infeasible
	// Unbounded means the objective improves without limit.
	Unbounded
	// TimeLimit means the backend stopped early; Values hold its best point.
	TimeLimit
	// Failed means the backend gave up without a usable point.
	Failed
)

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case NotSolved:
		return "not_solved"
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case TimeLimit:
		return "time_limit"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// HasSolution reports whether Values are meaningful for the status.
func (s Status) HasSolution() bool { return s == Optimal || s == TimeLimit }

// Backend solves an array model.
type Backend interface {
	Solve(ctx context.Context, am *arrays.ArrayModel) (*Result, error)
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(ctx context.Context, am *arrays.ArrayModel) (*Result, error)

// Solve calls f.
func (f BackendFunc) Solve(ctx context.Context, am *arrays.ArrayModel) (*Result, error) {
	return f(ctx, am)
}

// Result is a backend's report. Optional parts are nil when the backend does
// not provide them.
type Result struct {
	Status       Status
	Objective    *float64
	Values       map[string]float64
	Slacks       map[string]float64 // rhs - activity, by constraint name
	Duals        map[string]float64 // by constraint name
	ReducedCosts map[string]float64 // by variable name
}

// EffectiveBounds returns the column bounds a backend must use.
func EffectiveBounds(am *arrays.ArrayModel) (lower, upper []float64) {
	n := am.NumVariables()
	lower = make([]float64, n)
	upper = make([]float64, n)
	for j := 0; j < n; j++ {
		if am.Kinds[j] == model.Binary {
			lower[j], upper[j] = 0, 1
			continue
		}
		lower[j] = am.Lower[j]
		upper[j] = am.Upper[j].Float(math.Inf(1))
	}

	return lower, upper
}

// RowBounds converts an operator and right-hand side into range form.
func RowBounds(op model.Operator, rhs float64) (lo, hi float64) {
	switch op {
	case model.LessEqual:
		return math.Inf(-1), rhs
	case model.GreaterEqual:
		return rhs, math.Inf(1)
	default:
		return rhs, rhs
	}
}

// NewResult maps dense backend vectors onto names.
//   - x may be nil when the status carries no solution; Values/Objective/Slacks stay nil.
//   - duals (per row) and reduced (per column) are optional.
func NewResult(am *arrays.ArrayModel, status Status, x, duals, reduced []float64) (*Result, error) {
	res := &Result{Status: status}
	if x != nil {
		obj, err := am.ObjectiveValue(x)
		if err != nil {
			return nil, err
		}
		slack, err := am.Slacks(x)
		if err != nil {
			return nil, err
		}
		res.Objective = &obj
		res.Values = byName(am.VarNames, x)
		res.Slacks = byName(am.ConstraintNames, slack)
	}
	if duals != nil {
		if len(duals) != am.NumConstraints() {
			return nil, fmt.Errorf("%w: %d duals for %d rows", arrays.ErrDimensionMismatch, len(duals), am.NumConstraints())
		}
		res.Duals = byName(am.ConstraintNames, duals)
	}
	if reduced != nil {
		if len(reduced) != am.NumVariables() {
			return nil, fmt.Errorf("%w: %d reduced costs for %d columns", arrays.ErrDimensionMismatch, len(reduced), am.NumVariables())
		}
		res.ReducedCosts = byName(am.VarNames, reduced)
	}

	return res, nil
}

func byName(names []string, v []float64) map[string]float64 {
	out := make(map[string]float64, len(names))
	for i, n := range names {
		out[n] = v[i]
	}

	return out
}
