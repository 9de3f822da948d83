// SPDX-License-Identifier: MIT

// Package simplex is a pure-Go solver.Backend built on gonum's LP simplex.
//
// The array model is rewritten in general form
//
//	minimize   cᵀx
//	s.t.       G x ≤ h   (inequality rows and finite column bounds)
//	           A x = b   (equality rows)
//
// converted to standard form with lp.Convert and solved by lp.Simplex.
// Maximization is solved as minimization of -c.
//
// The backend is for continuous models. Integer and binary columns are
// rejected unless WithRelaxIntegrality is given, in which case the LP
// relaxation is solved (binary columns keep their [0,1] bounds). Duals and
// reduced costs are not reported.
package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvlp/arrays"
	"github.com/katalvlaran/lvlp/solver"
)

// DefaultTolerance is passed to lp.Simplex.
const DefaultTolerance = 1e-10

const panicTolInvalid = "simplex: WithTolerance: tol must be finite and non-negative"

var (
	// ErrIntegrality is returned for models with integer or binary columns
	// when relaxation was not requested.
	ErrIntegrality = errors.New("simplex: model has integer or binary variables")

	// ErrSolve wraps any other failure reported by lp.Simplex.
	ErrSolve = errors.New("simplex: solve failed")
)

// Option configures a Backend.
type Option func(*Options)

// Options is the effective Backend configuration.
type Options struct {
	tol   float64
	relax bool
}

// WithTolerance sets the simplex tolerance.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithRelaxIntegrality solves the LP relaxation of integer models.
func WithRelaxIntegrality() Option {
	return func(o *Options) { o.relax = true }
}

// Backend implements solver.Backend.
type Backend struct {
	opts Options
}

var _ solver.Backend = (*Backend)(nil)

// New returns a Backend.
func New(opts ...Option) *Backend {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return &Backend{opts: o}
}

// Solve implements solver.Backend. Infeasible and unbounded models return a
// Result with that status and a nil error.
func (b *Backend) Solve(ctx context.Context, am *arrays.ArrayModel) (*solver.Result, error) {
	p, err := solver.NewProblem(am)
	if err != nil {
		return nil, err
	}
	if p.HasIntegers() && !b.opts.relax {
		return nil, ErrIntegrality
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	c, g, h, a, rhs := generalForm(p)
	cNew, aNew, bNew := lp.Convert(c, g, h, a, rhs)

	_, xNew, err := lp.Simplex(cNew, aNew, bNew, b.opts.tol, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return solver.NewResult(am, solver.Infeasible, nil, nil, nil)
	case errors.Is(err, lp.ErrUnbounded):
		return solver.NewResult(am, solver.Unbounded, nil, nil, nil)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrSolve, err)
	}

	// Convert splits each free column into x⁺ - x⁻ ahead of the slacks.
	n := len(c)
	x := make([]float64, n)
	for j := range x {
		x[j] = xNew[j] - xNew[n+j]
	}

	return solver.NewResult(am, solver.Optimal, x, nil, nil)
}

// generalForm builds (c, G, h, A, b) from p. G or A is nil when it has no rows.
func generalForm(p *solver.Problem) (c []float64, g mat.Matrix, h []float64, a mat.Matrix, b []float64) {
	r, n := p.A.Dims()

	c = make([]float64, n)
	copy(c, p.ColCosts)
	if p.Maximize {
		floats.Scale(-1, c)
	}

	var gData, aData []float64
	for i := 0; i < r; i++ {
		row := mat.Row(nil, i, p.A)
		lo, hi := p.RowLower[i], p.RowUpper[i]
		if lo == hi {
			aData = append(aData, row...)
			b = append(b, hi)
			continue
		}
		if !math.IsInf(hi, 1) {
			gData = append(gData, row...)
			h = append(h, hi)
		}
		if !math.IsInf(lo, -1) {
			gData = append(gData, floats.ScaleTo(make([]float64, n), -1, row)...)
			h = append(h, -lo)
		}
	}
	for j := 0; j < n; j++ {
		if lo := p.ColLower[j]; !math.IsInf(lo, -1) {
			gData = append(gData, unit(n, j, -1)...)
			h = append(h, -lo)
		}
		if hi := p.ColUpper[j]; !math.IsInf(hi, 1) {
			gData = append(gData, unit(n, j, 1)...)
			h = append(h, hi)
		}
	}

	if len(h) > 0 {
		g = mat.NewDense(len(h), n, gData)
	}
	if len(b) > 0 {
		a = mat.NewDense(len(b), n, aData)
	}

	return c, g, h, a, b
}

func unit(n, j int, v float64) []float64 {
	out := make([]float64, n)
	out[j] = v

	return out
}
