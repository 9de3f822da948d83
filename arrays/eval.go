// SPDX-License-Identifier: MIT

package arrays

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlp/model"
)

// Violation is one failed check of a candidate point.
type Violation struct {
	Name   string  // constraint or variable name
	Bound  bool    // true for a variable bound, false for a constraint row
	Amount float64 // how far outside, always > tol
}

// String renders the violation for logs.
func (v Violation) String() string {
	what := "row"
	if v.Bound {
		what = "bound"
	}

	return fmt.Sprintf("%s %s violated by %g", what, v.Name, v.Amount)
}

func (am *ArrayModel) checkLen(x []float64) error {
	if len(x) != am.NumVariables() {
		return fmt.Errorf("%w: point has %d values, model has %d variables",
			ErrDimensionMismatch, len(x), am.NumVariables())
	}

	return nil
}

// Activity returns A·x, the left-hand side value of every row.
func (am *ArrayModel) Activity(x []float64) ([]float64, error) {
	if err := am.checkLen(x); err != nil {
		return nil, err
	}
	var y mat.VecDense
	y.MulVec(am.A, mat.NewVecDense(len(x), x))

	out := make([]float64, am.NumConstraints())
	copy(out, y.RawVector().Data)

	return out, nil
}

// ObjectiveValue returns c·x.
func (am *ArrayModel) ObjectiveValue(x []float64) (float64, error) {
	if err := am.checkLen(x); err != nil {
		return 0, err
	}

	return floats.Dot(am.Objective, x), nil
}

// Slacks returns RHS - A·x per row. For <= rows a non-negative slack means
// satisfied; for >= rows a non-positive one does; == rows want zero.
func (am *ArrayModel) Slacks(x []float64) ([]float64, error) {
	act, err := am.Activity(x)
	if err != nil {
		return nil, err
	}
	s := make([]float64, len(am.RHS))
	floats.SubTo(s, am.RHS, act)

	return s, nil
}

// Violations lists every row and declared bound that x breaks by more than tol.
// Integrality is not checked.
func (am *ArrayModel) Violations(x []float64, tol float64) ([]Violation, error) {
	slack, err := am.Slacks(x)
	if err != nil {
		return nil, err
	}

	var out []Violation
	for i, s := range slack {
		var amount float64
		switch am.Ops[i] {
		case model.LessEqual:
			amount = -s
		case model.GreaterEqual:
			amount = s
		default:
			amount = math.Abs(s)
		}
		if amount > tol {
			out = append(out, Violation{Name: am.ConstraintNames[i], Amount: amount})
		}
	}
	for j, v := range x {
		if d := am.Lower[j] - v; d > tol {
			out = append(out, Violation{Name: am.VarNames[j], Bound: true, Amount: d})
		}
		if up := am.Upper[j]; up.Set {
			if d := v - up.Value; d > tol {
				out = append(out, Violation{Name: am.VarNames[j], Bound: true, Amount: d})
			}
		}
	}

	return out, nil
}
