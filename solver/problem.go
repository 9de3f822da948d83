// SPDX-License-Identifier: MIT

package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlp/arrays"
	"github.com/katalvlaran/lvlp/model"
)

// Problem is the normalized, backend-neutral form of an array model:
//
//	optimize    ColCosts · x
//	subject to  RowLower ≤ A·x ≤ RowUpper
//	            ColLower ≤ x   ≤ ColUpper
//
// with binary bounds already forced to [0,1] and unset bounds as ±Inf.
type Problem struct {
	Maximize    bool
	ColCosts    []float64
	ColLower    []float64
	ColUpper    []float64
	RowLower    []float64
	RowUpper    []float64
	A           *mat.Dense
	Integrality []bool
}

// NewProblem normalizes am. It fails only if am breaks its own invariants.
func NewProblem(am *arrays.ArrayModel) (*Problem, error) {
	if am == nil {
		return nil, ErrNilModel
	}
	if err := am.Validate(); err != nil {
		return nil, err
	}

	n, r := am.NumVariables(), am.NumConstraints()
	p := &Problem{
		Maximize:    am.Sense == model.Maximize,
		ColCosts:    append([]float64(nil), am.Objective...),
		RowLower:    make([]float64, r),
		RowUpper:    make([]float64, r),
		A:           mat.DenseCopyOf(am.A),
		Integrality: make([]bool, n),
	}
	p.ColLower, p.ColUpper = EffectiveBounds(am)
	for i := 0; i < r; i++ {
		p.RowLower[i], p.RowUpper[i] = RowBounds(am.Ops[i], am.RHS[i])
	}
	for j, k := range am.Kinds {
		p.Integrality[j] = k != model.Continuous
	}

	return p, nil
}

// HasIntegers reports whether any column is integer or binary.
func (p *Problem) HasIntegers() bool {
	for _, b := range p.Integrality {
		if b {
			return true
		}
	}

	return false
}
