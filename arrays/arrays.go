// SPDX-License-Identifier: MIT

// Package arrays - dense, index-aligned projection of a validated model.
//
// Purpose:
//   - Fix one canonical column order (the model's variable insertion order)
//     and express objective, bounds, kinds and constraint rows against it.
//   - Hand a solver plain vectors plus a gonum *mat.Dense it can trust blindly.
//
// Determinism & Policy:
//   - Column j is the j-th declared variable; row i is the i-th constraint.
//   - Unreferenced (row, column) cells stay 0.
//   - An absent upper bound stays model.Bound{Set: false}; no +Inf is invented here.
//   - Build performs no user-facing validation. A Model that breaks the parser's
//     invariants yields *InternalError (ErrInvariant), never a parse error.
package arrays

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlp/model"
)

// ArrayModel is the solver-facing form. All per-variable slices have length
// NumVariables(); all per-constraint slices have length NumConstraints();
// A is NumConstraints()×NumVariables().
type ArrayModel struct {
	VarNames []string
	VarIndex map[string]int

	Sense     model.Sense
	Objective []float64

	Lower []float64
	Upper []model.Bound
	Kinds []model.Kind

	A               *mat.Dense
	Ops             []model.Operator
	RHS             []float64
	ConstraintNames []string
}

// Build projects m onto dense arrays.
// Complexity: O(n + r·n) time and memory for n variables and r constraints.
func Build(m *model.Model) (*ArrayModel, error) {
	if m == nil {
		return nil, invariantf("Build", "nil model")
	}
	n, r := m.NumVariables(), m.NumConstraints()
	if n == 0 || r == 0 {
		return nil, invariantf("Build", "model has %d variables and %d constraints; both must be > 0", n, r)
	}

	am := &ArrayModel{
		VarNames:        make([]string, n),
		VarIndex:        make(map[string]int, n),
		Sense:           m.Objective.Sense,
		Objective:       make([]float64, n),
		Lower:           make([]float64, n),
		Upper:           make([]model.Bound, n),
		Kinds:           make([]model.Kind, n),
		A:               mat.NewDense(r, n, nil),
		Ops:             make([]model.Operator, r),
		RHS:             make([]float64, r),
		ConstraintNames: make([]string, r),
	}

	// Stage 1: columns.
	for j, v := range m.Variables() {
		am.VarNames[j] = v.Name
		am.VarIndex[v.Name] = j
		am.Lower[j] = v.Lower
		am.Upper[j] = v.Upper
		am.Kinds[j] = v.Kind
	}

	// Stage 2: objective.
	for _, name := range slices.Sorted(maps.Keys(m.Objective.Coeffs)) {
		j, ok := am.VarIndex[name]
		if !ok {
			return nil, invariantf("Build", "objective references unknown variable %q", name)
		}
		am.Objective[j] = m.Objective.Coeffs[name]
	}

	// Stage 3: rows.
	for i, c := range m.Constraints() {
		am.Ops[i] = c.Op
		am.RHS[i] = c.RHS
		am.ConstraintNames[i] = c.Name
		for _, name := range slices.Sorted(maps.Keys(c.Coeffs)) {
			j, ok := am.VarIndex[name]
			if !ok {
				return nil, invariantf("Build", "constraint %q references unknown variable %q", c.Name, name)
			}
			am.A.Set(i, j, c.Coeffs[name])
		}
	}

	if err := am.Validate(); err != nil {
		return nil, err
	}

	return am, nil
}

// NumVariables returns the column count.
func (am *ArrayModel) NumVariables() int { return len(am.VarNames) }

// NumConstraints returns the row count.
func (am *ArrayModel) NumConstraints() int { return len(am.ConstraintNames) }

// Validate re-checks every dimension invariant and the name↔index bijection.
func (am *ArrayModel) Validate() error {
	const op = "Validate"
	n, r := len(am.VarNames), len(am.ConstraintNames)

	for _, l := range []struct {
		what string
		got  int
	}{
		{"objective", len(am.Objective)},
		{"lower bounds", len(am.Lower)},
		{"upper bounds", len(am.Upper)},
		{"kinds", len(am.Kinds)},
	} {
		if l.got != n {
			return invariantf(op, "%s has length %d, want %d", l.what, l.got, n)
		}
	}
	if len(am.Ops) != r || len(am.RHS) != r {
		return invariantf(op, "operators/rhs have lengths %d/%d, want %d", len(am.Ops), len(am.RHS), r)
	}
	if am.A == nil {
		return invariantf(op, "nil coefficient matrix")
	}
	if ar, ac := am.A.Dims(); ar != r || ac != n {
		return invariantf(op, "matrix is %d×%d, want %d×%d", ar, ac, r, n)
	}
	if len(am.VarIndex) != n {
		return invariantf(op, "index has %d entries for %d variables", len(am.VarIndex), n)
	}
	for j, name := range am.VarNames {
		if got, ok := am.VarIndex[name]; !ok || got != j {
			return invariantf(op, "variable %q at column %d is indexed as %d", name, j, got)
		}
	}

	return nil
}

// Row returns a copy of constraint row i.
func (am *ArrayModel) Row(i int) []float64 {
	return mat.Row(nil, i, am.A)
}

// Column returns the index of a variable name.
func (am *ArrayModel) Column(name string) (int, bool) {
	j, ok := am.VarIndex[name]

	return j, ok
}
