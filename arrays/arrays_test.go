// Package arrays_test checks the dense projection: column order, zero fill,
// explicit unbounded markers and the internal-invariant failure kind.
package arrays_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlp/arrays"
	"github.com/katalvlaran/lvlp/model"
)

// twoVarModel is x∈[0,10] continuous, y∈[0,∞) integer, max 3x+2y, c1: x+y<=4.
func twoVarModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New()
	require.NoError(t, m.AddVariable(model.Variable{Name: "x", Upper: model.Bounded(10)}))
	require.NoError(t, m.AddVariable(model.Variable{Name: "y", Kind: model.Integer}))
	m.Objective = model.Objective{Sense: model.Maximize, Coeffs: map[string]float64{"x": 3, "y": 2}}
	require.NoError(t, m.AddConstraint(model.Constraint{
		Name: "c1", RequestedName: "c1", Op: model.LessEqual, RHS: 4,
		Coeffs: map[string]float64{"x": 1, "y": 1},
	}))

	return m
}

func TestBuildTwoVariables(t *testing.T) {
	am, err := arrays.Build(twoVarModel(t))
	require.NoError(t, err)

	require.Equal(t, []string{"x", "y"}, am.VarNames)
	require.Equal(t, map[string]int{"x": 0, "y": 1}, am.VarIndex)
	require.Equal(t, model.Maximize, am.Sense)
	require.Equal(t, []float64{3, 2}, am.Objective)
	require.Equal(t, []float64{0, 0}, am.Lower)
	require.Equal(t, []model.Bound{model.Bounded(10), {}}, am.Upper)
	require.Equal(t, []model.Kind{model.Continuous, model.Integer}, am.Kinds)
	require.Equal(t, []float64{1, 1}, am.Row(0))
	require.Equal(t, []model.Operator{model.LessEqual}, am.Ops)
	require.Equal(t, []float64{4}, am.RHS)
	require.Equal(t, []string{"c1"}, am.ConstraintNames)
	require.NoError(t, am.Validate())

	j, ok := am.Column("y")
	require.True(t, ok)
	require.Equal(t, 1, j)
	_, ok = am.Column("z")
	require.False(t, ok)
}

// TestBuildZeroFillAndOrder: unreferenced cells are zero and columns follow
// insertion order, not name order.
func TestBuildZeroFillAndOrder(t *testing.T) {
	m := model.New()
	for _, name := range []string{"z", "a", "m"} {
		require.NoError(t, m.AddVariable(model.Variable{Name: name}))
	}
	m.Objective = model.Objective{Coeffs: map[string]float64{"m": -1}}
	require.NoError(t, m.AddConstraint(model.Constraint{Name: "r0", Op: model.Equal, RHS: 1, Coeffs: map[string]float64{"a": 2}}))
	require.NoError(t, m.AddConstraint(model.Constraint{Name: "r1", Op: model.GreaterEqual, RHS: -1, Coeffs: map[string]float64{"z": 1, "m": 5}}))

	am, err := arrays.Build(m)
	require.NoError(t, err)

	require.Equal(t, []string{"z", "a", "m"}, am.VarNames)
	require.Equal(t, []float64{0, 0, -1}, am.Objective)
	want := mat.NewDense(2, 3, []float64{
		0, 2, 0,
		1, 0, 5,
	})
	require.True(t, mat.Equal(want, am.A))

	// bijection names ↔ 0..n-1
	seen := make(map[int]bool)
	for name, j := range am.VarIndex {
		require.Equal(t, name, am.VarNames[j])
		seen[j] = true
	}
	require.Len(t, seen, am.NumVariables())
}

func TestBuildInvariantBreaches(t *testing.T) {
	_, err := arrays.Build(nil)
	require.ErrorIs(t, err, arrays.ErrInvariant)

	empty := model.New()
	require.NoError(t, empty.AddVariable(model.Variable{Name: "x"}))
	_, err = arrays.Build(empty)
	require.ErrorIs(t, err, arrays.ErrInvariant)

	ghost := twoVarModel(t)
	require.NoError(t, ghost.AddConstraint(model.Constraint{Name: "g", Coeffs: map[string]float64{"ghost": 1}}))
	_, err = arrays.Build(ghost)
	var ie *arrays.InternalError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, "Build", ie.Op)
	require.Contains(t, ie.Error(), `"ghost"`)

	ghostObj := twoVarModel(t)
	ghostObj.Objective.Coeffs["ghost"] = 1
	_, err = arrays.Build(ghostObj)
	require.ErrorIs(t, err, arrays.ErrInvariant)
}

func TestValidateDetectsTampering(t *testing.T) {
	am, err := arrays.Build(twoVarModel(t))
	require.NoError(t, err)

	am.Objective = am.Objective[:1]
	require.ErrorIs(t, am.Validate(), arrays.ErrInvariant)

	am, _ = arrays.Build(twoVarModel(t))
	am.VarIndex["x"] = 1
	require.ErrorIs(t, am.Validate(), arrays.ErrInvariant)

	am, _ = arrays.Build(twoVarModel(t))
	am.A = mat.NewDense(2, 2, nil)
	require.ErrorIs(t, am.Validate(), arrays.ErrInvariant)
}

func TestEvaluation(t *testing.T) {
	am, err := arrays.Build(twoVarModel(t))
	require.NoError(t, err)

	act, err := am.Activity([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{3}, act)

	obj, err := am.ObjectiveValue([]float64{4, 0})
	require.NoError(t, err)
	require.Equal(t, 12.0, obj)

	slack, err := am.Slacks([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{1}, slack)

	_, err = am.Activity([]float64{1})
	require.ErrorIs(t, err, arrays.ErrDimensionMismatch)
	require.False(t, errors.Is(err, arrays.ErrInvariant))
}

func TestViolations(t *testing.T) {
	am, err := arrays.Build(twoVarModel(t))
	require.NoError(t, err)

	v, err := am.Violations([]float64{4, 0}, 1e-9)
	require.NoError(t, err)
	require.Empty(t, v)

	v, err = am.Violations([]float64{11, -1}, 1e-9)
	require.NoError(t, err)
	require.Len(t, v, 3) // c1 (10 > 4), x above 10, y below 0
	require.Equal(t, "c1", v[0].Name)
	require.False(t, v[0].Bound)
	require.InDelta(t, 6.0, v[0].Amount, 1e-12)
	require.Equal(t, "x", v[1].Name)
	require.True(t, v[1].Bound)
	require.Equal(t, "y", v[2].Name)
	require.Contains(t, v[2].String(), "bound y")

	am.Lower[1] = math.Inf(-1)
	v, err = am.Violations([]float64{0, -100}, 1e-9)
	require.NoError(t, err)
	require.Empty(t, v)
}
