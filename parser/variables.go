// SPDX-License-Identifier: MIT

package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvlp/model"
)

// addVariables validates the variable rows and appends them to m in file order.
func addVariables(path string, rows []variableRow, m *model.Model) error {
	for _, r := range rows {
		if r.name == "" {
			return fail(path, r.line, "name", ErrEmptyName, "variable name is empty")
		}
		if m.HasVariable(r.name) {
			return fail(path, r.line, "name", ErrDuplicateVariable,
				fmt.Sprintf("variable %q is declared more than once", r.name))
		}

		// Unrecognized or absent kinds fall back to continuous.
		kind, _ := model.ParseKind(r.kt)

		low, err := parseLower(path, r.line, r.low)
		if err != nil {
			return err
		}
		up, err := parseUpper(path, r.line, r.up)
		if err != nil {
			return err
		}
		if up.Set && up.Value < low {
			return fail(path, r.line, "up", ErrBoundOrder,
				fmt.Sprintf("up (%g) < low (%g) for %q", up.Value, low, r.name))
		}

		v := model.Variable{Name: r.name, Lower: low, Upper: up, Kind: kind, Line: r.line}
		if err = m.AddVariable(v); err != nil {
			return fail(path, r.line, "name", ErrDuplicateVariable, err.Error())
		}
	}
	if m.NumVariables() == 0 {
		return fail(path, 0, "", ErrEmptyTable, "no variables declared")
	}

	return nil
}

// parseLower: empty ⇒ 0; -inf is accepted for variables free below.
func parseLower(path string, line int, raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 1) {
		return 0, fail(path, line, "low", ErrBadNumber,
			fmt.Sprintf("expected a real number or -inf, got %q", raw))
	}

	return v, nil
}

// parseUpper: empty or +inf ⇒ unset (unbounded above).
func parseUpper(path string, line int, raw string) (model.Bound, error) {
	if raw == "" {
		return model.Unbounded(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, -1) {
		return model.Bound{}, fail(path, line, "up", ErrBadNumber,
			fmt.Sprintf("expected a real number, inf or empty, got %q", raw))
	}
	if math.IsInf(v, 1) {
		return model.Unbounded(), nil
	}

	return model.Bounded(v), nil
}
