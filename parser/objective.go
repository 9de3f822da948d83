// SPDX-License-Identifier: MIT

package parser

import (
	"fmt"

	"github.com/katalvlaran/lvlp/model"
)

// buildObjective validates objective rows against the declared variables.
// The first row fixes the sense; every later row must agree.
func buildObjective(path, varsPath string, rows []objectiveRow, m *model.Model) (model.Objective, error) {
	obj := model.Objective{Coeffs: make(map[string]float64, len(rows))}
	senseLine := 0

	for _, r := range rows {
		if r.name == "" {
			return model.Objective{}, fail(path, r.line, "var", ErrEmptyName, "variable name is empty")
		}
		if !m.HasVariable(r.name) {
			return model.Objective{}, fail(path, r.line, "var", ErrUnknownVariable,
				fmt.Sprintf("variable %q is not declared in %s", r.name, varsPath))
		}
		coeff, err := parseReal(path, r.line, "coeff", r.coeff)
		if err != nil {
			return model.Objective{}, err
		}

		// Absent or unrecognized senses default to min.
		sense, _ := model.ParseSense(r.sense)
		if senseLine == 0 {
			obj.Sense, senseLine = sense, r.line
		} else if sense != obj.Sense {
			return model.Objective{}, fail(path, r.line, "sense", ErrMixedSense,
				fmt.Sprintf("sense %q differs from %q on line %d; all rows must be min or all max",
					sense, obj.Sense, senseLine))
		}

		if _, dup := obj.Coeffs[r.name]; dup {
			return model.Objective{}, fail(path, r.line, "var", ErrDuplicateVariable,
				fmt.Sprintf("variable %q appears more than once in the objective", r.name))
		}
		obj.Coeffs[r.name] = coeff
	}
	if len(obj.Coeffs) == 0 {
		return model.Objective{}, fail(path, 0, "", ErrEmptyTable, "objective has no terms")
	}

	return obj, nil
}
