// SPDX-License-Identifier: MIT

package parser

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/lvlp/linexpr"
	"github.com/katalvlaran/lvlp/model"
)

// nameSet tracks constraint names issued during one pass.
type nameSet map[string]struct{}

// claim returns requested if free, else requested#2, requested#3, ...
// The returned name is recorded as taken.
func (s nameSet) claim(requested string) string {
	name := requested
	for k := 2; ; k++ {
		if _, taken := s[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s#%d", requested, k)
	}
	s[name] = struct{}{}

	return name
}

// addConstraints validates constraint rows, migrates left-hand side constants
// and appends the rows to m in file order.
func addConstraints(path, varsPath string, rows []constraintRow, m *model.Model, log logr.Logger) error {
	seen := make(nameSet, len(rows))

	for _, r := range rows {
		requested := r.name
		if requested == "" {
			requested = fmt.Sprintf("c_%d", r.line)
		}
		name := seen.claim(requested)
		if name != requested {
			log.Info("duplicate constraint name renamed",
				"file", path, "line", r.line, "requested", requested, "name", name)
		}

		op, ok := model.ParseOperator(r.sense)
		if !ok {
			return fail(path, r.line, "sense", ErrBadOperator,
				fmt.Sprintf("expected one of <=, >=, == (or ≤, ≥), got %q", r.sense))
		}
		rhs, err := parseReal(path, r.line, "rhs", r.rhs)
		if err != nil {
			return err
		}

		e, err := linexpr.Parse(r.expr)
		if err != nil {
			return fail(path, r.line, "expr", fmt.Errorf("%w: %w", ErrBadExpression, err), err.Error())
		}
		for _, v := range e.Vars() {
			if !m.HasVariable(v) {
				return fail(path, r.line, "expr", ErrUnknownVariable,
					fmt.Sprintf("variable %q used in %q is not declared in %s", v, r.expr, varsPath))
			}
		}
		moved := rhs - e.Constant
		if math.IsInf(moved, 0) || math.IsNaN(moved) {
			return fail(path, r.line, "rhs", ErrBadNumber,
				fmt.Sprintf("rhs %g minus left-hand side constant %g is not a finite number", rhs, e.Constant))
		}

		c := model.Constraint{
			Name:          name,
			RequestedName: requested,
			Op:            op,
			RHS:           moved,
			RawRHS:        rhs,
			MovedConstant: e.Constant,
			Coeffs:        e.Coeffs(),
			Expr:          r.expr,
			Line:          r.line,
		}
		if err = m.AddConstraint(c); err != nil {
			return fail(path, r.line, "name", err, err.Error())
		}
	}
	if m.NumConstraints() == 0 {
		return fail(path, 0, "", ErrEmptyTable, "no constraints provided")
	}

	return nil
}
