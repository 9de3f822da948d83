// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateVariable is returned by AddVariable for a name already present.
var ErrDuplicateVariable = errors.New("model: duplicate variable")

// ErrDuplicateConstraint is returned by AddConstraint for a name already present.
var ErrDuplicateConstraint = errors.New("model: duplicate constraint name")

// Model aggregates variables, the objective and constraints.
// Variables keep the order in which they were added; that order is the
// canonical column order used by arrays.Build.
type Model struct {
	variables   []Variable
	index       map[string]int
	Objective   Objective
	constraints []Constraint
	names       map[string]struct{}
}

// New returns an empty Model.
func New() *Model {
	return &Model{
		index: make(map[string]int),
		names: make(map[string]struct{}),
	}
}

// AddVariable appends v to the variable set.
func (m *Model) AddVariable(v Variable) error {
	if _, dup := m.index[v.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, v.Name)
	}
	m.index[v.Name] = len(m.variables)
	m.variables = append(m.variables, v)

	return nil
}

// AddConstraint appends c to the constraint sequence.
func (m *Model) AddConstraint(c Constraint) error {
	if _, dup := m.names[c.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateConstraint, c.Name)
	}
	m.names[c.Name] = struct{}{}
	m.constraints = append(m.constraints, c)

	return nil
}

// Variable looks a variable up by name.
func (m *Model) Variable(name string) (Variable, bool) {
	i, ok := m.index[name]
	if !ok {
		return Variable{}, false
	}

	return m.variables[i], true
}

// HasVariable reports whether name is declared.
func (m *Model) HasVariable(name string) bool {
	_, ok := m.index[name]

	return ok
}

// Variables returns the variables in insertion order. The slice is a copy.
func (m *Model) Variables() []Variable {
	out := make([]Variable, len(m.variables))
	copy(out, m.variables)

	return out
}

// VariableNames returns variable names in insertion order.
func (m *Model) VariableNames() []string {
	out := make([]string, len(m.variables))
	for i, v := range m.variables {
		out[i] = v.Name
	}

	return out
}

// Constraints returns the constraints in file order. The slice is a copy.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.constraints))
	copy(out, m.constraints)

	return out
}

// NumVariables returns the number of declared variables.
func (m *Model) NumVariables() int { return len(m.variables) }

// NumConstraints returns the number of constraints.
func (m *Model) NumConstraints() int { return len(m.constraints) }
