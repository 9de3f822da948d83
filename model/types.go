// SPDX-License-Identifier: MIT

// Package model - validated in-memory LP/MILP model.
//
// Purpose:
//   - Hold the result of parsing: variables (insertion-ordered), one objective,
//     and an ordered sequence of constraints with every reference resolved.
//   - Keep declared data verbatim (bounds, requested names, raw right-hand sides)
//     so later stages and diagnostics can see what the input actually said.
//
// Ownership:
//   - A Model is built once by the parser and then handed to arrays.Build.
//     Nothing in this package mutates a Model after AddVariable/AddConstraint.
package model

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the admissible value domain of a variable.
type Kind int

const (
	// Continuous variables take any real value within bounds.
	Continuous Kind = iota
	// Integer variables take integral values within bounds.
	Integer
	// Binary variables take values in {0,1}; see solver.EffectiveBounds.
	Binary
)

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind recognizes a kind from its case-insensitive synonyms.
// ok is false when s is empty or not a known synonym.
func ParseKind(s string) (k Kind, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "continuous", "real", "cont":
		return Continuous, true
	case "integer", "int":
		return Integer, true
	case "binary", "bin", "bool":
		return Binary, true
	}

	return Continuous, false
}

// Sense is the optimization direction of the objective.
type Sense int

const (
	// Minimize is the default sense.
	Minimize Sense = iota
	// Maximize the objective.
	Maximize
)

// String returns "min" or "max".
func (s Sense) String() string {
	if s == Maximize {
		return "max"
	}

	return "min"
}

// ParseSense recognizes min/minimize and max/maximize, case-insensitively.
func ParseSense(s string) (sense Sense, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimize":
		return Minimize, true
	case "max", "maximize":
		return Maximize, true
	}

	return Minimize, false
}

// Operator is the comparison of a constraint row.
type Operator int

const (
	// LessEqual is lhs <= rhs.
	LessEqual Operator = iota
	// GreaterEqual is lhs >= rhs.
	GreaterEqual
	// Equal is lhs == rhs.
	Equal
)

// String returns the ASCII spelling of the operator.
func (o Operator) String() string {
	switch o {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "=="
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// ParseOperator accepts <=, >=, == and their common spellings (≤, ≥, =<, =>, =).
func ParseOperator(s string) (op Operator, ok bool) {
	switch strings.TrimSpace(s) {
	case "<=", "≤", "=<":
		return LessEqual, true
	case ">=", "≥", "=>":
		return GreaterEqual, true
	case "==", "=":
		return Equal, true
	}

	return LessEqual, false
}

// Bound is an optional real. The zero value is "unset", which for an upper
// bound means unbounded above. It never carries an infinity sentinel.
type Bound struct {
	Value float64
	Set   bool
}

// Bounded returns a set Bound holding v.
func Bounded(v float64) Bound { return Bound{Value: v, Set: true} }

// Unbounded returns the unset Bound.
func Unbounded() Bound { return Bound{} }

// Float returns Value when set and def otherwise.
func (b Bound) Float(def float64) float64 {
	if b.Set {
		return b.Value
	}

	return def
}

// String renders the bound; unset prints as "inf".
func (b Bound) String() string {
	if !b.Set {
		return "inf"
	}

	return fmt.Sprintf("%g", b.Value)
}

// Variable is one declared decision variable.
//   - Lower defaults to 0; it may be -Inf for a variable free below.
//   - Upper unset means unbounded above.
//   - Line is the 1-based source line in the variables table (0 if built in code).
type Variable struct {
	Name  string
	Lower float64
	Upper Bound
	Kind  Kind
	Line  int
}

// Objective is the linear objective: sense plus one coefficient per variable.
type Objective struct {
	Sense  Sense
	Coeffs map[string]float64
}

// Constraint is one linear row in canonical "variables on the left" form.
//
// RHS already has the left-hand side constant migrated: RHS = RawRHS - MovedConstant.
type Constraint struct {
	Name          string // unique across the model
	RequestedName string // name as written (or generated c_<line>)
	Op            Operator
	RHS           float64
	RawRHS        float64
	MovedConstant float64
	Coeffs        map[string]float64
	Expr          string // raw left-hand side text
	Line          int
}

// Renamed reports whether the constraint was suffixed to make its name unique.
func (c Constraint) Renamed() bool { return c.Name != c.RequestedName }

// Activity evaluates the left-hand side for the given variable values.
// Variables absent from values count as zero.
func (c Constraint) Activity(values map[string]float64) float64 {
	var sum float64
	for name, coeff := range c.Coeffs {
		sum += coeff * values[name]
	}

	return sum
}

// Satisfied reports whether values satisfy the row within tol.
func (c Constraint) Satisfied(values map[string]float64, tol float64) bool {
	lhs := c.Activity(values)
	switch c.Op {
	case LessEqual:
		return lhs <= c.RHS+tol
	case GreaterEqual:
		return lhs >= c.RHS-tol
	default:
		return math.Abs(lhs-c.RHS) <= tol
	}
}
