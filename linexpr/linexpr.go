// SPDX-License-Identifier: MIT

// Package linexpr parses the restricted affine expressions used on the
// left-hand side of constraints, e.g. "2*x + y - 3" or "−x + 1.5e-3 z".
//
// Grammar (whitespace is free between tokens):
//
//	expr   := term { sign term }
//	term   := sign* ( number ['*'] ident | ident | number )
//	sign   := '+' | '-'            (U+2212 is read as '-')
//	number := digits ['.' digits] [('e'|'E') ['+'|'-'] digits]
//	ident  := [A-Za-z_][A-Za-z0-9_]*
//
// Consecutive signs compose, so "x - -3" is x + 3. There are no parentheses,
// no functions and no products of two variables.
package linexpr

import (
	"math"
	"strconv"
	"strings"
)

// Term is one variable with its summed coefficient.
type Term struct {
	Var   string
	Coeff float64
}

// Expr is a parsed expression: variable terms in first-appearance order,
// with repeated variables summed and exact zeros dropped, plus the sum of
// all bare constants.
type Expr struct {
	Terms    []Term
	Constant float64
}

// Coeffs returns the terms as a name→coefficient map.
func (e Expr) Coeffs() map[string]float64 {
	out := make(map[string]float64, len(e.Terms))
	for _, t := range e.Terms {
		out[t.Var] = t.Coeff
	}

	return out
}

// Vars returns the variable names in first-appearance order.
func (e Expr) Vars() []string {
	out := make([]string, len(e.Terms))
	for i, t := range e.Terms {
		out[i] = t.Var
	}

	return out
}

// Parse tokenizes and accumulates s.
// Errors are *SyntaxError wrapping ErrEmpty, ErrInvalidTerm or ErrNoContent.
func Parse(s string) (Expr, error) {
	if strings.TrimSpace(s) == "" {
		return Expr{}, &SyntaxError{Expr: s, Err: ErrEmpty}
	}

	sc := scanner{raw: s, src: []rune(strings.ReplaceAll(s, "\u2212", "-"))}
	acc := accumulator{index: make(map[string]int)}

	for first := true; ; first = false {
		sc.skipSpace()
		if sc.eof() {
			break
		}
		if err := sc.term(&acc, first); err != nil {
			return Expr{}, err
		}
	}

	e := acc.result()
	for _, t := range e.Terms {
		if !finite(t.Coeff) {
			return Expr{}, &SyntaxError{Expr: s, Term: t.Var, Expected: "finite sum of coefficients", Err: ErrInvalidTerm}
		}
	}
	if !finite(e.Constant) {
		return Expr{}, &SyntaxError{Expr: s, Expected: "finite sum of constants", Err: ErrInvalidTerm}
	}
	if len(e.Terms) == 0 && e.Constant == 0 {
		return Expr{}, &SyntaxError{Expr: s, Err: ErrNoContent}
	}

	return e, nil
}

// accumulator sums coefficients per variable, keeping first-appearance order.
type accumulator struct {
	terms    []Term
	index    map[string]int
	constant float64
}

func (a *accumulator) addVar(name string, coeff float64) {
	if i, ok := a.index[name]; ok {
		a.terms[i].Coeff += coeff
		return
	}
	a.index[name] = len(a.terms)
	a.terms = append(a.terms, Term{Var: name, Coeff: coeff})
}

func (a *accumulator) result() Expr {
	kept := make([]Term, 0, len(a.terms))
	for _, t := range a.terms {
		if t.Coeff != 0 {
			kept = append(kept, t)
		}
	}

	return Expr{Terms: kept, Constant: a.constant}
}

// scanner walks the normalized rune slice. pos is a rune index.
type scanner struct {
	raw string
	src []rune
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}

	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// fail builds a SyntaxError for the term that started at start.
func (s *scanner) fail(start int, expected string) error {
	return &SyntaxError{
		Expr:     s.raw,
		Column:   s.pos + 1,
		Term:     strings.TrimSpace(string(s.src[start:s.pos])),
		Expected: expected,
		Err:      ErrInvalidTerm,
	}
}

// term consumes one signed term and folds it into acc.
func (s *scanner) term(acc *accumulator, first bool) error {
	start := s.pos

	sign, n := 1.0, 0
	for ; !s.eof(); s.pos++ {
		c := s.peek()
		if c == '-' {
			sign = -sign
			n++
		} else if c == '+' {
			n++
		} else if !isSpace(c) {
			break
		}
	}
	if !first && n == 0 {
		return s.fail(start, "'+' or '-' between terms")
	}
	if s.eof() {
		return s.fail(start, "number or variable after sign")
	}

	coeff, hasNum, err := s.number(start)
	if err != nil {
		return err
	}
	s.skipSpace()

	star := false
	if s.peek() == '*' {
		if !hasNum {
			return s.fail(start, "coefficient before '*'")
		}
		s.pos++
		star = true
		s.skipSpace()
	}

	name := s.ident()
	switch {
	case name != "":
		if !hasNum {
			coeff = 1
		}
		acc.addVar(name, sign*coeff)
	case star:
		return s.fail(start, "variable after '*'")
	case hasNum:
		acc.constant += sign * coeff
	default:
		s.pos++ // include the offending rune in the reported term
		return s.fail(start, "number or variable")
	}

	return nil
}

// number scans an optional unsigned numeric literal.
func (s *scanner) number(start int) (float64, bool, error) {
	from := s.pos
	digits := 0
	for !s.eof() && isDigit(s.peek()) {
		s.pos++
		digits++
	}
	if s.peek() == '.' {
		s.pos++
		for !s.eof() && isDigit(s.peek()) {
			s.pos++
			digits++
		}
	}
	if digits == 0 {
		if s.pos > from {
			return 0, false, s.fail(start, "digits in numeric literal")
		}
		return 0, false, nil
	}
	// Exponent only when a digit follows; otherwise 'e' starts an identifier.
	if c := s.peek(); c == 'e' || c == 'E' {
		j := s.pos + 1
		if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
			j++
		}
		if j < len(s.src) && isDigit(s.src[j]) {
			s.pos = j
			for !s.eof() && isDigit(s.peek()) {
				s.pos++
			}
		}
	}

	v, err := strconv.ParseFloat(string(s.src[from:s.pos]), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false, s.fail(start, "finite real coefficient")
	}

	return v, true, nil
}

// ident scans an optional identifier.
func (s *scanner) ident() string {
	if s.eof() || !isIdentStart(s.peek()) {
		return ""
	}
	from := s.pos
	for !s.eof() && isIdentPart(s.peek()) {
		s.pos++
	}

	return string(s.src[from:s.pos])
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }
