// SPDX-License-Identifier: MIT
// Package parser: sentinel error set and the ParseError carrier.
//
// Every failure leaving ParseDir is a *ParseError. Its Err field holds one of
// the sentinels below (possibly joined with the low-level cause), so callers
// match with errors.Is and read File/Line/Field with errors.As.

package parser

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrDirNotFound is returned when the input directory does not exist.
	ErrDirNotFound = errors.New("parser: directory not found")

	// ErrFileNotFound is returned when a required table file is missing.
	ErrFileNotFound = errors.New("parser: file not found")

	// ErrUnreadable wraps I/O failures while opening or reading a table.
	ErrUnreadable = errors.New("parser: file unreadable")

	// ErrMalformedCSV wraps delimiter-separated syntax errors.
	ErrMalformedCSV = errors.New("parser: malformed table")

	// ErrMissingColumns is returned when the header omits a required field.
	ErrMissingColumns = errors.New("parser: missing required columns")

	// ErrEmptyName is returned for a blank variable name.
	ErrEmptyName = errors.New("parser: empty name")

	// ErrDuplicateVariable is returned for a variable declared twice, or
	// appearing twice in the objective.
	ErrDuplicateVariable = errors.New("parser: duplicate variable")

	// ErrUnknownVariable is returned for a reference to an undeclared variable.
	ErrUnknownVariable = errors.New("parser: undeclared variable")

	// ErrBadNumber is returned for a field that does not hold an admissible real.
	ErrBadNumber = errors.New("parser: invalid number")

	// ErrBoundOrder is returned when up < low.
	ErrBoundOrder = errors.New("parser: upper bound below lower bound")

	// ErrMixedSense is returned when objective rows disagree on min/max.
	ErrMixedSense = errors.New("parser: inconsistent objective sense")

	// ErrBadOperator is returned for an unrecognized constraint operator.
	ErrBadOperator = errors.New("parser: invalid constraint operator")

	// ErrBadExpression wraps a *linexpr.SyntaxError for a constraint expression.
	ErrBadExpression = errors.New("parser: invalid expression")

	// ErrEmptyTable is returned when a table yields no variables, objective
	// terms or constraints.
	ErrEmptyTable = errors.New("parser: empty table")
)

// ParseError identifies the offending file, 1-based line (header is line 1),
// field and reason. Line 0 and Field "" mean "not applicable".
type ParseError struct {
	File  string
	Line  int
	Field string
	Msg   string
	Err   error
}

// Error renders "<file>:<line>: <field>: <msg>".
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.File)
	if e.Line > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Line))
	}
	b.WriteString(": ")
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else if e.Err != nil {
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes the sentinel (and any joined cause).
func (e *ParseError) Unwrap() error { return e.Err }

// fail is the single constructor used by every validation site.
func fail(file string, line int, field string, err error, msg string) *ParseError {
	return &ParseError{File: file, Line: line, Field: field, Msg: msg, Err: err}
}
