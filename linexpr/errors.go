// SPDX-License-Identifier: MIT

package linexpr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned for an empty or blank expression.
	ErrEmpty = errors.New("linexpr: empty expression")

	// ErrInvalidTerm signals a token sequence that is not a valid term.
	ErrInvalidTerm = errors.New("linexpr: invalid term")

	// ErrNoContent signals an expression with no surviving variable and a zero constant.
	ErrNoContent = errors.New("linexpr: expression has no variables and no constant")
)

// SyntaxError describes where and why an expression failed to parse.
//   - Column is 1-based and counts runes of the input.
//   - Term is the text of the offending term, when one was started.
//   - Expected names the form the scanner was looking for.
type SyntaxError struct {
	Expr     string
	Column   int
	Term     string
	Expected string
	Err      error
}

// Error implements error. Column is left out when it is 0 (no single position).
func (e *SyntaxError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Expr)
	}
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Term != "" {
		fmt.Fprintf(&b, " %q", e.Term)
	}
	if e.Column > 0 {
		fmt.Fprintf(&b, " at column %d", e.Column)
	}
	fmt.Fprintf(&b, " of %q: expected %s", e.Expr, e.Expected)

	return b.String()
}

// Unwrap exposes the sentinel for errors.Is.
func (e *SyntaxError) Unwrap() error { return e.Err }
