// SPDX-License-Identifier: MIT

package arrays

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a contract breach between the parser and the builder:
// the Model handed over does not satisfy the invariants a parsed Model has.
// It is never a user-input error; see parser.ParseError for those.
var ErrInvariant = errors.New("arrays: internal invariant violated")

// ErrDimensionMismatch is returned by evaluation helpers for a vector whose
// length differs from the variable count.
var ErrDimensionMismatch = errors.New("arrays: dimension mismatch")

// InternalError carries the operation and detail of an invariant breach.
type InternalError struct {
	Op     string
	Detail string
}

// Error implements error.
func (e *InternalError) Error() string {
	return fmt.Sprintf("arrays.%s: %v: %s", e.Op, ErrInvariant, e.Detail)
}

// Unwrap makes errors.Is(err, ErrInvariant) true.
func (e *InternalError) Unwrap() error { return ErrInvariant }

func invariantf(op, format string, args ...any) *InternalError {
	return &InternalError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
