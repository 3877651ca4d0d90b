// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
// Every message is prefixed with "numeric: ..." for consistent grepping.
// Arithmetic failures wrap ErrArithmetic so callers can match the whole
// family with a single errors.Is.

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrArithmetic is the parent of every exact-arithmetic failure.
	ErrArithmetic = errors.New("numeric: arithmetic error")

	// ErrDivisionByZero is returned by Quo when the divisor is exactly zero.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)

	// ErrNonFinite is returned when NaN or ±Inf is coerced into a decimal.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf has no decimal representation", ErrArithmetic)

	// ErrInvalidContext indicates a Context with zero precision or an unknown rounding mode.
	ErrInvalidContext = errors.New("numeric: invalid precision context")

	// ErrSyntax indicates a string that does not parse as a decimal.
	ErrSyntax = errors.New("numeric: invalid decimal syntax")
)

// numericErrorf attaches an operation tag to a sentinel or library error.
func numericErrorf(op string, err error) error {
	return fmt.Errorf("numeric.%s: %w", op, err)
}
