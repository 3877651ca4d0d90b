// SPDX-License-Identifier: MIT

// Package numeric - precision Context and exact-decimal arithmetic.
//
// Purpose:
//   - Describe "how many significant digits, rounded how" as a plain value.
//   - Run Mul/Quo under that description with apd's full exponent range.
//
// Complexity quicksheet:
//   - Validate: O(1); Mul: O(p²); Quo: O(p²) where p is Precision.

package numeric

import (
	"github.com/cockroachdb/apd/v3"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant digits of DECIMAL128.
	DefaultPrecision uint32 = 34

	// DefaultRounding is banker's rounding, the DECIMAL128 rounding mode.
	DefaultRounding = apd.RoundHalfEven
)

// Context is an immutable precision description for exact arithmetic.
//   - Precision is the number of significant digits kept by rounding (>=1).
//   - Rounding is one of apd's rounding modes.
type Context struct {
	Precision uint32      // significant digits
	Rounding  apd.Rounder // rounding mode applied to inexact results
}

// DefaultContext returns the DECIMAL128-like context: 34 digits, half-even.
// Complexity: O(1).
func DefaultContext() Context {
	return Context{Precision: DefaultPrecision, Rounding: DefaultRounding}
}

// roundings lists the modes accepted by Validate.
var roundings = map[apd.Rounder]struct{}{
	apd.RoundDown:     {},
	apd.RoundHalfUp:   {},
	apd.RoundHalfEven: {},
	apd.RoundCeiling:  {},
	apd.RoundFloor:    {},
	apd.RoundHalfDown: {},
	apd.RoundUp:       {},
	apd.Round05Up:     {},
}

// Validate reports ErrInvalidContext for zero precision or an unknown rounding mode.
// Complexity: O(1).
func (c Context) Validate() error {
	if c.Precision == 0 {
		return numericErrorf("Validate", ErrInvalidContext)
	}
	if _, ok := roundings[c.Rounding]; !ok {
		return numericErrorf("Validate", ErrInvalidContext)
	}

	return nil
}

// toAPD materializes an *apd.Context with the full exponent range and default traps.
func (c Context) toAPD() *apd.Context {
	return &apd.Context{
		Precision:   c.Precision,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    c.Rounding,
	}
}

// Mul returns a*b rounded to the context.
// MAIN DESCRIPTION:
//   - Exact product, then a single rounding to Precision digits.
//
// Errors:
//   - ErrInvalidContext; apd trap errors (overflow/underflow) wrapped with ErrArithmetic.
//
// Complexity:
//   - Time O(p²), Space O(p).
func (c Context) Mul(a, b *apd.Decimal) (*apd.Decimal, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := new(apd.Decimal)
	if _, err := c.toAPD().Mul(out, a, b); err != nil {
		return nil, numericErrorf("Mul", joinArithmetic(err))
	}

	return out, nil
}

// Quo returns a/b rounded to the context.
// MAIN DESCRIPTION:
//   - Exact-decimal division; the divisor is checked for zero before apd runs.
//
// Errors:
//   - ErrDivisionByZero when b is exactly zero (including 0/0).
//   - ErrInvalidContext; other apd trap errors wrapped with ErrArithmetic.
//
// Complexity:
//   - Time O(p²), Space O(p).
func (c Context) Quo(a, b *apd.Decimal) (*apd.Decimal, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if b.Form == apd.Finite && b.IsZero() {
		return nil, numericErrorf("Quo", ErrDivisionByZero)
	}
	out := new(apd.Decimal)
	if _, err := c.toAPD().Quo(out, a, b); err != nil {
		return nil, numericErrorf("Quo", joinArithmetic(err))
	}

	return out, nil
}

// Round returns x rounded to the context (x itself is not modified).
// Complexity: O(p).
func (c Context) Round(x *apd.Decimal) (*apd.Decimal, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := new(apd.Decimal)
	if _, err := c.toAPD().Round(out, x); err != nil {
		return nil, numericErrorf("Round", joinArithmetic(err))
	}

	return out, nil
}

// arithmeticError keeps apd's message while matching ErrArithmetic.
type arithmeticError struct{ cause error }

func (e arithmeticError) Error() string { return ErrArithmetic.Error() + ": " + e.cause.Error() }

func (e arithmeticError) Unwrap() []error { return []error{ErrArithmetic, e.cause} }

// joinArithmetic tags an apd condition error as an arithmetic failure.
func joinArithmetic(err error) error {
	return arithmeticError{cause: err}
}
