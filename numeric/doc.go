// SPDX-License-Identifier: MIT

// Package numeric converts between float64 and exact decimal values and runs
// exact-decimal arithmetic under an explicit precision Context.
//
// What & Why:
//
//	Every layer of lvmat that must decide "how accurate must this operation
//	be" goes through this package. Exact values are *apd.Decimal
//	(github.com/cockroachdb/apd/v3); a Context carries the number of
//	significant digits and the rounding mode applied when a float64 scalar is
//	coerced into a decimal and when a product or quotient is rounded.
//
// Precision policy:
//
//	The Context is an immutable value. Callers resolve it once per operation
//	and pass it down; nothing in this package reads global state.
//
// Errors:
//
//	Quo fails with ErrDivisionByZero when the divisor is exactly zero.
//	Coercing NaN or ±Inf into a decimal fails with ErrNonFinite. Both match
//	ErrArithmetic via errors.Is.
//
// Complexity:
//
//	Conversions and arithmetic are O(p) to O(p²) in the precision p.
package numeric
