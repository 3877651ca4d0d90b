// SPDX-License-Identifier: MIT

// Package calc applies a scalar to every element of a matrix: multiply or
// divide each cell of a source matrix by one scalar and write the results
// into a target matrix of the same shape.
//
// What & Why:
//
//	Matrices come in several representations (see package matrix). calc
//	picks, once per call and before any element is touched, the cheapest
//	code path both operands support. The choice is made from the
//	intersection of their capability tags (matrix.Caps):
//
//	  both Dense                 -> dense levels below, else
//	  both Sparse                -> source's available coordinates only, else
//	  anything                   -> every coordinate, exact decimal
//
//	  both Dense, not 2D         -> every coordinate, exact decimal
//	  both Dense2D, not Float64  -> rows then columns descending, exact decimal
//	  both Dense2D and Float64   -> scalar converted to float64 once, then
//	      both RowArray          -> raw rows, parallel for ≥100×100 and Threads > 1
//	      both FlatArray         -> raw flat buffer, sequential
//	      otherwise              -> per-cell float64 loop
//
//	Plan reports the path without running it.
//
// Precision:
//
//	Exact paths run under a numeric.Context (default 34 digits, half-even).
//	A float64 scalar is coerced into that context once per call. Float
//	paths trade precision for throughput and are only chosen when both
//	matrices declare float64 storage.
//
// Division by zero:
//
//	Exact paths fail with numeric.ErrDivisionByZero at the first coordinate;
//	cells written before it keep their new values. Float paths never fail:
//	they produce ±Inf or NaN following IEEE-754.
//
// Configuration:
//
//	WithThreads, WithPrecision, WithRounding and WithContext are resolved
//	once at the start of a call and read-only while it runs.
package calc
