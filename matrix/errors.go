// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Representations MUST return these sentinels and tests MUST check
// them via errors.Is. No accessor panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with the method and coordinates
// (see denseErrorf); callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive or missing.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates coordinates outside the shape, or of the wrong arity.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates operands whose shapes differ.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates row slices of unequal length in a *From constructor.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrInvalidCapacity indicates a volatile store budget below one entry.
	ErrInvalidCapacity = errors.New("matrix: capacity must be > 0")
)

// denseErrorf wraps an error with a uniform "<Type>.<method>(coords)" context.
func denseErrorf(typ, method string, coords []int, err error) error {
	return fmt.Errorf("%s.%s(%v): %w", typ, method, coords, err)
}

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
