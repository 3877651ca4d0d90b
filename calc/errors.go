// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

var (
	// ErrShapeMismatch indicates source and target shapes differ.
	// Checked before any element is read.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	// ErrNilMatrix indicates a nil source or target.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrUnknownOp indicates an Op outside {OpTimes, OpDivide}.
	ErrUnknownOp = errors.New("calc: unknown operation")
)

// calcErrorf tags err with the operation, e.g. "calc.Divide: ...".
func calcErrorf(op Op, err error) error {
	return fmt.Errorf("calc.%s: %w", op, err)
}

// cellErrorf tags err with the operation, path and coordinates.
func cellErrorf(op Op, p Path, coords []int, err error) error {
	return fmt.Errorf("calc.%s[%s](%v): %w", op, p, coords, err)
}
