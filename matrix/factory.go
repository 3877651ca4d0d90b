// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/numeric"
)

const ctxZerosLike = "ZerosLike"

// ZerosLike allocates a zero matrix with the representation and shape of m.
// MAIN DESCRIPTION:
//   - Used by allocating operations that return a fresh result instead of
//     writing into a caller-provided target.
//
// Behavior highlights:
//   - A MatrixView yields an owning *Dense of the window's shape.
//   - A VolatileSparse keeps its entry budget and eviction hook.
//   - Unknown representations fall back to Clone followed by zeroing every coordinate.
//
// Errors:
//   - ErrNilMatrix; errors from the fallback's SetDecimal.
//
// Complexity:
//   - O(size) for dense forms, O(rank) for sparse forms.
func ZerosLike(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxZerosLike, err)
	}
	var (
		out Matrix
		err error
	)
	switch t := m.(type) {
	case *Dense:
		out, err = NewDense(t.shape...)
	case *MatrixView:
		out, err = NewDense(t.r, t.c)
	case *RowDense:
		out, err = NewRowDense(t.r, t.c)
	case *DecimalDense:
		out, err = NewDecimalDense(t.shape...)
	case *SparseDecimal:
		out, err = NewSparseDecimal(t.shape...)
	case *VolatileSparse:
		out, err = NewVolatileSparse(t.shape, WithCapacity(t.Capacity()), WithEvictionHook(t.onEvict))
	default:
		return zeroedClone(m)
	}
	if err != nil {
		return nil, matrixErrorf(ctxZerosLike, err)
	}

	return out, nil
}

// zeroedClone clones m and overwrites every coordinate with zero.
func zeroedClone(m Matrix) (Matrix, error) {
	out := m.Clone()
	for c := range out.AllCoordinates() {
		if err := out.SetDecimal(numeric.Zero(), c...); err != nil {
			return nil, matrixErrorf(ctxZerosLike, err)
		}
	}

	return out, nil
}
