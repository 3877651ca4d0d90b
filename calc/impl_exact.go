// SPDX-License-Identifier: MIT

package calc

import (
	"iter"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/matrix"
)

// applyExact runs the exact-decimal paths (Generic, Dense, Sparse, Dense2D).
// The scalar is coerced into o.ctx once; every cell result is rounded to it.
func applyExact(op Op, p Path, src matrix.Matrix, s Scalar, dst matrix.Matrix, o Options) error {
	sd, err := s.asDecimal(o.ctx)
	if err != nil {
		return err
	}

	switch p {
	case PathSparse:
		return exactCoords(op, p, src.(matrix.Sparse).AvailableCoordinates(), src, sd, dst, o)
	case PathDense2D:
		return exactRowsCols(op, src.(matrix.Dense2D), sd, dst.(matrix.Dense2D), o)
	}

	return exactCoords(op, p, src.AllCoordinates(), src, sd, dst, o)
}

// exactCoords visits coords in sequence order.
func exactCoords(op Op, p Path, coords iter.Seq[matrix.Coordinates], src matrix.Matrix, sd *apd.Decimal, dst matrix.Matrix, o Options) error {
	for c := range coords {
		v, err := src.Decimal(c...)
		if err != nil {
			return cellErrorf(op, p, c, err)
		}
		r, err := op.exact(o.ctx, v, sd)
		if err != nil {
			return cellErrorf(op, p, c, err)
		}
		if err = dst.SetDecimal(r, c...); err != nil {
			return cellErrorf(op, p, c, err)
		}
	}

	return nil
}

// exactRowsCols visits rows from last to first and, within a row, columns
// from last to first.
func exactRowsCols(op Op, src matrix.Dense2D, sd *apd.Decimal, dst matrix.Dense2D, o Options) error {
	var (
		v, r *apd.Decimal
		err  error
	)
	for i := src.Rows() - 1; i >= 0; i-- {
		for j := src.Cols() - 1; j >= 0; j-- {
			if v, err = src.DecimalAt(i, j); err != nil {
				return cellErrorf(op, PathDense2D, []int{i, j}, err)
			}
			if r, err = op.exact(o.ctx, v, sd); err != nil {
				return cellErrorf(op, PathDense2D, []int{i, j}, err)
			}
			if err = dst.SetDecimalAt(i, j, r); err != nil {
				return cellErrorf(op, PathDense2D, []int{i, j}, err)
			}
		}
	}

	return nil
}
