// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/parallel"
)

// applyFloat runs the float64 paths (Float2D, RawRows, RawFlat).
// The scalar is converted to float64 once per call.
func applyFloat(op Op, p Path, src matrix.Matrix, s Scalar, dst matrix.Matrix, o Options) error {
	sf, err := s.asFloat()
	if err != nil {
		return err
	}

	switch p {
	case PathRawRows:
		sr, dr := src.(matrix.RowStorage).Float64Rows(), dst.(matrix.RowStorage).Float64Rows()
		if err = checkRows(sr, dr, src.Shape()); err != nil {
			return err
		}

		return rawRows(op, sr, sf, dr, o.threads)
	case PathRawFlat:
		sd, dd := src.(matrix.FlatStorage).Float64Data(), dst.(matrix.FlatStorage).Float64Data()
		if len(sd) != len(dd) {
			return fmt.Errorf("%s: buffer lengths %d and %d: %w", p, len(sd), len(dd), ErrShapeMismatch)
		}
		scaleRow(op, dd, sd, sf)

		return nil
	}

	return floatRowsCols(op, src.(matrix.Dense2D), sf, dst.(matrix.Dense2D))
}

// checkRows verifies that both backing row arrays still match shape.
// Float64Rows exposes live slices, so a caller may have replaced a row.
// Complexity: O(rows).
func checkRows(src, dst [][]float64, shape matrix.Shape) error {
	r, c := shape[0], shape[1]
	if len(src) != r || len(dst) != r {
		return fmt.Errorf("%s: row counts %d and %d, want %d: %w", PathRawRows, len(src), len(dst), r, ErrShapeMismatch)
	}
	for i := range src {
		if len(src[i]) != c || len(dst[i]) != c {
			return fmt.Errorf("%s: row %d lengths %d and %d, want %d: %w",
				PathRawRows, i, len(src[i]), len(dst[i]), c, ErrShapeMismatch)
		}
	}

	return nil
}

// rawRows applies op row by row. Rows are partitioned across `threads`
// workers when threads > 1 and the array is at least
// ParallelThreshold×ParallelThreshold; each row is written by one worker.
func rawRows(op Op, src [][]float64, sf float64, dst [][]float64, threads int) error {
	if len(src) == 0 {
		return nil
	}
	if threads > 1 && len(src) >= ParallelThreshold && len(src[0]) >= ParallelThreshold {
		klog.V(3).Infof("calc.%s: %d rows on %d workers", op, len(src), threads)
		return parallel.For(0, len(src)-1, threads, func(i int) error {
			scaleRow(op, dst[i], src[i], sf)
			return nil
		})
	}
	for i := range src {
		scaleRow(op, dst[i], src[i], sf)
	}

	return nil
}

// scaleRow writes dst[k] = src[k] <op> sf for every k of src.
// Complexity: O(len(src)).
func scaleRow(op Op, dst, src []float64, sf float64) {
	dst = dst[:len(src)] // one bounds check for the whole row
	if op == OpDivide {
		for k, v := range src {
			dst[k] = v / sf
		}
		return
	}
	for k, v := range src {
		dst[k] = v * sf
	}
}

// floatRowsCols visits rows, then columns, from last to first through the
// Dense2D accessors.
func floatRowsCols(op Op, src matrix.Dense2D, sf float64, dst matrix.Dense2D) error {
	var (
		v   float64
		err error
	)
	for i := src.Rows() - 1; i >= 0; i-- {
		for j := src.Cols() - 1; j >= 0; j-- {
			if v, err = src.At(i, j); err != nil {
				return cellErrorf(op, PathFloat2D, []int{i, j}, err)
			}
			if op == OpDivide {
				v /= sf
			} else {
				v *= sf
			}
			if err = dst.Set(i, j, v); err != nil {
				return cellErrorf(op, PathFloat2D, []int{i, j}, err)
			}
		}
	}

	return nil
}
