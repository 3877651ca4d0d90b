// SPDX-License-Identifier: MIT

// Package calc - dispatch: path selection and the public entry points.
//
// Purpose:
//   - Decide the code path once per call from the pair of capability sets.
//   - Validate operands before any element is read.
//
// Complexity quicksheet:
//   - Plan: O(1); Apply: O(size) on dense paths, O(available) on the sparse path.

package calc

import (
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvmat/matrix"
)

// capsOf returns the declared capabilities of m, minus any tag whose narrow
// interface m does not actually implement. Wrappers that forward only the
// Matrix methods therefore degrade to the generic paths.
func capsOf(m matrix.Matrix) matrix.Caps {
	c := m.Caps()
	if _, ok := m.(matrix.Dense2D); !ok {
		c &^= matrix.CapDense2D
	}
	if _, ok := m.(matrix.Sparse); !ok {
		c &^= matrix.CapSparse
	}
	if _, ok := m.(matrix.FlatStorage); !ok {
		c &^= matrix.CapFlatArray
	}
	if _, ok := m.(matrix.RowStorage); !ok {
		c &^= matrix.CapRowArray
	}

	return c
}

// Plan returns the path Apply takes for (src, dst).
// MAIN DESCRIPTION:
//   - The narrowest path both operands support wins; otherwise control falls
//     through to the next, more generic one.
//
// Implementation:
//   - Stage 1: both := capsOf(src) & capsOf(dst).
//   - Stage 2: Dense → (Dense2D → (Float64 → RowArray | FlatArray | Float2D) | Dense2D) | Dense.
//   - Stage 3: Sparse, else Generic.
//
// Behavior highlights:
//   - Dense wins over Sparse when a pair declares both.
//   - Nil operands plan as PathGeneric (Apply rejects them).
//
// Complexity:
//   - Time O(1), Space O(1).
func Plan(src, dst matrix.Matrix) Path {
	if src == nil || dst == nil {
		return PathGeneric
	}
	both := capsOf(src) & capsOf(dst)
	switch {
	case both.Has(matrix.CapDense):
		if !both.Has(matrix.CapDense2D) {
			return PathDense
		}
		if !both.Has(matrix.CapFloat64) {
			return PathDense2D
		}
		if both.Has(matrix.CapRowArray) {
			return PathRawRows
		}
		if both.Has(matrix.CapFlatArray) {
			return PathRawFlat
		}

		return PathFloat2D
	case both.Has(matrix.CapSparse):
		return PathSparse
	}

	return PathGeneric
}

// Apply writes op(src[c], scalar) into dst[c] for every coordinate c of src.
// MAIN DESCRIPTION:
//   - The entrywise scalar engine; src and dst may be the same matrix.
//
// Implementation:
//   - Stage 1: validate op, nil operands and shape equality.
//   - Stage 2: resolve options; choose the path with Plan.
//   - Stage 3: coerce the scalar once for the path's numeric kind and run it.
//
// Behavior highlights:
//   - On the sparse path coordinates the source does not hold are left
//     untouched in dst.
//   - An exact-path failure stops at that coordinate; earlier writes stay.
//   - Float paths never fail on division by zero (±Inf/NaN are results).
//
// Errors:
//   - ErrUnknownOp, ErrNilMatrix, ErrShapeMismatch (nothing written). Raw
//     paths also report ErrShapeMismatch when a backing row or buffer was
//     resized behind the matrix's back.
//   - numeric.ErrNonFinite for a NaN or infinite decimal scalar.
//   - numeric.ErrDivisionByZero, numeric.ErrNonFinite, accessor errors of
//     the representations, *parallel.TaskError from the raw row path.
//
// Complexity:
//   - Time O(size·p²) exact, O(size) float; Space O(1) beyond the scalar.
func Apply(op Op, src matrix.Matrix, s Scalar, dst matrix.Matrix, opts ...Option) error {
	if !op.valid() {
		return calcErrorf(op, ErrUnknownOp)
	}
	if err := matrix.ValidateBinarySameShape(src, dst); err != nil {
		return calcErrorf(op, err)
	}
	o := gatherOptions(opts...)
	p := Plan(src, dst)
	if v := klog.V(3); v.Enabled() {
		v.Infof("calc.%s: %s -> %s via %s (scalar %s)", op, src.Caps(), dst.Caps(), p, s)
	}

	var err error
	if p.Exact() {
		err = applyExact(op, p, src, s, dst, o)
	} else {
		err = applyFloat(op, p, src, s, dst, o)
	}
	if err != nil {
		return calcErrorf(op, err)
	}

	return nil
}

// TimesScalar writes src * s into dst.
func TimesScalar(src matrix.Matrix, s Scalar, dst matrix.Matrix, opts ...Option) error {
	return Apply(OpTimes, src, s, dst, opts...)
}

// DivideScalar writes src / s into dst.
func DivideScalar(src matrix.Matrix, s Scalar, dst matrix.Matrix, opts ...Option) error {
	return Apply(OpDivide, src, s, dst, opts...)
}

// Times returns a new matrix holding src * s, in src's representation
// (a MatrixView yields a *matrix.Dense).
func Times(src matrix.Matrix, s Scalar, opts ...Option) (matrix.Matrix, error) {
	return allocApply(OpTimes, src, s, opts)
}

// Divide returns a new matrix holding src / s, in src's representation.
func Divide(src matrix.Matrix, s Scalar, opts ...Option) (matrix.Matrix, error) {
	return allocApply(OpDivide, src, s, opts)
}

// allocApply allocates a zero target like src and applies op into it.
func allocApply(op Op, src matrix.Matrix, s Scalar, opts []Option) (matrix.Matrix, error) {
	dst, err := matrix.ZerosLike(src)
	if err != nil {
		return nil, calcErrorf(op, err)
	}
	if err = Apply(op, src, s, dst, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}
