// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/numeric"
)

const typView = "MatrixView"

// MatrixView is a non-owning rank-2 window into a Dense (shared storage).
// Capabilities: Dense | Dense2D | Float64. It deliberately reports no raw
// storage, so dispatchers use its per-cell accessors.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

var _ Dense2D = (*MatrixView)(nil)

// Shape returns {rows, cols} of the window.
func (v *MatrixView) Shape() Shape { return Shape{v.r, v.c} }

// Caps reports Dense|Dense2D|Float64.
func (v *MatrixView) Caps() Caps { return CapDense | CapDense2D | CapFloat64 }

// Rows returns the number of rows in the view.
// Complexity: O(1).
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
// Complexity: O(1).
func (v *MatrixView) Cols() int { return v.c }

// offsetOf translates view coordinates to the base flat offset.
func (v *MatrixView) offsetOf(coords []int) (int, error) {
	if len(coords) != 2 || coords[0] < 0 || coords[0] >= v.r || coords[1] < 0 || coords[1] >= v.c {
		return 0, ErrOutOfRange
	}

	return (v.r0+coords[0])*v.base.shape[1] + (v.c0 + coords[1]), nil
}

// Float64 reads (i,j) in the view or returns ErrOutOfRange.
// Complexity: O(1).
func (v *MatrixView) Float64(coords ...int) (float64, error) {
	off, err := v.offsetOf(coords)
	if err != nil {
		return 0, denseErrorf(typView, ctxAt, coords, err)
	}

	return v.base.data[off], nil
}

// SetFloat64 writes (i,j) through to the base buffer.
// Complexity: O(1).
func (v *MatrixView) SetFloat64(val float64, coords ...int) error {
	off, err := v.offsetOf(coords)
	if err != nil {
		return denseErrorf(typView, ctxSet, coords, err)
	}
	v.base.data[off] = val // write through

	return nil
}

// Decimal reads (i,j) as a decimal.
func (v *MatrixView) Decimal(coords ...int) (*apd.Decimal, error) {
	f, err := v.Float64(coords...)
	if err != nil {
		return nil, err
	}
	d, err := numeric.FromFloat64(f)
	if err != nil {
		return nil, denseErrorf(typView, ctxDecimal, coords, err)
	}

	return d, nil
}

// SetDecimal writes the float64 nearest to d.
func (v *MatrixView) SetDecimal(d *apd.Decimal, coords ...int) error {
	f, err := numeric.ToFloat64(d)
	if err != nil {
		return denseErrorf(typView, ctxSetDecimal, coords, err)
	}

	return v.SetFloat64(f, coords...)
}

// At is Float64(i, j).
func (v *MatrixView) At(i, j int) (float64, error) { return v.Float64(i, j) }

// Set is SetFloat64(val, i, j).
func (v *MatrixView) Set(i, j int, val float64) error { return v.SetFloat64(val, i, j) }

// DecimalAt is Decimal(i, j).
func (v *MatrixView) DecimalAt(i, j int) (*apd.Decimal, error) { return v.Decimal(i, j) }

// SetDecimalAt is SetDecimal(d, i, j).
func (v *MatrixView) SetDecimalAt(i, j int, d *apd.Decimal) error { return v.SetDecimal(d, i, j) }

// AllCoordinates yields every (i,j) of the window.
func (v *MatrixView) AllCoordinates() iter.Seq[Coordinates] { return allCoordinates(v.Shape()) }

// Clone materializes the window into an independent *Dense.
// Complexity: O(rows*cols).
func (v *MatrixView) Clone() Matrix {
	out, _ := NewDense(v.r, v.c) // window dims are validated > 0 by Dense.View
	var i int
	for i = 0; i < v.r; i++ {
		src := (v.r0+i)*v.base.shape[1] + v.c0
		copy(out.data[i*v.c:(i+1)*v.c], v.base.data[src:src+v.c])
	}

	return out
}

// String renders the window like Dense.String.
func (v *MatrixView) String() string { return fmt.Sprint(v.Clone()) }
