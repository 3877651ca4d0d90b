// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (flat row-major float64) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit index formula Σ cₖ·strideₖ.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Expose the flat buffer (FlatStorage) so dispatchers can skip per-cell calls.
//   - Support no-copy windows (MatrixView) over rank-2 matrices.
//
// Capabilities:
//   - Dense | Float64 | FlatArray, plus Dense2D when the rank is 2.
//
// Complexity quicksheet:
//   - NewDense: O(size) zero-init; accessors: O(rank); Clone: O(size); View: O(1).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"         // method tag used in error wrappers
	ctxSet        = "Set"        // method tag used in error wrappers
	ctxDecimal    = "Decimal"    // method tag used in error wrappers
	ctxSetDecimal = "SetDecimal" // method tag used in error wrappers
	ctxView       = "View"       // ctor tag for Dense.View
	ctxFrom       = "From"       // ctor tag for *From constructors

	typDense = "Dense"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete flat row-major float64 matrix of any rank.
//   - layout holds the shape and strides.
//   - data is a flat buffer of length size in row-major order.
type Dense struct {
	layout
	data []float64 // contiguous row-major storage (len == size)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Dense2D      = (*Dense)(nil)
	_ FlatStorage  = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a zero matrix of the given shape using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate dims (at least one, all > 0); else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(size), Space O(size).
func NewDense(dims ...int) (*Dense, error) {
	l, err := newLayout(dims)
	if err != nil {
		return nil, err
	}
	// make() zero-fills deterministically.
	return &Dense{layout: l, data: make([]float64, l.size())}, nil
}

// NewDenseFrom creates a rank-2 Dense holding a copy of rows.
// Errors: ErrInvalidDimensions for no rows/columns; ErrRaggedRows for unequal rows.
// Complexity: O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	r, c, err := rectangular(rows)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", typDense, ctxFrom, err)
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// rectangular validates a row-slice literal and returns its dimensions.
func rectangular(rows [][]float64) (r, c int, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, ErrInvalidDimensions
	}
	r, c = len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return 0, 0, ErrRaggedRows
		}
	}

	return r, c, nil
}

// Shape returns a copy of the dimension sizes.
// Complexity: O(rank).
func (m *Dense) Shape() Shape { return m.shape.clone() }

// Caps reports Dense|Float64|FlatArray (+Dense2D at rank 2).
// Complexity: O(1).
func (m *Dense) Caps() Caps {
	caps := CapDense | CapFloat64 | CapFlatArray
	if len(m.shape) == 2 {
		caps |= CapDense2D
	}

	return caps
}

// Rows returns the first dimension. Meaningful as a row count at rank 2.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.shape[0] }

// Cols returns the second dimension (1 for rank-1 matrices).
// Complexity: O(1).
func (m *Dense) Cols() int {
	if len(m.shape) < 2 {
		return 1
	}

	return m.shape[1]
}

// Float64Data exposes the backing row-major buffer (no copy).
// Complexity: O(1).
func (m *Dense) Float64Data() []float64 { return m.data }

// Float64 returns the value at coords or ErrOutOfRange.
// Complexity: O(rank).
func (m *Dense) Float64(coords ...int) (float64, error) {
	off, err := m.offset(coords)
	if err != nil {
		return 0, denseErrorf(typDense, ctxAt, coords, err)
	}

	return m.data[off], nil
}

// SetFloat64 stores v at coords or returns ErrOutOfRange.
// NaN and ±Inf are stored as-is (IEEE semantics are part of the float representation).
// Complexity: O(rank).
func (m *Dense) SetFloat64(v float64, coords ...int) error {
	off, err := m.offset(coords)
	if err != nil {
		return denseErrorf(typDense, ctxSet, coords, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Decimal returns the cell as the shortest decimal that round-trips to it.
// Errors: ErrOutOfRange; numeric.ErrNonFinite for NaN/±Inf cells.
// Complexity: O(rank).
func (m *Dense) Decimal(coords ...int) (*apd.Decimal, error) {
	v, err := m.Float64(coords...)
	if err != nil {
		return nil, err
	}
	d, err := numeric.FromFloat64(v)
	if err != nil {
		return nil, denseErrorf(typDense, ctxDecimal, coords, err)
	}

	return d, nil
}

// SetDecimal stores the float64 nearest to v.
// Complexity: O(rank + p).
func (m *Dense) SetDecimal(v *apd.Decimal, coords ...int) error {
	f, err := numeric.ToFloat64(v)
	if err != nil {
		return denseErrorf(typDense, ctxSetDecimal, coords, err)
	}

	return m.SetFloat64(f, coords...)
}

// At returns the value at (row, col). Requires rank 2.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) { return m.Float64(row, col) }

// Set stores v at (row, col). Requires rank 2.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error { return m.SetFloat64(v, row, col) }

// DecimalAt is Decimal(row, col).
func (m *Dense) DecimalAt(row, col int) (*apd.Decimal, error) { return m.Decimal(row, col) }

// SetDecimalAt is SetDecimal(v, row, col).
func (m *Dense) SetDecimalAt(row, col int, v *apd.Decimal) error { return m.SetDecimal(v, row, col) }

// AllCoordinates yields every coordinate in row-major order.
func (m *Dense) AllCoordinates() iter.Seq[Coordinates] { return allCoordinates(m.shape) }

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(size).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{layout: m.layout, data: cp}
}

// String provides a readable row-wise dump for diagnostics.
// Rank-2 matrices print one "[a, b, c]" line per row; other ranks print the shape and flat buffer.
// Complexity: O(size).
func (m *Dense) String() string {
	if len(m.shape) != 2 {
		return fmt.Sprintf("Dense%s%v", m.shape, m.data)
	}
	var b strings.Builder
	r, c := m.shape[0], m.shape[1]
	var i, j, base int
	for i = 0; i < r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * c
		for j = 0; j < c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over a rank-2 Dense.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage).
//
// Behavior highlights:
//   - Writes via the view reflect in the base.
//   - The view does not expose raw storage: its cells are not contiguous.
//
// Errors:
//   - ErrInvalidDimensions when the base is not rank 2 or the window is empty/out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if len(m.shape) != 2 || r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 ||
		r0+rows > m.shape[0] || c0+cols > m.shape[1] {
		return nil, fmt.Errorf("%s.%s(%d,%d,%d,%d): %w", typDense, ctxView, r0, c0, rows, cols, ErrInvalidDimensions)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}
