// SPDX-License-Identifier: MIT

// Package matrix - RowDense storage (one float64 slice per row).
//
// Purpose:
//   - Rank-2 dense storage whose rows are independent slices, so distinct rows
//     can be written by distinct goroutines without sharing memory.
//   - Expose the row slices (RowStorage) for the parallel row fast path.
//
// Capabilities:
//   - Dense | Dense2D | Float64 | RowArray.
//
// Complexity quicksheet:
//   - NewRowDense: O(r*c); accessors: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/numeric"
)

const typRowDense = "RowDense"

// RowDense is a rank-2 float64 matrix backed by one slice per row.
type RowDense struct {
	r, c int         // row and column counts (> 0)
	rows [][]float64 // len(rows) == r, len(rows[i]) == c
}

var (
	_ Dense2D      = (*RowDense)(nil)
	_ RowStorage   = (*RowDense)(nil)
	_ fmt.Stringer = (*RowDense)(nil)
)

// NewRowDense creates an r×c zero matrix.
// Errors: ErrInvalidDimensions when r<=0 or c<=0.
// Complexity: O(r*c).
func NewRowDense(r, c int) (*RowDense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
	}

	return &RowDense{r: r, c: c, rows: rows}, nil
}

// NewRowDenseFrom creates a RowDense holding a copy of rows.
// Errors: ErrInvalidDimensions; ErrRaggedRows.
// Complexity: O(r*c).
func NewRowDenseFrom(rows [][]float64) (*RowDense, error) {
	r, c, err := rectangular(rows)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", typRowDense, ctxFrom, err)
	}
	m, _ := NewRowDense(r, c) // dims validated by rectangular
	for i, row := range rows {
		copy(m.rows[i], row)
	}

	return m, nil
}

// Shape returns {rows, cols}.
func (m *RowDense) Shape() Shape { return Shape{m.r, m.c} }

// Caps reports Dense|Dense2D|Float64|RowArray.
func (m *RowDense) Caps() Caps { return CapDense | CapDense2D | CapFloat64 | CapRowArray }

// Rows returns the row count.
func (m *RowDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *RowDense) Cols() int { return m.c }

// Float64Rows exposes the backing row slices (no copy).
func (m *RowDense) Float64Rows() [][]float64 { return m.rows }

// check validates (row, col) arity and bounds.
func (m *RowDense) check(coords []int) error {
	if len(coords) != 2 || coords[0] < 0 || coords[0] >= m.r || coords[1] < 0 || coords[1] >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// Float64 returns the value at (row, col).
// Complexity: O(1).
func (m *RowDense) Float64(coords ...int) (float64, error) {
	if err := m.check(coords); err != nil {
		return 0, denseErrorf(typRowDense, ctxAt, coords, err)
	}

	return m.rows[coords[0]][coords[1]], nil
}

// SetFloat64 stores v at (row, col).
// Complexity: O(1).
func (m *RowDense) SetFloat64(v float64, coords ...int) error {
	if err := m.check(coords); err != nil {
		return denseErrorf(typRowDense, ctxSet, coords, err)
	}
	m.rows[coords[0]][coords[1]] = v

	return nil
}

// Decimal returns the cell as the shortest decimal that round-trips to it.
func (m *RowDense) Decimal(coords ...int) (*apd.Decimal, error) {
	v, err := m.Float64(coords...)
	if err != nil {
		return nil, err
	}
	d, err := numeric.FromFloat64(v)
	if err != nil {
		return nil, denseErrorf(typRowDense, ctxDecimal, coords, err)
	}

	return d, nil
}

// SetDecimal stores the float64 nearest to v.
func (m *RowDense) SetDecimal(v *apd.Decimal, coords ...int) error {
	f, err := numeric.ToFloat64(v)
	if err != nil {
		return denseErrorf(typRowDense, ctxSetDecimal, coords, err)
	}

	return m.SetFloat64(f, coords...)
}

// At is Float64(row, col).
func (m *RowDense) At(row, col int) (float64, error) { return m.Float64(row, col) }

// Set is SetFloat64(v, row, col).
func (m *RowDense) Set(row, col int, v float64) error { return m.SetFloat64(v, row, col) }

// DecimalAt is Decimal(row, col).
func (m *RowDense) DecimalAt(row, col int) (*apd.Decimal, error) { return m.Decimal(row, col) }

// SetDecimalAt is SetDecimal(v, row, col).
func (m *RowDense) SetDecimalAt(row, col int, v *apd.Decimal) error {
	return m.SetDecimal(v, row, col)
}

// AllCoordinates yields every (row, col) in row-major order.
func (m *RowDense) AllCoordinates() iter.Seq[Coordinates] { return allCoordinates(m.Shape()) }

// Clone returns a deep copy with freshly allocated rows.
// Complexity: O(r*c).
func (m *RowDense) Clone() Matrix {
	out, _ := NewRowDense(m.r, m.c)
	for i, row := range m.rows {
		copy(out.rows[i], row)
	}

	return out
}

// String renders one "[a, b, c]" line per row.
func (m *RowDense) String() string {
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			b.WriteString(fmt.Sprintf("%g", v))
			if j+1 < len(row) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
