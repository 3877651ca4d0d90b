// SPDX-License-Identifier: MIT

// Package matrix - DecimalDense storage (flat row-major exact decimals).
//
// Purpose:
//   - Hold every cell as an arbitrary-precision decimal so exact arithmetic
//     paths never lose digits to binary floating point.
//
// Capabilities:
//   - Dense | Decimal, plus Dense2D when the rank is 2.
//
// Complexity quicksheet:
//   - NewDecimalDense: O(size); accessors: O(rank + p); Clone: O(size·p).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/numeric"
)

const typDecimalDense = "DecimalDense"

// DecimalDense is a dense matrix of exact decimals of any rank.
type DecimalDense struct {
	layout
	data []apd.Decimal // row-major; zero value of apd.Decimal is 0
}

var (
	_ Dense2D      = (*DecimalDense)(nil)
	_ fmt.Stringer = (*DecimalDense)(nil)
)

// NewDecimalDense creates a zero matrix of the given shape.
// Errors: ErrInvalidDimensions.
// Complexity: O(size).
func NewDecimalDense(dims ...int) (*DecimalDense, error) {
	l, err := newLayout(dims)
	if err != nil {
		return nil, err
	}

	return &DecimalDense{layout: l, data: make([]apd.Decimal, l.size())}, nil
}

// NewDecimalDenseFrom parses a rank-2 literal of decimal strings.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures: NewDecimalDenseFrom([][]string{{"6","6"},{"6","6"}}).
//
// Implementation:
//   - Stage 1: validate the row lengths (ErrInvalidDimensions / ErrRaggedRows).
//   - Stage 2: parse every cell with numeric.Parse; the first failure aborts.
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedRows, numeric.ErrSyntax (wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c*p), Space O(r*c).
func NewDecimalDenseFrom(rows [][]string) (*DecimalDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s.%s: %w", typDecimalDense, ctxFrom, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s.%s: %w", typDecimalDense, ctxFrom, ErrRaggedRows)
		}
	}
	m, err := NewDecimalDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, s := range row {
			d, err := numeric.Parse(s)
			if err != nil {
				return nil, denseErrorf(typDecimalDense, ctxFrom, []int{i, j}, err)
			}
			m.data[i*c+j].Set(d)
		}
	}

	return m, nil
}

// Shape returns a copy of the dimension sizes.
func (m *DecimalDense) Shape() Shape { return m.shape.clone() }

// Caps reports Dense|Decimal (+Dense2D at rank 2).
func (m *DecimalDense) Caps() Caps {
	caps := CapDense | CapDecimal
	if len(m.shape) == 2 {
		caps |= CapDense2D
	}

	return caps
}

// Rows returns the first dimension.
func (m *DecimalDense) Rows() int { return m.shape[0] }

// Cols returns the second dimension (1 for rank-1 matrices).
func (m *DecimalDense) Cols() int {
	if len(m.shape) < 2 {
		return 1
	}

	return m.shape[1]
}

// Decimal returns a copy of the cell at coords.
// Complexity: O(rank + p).
func (m *DecimalDense) Decimal(coords ...int) (*apd.Decimal, error) {
	off, err := m.offset(coords)
	if err != nil {
		return nil, denseErrorf(typDecimalDense, ctxDecimal, coords, err)
	}

	return new(apd.Decimal).Set(&m.data[off]), nil
}

// SetDecimal stores a copy of v at coords. A nil v stores zero.
// Complexity: O(rank + p).
func (m *DecimalDense) SetDecimal(v *apd.Decimal, coords ...int) error {
	off, err := m.offset(coords)
	if err != nil {
		return denseErrorf(typDecimalDense, ctxSetDecimal, coords, err)
	}
	if v == nil {
		m.data[off] = apd.Decimal{}
		return nil
	}
	m.data[off].Set(v)

	return nil
}

// Float64 returns the float64 nearest to the cell.
func (m *DecimalDense) Float64(coords ...int) (float64, error) {
	off, err := m.offset(coords)
	if err != nil {
		return 0, denseErrorf(typDecimalDense, ctxAt, coords, err)
	}
	f, err := numeric.ToFloat64(&m.data[off])
	if err != nil {
		return 0, denseErrorf(typDecimalDense, ctxAt, coords, err)
	}

	return f, nil
}

// SetFloat64 stores the shortest decimal that round-trips to v.
// Errors: ErrOutOfRange; numeric.ErrNonFinite for NaN/±Inf.
func (m *DecimalDense) SetFloat64(v float64, coords ...int) error {
	off, err := m.offset(coords)
	if err != nil {
		return denseErrorf(typDecimalDense, ctxSet, coords, err)
	}
	d, err := numeric.FromFloat64(v)
	if err != nil {
		return denseErrorf(typDecimalDense, ctxSet, coords, err)
	}
	m.data[off].Set(d)

	return nil
}

// At is Float64(row, col).
func (m *DecimalDense) At(row, col int) (float64, error) { return m.Float64(row, col) }

// Set is SetFloat64(v, row, col).
func (m *DecimalDense) Set(row, col int, v float64) error { return m.SetFloat64(v, row, col) }

// DecimalAt is Decimal(row, col).
func (m *DecimalDense) DecimalAt(row, col int) (*apd.Decimal, error) { return m.Decimal(row, col) }

// SetDecimalAt is SetDecimal(v, row, col).
func (m *DecimalDense) SetDecimalAt(row, col int, v *apd.Decimal) error {
	return m.SetDecimal(v, row, col)
}

// AllCoordinates yields every coordinate in row-major order.
func (m *DecimalDense) AllCoordinates() iter.Seq[Coordinates] { return allCoordinates(m.shape) }

// Clone returns a deep copy; every decimal coefficient is copied.
func (m *DecimalDense) Clone() Matrix {
	cp := make([]apd.Decimal, len(m.data))
	for k := range m.data {
		cp[k].Set(&m.data[k])
	}

	return &DecimalDense{layout: m.layout, data: cp}
}

// String renders rank-2 matrices one row per line, others as shape plus flat values.
func (m *DecimalDense) String() string {
	var b strings.Builder
	if len(m.shape) != 2 {
		b.WriteString(typDecimalDense + m.shape.String())
		b.WriteString(_fmtRowOpen)
		for k := range m.data {
			if k > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.data[k].String())
		}
		b.WriteString(_fmtRowClose)

		return b.String()
	}
	c := m.shape[1]
	for i := 0; i < m.shape[0]; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			b.WriteString(m.data[i*c+j].String())
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
