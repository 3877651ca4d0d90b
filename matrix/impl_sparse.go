// SPDX-License-Identifier: MIT

// Package matrix - SparseDecimal storage (coordinate map of exact decimals).
//
// Purpose:
//   - Store only the coordinates that were explicitly written.
//   - Read unset coordinates as zero without materializing them.
//
// Capabilities:
//   - Sparse | Decimal.
//
// Complexity quicksheet:
//   - accessors: O(rank + p) expected; AvailableCoordinates: O(nnz) to drain; Clone: O(nnz·p).

package matrix

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/numeric"
)

const typSparse = "SparseDecimal"

// sparseEntry keeps the coordinates next to the value so iteration never decodes keys.
type sparseEntry struct {
	coords Coordinates
	value  apd.Decimal
}

// SparseDecimal is a bounds-checked coordinate map of exact decimals.
// Explicitly written zeros are kept as stored values.
type SparseDecimal struct {
	layout
	cells map[string]*sparseEntry
}

var (
	_ Sparse       = (*SparseDecimal)(nil)
	_ fmt.Stringer = (*SparseDecimal)(nil)
)

// NewSparseDecimal creates an empty sparse matrix of the given shape.
// Errors: ErrInvalidDimensions.
// Complexity: O(rank).
func NewSparseDecimal(dims ...int) (*SparseDecimal, error) {
	l, err := newLayout(dims)
	if err != nil {
		return nil, err
	}

	return &SparseDecimal{layout: l, cells: make(map[string]*sparseEntry)}, nil
}

// Shape returns a copy of the dimension sizes.
func (m *SparseDecimal) Shape() Shape { return m.shape.clone() }

// Caps reports Sparse|Decimal.
func (m *SparseDecimal) Caps() Caps { return CapSparse | CapDecimal }

// Decimal returns a copy of the stored value, or zero when coords holds none.
// Errors: ErrOutOfRange.
func (m *SparseDecimal) Decimal(coords ...int) (*apd.Decimal, error) {
	if !m.inBounds(coords) {
		return nil, denseErrorf(typSparse, ctxDecimal, coords, ErrOutOfRange)
	}
	e, ok := m.cells[coordKey(coords)]
	if !ok {
		return numeric.Zero(), nil
	}

	return new(apd.Decimal).Set(&e.value), nil
}

// SetDecimal stores a copy of v at coords (nil stores zero).
// Errors: ErrOutOfRange.
func (m *SparseDecimal) SetDecimal(v *apd.Decimal, coords ...int) error {
	if !m.inBounds(coords) {
		return denseErrorf(typSparse, ctxSetDecimal, coords, ErrOutOfRange)
	}
	m.put(coords, numeric.Copy(v))

	return nil
}

// put stores v under coords, reusing the existing entry when present.
func (m *SparseDecimal) put(coords []int, v *apd.Decimal) {
	k := coordKey(coords)
	if e, ok := m.cells[k]; ok {
		e.value.Set(v)
		return
	}
	e := &sparseEntry{coords: Coordinates(coords).clone()}
	e.value.Set(v)
	m.cells[k] = e
}

// Float64 returns the float64 nearest to the value at coords (0 when unset).
func (m *SparseDecimal) Float64(coords ...int) (float64, error) {
	d, err := m.Decimal(coords...)
	if err != nil {
		return 0, err
	}
	f, err := numeric.ToFloat64(d)
	if err != nil {
		return 0, denseErrorf(typSparse, ctxAt, coords, err)
	}

	return f, nil
}

// SetFloat64 stores the shortest decimal that round-trips to v.
// Errors: ErrOutOfRange; numeric.ErrNonFinite.
func (m *SparseDecimal) SetFloat64(v float64, coords ...int) error {
	if !m.inBounds(coords) {
		return denseErrorf(typSparse, ctxSet, coords, ErrOutOfRange)
	}
	d, err := numeric.FromFloat64(v)
	if err != nil {
		return denseErrorf(typSparse, ctxSet, coords, err)
	}
	m.put(coords, d)

	return nil
}

// Contains reports whether coords holds a stored value.
func (m *SparseDecimal) Contains(coords ...int) bool {
	_, ok := m.cells[coordKey(coords)]
	return ok
}

// ValueCount returns the number of stored values.
func (m *SparseDecimal) ValueCount() int { return len(m.cells) }

// AvailableCoordinates yields the stored coordinates in unspecified order.
// The key set is snapshotted when iteration starts, so callers may write to
// the matrix while ranging.
func (m *SparseDecimal) AvailableCoordinates() iter.Seq[Coordinates] {
	return func(yield func(Coordinates) bool) {
		keys := slices.Collect(maps.Keys(m.cells))
		for _, k := range keys {
			e, ok := m.cells[k]
			if !ok {
				continue
			}
			if !yield(e.coords.clone()) {
				return
			}
		}
	}
}

// AllCoordinates yields every coordinate of the shape in row-major order.
func (m *SparseDecimal) AllCoordinates() iter.Seq[Coordinates] { return allCoordinates(m.shape) }

// Clone returns a deep copy with the same stored coordinates.
func (m *SparseDecimal) Clone() Matrix {
	out := &SparseDecimal{layout: m.layout, cells: make(map[string]*sparseEntry, len(m.cells))}
	for k, e := range m.cells {
		cp := &sparseEntry{coords: e.coords.clone()}
		cp.value.Set(&e.value)
		out.cells[k] = cp
	}

	return out
}

// String lists stored values sorted by coordinates, e.g. "SparseDecimal5x5{[2 2]: 4}".
func (m *SparseDecimal) String() string {
	entries := slices.Collect(maps.Values(m.cells))
	slices.SortFunc(entries, func(a, b *sparseEntry) int { return slices.Compare(a.coords, b.coords) })
	var b strings.Builder
	b.WriteString(typSparse + m.shape.String() + "{")
	for k, e := range entries {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v: %s", []int(e.coords), e.value.String())
	}
	b.WriteString("}")

	return b.String()
}
