// SPDX-License-Identifier: MIT

// Package matrix - VolatileSparse (memory-bounded sparse cache of decimals).
//
// Purpose:
//   - A sparse matrix whose values may disappear: once the entry budget is
//     exhausted the least recently used value is evicted, and evicted
//     coordinates read as zero afterwards.
//   - Shrinking the budget (Resize) is the explicit "memory pressure" signal.
//
// Contract:
//   - Set/get perform no bounds checking; keeping coordinates inside the
//     shape is the caller's responsibility.
//   - AvailableCoordinates snapshots the key set when iteration starts and
//     skips entries evicted while iterating.
//   - ValueCount is advisory under concurrent eviction.
//   - Safe for concurrent use.
//
// Capabilities:
//   - Sparse | Decimal.
//
// Complexity quicksheet:
//   - accessors: O(rank + p); AvailableCoordinates: O(n) snapshot + O(1) per step.

package matrix

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/cockroachdb/apd/v3"
	lru "github.com/hashicorp/golang-lru/v2"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvmat/numeric"
)

const (
	typVolatile = "VolatileSparse"
	ctxResize   = "Resize"
	ctxNew      = "New"
)

// volatileEntry is immutable once added to the cache.
type volatileEntry struct {
	coords Coordinates
	value  *apd.Decimal
}

// VolatileSparse is a sparse decimal matrix backed by a bounded LRU cache.
type VolatileSparse struct {
	layout
	cells     *lru.Cache[string, volatileEntry]
	capacity  atomic.Int64
	evictions atomic.Int64
	onEvict   func(Coordinates)
}

var (
	_ Sparse       = (*VolatileSparse)(nil)
	_ fmt.Stringer = (*VolatileSparse)(nil)
)

// NewVolatileSparse creates an empty store of the given shape.
// MAIN DESCRIPTION:
//   - Shape is validated once; the entry budget comes from WithCapacity
//     (default DefaultVolatileCapacity).
//
// Errors:
//   - ErrInvalidDimensions for an empty shape or a non-positive dimension.
//
// Complexity:
//   - Time O(rank), Space O(capacity) as values are added.
func NewVolatileSparse(shape Shape, opts ...Option) (*VolatileSparse, error) {
	l, err := newLayout(shape)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", typVolatile, ctxNew, err)
	}
	o := gatherOptions(opts...)
	m := &VolatileSparse{layout: l, onEvict: o.onEvict}
	cells, err := lru.NewWithEvict[string, volatileEntry](o.capacity, m.evicted)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", typVolatile, ctxNew, ErrInvalidCapacity)
	}
	m.cells = cells
	m.capacity.Store(int64(o.capacity))

	return m, nil
}

// NewVolatileSparseFrom creates a store holding the values of src.
// MAIN DESCRIPTION:
//   - A Sparse source contributes its available coordinates only; any other
//     source contributes every coordinate of its shape.
//
// Behavior highlights:
//   - A source larger than the budget leaves only the most recently copied values.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions; read errors of src (e.g. numeric.ErrNonFinite).
//
// Complexity:
//   - Time O(n·(rank+p)) for n copied coordinates.
func NewVolatileSparseFrom(src Matrix, opts ...Option) (*VolatileSparse, error) {
	if src == nil {
		return nil, fmt.Errorf("%s.%s: %w", typVolatile, ctxFrom, ErrNilMatrix)
	}
	m, err := NewVolatileSparse(src.Shape(), opts...)
	if err != nil {
		return nil, err
	}
	coords := src.AllCoordinates()
	if sp, ok := src.(Sparse); ok && src.Caps().Has(CapSparse) {
		coords = sp.AvailableCoordinates()
	}
	for c := range coords {
		v, err := src.Decimal(c...)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", typVolatile, ctxFrom, err)
		}
		m.put(c, v)
	}

	return m, nil
}

// evicted is the LRU callback; it runs after the cache lock is released.
func (m *VolatileSparse) evicted(_ string, e volatileEntry) {
	n := m.evictions.Add(1)
	klog.V(2).Infof("%s: evicted %v (total %d)", typVolatile, []int(e.coords), n)
	if m.onEvict != nil {
		m.onEvict(e.coords.clone())
	}
}

// put stores a private copy of v.
func (m *VolatileSparse) put(coords []int, v *apd.Decimal) {
	m.cells.Add(coordKey(coords), volatileEntry{
		coords: Coordinates(coords).clone(),
		value:  numeric.Copy(v),
	})
}

// Shape returns a copy of the dimension sizes.
func (m *VolatileSparse) Shape() Shape { return m.shape.clone() }

// Caps reports Sparse|Decimal.
func (m *VolatileSparse) Caps() Caps { return CapSparse | CapDecimal }

// Decimal returns a copy of the stored value, or zero when the coordinate
// was never set or has been evicted. Reading marks the value as recently used.
func (m *VolatileSparse) Decimal(coords ...int) (*apd.Decimal, error) {
	e, ok := m.cells.Get(coordKey(coords))
	if !ok {
		return numeric.Zero(), nil
	}

	return numeric.Copy(e.value), nil
}

// SetDecimal stores a copy of v (nil stores zero). May evict another value.
func (m *VolatileSparse) SetDecimal(v *apd.Decimal, coords ...int) error {
	m.put(coords, v)
	return nil
}

// Float64 returns the float64 nearest to the value at coords (0 when absent).
func (m *VolatileSparse) Float64(coords ...int) (float64, error) {
	d, _ := m.Decimal(coords...)
	f, err := numeric.ToFloat64(d)
	if err != nil {
		return 0, denseErrorf(typVolatile, ctxAt, coords, err)
	}

	return f, nil
}

// SetFloat64 stores the shortest decimal that round-trips to v.
// Errors: numeric.ErrNonFinite.
func (m *VolatileSparse) SetFloat64(v float64, coords ...int) error {
	d, err := numeric.FromFloat64(v)
	if err != nil {
		return denseErrorf(typVolatile, ctxSet, coords, err)
	}
	m.put(coords, d)

	return nil
}

// Contains reports whether coords currently holds a value (recency is not updated).
func (m *VolatileSparse) Contains(coords ...int) bool { return m.cells.Contains(coordKey(coords)) }

// ValueCount returns the number of values currently held.
func (m *VolatileSparse) ValueCount() int { return m.cells.Len() }

// Capacity returns the current entry budget.
func (m *VolatileSparse) Capacity() int { return int(m.capacity.Load()) }

// Evictions returns how many values have been evicted since construction.
func (m *VolatileSparse) Evictions() int64 { return m.evictions.Load() }

// Resize changes the entry budget and returns how many values it evicted.
// Shrinking below ValueCount evicts the least recently used values.
// Errors: ErrInvalidCapacity when n < 1.
func (m *VolatileSparse) Resize(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%s.%s(%d): %w", typVolatile, ctxResize, n, ErrInvalidCapacity)
	}
	evicted := m.cells.Resize(n)
	m.capacity.Store(int64(n))
	klog.V(2).Infof("%s: resized to %d, evicted %d", typVolatile, n, evicted)

	return evicted, nil
}

// Purge drops every value. Each dropped value counts as an eviction.
func (m *VolatileSparse) Purge() { m.cells.Purge() }

// AvailableCoordinates yields the coordinates holding a value at the moment
// iteration started, skipping any evicted since. Order is least to most
// recently used.
func (m *VolatileSparse) AvailableCoordinates() iter.Seq[Coordinates] {
	return func(yield func(Coordinates) bool) {
		for _, k := range m.cells.Keys() {
			e, ok := m.cells.Peek(k)
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
func (m *VolatileSparse) AllCoordinates() iter.Seq[Coordinates] { return allCoordinates(m.shape) }

// Clone returns an independent store with the same budget, hook and values.
// Recency order is preserved.
func (m *VolatileSparse) Clone() Matrix {
	out, _ := NewVolatileSparse(m.shape, WithCapacity(m.Capacity()), WithEvictionHook(m.onEvict))
	for _, k := range m.cells.Keys() {
		if e, ok := m.cells.Peek(k); ok {
			out.cells.Add(k, volatileEntry{coords: e.coords.clone(), value: numeric.Copy(e.value)})
		}
	}

	return out
}

// String summarizes the store, e.g. "VolatileSparse5x5{values: 3, capacity: 65536}".
func (m *VolatileSparse) String() string {
	return fmt.Sprintf("%s%s{values: %d, capacity: %d}", typVolatile, m.shape, m.ValueCount(), m.Capacity())
}
