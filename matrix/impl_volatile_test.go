// SPDX-License-Identifier: MIT
package matrix_test

import (
	"sync"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

func TestVolatileSparse_Basics(t *testing.T) {
	m := must.M1(matrix.NewVolatileSparse(matrix.Shape{5, 5}))
	require.Equal(t, matrix.CapSparse|matrix.CapDecimal, m.Caps())
	require.Equal(t, matrix.DefaultVolatileCapacity, m.Capacity())

	require.NoError(t, m.SetDecimal(dec("4"), 2, 2))
	requireDecimalAt(t, m, "4", 2, 2)
	requireDecimalAt(t, m, "0", 0, 0)
	require.True(t, m.Contains(2, 2))
	require.Equal(t, 1, m.ValueCount())
	require.Equal(t, 4.0, must.M1(m.Float64(2, 2)))

	_, err := matrix.NewVolatileSparse(matrix.Shape{0, 5})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestVolatileSparse_NoBoundsChecks documents that coordinates are the caller's responsibility.
func TestVolatileSparse_NoBoundsChecks(t *testing.T) {
	m := must.M1(matrix.NewVolatileSparse(matrix.Shape{2, 2}))
	require.NoError(t, m.SetFloat64(1, 7, 7))
	requireDecimalAt(t, m, "1", 7, 7)
}

// TestVolatileSparse_Eviction checks that evicted coordinates read as zero,
// vanish from AvailableCoordinates and reach the hook.
func TestVolatileSparse_Eviction(t *testing.T) {
	var (
		mu      sync.Mutex
		evicted []matrix.Coordinates
	)
	m := must.M1(matrix.NewVolatileSparse(matrix.Shape{4, 4},
		matrix.WithCapacity(2),
		matrix.WithEvictionHook(func(c matrix.Coordinates) {
			mu.Lock()
			defer mu.Unlock()
			evicted = append(evicted, c)
		})))

	require.NoError(t, m.SetDecimal(dec("1"), 0, 0))
	require.NoError(t, m.SetDecimal(dec("2"), 1, 1))
	// touch (0,0) so (1,1) becomes the eviction candidate
	requireDecimalAt(t, m, "1", 0, 0)
	require.NoError(t, m.SetDecimal(dec("3"), 2, 2))

	require.Equal(t, 2, m.ValueCount())
	require.False(t, m.Contains(1, 1))
	requireDecimalAt(t, m, "0", 1, 1)
	require.Equal(t, []matrix.Coordinates{{1, 1}}, evicted)
	require.EqualValues(t, 1, m.Evictions())
	require.ElementsMatch(t, []matrix.Coordinates{{0, 0}, {2, 2}}, collect(m.AvailableCoordinates()))
}

func TestVolatileSparse_Resize(t *testing.T) {
	m := must.M1(matrix.NewVolatileSparse(matrix.Shape{10}, matrix.WithCapacity(8)))
	for i := 0; i < 6; i++ {
		require.NoError(t, m.SetFloat64(float64(i+1), i))
	}
	n := must.M1(m.Resize(2))
	require.Equal(t, 4, n)
	require.Equal(t, 2, m.Capacity())
	// the two most recently written survive
	require.ElementsMatch(t, []matrix.Coordinates{{4}, {5}}, collect(m.AvailableCoordinates()))

	_, err := m.Resize(0)
	require.ErrorIs(t, err, matrix.ErrInvalidCapacity)

	m.Purge()
	require.Equal(t, 0, m.ValueCount())
	require.EqualValues(t, 6, m.Evictions())
}

// TestVolatileSparse_EvictionDuringIteration checks that iteration skips
// values evicted after the snapshot was taken.
func TestVolatileSparse_EvictionDuringIteration(t *testing.T) {
	m := must.M1(matrix.NewVolatileSparse(matrix.Shape{3, 3}, matrix.WithCapacity(4)))
	for c := range m.AllCoordinates() {
		require.NoError(t, m.SetFloat64(1, c...))
	}
	// capacity 4: the last four row-major coordinates remain
	require.Equal(t, 4, m.ValueCount())

	var seen []matrix.Coordinates
	for c := range m.AvailableCoordinates() {
		if len(seen) == 0 {
			_, err := m.Resize(1) // keeps only the most recent value
			require.NoError(t, err)
		}
		seen = append(seen, c)
	}
	// first value yielded before the shrink, plus the survivor
	require.Len(t, seen, 2)
	require.Equal(t, matrix.Coordinates{2, 2}, seen[1])
}

func TestNewVolatileSparseFrom(t *testing.T) {
	sp := must.M1(matrix.NewSparseDecimal(5, 5))
	require.NoError(t, sp.SetDecimal(dec("4"), 2, 2))
	v := must.M1(matrix.NewVolatileSparseFrom(sp))
	require.Equal(t, 1, v.ValueCount())
	requireDecimalAt(t, v, "4", 2, 2)

	d := seqDense(t, 2, 2)
	v = must.M1(matrix.NewVolatileSparseFrom(d))
	require.Equal(t, 4, v.ValueCount())
	requireDecimalAt(t, v, "4", 1, 1)

	// a hidden source is treated as non-sparse
	v = must.M1(matrix.NewVolatileSparseFrom(hide{sp}))
	require.Equal(t, 25, v.ValueCount())

	_, err := matrix.NewVolatileSparseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVolatileSparse_CloneKeepsBudget(t *testing.T) {
	m := must.M1(matrix.NewVolatileSparse(matrix.Shape{3, 3}, matrix.WithCapacity(3)))
	require.NoError(t, m.SetFloat64(2, 0, 1))
	c := m.Clone().(*matrix.VolatileSparse)
	require.Equal(t, 3, c.Capacity())
	require.NoError(t, c.SetFloat64(5, 0, 1))
	requireDecimalAt(t, m, "2", 0, 1)
	requireDecimalAt(t, c, "5", 0, 1)
}

func TestVolatileSparse_ConcurrentUse(t *testing.T) {
	m := must.M1(matrix.NewVolatileSparse(matrix.Shape{64, 64}, matrix.WithCapacity(100)))
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 64; i++ {
				_ = m.SetFloat64(float64(i), w, i)
				_, _ = m.Decimal(w, i)
				for range m.AvailableCoordinates() {
					break
				}
			}
		}(w)
	}
	wg.Wait()
	require.LessOrEqual(t, m.ValueCount(), 100)
}
