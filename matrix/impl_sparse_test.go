// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

func TestSparseDecimal_SetGet(t *testing.T) {
	m := must.M1(matrix.NewSparseDecimal(5, 5))
	require.Equal(t, matrix.CapSparse|matrix.CapDecimal, m.Caps())
	require.Equal(t, 0, m.ValueCount())

	require.NoError(t, m.SetDecimal(dec("4"), 2, 2))
	requireDecimalAt(t, m, "4", 2, 2)
	requireDecimalAt(t, m, "0", 0, 0)
	require.True(t, m.Contains(2, 2))
	require.False(t, m.Contains(0, 0))

	// overwrite keeps a single entry
	require.NoError(t, m.SetFloat64(8, 2, 2))
	require.Equal(t, 1, m.ValueCount())
	requireDecimalAt(t, m, "8", 2, 2)

	// explicit zero is stored
	require.NoError(t, m.SetDecimal(dec("0"), 1, 1))
	require.True(t, m.Contains(1, 1))
	require.Equal(t, 2, m.ValueCount())
}

func TestSparseDecimal_Bounds(t *testing.T) {
	m := must.M1(matrix.NewSparseDecimal(2, 2))
	require.ErrorIs(t, m.SetDecimal(dec("1"), 2, 0), matrix.ErrOutOfRange)
	_, err := m.Decimal(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Float64(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, 0, m.ValueCount())
}

func TestSparseDecimal_AvailableCoordinates(t *testing.T) {
	m := must.M1(matrix.NewSparseDecimal(3, 3))
	require.NoError(t, m.SetDecimal(dec("1"), 0, 2))
	require.NoError(t, m.SetDecimal(dec("2"), 2, 0))

	got := collect(m.AvailableCoordinates())
	require.ElementsMatch(t, []matrix.Coordinates{{0, 2}, {2, 0}}, got)
	require.Len(t, collect(m.AllCoordinates()), 9)

	// writing while iterating is allowed; the snapshot is fixed
	n := 0
	for c := range m.AvailableCoordinates() {
		require.NoError(t, m.SetDecimal(dec("7"), 1, 1))
		_ = c
		n++
	}
	require.Equal(t, 2, n)
	require.Equal(t, 3, m.ValueCount())

	require.Equal(t, "SparseDecimal3x3{[0 2]: 1, [1 1]: 7, [2 0]: 2}", m.String())
}

func TestSparseDecimal_Clone(t *testing.T) {
	m := must.M1(matrix.NewSparseDecimal(2, 2))
	require.NoError(t, m.SetDecimal(dec("3"), 1, 0))
	c := m.Clone().(matrix.Sparse)
	require.NoError(t, c.SetDecimal(dec("5"), 1, 0))
	require.NoError(t, c.SetDecimal(dec("5"), 0, 0))
	requireDecimalAt(t, m, "3", 1, 0)
	require.Equal(t, 1, m.ValueCount())
	require.Equal(t, 2, c.ValueCount())
}
