// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/numeric"
)

func TestDecimalDense_ExactStorage(t *testing.T) {
	m := must.M1(matrix.NewDecimalDense(2, 2))
	require.Equal(t, matrix.CapDense|matrix.CapDense2D|matrix.CapDecimal, m.Caps())

	// 34 significant digits survive unchanged
	v := "1.234567890123456789012345678901234"
	require.NoError(t, m.SetDecimalAt(0, 1, dec(v)))
	requireDecimalAt(t, m, v, 0, 1)

	// unset cells are zero
	requireDecimalAt(t, m, "0", 1, 1)

	// returned values are copies
	got := must.M1(m.Decimal(0, 1))
	got.SetInt64(5)
	requireDecimalAt(t, m, v, 0, 1)
}

func TestDecimalDense_FloatBridge(t *testing.T) {
	m := must.M1(matrix.NewDecimalDense(3))
	require.False(t, m.Caps().Has(matrix.CapDense2D))
	require.NoError(t, m.SetFloat64(0.1, 2))
	requireDecimalAt(t, m, "0.1", 2)
	require.Equal(t, 0.1, must.M1(m.Float64(2)))

	require.ErrorIs(t, m.SetFloat64(math.NaN(), 0), numeric.ErrNonFinite)
	require.ErrorIs(t, m.SetFloat64(1, 3), matrix.ErrOutOfRange)
}

func TestNewDecimalDenseFrom(t *testing.T) {
	m := must.M1(matrix.NewDecimalDenseFrom([][]string{{"6", "6", "6"}, {"6", "6", "6"}}))
	require.Equal(t, matrix.Shape{2, 3}, m.Shape())
	require.Equal(t, "[6, 6, 6]\n[6, 6, 6]\n", m.String())

	_, err := matrix.NewDecimalDenseFrom([][]string{{"1", "x"}})
	require.ErrorIs(t, err, numeric.ErrSyntax)

	_, err = matrix.NewDecimalDenseFrom([][]string{{"1"}, {}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestDecimalDense_CloneIndependence(t *testing.T) {
	m := must.M1(matrix.NewDecimalDenseFrom([][]string{{"1.5", "2"}}))
	c := m.Clone()
	require.NoError(t, c.SetDecimal(dec("9"), 0, 0))
	requireDecimalAt(t, m, "1.5", 0, 0)
	requireDecimalAt(t, c, "9", 0, 0)
}
