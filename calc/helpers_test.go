// SPDX-License-Identifier: MIT
package calc_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/numeric"
)

// hide forwards only the Matrix methods, so no narrow interface matches and
// the dispatcher must fall back to the generic surface.
type hide struct{ matrix.Matrix }

func dec(s string) *apd.Decimal { return numeric.MustParse(s) }

// requireDecimalAt asserts that m holds want at coords (numeric comparison).
func requireDecimalAt(t *testing.T, m matrix.Matrix, want string, coords ...int) {
	t.Helper()
	got, err := m.Decimal(coords...)
	require.NoError(t, err)
	require.Zerof(t, got.Cmp(dec(want)), "at %v: got %s, want %s", coords, got, want)
}

// requireAllDecimal asserts every coordinate of m equals want.
func requireAllDecimal(t *testing.T, m matrix.Matrix, want string) {
	t.Helper()
	for c := range m.AllCoordinates() {
		requireDecimalAt(t, m, want, c...)
	}
}

// fillRows returns an r×c row slice with deterministic, non-trivial values.
func fillRows(r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(i*c+j)*0.37 - 11.5
		}
	}

	return rows
}

// decimal3x3 returns a 3×3 DecimalDense with every entry v.
func decimal3x3(t *testing.T, v string) *matrix.DecimalDense {
	t.Helper()
	m := must.M1(matrix.NewDecimalDense(3, 3))
	for c := range m.AllCoordinates() {
		require.NoError(t, m.SetDecimal(dec(v), c...))
	}

	return m
}
