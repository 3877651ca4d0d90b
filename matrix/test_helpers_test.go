// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the representation tests.
//   • Keep all data finite and well-formed so conversions never trip ErrNonFinite.

package matrix_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/numeric"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Narrow interfaces (Dense2D, Sparse, FlatStorage, RowStorage) no longer
//     match, so code under test must use the generic Matrix surface.
type hide struct{ matrix.Matrix }

// dec parses a decimal literal (fixtures only).
func dec(s string) *apd.Decimal { return numeric.MustParse(s) }

// requireDecimalAt asserts that m holds want at coords (numeric comparison).
func requireDecimalAt(t *testing.T, m matrix.Matrix, want string, coords ...int) {
	t.Helper()
	got, err := m.Decimal(coords...)
	require.NoError(t, err)
	require.Zerof(t, got.Cmp(dec(want)), "at %v: got %s, want %s", coords, got, want)
}

// seqDense BUILDS an r×c *Dense holding 1, 2, 3, ... in row-major order.
func seqDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m := must.M1(matrix.NewDense(r, c))
	for k := range m.Float64Data() {
		m.Float64Data()[k] = float64(k + 1)
	}

	return m
}

// collect drains a coordinate sequence.
func collect(seq func(func(matrix.Coordinates) bool)) []matrix.Coordinates {
	var out []matrix.Coordinates
	for c := range seq {
		out = append(out, c)
	}

	return out
}
