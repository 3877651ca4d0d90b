// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

func TestZerosLike(t *testing.T) {
	base := seqDense(t, 3, 3)
	view := must.M1(base.View(0, 0, 2, 2))
	vol := must.M1(matrix.NewVolatileSparse(matrix.Shape{4}, matrix.WithCapacity(3)))

	tests := []struct {
		name  string
		src   matrix.Matrix
		shape matrix.Shape
		caps  matrix.Caps
	}{
		{"Dense", base, matrix.Shape{3, 3}, base.Caps()},
		{"View", view, matrix.Shape{2, 2}, base.Caps()},
		{"RowDense", must.M1(matrix.NewRowDense(2, 5)), matrix.Shape{2, 5}, matrix.CapDense | matrix.CapDense2D | matrix.CapFloat64 | matrix.CapRowArray},
		{"DecimalDense", must.M1(matrix.NewDecimalDense(2, 2, 2)), matrix.Shape{2, 2, 2}, matrix.CapDense | matrix.CapDecimal},
		{"SparseDecimal", must.M1(matrix.NewSparseDecimal(5, 5)), matrix.Shape{5, 5}, matrix.CapSparse | matrix.CapDecimal},
		{"VolatileSparse", vol, matrix.Shape{4}, matrix.CapSparse | matrix.CapDecimal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			z := must.M1(matrix.ZerosLike(tc.src))
			require.Equal(t, tc.shape, z.Shape())
			require.Equal(t, tc.caps, z.Caps())
			for c := range z.AllCoordinates() {
				requireDecimalAt(t, z, "0", c...)
			}
		})
	}

	z := must.M1(matrix.ZerosLike(vol)).(*matrix.VolatileSparse)
	require.Equal(t, 3, z.Capacity())
}

// TestZerosLike_Fallback covers representations unknown to the factory.
func TestZerosLike_Fallback(t *testing.T) {
	src := seqDense(t, 2, 2)
	z := must.M1(matrix.ZerosLike(hide{src}))
	requireDecimalAt(t, z, "0", 1, 1)
	// the source is untouched
	requireDecimalAt(t, src, "4", 1, 1)

	_, err := matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
