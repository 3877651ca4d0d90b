// SPDX-License-Identifier: MIT
// Package calc_test provides benchmarks comparing the dispatch paths on the
// same values.
package calc_test

import (
	"fmt"
	"testing"

	"github.com/janpfeifer/must"

	"github.com/katalvlaran/lvmat/calc"
	"github.com/katalvlaran/lvmat/matrix"
)

var benchSizes = []int{128, 512}

func BenchmarkTimesScalar_RawRows(b *testing.B) {
	for _, n := range benchSizes {
		for _, threads := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/threads=%d", n, threads), func(b *testing.B) {
				m := must.M1(matrix.NewRowDenseFrom(fillRows(n, n)))
				s := calc.Float(1.0000001)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := calc.TimesScalar(m, s, m, calc.WithThreads(threads)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkTimesScalar_RawFlat(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := must.M1(matrix.NewDenseFrom(fillRows(n, n)))
			s := calc.Float(1.0000001)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := calc.TimesScalar(m, s, m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTimesScalar_ExactDense2D(b *testing.B) {
	const n = 64
	src := must.M1(matrix.NewDecimalDense(n, n))
	for c := range src.AllCoordinates() {
		_ = src.SetFloat64(float64(c[0]*n+c[1])*0.37, c...)
	}
	dst := must.M1(matrix.NewDecimalDense(n, n))
	s := calc.MustDecimal("1.5")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := calc.TimesScalar(src, s, dst); err != nil {
			b.Fatal(err)
		}
	}
}
