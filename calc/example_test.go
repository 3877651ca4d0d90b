// SPDX-License-Identifier: MIT
package calc_test

import (
	"fmt"

	"github.com/katalvlaran/lvmat/calc"
	"github.com/katalvlaran/lvmat/matrix"
)

// ExampleDivide divides an exact-decimal matrix; the result keeps its representation.
func ExampleDivide() {
	m, _ := matrix.NewDecimalDenseFrom([][]string{{"6", "6", "6"}, {"6", "6", "6"}, {"6", "6", "6"}})
	fmt.Println(calc.Plan(m, m))

	out, err := calc.Divide(m, calc.MustDecimal("3"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(out)
	// Output:
	// Dense2D
	// [2, 2, 2]
	// [2, 2, 2]
	// [2, 2, 2]
}

// ExampleTimesScalar multiplies a sparse matrix; unset coordinates stay unset.
func ExampleTimesScalar() {
	m, _ := matrix.NewSparseDecimal(5, 5)
	_ = m.SetFloat64(4.0, 2, 2)

	if err := calc.TimesScalar(m, calc.Float(2.0), m); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// SparseDecimal5x5{[2 2]: 8}
}

// ExampleDivideScalar shows IEEE-754 results on the float path.
func ExampleDivideScalar() {
	m, _ := matrix.NewDenseFrom([][]float64{{1, -1, 0}})
	_ = calc.DivideScalar(m, calc.Float(0), m)
	fmt.Print(m)
	// Output:
	// [+Inf, -Inf, NaN]
}
