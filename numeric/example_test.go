// SPDX-License-Identifier: MIT

package numeric_test

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/numeric"
)

// ExampleContext_Quo shows rounding under a short context and the zero-divisor failure.
func ExampleContext_Quo() {
	ctx := numeric.Context{Precision: 4, Rounding: apd.RoundHalfUp}

	q, _ := ctx.Quo(apd.New(1, 0), apd.New(3, 0))
	fmt.Println(q)

	_, err := ctx.Quo(apd.New(1, 0), apd.New(0, 0))
	fmt.Println(errors.Is(err, numeric.ErrDivisionByZero))
	// Output:
	// 0.3333
	// true
}
