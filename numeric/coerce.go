// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// FromFloat64 returns the shortest decimal that round-trips to f.
// No context rounding is applied; this is how float-backed matrices expose
// their cells as decimals.
//
// Errors: ErrNonFinite for NaN or ±Inf.
// Complexity: O(1) (at most 17 significant digits).
func FromFloat64(f float64) (*apd.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, numericErrorf("FromFloat64", ErrNonFinite)
	}
	d := new(apd.Decimal)
	if _, err := d.SetFloat64(f); err != nil {
		return nil, numericErrorf("FromFloat64", joinArithmetic(err))
	}

	return d, nil
}

// ToDecimal coerces f into an exact decimal rounded to the context.
// MAIN DESCRIPTION:
//   - Scalar coercion used by the exact dispatch levels: shortest decimal of f,
//     then one rounding to c.Precision digits under c.Rounding.
//
// Errors:
//   - ErrNonFinite for NaN/±Inf; ErrInvalidContext for a bad context.
//
// Complexity:
//   - Time O(p), Space O(p).
func (c Context) ToDecimal(f float64) (*apd.Decimal, error) {
	d, err := FromFloat64(f)
	if err != nil {
		return nil, err
	}

	return c.Round(d)
}

// ToFloat64 returns the float64 nearest to d (NaN/±Inf forms map to their float counterparts).
// Magnitudes beyond float64 range saturate to ±Inf; tiny ones round to ±0.
// Complexity: O(p).
func ToFloat64(d *apd.Decimal) (float64, error) {
	f, err := d.Float64()
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	if err != nil {
		return 0, numericErrorf("ToFloat64", joinArithmetic(err))
	}

	return f, nil
}

// Parse reads a decimal literal such as "6", "-0.125" or "1E-7".
// Errors: ErrSyntax; ErrNonFinite for "Inf", "NaN" and their variants.
func Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, numericErrorf("Parse", ErrSyntax)
	}
	if err = CheckFinite(d); err != nil {
		return nil, numericErrorf("Parse", err)
	}

	return d, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) *apd.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// CheckFinite returns ErrNonFinite when d holds NaN or ±Inf. A nil d is zero.
func CheckFinite(d *apd.Decimal) error {
	if d != nil && d.Form != apd.Finite {
		return ErrNonFinite
	}

	return nil
}

// Zero returns a fresh decimal zero.
func Zero() *apd.Decimal { return new(apd.Decimal) }

// Copy returns an independent copy of d (nil yields zero).
func Copy(d *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	if d != nil {
		out.Set(d)
	}

	return out
}
