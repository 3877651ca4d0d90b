// SPDX-License-Identifier: MIT

package calc

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/numeric"
)

// Op is an entrywise scalar operation.
type Op uint8

const (
	// OpTimes computes target = source * scalar.
	OpTimes Op = iota + 1
	// OpDivide computes target = source / scalar.
	OpDivide
)

// String returns "Times", "Divide" or "Op(n)".
func (op Op) String() string {
	switch op {
	case OpTimes:
		return "Times"
	case OpDivide:
		return "Divide"
	}

	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// valid reports whether op is a known operation.
func (op Op) valid() bool { return op == OpTimes || op == OpDivide }

// exact applies op to a and s under ctx.
func (op Op) exact(ctx numeric.Context, a, s *apd.Decimal) (*apd.Decimal, error) {
	if op == OpDivide {
		return ctx.Quo(a, s)
	}

	return ctx.Mul(a, s)
}

// Scalar is the right-hand operand: either an exact decimal or a float64.
// The zero value is the float64 0.
type Scalar struct {
	dec   *apd.Decimal // set when exact
	f     float64
	exact bool
}

// Float returns a float64 scalar. On exact paths it is coerced into the
// call's precision context once.
func Float(f float64) Scalar { return Scalar{f: f} }

// Decimal returns an exact scalar holding a copy of d (nil is zero).
// A NaN or infinite d is rejected with numeric.ErrNonFinite when the scalar is used.
func Decimal(d *apd.Decimal) Scalar { return Scalar{dec: numeric.Copy(d), exact: true} }

// MustDecimal parses s as an exact scalar and panics on a malformed literal.
func MustDecimal(s string) Scalar { return Scalar{dec: numeric.MustParse(s), exact: true} }

// IsExact reports whether the scalar was given as a decimal.
func (s Scalar) IsExact() bool { return s.exact }

// String renders the scalar value.
func (s Scalar) String() string {
	if s.exact {
		return s.dec.String()
	}

	return strconv.FormatFloat(s.f, 'g', -1, 64)
}

// asDecimal returns the scalar for exact paths.
func (s Scalar) asDecimal(ctx numeric.Context) (*apd.Decimal, error) {
	if s.exact {
		if err := numeric.CheckFinite(s.dec); err != nil {
			return nil, err
		}

		return numeric.Copy(s.dec), nil
	}

	return ctx.ToDecimal(s.f)
}

// asFloat returns the scalar for float paths. A decimal beyond float64
// range saturates to ±Inf.
func (s Scalar) asFloat() (float64, error) {
	if s.exact {
		if err := numeric.CheckFinite(s.dec); err != nil {
			return 0, err
		}

		return numeric.ToFloat64(s.dec)
	}

	return s.f, nil
}

// Path identifies the code path Apply runs for a (source, target) pair.
type Path uint8

const (
	// PathGeneric visits every coordinate of the shape with exact decimals.
	PathGeneric Path = iota
	// PathDense is PathGeneric for two dense matrices that are not both 2D.
	PathDense
	// PathSparse visits only the source's available coordinates.
	PathSparse
	// PathDense2D visits rows then columns in descending order with exact decimals.
	PathDense2D
	// PathFloat2D visits rows then columns in descending order with float64.
	PathFloat2D
	// PathRawRows works on the backing row slices, possibly in parallel.
	PathRawRows
	// PathRawFlat works on the backing flat buffer.
	PathRawFlat
)

var pathNames = [...]string{"Generic", "Dense", "Sparse", "Dense2D", "Float2D", "RawRows", "RawFlat"}

// String returns the path name.
func (p Path) String() string {
	if int(p) < len(pathNames) {
		return pathNames[p]
	}

	return "Path(" + strconv.Itoa(int(p)) + ")"
}

// Exact reports whether p computes with exact decimals.
func (p Path) Exact() bool { return p <= PathDense2D }
