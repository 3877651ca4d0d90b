// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every representation.
// This file contains ONLY the shape/coordinate value types, the capability
// tags and the Matrix interface family. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import (
	"iter"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Shape is the fixed-length vector of dimension sizes of a matrix.
// A matrix never changes its shape after construction; accessors hand out copies.
type Shape []int

// Rank returns the number of dimensions.
// Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// Size returns the number of coordinates in the shape (product of dimensions).
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Equal reports whether both shapes have the same rank and dimensions.
// Complexity: O(rank).
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if s[k] != o[k] {
			return false
		}
	}

	return true
}

// String renders the shape as "3x3" (or "7" for rank 1).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for k, d := range s {
		parts[k] = strconv.Itoa(d)
	}

	return strings.Join(parts, "x")
}

// clone returns an independent copy.
func (s Shape) clone() Shape { return append(Shape(nil), s...) }

// Coordinates addresses one cell: one zero-based index per dimension.
type Coordinates []int

// clone returns an independent copy.
func (c Coordinates) clone() Coordinates { return append(Coordinates(nil), c...) }

// Caps is the capability tag set a representation declares.
// Dispatchers match on the intersection of two tag sets instead of on
// concrete Go types.
type Caps uint16

const (
	// CapDense marks representations that materialize every coordinate.
	CapDense Caps = 1 << iota
	// CapDense2D marks dense rank-2 representations implementing Dense2D.
	CapDense2D
	// CapSparse marks representations implementing Sparse.
	CapSparse
	// CapDecimal marks exact-decimal storage.
	CapDecimal
	// CapFloat64 marks float64 storage.
	CapFloat64
	// CapFlatArray marks representations implementing FlatStorage.
	CapFlatArray
	// CapRowArray marks representations implementing RowStorage.
	CapRowArray
)

// capNames is ordered like the constants above.
var capNames = []string{"Dense", "Dense2D", "Sparse", "Decimal", "Float64", "FlatArray", "RowArray"}

// Has reports whether every tag of x is present in c.
// Complexity: O(1).
func (c Caps) Has(x Caps) bool { return c&x == x }

// String renders the set as "Dense|Float64|FlatArray".
func (c Caps) String() string {
	var parts []string
	for k, name := range capNames {
		if c&(1<<k) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// Matrix is the representation-independent surface of every matrix.
//
// Values are readable and writable both as exact decimals and as float64;
// each representation converts to and from its own storage. Returned
// decimals are fresh copies owned by the caller.
//
// Complexity notes: accessors are O(rank) except AllCoordinates (lazy, O(size) to drain).
type Matrix interface {
	// Shape returns a copy of the dimension sizes.
	Shape() Shape

	// Caps returns the capability tags this representation honors.
	Caps() Caps

	// Decimal reads the cell at coords as an exact decimal.
	Decimal(coords ...int) (*apd.Decimal, error)

	// SetDecimal writes v at coords (converted to the storage precision).
	SetDecimal(v *apd.Decimal, coords ...int) error

	// Float64 reads the cell at coords as float64.
	Float64(coords ...int) (float64, error)

	// SetFloat64 writes v at coords.
	SetFloat64(v float64, coords ...int) error

	// AllCoordinates yields every coordinate of the shape in row-major order.
	// The sequence is lazy, finite and restartable; each yielded slice is fresh.
	AllCoordinates() iter.Seq[Coordinates]

	// Clone returns a deep, independent copy of the same representation.
	Clone() Matrix
}

// Dense2D is the row/column-addressed surface of dense rank-2 matrices (CapDense2D).
type Dense2D interface {
	Matrix

	Rows() int
	Cols() int
	At(row, col int) (float64, error)
	Set(row, col int, v float64) error
	DecimalAt(row, col int) (*apd.Decimal, error)
	SetDecimalAt(row, col int, v *apd.Decimal) error
}

// Sparse is the surface of coordinate-backed representations (CapSparse).
type Sparse interface {
	Matrix

	// AvailableCoordinates yields only coordinates currently holding a value,
	// in unspecified order. Lazy and restartable.
	AvailableCoordinates() iter.Seq[Coordinates]

	// Contains reports whether coords currently holds a value.
	Contains(coords ...int) bool

	// ValueCount returns the number of stored values.
	ValueCount() int
}

// FlatStorage exposes the backing row-major float64 buffer (CapFlatArray).
// Writes through the slice are writes into the matrix.
type FlatStorage interface {
	Matrix
	Float64Data() []float64
}

// RowStorage exposes one backing float64 slice per row (CapRowArray).
// Writes through the slices are writes into the matrix.
type RowStorage interface {
	Matrix
	Float64Rows() [][]float64
}
