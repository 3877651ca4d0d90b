// SPDX-License-Identifier: MIT

// Package matrix provides the matrix data model shared by every lvmat
// operation: shapes, coordinates, capability tags and a family of concrete
// storage representations.
//
// Every representation implements Matrix (decimal and float64 accessors,
// coordinate iteration, Clone) and declares its capabilities through Caps.
// Operations never switch on concrete Go types; they intersect the Caps of
// their operands and use the narrow interfaces those tags promise:
//
//   - Dense2D     row/column accessors of dense rank-2 matrices
//   - Sparse      AvailableCoordinates / Contains / ValueCount
//   - FlatStorage the row-major float64 buffer
//   - RowStorage  one float64 slice per row
//
// Representations:
//
//   - Dense          flat row-major float64, any rank (Dense|Float64|FlatArray, +Dense2D at rank 2)
//   - RowDense       float64 rows, rank 2 (Dense|Dense2D|Float64|RowArray)
//   - MatrixView     window into a rank-2 Dense (Dense|Dense2D|Float64)
//   - DecimalDense   exact decimals, any rank (Dense|Decimal, +Dense2D at rank 2)
//   - SparseDecimal  bounds-checked coordinate map (Sparse|Decimal)
//   - VolatileSparse LRU-bounded coordinate cache whose values may be evicted (Sparse|Decimal)
//
// Accessors return sentinel errors (ErrOutOfRange, ErrInvalidDimensions, ...)
// wrapped with the method and coordinates; match them with errors.Is.
// Exact values use github.com/cockroachdb/apd/v3.
package matrix
