// SPDX-License-Identifier: MIT

// Package matrix - row-major layout arithmetic and coordinate iteration.
//
// Purpose:
//   - One place for "coordinates → flat offset" with bounds checking.
//   - Lazy, restartable cross-product iteration over a shape.
//   - Compact map keys for coordinate-backed representations.
//
// Complexity quicksheet:
//   - newLayout: O(rank); offset: O(rank); allCoordinates: O(size·rank) to drain.

package matrix

import (
	"encoding/binary"
	"iter"
)

// layout is a validated shape plus its row-major strides.
type layout struct {
	shape   Shape // dimension sizes, all > 0
	strides []int // strides[k] = product of shape[k+1:]
}

// newLayout validates dims (non-empty, all > 0) and precomputes strides.
// Errors: ErrInvalidDimensions.
func newLayout(dims []int) (layout, error) {
	if len(dims) == 0 {
		return layout{}, ErrInvalidDimensions
	}
	for _, d := range dims {
		if d <= 0 {
			return layout{}, ErrInvalidDimensions
		}
	}
	shape := Shape(dims).clone()
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}

	return layout{shape: shape, strides: strides}, nil
}

// size returns the number of cells.
func (l layout) size() int { return l.shape.Size() }

// offset maps coords to the flat row-major index.
// Errors: ErrOutOfRange on wrong arity or any index outside [0, dim).
func (l layout) offset(coords []int) (int, error) {
	if len(coords) != len(l.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, c := range coords {
		if c < 0 || c >= l.shape[k] {
			return 0, ErrOutOfRange
		}
		off += c * l.strides[k]
	}

	return off, nil
}

// inBounds reports whether coords address a cell of the shape.
func (l layout) inBounds(coords []int) bool {
	_, err := l.offset(coords)
	return err == nil
}

// allCoordinates yields the cross product of per-dimension ranges in row-major order.
// MAIN DESCRIPTION:
//   - Odometer over the shape; the last dimension varies fastest.
//
// Behavior highlights:
//   - Lazy and restartable: each range over the returned Seq starts afresh.
//   - Each yielded slice is a fresh copy; consumers may retain it.
//   - A shape with any zero dimension yields nothing.
//
// Complexity:
//   - Time O(size·rank), Space O(rank) per step.
func allCoordinates(shape Shape) iter.Seq[Coordinates] {
	shape = shape.clone()

	return func(yield func(Coordinates) bool) {
		if len(shape) == 0 {
			return
		}
		for _, d := range shape {
			if d <= 0 {
				return
			}
		}
		cur := make(Coordinates, len(shape))
		for {
			if !yield(cur.clone()) {
				return
			}
			// advance the odometer from the last dimension
			k := len(shape) - 1
			for ; k >= 0; k-- {
				cur[k]++
				if cur[k] < shape[k] {
					break
				}
				cur[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}

// coordKey encodes coords into a compact comparable map key.
// Complexity: O(rank).
func coordKey(coords []int) string {
	buf := make([]byte, 0, len(coords)*2)
	for _, c := range coords {
		buf = binary.AppendVarint(buf, int64(c))
	}

	return string(buf)
}
