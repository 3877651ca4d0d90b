// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private layout helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY (this file is compiled
//     with the package's tests because of its _test.go suffix).
//   - Keep every bridge co-located here instead of widening the public API.

var (
	// ExportedCoordKey exposes coordKey for key-uniqueness tests.
	ExportedCoordKey = coordKey
	// ExportedAllCoordinates exposes the row-major odometer.
	ExportedAllCoordinates = allCoordinates
)

// PanicCapacityInvalid_TestOnly exports the WithCapacity panic message.
const PanicCapacityInvalid_TestOnly = panicCapacityInvalid

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Capacity int
	HasHook  bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after option resolution.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Capacity: o.capacity, HasHook: o.onEvict != nil}
}
