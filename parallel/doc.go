// SPDX-License-Identifier: MIT

// Package parallel runs a per-index callback over an inclusive integer range
// on a bounded set of goroutines.
//
// What & Why:
//
//	For(low, high, workers, fn) splits [low, high] into at most `workers`
//	contiguous chunks, runs each chunk on its own goroutine (never more than
//	`workers` at once) and blocks until every index has been visited exactly
//	once. It is the fan-out used by the raw row-array fast path of package
//	calc, where each index is one matrix row.
//
// Failure policy:
//
//	Fail-together: a failing (or panicking) callback does not stop the other
//	indices. All failures are collected and returned after the work settles,
//	as a *TaskError that matches ErrTaskFailed and unwraps to every cause.
//
// Ordering:
//
//	No ordering between indices in different chunks; within a chunk indices
//	run in ascending order.
//
// There is no cancellation: once dispatched, chunk work runs to completion.
package parallel
