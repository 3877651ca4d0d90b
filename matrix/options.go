// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the volatile sparse store.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; the memory budget is an explicit entry count.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVolatileCapacity is the entry budget of a VolatileSparse
	// when WithCapacity is not given. Inserting beyond it evicts the
	// least recently used value.
	DefaultVolatileCapacity = 1 << 16
)

// Panic messages (kept as constants so tests can match them).
const (
	panicCapacityInvalid = "matrix: WithCapacity requires n >= 1"
)

// Options holds the resolved configuration of a VolatileSparse.
type Options struct {
	capacity int               // max stored values (>= 1)
	onEvict  func(Coordinates) // optional; called once per evicted value
}

// Option mutates Options.
type Option func(*Options)

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{capacity: DefaultVolatileCapacity}
}

// gatherOptions applies opts left to right over the defaults (last writer wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithCapacity sets the maximum number of values a VolatileSparse keeps.
// Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithEvictionHook registers fn to observe evicted coordinates.
// fn runs outside the store lock and may call back into the store.
// A nil fn clears any previously set hook.
func WithEvictionHook(fn func(Coordinates)) Option {
	return func(o *Options) { o.onEvict = fn }
}
