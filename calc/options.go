// SPDX-License-Identifier: MIT

// Package calc: functional configuration for Apply and its wrappers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults and the fixed parallel policy constant,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over the defaults.
//
// Options replace process-wide settings: a call resolves them once and
// never re-reads them while it runs.
package calc

import (
	"runtime"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvmat/numeric"
)

// ---------- Defaults & policy (single source of truth) ----------

const (
	// ParallelThreshold is the minimum row count AND column count for the raw
	// row path to fan out. Fixed policy, not configurable per call.
	ParallelThreshold = 100

	// DefaultPrecision is the exact-path digit count (DECIMAL128).
	DefaultPrecision = numeric.DefaultPrecision

	// DefaultRounding is the exact-path rounding mode (half-even).
	DefaultRounding = numeric.DefaultRounding
)

// DefaultThreads is the worker count used when WithThreads is not given.
func DefaultThreads() int { return runtime.NumCPU() }

// Panic messages (kept as constants so tests can match them).
const (
	panicThreadsInvalid   = "calc: WithThreads requires n >= 1"
	panicPrecisionInvalid = "calc: WithPrecision requires digits >= 1"
	panicRoundingInvalid  = "calc: WithRounding: unknown rounding mode"
	panicContextInvalid   = "calc: WithContext: invalid numeric context"
)

// Options holds the resolved configuration of one call.
type Options struct {
	threads int             // workers for the raw row path (>= 1)
	ctx     numeric.Context // exact-path precision
}

// Option mutates Options.
type Option func(*Options)

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{threads: DefaultThreads(), ctx: numeric.DefaultContext()}
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

// WithThreads sets the worker count of the raw row path. 1 forces sequential work.
// Panics if n < 1.
func WithThreads(n int) Option {
	if n < 1 {
		panic(panicThreadsInvalid)
	}

	return func(o *Options) { o.threads = n }
}

// WithPrecision sets the number of significant digits on exact paths.
// Panics if digits == 0.
func WithPrecision(digits uint32) Option {
	if digits == 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.ctx.Precision = digits }
}

// WithRounding sets the rounding mode on exact paths.
// Panics on a mode apd does not define.
func WithRounding(r apd.Rounder) Option {
	if (numeric.Context{Precision: 1, Rounding: r}).Validate() != nil {
		panic(panicRoundingInvalid)
	}

	return func(o *Options) { o.ctx.Rounding = r }
}

// WithContext replaces the whole exact-path context.
// Panics if ctx fails numeric.Context.Validate.
func WithContext(ctx numeric.Context) Option {
	if ctx.Validate() != nil {
		panic(panicContextInvalid)
	}

	return func(o *Options) { o.ctx = ctx }
}
