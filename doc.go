// Package lvmat is a matrix library with several storage representations
// unified behind one entrywise arithmetic engine.
//
// 🚀 What is lvmat?
//
//	An in-memory toolkit that brings together:
//		• Representations: flat float64, row-sliced float64, windows,
//		  exact decimals, sparse coordinate maps and an LRU-bounded sparse cache
//		• Capability tags: each matrix declares what it can do (Dense, Sparse,
//		  Float64, raw storage, ...) and operations dispatch on those tags
//		• Entrywise scalar engine: multiply or divide every cell by a scalar on
//		  the cheapest path both operands support
//		• Parallel raw-row kernel for large float64 matrices
//
// ✨ Why choose lvmat?
//
//   - Exact when it matters – decimal matrices never pass through float64
//   - Fast when allowed – float64 matrices take raw-array paths
//   - Explicit configuration – thread count and precision are per-call options
//   - Predictable memory – the volatile store evicts by LRU under a fixed budget
//
// Under the hood, everything is organized under four subpackages:
//
//	calc/     - Apply / TimesScalar / DivideScalar / Times / Divide and path planning
//	matrix/   - Matrix interfaces, capability tags and concrete representations
//	numeric/  - float64 ↔ decimal coercion and precision Context
//	parallel/ - bounded fan-out over an index range
//
// Quick example:
//
//	m, _ := matrix.NewDecimalDenseFrom([][]string{{"6", "6"}, {"6", "6"}})
//	out, _ := calc.Divide(m, calc.MustDecimal("3")) // every cell is exactly 2
//
// See examples/ for runnable programs.
package lvmat
