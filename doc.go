// Package uncert is your in-memory toolkit for scientific error analysis —
// from parsing a measurement formula to the confidence-scaled uncertainty
// of the result.
//
// 🚀 What is uncert?
//
//	A small, deterministic library that brings together:
//		• Formula parsing: arithmetic expressions with named variables & math functions
//		• Automatic differentiation: forward-mode dual numbers, exact partials
//		• Error propagation: first-order variance law σ_f² = Σ (∂f/∂xᵢ)²·σᵢ²
//		• Confidence scaling: arbitrary levels via the normal quantile, not presets
//		• Vectorized batches: row-wise propagation with per-row failure isolation
//		• Spreadsheet output: live Excel formulas for values & uncertainties
//
// ✨ Why choose uncert?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, no NaN/Inf smuggled into results
//   - Pure Go core – differentiation and parsing with no cgo
//   - Extensible – reuse parsed trees, tune batch parallelism via options
//
// Under the hood, everything is organized under five subpackages:
//
//	formula/    — tokenizer, parser, expression trees, printers, symbolic derivatives
//	autodiff/   — dual-number evaluation: value + ∂f/∂xᵢ in one pass
//	confidence/ — confidence level ↔ sigma conversion (standard normal quantile)
//	propagate/  — validation, vectorization, the propagation engine itself
//	sheet/      — cell-range parsing & per-row spreadsheet formula generation
//
// Quick example:
//
//	    f = x² + y,  x = 3 ± 0.1,  y = 1 ± 0.05
//
//	propagates to 10 ± 0.602 at 1σ, or 10 ± 1.18 at 95% confidence.
//
// Dive into each package's doc.go for contracts, error taxonomies and
// worked examples.
//
//	go get github.com/katalvlaran/uncert
package uncert
