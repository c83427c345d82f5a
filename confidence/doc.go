// Package confidence converts between confidence levels and sigma
// multipliers (z-scores) under the normal-distribution approximation.
//
// 🚀 What is confidence?
//
//	A reported uncertainty only means something together with its
//	coverage: ±1σ captures ≈68.27% of a normal distribution, ±1.96σ
//	captures 95%, ±3σ captures 99.73%. This package maps any level in
//	(0,100) to its two-sided z-score and back, using the standard normal
//	quantile — no preset table.
//
// ⚙️ Usage:
//
//	z, err := confidence.Sigma(95)      // ≈ 1.959964
//	lvl, err := confidence.Level(1.96)  // ≈ 95.0
//
// The two-sided convention follows the usual interval definition: a level
// p maps to the (1-(1-p)/2) quantile, e.g. 95% → the 0.975 quantile.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Levels are percentages in the exclusive interval (0,100).
package confidence
