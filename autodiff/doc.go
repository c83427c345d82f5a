// Package autodiff evaluates formula trees with forward-mode automatic
// differentiation, producing the value and every partial derivative in a
// single pass.
//
// 🚀 What is autodiff?
//
//	Each intermediate quantity is carried as a dual number — a value plus
//	a gradient vector with one slot per variable — and every operator and
//	registry function propagates both through the chain rule. No expression
//	rewriting, no tree blowup, no finite-difference noise: the partials are
//	exact up to floating-point rounding.
//
// ✨ Key features:
//   - one tree walk yields f(x) and ∂f/∂xᵢ for all variables
//   - strict domain checking: sqrt of a negative, ln of a non-positive,
//     division by zero and friends fail with *DomainError, never NaN
//   - non-finite intermediates are rejected (ErrNonFinite), so results
//     are always honest numbers
//   - deterministic: identical inputs give bit-identical outputs
//
// ⚙️ Usage:
//
//	tree, _ := formula.Parse("x^2 + y")
//	res, err := autodiff.Evaluate(tree, map[string]float64{"x": 3, "y": 1})
//	// res.Value == 10, res.Partials["x"] == 6, res.Partials["y"] == 1
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only errors from errors.go.
//   - O(tree size · variable count) time per evaluation, fresh scratch
//     state per call (safe to run concurrently on a shared tree).
package autodiff
