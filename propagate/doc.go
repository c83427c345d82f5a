// Package propagate combines a parsed formula, measured values and their
// uncertainties into propagated results at a requested confidence level.
//
// 🚀 What is propagate?
//
//	The engine behind an uncertainty calculator: given
//
//	    f = x^2 + y,   x = 3 ± 0.1,   y = 1 ± 0.05
//
//	it evaluates f and every ∂f/∂xᵢ (package autodiff), normalizes each
//	input uncertainty to 1σ by its stated confidence, combines them with
//	the first-order variance law
//
//	    σ_f² = Σᵢ (∂f/∂xᵢ)² · σᵢ²
//
//	and re-expands the result at the output confidence (package
//	confidence). Inputs are assumed uncorrelated: no covariance terms —
//	an explicit simplifying assumption of the first-order law used here.
//
// ✨ Key features:
//   - scalar or vectorized (row-wise) inputs, scalars broadcast across rows
//   - per-row failure isolation: one bad row never aborts the batch
//   - no NaN/Inf ever reported as a successful value
//   - rows ≥ ParallelThreshold fan out across a bounded worker pool,
//     with results identical to sequential evaluation
//   - Compile once, Run many — explicit parse-tree reuse
//   - σ_f rendered symbolically as text and LaTeX (UncertaintyFormula)
//   - a JSON request/response contract (Do) for RPC-style callers
//
// ⚙️ Usage:
//
//	res, err := propagate.Propagate("x^2 + y",
//	  []propagate.Variable{
//	    propagate.Scalar("x", 3, 0.1),
//	    propagate.Scalar("y", 1, 0.05),
//	  },
//	  propagate.WithOutputConfidence(95),
//	)
//	// res.Values[0] == 10, res.Uncertainties[0] ≈ 1.18
//
// Design principles:
//   - Deterministic, side-effect free functions; the engine holds no state.
//   - No logging, no panics on user input - only sentinel errors from errors.go
//     (option constructors panic on structurally invalid configuration,
//     mirroring functional-options convention).
//   - Validation runs in full before any evaluation starts.
package propagate
