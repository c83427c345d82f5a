// Package sheet generates live spreadsheet formulas for uncertainty
// propagation: instead of computing numbers, it emits one Excel formula
// per row for the value and one for the propagated uncertainty, so the
// spreadsheet recomputes whenever a cell changes.
//
// 🚀 What is sheet?
//
//	Variables are bound to cell ranges rather than numbers:
//
//	    x → values in A1:A10, uncertainties in B1:B10
//	    y → values in C1:C10, uncertainties in D1:D10
//
//	For "x*y" the row-0 output is
//
//	    value:       =A1*C1
//	    uncertainty: =SQRT((C1*B1*k)^2 + (A1*D1*k)^2)
//
//	where k folds the conversion from each input's confidence level to
//	the requested output confidence (omitted when it is 1 within 1e-10).
//
// ✨ Key features:
//   - "A1:A10" ranges and single cells ("B3"); single cells broadcast
//   - partial derivatives rendered symbolically into Excel syntax
//   - exact variables (no uncertainty range) contribute no term;
//     all-exact formulas emit "=0"
//   - functions map to their spreadsheet names (LN, LOG10, SQRT, POWER,
//     CEILING, …); atan2 arguments are swapped to Excel's (x, y) order
//
// ⚙️ Usage:
//
//	gen, err := sheet.Formulas("x*y", []sheet.Variable{
//	  {Name: "x", ValueRange: "A1:A10", UncertaintyRange: "B1:B10"},
//	  {Name: "y", ValueRange: "C1:C10", UncertaintyRange: "D1:D10"},
//	}, 95)
//	// gen.ValueFormulas[0] == "=A1*C1"
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     errors.go (shared validation sentinels come from package propagate).
//   - Formula text is built from the parsed tree, never by string
//     substitution, so variable names can never collide with function names.
package sheet
