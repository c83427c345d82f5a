package formula_test

import (
	"fmt"

	"github.com/katalvlaran/uncert/formula"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleParse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Parse a measurement formula, list its variables and print it back in
//	canonical form. Constants (pi, e) fold at parse time, so they never
//	appear as variables.
//
// ExampleParse demonstrates parsing and canonical printing.
func ExampleParse() {
	tree, err := formula.Parse("2*pi*r + sin(theta)")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(tree.Variables())
	fmt.Println(tree)
	// Output:
	// [r theta]
	// 2 * 3.141592653589793 * r + sin(theta)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDerivative
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Differentiate symbolically for display: the chain rule through sin
//	with the usual light simplification.
//
// ExampleDerivative demonstrates the symbolic derivative.
func ExampleDerivative() {
	tree, err := formula.Parse("sin(x^2)")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	d := formula.Derivative(tree.Root(), "x")
	fmt.Println(formula.NodeString(d))
	// Output:
	// cos(x^2) * (2 * x)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleTree_LaTeX
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Render a quotient with a square root for a report.
//
// ExampleTree_LaTeX demonstrates LaTeX rendering.
func ExampleTree_LaTeX() {
	tree, err := formula.Parse("x / sqrt(x^2 + y^2)")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(tree.LaTeX())
	// Output:
	// \frac{x}{\sqrt{{{x}^{2}} + {{y}^{2}}}}
}
