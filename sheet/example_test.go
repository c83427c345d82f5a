package sheet_test

import (
	"fmt"

	"github.com/katalvlaran/uncert/sheet"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFormulas
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A sheet holds masses in A1:A3 with their uncertainties in B1:B3 and
//	one shared acceleration in C1 (exact). Generate per-row formulas for
//	F = m·a, with both confidence levels at 68.27% so no conversion
//	factor appears.
//
// ExampleFormulas demonstrates per-row formula generation.
func ExampleFormulas() {
	gen, err := sheet.Formulas("m * a", []sheet.Variable{
		{Name: "m", ValueRange: "A1:A3", UncertaintyRange: "B1:B3"},
		{Name: "a", ValueRange: "C1"},
	}, 68.27)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for k := range gen.ValueFormulas {
		fmt.Printf("%s\t%s\n", gen.ValueFormulas[k], gen.UncertaintyFormulas[k])
	}
	// Output:
	// =A1*C1	=SQRT(((C1)*B1)^2)
	// =A2*C1	=SQRT(((C1)*B2)^2)
	// =A3*C1	=SQRT(((C1)*B3)^2)
}
