package confidence_test

import (
	"fmt"

	"github.com/katalvlaran/uncert/confidence"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSigma
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Convert the usual two-sided confidence levels to their z-scores.
//
// ExampleSigma demonstrates level → sigma conversion.
func ExampleSigma() {
	for _, level := range []float64{68.27, 95, 99.73} {
		z, err := confidence.Sigma(level)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%.2f%% → %.2fσ\n", level, z)
	}
	// Output:
	// 68.27% → 1.00σ
	// 95.00% → 1.96σ
	// 99.73% → 3.00σ
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLevel
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Ask what confidence a 2σ interval corresponds to.
//
// ExampleLevel demonstrates sigma → level conversion.
func ExampleLevel() {
	level, err := confidence.Level(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.2f%%\n", level)
	// Output:
	// 95.45%
}
