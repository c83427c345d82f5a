package propagate_test

import (
	"testing"

	"github.com/katalvlaran/uncert/propagate"
)

// benchVars builds one range-valued variable with rows well-conditioned
// points and small uncertainties.
func benchVars(rows int) []propagate.Variable {
	values := make([]float64, rows)
	uncs := make([]float64, rows)
	for i := 0; i < rows; i++ {
		values[i] = 0.5 + float64(i%100)*0.01
		uncs[i] = 0.001
	}

	return []propagate.Variable{propagate.Vector("x", values, uncs)}
}

// benchmarkRun compiles src once and measures Run over rows with opts.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkRun(b *testing.B, src string, rows int, opts ...propagate.Option) {
	c, err := propagate.Compile(src)
	if err != nil {
		b.Fatalf("Compile failed: %v", err)
	}
	vars := benchVars(rows)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = c.Run(vars, opts...); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkPropagate_Scalar measures the one-shot path including parsing.
func BenchmarkPropagate_Scalar(b *testing.B) {
	vars := []propagate.Variable{
		propagate.Scalar("x", 2, 0.1),
		propagate.Scalar("y", 3, 0.2),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := propagate.Propagate("x^2 + sin(y)", vars); err != nil {
			b.Fatalf("Propagate failed: %v", err)
		}
	}
}

// BenchmarkRun_Scalar measures a precompiled single-row evaluation.
func BenchmarkRun_Scalar(b *testing.B) {
	benchmarkRun(b, "sin(x) * exp(-x^2)", 1)
}

// BenchmarkRun_Vector1k measures a 1000-row batch on the sequential path
// (threshold raised above the batch size).
func BenchmarkRun_Vector1k(b *testing.B) {
	benchmarkRun(b, "sin(x) * exp(-x^2)", 1000,
		propagate.WithParallelThreshold(1 << 20))
}

// BenchmarkRun_Vector1kParallel measures the same batch fanned out across
// the default worker pool.
func BenchmarkRun_Vector1kParallel(b *testing.B) {
	benchmarkRun(b, "sin(x) * exp(-x^2)", 1000,
		propagate.WithParallelThreshold(2))
}

// BenchmarkRun_Vector100k measures a large batch on the default settings,
// which select the parallel path at this size.
func BenchmarkRun_Vector100k(b *testing.B) {
	benchmarkRun(b, "sin(x) * exp(-x^2)", 100_000)
}
