package propagate

import "runtime"

// Options configures a propagation run.
//
// Fields:
//   - OutputConfidence       — confidence level, in percent, of the
//     reported uncertainties. Default 95.
//   - DefaultInputConfidence — level assumed for variables that leave
//     their Confidence field zero. Default 68.27 (≈ 1σ), i.e. input
//     uncertainties are plain standard deviations.
//   - ParallelThreshold      — batches with at least this many rows fan
//     out across workers; smaller batches run sequentially so pool
//     overhead never dominates. Default 1024.
//   - Workers                — worker count for parallel batches.
//     Default runtime.GOMAXPROCS(0).
type Options struct {
	OutputConfidence       float64 // level of the reported uncertainty, percent
	DefaultInputConfidence float64 // assumed level for Confidence == 0 inputs
	ParallelThreshold      int     // minimum rows before fanning out
	Workers                int     // pool size for parallel batches
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithOutputConfidence sets the confidence level of reported uncertainties.
// Validity ((0,100) exclusive) is checked during Run, not here, so that a
// caller-supplied level surfaces as an error rather than a panic.
func WithOutputConfidence(level float64) Option {
	return func(o *Options) {
		o.OutputConfidence = level
	}
}

// WithDefaultInputConfidence sets the level assumed for variables without
// an explicit Confidence. Validity is checked during Run.
func WithDefaultInputConfidence(level float64) Option {
	return func(o *Options) {
		o.DefaultInputConfidence = level
	}
}

// WithParallelThreshold sets the minimum batch size for parallel row
// evaluation. Must be ≥ 1; the threshold is engine configuration, not user
// input, so an invalid value panics early.
func WithParallelThreshold(rows int) Option {
	return func(o *Options) {
		if rows < 1 {
			panic("propagate: ParallelThreshold must be >= 1")
		}
		o.ParallelThreshold = rows
	}
}

// WithWorkers sets the worker count for parallel batches. Must be ≥ 1;
// panics on invalid configuration like WithParallelThreshold.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("propagate: Workers must be >= 1")
		}
		o.Workers = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - OutputConfidence:       95.
//   - DefaultInputConfidence: 68.27 (inputs are 1σ standard deviations).
//   - ParallelThreshold:      1024 rows.
//   - Workers:                runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{
		OutputConfidence:       95,
		DefaultInputConfidence: 68.27,
		ParallelThreshold:      1024,
		Workers:                runtime.GOMAXPROCS(0),
	}
}

// buildOptions folds functional options onto the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
