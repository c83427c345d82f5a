// Package propagate - the propagation engine itself.
//
// Pipeline per row k:
//  1. Bind each variable to its row-k value (broadcasting single values).
//  2. Evaluate the tree once with forward-mode autodiff: value + partials.
//  3. Normalize each input uncertainty to 1σ: σᵢ = uᵢ / z(input confidence).
//  4. Combine in quadrature: σ_f² = Σᵢ (∂f/∂xᵢ)² · σᵢ².
//  5. Re-expand: uncertainty = σ_f · z(output confidence).
//
// Rows are independent (no shared scratch, the tree is read-only), so
// batches at or above Options.ParallelThreshold are split across a fixed
// worker pool; results are bit-identical to the sequential path because
// each row performs the same float operations either way.
package propagate

import (
	"math"
	"sync"

	"github.com/katalvlaran/uncert/autodiff"
	"github.com/katalvlaran/uncert/confidence"
	"github.com/katalvlaran/uncert/formula"
)

// Compiled is a parsed formula ready to run against many variable sets.
// It is immutable and safe for concurrent Run calls.
type Compiled struct {
	tree *formula.Tree
}

// Compile parses the formula once for reuse across runs. Identifiers that
// are not registry functions or constants become variables to be bound
// per run.
//
// Errors: *formula.ParseError as produced by formula.Parse.
func Compile(src string) (*Compiled, error) {
	tree, err := formula.Parse(src)
	if err != nil {
		return nil, err
	}

	return &Compiled{tree: tree}, nil
}

// Tree exposes the underlying expression tree (read-only).
func (c *Compiled) Tree() *formula.Tree { return c.tree }

// Propagate parses src and runs one propagation. Use Compile + Run to
// amortize parsing across repeated batches of the same formula.
//
// Contract:
//   - Validation failures (see validateAll) reject the whole request.
//   - In a single-row request an evaluation failure is fatal and returned
//     directly; in a vectorized request failures are isolated per row in
//     Result.Failures and sibling rows still succeed.
//   - No NaN or Inf is ever reported as a successful value.
//
// Errors: *formula.ParseError, validation sentinels from errors.go,
// and (single-row only) *autodiff.DomainError, *autodiff.UnknownVariableError
// or autodiff.ErrNonFinite.
func Propagate(src string, vars []Variable, opts ...Option) (*Result, error) {
	c, err := Compile(src)
	if err != nil {
		return nil, err
	}

	return c.Run(vars, opts...)
}

// Run executes the propagation of c over vars.
// See Propagate for the contract; Run adds no semantics beyond tree reuse.
//
// Complexity: O(rows · tree size · referenced variables) time; when
// rows ≥ Options.ParallelThreshold the work is split across
// Options.Workers goroutines.
func (c *Compiled) Run(vars []Variable, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	rows, err := validateAll(vars, o)
	if err != nil {
		return nil, err
	}

	// Unknown references are a whole-request failure: the binding set is
	// fixed up front, so no row could ever succeed.
	bound := make(map[string]struct{}, len(vars))
	for i := range vars {
		bound[vars[i].Name] = struct{}{}
	}
	for _, name := range c.tree.Variables() {
		if _, ok := bound[name]; !ok {
			return nil, &autodiff.UnknownVariableError{Name: name}
		}
	}

	run, err := newRunState(c.tree, vars, o)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Values:        make([]float64, rows),
		Uncertainties: make([]float64, rows),
	}
	errs := make([]error, rows)

	if rows >= o.ParallelThreshold && rows > 1 {
		run.evalParallel(rows, o.Workers, res, errs)
	} else {
		for k := 0; k < rows; k++ {
			res.Values[k], res.Uncertainties[k], res.Partials, errs[k] = run.evalRow(k)
		}
	}

	return assemble(res, errs, rows)
}

// runState carries per-run immutable inputs: the tree, the variables and
// the precomputed sigma conversion factors.
type runState struct {
	tree *formula.Tree
	vars []Variable
	// normIn[i] divides variable i's uncertainty down to 1σ.
	normIn []float64
	// expandOut multiplies the combined 1σ uncertainty up to the output level.
	expandOut float64
}

// newRunState precomputes z-factors; levels were validated in validateAll.
func newRunState(tree *formula.Tree, vars []Variable, o Options) (*runState, error) {
	zOut, err := confidence.Sigma(o.OutputConfidence)
	if err != nil {
		return nil, err
	}

	norm := make([]float64, len(vars))
	for i := range vars {
		level := vars[i].Confidence
		if level == 0 {
			level = o.DefaultInputConfidence
		}

		zIn, zerr := confidence.Sigma(level)
		if zerr != nil {
			return nil, zerr
		}
		norm[i] = zIn
	}

	return &runState{tree: tree, vars: vars, normIn: norm, expandOut: zOut}, nil
}

// evalRow evaluates one row: value, expanded uncertainty, partials.
func (rs *runState) evalRow(k int) (float64, float64, map[string]float64, error) {
	point := make(map[string]float64, len(rs.vars))
	for i := range rs.vars {
		point[rs.vars[i].Name] = rs.vars[i].valueAt(k)
	}

	ev, err := autodiff.Evaluate(rs.tree, point)
	if err != nil {
		return 0, 0, nil, err
	}

	// Quadrature over 1σ-normalized inputs. Variables the formula never
	// references have zero partials and contribute nothing; an all-exact
	// row sums to exactly zero, not a rounding residue.
	var sum float64
	for i := range rs.vars {
		u := rs.vars[i].uncertaintyAt(k)
		if u == 0 {
			continue
		}

		partial := ev.Partials[rs.vars[i].Name]
		term := partial * (u / rs.normIn[i])
		sum += term * term
	}

	unc := math.Sqrt(sum) * rs.expandOut
	if math.IsNaN(unc) || math.IsInf(unc, 0) {
		return 0, 0, nil, autodiff.ErrNonFinite
	}

	return ev.Value, unc, ev.Partials, nil
}

// evalParallel splits rows into contiguous chunks across workers.
// Each worker writes disjoint indices, so no locking is needed.
func (rs *runState) evalParallel(rows, workers int, res *Result, errs []error) {
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= rows {
			break
		}
		end := start + chunk
		if end > rows {
			end = rows
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for k := start; k < end; k++ {
				res.Values[k], res.Uncertainties[k], _, errs[k] = rs.evalRow(k)
			}
		}(start, end)
	}
	wg.Wait()
}

// assemble converts per-row errors into the Result contract: direct error
// for single-row requests, RowError isolation with NaN placeholders for
// batches. Partials survive only on successful single-row runs.
func assemble(res *Result, errs []error, rows int) (*Result, error) {
	if rows == 1 {
		if errs[0] != nil {
			return nil, errs[0]
		}

		return res, nil
	}

	res.Partials = nil
	for k, err := range errs {
		if err == nil {
			continue
		}
		res.Values[k] = math.NaN()
		res.Uncertainties[k] = math.NaN()
		res.Failures = append(res.Failures, RowError{Row: k, Err: err})
	}

	return res, nil
}
