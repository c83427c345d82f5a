package propagate

// Variable is one named input to a propagation: its measured value(s),
// the uncertainty of each value, and the confidence level at which those
// uncertainties are stated.
//
// Fields:
//   - Name          — unique, case-sensitive identifier matching formula tokens.
//   - Values        — one entry per row; a single entry broadcasts across
//     the batch when other variables are range-valued.
//   - Uncertainties — same length as Values, or nil for an exact quantity
//     (treated as all-zero).
//   - Confidence    — the level, in percent, at which Uncertainties are
//     expressed. Zero selects Options.DefaultInputConfidence (68.27 ≈ 1σ).
type Variable struct {
	Name          string
	Values        []float64
	Uncertainties []float64
	Confidence    float64
}

// Scalar builds a single-row Variable with one value and one uncertainty.
func Scalar(name string, value, uncertainty float64) Variable {
	return Variable{Name: name, Values: []float64{value}, Uncertainties: []float64{uncertainty}}
}

// Exact builds a single-row Variable with zero uncertainty.
func Exact(name string, value float64) Variable {
	return Variable{Name: name, Values: []float64{value}}
}

// Vector builds a range-valued Variable. uncertainties may be nil (exact).
func Vector(name string, values, uncertainties []float64) Variable {
	return Variable{Name: name, Values: values, Uncertainties: uncertainties}
}

// rows returns the number of rows this variable supplies (1 = broadcastable).
func (v *Variable) rows() int { return len(v.Values) }

// valueAt returns the row-k value, broadcasting single-entry variables.
func (v *Variable) valueAt(k int) float64 {
	if len(v.Values) == 1 {
		return v.Values[0]
	}

	return v.Values[k]
}

// uncertaintyAt returns the row-k uncertainty, broadcasting single-entry
// variables; exact variables report zero.
func (v *Variable) uncertaintyAt(k int) float64 {
	switch {
	case v.Uncertainties == nil:
		return 0
	case len(v.Uncertainties) == 1:
		return v.Uncertainties[0]
	default:
		return v.Uncertainties[k]
	}
}

// Result is the outcome of one propagation run.
//
// Values and Uncertainties always have one entry per row. Entries at
// failed rows are NaN placeholders and must not be read as results:
// Failures is authoritative, and FailedRow reports per-row status.
// A run with no failures has Failures == nil.
type Result struct {
	// Values holds the propagated central values, one per row.
	Values []float64

	// Uncertainties holds the expanded uncertainties at the requested
	// output confidence, one per row.
	Uncertainties []float64

	// Partials holds ∂f/∂xᵢ per referenced variable for single-row runs,
	// matching what a calculator UI displays next to the result. It is
	// nil for vectorized runs.
	Partials map[string]float64

	// Failures lists failed rows in ascending row order; nil when all
	// rows succeeded.
	Failures []RowError
}

// Rows returns the number of rows in the result.
func (r *Result) Rows() int { return len(r.Values) }

// OK reports whether every row succeeded.
func (r *Result) OK() bool { return len(r.Failures) == 0 }

// FailedRow returns the failure for row k, or nil if the row succeeded.
func (r *Result) FailedRow(k int) *RowError {
	for i := range r.Failures {
		if r.Failures[i].Row == k {
			return &r.Failures[i]
		}
	}

	return nil
}
