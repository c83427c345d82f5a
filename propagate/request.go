// Package propagate - JSON request/response contract.
//
// The engine is callable RPC-style: a Request carries the formula, the
// variables (values scalar or array) and the output confidence; the
// Response carries the propagated value(s) and uncertainty(ies), scalar
// when every input was scalar. Failed rows marshal as null entries plus
// an explicit failedRows record — a null is never a silent NaN.
package propagate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/uncert/autodiff"
	"github.com/katalvlaran/uncert/confidence"
	"github.com/katalvlaran/uncert/formula"
)

// Series is a scalar-or-array of numbers on the wire: it unmarshals from
// either a JSON number or an array of numbers, and marshals back in the
// same shape. Null marks failed rows on output.
type Series struct {
	Values []float64
	Null   []bool // true marks a failed row, marshaled as null
	Scalar bool   // marshal as a bare number instead of an array
}

// UnmarshalJSON accepts a number, an array of numbers, or null (empty).
func (s *Series) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Series{}

		return nil
	}

	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*s = Series{Values: []float64{scalar}, Scalar: true}

		return nil
	}

	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("propagate: value must be a number or an array of numbers: %w", err)
	}
	*s = Series{Values: values}

	return nil
}

// MarshalJSON emits a bare number for scalars, otherwise an array; failed
// entries (Null[i]) emit JSON null.
func (s Series) MarshalJSON() ([]byte, error) {
	if s.Scalar && len(s.Values) == 1 {
		if len(s.Null) == 1 && s.Null[0] {
			return []byte("null"), nil
		}

		return json.Marshal(s.Values[0])
	}

	out := make([]*float64, len(s.Values))
	for i := range s.Values {
		if len(s.Null) == len(s.Values) && s.Null[i] {
			continue // stays nil → null
		}
		v := s.Values[i]
		out[i] = &v
	}

	return json.Marshal(out)
}

// RequestVariable is the wire form of a Variable.
type RequestVariable struct {
	Name        string   `json:"name"`
	Value       Series   `json:"value"`
	Uncertainty Series   `json:"uncertainty,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// Request is the wire form of one propagation call.
type Request struct {
	Formula          string            `json:"formula"`
	Variables        []RequestVariable `json:"variables"`
	OutputConfidence *float64          `json:"outputConfidence,omitempty"`
}

// FailedRow is the wire record of one isolated row failure.
type FailedRow struct {
	Row     int    `json:"row"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Response is the wire form of a successful propagation. Value and
// Uncertainty mirror the request's scalar/array shape.
type Response struct {
	Value       Series      `json:"value"`
	Uncertainty Series      `json:"uncertainty"`
	FailedRows  []FailedRow `json:"failedRows,omitempty"`
}

// Do runs one wire-level request end to end.
//
// Contract: a fatal failure (parse, validation, or a single-row
// evaluation error) returns a non-nil error whose kind ErrorKind
// classifies; per-row failures in vectorized requests appear in
// Response.FailedRows with null placeholders in the arrays.
func Do(req Request) (*Response, error) {
	vars := make([]Variable, len(req.Variables))
	scalar := len(req.Variables) > 0
	for i, rv := range req.Variables {
		vars[i] = Variable{
			Name:          rv.Name,
			Values:        rv.Value.Values,
			Uncertainties: rv.Uncertainty.Values,
		}
		if rv.Confidence != nil {
			vars[i].Confidence = *rv.Confidence
		}
		if !rv.Value.Scalar {
			scalar = false
		}
	}

	opts := []Option{}
	if req.OutputConfidence != nil {
		opts = append(opts, WithOutputConfidence(*req.OutputConfidence))
	}

	res, err := Propagate(req.Formula, vars, opts...)
	if err != nil {
		return nil, err
	}

	return buildResponse(res, scalar), nil
}

// buildResponse converts an engine Result into the wire shape.
func buildResponse(res *Result, scalar bool) *Response {
	rows := res.Rows()
	resp := &Response{
		Value:       Series{Values: res.Values, Scalar: scalar},
		Uncertainty: Series{Values: res.Uncertainties, Scalar: scalar},
	}

	if len(res.Failures) == 0 {
		return resp
	}

	null := make([]bool, rows)
	for i := range res.Failures {
		f := &res.Failures[i]
		null[f.Row] = true
		resp.FailedRows = append(resp.FailedRows, FailedRow{
			Row:     f.Row,
			Kind:    ErrorKind(f.Err),
			Message: f.Err.Error(),
		})
	}
	resp.Value.Null = null
	resp.Uncertainty.Null = null

	return resp
}

// ErrorKind classifies an engine error into a stable machine-readable
// kind for wire responses and CLI output.
func ErrorKind(err error) string {
	var perr *formula.ParseError

	switch {
	case errors.As(err, &perr):
		return "parse"
	case errors.Is(err, autodiff.ErrDomain):
		return "domain"
	case errors.Is(err, autodiff.ErrUnknownVariable):
		return "unknownVariable"
	case errors.Is(err, autodiff.ErrNonFinite):
		return "nonFinite"
	case errors.Is(err, ErrNoVariables),
		errors.Is(err, ErrBadVariableName),
		errors.Is(err, ErrDuplicateVariable),
		errors.Is(err, ErrEmptyValues),
		errors.Is(err, ErrUncertaintyLength),
		errors.Is(err, ErrRangeLengthMismatch),
		errors.Is(err, ErrNonFiniteInput),
		errors.Is(err, ErrNegativeUncertainty),
		errors.Is(err, confidence.ErrLevelOutOfRange),
		errors.Is(err, confidence.ErrBadSigma):
		return "validation"
	default:
		return "internal"
	}
}
