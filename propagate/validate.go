// Package propagate - validation utilities for the propagation engine.
//
// This file contains small, tight helpers that:
//  1. Validate Options (confidence levels via the confidence package).
//  2. Validate the variable set (names, lengths, finiteness, signs).
//  3. Determine the batch row count with broadcasting rules.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Validation completes in full before any evaluation begins, so a
//     request is either rejected whole or admitted whole.
package propagate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/uncert/confidence"
)

// validateAll verifies Options + variables and returns the batch row count.
//
// Contract:
//   - vars must be non-empty with unique, non-blank names.
//   - every Values slice is non-empty; Uncertainties is nil or equal length.
//   - all numbers are finite; uncertainties are non-negative.
//   - all range-valued (len > 1) variables share one length N; single-value
//     variables broadcast.
//   - confidence levels lie in (0,100) exclusive.
//
// Complexity: O(total input size) time, O(len(vars)) extra space.
func validateAll(vars []Variable, opts Options) (int, error) {
	// Stage 1: Options-only sanity.
	if _, err := confidence.Sigma(opts.OutputConfidence); err != nil {
		return 0, fmt.Errorf("propagate: output confidence %g: %w", opts.OutputConfidence, err)
	}
	if _, err := confidence.Sigma(opts.DefaultInputConfidence); err != nil {
		return 0, fmt.Errorf("propagate: default input confidence %g: %w", opts.DefaultInputConfidence, err)
	}

	// Stage 2: variable set shape.
	if len(vars) == 0 {
		return 0, ErrNoVariables
	}

	seen := make(map[string]struct{}, len(vars))
	rows := 1
	for i := range vars {
		v := &vars[i]
		if v.Name == "" {
			return 0, ErrBadVariableName
		}
		if _, dup := seen[v.Name]; dup {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateVariable, v.Name)
		}
		seen[v.Name] = struct{}{}

		if err := validateVariable(v); err != nil {
			return 0, err
		}

		// Stage 3: batch length under broadcasting (single values stretch).
		if n := v.rows(); n > 1 {
			switch {
			case rows == 1:
				rows = n
			case rows != n:
				return 0, fmt.Errorf("%w: %q has %d rows, batch has %d",
					ErrRangeLengthMismatch, v.Name, n, rows)
			}
		}

		// Stage 4: per-variable confidence (zero selects the default).
		if v.Confidence != 0 {
			if _, err := confidence.Sigma(v.Confidence); err != nil {
				return 0, fmt.Errorf("propagate: variable %q confidence %g: %w",
					v.Name, v.Confidence, err)
			}
		}
	}

	return rows, nil
}

// validateVariable checks one variable's lengths, finiteness and signs.
func validateVariable(v *Variable) error {
	if len(v.Values) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyValues, v.Name)
	}
	if v.Uncertainties != nil && len(v.Uncertainties) != len(v.Values) {
		return fmt.Errorf("%w: %q has %d values and %d uncertainties",
			ErrUncertaintyLength, v.Name, len(v.Values), len(v.Uncertainties))
	}

	for _, x := range v.Values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: value of %q", ErrNonFiniteInput, v.Name)
		}
	}
	for _, u := range v.Uncertainties {
		if math.IsNaN(u) || math.IsInf(u, 0) {
			return fmt.Errorf("%w: uncertainty of %q", ErrNonFiniteInput, v.Name)
		}
		if u < 0 {
			return fmt.Errorf("%w: %q", ErrNegativeUncertainty, v.Name)
		}
	}

	return nil
}
