package propagate

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVariables indicates an empty variable list.
	ErrNoVariables = errors.New("propagate: variable list must not be empty")

	// ErrBadVariableName indicates a blank variable name.
	ErrBadVariableName = errors.New("propagate: blank variable name")

	// ErrDuplicateVariable indicates two variables sharing one name.
	ErrDuplicateVariable = errors.New("propagate: duplicate variable name")

	// ErrEmptyValues indicates a variable with no values at all.
	ErrEmptyValues = errors.New("propagate: variable needs at least one value")

	// ErrUncertaintyLength indicates an uncertainty sequence whose length
	// differs from its variable's value sequence.
	ErrUncertaintyLength = errors.New("propagate: uncertainty length must match value length")

	// ErrRangeLengthMismatch indicates range-valued variables of unequal lengths.
	ErrRangeLengthMismatch = errors.New("propagate: range-valued variables must share one length")

	// ErrNonFiniteInput indicates a NaN or Inf among values or uncertainties.
	ErrNonFiniteInput = errors.New("propagate: values and uncertainties must be finite")

	// ErrNegativeUncertainty indicates an uncertainty below zero.
	ErrNegativeUncertainty = errors.New("propagate: uncertainties must be non-negative")
)

// RowError marks one failed row of a vectorized propagation. It wraps the
// underlying cause (a domain error, unknown variable or non-finite result
// from package autodiff) for errors.Is / errors.As.
type RowError struct {
	Row int   // zero-based row index
	Err error // underlying cause
}

func (e *RowError) Error() string {
	return fmt.Sprintf("propagate: row %d failed: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
