package autodiff

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates an operation was applied outside its real domain
	// (sqrt of a negative, ln of a non-positive, division by zero, …).
	ErrDomain = errors.New("autodiff: domain error")

	// ErrUnknownVariable indicates the tree references a variable with no
	// binding in the evaluation point.
	ErrUnknownVariable = errors.New("autodiff: unknown variable")

	// ErrNonFinite indicates the expression produced Inf or NaN despite
	// passing per-operation domain checks (e.g. overflow in exp).
	ErrNonFinite = errors.New("autodiff: non-finite result")
)

// DomainError reports the operation and the offending operand of a real
// domain violation. It wraps ErrDomain for errors.Is.
type DomainError struct {
	Op      string  // operation or function name, e.g. "sqrt", "/"
	Operand float64 // the operand that violated the domain
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("autodiff: %s undefined for operand %g", e.Op, e.Operand)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// UnknownVariableError names the unbound variable. It wraps
// ErrUnknownVariable for errors.Is.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("autodiff: variable %q is not bound", e.Name)
}

func (e *UnknownVariableError) Unwrap() error { return ErrUnknownVariable }

// domainErr builds a *DomainError.
func domainErr(op string, operand float64) *DomainError {
	return &DomainError{Op: op, Operand: operand}
}
