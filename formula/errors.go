package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFormula indicates the input is empty or all whitespace.
	ErrEmptyFormula = errors.New("formula: empty formula")

	// ErrUnexpectedToken indicates a token that cannot start or continue
	// an expression at its position.
	ErrUnexpectedToken = errors.New("formula: unexpected token")

	// ErrUnknownFunction indicates a call to a name outside the function registry.
	ErrUnknownFunction = errors.New("formula: unknown function")

	// ErrUnknownVariable indicates an identifier outside the caller-supplied
	// variable set (strict parsing only; see ParseStrict).
	ErrUnknownVariable = errors.New("formula: unknown variable")

	// ErrUnbalancedParentheses indicates a missing or stray parenthesis.
	ErrUnbalancedParentheses = errors.New("formula: unbalanced parentheses")

	// ErrBadArity indicates a function called with the wrong number of arguments.
	ErrBadArity = errors.New("formula: wrong number of arguments")

	// ErrBadNumber indicates a malformed numeric literal.
	ErrBadNumber = errors.New("formula: malformed number")
)

// ParseError reports a parse failure with the byte offset and offending
// token text, wrapping one of the sentinel kinds above so callers can
// branch with errors.Is.
type ParseError struct {
	Pos   int    // byte offset into the input
	Token string // offending token text; empty at end of input
	err   error  // sentinel kind
}

// Error renders the failure with position context for user display.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at offset %d (end of input)", e.err, e.Pos)
	}

	return fmt.Sprintf("%v %q at offset %d", e.err, e.Token, e.Pos)
}

// Unwrap exposes the sentinel kind to errors.Is / errors.As chains.
func (e *ParseError) Unwrap() error { return e.err }

// parseErr builds a *ParseError for the given sentinel, position and token.
func parseErr(kind error, pos int, token string) *ParseError {
	return &ParseError{Pos: pos, Token: token, err: kind}
}
