package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uncert/formula"
)

// diff parses input and returns the canonical rendering of ∂input/∂name.
func diff(t *testing.T, input, name string) string {
	t.Helper()

	tree, err := formula.Parse(input)
	require.NoError(t, err, "input %q must parse", input)

	return formula.NodeString(formula.Derivative(tree.Root(), name))
}

// TestDerivative_Polynomials covers the power rule and linearity with
// the built-in simplification (0/1 folding).
func TestDerivative_Polynomials(t *testing.T) {
	assert.Equal(t, "2 * x", diff(t, "x^2", "x"))
	assert.Equal(t, "1", diff(t, "x", "x"))
	assert.Equal(t, "0", diff(t, "y", "x"))
	assert.Equal(t, "0", diff(t, "pi", "x"))
	assert.Equal(t, "3 * x^2", diff(t, "x^3", "x"))
	assert.Equal(t, "y", diff(t, "x*y", "x"))
}

// TestDerivative_QuotientRule verifies the quotient rule with a constant
// numerator and both-sides dependence.
func TestDerivative_QuotientRule(t *testing.T) {
	assert.Equal(t, "-x / y^2", diff(t, "x/y", "y"))
	assert.Equal(t, "y / y^2", diff(t, "x/y", "x"), "light simplification keeps the raw quotient form")
}

// TestDerivative_ChainRule verifies the chain rule through registry
// functions.
func TestDerivative_ChainRule(t *testing.T) {
	assert.Equal(t, "cos(x)", diff(t, "sin(x)", "x"))
	assert.Equal(t, "-sin(x)", diff(t, "cos(x)", "x"))
	assert.Equal(t, "1 / x", diff(t, "ln(x)", "x"))
	assert.Equal(t, "exp(2 * x) * 2", diff(t, "exp(2*x)", "x"))
	assert.Equal(t, "1 / (2 * sqrt(x))", diff(t, "sqrt(x)", "x"))
}

// TestDerivative_StepFunctions pins floor and ceil to zero derivative.
func TestDerivative_StepFunctions(t *testing.T) {
	assert.Equal(t, "0", diff(t, "floor(x)", "x"))
	assert.Equal(t, "0", diff(t, "ceil(x) + 1", "x"))
}

// TestDerivative_GeneralPower covers a variable exponent, which needs
// the logarithmic form a^b·(b'·ln a + b·a'/a).
func TestDerivative_GeneralPower(t *testing.T) {
	got := diff(t, "x^y", "y")
	assert.Equal(t, "x^y * ln(x)", got, "∂(x^y)/∂y is x^y·ln x")

	got = diff(t, "x^y", "x")
	assert.Equal(t, "x^y * (y / x)", got, "∂(x^y)/∂x is x^y·y/x")
}

// TestDerivative_Atan2 verifies the two-argument arctangent rule.
func TestDerivative_Atan2(t *testing.T) {
	assert.Equal(t, "x / (x^2 + y^2)", diff(t, "atan2(y, x)", "y"))
	assert.Equal(t, "-y / (x^2 + y^2)", diff(t, "atan2(y, x)", "x"))
}

// TestDerivative_DoesNotMutate ensures differentiation leaves the source
// tree printable in its original form.
func TestDerivative_DoesNotMutate(t *testing.T) {
	tree, err := formula.Parse("sin(x^2) + y")
	require.NoError(t, err)

	before := tree.String()
	_ = formula.Derivative(tree.Root(), "x")
	assert.Equal(t, before, tree.String(), "the source tree must be untouched")
}
