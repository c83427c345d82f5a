package formula_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uncert/formula"
)

// TestParse_EmptyFormula verifies that blank input errors ErrEmptyFormula.
func TestParse_EmptyFormula(t *testing.T) {
	_, err := formula.Parse("")
	assert.ErrorIs(t, err, formula.ErrEmptyFormula, "empty string must error")

	_, err = formula.Parse("   \t ")
	assert.ErrorIs(t, err, formula.ErrEmptyFormula, "whitespace-only input must error")
}

// TestParse_UnknownFunction ensures an identifier followed by '(' must
// name a registry function, and that the ParseError carries its position.
func TestParse_UnknownFunction(t *testing.T) {
	_, err := formula.Parse("foo(1)")
	assert.ErrorIs(t, err, formula.ErrUnknownFunction, "foo is not a registry function")

	var perr *formula.ParseError
	require.ErrorAs(t, err, &perr, "parse failures wrap *ParseError")
	assert.Equal(t, 0, perr.Pos, "position should point at the identifier")
	assert.Equal(t, "foo", perr.Token, "token should carry the offending name")
}

// TestParse_UnbalancedParentheses covers a missing ')' , a stray ')'
// and an unterminated call argument list.
func TestParse_UnbalancedParentheses(t *testing.T) {
	_, err := formula.Parse("(x + 1")
	assert.ErrorIs(t, err, formula.ErrUnbalancedParentheses, "missing closing paren")

	_, err = formula.Parse("x)")
	assert.ErrorIs(t, err, formula.ErrUnbalancedParentheses, "stray closing paren")

	_, err = formula.Parse("sin(x")
	assert.ErrorIs(t, err, formula.ErrUnbalancedParentheses, "unterminated call")
}

// TestParse_BadArity ensures the argument count is checked against the
// registry arity at the closing parenthesis.
func TestParse_BadArity(t *testing.T) {
	_, err := formula.Parse("sin(x, y)")
	assert.ErrorIs(t, err, formula.ErrBadArity, "sin takes one argument")

	_, err = formula.Parse("atan2(x)")
	assert.ErrorIs(t, err, formula.ErrBadArity, "atan2 takes two arguments")

	_, err = formula.Parse("pow(x)")
	assert.ErrorIs(t, err, formula.ErrBadArity, "pow takes two arguments")
}

// TestParse_UnexpectedToken covers dangling operators and implicit
// multiplication, which the grammar deliberately rejects.
func TestParse_UnexpectedToken(t *testing.T) {
	_, err := formula.Parse("x +")
	assert.ErrorIs(t, err, formula.ErrUnexpectedToken, "dangling operator")

	_, err = formula.Parse("2x")
	assert.ErrorIs(t, err, formula.ErrUnexpectedToken, "implicit multiplication is not supported")

	_, err = formula.Parse("x * * y")
	assert.ErrorIs(t, err, formula.ErrUnexpectedToken, "doubled operator")
}

// TestParse_BadNumber ensures a truncated exponent fails lexing.
func TestParse_BadNumber(t *testing.T) {
	_, err := formula.Parse("1e")
	assert.ErrorIs(t, err, formula.ErrBadNumber, "exponent marker without digits")
}

// TestParse_Numbers checks integer, decimal and exponent literals.
func TestParse_Numbers(t *testing.T) {
	for input, want := range map[string]float64{
		"42":      42,
		"3.25":    3.25,
		"1e3":     1000,
		"2.5e-2":  0.025,
		"0.5":     0.5,
		"6.02e23": 6.02e23,
	} {
		tree, err := formula.Parse(input)
		require.NoError(t, err, "input %q must parse", input)

		lit, ok := tree.Root().(*formula.Literal)
		require.True(t, ok, "input %q must parse to a literal", input)
		assert.Equal(t, want, lit.Value, "value of %q", input)
	}
}

// TestParse_Constants verifies that pi and e fold to literals at parse
// time and never appear in Variables.
func TestParse_Constants(t *testing.T) {
	tree, err := formula.Parse("pi")
	require.NoError(t, err)

	lit, ok := tree.Root().(*formula.Literal)
	require.True(t, ok, "pi must fold to a literal")
	assert.Equal(t, math.Pi, lit.Value)

	tree, err = formula.Parse("2 * pi * r")
	require.NoError(t, err)
	assert.Equal(t, []string{"r"}, tree.Variables(), "constants are not variables")
}

// TestParse_UnaryMinusConvention pins the precedence convention:
// "-2^2" is -(2^2) while "2^-2" is 2^(-2).
func TestParse_UnaryMinusConvention(t *testing.T) {
	tree, err := formula.Parse("-2^2")
	require.NoError(t, err)

	u, ok := tree.Root().(*formula.Unary)
	require.True(t, ok, "-2^2 must parse as a negation")
	b, ok := u.Operand.(*formula.Binary)
	require.True(t, ok, "the negated operand must be the power")
	assert.Equal(t, formula.OpPow, b.Op)

	tree, err = formula.Parse("2^-2")
	require.NoError(t, err)

	b, ok = tree.Root().(*formula.Binary)
	require.True(t, ok, "2^-2 must parse as a power")
	assert.Equal(t, formula.OpPow, b.Op)
	_, ok = b.Right.(*formula.Unary)
	assert.True(t, ok, "the exponent must be the negation")
}

// TestParse_PowerRightAssociative verifies 2^3^2 groups as 2^(3^2).
func TestParse_PowerRightAssociative(t *testing.T) {
	tree, err := formula.Parse("2^3^2")
	require.NoError(t, err)

	outer, ok := tree.Root().(*formula.Binary)
	require.True(t, ok)
	require.Equal(t, formula.OpPow, outer.Op)

	inner, ok := outer.Right.(*formula.Binary)
	require.True(t, ok, "the right operand must itself be a power")
	assert.Equal(t, formula.OpPow, inner.Op)
}

// TestParse_SubtractionLeftAssociative verifies 1 - 2 - 3 groups as (1-2)-3.
func TestParse_SubtractionLeftAssociative(t *testing.T) {
	tree, err := formula.Parse("1 - 2 - 3")
	require.NoError(t, err)

	outer, ok := tree.Root().(*formula.Binary)
	require.True(t, ok)
	require.Equal(t, formula.OpSub, outer.Op)

	inner, ok := outer.Left.(*formula.Binary)
	require.True(t, ok, "the left operand must be the first subtraction")
	assert.Equal(t, formula.OpSub, inner.Op)
}

// TestParse_Variables checks deduplication and sorted order.
func TestParse_Variables(t *testing.T) {
	tree, err := formula.Parse("b + a * b - c")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, tree.Variables())
}

// TestParse_LogAlias verifies that log is an alias of ln.
func TestParse_LogAlias(t *testing.T) {
	tree, err := formula.Parse("log(x)")
	require.NoError(t, err)

	c, ok := tree.Root().(*formula.Call)
	require.True(t, ok)
	assert.Equal(t, formula.FnLn, c.Fn, "log must resolve to the natural logarithm")
}

// TestParseStrict_UnknownVariable ensures strict mode rejects references
// outside the known set.
func TestParseStrict_UnknownVariable(t *testing.T) {
	_, err := formula.ParseStrict("x + q", []string{"x"})
	assert.ErrorIs(t, err, formula.ErrUnknownVariable, "q is not declared")

	var perr *formula.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "q", perr.Token)
}

// TestParseStrict_KnownShadowsConstant verifies a declared variable named
// e is a reference, not the folded constant.
func TestParseStrict_KnownShadowsConstant(t *testing.T) {
	tree, err := formula.ParseStrict("e + 1", []string{"e"})
	require.NoError(t, err)

	assert.Equal(t, []string{"e"}, tree.Variables(), "e must stay a variable when declared")
}

// TestParseError_Unwrap confirms ParseError exposes its sentinel via
// errors.Is and renders position and token in its message.
func TestParseError_Unwrap(t *testing.T) {
	_, err := formula.Parse("sin(x, y)")
	require.Error(t, err)

	assert.True(t, errors.Is(err, formula.ErrBadArity))
	assert.Contains(t, err.Error(), "sin", "message should carry the token")
}
