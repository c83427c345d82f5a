package sheet_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uncert/confidence"
	"github.com/katalvlaran/uncert/formula"
	"github.com/katalvlaran/uncert/propagate"
	"github.com/katalvlaran/uncert/sheet"
)

// matchedLevel makes input and output confidence identical so the
// conversion factor folds away and expected strings stay literal.
const matchedLevel = 68.27

// TestFormulas_ProductWithBroadcast generates the formulas for x·y over
// a three-row x column and a single broadcast y cell.
func TestFormulas_ProductWithBroadcast(t *testing.T) {
	gen, err := sheet.Formulas("x * y", []sheet.Variable{
		{Name: "x", ValueRange: "A1:A3", UncertaintyRange: "B1:B3"},
		{Name: "y", ValueRange: "C1"},
	}, matchedLevel)
	require.NoError(t, err)

	assert.Equal(t, []string{"=A1*C1", "=A2*C1", "=A3*C1"}, gen.ValueFormulas)
	assert.Equal(t, []string{
		"=SQRT(((C1)*B1)^2)",
		"=SQRT(((C1)*B2)^2)",
		"=SQRT(((C1)*B3)^2)",
	}, gen.UncertaintyFormulas, "only x carries an uncertainty range")
}

// TestFormulas_PowerRule checks the symbolic derivative lands in the
// σ formula with cell references substituted.
func TestFormulas_PowerRule(t *testing.T) {
	gen, err := sheet.Formulas("x^2", []sheet.Variable{
		{Name: "x", ValueRange: "A1:A2", UncertaintyRange: "B1:B2"},
	}, matchedLevel)
	require.NoError(t, err)

	assert.Equal(t, []string{"=A1^2", "=A2^2"}, gen.ValueFormulas)
	assert.Equal(t, []string{
		"=SQRT(((2*A1)*B1)^2)",
		"=SQRT(((2*A2)*B2)^2)",
	}, gen.UncertaintyFormulas)
}

// TestFormulas_AllExactIsZero pins the "=0" form when no variable has
// an uncertainty range.
func TestFormulas_AllExactIsZero(t *testing.T) {
	gen, err := sheet.Formulas("x + y", []sheet.Variable{
		{Name: "x", ValueRange: "A1"},
		{Name: "y", ValueRange: "B1"},
	}, matchedLevel)
	require.NoError(t, err)

	assert.Equal(t, []string{"=A1+B1"}, gen.ValueFormulas)
	assert.Equal(t, []string{"=0"}, gen.UncertaintyFormulas)
}

// TestFormulas_UnreferencedUncertainty drops the term of a bound variable
// the formula never mentions, even when it carries an uncertainty range.
func TestFormulas_UnreferencedUncertainty(t *testing.T) {
	gen, err := sheet.Formulas("x", []sheet.Variable{
		{Name: "x", ValueRange: "A1", UncertaintyRange: "B1"},
		{Name: "y", ValueRange: "C1", UncertaintyRange: "D1"},
	}, matchedLevel)
	require.NoError(t, err)

	assert.Equal(t, []string{"=SQRT(((1)*B1)^2)"}, gen.UncertaintyFormulas,
		"y contributes no term")
}

// TestFormulas_ConversionFactor folds z(out)/z(in) into the sigma cell
// when the levels differ.
func TestFormulas_ConversionFactor(t *testing.T) {
	gen, err := sheet.Formulas("x", []sheet.Variable{
		{Name: "x", ValueRange: "A1", UncertaintyRange: "B1"},
	}, 95)
	require.NoError(t, err)

	zOut, err := confidence.Sigma(95)
	require.NoError(t, err)
	zIn, err := confidence.Sigma(68.27)
	require.NoError(t, err)
	factor := strconv.FormatFloat(zOut/zIn, 'g', -1, 64)

	want := fmt.Sprintf("=SQRT(((1)*(B1)*%s)^2)", factor)
	assert.Equal(t, []string{want}, gen.UncertaintyFormulas)
}

// TestFormulas_FunctionNames checks the spreadsheet spellings, including
// the POWER form and the swapped ATAN2 argument order.
func TestFormulas_FunctionNames(t *testing.T) {
	gen, err := sheet.Formulas("pow(x, 2) + atan2(y, x)", []sheet.Variable{
		{Name: "x", ValueRange: "A1"},
		{Name: "y", ValueRange: "C1"},
	}, matchedLevel)
	require.NoError(t, err)

	assert.Equal(t, []string{"=POWER(A1, 2)+ATAN2(A1, C1)"}, gen.ValueFormulas)
}

// TestFormulas_Errors covers each rejection path.
func TestFormulas_Errors(t *testing.T) {
	x := sheet.Variable{Name: "x", ValueRange: "A1"}

	_, err := sheet.Formulas("x", nil, matchedLevel)
	assert.ErrorIs(t, err, propagate.ErrNoVariables)

	_, err = sheet.Formulas("x", []sheet.Variable{x, x}, matchedLevel)
	assert.ErrorIs(t, err, propagate.ErrDuplicateVariable)

	_, err = sheet.Formulas("x + q", []sheet.Variable{x}, matchedLevel)
	assert.ErrorIs(t, err, formula.ErrUnknownVariable, "strict parsing rejects undeclared names")

	_, err = sheet.Formulas("x", []sheet.Variable{
		{Name: "x", ValueRange: "not-a-range"},
	}, matchedLevel)
	assert.ErrorIs(t, err, sheet.ErrBadRange)

	_, err = sheet.Formulas("x", []sheet.Variable{
		{Name: "x", ValueRange: "A1:A3", UncertaintyRange: "B1:B2"},
	}, matchedLevel)
	assert.ErrorIs(t, err, propagate.ErrUncertaintyLength)

	_, err = sheet.Formulas("x + y", []sheet.Variable{
		{Name: "x", ValueRange: "A1:A3"},
		{Name: "y", ValueRange: "C1:C2"},
	}, matchedLevel)
	assert.ErrorIs(t, err, propagate.ErrRangeLengthMismatch)

	_, err = sheet.Formulas("x", []sheet.Variable{x}, 120)
	assert.ErrorIs(t, err, confidence.ErrLevelOutOfRange)
}
