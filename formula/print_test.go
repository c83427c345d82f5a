package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uncert/formula"
)

// TestString_Canonical pins the canonical rendering: minimal parentheses,
// spaced '+'/'-'/'*'/'/' and tight '^'.
func TestString_Canonical(t *testing.T) {
	for input, want := range map[string]string{
		"x+y*z":      "x + y * z",
		"(x+y)*z":    "(x + y) * z",
		"x/(y*z)":    "x / (y * z)",
		"x/y*z":      "x / y * z",
		"-2^2":       "-2^2",
		"2^-2":       "2^-2",
		"2^3^2":      "2^3^2",
		"(x+y)^2":    "(x + y)^2",
		"-(x*y)":     "-(x * y)",
		"sin(x+1)":   "sin(x + 1)",
		"pow(x, 2)":  "pow(x, 2)",
		"atan2(y,x)": "atan2(y, x)",
		"2.50":       "2.5",
		"1e3":        "1000",
	} {
		tree, err := formula.Parse(input)
		require.NoError(t, err, "input %q must parse", input)
		assert.Equal(t, want, tree.String(), "canonical form of %q", input)
	}
}

// TestString_RoundTrip verifies the canonical form is a fixed point:
// printing, re-parsing and printing again yields the same text.
func TestString_RoundTrip(t *testing.T) {
	inputs := []string{
		"sqrt(x^2 + y^2)",
		"-x^2 + 2^-x",
		"a*b/c - d/(e_*f)",
		"exp(-(x - mu)^2 / (2*sigma^2))",
		"atan2(y, x) * ln(r)",
	}

	for _, input := range inputs {
		tree, err := formula.Parse(input)
		require.NoError(t, err, "input %q must parse", input)

		printed := tree.String()
		reparsed, err := formula.Parse(printed)
		require.NoError(t, err, "canonical form %q must re-parse", printed)

		assert.Equal(t, printed, reparsed.String(), "canonical form of %q must be stable", input)
	}
}

// TestLaTeX_Forms pins the LaTeX rendering of the notational special cases.
func TestLaTeX_Forms(t *testing.T) {
	for input, want := range map[string]string{
		"x/y":       `\frac{x}{y}`,
		"sqrt(x)":   `\sqrt{x}`,
		"x^2":       `{x}^{2}`,
		"(x+y)^2":   `{\left({x} + {y}\right)}^{2}`,
		"abs(x)":    `\left|x\right|`,
		"floor(x)":  `\lfloor x \rfloor`,
		"log10(x)":  `\log_{10}{\left(x\right)}`,
		"sin(x)*2":  `{\sin{\left(x\right)}} \cdot {2}`,
		"pow(x, y)": `{x}^{y}`,
	} {
		tree, err := formula.Parse(input)
		require.NoError(t, err, "input %q must parse", input)
		assert.Equal(t, want, tree.LaTeX(), "LaTeX form of %q", input)
	}
}
