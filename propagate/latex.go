package propagate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/uncert/formula"
)

// UncertaintyFormula renders the symbolic propagation law for c's formula,
//
//	σ_f = sqrt( Σᵢ (∂f/∂xᵢ · σ_xᵢ)² )
//
// with the partial derivatives written out symbolically, as plain text and
// as LaTeX. It is display output for calculator UIs and reports; the
// numeric engine never evaluates these strings.
//
// A formula with no variables renders as "0" (an exact quantity).
func (c *Compiled) UncertaintyFormula() (text, latex string) {
	vars := c.tree.Variables()
	if len(vars) == 0 {
		return "0", "0"
	}

	textTerms := make([]string, 0, len(vars))
	latexTerms := make([]string, 0, len(vars))
	for _, name := range vars {
		deriv := formula.Derivative(c.tree.Root(), name)

		textTerms = append(textTerms,
			fmt.Sprintf("(%s * σ_%s)^2", formula.NodeString(deriv), name))
		latexTerms = append(latexTerms,
			fmt.Sprintf(`\left(%s \cdot \sigma_{%s}\right)^2`, formula.NodeLaTeX(deriv), name))
	}

	text = fmt.Sprintf("sqrt(%s)", strings.Join(textTerms, " + "))
	latex = fmt.Sprintf(`\sqrt{%s}`, strings.Join(latexTerms, " + "))

	return text, latex
}
