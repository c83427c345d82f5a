// Package sheet - per-row formula generation.
//
// Pipeline:
//  1. Parse the formula strictly against the variable names.
//  2. Parse every cell range; single cells broadcast, multi-row ranges
//     must agree on one row count (the engine's broadcasting rules).
//  3. Differentiate symbolically per variable (formula.Derivative).
//  4. Per row, substitute cell references and emit
//     value   = <f with cells>
//     σ_f     = SQRT(Σ (∂f/∂xᵢ with cells · σ-cellᵢ · kᵢ)²)
//     where kᵢ = z(output confidence)/z(input confidence) folds the
//     confidence conversion into the formula (omitted when ≈ 1).
package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/uncert/confidence"
	"github.com/katalvlaran/uncert/formula"
	"github.com/katalvlaran/uncert/propagate"
)

// Variable binds one formula variable to spreadsheet ranges.
//
// Fields:
//   - Name             — formula identifier, unique and case-sensitive.
//   - ValueRange       — cells holding the measured values, e.g. "A1:A10".
//   - UncertaintyRange — cells holding the uncertainties; empty means the
//     variable is exact and contributes no term.
//   - Confidence       — level, in percent, of the stored uncertainties.
//     Zero means 68.27 (plain 1σ standard deviations).
type Variable struct {
	Name             string  `json:"name"`
	ValueRange       string  `json:"valueRange"`
	UncertaintyRange string  `json:"uncertaintyRange,omitempty"`
	Confidence       float64 `json:"confidence,omitempty"`
}

// Generated holds one formula string pair per row, each with the leading
// '=' so they paste straight into cells.
type Generated struct {
	ValueFormulas       []string `json:"valueFormulas"`
	UncertaintyFormulas []string `json:"uncertaintyFormulas"`
}

// defaultInputConfidence mirrors propagate.DefaultOptions: uncertainties
// without a stated level are 1σ standard deviations.
const defaultInputConfidence = 68.27

// sigmaOneTolerance below which a confidence conversion factor is folded away.
const sigmaOneTolerance = 1e-10

// Formulas generates per-row spreadsheet formulas for src over vars at
// the given output confidence level.
//
// Contract:
//   - vars must be non-empty with unique names; every identifier in src
//     must name one of them (strict parsing).
//   - all multi-row value ranges share one row count; an uncertainty
//     range must span as many rows as its value range.
//   - outputConfidence lies in (0,100) exclusive.
//
// Errors: *formula.ParseError, ErrBadRange, confidence.ErrLevelOutOfRange,
// and propagate's ErrNoVariables / ErrDuplicateVariable /
// ErrUncertaintyLength / ErrRangeLengthMismatch sentinels.
func Formulas(src string, vars []Variable, outputConfidence float64) (*Generated, error) {
	if len(vars) == 0 {
		return nil, propagate.ErrNoVariables
	}

	names := make([]string, len(vars))
	seen := make(map[string]struct{}, len(vars))
	for i, v := range vars {
		if v.Name == "" {
			return nil, propagate.ErrBadVariableName
		}
		if _, dup := seen[v.Name]; dup {
			return nil, fmt.Errorf("%w: %q", propagate.ErrDuplicateVariable, v.Name)
		}
		seen[v.Name] = struct{}{}
		names[i] = v.Name
	}

	tree, err := formula.ParseStrict(src, names)
	if err != nil {
		return nil, err
	}

	bindings, rows, err := bindRanges(vars)
	if err != nil {
		return nil, err
	}

	zOut, err := confidence.Sigma(outputConfidence)
	if err != nil {
		return nil, fmt.Errorf("sheet: output confidence %g: %w", outputConfidence, err)
	}

	// Symbolic partials once; zero partials (variable absent from the
	// formula) drop their term entirely.
	derivs := make(map[string]formula.Node, len(vars))
	for _, name := range tree.Variables() {
		derivs[name] = formula.Derivative(tree.Root(), name)
	}

	gen := &Generated{
		ValueFormulas:       make([]string, 0, rows),
		UncertaintyFormulas: make([]string, 0, rows),
	}
	for k := 0; k < rows; k++ {
		value, unc, rerr := renderRow(tree, bindings, derivs, zOut, k)
		if rerr != nil {
			return nil, rerr
		}
		gen.ValueFormulas = append(gen.ValueFormulas, value)
		gen.UncertaintyFormulas = append(gen.UncertaintyFormulas, unc)
	}

	return gen, nil
}

// binding is one variable with its parsed ranges and confidence level.
type binding struct {
	name   string
	values Range
	unc    *Range  // nil for exact variables
	level  float64 // stated confidence of the stored uncertainties
}

// bindRanges parses and cross-checks every variable's ranges, returning
// the batch row count under single-cell broadcasting.
func bindRanges(vars []Variable) ([]binding, int, error) {
	bindings := make([]binding, len(vars))
	rows := 1
	for i, v := range vars {
		values, err := ParseRange(v.ValueRange)
		if err != nil {
			return nil, 0, err
		}
		bindings[i] = binding{name: v.Name, values: values, level: v.Confidence}

		if v.UncertaintyRange != "" {
			r, uerr := ParseRange(v.UncertaintyRange)
			if uerr != nil {
				return nil, 0, uerr
			}
			if r.Rows() != values.Rows() {
				return nil, 0, fmt.Errorf("%w: %q has %d value rows and %d uncertainty rows",
					propagate.ErrUncertaintyLength, v.Name, values.Rows(), r.Rows())
			}
			bindings[i].unc = &r
		}

		if n := values.Rows(); n > 1 {
			switch {
			case rows == 1:
				rows = n
			case rows != n:
				return nil, 0, fmt.Errorf("%w: %q has %d rows, batch has %d",
					propagate.ErrRangeLengthMismatch, v.Name, n, rows)
			}
		}
	}

	return bindings, rows, nil
}

// renderRow emits the "=value" and "=uncertainty" formulas for row k.
func renderRow(tree *formula.Tree, bindings []binding, derivs map[string]formula.Node, zOut float64, k int) (string, string, error) {
	refs := make(map[string]string, len(bindings))
	for i := range bindings {
		cell, err := bindings[i].values.Cell(k)
		if err != nil {
			return "", "", err
		}
		refs[bindings[i].name] = cell
	}

	value, err := renderExcel(tree.Root(), refs)
	if err != nil {
		return "", "", err
	}

	terms := make([]string, 0, len(bindings))
	for i := range bindings {
		b := &bindings[i]
		if b.unc == nil {
			continue
		}

		deriv, ok := derivs[b.name]
		if !ok || isZeroLiteral(deriv) {
			continue
		}

		derivText, derr := renderExcel(deriv, refs)
		if derr != nil {
			return "", "", derr
		}

		sigmaCell, cerr := b.unc.Cell(k)
		if cerr != nil {
			return "", "", cerr
		}

		factor, ferr := conversionFactor(b, zOut)
		if ferr != nil {
			return "", "", ferr
		}
		sigmaExpr := sigmaCell
		if math.Abs(factor-1) >= sigmaOneTolerance {
			sigmaExpr = fmt.Sprintf("(%s)*%s", sigmaCell, strconv.FormatFloat(factor, 'g', -1, 64))
		}

		terms = append(terms, fmt.Sprintf("((%s)*%s)^2", derivText, sigmaExpr))
	}

	if len(terms) == 0 {
		return "=" + value, "=0", nil
	}

	return "=" + value, fmt.Sprintf("=SQRT(%s)", strings.Join(terms, "+")), nil
}

// conversionFactor computes z(output)/z(input) for b.
func conversionFactor(b *binding, zOut float64) (float64, error) {
	level := b.level
	if level == 0 {
		level = defaultInputConfidence
	}

	zIn, err := confidence.Sigma(level)
	if err != nil {
		return 0, fmt.Errorf("sheet: variable %q confidence %g: %w", b.name, level, err)
	}

	return zOut / zIn, nil
}

// isZeroLiteral reports whether n is the literal 0.
func isZeroLiteral(n formula.Node) bool {
	l, ok := n.(*formula.Literal)

	return ok && l.Value == 0
}
