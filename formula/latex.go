package formula

import (
	"fmt"
	"strings"
)

// latexNames maps registry functions to LaTeX command prefixes. Functions
// absent here render as \operatorname{name}.
var latexNames = map[Func]string{
	FnSin:  `\sin`,
	FnCos:  `\cos`,
	FnTan:  `\tan`,
	FnAsin: `\arcsin`,
	FnAcos: `\arccos`,
	FnAtan: `\arctan`,
	FnSinh: `\sinh`,
	FnCosh: `\cosh`,
	FnTanh: `\tanh`,
	FnExp:  `\exp`,
	FnLn:   `\ln`,
}

// LaTeX renders the tree as a LaTeX math expression: \frac for division,
// \sqrt for square roots, \cdot for products, braces around exponents.
func (t *Tree) LaTeX() string {
	return NodeLaTeX(t.root)
}

// NodeLaTeX renders a single node (and its subtree) as LaTeX. Exposed so
// derivative expressions built with Derivative can be rendered without
// wrapping them in a Tree.
func NodeLaTeX(n Node) string {
	switch v := n.(type) {
	case *Literal:
		return formatFloat(v.Value)

	case *VariableRef:
		return v.Name

	case *Unary:
		return fmt.Sprintf(`-{%s}`, NodeLaTeX(v.Operand))

	case *Binary:
		left, right := NodeLaTeX(v.Left), NodeLaTeX(v.Right)
		switch v.Op {
		case OpAdd:
			return fmt.Sprintf(`{%s} + {%s}`, left, right)
		case OpSub:
			return fmt.Sprintf(`{%s} - {%s}`, left, right)
		case OpMul:
			return fmt.Sprintf(`{%s} \cdot {%s}`, left, right)
		case OpDiv:
			return fmt.Sprintf(`\frac{%s}{%s}`, left, right)
		default: // OpPow
			return fmt.Sprintf(`{%s}^{%s}`, wrapBase(v.Left, left), right)
		}

	case *Call:
		return callLaTeX(v)

	default:
		return ""
	}
}

// callLaTeX renders function calls with their conventional LaTeX forms.
func callLaTeX(c *Call) string {
	switch c.Fn {
	case FnSqrt:
		return fmt.Sprintf(`\sqrt{%s}`, NodeLaTeX(c.Args[0]))
	case FnAbs:
		return fmt.Sprintf(`\left|%s\right|`, NodeLaTeX(c.Args[0]))
	case FnFloor:
		return fmt.Sprintf(`\lfloor %s \rfloor`, NodeLaTeX(c.Args[0]))
	case FnCeil:
		return fmt.Sprintf(`\lceil %s \rceil`, NodeLaTeX(c.Args[0]))
	case FnLog10:
		return fmt.Sprintf(`\log_{10}{\left(%s\right)}`, NodeLaTeX(c.Args[0]))
	case FnLog2:
		return fmt.Sprintf(`\log_{2}{\left(%s\right)}`, NodeLaTeX(c.Args[0]))
	case FnPow:
		base := NodeLaTeX(c.Args[0])

		return fmt.Sprintf(`{%s}^{%s}`, wrapBase(c.Args[0], base), NodeLaTeX(c.Args[1]))
	case FnAtan2:
		return fmt.Sprintf(`\operatorname{atan2}\left(%s, %s\right)`,
			NodeLaTeX(c.Args[0]), NodeLaTeX(c.Args[1]))
	default:
		if name, ok := latexNames[c.Fn]; ok {
			return fmt.Sprintf(`%s{\left(%s\right)}`, name, NodeLaTeX(c.Args[0]))
		}

		return fmt.Sprintf(`\operatorname{%s}\left(%s\right)`, c.Fn, NodeLaTeX(c.Args[0]))
	}
}

// wrapBase parenthesizes non-atomic exponentiation bases so that the
// rendered "{base}^{exp}" reads unambiguously.
func wrapBase(base Node, rendered string) string {
	switch base.(type) {
	case *Literal, *VariableRef:
		if !strings.HasPrefix(rendered, "-") {
			return rendered
		}
	}

	return `\left(` + rendered + `\right)`
}
