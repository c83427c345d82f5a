package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/uncert/formula"
)

// Excel rendering of expression trees. Numbers, operators and parentheses
// follow spreadsheet syntax; registry functions map to their spreadsheet
// names below. Rendering walks the tree, so a variable named "sin" could
// never corrupt a function name the way textual substitution would.

// excelNames maps single-argument registry functions to spreadsheet names.
var excelNames = map[formula.Func]string{
	formula.FnSin:   "SIN",
	formula.FnCos:   "COS",
	formula.FnTan:   "TAN",
	formula.FnAsin:  "ASIN",
	formula.FnAcos:  "ACOS",
	formula.FnAtan:  "ATAN",
	formula.FnSinh:  "SINH",
	formula.FnCosh:  "COSH",
	formula.FnTanh:  "TANH",
	formula.FnExp:   "EXP",
	formula.FnLn:    "LN",
	formula.FnLog10: "LOG10",
	formula.FnLog2:  "LOG2",
	formula.FnSqrt:  "SQRT",
	formula.FnAbs:   "ABS",
	formula.FnFloor: "FLOOR",
	formula.FnCeil:  "CEILING",
}

// renderExcel renders n as a spreadsheet expression (without the leading
// '='), substituting refs[name] for each variable reference.
func renderExcel(n formula.Node, refs map[string]string) (string, error) {
	var b strings.Builder
	if err := writeExcel(&b, n, refs); err != nil {
		return "", err
	}

	return b.String(), nil
}

// writeExcel appends n to b. Operator children are parenthesized unless
// atomic; spreadsheets ignore redundant parentheses and the output is
// machine-consumed, so minimal-parenthesis printing is not worth its
// precedence bookkeeping here.
func writeExcel(b *strings.Builder, n formula.Node, refs map[string]string) error {
	switch v := n.(type) {
	case *formula.Literal:
		b.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))

		return nil

	case *formula.VariableRef:
		ref, ok := refs[v.Name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnboundName, v.Name)
		}
		b.WriteString(ref)

		return nil

	case *formula.Unary:
		b.WriteByte('-')

		return writeExcelChild(b, v.Operand, refs)

	case *formula.Binary:
		if err := writeExcelChild(b, v.Left, refs); err != nil {
			return err
		}
		b.WriteString(excelOp(v.Op))

		return writeExcelChild(b, v.Right, refs)

	case *formula.Call:
		return writeExcelCall(b, v, refs)

	default:
		return fmt.Errorf("%w: unsupported node", ErrUnboundName)
	}
}

// writeExcelChild parenthesizes operator subtrees, passes atoms through.
func writeExcelChild(b *strings.Builder, n formula.Node, refs map[string]string) error {
	switch n.(type) {
	case *formula.Literal, *formula.VariableRef, *formula.Call:
		return writeExcel(b, n, refs)
	default:
		b.WriteByte('(')
		if err := writeExcel(b, n, refs); err != nil {
			return err
		}
		b.WriteByte(')')

		return nil
	}
}

// writeExcelCall renders function calls, translating names and argument
// conventions.
func writeExcelCall(b *strings.Builder, c *formula.Call, refs map[string]string) error {
	switch c.Fn {
	case formula.FnPow:
		// POWER(base, exponent)
		return writeExcelArgs(b, "POWER", refs, c.Args[0], c.Args[1])
	case formula.FnAtan2:
		// The registry takes atan2(y, x); spreadsheets take ATAN2(x, y).
		return writeExcelArgs(b, "ATAN2", refs, c.Args[1], c.Args[0])
	default:
		return writeExcelArgs(b, excelNames[c.Fn], refs, c.Args[0])
	}
}

// writeExcelArgs writes name(arg, …).
func writeExcelArgs(b *strings.Builder, name string, refs map[string]string, args ...formula.Node) error {
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := writeExcel(b, a, refs); err != nil {
			return err
		}
	}
	b.WriteByte(')')

	return nil
}

// excelOp maps binary operators to spreadsheet operators.
func excelOp(op formula.BinaryOp) string {
	switch op {
	case formula.OpAdd:
		return "+"
	case formula.OpSub:
		return "-"
	case formula.OpMul:
		return "*"
	case formula.OpDiv:
		return "/"
	default:
		return "^"
	}
}
