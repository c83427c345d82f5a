package formula

import (
	"strconv"
	"strings"
)

// Printing precedence levels, mirroring the grammar in parser.go.
const (
	precAdd  = 1 // + -
	precMul  = 2 // * /
	precNeg  = 3 // unary -
	precPow  = 4 // ^
	precAtom = 5 // literals, variables, calls, groups
)

// String renders the tree in canonical, minimally-parenthesized form.
// The output re-parses to a tree with identical evaluation semantics
// (round-trip stability).
func (t *Tree) String() string {
	return NodeString(t.root)
}

// NodeString renders a single node (and its subtree) in the same canonical
// form as Tree.String. Exposed so derivative expressions built with
// Derivative can be rendered without wrapping them in a Tree.
func NodeString(n Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)

	return b.String()
}

// nodePrec returns the printing precedence of n's top operator.
func nodePrec(n Node) int {
	switch v := n.(type) {
	case *Binary:
		switch v.Op {
		case OpAdd, OpSub:
			return precAdd
		case OpMul, OpDiv:
			return precMul
		default:
			return precPow
		}
	case *Unary:
		return precNeg
	case *Literal:
		if v.Value < 0 {
			// A negative literal prints with a leading '-', so it binds
			// like a negation when embedded in a larger expression.
			return precNeg
		}

		return precAtom
	default:
		return precAtom
	}
}

// writeNode renders n into b, parenthesizing when n binds looser than
// the surrounding context.
func writeNode(b *strings.Builder, n Node, context int) {
	prec := nodePrec(n)
	if prec < context {
		b.WriteByte('(')
		writeBare(b, n)
		b.WriteByte(')')

		return
	}
	writeBare(b, n)
}

// writeBare renders n without considering the outer context.
func writeBare(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Literal:
		b.WriteString(formatFloat(v.Value))

	case *VariableRef:
		b.WriteString(v.Name)

	case *Unary:
		b.WriteByte('-')
		// The operand context is precPow so "-x^2" stays -(x^2) on re-parse,
		// while "-(x*y)" keeps its parentheses.
		writeNode(b, v.Operand, precPow)

	case *Binary:
		switch v.Op {
		case OpAdd:
			writeNode(b, v.Left, precAdd)
			b.WriteString(" + ")
			writeNode(b, v.Right, precAdd+1)
		case OpSub:
			writeNode(b, v.Left, precAdd)
			b.WriteString(" - ")
			writeNode(b, v.Right, precAdd+1)
		case OpMul:
			writeNode(b, v.Left, precMul)
			b.WriteString(" * ")
			writeNode(b, v.Right, precMul+1)
		case OpDiv:
			writeNode(b, v.Left, precMul)
			b.WriteString(" / ")
			writeNode(b, v.Right, precMul+1)
		case OpPow:
			// '^' is right-associative: the left child needs parentheses
			// unless atomic; the right child re-admits unary minus.
			writeNode(b, v.Left, precAtom)
			b.WriteByte('^')
			writeNode(b, v.Right, precNeg)
		}

	case *Call:
		b.WriteString(v.Fn.String())
		b.WriteByte('(')
		for i, a := range v.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeNode(b, a, 0)
		}
		b.WriteByte(')')
	}
}

// formatFloat renders a literal with the shortest representation that
// round-trips through strconv.ParseFloat.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
