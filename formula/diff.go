package formula

import "math"

// Derivative - symbolic differentiation for display and formula generation.
//
// The numeric propagation path uses forward-mode dual numbers (package
// autodiff); this symbolic form exists so callers can show the partial
// derivatives and the σ_f expression to the user or substitute cell
// references into them (package sheet).
//
// Rules are the standard ones: linearity, product rule, quotient rule,
// chain rule per registry function. Results are lightly simplified
// (0/1 folding, literal folding) to stay readable, not canonicalized.
//
// Contract:
//   - Pure function; n is never mutated, shared subtrees are never rewritten.
//   - The returned node may alias subtrees of n (both are immutable).
//   - floor and ceil differentiate to 0 (piecewise-constant); their
//     breakpoints are a numeric-evaluation concern, not a symbolic one.
//
// Complexity: O(tree size) time and space per call.
func Derivative(n Node, name string) Node {
	switch v := n.(type) {
	case *Literal:
		return lit(0)

	case *VariableRef:
		if v.Name == name {
			return lit(1)
		}

		return lit(0)

	case *Unary:
		return neg(Derivative(v.Operand, name))

	case *Binary:
		return binaryDerivative(v, name)

	case *Call:
		return callDerivative(v, name)

	default:
		return lit(0)
	}
}

// binaryDerivative applies the sum, product, quotient and power rules.
func binaryDerivative(b *Binary, name string) Node {
	da := Derivative(b.Left, name)
	db := Derivative(b.Right, name)

	switch b.Op {
	case OpAdd:
		return add(da, db)
	case OpSub:
		return sub(da, db)
	case OpMul:
		return add(mul(da, b.Right), mul(b.Left, db))
	case OpDiv:
		return div(sub(mul(da, b.Right), mul(b.Left, db)), pow(b.Right, lit(2)))
	default: // OpPow
		return powDerivative(b.Left, b.Right, da, db)
	}
}

// powDerivative handles a^b. A literal exponent takes the plain power
// rule c·a^(c-1)·a'; otherwise the general form
// a^b · (b'·ln a + b·a'/a) applies.
func powDerivative(a, b, da, db Node) Node {
	if c, ok := b.(*Literal); ok {
		return mul(mul(lit(c.Value), pow(a, lit(c.Value-1))), da)
	}

	return mul(pow(a, b), add(mul(db, ln(a)), div(mul(b, da), a)))
}

// callDerivative applies the chain rule per registry function.
func callDerivative(c *Call, name string) Node {
	x := c.Args[0]
	dx := Derivative(x, name)

	switch c.Fn {
	case FnSin:
		return mul(call(FnCos, x), dx)
	case FnCos:
		return neg(mul(call(FnSin, x), dx))
	case FnTan:
		return div(dx, pow(call(FnCos, x), lit(2)))
	case FnAsin:
		return div(dx, call(FnSqrt, sub(lit(1), pow(x, lit(2)))))
	case FnAcos:
		return neg(div(dx, call(FnSqrt, sub(lit(1), pow(x, lit(2))))))
	case FnAtan:
		return div(dx, add(lit(1), pow(x, lit(2))))
	case FnSinh:
		return mul(call(FnCosh, x), dx)
	case FnCosh:
		return mul(call(FnSinh, x), dx)
	case FnTanh:
		return div(dx, pow(call(FnCosh, x), lit(2)))
	case FnExp:
		return mul(call(FnExp, x), dx)
	case FnLn:
		return div(dx, x)
	case FnLog10:
		return div(dx, mul(x, lit(math.Ln10)))
	case FnLog2:
		return div(dx, mul(x, lit(math.Ln2)))
	case FnSqrt:
		return div(dx, mul(lit(2), call(FnSqrt, x)))
	case FnAbs:
		return mul(div(x, call(FnAbs, x)), dx)
	case FnFloor, FnCeil:
		return lit(0)
	case FnPow:
		db := Derivative(c.Args[1], name)

		return powDerivative(x, c.Args[1], dx, db)
	default: // FnAtan2
		y, xx := c.Args[0], c.Args[1]
		dy := dx
		dxx := Derivative(xx, name)
		denom := add(pow(xx, lit(2)), pow(y, lit(2)))

		return div(sub(mul(xx, dy), mul(y, dxx)), denom)
	}
}

// Simplifying constructors. They fold identity and absorbing elements so
// derivative output reads like hand-written calculus rather than a
// mechanical expansion.

func lit(v float64) *Literal { return &Literal{Value: v} }

func ln(x Node) Node { return call(FnLn, x) }

func call(fn Func, args ...Node) Node { return &Call{Fn: fn, Args: args} }

func isLit(n Node, v float64) bool {
	l, ok := n.(*Literal)

	return ok && l.Value == v
}

func add(a, b Node) Node {
	switch {
	case isLit(a, 0):
		return b
	case isLit(b, 0):
		return a
	}
	if la, ok := a.(*Literal); ok {
		if lb, ok2 := b.(*Literal); ok2 {
			return lit(la.Value + lb.Value)
		}
	}

	return &Binary{Op: OpAdd, Left: a, Right: b}
}

func sub(a, b Node) Node {
	switch {
	case isLit(b, 0):
		return a
	case isLit(a, 0):
		return neg(b)
	}
	if la, ok := a.(*Literal); ok {
		if lb, ok2 := b.(*Literal); ok2 {
			return lit(la.Value - lb.Value)
		}
	}

	return &Binary{Op: OpSub, Left: a, Right: b}
}

func mul(a, b Node) Node {
	switch {
	case isLit(a, 0) || isLit(b, 0):
		return lit(0)
	case isLit(a, 1):
		return b
	case isLit(b, 1):
		return a
	}
	if la, ok := a.(*Literal); ok {
		if lb, ok2 := b.(*Literal); ok2 {
			return lit(la.Value * lb.Value)
		}
	}

	return &Binary{Op: OpMul, Left: a, Right: b}
}

func div(a, b Node) Node {
	switch {
	case isLit(a, 0):
		return lit(0)
	case isLit(b, 1):
		return a
	}

	return &Binary{Op: OpDiv, Left: a, Right: b}
}

func pow(a, b Node) Node {
	switch {
	case isLit(b, 0):
		return lit(1)
	case isLit(b, 1):
		return a
	}

	return &Binary{Op: OpPow, Left: a, Right: b}
}

func neg(a Node) Node {
	if isLit(a, 0) {
		return lit(0)
	}
	if l, ok := a.(*Literal); ok {
		return lit(-l.Value)
	}
	if u, ok := a.(*Unary); ok && u.Op == OpNeg {
		return u.Operand
	}

	return &Unary{Op: OpNeg, Operand: a}
}
