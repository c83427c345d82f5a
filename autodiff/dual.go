package autodiff

import "math"

// dual is a forward-mode dual number: a value plus the gradient of that
// value with respect to each variable, indexed by variable ordinal.
type dual struct {
	v    float64
	grad []float64
}

// constDual builds a dual with zero gradient of width n.
func constDual(v float64, n int) dual {
	return dual{v: v, grad: make([]float64, n)}
}

// varDual builds the dual for variable ordinal i (∂xᵢ/∂xᵢ = 1).
func varDual(v float64, i, n int) dual {
	d := constDual(v, n)
	d.grad[i] = 1

	return d
}

// add returns a + b.
func (a dual) add(b dual) dual {
	out := dual{v: a.v + b.v, grad: make([]float64, len(a.grad))}
	for i := range a.grad {
		out.grad[i] = a.grad[i] + b.grad[i]
	}

	return out
}

// sub returns a - b.
func (a dual) sub(b dual) dual {
	out := dual{v: a.v - b.v, grad: make([]float64, len(a.grad))}
	for i := range a.grad {
		out.grad[i] = a.grad[i] - b.grad[i]
	}

	return out
}

// neg returns -a.
func (a dual) neg() dual {
	out := dual{v: -a.v, grad: make([]float64, len(a.grad))}
	for i := range a.grad {
		out.grad[i] = -a.grad[i]
	}

	return out
}

// mul returns a * b by the product rule.
func (a dual) mul(b dual) dual {
	out := dual{v: a.v * b.v, grad: make([]float64, len(a.grad))}
	for i := range a.grad {
		out.grad[i] = a.grad[i]*b.v + a.v*b.grad[i]
	}

	return out
}

// div returns a / b by the quotient rule; division by zero is a domain error.
func (a dual) div(b dual) (dual, error) {
	if b.v == 0 {
		return dual{}, domainErr("/", 0)
	}

	out := dual{v: a.v / b.v, grad: make([]float64, len(a.grad))}
	bb := b.v * b.v
	for i := range a.grad {
		out.grad[i] = (a.grad[i]*b.v - a.v*b.grad[i]) / bb
	}

	return out, nil
}

// pow returns a^b. The derivative splits into the base direction
// (b·a^(b-1)) and the exponent direction (a^b·ln a); the exponent
// direction is only consulted where the exponent actually depends on a
// variable, so constant exponents over negative bases stay legal.
func (a dual) pow(b dual) (dual, error) {
	if a.v < 0 && b.v != math.Trunc(b.v) {
		return dual{}, domainErr("^", a.v)
	}
	if a.v == 0 && b.v < 0 {
		return dual{}, domainErr("^", 0)
	}

	v := math.Pow(a.v, b.v)
	dBase := b.v * math.Pow(a.v, b.v-1) // may be ±Inf/NaN at edge points
	dExp := v * math.Log(a.v)           // NaN for a ≤ 0; see gradient loop

	out := dual{v: v, grad: make([]float64, len(a.grad))}
	for i := range a.grad {
		var g float64
		if a.grad[i] != 0 {
			g += dBase * a.grad[i]
		}
		if b.grad[i] != 0 {
			g += dExp * b.grad[i]
		}
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return dual{}, domainErr("^", a.v)
		}
		out.grad[i] = g
	}

	return out, nil
}

// chain applies a scalar function with value fv and derivative dfdx to x.
// Summands with a zero input gradient contribute exactly zero, so an
// infinite dfdx at a boundary (e.g. sqrt at 0) only fails where the
// variable actually feeds the operand.
func (x dual) chain(op string, fv, dfdx float64) (dual, error) {
	out := dual{v: fv, grad: make([]float64, len(x.grad))}
	for i, gi := range x.grad {
		if gi == 0 {
			continue
		}

		g := dfdx * gi
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return dual{}, domainErr(op, x.v)
		}
		out.grad[i] = g
	}

	return out, nil
}
