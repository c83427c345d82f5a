package autodiff

import (
	"math"

	"github.com/katalvlaran/uncert/formula"
)

// Result holds a formula's value and its partial derivatives with respect
// to every variable referenced by the tree, evaluated at the binding point.
type Result struct {
	Value    float64
	Partials map[string]float64
}

// Evaluate computes tree's value and all partial derivatives at point.
//
// Contract:
//   - Every variable referenced by the tree must be bound in point,
//     else *UnknownVariableError. Extra bindings are ignored.
//   - Domain violations return *DomainError naming the operation and
//     offending operand; non-finite results return ErrNonFinite.
//   - Deterministic and side-effect free: the tree is never mutated and
//     repeated calls yield bit-identical results.
//
// Complexity: O(tree size · variable count) time, fresh scratch per call.
func Evaluate(tree *formula.Tree, point map[string]float64) (Result, error) {
	vars := tree.Variables()
	index := make(map[string]int, len(vars))
	for i, name := range vars {
		if _, ok := point[name]; !ok {
			return Result{}, &UnknownVariableError{Name: name}
		}
		index[name] = i
	}

	ev := &evaluator{point: point, index: index, width: len(vars)}
	out, err := ev.eval(tree.Root())
	if err != nil {
		return Result{}, err
	}

	// Per-operation checks catch real domain violations; this sweep catches
	// plain overflow (e.g. exp(1e9)) which is non-finite without being a
	// domain error.
	if !isFinite(out.v) {
		return Result{}, ErrNonFinite
	}
	for _, g := range out.grad {
		if !isFinite(g) {
			return Result{}, ErrNonFinite
		}
	}

	partials := make(map[string]float64, len(vars))
	for name, i := range index {
		partials[name] = out.grad[i]
	}

	return Result{Value: out.v, Partials: partials}, nil
}

// evaluator carries the binding point and the variable ordinal index
// through the tree walk.
type evaluator struct {
	point map[string]float64
	index map[string]int
	width int
}

// eval walks one node, returning its dual value.
func (ev *evaluator) eval(n formula.Node) (dual, error) {
	switch v := n.(type) {
	case *formula.Literal:
		return constDual(v.Value, ev.width), nil

	case *formula.VariableRef:
		return varDual(ev.point[v.Name], ev.index[v.Name], ev.width), nil

	case *formula.Unary:
		x, err := ev.eval(v.Operand)
		if err != nil {
			return dual{}, err
		}

		return x.neg(), nil

	case *formula.Binary:
		return ev.evalBinary(v)

	case *formula.Call:
		return ev.evalCall(v)

	default:
		// Unreachable on trees produced by formula.Parse.
		return dual{}, ErrNonFinite
	}
}

// evalBinary evaluates both children and applies the operator.
func (ev *evaluator) evalBinary(b *formula.Binary) (dual, error) {
	left, err := ev.eval(b.Left)
	if err != nil {
		return dual{}, err
	}

	right, err := ev.eval(b.Right)
	if err != nil {
		return dual{}, err
	}

	switch b.Op {
	case formula.OpAdd:
		return left.add(right), nil
	case formula.OpSub:
		return left.sub(right), nil
	case formula.OpMul:
		return left.mul(right), nil
	case formula.OpDiv:
		return left.div(right)
	default: // formula.OpPow
		return left.pow(right)
	}
}

// evalCall evaluates a registry function with its domain checks and
// chain-rule derivative.
func (ev *evaluator) evalCall(c *formula.Call) (dual, error) {
	x, err := ev.eval(c.Args[0])
	if err != nil {
		return dual{}, err
	}

	switch c.Fn {
	case formula.FnSin:
		return x.chain("sin", math.Sin(x.v), math.Cos(x.v))
	case formula.FnCos:
		return x.chain("cos", math.Cos(x.v), -math.Sin(x.v))
	case formula.FnTan:
		t := math.Tan(x.v)

		return x.chain("tan", t, 1+t*t)
	case formula.FnAsin:
		if x.v < -1 || x.v > 1 {
			return dual{}, domainErr("asin", x.v)
		}

		return x.chain("asin", math.Asin(x.v), 1/math.Sqrt(1-x.v*x.v))
	case formula.FnAcos:
		if x.v < -1 || x.v > 1 {
			return dual{}, domainErr("acos", x.v)
		}

		return x.chain("acos", math.Acos(x.v), -1/math.Sqrt(1-x.v*x.v))
	case formula.FnAtan:
		return x.chain("atan", math.Atan(x.v), 1/(1+x.v*x.v))
	case formula.FnSinh:
		return x.chain("sinh", math.Sinh(x.v), math.Cosh(x.v))
	case formula.FnCosh:
		return x.chain("cosh", math.Cosh(x.v), math.Sinh(x.v))
	case formula.FnTanh:
		t := math.Tanh(x.v)

		return x.chain("tanh", t, 1-t*t)
	case formula.FnExp:
		e := math.Exp(x.v)

		return x.chain("exp", e, e)
	case formula.FnLn:
		if x.v <= 0 {
			return dual{}, domainErr("ln", x.v)
		}

		return x.chain("ln", math.Log(x.v), 1/x.v)
	case formula.FnLog10:
		if x.v <= 0 {
			return dual{}, domainErr("log10", x.v)
		}

		return x.chain("log10", math.Log10(x.v), 1/(x.v*math.Ln10))
	case formula.FnLog2:
		if x.v <= 0 {
			return dual{}, domainErr("log2", x.v)
		}

		return x.chain("log2", math.Log2(x.v), 1/(x.v*math.Ln2))
	case formula.FnSqrt:
		if x.v < 0 {
			return dual{}, domainErr("sqrt", x.v)
		}

		return x.chain("sqrt", math.Sqrt(x.v), 0.5/math.Sqrt(x.v))
	case formula.FnAbs:
		// The derivative of |x| is undefined at 0; chain only rejects it
		// where a variable actually feeds the operand.
		d := math.NaN()
		if x.v != 0 {
			d = math.Copysign(1, x.v)
		}

		return x.chain("abs", math.Abs(x.v), d)
	case formula.FnFloor:
		return x.chain("floor", math.Floor(x.v), stepDerivative(x.v))
	case formula.FnCeil:
		return x.chain("ceil", math.Ceil(x.v), stepDerivative(x.v))
	case formula.FnPow:
		y, yerr := ev.eval(c.Args[1])
		if yerr != nil {
			return dual{}, yerr
		}

		return x.pow(y)
	default: // formula.FnAtan2
		y, yerr := ev.eval(c.Args[1])
		if yerr != nil {
			return dual{}, yerr
		}

		return evalAtan2(x, y)
	}
}

// evalAtan2 computes atan2(y, x) with partials ∂/∂y = x/(x²+y²) and
// ∂/∂x = -y/(x²+y²). The origin is a domain error.
func evalAtan2(y, x dual) (dual, error) {
	denom := x.v*x.v + y.v*y.v
	if denom == 0 {
		return dual{}, domainErr("atan2", 0)
	}

	out := dual{v: math.Atan2(y.v, x.v), grad: make([]float64, len(y.grad))}
	for i := range y.grad {
		out.grad[i] = (x.v*y.grad[i] - y.v*x.grad[i]) / denom
	}

	return out, nil
}

// stepDerivative is the derivative of floor/ceil: zero between integer
// breakpoints, undefined exactly on them.
func stepDerivative(v float64) float64 {
	if v == math.Trunc(v) {
		return math.NaN()
	}

	return 0
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
