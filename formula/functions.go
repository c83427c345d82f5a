package formula

import "math"

// Func identifies a function from the fixed registry. The zero value is FnSin;
// Call nodes produced by Parse always carry a valid Func.
type Func int

const (
	FnSin Func = iota
	FnCos
	FnTan
	FnAsin
	FnAcos
	FnAtan
	FnSinh
	FnCosh
	FnTanh
	FnExp
	FnLn
	FnLog10
	FnLog2
	FnSqrt
	FnAbs
	FnFloor
	FnCeil
	FnPow
	FnAtan2
)

// funcNames maps each Func to its canonical lowercase name.
var funcNames = map[Func]string{
	FnSin:   "sin",
	FnCos:   "cos",
	FnTan:   "tan",
	FnAsin:  "asin",
	FnAcos:  "acos",
	FnAtan:  "atan",
	FnSinh:  "sinh",
	FnCosh:  "cosh",
	FnTanh:  "tanh",
	FnExp:   "exp",
	FnLn:    "ln",
	FnLog10: "log10",
	FnLog2:  "log2",
	FnSqrt:  "sqrt",
	FnAbs:   "abs",
	FnFloor: "floor",
	FnCeil:  "ceil",
	FnPow:   "pow",
	FnAtan2: "atan2",
}

// registry maps accepted call names to functions. "log" is an alias
// for the natural logarithm.
var registry = map[string]Func{
	"sin":   FnSin,
	"cos":   FnCos,
	"tan":   FnTan,
	"asin":  FnAsin,
	"acos":  FnAcos,
	"atan":  FnAtan,
	"sinh":  FnSinh,
	"cosh":  FnCosh,
	"tanh":  FnTanh,
	"exp":   FnExp,
	"ln":    FnLn,
	"log":   FnLn,
	"log10": FnLog10,
	"log2":  FnLog2,
	"sqrt":  FnSqrt,
	"abs":   FnAbs,
	"floor": FnFloor,
	"ceil":  FnCeil,
	"pow":   FnPow,
	"atan2": FnAtan2,
}

// constants are identifiers folded to literals at parse time, unless the
// caller's known-variable set claims the name (see ParseStrict).
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// String returns the canonical lowercase name of f.
func (f Func) String() string { return funcNames[f] }

// Arity returns the number of arguments f requires.
func (f Func) Arity() int {
	switch f {
	case FnPow, FnAtan2:
		return 2
	default:
		return 1
	}
}

// LookupFunc resolves a call name against the registry.
func LookupFunc(name string) (Func, bool) {
	f, ok := registry[name]

	return f, ok
}
