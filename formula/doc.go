// Package formula parses arithmetic expressions over named variables into
// immutable expression trees, with canonical and LaTeX printers and
// symbolic derivatives for display.
//
// 🚀 What is formula?
//
//	The front door of the uncert engine: it turns text like
//
//	    "x^2 + sin(y) / 2"
//
//	into a Tree of Literal / VariableRef / Unary / Binary / Call nodes
//	that the autodiff and sheet packages consume.
//
// ✨ Key features:
//   - operators + - * / ^ with standard precedence, ^ right-associative
//   - unary minus binds looser than ^ on its left: -2^2 == -4,
//     while the right operand of ^ re-admits it: 2^-2 == 0.25
//   - numeric literals in integer, decimal and exponential notation
//   - a fixed registry of math functions (sin, cos, ln, sqrt, pow, …)
//   - constants pi and e folded to literals at parse time
//   - position-carrying *ParseError values wrapping sentinel kinds
//
// ⚙️ Usage:
//
//	tree, err := formula.Parse("x^2 + y")
//	if err != nil {
//	  var perr *formula.ParseError
//	  if errors.As(err, &perr) { /* perr.Pos, perr.Token */ }
//	}
//	fmt.Println(tree.Variables()) // [x y]
//	fmt.Println(tree.String())    // canonical form, re-parseable
//
// Trees are immutable after Parse and safe to share across goroutines.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - One pass tokenizer + recursive-descent parser, O(len(input)).
package formula
