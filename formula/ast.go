package formula

import "sort"

// Node is the interface implemented by every expression-tree node.
// Nodes are immutable after Parse and safe for concurrent reads.
type Node interface {
	node()
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	// OpNeg is arithmetic negation.
	OpNeg UnaryOp = iota
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	// OpAdd is addition.
	OpAdd BinaryOp = iota
	// OpSub is subtraction.
	OpSub
	// OpMul is multiplication.
	OpMul
	// OpDiv is division.
	OpDiv
	// OpPow is exponentiation (right-associative in the grammar).
	OpPow
)

// Literal is a numeric constant.
type Literal struct {
	Value float64
}

// VariableRef references a named variable bound at evaluation time.
type VariableRef struct {
	Name string
}

// Unary applies a unary operation to a child expression.
type Unary struct {
	Op      UnaryOp
	Operand Node
}

// Binary applies a binary operation to two child expressions.
type Binary struct {
	Op          BinaryOp
	Left, Right Node
}

// Call applies a registry function to its arguments.
// len(Args) always equals Fn.Arity() on trees produced by Parse.
type Call struct {
	Fn   Func
	Args []Node
}

func (*Literal) node()     {}
func (*VariableRef) node() {}
func (*Unary) node()       {}
func (*Binary) node()      {}
func (*Call) node()        {}

// Tree is an immutable parsed formula: the root node, the original
// source text, and the sorted set of distinct variable names referenced.
type Tree struct {
	root   Node
	source string
	vars   []string
}

// Root returns the root node of the expression tree.
func (t *Tree) Root() Node { return t.root }

// Source returns the original formula text passed to Parse.
func (t *Tree) Source() string { return t.source }

// Variables returns the distinct variable names referenced by the tree,
// sorted lexicographically. The returned slice is a copy.
func (t *Tree) Variables() []string {
	out := make([]string, len(t.vars))
	copy(out, t.vars)

	return out
}

// newTree assembles a Tree, collecting the referenced variable names.
func newTree(root Node, source string) *Tree {
	seen := map[string]struct{}{}
	collectVars(root, seen)

	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)

	return &Tree{root: root, source: source, vars: vars}
}

// collectVars walks n and records every VariableRef name into seen.
func collectVars(n Node, seen map[string]struct{}) {
	switch v := n.(type) {
	case *VariableRef:
		seen[v.Name] = struct{}{}
	case *Unary:
		collectVars(v.Operand, seen)
	case *Binary:
		collectVars(v.Left, seen)
		collectVars(v.Right, seen)
	case *Call:
		for _, a := range v.Args {
			collectVars(a, seen)
		}
	}
}
