package formula

// Parse - tokenizer + recursive-descent parser for measurement formulas.
//
// Grammar (lowest to highest precedence):
//
//	expr   := term  (('+' | '-') term)*
//	term   := unary (('*' | '/') unary)*
//	unary  := '-' unary | power
//	power  := atom ('^' unary)?          // right-associative
//	atom   := number | ident | ident '(' expr (',' expr)* ')' | '(' expr ')'
//
// The placement of unary in the grammar fixes the unary-minus convention:
// "-2^2" parses as -(2^2) == -4, while "2^-2" parses as 2^(-2) == 0.25,
// because the right operand of '^' re-admits unary minus.
//
// Contract:
//   - Pure function from text to *Tree or *ParseError; no side effects.
//   - Identifiers followed by '(' must name a registry function.
//   - Bare identifiers become VariableRefs, except the constants pi and e,
//     which fold to literals.
//
// Complexity: O(len(input)) time, O(tree size) space.

// Parse parses input into an expression tree. Any identifier that is not
// a registry function or a constant becomes a variable reference; binding
// is checked at evaluation time.
//
// Errors: *ParseError wrapping ErrEmptyFormula, ErrUnexpectedToken,
// ErrUnknownFunction, ErrUnbalancedParentheses, ErrBadArity or ErrBadNumber.
func Parse(input string) (*Tree, error) {
	return parse(input, nil)
}

// ParseStrict parses input like Parse, but additionally requires every
// variable reference to name one of the known variables; others fail with
// a *ParseError wrapping ErrUnknownVariable. A known name shadows the
// constants pi and e.
func ParseStrict(input string, known []string) (*Tree, error) {
	set := make(map[string]struct{}, len(known))
	for _, name := range known {
		set[name] = struct{}{}
	}

	return parse(input, set)
}

// parse drives the parser; known==nil selects lenient variable handling.
func parse(input string, known map[string]struct{}) (*Tree, error) {
	if isBlank(input) {
		return nil, parseErr(ErrEmptyFormula, 0, "")
	}

	p := &parser{lx: &lexer{input: input}, known: known}
	if err := p.advance(); err != nil {
		return nil, err
	}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	// The whole input must be consumed; a stray ')' is a balance problem,
	// anything else is an unexpected token.
	switch p.tok.kind {
	case tokEOF:
		return newTree(root, input), nil
	case tokRParen:
		return nil, parseErr(ErrUnbalancedParentheses, p.tok.pos, p.tok.text)
	default:
		return nil, parseErr(ErrUnexpectedToken, p.tok.pos, p.tok.text)
	}
}

// parser holds one-token lookahead over the lexer.
type parser struct {
	lx    *lexer
	tok   token
	known map[string]struct{}
}

// advance loads the next token into the lookahead slot.
func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.tok = tok

	return nil
}

// parseExpr handles '+' and '-' (left-associative).
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := OpAdd
		if p.tok.kind == tokMinus {
			op = OpSub
		}
		if err = p.advance(); err != nil {
			return nil, err
		}

		right, rerr := p.parseTerm()
		if rerr != nil {
			return nil, rerr
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}

	return left, nil
}

// parseTerm handles '*' and '/' (left-associative).
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.tok.kind == tokStar || p.tok.kind == tokSlash {
		op := OpMul
		if p.tok.kind == tokSlash {
			op = OpDiv
		}
		if err = p.advance(); err != nil {
			return nil, err
		}

		right, rerr := p.parseUnary()
		if rerr != nil {
			return nil, rerr
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}

	return left, nil
}

// parseUnary handles prefix '-'.
func (p *parser) parseUnary() (Node, error) {
	if p.tok.kind == tokMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &Unary{Op: OpNeg, Operand: operand}, nil
	}

	return p.parsePower()
}

// parsePower handles '^' (right-associative; the right operand re-enters
// parseUnary so "2^-2" is legal).
func (p *parser) parsePower() (Node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if p.tok.kind != tokCaret {
		return base, nil
	}
	if err = p.advance(); err != nil {
		return nil, err
	}

	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &Binary{Op: OpPow, Left: base, Right: exp}, nil
}

// parseAtom handles literals, identifiers, calls and parenthesized groups.
func (p *parser) parseAtom() (Node, error) {
	switch p.tok.kind {
	case tokNumber:
		n := &Literal{Value: p.tok.val}
		if err := p.advance(); err != nil {
			return nil, err
		}

		return n, nil

	case tokIdent:
		return p.parseIdent()

	case tokLParen:
		open := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, parseErr(ErrUnbalancedParentheses, open.pos, open.text)
		}
		if err = p.advance(); err != nil {
			return nil, err
		}

		return inner, nil

	case tokEOF:
		return nil, parseErr(ErrUnexpectedToken, p.tok.pos, "")

	default:
		return nil, parseErr(ErrUnexpectedToken, p.tok.pos, p.tok.text)
	}
}

// parseIdent resolves an identifier into a call, a constant or a variable.
func (p *parser) parseIdent() (Node, error) {
	name := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	// A following '(' makes this a function call.
	if p.tok.kind == tokLParen {
		fn, ok := LookupFunc(name.text)
		if !ok {
			return nil, parseErr(ErrUnknownFunction, name.pos, name.text)
		}

		return p.parseCall(fn, name)
	}

	// Known variables shadow constants; outside a known set, constants fold.
	if p.known != nil {
		if _, ok := p.known[name.text]; ok {
			return &VariableRef{Name: name.text}, nil
		}
		if v, ok := constants[name.text]; ok {
			return &Literal{Value: v}, nil
		}

		return nil, parseErr(ErrUnknownVariable, name.pos, name.text)
	}
	if v, ok := constants[name.text]; ok {
		return &Literal{Value: v}, nil
	}

	return &VariableRef{Name: name.text}, nil
}

// parseCall parses the argument list of fn; the lookahead is at '('.
func (p *parser) parseCall(fn Func, name token) (Node, error) {
	open := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	args := make([]Node, 0, fn.Arity())
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.tok.kind {
		case tokComma:
			if err = p.advance(); err != nil {
				return nil, err
			}
		case tokRParen:
			if err = p.advance(); err != nil {
				return nil, err
			}
			if len(args) != fn.Arity() {
				return nil, parseErr(ErrBadArity, name.pos, name.text)
			}

			return &Call{Fn: fn, Args: args}, nil
		case tokEOF:
			return nil, parseErr(ErrUnbalancedParentheses, open.pos, open.text)
		default:
			return nil, parseErr(ErrUnexpectedToken, p.tok.pos, p.tok.text)
		}
	}
}
