package formula

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenKind enumerates lexical categories produced by the tokenizer.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

// token is one lexical unit with its byte position in the input.
type token struct {
	kind tokenKind
	text string
	pos  int
	val  float64 // parsed value for tokNumber
}

// lexer walks the input byte-wise, producing one token per next() call.
// It is single-use and private to Parse.
type lexer struct {
	input string
	off   int
}

// next scans and returns the next token, or a *ParseError on malformed input.
func (lx *lexer) next() (token, error) {
	lx.skipSpace()
	if lx.off >= len(lx.input) {
		return token{kind: tokEOF, pos: lx.off}, nil
	}

	start := lx.off
	c := lx.input[lx.off]
	switch {
	case c == '+':
		lx.off++

		return token{kind: tokPlus, text: "+", pos: start}, nil
	case c == '-':
		lx.off++

		return token{kind: tokMinus, text: "-", pos: start}, nil
	case c == '*':
		lx.off++

		return token{kind: tokStar, text: "*", pos: start}, nil
	case c == '/':
		lx.off++

		return token{kind: tokSlash, text: "/", pos: start}, nil
	case c == '^':
		lx.off++

		return token{kind: tokCaret, text: "^", pos: start}, nil
	case c == '(':
		lx.off++

		return token{kind: tokLParen, text: "(", pos: start}, nil
	case c == ')':
		lx.off++

		return token{kind: tokRParen, text: ")", pos: start}, nil
	case c == ',':
		lx.off++

		return token{kind: tokComma, text: ",", pos: start}, nil
	case c >= '0' && c <= '9', c == '.':
		return lx.scanNumber()
	case isIdentStart(rune(c)), c >= utf8.RuneSelf:
		return lx.scanIdent()
	default:
		return token{}, parseErr(ErrUnexpectedToken, start, string(c))
	}
}

// skipSpace advances past ASCII whitespace.
func (lx *lexer) skipSpace() {
	for lx.off < len(lx.input) {
		switch lx.input[lx.off] {
		case ' ', '\t', '\n', '\r':
			lx.off++
		default:
			return
		}
	}
}

// scanNumber scans an integer, decimal or exponential literal and parses
// it with strconv. Malformed forms such as "1e" or "1.2.3" yield ErrBadNumber.
func (lx *lexer) scanNumber() (token, error) {
	start := lx.off

	// Integer part.
	for lx.off < len(lx.input) && isDigit(lx.input[lx.off]) {
		lx.off++
	}

	// Fractional part.
	if lx.off < len(lx.input) && lx.input[lx.off] == '.' {
		lx.off++
		for lx.off < len(lx.input) && isDigit(lx.input[lx.off]) {
			lx.off++
		}
	}

	// Exponent part.
	if lx.off < len(lx.input) && (lx.input[lx.off] == 'e' || lx.input[lx.off] == 'E') {
		save := lx.off
		lx.off++
		if lx.off < len(lx.input) && (lx.input[lx.off] == '+' || lx.input[lx.off] == '-') {
			lx.off++
		}
		if lx.off < len(lx.input) && isDigit(lx.input[lx.off]) {
			for lx.off < len(lx.input) && isDigit(lx.input[lx.off]) {
				lx.off++
			}
		} else {
			// Not an exponent after all: "2e" in "2e+x" is a bad literal,
			// but a bare trailing "e" belongs to the next identifier token
			// only when no sign was consumed. Treat both as malformed to
			// keep literals unambiguous.
			lx.off = save
			text := lx.input[start : save+1]
			lx.off = save + 1

			return token{}, parseErr(ErrBadNumber, start, text)
		}
	}

	text := lx.input[start:lx.off]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, parseErr(ErrBadNumber, start, text)
	}

	return token{kind: tokNumber, text: text, pos: start, val: v}, nil
}

// scanIdent scans a variable or function name: a letter or underscore
// followed by letters, digits or underscores.
func (lx *lexer) scanIdent() (token, error) {
	start := lx.off
	for lx.off < len(lx.input) {
		r, size := utf8.DecodeRuneInString(lx.input[lx.off:])
		if !isIdentPart(r) {
			break
		}
		lx.off += size
	}
	if lx.off == start {
		r, _ := utf8.DecodeRuneInString(lx.input[start:])

		return token{}, parseErr(ErrUnexpectedToken, start, string(r))
	}

	return token{kind: tokIdent, text: lx.input[start:lx.off], pos: start}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isBlank reports whether the input contains no tokens at all.
func isBlank(input string) bool { return strings.TrimSpace(input) == "" }
