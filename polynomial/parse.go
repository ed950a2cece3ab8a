// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse scans equation into the terms of its two sides.
//
// Algorithm:
//  1. Require exactly one '='; split there.
//  2. For each side, read an optional leading sign, then repeat
//     term, sign, term, ... until the side is exhausted.
//  3. A term is [number] ['*' var] ['^' uint] with the restrictions listed
//     in the package grammar.
//
// Errors: *ParseError (errors.Is(err, ErrParse)) with the byte offset of the
// first offending character.
//
// Complexity: O(len(equation)).
func Parse(equation string, opts ...Option) (Equation, error) {
	o := gatherOptions(opts...)

	eq := strings.IndexByte(equation, '=')
	if eq < 0 {
		return Equation{}, &ParseError{Input: equation, Pos: len(equation), Reason: "missing '='"}
	}
	if next := strings.IndexByte(equation[eq+1:], '='); next >= 0 {
		return Equation{}, &ParseError{Input: equation, Pos: eq + 1 + next, Reason: "more than one '='"}
	}

	left, err := (&scanner{src: equation, pos: 0, end: eq, opts: o}).side()
	if err != nil {
		return Equation{}, err
	}
	right, err := (&scanner{src: equation, pos: eq + 1, end: len(equation), opts: o}).side()
	if err != nil {
		return Equation{}, err
	}

	return Equation{Left: left, Right: right}, nil
}

// scanner reads one side of the equation, src[pos:end].
type scanner struct {
	src  string
	pos  int
	end  int
	opts Options
}

func (s *scanner) errorf(pos int, format string, args ...any) error {
	return &ParseError{Input: s.src, Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

func (s *scanner) skipSpace() {
	for s.pos < s.end && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// peek returns the current byte or 0 at the end of the side.
func (s *scanner) peek() byte {
	if s.pos >= s.end {
		return 0
	}

	return s.src[s.pos]
}

// found describes the current position for error messages.
func (s *scanner) found() string {
	if s.pos >= s.end {
		if s.end < len(s.src) {
			return "'='"
		}

		return "end of input"
	}

	r, _ := utf8.DecodeRuneInString(s.src[s.pos:s.end])

	return strconv.QuoteRune(r)
}

func (s *scanner) side() ([]Term, error) {
	s.skipSpace()
	if s.pos >= s.end {
		return nil, s.errorf(s.pos, "empty side of equation")
	}

	sign := 1.0
	switch s.peek() {
	case '-':
		sign = -1
		s.pos++
	case '+':
		s.pos++
	}

	var terms []Term
	for {
		t, err := s.term(sign)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)

		s.skipSpace()
		switch s.peek() {
		case 0:
			if s.pos >= s.end {
				return terms, nil
			}
		case '+':
			sign = 1
			s.pos++

			continue
		case '-':
			sign = -1
			s.pos++

			continue
		}

		return nil, s.errorf(s.pos, "unexpected %s, expected '+' or '-'", s.found())
	}
}

func (s *scanner) term(sign float64) (Term, error) {
	s.skipSpace()

	coef, hasNumber := 1.0, false
	if c := s.peek(); isDigit(c) || c == '.' {
		v, err := s.number()
		if err != nil {
			return Term{}, err
		}
		coef, hasNumber = v, true
		s.skipSpace()
	}

	star := -1
	if s.peek() == '*' {
		if !hasNumber {
			return Term{}, s.errorf(s.pos, "'*' must follow a coefficient")
		}
		star = s.pos
		s.pos++
		s.skipSpace()
	}

	if !s.opts.isVariable(s.peek()) {
		switch {
		case star >= 0:
			return Term{}, s.errorf(s.pos, "expected %q after '*', found %s", s.opts.variable, s.found())
		case !hasNumber:
			return Term{}, s.errorf(s.pos, "expected a term, found %s", s.found())
		}

		return Term{Coefficient: sign * coef, Exponent: 0}, nil
	}
	s.pos++

	exp := 1
	s.skipSpace()
	if s.peek() == '^' {
		s.pos++
		s.skipSpace()
		e, err := s.exponent()
		if err != nil {
			return Term{}, err
		}
		exp = e
	}

	return Term{Coefficient: sign * coef, Exponent: exp}, nil
}

// number reads digits [ '.' digits ] | '.' digits.
func (s *scanner) number() (float64, error) {
	start := s.pos
	for s.pos < s.end && (isDigit(s.src[s.pos]) || s.src[s.pos] == '.') {
		s.pos++
	}
	lit := s.src[start:s.pos]
	if !validNumber(lit) {
		return 0, s.errorf(start, "malformed number %q", lit)
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, s.errorf(start, "malformed number %q", lit)
	}

	return v, nil
}

// exponent reads a non-negative integer.
func (s *scanner) exponent() (int, error) {
	start := s.pos
	if c := s.peek(); c == '-' || c == '+' {
		return 0, s.errorf(start, "exponent must be a non-negative integer")
	}
	for s.pos < s.end && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return 0, s.errorf(start, "expected exponent after '^', found %s", s.found())
	}
	if s.peek() == '.' {
		return 0, s.errorf(start, "exponent must be a non-negative integer")
	}
	e, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil {
		return 0, s.errorf(start, "exponent %q out of range", s.src[start:s.pos])
	}

	return e, nil
}

// validNumber reports whether lit (digits and dots only) is
// digits [ '.' digits ] or '.' digits.
func validNumber(lit string) bool {
	intPart, frac, hasDot := strings.Cut(lit, ".")
	if !hasDot {
		return intPart != ""
	}

	return frac != "" && !strings.Contains(frac, ".")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
