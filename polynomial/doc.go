// SPDX-License-Identifier: MIT

// Package polynomial turns a textual polynomial equation into its canonical,
// single-sided form.
//
// What it does:
//
//	Parse splits "5 * X^0 + 4 * X^1 = 4 * X^0" on '=' and scans each side
//	into signed monomial terms. Normalize then moves every right-hand term
//	to the left (left - right = 0), combines like terms by exponent and
//	freezes the result into a Polynomial that knows its degree and its
//	reduced form ("1 * X^0 + 4 * X^1 = 0").
//
// Grammar (whitespace is allowed between any two tokens):
//
//	equation := side '=' side
//	side     := [sign] term { sign term }
//	sign     := '+' | '-'
//	term     := number [ ['*'] var [ '^' uint ] ] | var [ '^' uint ]
//	number   := digits [ '.' digits ] | '.' digits
//
// A bare number has exponent 0, a bare variable has coefficient 1 and
// exponent 1.
//
// Errors:
//   - ErrParse (concrete *ParseError) for anything outside the grammar.
//   - ErrUnsupportedDegree (concrete *UnsupportedDegreeError) when the
//     combined polynomial has a non-zero coefficient above X^2.
//
// Numeric policy:
//
//	Coefficients are float64. A coefficient is zero only when it equals 0.0
//	exactly, unless WithEpsilon installs a tolerance.
//
// Usage:
//
//	p, err := polynomial.ParseAndNormalize("X^2 = -1")
//	if err != nil {
//	  // errors.Is(err, polynomial.ErrParse) / polynomial.ErrUnsupportedDegree
//	}
//	fmt.Println(p.Reduced()) // 1 * X^0 + 1 * X^2 = 0
//	fmt.Println(p.Degree())  // 2
package polynomial
