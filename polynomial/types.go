// SPDX-License-Identifier: MIT

package polynomial

import "sort"

// Term is one signed monomial, Coefficient * X^Exponent.
// Exponent is always >= 0.
type Term struct {
	Coefficient float64
	Exponent    int
}

// Equation holds the terms of both sides in source order.
type Equation struct {
	Left  []Term
	Right []Term
}

// Polynomial is the canonical single-sided form of an Equation:
// sum(coeff[e] * X^e) = 0. It is immutable once built.
//
// The zero value is the polynomial "0 = 0" of degree 0.
type Polynomial struct {
	coeffs   map[int]float64 // non-zero entries only
	degree   int
	variable rune
	eps      float64
}

// Degree returns the highest exponent carrying a non-zero coefficient,
// or 0 when every coefficient is zero.
func (p Polynomial) Degree() int { return p.degree }

// Coefficient returns the coefficient at exponent exp (0 if absent).
func (p Polynomial) Coefficient(exp int) float64 { return p.coeffs[exp] }

// Coefficients returns a copy of the non-zero coefficients keyed by exponent.
func (p Polynomial) Coefficients() map[int]float64 {
	out := make(map[int]float64, len(p.coeffs))
	for e, c := range p.coeffs {
		out[e] = c
	}

	return out
}

// Exponents returns the exponents with non-zero coefficients, ascending.
func (p Polynomial) Exponents() []int {
	exps := make([]int, 0, len(p.coeffs))
	for e := range p.coeffs {
		exps = append(exps, e)
	}
	sort.Ints(exps)

	return exps
}

// IsZero reports whether v counts as zero under the polynomial's numeric
// policy (exact equality unless WithEpsilon was used).
func (p Polynomial) IsZero(v float64) bool { return isZero(v, p.eps) }

// Variable returns the letter used when rendering the reduced form.
func (p Polynomial) Variable() rune {
	if p.variable == 0 {
		return DefaultVariable
	}

	return p.variable
}

// Reduced renders the reduced form, e.g. "4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0".
func (p Polynomial) Reduced() string { return render(p.coeffs, p.Variable()) }

// String implements fmt.Stringer.
func (p Polynomial) String() string { return p.Reduced() }
