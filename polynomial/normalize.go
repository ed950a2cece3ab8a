// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"math"
)

// Normalize combines the terms of eq into a canonical Polynomial.
//
// Algorithm:
//  1. acc[e] += c for every left term, acc[e] -= c for every right term.
//  2. Drop coefficients that are zero under the numeric policy.
//  3. Degree = highest remaining exponent (0 if none).
//  4. A sum that left the float64 range (±Inf) fails with ErrParse, since
//     its reduced form could not be read back.
//  5. Degree > MaxDegree fails with *UnsupportedDegreeError, which still
//     carries the reduced form.
//
// Complexity: O(T + K log K) for T terms and K distinct exponents.
func Normalize(eq Equation, opts ...Option) (Polynomial, error) {
	o := gatherOptions(opts...)

	acc := make(map[int]float64, len(eq.Left)+len(eq.Right))
	for _, t := range eq.Left {
		acc[t.Exponent] += t.Coefficient
	}
	for _, t := range eq.Right {
		acc[t.Exponent] -= t.Coefficient
	}

	return freeze(acc, o)
}

// FromCoefficients builds a Polynomial directly from exponent→coefficient
// pairs, applying the same zero policy and degree check as Normalize.
// Negative exponents are rejected with ErrParse.
func FromCoefficients(coeffs map[int]float64, opts ...Option) (Polynomial, error) {
	o := gatherOptions(opts...)

	acc := make(map[int]float64, len(coeffs))
	for e, c := range coeffs {
		if e < 0 {
			return Polynomial{}, fmt.Errorf("polynomial: negative exponent %d: %w", e, ErrParse)
		}
		acc[e] = c
	}

	return freeze(acc, o)
}

// ParseAndNormalize is Parse followed by Normalize.
func ParseAndNormalize(equation string, opts ...Option) (Polynomial, error) {
	eq, err := Parse(equation, opts...)
	if err != nil {
		return Polynomial{}, err
	}

	return Normalize(eq, opts...)
}

// freeze drops zero coefficients, rejects non-finite ones, resolves the
// degree and enforces MaxDegree. acc is owned by the returned Polynomial.
func freeze(acc map[int]float64, o Options) (Polynomial, error) {
	degree := 0
	for e, c := range acc {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return Polynomial{}, fmt.Errorf("polynomial: coefficient of exponent %d out of range: %w", e, ErrParse)
		}
		if isZero(c, o.eps) {
			delete(acc, e)

			continue
		}
		if e > degree {
			degree = e
		}
	}

	p := Polynomial{coeffs: acc, degree: degree, variable: o.variable, eps: o.eps}
	if degree > MaxDegree {
		return Polynomial{}, &UnsupportedDegreeError{Degree: degree, Reduced: p.Reduced()}
	}

	return p, nil
}
