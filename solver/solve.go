// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/computor/polynomial"
)

// Solve classifies p by degree and computes its roots.
//
// Errors:
//   - polynomial.ErrUnsupportedDegree if p.Degree() > polynomial.MaxDegree.
//
// Complexity: O(1).
func Solve(p Polynomial) (Solution, error) {
	switch d := p.Degree(); d {
	case 0:
		return solveConstant(p), nil
	case 1:
		return solveLinear(p), nil
	case 2:
		return solveQuadratic(p), nil
	default:
		return Solution{}, fmt.Errorf("solver: degree %d: %w", d, polynomial.ErrUnsupportedDegree)
	}
}

func solveConstant(p Polynomial) Solution {
	if p.IsZero(p.Coefficient(0)) {
		return Solution{Kind: AllReals}
	}

	return Solution{Kind: NoSolution}
}

// solveLinear: bX + c = 0, b != 0 by degree resolution.
func solveLinear(p Polynomial) Solution {
	b, c := p.Coefficient(1), p.Coefficient(0)

	return Solution{Kind: OneReal, Real: []float64{positiveZero(-c / b)}}
}

// solveQuadratic: aX² + bX + c = 0, a != 0 by degree resolution.
//
// The coefficients are first scaled by a power of two so the largest has
// magnitude in [0.5, 1); this keeps b² - 4ac finite and does not change
// the roots. Two real roots use q = -(b ± √Δ)/2 with the sign of b so the
// smaller one is not lost to cancellation.
func solveQuadratic(p Polynomial) Solution {
	a, b, c := p.Coefficient(2), p.Coefficient(1), p.Coefficient(0)
	_, k := math.Frexp(math.Max(math.Abs(a), math.Max(math.Abs(b), math.Abs(c))))
	a, b, c = math.Ldexp(a, -k), math.Ldexp(b, -k), math.Ldexp(c, -k)

	scaled := Discriminant(a, b, c)
	delta := math.Ldexp(scaled, 2*k)
	sol := Solution{Discriminant: delta, HasDiscriminant: true}

	switch {
	case p.IsZero(delta):
		sol.Kind = OneReal
		sol.Real = []float64{positiveZero(-b / (2 * a))}
	case delta > 0:
		sq := math.Sqrt(scaled)
		var minus, plus float64
		if math.Signbit(b) {
			q := (-b + sq) / 2
			minus, plus = c/q, q/a
		} else {
			q := (-b - sq) / 2
			minus, plus = q/a, c/q
		}
		sol.Kind = TwoReal
		sol.Real = []float64{positiveZero(minus), positiveZero(plus)}
	default:
		re := positiveZero(-b / (2 * a))
		im := math.Abs(math.Sqrt(-scaled) / (2 * a))
		sol.Kind = TwoComplex
		sol.Complex = []complex128{complex(re, -im), complex(re, im)}
	}

	return sol
}

// Discriminant returns b² - 4ac.
func Discriminant(a, b, c float64) float64 {
	return b*b - 4*a*c
}

// positiveZero maps -0 to +0 so roots never print as "-0".
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}
