// SPDX-License-Identifier: MIT

package solver

// Polynomial is the read-only view of a canonical polynomial that Solve
// needs. *polynomial.Polynomial and polynomial.Polynomial satisfy it.
type Polynomial interface {
	Degree() int
	Coefficient(exp int) float64
	IsZero(v float64) bool
}

// Kind tags the Solution variant.
type Kind int

const (
	// NoSolution: a non-zero constant equals zero.
	NoSolution Kind = iota

	// AllReals: 0 = 0, every real number is a solution.
	AllReals

	// OneReal: a single real root (linear, or quadratic with Δ = 0).
	OneReal

	// TwoReal: two distinct real roots (Δ > 0).
	TwoReal

	// TwoComplex: a pair of complex conjugate roots (Δ < 0).
	TwoComplex
)

var kindNames = [...]string{
	NoSolution: "no-solution",
	AllReals:   "all-reals",
	OneReal:    "one-real",
	TwoReal:    "two-real",
	TwoComplex: "two-complex",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Solution is the tagged result of Solve.
//
// Fields by Kind:
//   - NoSolution, AllReals: no roots.
//   - OneReal: Real has one element.
//   - TwoReal: Real has two elements, the (-b-√Δ)/(2a) branch first.
//   - TwoComplex: Complex holds the conjugate pair, negative imaginary first.
//
// Discriminant is set only for degree 2 (HasDiscriminant reports it). It is
// ±Inf when b² - 4ac exceeds the float64 range; the roots are still finite.
type Solution struct {
	Kind            Kind
	Real            []float64
	Complex         []complex128
	Discriminant    float64
	HasDiscriminant bool
}
