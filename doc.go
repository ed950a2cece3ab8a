// Package computor solves polynomial equations of degree ≤ 2 given as text.
//
// What is computor?
//
//	A small pipeline that reads "5 * X^0 + 4 * X^1 = 4 * X^0", reduces it to
//	a single-sided canonical form, reports the degree and solves it with the
//	discriminant method.
//
// Under the hood, everything is organized under a few subpackages:
//
//	polynomial/    term scanner, normalizer, reduced form, numeric policy
//	solver/        degree classification and roots (real or complex)
//	report/        text / JSON / YAML rendering of a Result
//	cmd/computor/  command-line front end
//
// Quick example:
//
//	res, err := computor.Compute("X^2 = -1")
//	// res.Reduced  == "1 * X^0 + 1 * X^2 = 0"
//	// res.Degree   == 2
//	// res.Solution == {Kind: TwoComplex, Complex: [0-1i, 0+1i], Discriminant: -4}
//
//	go install github.com/katalvlaran/computor/cmd/computor@latest
package computor
