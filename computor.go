// SPDX-License-Identifier: MIT

package computor

import (
	"fmt"

	"github.com/katalvlaran/computor/polynomial"
	"github.com/katalvlaran/computor/solver"
)

// Result is everything the pipeline learned about one equation.
type Result struct {
	Equation     string
	Reduced      string
	Degree       int
	Coefficients map[int]float64
	Solution     solver.Solution
}

// Compute parses, normalizes and solves equation.
//
// Errors wrap polynomial.ErrParse or polynomial.ErrUnsupportedDegree, so
// errors.Is / errors.As work on the returned value. No partial Result is
// produced on error.
func Compute(equation string, opts ...polynomial.Option) (Result, error) {
	p, err := polynomial.ParseAndNormalize(equation, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("computor: %q: %w", equation, err)
	}

	sol, err := solver.Solve(p)
	if err != nil {
		return Result{}, fmt.Errorf("computor: %q: %w", equation, err)
	}

	return Result{
		Equation:     equation,
		Reduced:      p.Reduced(),
		Degree:       p.Degree(),
		Coefficients: p.Coefficients(),
		Solution:     sol,
	}, nil
}
