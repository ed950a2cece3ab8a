// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"github.com/katalvlaran/computor/polynomial"
	"github.com/katalvlaran/computor/solver"
)

// ExampleSolve solves a quadratic with a negative discriminant.
func ExampleSolve() {
	p, err := polynomial.ParseAndNormalize("X^2 = -1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sol, err := solver.Solve(p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sol.Kind, sol.Discriminant, sol.Complex)
	// Output:
	// two-complex -4 [(0-1i) (0+1i)]
}
