// SPDX-License-Identifier: MIT

// Package solver classifies and solves a canonical polynomial of degree ≤ 2.
//
// Classification is a terminal state machine keyed on degree:
//
//	degree 0: c = 0        → AllReals if c is zero, NoSolution otherwise
//	degree 1: bX + c = 0   → OneReal, X = -c/b
//	degree 2: aX² + bX + c → Δ = b² - 4ac
//	          Δ > 0        → TwoReal, (-b - √Δ)/(2a) then (-b + √Δ)/(2a)
//	          Δ = 0        → OneReal, -b/(2a)
//	          Δ < 0        → TwoComplex, -b/(2a) ∓ i·|√(-Δ)/(2a)|
//
// Arithmetic is float64 throughout. Whether Δ counts as zero follows the
// polynomial's numeric policy (exact equality by default). Roots equal to
// -0 are reported as +0.
//
// Usage:
//
//	p, _ := polynomial.ParseAndNormalize("X^2 = -1")
//	sol, err := solver.Solve(p)
//	// sol.Kind == solver.TwoComplex, sol.Complex == [0-1i, 0+1i]
package solver
