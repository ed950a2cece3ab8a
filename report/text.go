// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/computor"
	"github.com/katalvlaran/computor/polynomial"
	"github.com/katalvlaran/computor/solver"
)

// Text writes the human-readable block for a solved equation:
//
//	Reduced form: 1 * X^0 + 4 * X^1 = 0
//	Polynomial degree: 1
//	The solution is:
//	-0.250000
//
// Roots are printed with precision decimals.
func Text(w io.Writer, res computor.Result, precision int) error {
	if precision < 0 {
		return ErrBadPrecision
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Reduced form: %s\n", res.Reduced)
	fmt.Fprintf(&b, "Polynomial degree: %d\n", res.Degree)

	sol := res.Solution
	switch sol.Kind {
	case solver.AllReals:
		b.WriteString("Infinite solutions, since 0 = 0.\n")
	case solver.NoSolution:
		b.WriteString("No solution, the equation is inconsistent.\n")
	case solver.OneReal:
		if sol.HasDiscriminant {
			b.WriteString("Discriminant is zero, the solution is:\n")
		} else {
			b.WriteString("The solution is:\n")
		}
		writeReals(&b, sol.Real, precision)
	case solver.TwoReal:
		b.WriteString("Discriminant is strictly positive, the two solutions are:\n")
		writeReals(&b, sol.Real, precision)
	case solver.TwoComplex:
		b.WriteString("Discriminant is strictly negative, the two complex solutions are:\n")
		for _, z := range sol.Complex {
			b.WriteString(formatComplex(z, precision))
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// TextError writes the human-readable block for an equation that failed.
//
// An unsupported degree still shows the reduced form and degree; a parse
// error points at the offending column.
func TextError(w io.Writer, err error) error {
	var b strings.Builder

	var ude *polynomial.UnsupportedDegreeError
	var pe *polynomial.ParseError
	switch {
	case errors.As(err, &ude):
		fmt.Fprintf(&b, "Reduced form: %s\n", ude.Reduced)
		fmt.Fprintf(&b, "Polynomial degree: %d\n", ude.Degree)
		fmt.Fprintf(&b, "The polynomial degree is strictly greater than %d, I can't solve.\n", polynomial.MaxDegree)
	case errors.As(err, &pe):
		fmt.Fprintf(&b, "Syntax error: %s\n", pe.Reason)
		fmt.Fprintf(&b, "  %s\n", pe.Input)
		fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", pe.Column()-1))
	default:
		fmt.Fprintf(&b, "Error: %v\n", err)
	}

	_, werr := io.WriteString(w, b.String())

	return werr
}

func writeReals(b *strings.Builder, roots []float64, precision int) {
	for _, r := range roots {
		b.WriteString(formatReal(r, precision))
		b.WriteByte('\n')
	}
}

func formatReal(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// formatComplex renders a + bi as "a + bi" or "a - bi".
func formatComplex(z complex128, precision int) string {
	re, im := real(z), imag(z)
	sign := "+"
	if im < 0 {
		sign, im = "-", -im
	}

	return formatReal(re, precision) + " " + sign + " " + formatReal(im, precision) + "i"
}
