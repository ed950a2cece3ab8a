// SPDX-License-Identifier: MIT

package polynomial

import (
	"sort"
	"strconv"
	"strings"
)

// render writes "c0 * X^e0 + c1 * X^e1 - ... = 0" with ascending exponents.
// Zero coefficients are expected to be absent already; an empty map
// renders as "0 = 0".
func render(coeffs map[int]float64, variable rune) string {
	exps := make([]int, 0, len(coeffs))
	for e := range coeffs {
		exps = append(exps, e)
	}
	sort.Ints(exps)

	var b strings.Builder
	for i, e := range exps {
		c := coeffs[e]
		switch {
		case i == 0 && c < 0:
			b.WriteByte('-')
			c = -c
		case i == 0:
		case c < 0:
			b.WriteString(" - ")
			c = -c
		default:
			b.WriteString(" + ")
		}
		b.WriteString(FormatCoefficient(c))
		b.WriteString(" * ")
		b.WriteRune(variable)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(e))
	}
	if b.Len() == 0 {
		b.WriteByte('0')
	}
	b.WriteString(" = 0")

	return b.String()
}

// FormatCoefficient renders v with the shortest decimal that parses back
// to the same float64: 4 → "4", 9.3 → "9.3", 0.25 → "0.25".
func FormatCoefficient(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
