// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/computor/polynomial"
)

// TestWithEpsilon_PanicsOnInvalid checks constructor validation.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { polynomial.WithEpsilon(eps) }, "eps=%v", eps)
	}
	assert.NotPanics(t, func() { polynomial.WithEpsilon(0) })
}

// TestWithVariable_PanicsOnInvalid rejects non-letters and non-ASCII letters.
func TestWithVariable_PanicsOnInvalid(t *testing.T) {
	for _, v := range []rune{'1', '^', '*', 'é', ' '} {
		assert.Panics(t, func() { polynomial.WithVariable(v) }, "variable=%q", v)
	}
	assert.NotPanics(t, func() { polynomial.WithVariable('z') })
}

// TestOptions_LastWriterWins applies setters in order.
func TestOptions_LastWriterWins(t *testing.T) {
	p, err := polynomial.ParseAndNormalize("2 * B = 4",
		polynomial.WithVariable('A'),
		polynomial.WithVariable('B'),
	)
	assert.NoError(t, err)
	assert.Equal(t, "-4 * B^0 + 2 * B^1 = 0", p.Reduced())
}
