// SPDX-License-Identifier: MIT

// Options for the variable letter, its case and the zero tolerance.
// Setters panic on invalid arguments; bad equation text is always an error.

package polynomial

import (
	"math"
	"unicode"
)

// ---------- Defaults (single source of truth) ----------

const (
	// MaxDegree is the highest degree a normalized polynomial may have.
	MaxDegree = 2

	// DefaultVariable is the unknown's letter.
	DefaultVariable = 'X'

	// DefaultCaseInsensitive accepts only the exact variable letter.
	DefaultCaseInsensitive = false

	// DefaultEpsilon is the zero tolerance: 0 means exact float equality.
	DefaultEpsilon = 0.0
)

const (
	panicEpsilonInvalid  = "polynomial: WithEpsilon: eps must be finite, non-negative"
	panicVariableInvalid = "polynomial: WithVariable: variable must be an ASCII letter"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	variable        rune
	caseInsensitive bool
	eps             float64
}

// WithVariable sets the letter used for the unknown (default 'X').
// Panics if v is not an ASCII letter.
func WithVariable(v rune) Option {
	if v > unicode.MaxASCII || !unicode.IsLetter(v) {
		panic(panicVariableInvalid)
	}

	return func(o *Options) { o.variable = v }
}

// WithCaseInsensitive accepts both cases of the variable letter on input.
// Reduced forms are always rendered with the configured letter.
func WithCaseInsensitive() Option {
	return func(o *Options) { o.caseInsensitive = true }
}

// WithEpsilon installs a zero tolerance: |v| <= eps counts as zero when
// combining terms, resolving the degree and classifying the discriminant.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		variable:        DefaultVariable,
		caseInsensitive: DefaultCaseInsensitive,
		eps:             DefaultEpsilon,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isVariable reports whether c spells the configured unknown.
func (o Options) isVariable(c byte) bool {
	if rune(c) == o.variable {
		return true
	}

	return o.caseInsensitive && unicode.ToUpper(rune(c)) == unicode.ToUpper(o.variable)
}

// isZero applies the numeric policy.
func isZero(v, eps float64) bool {
	if eps == 0 {
		return v == 0
	}

	return math.Abs(v) <= eps
}
