// SPDX-License-Identifier: MIT
// Package polynomial: sentinel errors and their concrete carriers.
// Callers match with errors.Is against the sentinels and use errors.As to
// reach the position or degree details.

package polynomial

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrParse is returned when the equation text does not match the grammar.
	ErrParse = errors.New("polynomial: parse error")

	// ErrUnsupportedDegree is returned when the reduced polynomial has a
	// non-zero coefficient at an exponent above MaxDegree.
	ErrUnsupportedDegree = errors.New("polynomial: unsupported degree")
)

// ParseError describes where and why scanning stopped.
type ParseError struct {
	Input  string // full equation text
	Pos    int    // byte offset into Input
	Reason string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("polynomial: parse error at column %d: %s", e.Column(), e.Reason)
}

// Column is the 1-based character (not byte) column of Pos within Input.
func (e *ParseError) Column() int {
	pos := min(max(e.Pos, 0), len(e.Input))

	return utf8.RuneCountInString(e.Input[:pos]) + 1
}

// Unwrap lets errors.Is(err, ErrParse) succeed.
func (e *ParseError) Unwrap() error { return ErrParse }

// UnsupportedDegreeError carries the reduced form of a polynomial that could
// be normalized but not accepted, so the boundary can still display it.
type UnsupportedDegreeError struct {
	Degree  int
	Reduced string
}

// Error implements error.
func (e *UnsupportedDegreeError) Error() string {
	return fmt.Sprintf("polynomial: unsupported degree %d (maximum is %d)", e.Degree, MaxDegree)
}

// Unwrap lets errors.Is(err, ErrUnsupportedDegree) succeed.
func (e *UnsupportedDegreeError) Unwrap() error { return ErrUnsupportedDegree }
