// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrBadPrecision is returned when a negative digit count is requested.
	ErrBadPrecision = errors.New("report: precision must be >= 0")
)
