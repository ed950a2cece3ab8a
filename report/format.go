// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"
)

// Format selects the output encoding.
type Format int

const (
	// FormatText is the human-readable block per equation.
	FormatText Format = iota

	// FormatJSON is an indented JSON array.
	FormatJSON

	// FormatYAML is a multi-document YAML stream.
	FormatYAML
)

// DefaultPrecision is the number of decimals printed for roots in text mode.
const DefaultPrecision = 6

var formatNames = map[string]Format{
	"text": FormatText,
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}

// ParseFormat maps "text", "json" or "yaml" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, name)
	}

	return f, nil
}

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}
