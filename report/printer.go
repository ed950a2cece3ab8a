// SPDX-License-Identifier: MIT

package report

import (
	"io"

	"github.com/katalvlaran/computor"
)

// Printer collects the outcome of several equations and renders them in
// one format. Text blocks are written as they arrive, separated by a blank
// line; structured formats are buffered until Flush.
type Printer struct {
	out       io.Writer
	format    Format
	precision int
	docs      []Document
	written   int
}

// NewPrinter validates precision and returns a Printer writing to out.
func NewPrinter(out io.Writer, format Format, precision int) (*Printer, error) {
	if precision < 0 {
		return nil, ErrBadPrecision
	}

	return &Printer{out: out, format: format, precision: precision}, nil
}

// Add records one equation's outcome.
func (p *Printer) Add(equation string, res computor.Result, err error) error {
	if p.format != FormatText {
		p.docs = append(p.docs, NewDocument(equation, res, err))

		return nil
	}

	if p.written > 0 {
		if _, werr := io.WriteString(p.out, "\n"); werr != nil {
			return werr
		}
	}
	p.written++
	if err != nil {
		return TextError(p.out, err)
	}

	return Text(p.out, res, p.precision)
}

// Flush writes buffered documents. It is a no-op in text mode.
func (p *Printer) Flush() error {
	switch p.format {
	case FormatJSON:
		return JSON(p.out, p.docs)
	case FormatYAML:
		return YAML(p.out, p.docs)
	default:
		return nil
	}
}
