// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/computor"
	"github.com/katalvlaran/computor/polynomial"
	"github.com/katalvlaran/computor/solver"
)

// Document is the structured (JSON/YAML) rendering of one equation.
type Document struct {
	Equation     string          `json:"equation" yaml:"equation"`
	ReducedForm  string          `json:"reduced_form,omitempty" yaml:"reduced_form,omitempty"`
	Degree       *int            `json:"degree,omitempty" yaml:"degree,omitempty"`
	Coefficients map[int]float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	Solution     *SolutionDoc    `json:"solution,omitempty" yaml:"solution,omitempty"`
	Error        string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// SolutionDoc mirrors solver.Solution with a string kind. A discriminant
// outside the float64 range is left out, JSON has no encoding for it.
type SolutionDoc struct {
	Kind         string   `json:"kind" yaml:"kind"`
	Discriminant *float64 `json:"discriminant,omitempty" yaml:"discriminant,omitempty"`
	Roots        []Root   `json:"roots,omitempty" yaml:"roots,omitempty"`
}

// Root is one solution; Im is zero for real roots.
type Root struct {
	Re float64 `json:"re" yaml:"re"`
	Im float64 `json:"im,omitempty" yaml:"im,omitempty"`
}

// NewDocument builds the Document for equation from the outcome of
// computor.Compute. When err is non-nil res is ignored.
func NewDocument(equation string, res computor.Result, err error) Document {
	doc := Document{Equation: equation}
	if err != nil {
		doc.Error = err.Error()
		var ude *polynomial.UnsupportedDegreeError
		if errors.As(err, &ude) {
			doc.ReducedForm = ude.Reduced
			doc.Degree = &ude.Degree
		}

		return doc
	}

	degree := res.Degree
	doc.ReducedForm = res.Reduced
	doc.Degree = &degree
	doc.Coefficients = res.Coefficients
	doc.Solution = newSolutionDoc(res.Solution)

	return doc
}

func newSolutionDoc(sol solver.Solution) *SolutionDoc {
	sd := &SolutionDoc{Kind: sol.Kind.String()}
	if sol.HasDiscriminant && !math.IsInf(sol.Discriminant, 0) {
		delta := sol.Discriminant
		sd.Discriminant = &delta
	}
	for _, r := range sol.Real {
		sd.Roots = append(sd.Roots, Root{Re: r})
	}
	for _, z := range sol.Complex {
		sd.Roots = append(sd.Roots, Root{Re: real(z), Im: imag(z)})
	}

	return sd
}

// JSON writes docs as an indented JSON array.
func JSON(w io.Writer, docs []Document) error {
	if docs == nil {
		docs = []Document{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(docs)
}

// YAML writes docs as a YAML stream, one document each.
func YAML(w io.Writer, docs []Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return err
		}
	}

	return enc.Close()
}
