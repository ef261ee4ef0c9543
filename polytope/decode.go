// SPDX-License-Identifier: MIT
package polytope

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lpviz/lp"
)

// Document is the on-disk problem layout:
//
//	objective: [1, 1]
//	constraints:        # each row: a_1 … a_n, b   meaning a·x ≤ b
//	  - [1, 0, 1]
//	  - [0, 1, 1]
//	  - [-1, 0, 0]
//	  - [0, -1, 0]
//
// JSON with the same keys is accepted too (YAML is a superset of JSON).
type Document struct {
	Objective   []float64   `yaml:"objective"`
	Constraints [][]float64 `yaml:"constraints"`
}

// Problem converts the document into a Problem.
// Errors: lp.ErrDimensionMismatch for rows shorter than 2 or of unequal length.
func (d Document) Problem() (*Problem, error) {
	if len(d.Constraints) == 0 {
		return nil, fmt.Errorf("document: no constraints: %w", lp.ErrDimensionMismatch)
	}
	var (
		n    = len(d.Objective)
		rows = make([][]float64, len(d.Constraints))
		b    = make([]float64, len(d.Constraints))
	)
	for i, row := range d.Constraints {
		if len(row) != n+1 {
			return nil, fmt.Errorf("document: constraint %d has %d values, want %d: %w",
				i, len(row), n+1, lp.ErrDimensionMismatch)
		}
		rows[i] = row[:n]
		b[i] = row[n]
	}

	return New(rows, b, d.Objective)
}

// Decode reads a Document from r and converts it into a Problem.
func Decode(r io.Reader) (*Problem, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("polytope.Decode: %w", err)
	}

	return doc.Problem()
}

// Load decodes the problem file at path.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("polytope.Load: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
