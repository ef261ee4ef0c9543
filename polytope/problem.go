// SPDX-License-Identifier: MIT
package polytope

import (
	"fmt"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
)

// Inequality is one polygon edge in half-space form: A·x + B·y ≤ C.
type Inequality struct {
	A, B, C float64
}

// Problem is the LP: maximize Cᵀx subject to A·x ≤ B.
// A has one row per inequality and one column per variable.
type Problem struct {
	A *matrix.Dense
	B []float64
	C []float64
}

// New builds a Problem from row slices of A, the right-hand side b and the
// objective c. Inputs are copied.
//
// Errors: lp.ErrDimensionMismatch for empty or inconsistent shapes,
// matrix.ErrNaNInf for non-finite entries.
func New(a [][]float64, b, c []float64) (*Problem, error) {
	A, err := matrix.NewDenseFrom(a)
	if err != nil {
		return nil, fmt.Errorf("polytope.New: %w: %w", lp.ErrDimensionMismatch, err)
	}
	p := &Problem{A: A, B: matrix.CloneVec(b), C: matrix.CloneVec(c)}
	if err = p.Validate(); err != nil {
		return nil, fmt.Errorf("polytope.New: %w", err)
	}

	return p, nil
}

// FromInequalities converts 2-D polygon edges into (A, b) and attaches the
// objective c (length 2). Order is preserved: row i of A is ineqs[i].
func FromInequalities(ineqs []Inequality, c []float64) (*Problem, error) {
	if len(ineqs) == 0 {
		return nil, fmt.Errorf("polytope.FromInequalities: no inequalities: %w", lp.ErrDimensionMismatch)
	}
	rows := make([][]float64, len(ineqs))
	b := make([]float64, len(ineqs))
	for i, q := range ineqs {
		rows[i] = []float64{q.A, q.B}
		b[i] = q.C
	}

	return New(rows, b, c)
}

// Validate checks the shape contract: A non-nil, len(B) == rows, len(C) == cols,
// and every entry finite. Engines call it once at entry.
func (p *Problem) Validate() error {
	if p == nil || p.A == nil {
		return fmt.Errorf("nil problem: %w", lp.ErrDimensionMismatch)
	}
	m, n := p.A.Shape()
	if len(p.B) != m {
		return fmt.Errorf("len(b)=%d, rows=%d: %w", len(p.B), m, lp.ErrDimensionMismatch)
	}
	if len(p.C) != n {
		return fmt.Errorf("len(c)=%d, cols=%d: %w", len(p.C), n, lp.ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(p.B); err != nil {
		return fmt.Errorf("b: %w", err)
	}
	if err := matrix.ValidateFinite(p.C); err != nil {
		return fmt.Errorf("c: %w", err)
	}

	return nil
}

// Rows returns the number of inequalities m.
func (p *Problem) Rows() int { return p.A.Rows() }

// Dim returns the number of variables n.
func (p *Problem) Dim() int { return p.A.Cols() }

// Residual returns r = b − A·x (positive entries mean strict slack).
func (p *Problem) Residual(x []float64) ([]float64, error) {
	ax, err := matrix.MatVec(p.A, x)
	if err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}

	return matrix.SubVec(p.B, ax), nil
}

// Objective returns cᵀx.
func (p *Problem) Objective(x []float64) float64 { return matrix.Dot(p.C, x) }

// Feasible reports whether A·x ≤ b + tol holds for every row.
func (p *Problem) Feasible(x []float64, tol float64) bool {
	r, err := p.Residual(x)
	if err != nil {
		return false
	}
	for _, v := range r {
		if v < -tol {
			return false
		}
	}

	return true
}

// Filter returns the sub-problem made of the rows i with keep[i] == true.
// Errors: lp.ErrDimensionMismatch when len(keep) != Rows() or nothing is kept.
func (p *Problem) Filter(keep []bool) (*Problem, error) {
	if len(keep) != p.Rows() {
		return nil, fmt.Errorf("Filter: len(keep)=%d: %w", len(keep), lp.ErrDimensionMismatch)
	}
	var (
		rows [][]float64
		b    []float64
	)
	for i, k := range keep {
		if !k {
			continue
		}
		row, err := p.A.Row(i)
		if err != nil {
			return nil, fmt.Errorf("Filter: %w", err)
		}
		rows = append(rows, row)
		b = append(b, p.B[i])
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Filter: no rows kept: %w", lp.ErrDimensionMismatch)
	}

	return New(rows, b, p.C)
}
