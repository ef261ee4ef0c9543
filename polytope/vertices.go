// SPDX-License-Identifier: MIT
package polytope

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
)

// Vertices enumerates the vertices of {x : A·x ≤ b}: every point where n
// linearly independent constraints are tight and all others hold within tol.
// Duplicates (degenerate vertices hit by several subsets) are reported once.
//
// Implementation:
//   - Stage 1: walk the n-subsets of rows in lexicographic order.
//   - Stage 2: solve the n×n tight system; singular subsets are skipped.
//   - Stage 3: keep feasible, not-yet-seen points.
//
// Complexity: O(C(m,n)·n³). Intended for the small polygons the UI draws.
func (p *Problem) Vertices(tol float64) ([][]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Vertices: %w", err)
	}
	m, n := p.Rows(), p.Dim()
	if m < n {
		return nil, nil
	}
	var (
		out  [][]float64
		idx  = make([]int, n)
		rows = make([][]float64, n)
		rhs  = make([]float64, n)
		i    int
	)
	for i = range idx {
		idx[i] = i
	}
	for {
		for i = range idx {
			row, err := p.A.Row(idx[i])
			if err != nil {
				return nil, fmt.Errorf("Vertices: %w", err)
			}
			rows[i] = row
			rhs[i] = p.B[idx[i]]
		}
		sub, err := matrix.NewDenseFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("Vertices: %w", err)
		}
		x, err := matrix.Solve(sub, rhs)
		switch {
		case errors.Is(err, matrix.ErrSingular):
			// parallel or dependent constraints: no vertex
		case err != nil:
			return nil, fmt.Errorf("Vertices: %w", err)
		case p.Feasible(x, tol) && !containsPoint(out, x, tol):
			out = append(out, x)
		}
		if !nextCombination(idx, m) {
			break
		}
	}

	return out, nil
}

// VertexCentroid returns the average of the polytope's vertices. For a
// bounded, full-dimensional polytope this is a strictly interior point.
//
// Errors: lp.ErrInfeasible when no vertex exists.
func (p *Problem) VertexCentroid(tol float64) ([]float64, error) {
	vs, err := p.Vertices(tol)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("VertexCentroid: no vertices: %w", lp.ErrInfeasible)
	}
	c := make([]float64, p.Dim())
	for _, v := range vs {
		c = matrix.AddVec(c, v)
	}

	return matrix.ScaleVec(1/float64(len(vs)), c), nil
}

// nextCombination advances idx (sorted, values in [0,m)) to the next
// lexicographic k-subset. It returns false after the last subset.
func nextCombination(idx []int, m int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == m-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}

	return true
}

func containsPoint(set [][]float64, x []float64, tol float64) bool {
	for _, v := range set {
		if matrix.NormInf(matrix.SubVec(v, x)) <= tol {
			return true
		}
	}

	return false
}
