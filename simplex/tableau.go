// SPDX-License-Identifier: MIT
package simplex

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
	"github.com/katalvlaran/lpviz/polytope"
)

// tableau is one standard-form problem  max cᵀt  s.t.  a·t = b, t ≥ 0,
// whose first 2n columns are the split x = t[:n] − t[n:2n].
type tableau struct {
	a *matrix.Dense
	b []float64
	c []float64
	n int
}

// view maps the basic solution (basis, xB) back to x in the original space.
func (t *tableau) view(basis []int, xB []float64) []float64 {
	x := make([]float64, t.n)
	for i, j := range basis {
		switch {
		case j < t.n:
			x[j] += xB[i]
		case j < 2*t.n:
			x[j-t.n] -= xB[i]
		}
	}

	return x
}

// objective returns c_Bᵀ·xB.
func (t *tableau) objective(basis []int, xB []float64) float64 {
	var z float64
	for i, j := range basis {
		z += t.c[j] * xB[i]
	}

	return z
}

// phaseOne builds [ΓA  −ΓA  Γ  I]·t = Γb with c = (0, …, 0, −1, …, −1),
// where Γ = diag(±1) makes Γb ≥ 0. The artificial columns start at 2n+m.
func phaseOne(p *polytope.Problem) (*tableau, []int, error) {
	var (
		m, n = p.A.Shape()
		sign = matrix.Ones(m)
	)
	for i, v := range p.B {
		if v < 0 {
			sign[i] = -1
		}
	}
	G, err := matrix.NewDiag(sign)
	if err != nil {
		return nil, nil, err
	}
	GA, err := matrix.Mul(G, p.A)
	if err != nil {
		return nil, nil, err
	}
	negGA, err := matrix.Scale(GA, -1)
	if err != nil {
		return nil, nil, err
	}
	I, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, nil, err
	}
	a, err := matrix.HStack(GA, negGA, G, I)
	if err != nil {
		return nil, nil, err
	}
	c := make([]float64, 2*n+2*m)
	basis := make([]int, m)
	for i := range basis {
		basis[i] = 2*n + m + i
		c[basis[i]] = -1
	}

	return &tableau{a: a, b: matrix.Hadamard(sign, p.B), c: c, n: n}, basis, nil
}

// phaseTwo builds [A  −A  I]·t = b with c = (c, −c, 0).
func phaseTwo(p *polytope.Problem) (*tableau, error) {
	m, n := p.A.Shape()
	negA, err := matrix.Scale(p.A, -1)
	if err != nil {
		return nil, err
	}
	I, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, err
	}
	a, err := matrix.HStack(p.A, negA, I)
	if err != nil {
		return nil, err
	}
	c := make([]float64, 2*n+m)
	copy(c, p.C)
	for j, v := range p.C {
		c[n+j] = -v
	}

	return &tableau{a: a, b: matrix.CloneVec(p.B), c: c, n: n}, nil
}

// artificialSum returns the total value of the artificial variables still
// basic at the end of phase 1.
func artificialSum(basis []int, xB []float64, first int) float64 {
	var s float64
	for i, j := range basis {
		if j >= first {
			s += xB[i]
		}
	}

	return s
}

// repair drops the artificial columns from a phase-1 basis and pads it back
// to m columns with slack columns of t, taking a slack only when it raises
// the numerical rank.
func repair(t *tableau, basis []int) ([]int, error) {
	var (
		m      = len(t.b)
		slack0 = 2 * t.n
		keep   = make([]int, 0, m)
	)
	for _, j := range basis {
		if j < slack0+m {
			keep = append(keep, j)
		}
	}
	for j := slack0; j < slack0+m && len(keep) < m; j++ {
		if slices.Contains(keep, j) {
			continue
		}
		cand := append(slices.Clone(keep), j)
		B, err := matrix.SelectCols(t.a, cand)
		if err != nil {
			return nil, err
		}
		r, err := matrix.Rank(B, rankCond)
		if err != nil {
			return nil, err
		}
		if r > len(keep) {
			keep = cand
		}
	}
	if len(keep) != m {
		return nil, fmt.Errorf("basis repair: %d of %d columns: %w", len(keep), m, lp.ErrSingularSystem)
	}
	slices.Sort(keep)

	return keep, nil
}
