// SPDX-License-Identifier: MIT
package simplex

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
)

// trace collects the iterates of one phase before they are merged into the Result.
type trace struct {
	x     [][]float64
	logs  []string
	iters []int
}

func (tr *trace) record(iter int, x []float64, line string) {
	tr.x = append(tr.x, x)
	tr.logs = append(tr.logs, line)
	tr.iters = append(tr.iters, iter)
}

// pivoter carries the pivoting state that spans both phases: the global
// pivot counter and the degeneracy guard.
type pivoter struct {
	opts  Options
	f     lp.Formatter
	iter  int  // pivots performed so far, both phases
	degen int  // consecutive degenerate pivots
	bland bool // Bland's rule active
}

func newPivoter(o Options) *pivoter {
	return &pivoter{opts: o, f: lp.DefaultFormatter, bland: o.DegenerateLimit == 0}
}

// run pivots t from basis until no reduced cost exceeds Tol.
// It returns the optimal basis and its basic values.
//
// Implementation (per pivot):
//   - Stage 1: B = a[:, basis] (ascending), xB = B⁻¹b; record the iterate.
//   - Stage 2: y = B⁻ᵀc_B, z = c − aᵀy; stop when max z ≤ Tol.
//   - Stage 3: d = B⁻¹a_q; minimum ratio xB_i/d_i over d_i > Tol.
//   - Stage 4: swap, update the degeneracy guard.
//
// Errors: lp.ErrSingularSystem, lp.ErrUnbounded, lp.ErrStalled (MaxIter pivots).
func (pv *pivoter) run(t *tableau, basis []int, tr *trace) ([]int, []float64, error) {
	var (
		m       = len(t.b)
		cB      = make([]float64, m)
		isBasic = make([]bool, len(t.c))
		B, Bt   *matrix.Dense
		xB, y   []float64
		aty, d  []float64
		col     []float64
		err     error
	)
	for pivots := 0; ; pivots++ {
		// Stage 1: basic solution.
		slices.Sort(basis)
		clear(isBasic)
		members := 0
		for _, j := range basis {
			if !isBasic[j] {
				isBasic[j] = true
				members++
			}
		}
		if members != m {
			panic(fmt.Sprintf("simplex: basis has %d members, want %d", members, m))
		}
		if B, err = matrix.SelectCols(t.a, basis); err != nil {
			return basis, nil, err
		}
		if xB, err = matrix.Solve(B, t.b); err != nil {
			return basis, nil, fmt.Errorf("basic solution: %w", err)
		}
		x := t.view(basis, xB)
		tr.record(pv.iter, x, pv.f.Line(pv.f.Int(pv.iter), pv.f.Point(x), pv.f.Num(t.objective(basis, xB))))

		// Stage 2: pricing.
		for i, j := range basis {
			cB[i] = t.c[j]
		}
		if Bt, err = matrix.Transpose(B); err != nil {
			return basis, xB, err
		}
		if y, err = matrix.Solve(Bt, cB); err != nil {
			return basis, xB, fmt.Errorf("pricing: %w", err)
		}
		if aty, err = matrix.MatTVec(t.a, y); err != nil {
			return basis, xB, err
		}
		q := pv.entering(matrix.SubVec(t.c, aty), isBasic)
		if q < 0 {
			return basis, xB, nil
		}
		if pivots == pv.opts.MaxIter {
			return basis, xB, fmt.Errorf("%d pivots: %w", pivots, lp.ErrStalled)
		}

		// Stage 3: ratio test.
		if col, err = t.a.Col(q); err != nil {
			return basis, xB, err
		}
		if d, err = matrix.Solve(B, col); err != nil {
			return basis, xB, fmt.Errorf("direction: %w", err)
		}
		leave, step := pv.leaving(basis, xB, d)
		if leave < 0 {
			return basis, xB, fmt.Errorf("column %d: %w", q, lp.ErrUnbounded)
		}

		// Stage 4: swap.
		if step <= pv.opts.Tol {
			pv.degen++
			if pv.degen >= pv.opts.DegenerateLimit {
				pv.bland = true
			}
		} else {
			pv.degen = 0
		}
		basis[leave] = q
		pv.iter++
	}
}

// entering picks the entering column among non-basic j with z_j > Tol:
// the largest z_j (first on ties), or the lowest index under Bland's rule.
// It returns -1 at optimality.
func (pv *pivoter) entering(z []float64, isBasic []bool) int {
	var (
		q    = -1
		best = pv.opts.Tol
	)
	for j, v := range z {
		if isBasic[j] || v <= pv.opts.Tol {
			continue
		}
		if pv.bland {
			return j
		}
		if v > best {
			q, best = j, v
		}
	}

	return q
}

// leaving runs the minimum-ratio test over d_i > Tol. Ties go to the basic
// variable with the lowest column index. It returns the basis position and
// the step length, or -1 when the direction is unbounded.
func (pv *pivoter) leaving(basis []int, xB, d []float64) (int, float64) {
	var (
		r    = -1
		best float64
	)
	for i, di := range d {
		if di <= pv.opts.Tol {
			continue
		}
		ratio := max(xB[i], 0) / di
		if r < 0 || ratio < best || (ratio == best && basis[i] < basis[r]) {
			r, best = i, ratio
		}
	}

	return r, best
}
