// SPDX-License-Identifier: MIT
package centralpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
	"github.com/katalvlaran/lpviz/polytope"
)

// Engine is the engine name used in log lines and summaries.
const Engine = "central-path"

// barrier is the weighted log-barrier of one filtered problem.
type barrier struct {
	p *polytope.Problem
	w []float64
}

// value returns f_μ(x); ok is false outside the open domain r > 0.
func (bar *barrier) value(x []float64, mu float64) (v float64, ok bool, err error) {
	r, err := bar.p.Residual(x)
	if err != nil {
		return 0, false, err
	}
	v = bar.p.Objective(x)
	for i, ri := range r {
		if ri <= 0 {
			return 0, false, nil
		}
		v += mu * bar.w[i] * math.Log(ri)
	}

	return v, true, nil
}

// newton returns the gradient g = c − μ·Aᵀ(w/r) at x and, unless g is
// already below tol, the direction Δx solving μ·Aᵀdiag(w/r²)A·Δx = g.
func (bar *barrier) newton(x []float64, mu, tol float64) (g, dx []float64, err error) {
	r, err := bar.p.Residual(x)
	if err != nil {
		return nil, nil, err
	}
	var (
		m    = len(r)
		wr   = make([]float64, m)
		wr2  = make([]float64, m)
		atwr []float64
	)
	for i, ri := range r {
		wr[i] = bar.w[i] / ri
		wr2[i] = mu * wr[i] / ri
	}
	if atwr, err = matrix.MatTVec(bar.p.A, wr); err != nil {
		return nil, nil, err
	}
	g = matrix.AddScaled(bar.p.C, -mu, atwr)
	if matrix.NormInf(g) < tol {
		return g, nil, nil
	}
	H, err := matrix.WeightedGram(bar.p.A, wr2)
	if err != nil {
		return g, nil, err
	}
	if dx, err = matrix.Solve(H, g); err != nil {
		return g, nil, fmt.Errorf("Newton system: %w", err)
	}

	return g, dx, nil
}

// domainStep halves α from 1 until b − A(x+αΔx) > 1e-12 component-wise.
func (bar *barrier) domainStep(x, dx []float64) (float64, error) {
	alpha := 1.0
	for h := 0; ; h++ {
		r, err := bar.p.Residual(matrix.AddScaled(x, alpha, dx))
		if err != nil {
			return 0, err
		}
		if minOf(r) > minSlack {
			return alpha, nil
		}
		if h == maxHalvings {
			return 0, fmt.Errorf("%d halvings: %w", maxHalvings, lp.ErrLineSearchStuck)
		}
		alpha /= 2
	}
}

// armijoStep halves α from the domain-feasible step until
// f(x+αΔx) ≥ f(x) + β·α·gᵀΔx; it falls back to alpha0 below 1e-10.
func (bar *barrier) armijoStep(x, dx, g []float64, mu, alpha0, beta float64) (float64, error) {
	f0, _, err := bar.value(x, mu)
	if err != nil {
		return 0, err
	}
	slope := beta * matrix.Dot(g, dx)
	for alpha := alpha0; alpha >= minArmijo; alpha /= 2 {
		f, ok, err := bar.value(matrix.AddScaled(x, alpha, dx), mu)
		if err != nil {
			return 0, err
		}
		if ok && f >= f0+alpha*slope {
			return alpha, nil
		}
	}

	return alpha0, nil
}

// level runs damped Newton for one μ from x. It returns the final point, the
// number of steps taken and whether ‖g‖∞ < Tol was reached.
func (bar *barrier) level(x []float64, mu float64, o Options) ([]float64, int, bool, error) {
	for it := 0; it < o.MaxIter; it++ {
		g, dx, err := bar.newton(x, mu, o.Tol)
		if err != nil {
			return x, it, false, err
		}
		if dx == nil {
			return x, it, true, nil
		}
		alpha, err := bar.domainStep(x, dx)
		if err != nil {
			return x, it, false, err
		}
		if alpha, err = bar.armijoStep(x, dx, g, mu, alpha, o.Beta); err != nil {
			return x, it, false, err
		}
		x = matrix.AddScaled(x, alpha, dx)
	}

	return x, o.MaxIter, false, nil
}

func minOf(v []float64) float64 {
	lo := math.Inf(1)
	for _, x := range v {
		lo = math.Min(lo, x)
	}

	return lo
}

// filter drops the rows with zero weight. It returns nil when no row is left.
func filter(p *polytope.Problem, weights []float64) (*barrier, error) {
	if weights == nil {
		return &barrier{p: p, w: matrix.Ones(p.Rows())}, nil
	}
	var (
		keep = make([]bool, len(weights))
		w    []float64
	)
	for i, v := range weights {
		if v != 0 {
			keep[i] = true
			w = append(w, v)
		}
	}
	if len(w) == 0 {
		return nil, nil
	}
	q, err := p.Filter(keep)
	if err != nil {
		return nil, err
	}

	return &barrier{p: q, w: w}, nil
}

// start picks the first Newton point and checks it is strictly interior.
// Without a user start the vertex centroid is used; it is interior only for
// bounded, full-dimensional polytopes.
func (bar *barrier) start(s []float64) ([]float64, error) {
	if s != nil {
		x := matrix.CloneVec(s)
		r, err := bar.p.Residual(x)
		if err != nil {
			return nil, err
		}
		if minOf(r) <= 0 {
			return nil, fmt.Errorf("start %v is not strictly interior: %w", x, lp.ErrInvalidOptions)
		}
		return x, nil
	}

	x, err := bar.p.VertexCentroid(vertexTol)
	if errors.Is(err, lp.ErrInfeasible) {
		// A pointed polyhedron (rank A = n) that is non-empty has a vertex.
		rank, rerr := matrix.Rank(bar.p.A, rankCond)
		if rerr != nil {
			return nil, fmt.Errorf("start: %w", rerr)
		}
		if rank < bar.p.Dim() {
			return nil, fmt.Errorf("start: no vertices: %w", lp.ErrNoInterior)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	r, err := bar.p.Residual(x)
	if err != nil {
		return nil, err
	}
	if minOf(r) <= 0 {
		return nil, fmt.Errorf("start: vertex centroid %v: %w", x, lp.ErrNoInterior)
	}

	return x, nil
}

// Solve traces the central path of p. A nil opts means DefaultOptions().
//
// Implementation:
//   - Stage 1: validate; handle the empty-path cases (NIter = 0, all rows
//     weighted out).
//   - Stage 2: pick the start point.
//   - Stage 3: for every μ of Schedule, run damped Newton from the current
//     point; record x and μ for converged levels, log and skip the others.
//
// Status is StatusConverged when the last level converged, otherwise
// StatusMaxIterations. Result.Iterations counts Newton steps over all levels.
//
// Errors: lp.ErrDimensionMismatch / lp.ErrInvalidOptions (also a Start on
// or outside the boundary), lp.ErrInfeasible (empty polytope),
// lp.ErrNoInterior (no vertex centroid strictly inside: unbounded or
// lower-dimensional polytope), lp.ErrSingularSystem (singular Hessian).
func Solve(p *polytope.Problem, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	var (
		res = &Result{Result: lp.NewResult(Engine, o.Verbose)}
		f   = lp.DefaultFormatter
	)
	fail := func(err error) (*Result, error) {
		return res, res.Fail(fmt.Errorf("centralpath.Solve: %w", err))
	}

	// Stage 1: validation and empty paths.
	if err := p.Validate(); err != nil {
		return fail(err)
	}
	if err := o.validate(p.Rows(), p.Dim()); err != nil {
		return fail(err)
	}
	res.Schedule = Schedule(o.NIter, o.Mu0, o.Mu1)
	if len(res.Schedule) == 0 {
		res.Log(0, "empty barrier schedule (NIter = 0): nothing to trace")
		res.Finish(lp.StatusEmptyPath)
		return res, nil
	}
	bar, err := filter(p, o.Weights)
	if err != nil {
		return fail(err)
	}
	if bar == nil {
		res.Log(0, "every constraint has zero weight: nothing to trace")
		res.Finish(lp.StatusEmptyPath)
		return res, nil
	}

	// Stage 2: start point.
	x, err := bar.start(o.Start)
	if err != nil {
		return fail(err)
	}

	// Stage 3: outer loop over μ.
	var (
		steps int
		ok    bool
		last  bool
	)
	for k, mu := range res.Schedule {
		x, steps, ok, err = bar.level(x, mu, o)
		res.Iterations += steps
		switch {
		case errors.Is(err, lp.ErrLineSearchStuck):
			res.Skipped++
			res.Log(k, f.Line(f.Int(k), f.Num(mu), "skipped:", err.Error()))
			last = false
			continue
		case err != nil:
			return fail(fmt.Errorf("level %d (mu=%g): %w", k, mu, err))
		case !ok:
			res.Skipped++
			res.Log(k, f.Line(f.Int(k), f.Num(mu), "skipped: no convergence after", f.Int(steps), "steps"))
			last = false
			continue
		}
		res.PushX(x)
		res.PushMu(mu)
		res.Levels = append(res.Levels, k)
		res.Objective = p.Objective(x)
		res.Log(k, f.Line(f.Int(k), f.Point(x), f.Num(mu), f.Int(steps), f.Num(res.Objective)))
		last = true
	}

	if last {
		res.Finish(lp.StatusConverged)
	} else {
		res.Finish(lp.StatusMaxIterations)
	}

	return res, nil
}
