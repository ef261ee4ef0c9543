// SPDX-License-Identifier: MIT
package ipm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
	"github.com/katalvlaran/lpviz/polytope"
)

// Engine is the engine name used in log lines and summaries.
const Engine = "ipm"

// state is the negated problem (Ā = −A, b̄ = −b, c̄ = −c) and the current
// primal-dual point.
type state struct {
	a, at *matrix.Dense
	negI  *matrix.Dense
	b, c  []float64
	m, n  int

	x, s, y []float64
}

// residuals of the current point.
type residuals struct {
	rp, rd  []float64
	mu, gap float64
	pobj    float64 // c̄ᵀx
	dobj    float64 // b̄ᵀy
}

func newState(p *polytope.Problem) (*state, error) {
	m, n := p.A.Shape()
	a, err := matrix.Scale(p.A, -1)
	if err != nil {
		return nil, err
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, err
	}
	I, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, err
	}
	negI, err := matrix.Scale(I, -1)
	if err != nil {
		return nil, err
	}

	return &state{
		a: a, at: at, negI: negI,
		b: matrix.ScaleVec(-1, p.B),
		c: matrix.ScaleVec(-1, p.C),
		m: m, n: n,
		x: make([]float64, n),
		s: matrix.Ones(m),
		y: matrix.Ones(m),
	}, nil
}

// residuals computes r_p = b̄ − (Āx − s), r_d = c̄ − Āᵀy, μ = sᵀy/m and the
// relative duality gap |c̄ᵀx − b̄ᵀy| / (1 + |c̄ᵀx|).
func (st *state) residuals() (residuals, error) {
	ax, err := matrix.MatVec(st.a, st.x)
	if err != nil {
		return residuals{}, err
	}
	aty, err := matrix.MatTVec(st.a, st.y)
	if err != nil {
		return residuals{}, err
	}
	r := residuals{
		rp:   matrix.SubVec(st.b, matrix.SubVec(ax, st.s)),
		rd:   matrix.SubVec(st.c, aty),
		mu:   matrix.Dot(st.s, st.y) / float64(st.m),
		pobj: matrix.Dot(st.c, st.x),
		dobj: matrix.Dot(st.b, st.y),
	}
	r.gap = math.Abs(r.pobj-r.dobj) / (1 + math.Abs(r.pobj))

	return r, nil
}

func (r residuals) converged(o Options) bool {
	return matrix.NormInf(r.rp) <= o.EpsPrimal &&
		matrix.NormInf(r.rd) <= o.EpsDual &&
		r.gap <= o.EpsOpt
}

// kkt assembles [Ā −I 0; 0 0 Āᵀ; 0 diag(y) diag(s)] at the current point.
func (st *state) kkt() (*matrix.Dense, error) {
	Y, err := matrix.NewDiag(st.y)
	if err != nil {
		return nil, err
	}
	S, err := matrix.NewDiag(st.s)
	if err != nil {
		return nil, err
	}

	return matrix.Blocks([][]matrix.Matrix{
		{st.a, st.negI, nil},
		{nil, nil, st.at},
		{nil, Y, S},
	})
}

// split cuts a stacked KKT solution into (Δx, Δs, Δy).
func (st *state) split(d []float64) (dx, ds, dy []float64) {
	return d[:st.n], d[st.n : st.n+st.m], d[st.n+st.m:]
}

// step computes the predictor-corrector direction and moves the point.
//
// Implementation:
//   - Stage 1: affine direction from RHS (r_p, r_d, −s∘y); ratio tests α_P, α_D.
//   - Stage 2: unless α_P, α_D ≥ 0.9, add the corrector for RHS
//     (0, 0, σμ − Δs∘Δy) with σ = clamp((μ_aff/μ)³) and redo the ratio tests.
//   - Stage 3: damp by AlphaMax and update (x, s) and y separately.
func (st *state) step(r residuals, o Options) error {
	K, err := st.kkt()
	if err != nil {
		return err
	}

	// Stage 1: predictor.
	rhs := make([]float64, 0, st.n+2*st.m)
	rhs = append(rhs, r.rp...)
	rhs = append(rhs, r.rd...)
	rhs = append(rhs, matrix.ScaleVec(-1, matrix.Hadamard(st.s, st.y))...)
	d, err := matrix.Solve(K, rhs)
	if err != nil {
		return fmt.Errorf("affine step: %w", err)
	}
	_, ds, dy := st.split(d)
	alphaP, alphaD := matrix.MaxStep(st.s, ds), matrix.MaxStep(st.y, dy)

	// Stage 2: corrector.
	if alphaP < goodStep || alphaD < goodStep {
		muAff := matrix.Dot(matrix.AddScaled(st.s, alphaP, ds), matrix.AddScaled(st.y, alphaD, dy)) / float64(st.m)
		sigma := math.Min(math.Max(math.Pow(muAff/r.mu, 3), sigmaMin), sigmaMax)
		rc := matrix.SubVec(matrix.Fill(st.m, sigma*r.mu), matrix.Hadamard(ds, dy))

		rhs = append(make([]float64, st.n+st.m, st.n+2*st.m), rc...)
		corr, err := matrix.Solve(K, rhs)
		if err != nil {
			return fmt.Errorf("corrector step: %w", err)
		}
		d = matrix.AddVec(d, corr)
		_, ds, dy = st.split(d)
		alphaP, alphaD = matrix.MaxStep(st.s, ds), matrix.MaxStep(st.y, dy)
	}

	// Stage 3: damped update.
	dx, ds, dy := st.split(d)
	alphaP = math.Min(1, o.AlphaMax*alphaP)
	alphaD = math.Min(1, o.AlphaMax*alphaD)
	st.x = matrix.AddScaled(st.x, alphaP, dx)
	st.s = matrix.AddScaled(st.s, alphaP, ds)
	st.y = matrix.AddScaled(st.y, alphaD, dy)

	return nil
}

// Solve maximizes p.C·x over A·x ≤ b. A nil opts means DefaultOptions().
//
// Every iteration records x, s, y and μ before testing convergence, so the
// trace starts at x = 0 and ends at the returned point. The Result is never
// nil; on a fatal error it keeps the iterates recorded so far.
//
// Errors: lp.ErrDimensionMismatch / lp.ErrInvalidOptions, lp.ErrSingularSystem.
func Solve(p *polytope.Problem, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	var (
		res = &Result{Result: lp.NewResult(Engine, o.Verbose)}
		f   = lp.DefaultFormatter
		k   int
	)
	fail := func(err error) (*Result, error) {
		res.Iterations = k
		return res, res.Fail(fmt.Errorf("ipm.Solve: %w", err))
	}
	if err := p.Validate(); err != nil {
		return fail(err)
	}
	if err := o.validate(); err != nil {
		return fail(err)
	}
	st, err := newState(p)
	if err != nil {
		return fail(err)
	}

	for ; ; k++ {
		r, err := st.residuals()
		if err != nil {
			return fail(err)
		}
		res.PushX(st.x)
		res.PushS(st.s)
		res.PushY(st.y)
		res.PushMu(r.mu)
		res.Log(k, f.Line(f.Int(k), f.Point(st.x),
			f.Num(-r.pobj), f.Num(-r.dobj),
			f.Num(matrix.NormInf(r.rp)), f.Num(matrix.NormInf(r.rd)), f.Num(r.mu)))
		res.Objective, res.Gap = -r.pobj, r.gap

		if r.converged(o) {
			res.Iterations = k
			res.Finish(lp.StatusConverged)
			return res, nil
		}
		if k == o.MaxIter {
			res.Iterations = k
			res.Finish(lp.StatusMaxIterations)
			return res, nil
		}
		if err = st.step(r, o); err != nil {
			return fail(err)
		}
	}
}
