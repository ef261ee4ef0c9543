// SPDX-License-Identifier: MIT
package pdhg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
	"github.com/katalvlaran/lpviz/polytope"
)

// Engine is the engine name used in log lines and summaries.
const Engine = "pdhg"

// stepper is one PDHG variant: the update rule and its stopping metric.
type stepper interface {
	step(x, y []float64) (xn, yn []float64, err error)
	eps(x, y []float64) (float64, error)
}

// view maps variant variables to the reported point and its objective.
type view struct {
	point     func(x []float64) []float64
	objective func(x []float64) float64
}

// problem carries the data shared by both variants.
type problem struct {
	a        *matrix.Dense
	b, c     []float64
	nb, nc   float64 // ‖b‖₂, ‖c‖₂
	eta, tau float64
}

func newProblem(a *matrix.Dense, b, c []float64, o Options) problem {
	return problem{a: a, b: b, c: c, nb: matrix.Norm2(b), nc: matrix.Norm2(c), eta: o.Eta, tau: o.Tau}
}

// gap returns |u| / (1 + |cᵀx| + |bᵀy|) where u is the signed gap of the variant.
func (p problem) gap(u, cx, by float64) float64 {
	return math.Abs(u) / (1 + math.Abs(cx) + math.Abs(by))
}

// standard is  min cᵀx  s.t.  A·x = b, x ≥ 0.
type standard struct{ problem }

func (s standard) step(x, y []float64) ([]float64, []float64, error) {
	aty, err := matrix.MatTVec(s.a, y)
	if err != nil {
		return nil, nil, err
	}
	xn := matrix.ProjectNonNeg(matrix.AddScaled(x, -s.eta, matrix.AddVec(s.c, aty)))
	ax, err := matrix.MatVec(s.a, matrix.SubVec(matrix.ScaleVec(2, xn), x))
	if err != nil {
		return nil, nil, err
	}

	return xn, matrix.AddScaled(y, s.tau, matrix.SubVec(ax, s.b)), nil
}

// eps = ‖Ax − b‖/(1+‖b‖) + ‖Π₊(−Aᵀy − c)‖/(1+‖c‖) + |cᵀx + bᵀy|/(1+|cᵀx|+|bᵀy|).
func (s standard) eps(x, y []float64) (float64, error) {
	ax, err := matrix.MatVec(s.a, x)
	if err != nil {
		return 0, err
	}
	aty, err := matrix.MatTVec(s.a, y)
	if err != nil {
		return 0, err
	}
	var (
		pf     = matrix.Norm2(matrix.SubVec(ax, s.b)) / (1 + s.nb)
		df     = matrix.Norm2(matrix.ProjectNonNeg(matrix.ScaleVec(-1, matrix.AddVec(aty, s.c)))) / (1 + s.nc)
		cx, by = matrix.Dot(s.c, x), matrix.Dot(s.b, y)
	)

	return pf + df + s.gap(cx+by, cx, by), nil
}

// inequality is  max cᵀx  s.t.  A·x ≤ b.
type inequality struct{ problem }

func (q inequality) step(x, y []float64) ([]float64, []float64, error) {
	aty, err := matrix.MatTVec(q.a, y)
	if err != nil {
		return nil, nil, err
	}
	xn := matrix.AddScaled(x, -q.eta, matrix.SubVec(aty, q.c))
	ax, err := matrix.MatVec(q.a, matrix.SubVec(matrix.ScaleVec(2, xn), x))
	if err != nil {
		return nil, nil, err
	}

	return xn, matrix.ProjectNonNeg(matrix.AddScaled(y, q.tau, matrix.SubVec(ax, q.b))), nil
}

// eps = ‖Π₊(Ax − b)‖/(1+‖b‖) + ‖Aᵀy − c‖/(1+‖c‖) + |bᵀy − cᵀx|/(1+|cᵀx|+|bᵀy|).
func (q inequality) eps(x, y []float64) (float64, error) {
	ax, err := matrix.MatVec(q.a, x)
	if err != nil {
		return 0, err
	}
	aty, err := matrix.MatTVec(q.a, y)
	if err != nil {
		return 0, err
	}
	var (
		pf     = matrix.Norm2(matrix.ProjectNonNeg(matrix.SubVec(ax, q.b))) / (1 + q.nb)
		df     = matrix.Norm2(matrix.SubVec(aty, q.c)) / (1 + q.nc)
		cx, by = matrix.Dot(q.c, x), matrix.Dot(q.b, y)
	)

	return pf + df + q.gap(by-cx, cx, by), nil
}

// iterate runs the shared PDHG loop from x = 0, y = 0.
//
// Every step records view.point(x), y and ε. The loop ends when ε ≤ Tol
// (converged), after MaxIter steps, or as soon as ε stops being finite;
// the last two are both reported as lp.StatusMaxIterations.
func iterate(st stepper, n, m int, v view, o Options) (*Result, error) {
	var (
		res  = &Result{Result: lp.NewResult(Engine, o.Verbose)}
		f    = lp.DefaultFormatter
		x    = make([]float64, n)
		y    = make([]float64, m)
		eps  float64
		err  error
		done = func(status lp.Status, k int) (*Result, error) {
			res.Iterations = k
			res.Epsilon = eps
			res.Finish(status)
			return res, nil
		}
	)
	for k := 1; k <= o.MaxIter; k++ {
		if x, y, err = st.step(x, y); err != nil {
			res.Iterations = k - 1
			return res, res.Fail(fmt.Errorf("pdhg: %w", err))
		}
		if eps, err = st.eps(x, y); err != nil {
			res.Iterations = k - 1
			return res, res.Fail(fmt.Errorf("pdhg: %w", err))
		}
		pt := v.point(x)
		res.PushX(pt)
		res.PushY(y)
		res.PushEps(eps)
		res.Objective = v.objective(x)
		res.Log(k, f.Line(f.Int(k), f.Point(pt), f.Num(res.Objective), f.Num(eps)))

		switch {
		case math.IsNaN(eps) || math.IsInf(eps, 0):
			return done(lp.StatusMaxIterations, k)
		case eps <= o.Tol:
			return done(lp.StatusConverged, k)
		}
	}

	return done(lp.StatusMaxIterations, o.MaxIter)
}

// check validates the shapes of (a, b, c) and the options.
func check(a *matrix.Dense, b, c []float64, o Options) error {
	if err := (&polytope.Problem{A: a, B: b, C: c}).Validate(); err != nil {
		return err
	}

	return o.validate()
}

func invalid(o Options, err error) (*Result, error) {
	res := &Result{Result: lp.NewResult(Engine, o.Verbose)}
	return res, res.Fail(err)
}

// StandardForm minimizes cᵀx subject to A·x = b, x ≥ 0. A nil opts means
// DefaultOptions(); Options.Ineq is ignored.
//
// Errors: lp.ErrDimensionMismatch / lp.ErrInvalidOptions.
func StandardForm(a *matrix.Dense, b, c []float64, opts *Options) (*Result, error) {
	o := resolve(opts)
	if err := check(a, b, c, o); err != nil {
		return invalid(o, fmt.Errorf("pdhg.StandardForm: %w", err))
	}
	id := view{
		point:     matrix.CloneVec,
		objective: func(x []float64) float64 { return matrix.Dot(c, x) },
	}

	return iterate(standard{newProblem(a, b, c, o)}, a.Cols(), a.Rows(), id, o)
}

// InequalityForm maximizes cᵀx subject to A·x ≤ b. A nil opts means
// DefaultOptions(); Options.Ineq is ignored.
//
// Errors: lp.ErrDimensionMismatch / lp.ErrInvalidOptions.
func InequalityForm(a *matrix.Dense, b, c []float64, opts *Options) (*Result, error) {
	o := resolve(opts)
	if err := check(a, b, c, o); err != nil {
		return invalid(o, fmt.Errorf("pdhg.InequalityForm: %w", err))
	}
	id := view{
		point:     matrix.CloneVec,
		objective: func(x []float64) float64 { return matrix.Dot(c, x) },
	}

	return iterate(inequality{newProblem(a, b, c, o)}, a.Cols(), a.Rows(), id, o)
}

// Solve maximizes p.C·x over A·x ≤ b. With Options.Ineq (the default) it
// runs InequalityForm; otherwise it solves the split standard form
//
//	min (−c, c, 0)ᵀ(x⁺, x⁻, s)  s.t.  [A −A I]·(x⁺, x⁻, s) = b,  (x⁺, x⁻, s) ≥ 0
//
// and reports x = x⁺ − x⁻ with objective cᵀx. Result.Y is then the dual of
// the split problem.
func Solve(p *polytope.Problem, opts *Options) (*Result, error) {
	o := resolve(opts)
	if err := p.Validate(); err != nil {
		return invalid(o, fmt.Errorf("pdhg.Solve: %w", err))
	}
	if o.Ineq {
		return InequalityForm(p.A, p.B, p.C, &o)
	}
	if err := o.validate(); err != nil {
		return invalid(o, fmt.Errorf("pdhg.Solve: %w", err))
	}

	a, c, err := split(p)
	if err != nil {
		return invalid(o, fmt.Errorf("pdhg.Solve: %w", err))
	}
	n := p.Dim()
	unsplit := view{
		point:     func(t []float64) []float64 { return matrix.SubVec(t[:n], t[n:2*n]) },
		objective: func(t []float64) float64 { return p.Objective(matrix.SubVec(t[:n], t[n:2*n])) },
	}

	return iterate(standard{newProblem(a, p.B, c, o)}, a.Cols(), a.Rows(), unsplit, o)
}

// split returns [A −A I] and (−c, c, 0).
func split(p *polytope.Problem) (*matrix.Dense, []float64, error) {
	m, n := p.A.Shape()
	negA, err := matrix.Scale(p.A, -1)
	if err != nil {
		return nil, nil, err
	}
	I, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, nil, err
	}
	a, err := matrix.HStack(p.A, negA, I)
	if err != nil {
		return nil, nil, err
	}
	c := make([]float64, 2*n+m)
	for j, v := range p.C {
		c[j], c[n+j] = -v, v
	}

	return a, c, nil
}
