// SPDX-License-Identifier: MIT
package simplex

import (
	"fmt"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
	"github.com/katalvlaran/lpviz/polytope"
)

// Engine is the engine name used in log lines and summaries.
const Engine = "simplex"

// Solve maximizes p.C·x over A·x ≤ b with the two-phase simplex method.
// A nil opts means DefaultOptions().
//
// The returned Result is never nil. On a fatal error it holds the iterates
// recorded so far and a summary line naming the error, and its Status
// matches lp.StatusOf(err).
//
// Errors:
//   - lp.ErrDimensionMismatch / lp.ErrInvalidOptions (caller error).
//   - lp.ErrInfeasible (phase 1 optimum above tolerance).
//   - lp.ErrUnbounded, lp.ErrStalled, lp.ErrSingularSystem.
func Solve(p *polytope.Problem, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	var (
		res = &Result{Result: lp.NewResult(Engine, o.Verbose)}
		pv  = newPivoter(o)
	)
	fail := func(err error) (*Result, error) {
		res.Iterations = pv.iter
		return res, res.Fail(fmt.Errorf("simplex.Solve: %w", err))
	}
	if err := p.Validate(); err != nil {
		return fail(err)
	}
	if err := o.validate(); err != nil {
		return fail(err)
	}

	// Stage 1: phase 1 from the all-artificial basis.
	t1, basis, err := phaseOne(p)
	if err != nil {
		return fail(err)
	}
	var tr1 trace
	basis, xB, err := pv.run(t1, basis, &tr1)
	res.merge(&tr1, 0)
	res.Phase1Logs = tr1.logs
	if err != nil {
		return fail(fmt.Errorf("phase 1: %w", err))
	}
	m, n := p.A.Shape()
	if s := artificialSum(basis, xB, 2*n+m); s > infeasTol*(1+matrix.NormInf(p.B)) {
		return fail(fmt.Errorf("phase 1 optimum %g: %w", s, lp.ErrInfeasible))
	}

	// Stage 2: repair the basis and optimize the true objective.
	t2, err := phaseTwo(p)
	if err != nil {
		return fail(err)
	}
	if basis, err = repair(t2, basis); err != nil {
		return fail(err)
	}
	var tr2 trace
	_, _, err = pv.run(t2, basis, &tr2)
	res.merge(&tr2, 1)
	res.Phase2Logs = tr2.logs
	if err != nil {
		return fail(fmt.Errorf("phase 2: %w", err))
	}

	res.Iterations = pv.iter
	if x, ok := res.Final(); ok {
		res.Objective = p.Objective(x)
	}
	res.Finish(lp.StatusConverged)

	return res, nil
}

// merge appends a phase trace to the Result, skipping its first skip
// iterates (phase 2 starts where phase 1 ended).
func (r *Result) merge(tr *trace, skip int) {
	for i := skip; i < len(tr.x); i++ {
		r.PushX(tr.x[i])
		r.Log(tr.iters[i], tr.logs[i])
	}
}
