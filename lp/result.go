// SPDX-License-Identifier: MIT
// Package lp - solve results.
//
// A Result owns one append-only sequence per tracked quantity. Every Push*
// call stores a private copy, so iterates never alias engine state or each
// other and stay valid after the solve returns.

package lp

import (
	"strconv"
	"time"

	"github.com/katalvlaran/lpviz/matrix"
)

// Trace holds the iterate history of a solve, in step order.
// Engines fill only the sequences that apply to them:
//
//	X    primal iterates (all engines)
//	S    slack iterates (IPM)
//	Y    dual iterates (IPM, PDHG)
//	Mu   complementarity gap (IPM) or barrier parameter (central path)
//	Eps  stopping metric ε_k (PDHG)
//	Logs one fixed-width line per X entry (plus engine diagnostics), then one summary line
type Trace struct {
	X    [][]float64
	S    [][]float64
	Y    [][]float64
	Mu   []float64
	Eps  []float64
	Logs []string
}

// Result is the outcome of one solve call.
type Result struct {
	Trace

	Status     Status        // terminal state
	Iterations int           // iterations (pivots, Newton or PDHG steps) performed
	Elapsed    time.Duration // wall time of the call

	engine  string
	verbose bool
	start   time.Time
}

// NewResult starts the clock for a solve by the named engine.
// When verbose is set, every Log line is also emitted to Logger() at debug level.
func NewResult(engine string, verbose bool) Result {
	return Result{engine: engine, verbose: verbose, start: time.Now()}
}

// Engine returns the name of the engine that produced r.
func (r *Result) Engine() string { return r.engine }

// PushX appends a copy of the primal iterate x.
func (r *Result) PushX(x []float64) { r.X = append(r.X, matrix.CloneVec(x)) }

// PushS appends a copy of the slack iterate s.
func (r *Result) PushS(s []float64) { r.S = append(r.S, matrix.CloneVec(s)) }

// PushY appends a copy of the dual iterate y.
func (r *Result) PushY(y []float64) { r.Y = append(r.Y, matrix.CloneVec(y)) }

// PushMu appends a μ value.
func (r *Result) PushMu(mu float64) { r.Mu = append(r.Mu, mu) }

// PushEps appends an ε value.
func (r *Result) PushEps(eps float64) { r.Eps = append(r.Eps, eps) }

// Log appends a diagnostic line for iteration iter.
func (r *Result) Log(iter int, line string) {
	r.Logs = append(r.Logs, line)
	if r.verbose {
		emitIterate(r.engine, iter, line)
	}
}

// Finish records the terminal status, the elapsed time and the summary line.
func (r *Result) Finish(status Status) {
	r.finish(status, "")
}

// Fail records the terminal status implied by err and returns err unchanged,
// so engines can write `return res, res.Fail(err)`.
func (r *Result) Fail(err error) error {
	r.finish(StatusOf(err), err.Error())

	return err
}

func (r *Result) finish(status Status, detail string) {
	r.Status = status
	r.Elapsed = time.Since(r.start)
	line := Summary(r.engine, status, r.Iterations)
	if detail != "" {
		line += ": " + detail
	}
	r.Logs = append(r.Logs, line)
	emitSummary(r.engine, status, r.Iterations, r.Elapsed, line)
}

// Final returns the last primal iterate, or false when the trace is empty.
func (r *Result) Final() ([]float64, bool) {
	if len(r.X) == 0 {
		return nil, false
	}

	return r.X[len(r.X)-1], true
}

// Summary formats the terminal line shared by all engines, e.g.
// "ipm: converged after 7 iterations". Elapsed time is kept out of the line
// so identical solves produce identical logs.
func Summary(engine string, status Status, iterations int) string {
	return engine + ": " + status.String() + " after " + strconv.Itoa(iterations) + " iterations"
}
