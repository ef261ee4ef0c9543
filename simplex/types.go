// SPDX-License-Identifier: MIT
package simplex

import (
	"fmt"

	"github.com/katalvlaran/lpviz/lp"
)

// MaxIterCap is the hard cap on pivots per phase.
const MaxIterCap = 1 << 16

const (
	defaultTol             = 1e-9
	defaultDegenerateLimit = 50

	// infeasTol scales with 1+‖b‖∞ to decide whether the phase-1 optimum is zero.
	infeasTol = 1e-7
	// rankCond is the relative singular-value cut-off used by basis repair.
	rankCond = 1e-10
)

// Options configures Solve.
type Options struct {
	// MaxIter caps the pivots of each phase; exceeding it is lp.ErrStalled.
	MaxIter int
	// Tol is the threshold for positive reduced costs and pivot entries.
	Tol float64
	// DegenerateLimit is the number of consecutive degenerate pivots after
	// which Bland's rule takes over. 0 applies Bland's rule from the start.
	DegenerateLimit int
	// Verbose emits every log line to lp.Logger() at debug level.
	Verbose bool
}

// DefaultOptions returns MaxIter = 2^16, Tol = 1e-9, DegenerateLimit = 50.
func DefaultOptions() Options {
	return Options{
		MaxIter:         MaxIterCap,
		Tol:             defaultTol,
		DegenerateLimit: defaultDegenerateLimit,
	}
}

func (o Options) validate() error {
	if o.MaxIter < 1 || o.MaxIter > MaxIterCap {
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, lp.ErrInvalidOptions)
	}
	if o.Tol < 0 {
		return fmt.Errorf("Tol=%g: %w", o.Tol, lp.ErrInvalidOptions)
	}
	if o.DegenerateLimit < 0 {
		return fmt.Errorf("DegenerateLimit=%d: %w", o.DegenerateLimit, lp.ErrInvalidOptions)
	}

	return nil
}

// Result extends lp.Result with the per-phase logs.
//
// Result.X is the phase-1 trace followed by the phase-2 trace without its
// first iterate (it repeats the last phase-1 point). Result.Logs follows X
// one line per iterate, plus the summary. Phase1Logs and Phase2Logs keep
// every line of their phase, boundary included.
type Result struct {
	lp.Result

	Phase1Logs []string
	Phase2Logs []string

	// Objective is cᵀx at the final iterate (meaningful when converged).
	Objective float64
}
