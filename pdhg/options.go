// SPDX-License-Identifier: MIT
package pdhg

import (
	"fmt"

	"github.com/katalvlaran/lpviz/lp"
)

// MaxIterCap is the hard cap on Options.MaxIter.
const MaxIterCap = 1 << 16

const (
	defaultMaxIter = 1000
	defaultTol     = 1e-4
	defaultStep    = 0.25
)

// Options configures Solve, StandardForm and InequalityForm.
type Options struct {
	MaxIter int     // iteration cap; reaching it is not an error
	Tol     float64 // stop once ε ≤ Tol
	Eta     float64 // primal step η > 0
	Tau     float64 // dual step τ > 0
	Ineq    bool    // Solve: run the inequality form (true) or the split standard form
	Verbose bool
}

// DefaultOptions returns MaxIter = 1000, Tol = 1e-4, η = τ = 0.25, Ineq = true.
func DefaultOptions() Options {
	return Options{
		MaxIter: defaultMaxIter,
		Tol:     defaultTol,
		Eta:     defaultStep,
		Tau:     defaultStep,
		Ineq:    true,
	}
}

func (o Options) validate() error {
	switch {
	case o.MaxIter < 1 || o.MaxIter > MaxIterCap:
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, lp.ErrInvalidOptions)
	case o.Tol < 0:
		return fmt.Errorf("Tol=%g: %w", o.Tol, lp.ErrInvalidOptions)
	case !(o.Eta > 0) || !(o.Tau > 0):
		return fmt.Errorf("Eta=%g Tau=%g: %w", o.Eta, o.Tau, lp.ErrInvalidOptions)
	}

	return nil
}

func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// Result extends lp.Result with the final objective and stopping metric.
type Result struct {
	lp.Result

	Objective float64 // objective of the reported point
	Epsilon   float64 // ε at the last iterate
}
