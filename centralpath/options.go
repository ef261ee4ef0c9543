// SPDX-License-Identifier: MIT
package centralpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lpviz/lp"
)

const (
	// MaxNIter is the largest accepted schedule length.
	MaxNIter = 1024
	// MaxIterCap is the hard cap on Newton steps per level.
	MaxIterCap = 1 << 16

	defaultNIter   = 32
	defaultMu0     = 1e3
	defaultMu1     = 1e-5
	defaultMaxIter = 2000
	defaultTol     = 1e-4
	defaultBeta    = 0.01

	// minSlack is the smallest residual the domain search accepts.
	minSlack = 1e-12
	// maxHalvings bounds the domain search.
	maxHalvings = 100
	// minArmijo is the Armijo step below which the domain-feasible step is used.
	minArmijo = 1e-10
	// rankCond is the relative singular-value cutoff for the rank of A.
	rankCond = 1e-10
	// vertexTol is used to enumerate vertices for the default start.
	vertexTol = 1e-9
)

// Options configures Solve.
type Options struct {
	NIter   int     // number of barrier levels, 0..MaxNIter
	Mu0     float64 // first barrier parameter
	Mu1     float64 // last barrier parameter
	MaxIter int     // Newton steps per level
	Tol     float64 // level converges once ‖g‖∞ < Tol
	Beta    float64 // Armijo constant in (0, 1)

	// Weights scales each row's barrier term; nil means all ones. A zero
	// weight drops the row; negative weights are rejected.
	Weights []float64
	// Start is the first Newton point; nil means the vertex centroid.
	// It must lie strictly inside the (filtered) polytope.
	Start []float64

	Verbose bool
}

// DefaultOptions returns NIter = 32, μ from 1e3 to 1e-5, MaxIter = 2000,
// Tol = 1e-4, Beta = 0.01.
func DefaultOptions() Options {
	return Options{
		NIter:   defaultNIter,
		Mu0:     defaultMu0,
		Mu1:     defaultMu1,
		MaxIter: defaultMaxIter,
		Tol:     defaultTol,
		Beta:    defaultBeta,
	}
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

func (o Options) validate(m, n int) error {
	switch {
	case o.NIter < 0 || o.NIter > MaxNIter:
		return fmt.Errorf("NIter=%d: %w", o.NIter, lp.ErrInvalidOptions)
	case !positive(o.Mu0) || !positive(o.Mu1):
		return fmt.Errorf("Mu0=%g Mu1=%g: %w", o.Mu0, o.Mu1, lp.ErrInvalidOptions)
	case o.MaxIter < 1 || o.MaxIter > MaxIterCap:
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, lp.ErrInvalidOptions)
	case o.Tol < 0:
		return fmt.Errorf("Tol=%g: %w", o.Tol, lp.ErrInvalidOptions)
	case !(o.Beta > 0 && o.Beta < 1):
		return fmt.Errorf("Beta=%g: %w", o.Beta, lp.ErrInvalidOptions)
	case o.Weights != nil && len(o.Weights) != m:
		return fmt.Errorf("len(Weights)=%d, rows=%d: %w", len(o.Weights), m, lp.ErrInvalidOptions)
	case o.Start != nil && len(o.Start) != n:
		return fmt.Errorf("len(Start)=%d, cols=%d: %w", len(o.Start), n, lp.ErrInvalidOptions)
	}
	for i, w := range o.Weights {
		if !(w >= 0) || math.IsInf(w, 0) {
			return fmt.Errorf("Weights[%d]=%g: %w", i, w, lp.ErrInvalidOptions)
		}
	}

	return nil
}

// Schedule returns the geometric sequence μ_k = μ0·(μ1/μ0)^(k/(niter−1)),
// k = 0..niter−1. niter = 1 yields [μ0]; niter ≤ 0 yields an empty schedule.
func Schedule(niter int, mu0, mu1 float64) []float64 {
	if niter <= 0 {
		return nil
	}
	mus := make([]float64, niter)
	mus[0] = mu0
	for k := 1; k < niter; k++ {
		mus[k] = mu0 * math.Pow(mu1/mu0, float64(k)/float64(niter-1))
	}

	return mus
}

// Result extends lp.Result with the schedule bookkeeping.
//
// Logs are not 1:1 with X here: a skipped level writes a "skipped" line but
// records no iterate, so len(Logs) = len(X) + Skipped + 1 (the summary).
// Levels maps each iterate back to its schedule index.
type Result struct {
	lp.Result

	// Schedule is the full μ sequence; Result.Mu holds only the converged levels.
	Schedule []float64
	// Levels[i] is the schedule index of X[i].
	Levels []int
	// Skipped counts levels that left no iterate.
	Skipped int
	// Objective is cᵀx at the last recorded point.
	Objective float64
}
