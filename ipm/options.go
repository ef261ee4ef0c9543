// SPDX-License-Identifier: MIT
package ipm

import (
	"fmt"

	"github.com/katalvlaran/lpviz/lp"
)

// MaxIterCap is the hard cap on Options.MaxIter.
const MaxIterCap = 1 << 16

const (
	defaultMaxIter  = 30
	defaultEps      = 1e-6
	defaultAlphaMax = 0.999

	// goodStep is the affine step length above which the corrector is skipped.
	goodStep = 0.9
	// sigmaMin/sigmaMax clamp the centering parameter.
	sigmaMin = 1e-8
	sigmaMax = 1 - 1e-8
)

// Options configures Solve.
type Options struct {
	MaxIter   int     // iteration cap; reaching it is not an error
	EpsPrimal float64 // tolerance on ‖r_p‖∞
	EpsDual   float64 // tolerance on ‖r_d‖∞
	EpsOpt    float64 // tolerance on the relative duality gap
	AlphaMax  float64 // step damping in (0, 1]
	Verbose   bool
}

// DefaultOptions returns MaxIter = 30, all tolerances 1e-6, AlphaMax = 0.999.
func DefaultOptions() Options {
	return Options{
		MaxIter:   defaultMaxIter,
		EpsPrimal: defaultEps,
		EpsDual:   defaultEps,
		EpsOpt:    defaultEps,
		AlphaMax:  defaultAlphaMax,
	}
}

func (o Options) validate() error {
	switch {
	case o.MaxIter < 1 || o.MaxIter > MaxIterCap:
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, lp.ErrInvalidOptions)
	case o.EpsPrimal < 0 || o.EpsDual < 0 || o.EpsOpt < 0:
		return fmt.Errorf("negative tolerance: %w", lp.ErrInvalidOptions)
	case !(o.AlphaMax > 0 && o.AlphaMax <= 1):
		return fmt.Errorf("AlphaMax=%g: %w", o.AlphaMax, lp.ErrInvalidOptions)
	}

	return nil
}

// Result extends lp.Result with the final optimality measures.
type Result struct {
	lp.Result

	Objective float64 // cᵀx at the last iterate
	Gap       float64 // relative duality gap at the last iterate
}
