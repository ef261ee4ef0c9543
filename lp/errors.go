// SPDX-License-Identifier: MIT
// Package lp: sentinel error set shared by all engines.
// Engines return these sentinels (wrapped with context via %w) and callers
// match them with errors.Is.

package lp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lpviz/matrix"
)

var (
	// ErrDimensionMismatch signals malformed input shapes (caller error).
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrInvalidOptions signals an options value outside its documented range
	// (e.g. MaxIter < 1). It belongs to the dimension-mismatch class:
	// errors.Is(ErrInvalidOptions, ErrDimensionMismatch) is true.
	ErrInvalidOptions = fmt.Errorf("lp: invalid options: %w", ErrDimensionMismatch)

	// ErrUnbounded is returned when the simplex ratio test finds no leaving variable.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrInfeasible is returned when no feasible point exists (simplex phase 1
	// optimum is non-zero, or no interior starting point can be found).
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrStalled is returned when simplex pivoting hits its iteration cap.
	ErrStalled = errors.New("lp: pivoting stalled")

	// ErrLineSearchStuck is returned when the central-path domain search
	// exhausts its halving budget.
	ErrLineSearchStuck = errors.New("lp: line search stuck")

	// ErrNoInterior is returned when no strictly interior starting point
	// exists for a feasible polytope (unbounded or lower-dimensional).
	ErrNoInterior = errors.New("lp: no strictly interior start (unbounded or lower-dimensional polytope)")
)

// ErrSingularSystem aliases matrix.ErrSingular so errors.Is matches either name.
var ErrSingularSystem = matrix.ErrSingular

// StatusOf maps a fatal engine error to the terminal Status it represents.
// A nil error maps to StatusConverged.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusConverged
	case errors.Is(err, ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, ErrUnbounded):
		return StatusUnbounded
	case errors.Is(err, ErrSingularSystem):
		return StatusSingular
	case errors.Is(err, ErrStalled), errors.Is(err, ErrLineSearchStuck):
		return StatusStalled
	default:
		return StatusInvalid
	}
}
