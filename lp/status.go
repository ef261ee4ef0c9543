// SPDX-License-Identifier: MIT
package lp

// Status is the terminal state of a solve.
type Status int

const (
	// StatusUnknown is the zero value; a finished Result never carries it.
	StatusUnknown Status = iota
	// StatusConverged means the engine's stopping criteria were met.
	StatusConverged
	// StatusMaxIterations means the iteration cap was reached first (not an error).
	StatusMaxIterations
	// StatusInfeasible means the problem has no feasible point.
	StatusInfeasible
	// StatusUnbounded means the objective grows without bound.
	StatusUnbounded
	// StatusSingular means a linear system could not be solved.
	StatusSingular
	// StatusStalled means pivoting or a line search made no progress.
	StatusStalled
	// StatusEmptyPath means there was nothing to trace (no μ levels or no constraints).
	StatusEmptyPath
	// StatusInvalid means the input or options were rejected.
	StatusInvalid
)

var statusNames = [...]string{
	StatusUnknown:       "unknown",
	StatusConverged:     "converged",
	StatusMaxIterations: "exceeded-iterations",
	StatusInfeasible:    "infeasible",
	StatusUnbounded:     "unbounded",
	StatusSingular:      "singular",
	StatusStalled:       "stalled",
	StatusEmptyPath:     "empty-path",
	StatusInvalid:       "invalid",
}

// String returns the lower-case summary name of s.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return statusNames[StatusUnknown]
	}

	return statusNames[s]
}

// Normal reports whether s is a normal terminal state rather than a failure.
func (s Status) Normal() bool {
	return s == StatusConverged || s == StatusMaxIterations || s == StatusEmptyPath
}
