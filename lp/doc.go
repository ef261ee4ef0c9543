// Package lp holds the vocabulary shared by every LP engine in lpviz:
// the Result/Trace types returned by a solve, the terminal Status, the
// sentinel error taxonomy, the fixed-width log Formatter and the package
// logger.
//
// A solve returns (Result, error). Normal terminal states (converged,
// iteration cap reached) come back with a nil error and are told apart by
// Result.Status. Fatal failures (infeasible, unbounded, singular system,
// stalled pivoting, stuck line search) return a non-nil error together
// with the partial trace collected before the failure.
package lp
