// Package lpviz solves small linear programs
//
//	maximize cᵀx  subject to  A·x ≤ b
//
// with four engines and keeps every iterate, so the path each engine takes
// across a polygon can be drawn:
//
//	simplex/      two-phase primal simplex (vertex to vertex)
//	ipm/          Mehrotra predictor-corrector interior point method
//	pdhg/         primal-dual hybrid gradient, inequality and standard form
//	centralpath/  log-barrier central path traced by damped Newton
//
// Shared building blocks:
//
//	matrix/    row-major Dense, products, block assembly, LU solve, rank
//	polytope/  Problem (A, b, c), 2-D inequalities, YAML problem files, vertices
//	lp/        Result and Trace, Status, error taxonomy, log formatting
//
// Every engine is a pure, synchronous function of its inputs: no shared
// state, no goroutines, no I/O. Independent solves can run concurrently;
// SolveAll does exactly that, one goroutine per engine.
//
// Quick example (the unit square):
//
//	p, _ := polytope.FromInequalities([]polytope.Inequality{
//		{A: 1, B: 0, C: 1}, {A: 0, B: 1, C: 1},
//		{A: -1, B: 0, C: 0}, {A: 0, B: -1, C: 0},
//	}, []float64{1, 1})
//	res, err := lpviz.Solve(p, lpviz.IPM, nil)
//	// res.X walks from (0, 0) to (1, 1); res.Logs holds one line per step.
package lpviz
