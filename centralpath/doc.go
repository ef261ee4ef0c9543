// Package centralpath traces the log-barrier central path of
//
//	maximize cᵀx  subject to  A·x ≤ b.
//
// For each μ of a geometric schedule μ0 → μ1 the engine maximizes
//
//	f_μ(x) = cᵀx + μ·Σ w_i·log(b_i − A_i·x)
//
// with damped Newton steps, warm-started from the previous level's point
// (the first level starts at the polygon's vertex centroid unless
// Options.Start is set). Each Newton direction solves H·Δx = g with
//
//	g = c − μ·Aᵀ(w/r),   H = μ·Aᵀ·diag(w/r²)·A,   r = b − A·x.
//
// The step is first halved until r stays above 1e-12 (at most 100
// halvings, else lp.ErrLineSearchStuck), then halved again until the
// Armijo condition f(x+αΔx) ≥ f(x) + β·α·gᵀΔx holds; below α = 1e-10 the
// domain-feasible step is taken as is.
//
// A level counts when ‖g‖∞ < Options.Tol within Options.MaxIter steps.
// Levels that do not converge or whose line search gets stuck are skipped:
// they leave a diagnostic log line but no iterate, and the next level
// continues from the current point.
//
// A zero weight removes its row. With no rows left, or with NIter = 0,
// the result is an empty path (lp.StatusEmptyPath), not an error.
package centralpath
