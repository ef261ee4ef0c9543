// Package simplex implements a two-phase primal simplex method for
//
//	maximize cᵀx  subject to  A·x ≤ b   (x free)
//
// The problem is brought to standard form by splitting x = x⁺ − x⁻ and
// adding one slack per row:
//
//	[A  −A  I]·t = b,  t = (x⁺, x⁻, s) ≥ 0
//
// Phase 1 flips the sign of every row with b_i < 0 (matrix Γ), appends one
// artificial column per row and minimizes the sum of artificials from the
// all-artificial basis. A non-zero optimum means the polytope is empty
// (lp.ErrInfeasible). Phase 2 drops the artificial columns, repairs the
// basis with slack columns if it came out short, and maximizes cᵀx.
//
// Both phases run the same pivoting core: solve B·x_B = b and Bᵀ·y = c_B,
// pick the entering column with the largest positive reduced cost, pick the
// leaving row by the minimum-ratio test. The iterate x = x⁺ − x⁻ is
// recorded at every basis, so the trace walks the polygon's vertices.
//
// Degenerate pivots are counted; after Options.DegenerateLimit consecutive
// zero-length pivots the core switches to Bland's rule, which cannot cycle.
package simplex
