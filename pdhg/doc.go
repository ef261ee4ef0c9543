// Package pdhg implements the primal-dual hybrid gradient method (Chambolle
// and Pock) with fixed step sizes, in two forms.
//
// StandardForm solves  minimize cᵀx  s.t.  A·x = b, x ≥ 0:
//
//	x⁺ = Π₊(x − η·(c + Aᵀy))
//	x̃  = 2x⁺ − x
//	y⁺ = y + τ·(A·x̃ − b)
//
// InequalityForm solves  maximize cᵀx  s.t.  A·x ≤ b  with the projection
// moved to the dual:
//
//	x⁺ = x − η·(Aᵀy − c)
//	x̃  = 2x⁺ − x
//	y⁺ = Π₊(y + τ·(A·x̃ − b))
//
// Solve takes a polytope.Problem and either runs InequalityForm directly or,
// with Options.Ineq = false, splits x = x⁺ − x⁻, adds one slack per row and
// runs StandardForm, mapping every iterate back to the original space.
//
// The stopping metric ε is the sum of the relative primal infeasibility, the
// relative dual infeasibility and the relative duality gap. Step sizes are
// not adapted: a poor (η, τ) shows up only as a run that reaches MaxIter.
package pdhg
