// Package ipm implements Mehrotra's predictor-corrector primal-dual interior
// point method for
//
//	maximize cᵀx  subject to  A·x ≤ b.
//
// Internally the problem is negated to  minimize −cᵀx  s.t.  −A·x ≥ −b
// and rewritten with a slack s ≥ 0 and a dual y ≥ 0. Every iteration solves
// the block KKT system
//
//	[ A      −I       0     ] [Δx]   [ r_p ]
//	[ 0       0       Aᵀ    ] [Δs] = [ r_d ]
//	[ 0    diag(y)  diag(s) ] [Δy]   [ r_c ]
//
// once for the affine (predictor) direction and, unless the affine step
// already reaches 90% of the way in both blocks, once more for a centering
// corrector. Steps are damped by Options.AlphaMax and taken separately for
// the primal (x, s) and dual (y) blocks.
//
// Reaching Options.MaxIter is a normal outcome (lp.StatusMaxIterations);
// a singular KKT matrix aborts the solve with lp.ErrSingularSystem.
package ipm
