// SPDX-License-Identifier: MIT
// Package matrix - linear system solve and numerical rank.
//
// Purpose:
//   - Solve square systems K·x = r for the LP engines (KKT, simplex basis,
//     barrier Newton steps) and report numerical singularity as ErrSingular.
//   - Compute numerical rank for simplex basis repair.
//
// Implementation:
//   - Both kernels hand the flat row-major buffer to gonum (mat.NewDense
//     shares the slice; factorizations copy it), so the caller's matrix is
//     never mutated.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SingularCond is the condition-number estimate above which Solve reports
// ErrSingular. It matches gonum's own ConditionTolerance.
const SingularCond = mat.ConditionTolerance

// Solve returns x with K·x = r.
//
// Implementation:
//   - Stage 1: validate K square and len(r) == K.Rows().
//   - Stage 2: LU with partial pivoting; reject when the 1-norm condition
//     estimate is infinite, NaN or above SingularCond.
//   - Stage 3: triangular solves; reject a non-finite solution.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (shape contract).
//   - ErrSingular (numerically singular K).
//
// Complexity: Time O(n^3), Space O(n^2).
func Solve(K Matrix, r []float64) ([]float64, error) {
	if err := ValidateSquare(K); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(r, K.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	d, err := toDense(K)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var lu mat.LU
	lu.Factorize(mat.NewDense(d.r, d.c, d.data))
	if c := lu.Cond(); math.IsNaN(c) || math.IsInf(c, 0) || c > SingularCond {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	x := mat.NewVecDense(d.r, nil)
	if err = lu.SolveVecTo(x, false, mat.NewVecDense(d.r, CloneVec(r))); err != nil {
		// mat.Condition: the estimate crossed the tolerance during the solve.
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	out := CloneVec(x.RawVector().Data)
	if err = ValidateFinite(out); err != nil {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	return out, nil
}

// Rank returns the numerical rank of m: the number of singular values larger
// than rcond times the largest one.
//
// Errors: ErrNilMatrix; ErrSingular if the SVD fails to converge.
// Complexity: Time O(min(r,c)·r·c).
func Rank(m Matrix, rcond float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(d.r, d.c, d.data), mat.SVDNone); !ok {
		return 0, matrixErrorf(opRank, ErrSingular)
	}

	return svd.Rank(rcond), nil
}
