// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scaling, products, transpose and
// the matrix-vector forms the LP engines need (A·x, Aᵀ·y, Aᵀ·diag(w)·A).
// All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Notes:
//   - Every kernel materializes its operands as *Dense (toDense) and runs a
//     single flat-slice loop with a fixed order, so results are reproducible
//     bit for bit across calls.
//   - Results are always freshly allocated; inputs are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opMatVec       = "MatVec"
	opMatTVec      = "MatTVec"
	opWeightedGram = "WeightedGram"
	opSolve        = "Solve"
	opRank         = "Rank"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialize both as *Dense and walk the flat buffers once.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for i := range da.data {
		res.data[i] = da.data[i] + sign*db.data[i]
	}

	return res, nil
}

// Add returns a + b (element-wise).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b (element-wise).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	for i, v := range d.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

// Mul computes the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j loop over flat buffers; zero a[i,k] entries are skipped.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < da.r; i++ {
		rowOffsetA = i * da.c
		rowOffsetR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense{r: d.c, c: d.r, data: make([]float64, len(d.data))}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	var (
		y         = make([]float64, d.r)
		i, j, off int
		acc       float64
	)
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		off = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[off+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// MatTVec computes z = mᵀ·y without materializing mᵀ.
//
// Contract: m non-nil; len(y) == m.Rows().
// Determinism: fixed i→j loop order (row-wise accumulation).
// Complexity: Time O(r*c), Space O(c).
func MatTVec(m Matrix, y []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	if err := ValidateVecLen(y, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	var (
		z         = make([]float64, d.c)
		i, j, off int
		yv        float64
	)
	for i = 0; i < d.r; i++ {
		yv = y[i]
		if yv == 0 {
			continue
		}
		off = i * d.c
		for j = 0; j < d.c; j++ {
			z[j] += d.data[off+j] * yv
		}
	}

	return z, nil
}

// WeightedGram computes G = mᵀ·diag(w)·m (c×c, symmetric).
// This is the Hessian shape of a log-barrier: w[i] = weight_i / r_i².
//
// Contract: m non-nil; len(w) == m.Rows().
// Complexity: Time O(r*c²), Space O(c²).
func WeightedGram(m Matrix, w []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opWeightedGram, err)
	}
	if err := ValidateVecLen(w, m.Rows()); err != nil {
		return nil, matrixErrorf(opWeightedGram, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opWeightedGram, err)
	}
	g, err := NewDense(d.c, d.c)
	if err != nil {
		return nil, matrixErrorf(opWeightedGram, err)
	}
	var (
		i, p, q, off int
		wp           float64
	)
	for i = 0; i < d.r; i++ {
		if w[i] == 0 {
			continue
		}
		off = i * d.c
		for p = 0; p < d.c; p++ {
			wp = w[i] * d.data[off+p]
			if wp == 0 {
				continue
			}
			for q = 0; q < d.c; q++ {
				g.data[p*d.c+q] += wp * d.data[off+q]
			}
		}
	}

	return g, nil
}
