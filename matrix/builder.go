// SPDX-License-Identifier: MIT
// Package matrix - block builders.
//
// Purpose:
//   - Assemble larger systems (KKT matrices, standard-form tableaux, simplex
//     bases) from smaller blocks without ad hoc index arithmetic at call sites.
//
// Determinism:
//   - Blocks are copied in row-major block order; no map iteration.

package matrix

import "fmt"

const (
	opHStack     = "HStack"
	opVStack     = "VStack"
	opBlocks     = "Blocks"
	opSelectCols = "SelectCols"
)

// copyInto writes src into dst with its top-left corner at (r0, c0).
// Caller guarantees the block fits.
func copyInto(dst, src *Dense, r0, c0 int) {
	for i := 0; i < src.r; i++ {
		copy(dst.data[(r0+i)*dst.c+c0:(r0+i)*dst.c+c0+src.c], src.data[i*src.c:(i+1)*src.c])
	}
}

// HStack concatenates matrices horizontally: [m0 | m1 | …].
// All operands must share the same row count.
//
// Errors: ErrInvalidDimensions (no operands), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*Σc), Space O(r*Σc).
func HStack(ms ...Matrix) (*Dense, error) {
	return Blocks([][]Matrix{ms})
}

// VStack concatenates matrices vertically. All operands must share the column count.
//
// Errors: ErrInvalidDimensions (no operands), ErrNilMatrix, ErrDimensionMismatch.
func VStack(ms ...Matrix) (*Dense, error) {
	grid := make([][]Matrix, len(ms))
	for i, m := range ms {
		if m == nil {
			return nil, matrixErrorf(opVStack, ErrNilMatrix)
		}
		grid[i] = []Matrix{m}
	}

	return Blocks(grid)
}

// Blocks assembles a block matrix from a rectangular grid of blocks.
// A nil block stands for a zero block; its shape is inferred from the other
// blocks in the same block-row (height) and block-column (width).
//
// Implementation:
//   - Stage 1: validate the grid is rectangular and infer heights/widths.
//   - Stage 2: allocate the result and copy every non-nil block.
//
// Errors:
//   - ErrInvalidDimensions when the grid is empty or a block-row/column is all nil.
//   - ErrDimensionMismatch when block shapes disagree.
//
// Complexity: Time O(R*C) of the result, Space O(R*C).
//
// Example (IPM KKT):
//
//	K, err := matrix.Blocks([][]matrix.Matrix{
//		{A, negI, nil},
//		{nil, nil, At},
//		{nil, Y, S},
//	})
func Blocks(grid [][]Matrix) (*Dense, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, matrixErrorf(opBlocks, ErrInvalidDimensions)
	}
	var (
		br, bc  = len(grid), len(grid[0])
		heights = make([]int, br)
		widths  = make([]int, bc)
		i, j    int
		blk     Matrix
	)

	// Stage 1: infer block heights and widths, checking consistency.
	for i = 0; i < br; i++ {
		if len(grid[i]) != bc {
			return nil, matrixErrorf(opBlocks, fmt.Errorf("block-row %d: %w", i, ErrDimensionMismatch))
		}
		for j, blk = range grid[i] {
			if blk == nil {
				continue
			}
			if err := ValidateNotNil(blk); err != nil {
				return nil, matrixErrorf(opBlocks, err)
			}
			if heights[i] == 0 {
				heights[i] = blk.Rows()
			} else if heights[i] != blk.Rows() {
				return nil, matrixErrorf(opBlocks, fmt.Errorf("block (%d,%d) rows: %w", i, j, ErrDimensionMismatch))
			}
			if widths[j] == 0 {
				widths[j] = blk.Cols()
			} else if widths[j] != blk.Cols() {
				return nil, matrixErrorf(opBlocks, fmt.Errorf("block (%d,%d) cols: %w", i, j, ErrDimensionMismatch))
			}
		}
	}
	var rows, cols int
	for i = 0; i < br; i++ {
		if heights[i] == 0 {
			return nil, matrixErrorf(opBlocks, fmt.Errorf("block-row %d is empty: %w", i, ErrInvalidDimensions))
		}
		rows += heights[i]
	}
	for j = 0; j < bc; j++ {
		if widths[j] == 0 {
			return nil, matrixErrorf(opBlocks, fmt.Errorf("block-column %d is empty: %w", j, ErrInvalidDimensions))
		}
		cols += widths[j]
	}

	// Stage 2: allocate and copy.
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opBlocks, err)
	}
	var r0, c0 int
	for i = 0; i < br; i++ {
		c0 = 0
		for j = 0; j < bc; j++ {
			if grid[i][j] != nil {
				d, err := toDense(grid[i][j])
				if err != nil {
					return nil, matrixErrorf(opBlocks, err)
				}
				copyInto(out, d, r0, c0)
			}
			c0 += widths[j]
		}
		r0 += heights[i]
	}

	return out, nil
}

// SelectCols returns the submatrix formed by the columns idx, in the given order.
// Used to build a simplex basis matrix B = A[:, basis].
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty idx), ErrOutOfRange.
// Complexity: Time O(r*len(idx)).
func SelectCols(m Matrix, idx []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSelectCols, err)
	}
	if len(idx) == 0 {
		return nil, matrixErrorf(opSelectCols, ErrInvalidDimensions)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSelectCols, err)
	}
	out := &Dense{r: d.r, c: len(idx), data: make([]float64, d.r*len(idx))}
	for k, j := range idx {
		if j < 0 || j >= d.c {
			return nil, matrixErrorf(opSelectCols, denseErrorf(ctxCol, 0, j, ErrOutOfRange))
		}
		for i := 0; i < d.r; i++ {
			out.data[i*out.c+k] = d.data[i*d.c+j]
		}
	}

	return out, nil
}
