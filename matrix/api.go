// SPDX-License-Identifier: MIT
// Package matrix - constructors.
//
// Purpose:
//   - Provide intention-revealing constructors (zeros, identity, diagonal).
//   - Each constructor delegates allocation to NewDense.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiag returns the square matrix with v on its diagonal.
// Errors: ErrInvalidDimensions (empty v), ErrNaNInf (non-finite entry).
func NewDiag(v []float64) (*Dense, error) {
	if err := ValidateFinite(v); err != nil {
		return nil, err
	}
	n := len(v)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, x := range v {
		D.data[i*n+i] = x
	}

	return D, nil
}
