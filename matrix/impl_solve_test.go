// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpviz/matrix"
)

// TestSolve_Regular solves a system that needs row pivoting (zero leading entry).
func TestSolve_Regular(t *testing.T) {
	K := mustFrom(t, [][]float64{
		{0, 2, 1},
		{1, 1, 0},
		{2, 0, 3},
	})
	want := []float64{1, -2, 3}
	r, err := matrix.MatVec(K, want)
	require.NoError(t, err)

	x, err := matrix.Solve(hide{K}, r)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, 1e-12)
}

// TestSolve_Singular ensures numerically singular systems surface ErrSingular.
func TestSolve_Singular(t *testing.T) {
	cases := map[string][][]float64{
		"zero":         {{0, 0}, {0, 0}},
		"dependent":    {{1, 2}, {2, 4}},
		"nearly-equal": {{1, 1}, {1, 1 + 1e-18}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Solve(mustFrom(t, rows), []float64{1, 1})
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

// TestSolve_Shape covers the shape contract.
func TestSolve_Shape(t *testing.T) {
	_, err := matrix.Solve(mustFrom(t, [][]float64{{1, 2}}), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Solve(mustFrom(t, [][]float64{{1}}), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSolve_InputsUntouched verifies Solve neither mutates K nor r.
func TestSolve_InputsUntouched(t *testing.T) {
	K := mustFrom(t, [][]float64{{4, 1}, {2, 3}})
	r := []float64{1, 2}
	_, err := matrix.Solve(K, r)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{4, 1}, {2, 3}}, rowsOf(t, K))
	assert.Equal(t, []float64{1, 2}, r)
}

// TestRank counts independent columns with a relative cut-off.
func TestRank(t *testing.T) {
	full := mustFrom(t, [][]float64{{1, 0, 1}, {0, 1, 1}, {0, 0, 1}})
	rk, err := matrix.Rank(full, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, 3, rk)

	deficient := mustFrom(t, [][]float64{{1, 2}, {2, 4}, {3, 6}})
	rk, err = matrix.Rank(deficient, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, 1, rk)
}
