// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpviz/matrix"
)

// TestNewDense_InvalidShape ensures non-positive shapes are rejected.
func TestNewDense_InvalidShape(t *testing.T) {
	for _, sh := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(sh[0], sh[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", sh)
	}
}

// TestDense_AtSetBounds checks bounds errors and the finite-value policy.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestNewDenseFrom covers ragged, empty and non-finite input.
func TestNewDenseFrom(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	r, c := m.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	_, err := matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom([][]float64{{1, math.Inf(1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDense_CloneIndependence verifies Clone does not share storage.
func TestDense_CloneIndependence(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	v, err := cp.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone must not observe writes to the original")
}

// TestDense_RowColString checks row/column copies and the String layout.
func TestDense_RowColString(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4.5}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4.5}, row)
	col, err := m.Col(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, col)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
