// SPDX-License-Identifier: MIT
package pdhg_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/matrix"
	"github.com/katalvlaran/lpviz/pdhg"
	"github.com/katalvlaran/lpviz/polytope"
)

func mustProblem(t testing.TB, a [][]float64, b, c []float64) *polytope.Problem {
	t.Helper()
	p, err := polytope.New(a, b, c)
	require.NoError(t, err)

	return p
}

func unitSquare(t testing.TB) *polytope.Problem {
	return mustProblem(t,
		[][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		[]float64{1, 1, 0, 0}, []float64{1, 1})
}

func triangle(t testing.TB) *polytope.Problem {
	return mustProblem(t,
		[][]float64{{-1, 0}, {0, -1}, {1, 1}},
		[]float64{0, 0, 1}, []float64{1, 0.5})
}

// TestSolve_UnitSquareBothForms converges on the square in inequality and split standard form.
func TestSolve_UnitSquareBothForms(t *testing.T) {
	for _, ineq := range []bool{true, false} {
		opts := pdhg.DefaultOptions()
		opts.Ineq = ineq

		res, err := pdhg.Solve(unitSquare(t), &opts)
		require.NoError(t, err, "ineq=%v", ineq)
		require.Equal(t, lp.StatusConverged, res.Status, "ineq=%v", ineq)
		assert.LessOrEqual(t, res.Iterations, 1000)
		assert.LessOrEqual(t, res.Epsilon, 1e-4)

		x, ok := res.Final()
		require.True(t, ok)
		assert.InDelta(t, 1.0, x[0], 1e-2)
		assert.InDelta(t, 1.0, x[1], 1e-2)
		assert.InDelta(t, 2.0, res.Objective, 1e-2)

		for k, e := range res.Eps {
			assert.False(t, math.IsNaN(e) || math.IsInf(e, 0), "ε[%d] = %v", k, e)
		}
	}
}

// TestSolve_Triangle approaches the unique optimal vertex (1, 0).
func TestSolve_Triangle(t *testing.T) {
	for _, ineq := range []bool{true, false} {
		opts := pdhg.DefaultOptions()
		opts.Ineq = ineq
		res, err := pdhg.Solve(triangle(t), &opts)
		require.NoError(t, err)
		require.Equal(t, lp.StatusConverged, res.Status, "ineq=%v", ineq)

		x, _ := res.Final()
		assert.InDelta(t, 1.0, x[0], 1e-2)
		assert.InDelta(t, 0.0, x[1], 1e-2)
	}
}

// TestSolve_TraceShape records X, Y and Eps per iteration and leaves S and Mu empty.
func TestSolve_TraceShape(t *testing.T) {
	res, err := pdhg.Solve(unitSquare(t), nil)
	require.NoError(t, err)

	n := res.Iterations
	assert.Len(t, res.X, n)
	assert.Len(t, res.Y, n)
	assert.Len(t, res.Eps, n)
	assert.Len(t, res.Logs, n+1)
	assert.Empty(t, res.S)
	assert.Empty(t, res.Mu)
	for _, y := range res.Y {
		for _, v := range y {
			assert.GreaterOrEqual(t, v, 0.0, "inequality-form duals are projected")
		}
	}
}

// TestSolve_SplitTraceIsTwoDimensional the split form reports iterates in the original variables.
func TestSolve_SplitTraceIsTwoDimensional(t *testing.T) {
	opts := pdhg.DefaultOptions()
	opts.Ineq = false
	opts.MaxIter = 5
	res, err := pdhg.Solve(unitSquare(t), &opts)
	require.NoError(t, err)
	assert.Equal(t, lp.StatusMaxIterations, res.Status)
	require.Len(t, res.X, 5)
	for _, x := range res.X {
		assert.Len(t, x, 2)
	}
	// One dual per row of [A −A I].
	assert.Len(t, res.Y[0], 4)
}

// TestStandardForm solves a problem already given as A·x = b, x ≥ 0.
func TestStandardForm(t *testing.T) {
	// min −x₁ − x₂  s.t.  x₁ + s₁ = 1, x₂ + s₂ = 1, x ≥ 0.
	a, err := matrix.NewDenseFrom([][]float64{{1, 0, 1, 0}, {0, 1, 0, 1}})
	require.NoError(t, err)
	opts := pdhg.DefaultOptions()
	opts.MaxIter = 5000

	res, err := pdhg.StandardForm(a, []float64{1, 1}, []float64{-1, -1, 0, 0}, &opts)
	require.NoError(t, err)
	require.Equal(t, lp.StatusConverged, res.Status)

	x, _ := res.Final()
	require.Len(t, x, 4)
	assert.InDelta(t, 1.0, x[0], 1e-2)
	assert.InDelta(t, 1.0, x[1], 1e-2)
	for _, v := range x {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

// TestInequalityForm_MatchesSolve the exported form and Solve share one trace.
func TestInequalityForm_MatchesSolve(t *testing.T) {
	p := triangle(t)
	direct, err := pdhg.InequalityForm(p.A, p.B, p.C, nil)
	require.NoError(t, err)
	viaSolve, err := pdhg.Solve(p, nil)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(direct.Trace, viaSolve.Trace))
}

// TestSolve_Divergent a non-finite ε stops the run early with MaxIterations.
func TestSolve_Divergent(t *testing.T) {
	// Huge steps blow up; the run ends without an error.
	opts := pdhg.DefaultOptions()
	opts.Eta, opts.Tau = 1e150, 1e150
	res, err := pdhg.Solve(unitSquare(t), &opts)
	require.NoError(t, err)
	assert.Equal(t, lp.StatusMaxIterations, res.Status)
	assert.Less(t, res.Iterations, opts.MaxIter)
}

// TestSolve_InvalidInput rejects bad options in both forms.
func TestSolve_InvalidInput(t *testing.T) {
	p := unitSquare(t)
	for name, mutate := range map[string]func(*pdhg.Options){
		"zero MaxIter": func(o *pdhg.Options) { o.MaxIter = 0 },
		"negative Tol": func(o *pdhg.Options) { o.Tol = -1 },
		"zero Eta":     func(o *pdhg.Options) { o.Eta = 0 },
		"NaN Tau":      func(o *pdhg.Options) { o.Tau = math.NaN() },
	} {
		for _, ineq := range []bool{true, false} {
			opts := pdhg.DefaultOptions()
			opts.Ineq = ineq
			mutate(&opts)
			res, err := pdhg.Solve(p, &opts)
			require.ErrorIs(t, err, lp.ErrInvalidOptions, "%s ineq=%v", name, ineq)
			assert.Equal(t, lp.StatusInvalid, res.Status)
		}
	}

	_, err := pdhg.StandardForm(nil, []float64{1}, []float64{1}, nil)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
	_, err = pdhg.InequalityForm(p.A, []float64{1}, p.C, nil)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
}

// TestSolve_Idempotent repeated solves produce identical traces.
func TestSolve_Idempotent(t *testing.T) {
	opts := pdhg.DefaultOptions()
	opts.Ineq = false
	r1, err := pdhg.Solve(triangle(t), &opts)
	require.NoError(t, err)
	r2, err := pdhg.Solve(triangle(t), &opts)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(r1.Trace, r2.Trace))
}
