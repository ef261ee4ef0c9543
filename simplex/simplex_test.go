// SPDX-License-Identifier: MIT
package simplex_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/polytope"
	"github.com/katalvlaran/lpviz/simplex"
)

const tol = 1e-9

func mustProblem(t testing.TB, a [][]float64, b, c []float64) *polytope.Problem {
	t.Helper()
	p, err := polytope.New(a, b, c)
	require.NoError(t, err)

	return p
}

// unitSquare is 0 ≤ x, y ≤ 1.
func unitSquare(t testing.TB, c []float64) *polytope.Problem {
	return mustProblem(t,
		[][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		[]float64{1, 1, 0, 0}, c)
}

func requireFinal(t *testing.T, res *simplex.Result, want []float64) {
	t.Helper()
	x, ok := res.Final()
	require.True(t, ok, "empty trace")
	require.Len(t, x, len(want))
	for i := range want {
		assert.InDelta(t, want[i], x[i], 1e-9, "x[%d]", i)
	}
}

// TestSolve_UnitSquare walks to (1, 1) and splits the logs by phase.
func TestSolve_UnitSquare(t *testing.T) {
	p := unitSquare(t, []float64{1, 1})
	res, err := simplex.Solve(p, nil)
	require.NoError(t, err)

	assert.Equal(t, lp.StatusConverged, res.Status)
	requireFinal(t, res, []float64{1, 1})
	assert.InDelta(t, 2.0, res.Objective, tol)
	assert.Equal(t, "simplex", res.Engine())

	// One log line per iterate plus the summary.
	require.Len(t, res.Logs, len(res.X)+1)
	assert.Equal(t, "simplex: converged after "+strconv.Itoa(res.Iterations)+" iterations", res.Logs[len(res.Logs)-1])
	assert.NotEmpty(t, res.Phase1Logs)
	assert.NotEmpty(t, res.Phase2Logs)
	assert.Equal(t, len(res.Phase1Logs)+len(res.Phase2Logs)-1, len(res.X))
}

// TestSolve_Triangle finds an optimal vertex when the optimum is an edge.
func TestSolve_Triangle(t *testing.T) {
	// x, y ≥ 0, x + y ≤ 1.
	p := mustProblem(t,
		[][]float64{{-1, 0}, {0, -1}, {1, 1}},
		[]float64{0, 0, 1}, []float64{1, 1})
	res, err := simplex.Solve(p, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Objective, tol)

	x, _ := res.Final()
	assert.True(t, p.Feasible(x, tol))
}

// TestSolve_TriangleUniqueVertex reaches the single optimal vertex.
func TestSolve_TriangleUniqueVertex(t *testing.T) {
	p := mustProblem(t,
		[][]float64{{-1, 0}, {0, -1}, {1, 1}},
		[]float64{0, 0, 1}, []float64{1, 0.5})
	res, err := simplex.Solve(p, nil)
	require.NoError(t, err)
	requireFinal(t, res, []float64{1, 0})
}

// TestSolve_NegativeRHS phase 1 starts from an infeasible origin.
func TestSolve_NegativeRHS(t *testing.T) {
	// 2 ≤ x, y ≤ 3: the origin is infeasible so phase 1 has real work.
	p := mustProblem(t,
		[][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		[]float64{3, 3, -2, -2}, []float64{1, -1})
	res, err := simplex.Solve(p, nil)
	require.NoError(t, err)
	requireFinal(t, res, []float64{3, 2})
	assert.InDelta(t, 1.0, res.Objective, tol)

	// Every phase-2 iterate is a vertex of the feasible square.
	for _, x := range res.X[len(res.Phase1Logs)-1:] {
		assert.True(t, p.Feasible(x, 1e-9), "iterate %v", x)
	}
}

// TestSolve_Infeasible a positive phase-1 optimum reports infeasibility.
func TestSolve_Infeasible(t *testing.T) {
	// x ≤ −1 and x ≥ 1.
	p := mustProblem(t,
		[][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
		[]float64{-1, -1, 1, 1}, []float64{1, 1})
	res, err := simplex.Solve(p, nil)
	require.ErrorIs(t, err, lp.ErrInfeasible)
	require.NotNil(t, res)

	assert.Equal(t, lp.StatusInfeasible, res.Status)
	assert.NotEmpty(t, res.X, "phase 1 iterates are kept")
	assert.Empty(t, res.Phase2Logs)
	assert.Contains(t, res.Logs[len(res.Logs)-1], "infeasible")
}

// TestSolve_Unbounded the ratio test finds no leaving row.
func TestSolve_Unbounded(t *testing.T) {
	p := mustProblem(t,
		[][]float64{{-1, 0}, {0, -1}},
		[]float64{0, 0}, []float64{1, 1})
	res, err := simplex.Solve(p, nil)
	require.ErrorIs(t, err, lp.ErrUnbounded)
	assert.Equal(t, lp.StatusUnbounded, res.Status)
	assert.NotEmpty(t, res.X)
}

// TestSolve_DegenerateVertex a redundant row through the optimum under every pricing limit.
func TestSolve_DegenerateVertex(t *testing.T) {
	// x + y ≤ 2 passes through the optimal corner (1, 1) of the square.
	a := [][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}}
	b := []float64{1, 1, 0, 0, 2}

	for _, limit := range []int{0, 1, 50} {
		p := mustProblem(t, a, b, []float64{1, 1})
		opts := simplex.DefaultOptions()
		opts.DegenerateLimit = limit
		res, err := simplex.Solve(p, &opts)
		require.NoError(t, err, "limit=%d", limit)
		requireFinal(t, res, []float64{1, 1})
	}
}

// beale is Beale's LP, which cycles under pure Dantzig pricing:
// maximize 0.75x₁ − 150x₂ + 0.02x₃ − 6x₄ with x ≥ 0 written as rows.
func beale(t testing.TB) *polytope.Problem {
	return mustProblem(t,
		[][]float64{
			{0.25, -60, -0.04, 9},
			{0.5, -90, -0.02, 3},
			{0, 0, 1, 0},
			{-1, 0, 0, 0},
			{0, -1, 0, 0},
			{0, 0, -1, 0},
			{0, 0, 0, -1},
		},
		[]float64{0, 0, 1, 0, 0, 0, 0},
		[]float64{0.75, -150, 0.02, -6})
}

// TestSolve_Cycling: Bland's fallback breaks the cycle; without it pivoting stalls.
func TestSolve_Cycling(t *testing.T) {
	res, err := simplex.Solve(beale(t), nil)
	require.NoError(t, err)
	assert.Equal(t, lp.StatusConverged, res.Status)
	assert.InDelta(t, 0.05, res.Objective, 1e-9)
	requireFinal(t, res, []float64{0.04, 0, 1, 0})

	opts := simplex.DefaultOptions()
	opts.DegenerateLimit = 1_000_000
	opts.MaxIter = 2000
	res, err = simplex.Solve(beale(t), &opts)
	require.ErrorIs(t, err, lp.ErrStalled)
	assert.Equal(t, lp.StatusStalled, res.Status)
	assert.Contains(t, err.Error(), "phase 2")
}

// TestSolve_RedundantRows basis repair copes with duplicated constraints.
func TestSolve_RedundantRows(t *testing.T) {
	// Duplicate rows leave phase 1 with a rank-deficient choice of columns.
	p := mustProblem(t,
		[][]float64{{1, 0}, {1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		[]float64{1, 1, 1, 0, 0}, []float64{2, 1})
	res, err := simplex.Solve(p, nil)
	require.NoError(t, err)
	requireFinal(t, res, []float64{1, 1})
	assert.InDelta(t, 3.0, res.Objective, tol)
}

// TestSolve_Stalled the pivot cap is reported as ErrStalled.
func TestSolve_Stalled(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.MaxIter = 1
	res, err := simplex.Solve(unitSquare(t, []float64{1, 1}), &opts)
	require.ErrorIs(t, err, lp.ErrStalled)
	assert.Equal(t, lp.StatusStalled, res.Status)
	assert.Equal(t, 1, res.Iterations)
}

// TestSolve_InvalidInput rejects out-of-range options.
func TestSolve_InvalidInput(t *testing.T) {
	p := unitSquare(t, []float64{1, 1})

	for name, o := range map[string]simplex.Options{
		"zero MaxIter":      {MaxIter: 0, Tol: 1e-9},
		"huge MaxIter":      {MaxIter: simplex.MaxIterCap + 1, Tol: 1e-9},
		"negative Tol":      {MaxIter: 10, Tol: -1},
		"negative DegLimit": {MaxIter: 10, Tol: 1e-9, DegenerateLimit: -1},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := simplex.Solve(p, &o)
			require.ErrorIs(t, err, lp.ErrInvalidOptions)
			assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
			assert.Equal(t, lp.StatusInvalid, res.Status)
			assert.Empty(t, res.X)
		})
	}

	_, err := simplex.Solve(&polytope.Problem{A: p.A, B: []float64{1}, C: p.C}, nil)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
}

// TestSolve_Idempotent repeated solves produce identical traces.
func TestSolve_Idempotent(t *testing.T) {
	p := mustProblem(t,
		[][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}},
		[]float64{3, 3, -2, -2, 5.5}, []float64{1, 2})
	r1, err := simplex.Solve(p, nil)
	require.NoError(t, err)
	r2, err := simplex.Solve(p, nil)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(r1.X, r2.X))
	assert.Empty(t, cmp.Diff(r1.Logs, r2.Logs))
	assert.Equal(t, r1.Iterations, r2.Iterations)
}
