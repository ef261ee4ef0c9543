// SPDX-License-Identifier: MIT
package lpviz_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpviz"
	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/polytope"
	"github.com/katalvlaran/lpviz/simplex"
)

func unitSquare(t testing.TB) *polytope.Problem {
	t.Helper()
	p, err := polytope.FromInequalities([]polytope.Inequality{
		{A: 1, B: 0, C: 1},
		{A: 0, B: 1, C: 1},
		{A: -1, B: 0, C: 0},
		{A: 0, B: -1, C: 0},
	}, []float64{1, 1})
	require.NoError(t, err)

	return p
}

// TestParseMethod accepts every method name and common spellings.
func TestParseMethod(t *testing.T) {
	for _, m := range lpviz.Methods() {
		got, err := lpviz.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for in, want := range map[string]lpviz.Method{
		" IPM ":        lpviz.IPM,
		"centralpath":  lpviz.CentralPath,
		"central_path": lpviz.CentralPath,
		"PDHG":         lpviz.PDHG,
	} {
		got, err := lpviz.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := lpviz.ParseMethod("ellipsoid")
	assert.ErrorIs(t, err, lpviz.ErrUnknownMethod)
	assert.Equal(t, "Method(9)", lpviz.Method(9).String())
}

// TestSolve_EveryMethodReachesTheCorner all engines end at (1, 1) on the square.
func TestSolve_EveryMethodReachesTheCorner(t *testing.T) {
	p := unitSquare(t)
	for _, m := range lpviz.Methods() {
		t.Run(m.String(), func(t *testing.T) {
			res, err := lpviz.Solve(p, m, nil)
			require.NoError(t, err)
			assert.Equal(t, lp.StatusConverged, res.Status)
			assert.Equal(t, m.String(), res.Engine())

			x, ok := res.Final()
			require.True(t, ok)
			assert.InDelta(t, 1.0, x[0], 1e-2)
			assert.InDelta(t, 1.0, x[1], 1e-2)
			assert.True(t, p.Feasible(x, 1e-3))
		})
	}
}

// TestSolve_PerEngineOptions options apply only to their own engine.
func TestSolve_PerEngineOptions(t *testing.T) {
	opts := &lpviz.Options{Simplex: &simplex.Options{MaxIter: 0}}
	res, err := lpviz.Solve(unitSquare(t), lpviz.Simplex, opts)
	require.ErrorIs(t, err, lp.ErrInvalidOptions)
	assert.Equal(t, lp.StatusInvalid, res.Status)

	// Other engines keep their defaults.
	_, err = lpviz.Solve(unitSquare(t), lpviz.IPM, opts)
	assert.NoError(t, err)
}

// TestSolve_UnknownMethod an undefined Method is rejected without a result.
func TestSolve_UnknownMethod(t *testing.T) {
	res, err := lpviz.Solve(unitSquare(t), lpviz.Method(-1), nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, lpviz.ErrUnknownMethod)
}

// TestSolveAll_MatchesSequential runs every engine concurrently, several
// times over, and checks each trace equals a sequential run.
func TestSolveAll_MatchesSequential(t *testing.T) {
	p := unitSquare(t)
	want := make(map[lpviz.Method]lp.Trace)
	for _, m := range lpviz.Methods() {
		res, err := lpviz.Solve(p, m, nil)
		require.NoError(t, err)
		want[m] = res.Trace
	}

	for round := 0; round < 3; round++ {
		got := lpviz.SolveAll(p, nil)
		require.Len(t, got, len(lpviz.Methods()))
		for m, o := range got {
			require.NoError(t, o.Err, m.String())
			assert.Empty(t, cmp.Diff(want[m], o.Result.Trace), "%s round %d", m, round)
		}
	}
}

// TestSolveAll_ReportsFailuresPerEngine one engine failing does not affect the others.
func TestSolveAll_ReportsFailuresPerEngine(t *testing.T) {
	// x, y ≥ 0 only: unbounded for simplex, IPM and PDHG run to their caps.
	p, err := polytope.New([][]float64{{-1, 0}, {0, -1}}, []float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	got := lpviz.SolveAll(p, nil)
	assert.ErrorIs(t, got[lpviz.Simplex].Err, lp.ErrUnbounded)
	assert.Equal(t, lp.StatusUnbounded, got[lpviz.Simplex].Result.Status)
	for _, o := range got {
		require.NotNil(t, o.Result)
		assert.NotEmpty(t, o.Result.Logs)
	}
}
