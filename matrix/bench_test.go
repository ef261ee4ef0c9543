// Package matrix_test provides benchmarks for the kernels the LP engines
// call in their inner loops, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lpviz/matrix"
)

// benchSizes are the system sizes to benchmark (KKT systems stay small).
var benchSizes = []int{8, 32, 96}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

// randomSPD returns a diagonally dominant n×n matrix (always solvable).
func randomSPD(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
		rows[i][i] += float64(n)
	}

	return mustFrom(b, rows)
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			K := randomSPD(b, n, 1337)
			r := matrix.Ones(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.Solve(K, r)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkWeightedGram(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomSPD(b, n, 4242)
			w := matrix.Ones(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := matrix.WeightedGram(A, w)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = g
			}
		})
	}
}
