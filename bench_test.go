// SPDX-License-Identifier: MIT
package lpviz_test

import (
	"testing"

	"github.com/katalvlaran/lpviz"
	"github.com/katalvlaran/lpviz/lp"
)

var sinkResult *lp.Result

func benchmarkMethod(b *testing.B, m lpviz.Method) {
	p := unitSquare(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := lpviz.Solve(p, m, nil)
		if err != nil {
			b.Fatal(err)
		}
		sinkResult = res
	}
}

func BenchmarkSolve_Simplex(b *testing.B)     { benchmarkMethod(b, lpviz.Simplex) }
func BenchmarkSolve_IPM(b *testing.B)         { benchmarkMethod(b, lpviz.IPM) }
func BenchmarkSolve_PDHG(b *testing.B)        { benchmarkMethod(b, lpviz.PDHG) }
func BenchmarkSolve_CentralPath(b *testing.B) { benchmarkMethod(b, lpviz.CentralPath) }
