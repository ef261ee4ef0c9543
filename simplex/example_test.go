// SPDX-License-Identifier: MIT
package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/lpviz/polytope"
	"github.com/katalvlaran/lpviz/simplex"
)

// ExampleSolve maximizes x + 0.5y over the triangle x, y ≥ 0, x + y ≤ 1.
func ExampleSolve() {
	p, err := polytope.FromInequalities([]polytope.Inequality{
		{A: -1, B: 0, C: 0},
		{A: 0, B: -1, C: 0},
		{A: 1, B: 1, C: 1},
	}, []float64{1, 0.5})
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := simplex.Solve(p, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	x, _ := res.Final()
	fmt.Printf("status=%s x=%.3f objective=%.3f\n", res.Status, x[0], res.Objective)
	// Output:
	// status=converged x=1.000 objective=1.000
}
