// SPDX-License-Identifier: MIT
package ipm_test

import (
	"fmt"

	"github.com/katalvlaran/lpviz/ipm"
	"github.com/katalvlaran/lpviz/polytope"
)

func ExampleSolve() {
	p, _ := polytope.FromInequalities([]polytope.Inequality{
		{A: 1, B: 0, C: 1},
		{A: 0, B: 1, C: 1},
		{A: -1, B: 0, C: 0},
		{A: 0, B: -1, C: 0},
	}, []float64{1, 1})

	res, err := ipm.Solve(p, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s, objective %.4f\n", res.Status, res.Objective)
	// Output:
	// converged, objective 2.0000
}
