// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lpviz/matrix"
)

// ExampleSolve solves a 2×2 system through the LU-backed Solve.
func ExampleSolve() {
	K, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 3}})
	x, err := matrix.Solve(K, []float64{3, 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x = [%.3f %.3f]\n", x[0], x[1])
	// Output:
	// x = [0.800 1.400]
}

// ExampleBlocks shows a block matrix with an implicit zero block.
func ExampleBlocks() {
	I, _ := matrix.NewIdentity(2)
	D, _ := matrix.NewDiag([]float64{5, 6})
	K, _ := matrix.Blocks([][]matrix.Matrix{{I, nil}, {nil, D}})
	fmt.Print(K)
	// Output:
	// [1, 0, 0, 0]
	// [0, 1, 0, 0]
	// [0, 0, 5, 0]
	// [0, 0, 0, 6]
}
