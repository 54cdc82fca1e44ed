// SPDX-License-Identifier: MIT

package separator_test

import (
	"fmt"

	"github.com/katalvlaran/axisep/separator"
)

// ExampleSolve separates five points with four axis-parallel lines.
//
//	y
//	10 *
//	 8     *
//	 6   *
//	 3         *
//	 1       *
//	   1 2 3 4 5  x
func ExampleSolve() {
	points := []separator.Point{{1, 10}, {2, 6}, {3, 8}, {4, 1}, {5, 3}}

	sol, err := separator.Solve(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(sol.Lines))
	for _, l := range sol.Lines {
		fmt.Println(l)
	}
	fmt.Println("complete:", sol.Complete)

	// Output:
	// 4
	// v 2.500000
	// h 4.500000
	// v 1.500000
	// h 2.000000
	// complete: true
}
