// SPDX-License-Identifier: MIT

// Command axisep separates planar point sets with axis-parallel lines.
//
//	axisep batch --input ./instances --output ./solutions
//	axisep solve instance01 -o greedy_solution_01
//	axisep verify instance01 greedy_solution_01
//	axisep render instance01 greedy_solution_01 -o instance01.png
//	axisep watch --input ./incoming
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "axisep:", err)
		os.Exit(1)
	}
}
