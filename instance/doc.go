// SPDX-License-Identifier: MIT

// Package instance reads problem instances and writes separator solutions.
//
// Instance format: a header with the declared point count n, followed by n
// whitespace-separated "x y" integer pairs.
//
//	5
//	1 10
//	2 6
//	...
//
// Solution format: a header with the line count, then one line per
// committed separator line, in commit order: "v" (vertical, splits on x) or
// "h" (horizontal, splits on y) and the intercept.
//
//	4
//	v 2.500000
//	h 4.500000
//
// Store maps instance numbers to file names in a directory
// (instance01, greedy_solution_01, ...).
package instance
