// SPDX-License-Identifier: MIT

package separator_test

import (
	"math/rand"

	"github.com/katalvlaran/axisep/separator"
)

// scenarioFive is the five-point instance used throughout the tests.
// Sorted by x it is already in input order; sorted by y it is 3,4,1,2,0.
func scenarioFive() []separator.Point {
	return []separator.Point{{1, 10}, {2, 6}, {3, 8}, {4, 1}, {5, 3}}
}

// diagonal returns n points on y = x; the y candidates cut exactly where
// the x candidates do, so every y candidate ends up skipped.
func diagonal(n int) []separator.Point {
	pts := make([]separator.Point, n)
	for i := range pts {
		pts[i] = separator.Point{X: i + 1, Y: i + 1}
	}

	return pts
}

// randomPoints returns n points with distinct, unevenly spaced coordinates.
func randomPoints(rng *rand.Rand, n int) []separator.Point {
	xs := rng.Perm(n)
	ys := rng.Perm(n)
	pts := make([]separator.Point, n)
	for i := range pts {
		pts[i] = separator.Point{X: 3*xs[i] + 1 + xs[i]%2, Y: 2*ys[i] + 5}
	}

	return pts
}

func intercepts(lines []separator.Line) []float64 {
	out := make([]float64, len(lines))
	for i, l := range lines {
		out[i] = l.Intercept
	}

	return out
}
