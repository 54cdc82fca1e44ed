// SPDX-License-Identifier: MIT

package separator

import "fmt"

// Verify checks that every pair of distinct points is separated by at least
// one of lines. It returns ErrUnseparated, naming the first offending pair
// in index order, or nil.
// Complexity: O(n²·L).
func Verify(points []Point, lines []Line) error {
	var i, j int
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			if !separatedBy(points[i], points[j], lines) {
				return fmt.Errorf("points %d %v and %d %v: %w", i, points[i], j, points[j], ErrUnseparated)
			}
		}
	}

	return nil
}

func separatedBy(a, b Point, lines []Line) bool {
	for _, l := range lines {
		if l.Separates(a, b) {
			return true
		}
	}

	return false
}
