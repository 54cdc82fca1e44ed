// SPDX-License-Identifier: MIT

package separator

import "sort"

// PartitionPoint returns the highest rank along axis a whose coordinate is
// strictly less than intercept, or −1 if every coordinate exceeds it.
// Ranks [0, p] lie left of (below) the line, ranks [p+1, n) right of (above) it.
// Complexity: O(log n).
func (s *Solver) PartitionPoint(a Axis, intercept float64) int {
	coords := s.coords[a]
	first := sort.Search(len(coords), func(k int) bool {
		return float64(coords[k]) >= intercept
	})

	return first - 1
}

// sides splits the axis order of l into the point indices left and right of it.
func (s *Solver) sides(l Line) (left, right []int) {
	p := s.PartitionPoint(l.Axis, l.Intercept)
	order := s.order[l.Axis]

	return order[:p+1], order[p+1:]
}

// HasLiveCrossing reports whether any point on one side of l is still
// connected to any point on the other side, i.e. whether committing l
// would separate at least one pair that is not separated yet.
// Complexity: O(k·(n−k)) for a left side of k points.
func (s *Solver) HasLiveCrossing(l Line) (bool, error) {
	left, right := s.sides(l)
	if len(left) == 0 || len(right) == 0 {
		return false, nil
	}

	return s.rel.AnyBetween(left, right)
}
