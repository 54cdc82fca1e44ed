// SPDX-License-Identifier: MIT

package separator

// generate bisects the sorted coordinates of one axis recursively and
// returns one candidate per bisection, in pre-order: the split of the whole
// range first, then the splits of its lower half, then of its upper half.
//
// A range is the ranks (from, to]; the initial range is (−1, n−1]. For
// span = to − from:
//   - span <= 1: a single rank, nothing to split.
//   - otherwise half = span/2 and the candidate sits midway between the
//     coordinates at ranks from+half and from+half+1, then (unless span == 2,
//     where that one line already splits the range) recurse on
//     (from, from+half] and (from+half, to].
//
// Every gap between consecutive ranks is emitted exactly once, so the
// result has n−1 lines and no intercept equals any coordinate.
func generate(a Axis, coords []int) []Line {
	n := len(coords)
	if n < 2 {
		return nil
	}
	lines := make([]Line, 0, n-1)

	var split func(from, to int)
	split = func(from, to int) {
		span := to - from
		if span <= 1 {
			return
		}
		half := span / 2

		lo := float64(coords[from+half])
		hi := float64(coords[from+half+1])
		lines = append(lines, Line{
			Axis:      a,
			Intercept: lo + (hi-lo)/2,
			Order:     len(lines),
		})

		if span == 2 {
			return
		}
		split(from, from+half)
		split(from+half, to)
	}
	split(-1, n-1)

	return lines
}
