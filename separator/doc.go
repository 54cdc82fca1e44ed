// SPDX-License-Identifier: MIT

// Package separator computes a small set of axis-parallel lines that
// separates every pair of points in a finite planar point set.
//
// What:
//
//   - Points have strictly positive integer coordinates, and no two points
//     share an x or a y coordinate.
//   - A line separates two points when they lie strictly on opposite sides
//     of it. A vertical line (Axis X) splits on x, a horizontal line
//     (Axis Y) splits on y.
//   - The method is a greedy heuristic. It never needs more than n−1
//     lines and typically uses far fewer, but it is not an exact minimum.
//
// How:
//
//  1. Sort: two permutations of the points, ascending by x and by y.
//  2. Generate: for each axis, bisect the sorted ranks recursively and
//     emit one candidate per bisection, in pre-order (whole range first,
//     then each half). Each axis yields n−1 candidates, one per gap
//     between consecutive coordinates, so every intercept lies strictly
//     between two coordinate values.
//  3. Walk: alternate X, Y, X, Y over the two candidate sequences. A
//     candidate is committed only if some pair on opposite sides of it is
//     still connected; committing disconnects every such pair.
//  4. Stop when no connected pair remains, or as soon as either sequence
//     runs out.
//
// Key Types:
//
//   - Axis, Point, Line: geometry and the output artifact.
//   - Solver: per-run context owning the sorted orders, the
//     connectivity.Relation and both candidate sequences. Solve resets all
//     of it first, so a Solver may be solved again without leaking state.
//   - Solution: committed lines in commit order plus run diagnostics.
//   - Option / Options: capacity limit, logger, commit and skip hooks.
//
// Complexity:
//
//   - New:   Time O(n²) (relation), O(n log n) sort, O(n) generation.
//   - Solve: Time O(n³) worst case (2(n−1) tests of O(n²) each), Memory O(n²).
//
// Errors:
//
//   - ErrNoPoints               empty point set
//   - ErrCapacityExceeded       more points than the configured capacity
//   - ErrNonPositiveCoordinate  a coordinate <= 0
//   - ErrDuplicateCoordinate    two points share an x or a y
//   - ErrUnknownLine            Commit of a line that is not a candidate
//   - ErrAlreadyCommitted       Commit of a candidate twice in one run
//   - ErrIntegrity              relation failed its post-initialization check
//   - ErrUnseparated            Verify found a pair no line separates
//
// A Solver is not safe for concurrent use; solve independent instances
// with independent Solvers.
package separator
