// SPDX-License-Identifier: MIT

package separator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/axisep/connectivity"
)

// Solver is the scratch state of one separation run: the points, their two
// sorted orders, the connectivity relation and both candidate sequences.
type Solver struct {
	points []Point
	opts   Options

	// order[a][rank] is the index of the point at that rank along axis a;
	// coords[a][rank] is its coordinate.
	order  [2][]int
	coords [2][]int

	rel        *connectivity.Relation
	candidates [2][]Line

	lines   []Line
	skipped int
}

// New validates points and builds a Solver ready to Solve.
// Stage 1 (Validate): count, capacity, positive and distinct coordinates.
// Stage 2 (Sort): x and y orders.
// Stage 3 (Relation): complete relation plus integrity check.
// Stage 4 (Generate): candidate sequences for both axes.
func New(points []Point, opts ...Option) (*Solver, error) {
	// 1. Apply options and validate input
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validatePoints(points, o.Capacity); err != nil {
		return nil, err
	}

	s := &Solver{
		points: slices.Clone(points),
		opts:   o,
	}

	// 2. Sort once per axis; the orders never change afterwards
	for _, a := range []Axis{X, Y} {
		s.order[a], s.coords[a] = sortByAxis(s.points, a)
	}

	// 3. Build the relation and check it
	rel, err := connectivity.NewComplete(len(s.points))
	if err != nil {
		return nil, err
	}
	s.rel = rel
	if err = s.checkInitial(); err != nil {
		return nil, err
	}

	// 4. Candidates are generated once, up front, without the relation
	s.candidates[X] = generate(X, s.coords[X])
	s.candidates[Y] = generate(Y, s.coords[Y])

	return s, nil
}

// validatePoints enforces the preconditions the algorithm depends on.
func validatePoints(points []Point, capacity int) error {
	n := len(points)
	if n == 0 {
		return ErrNoPoints
	}
	if n > capacity {
		return fmt.Errorf("%d points, capacity %d: %w", n, capacity, ErrCapacityExceeded)
	}

	seenX := make(map[int]int, n)
	seenY := make(map[int]int, n)
	for i, p := range points {
		if p.X <= 0 || p.Y <= 0 {
			return fmt.Errorf("point %d %v: %w", i, p, ErrNonPositiveCoordinate)
		}
		if j, ok := seenX[p.X]; ok {
			return fmt.Errorf("points %d and %d share x=%d: %w", j, i, p.X, ErrDuplicateCoordinate)
		}
		if j, ok := seenY[p.Y]; ok {
			return fmt.Errorf("points %d and %d share y=%d: %w", j, i, p.Y, ErrDuplicateCoordinate)
		}
		seenX[p.X] = i
		seenY[p.Y] = i
	}

	return nil
}

// sortByAxis returns the index permutation of points ascending by the axis
// coordinate, and the coordinates in that order.
func sortByAxis(points []Point, a Axis) ([]int, []int) {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		return cmp.Compare(a.Coord(points[i]), a.Coord(points[j]))
	})

	coords := make([]int, len(order))
	for rank, idx := range order {
		coords[rank] = a.Coord(points[idx])
	}

	return order, coords
}

// checkInitial verifies the freshly built relation holds exactly n·(n−1)
// connections.
func (s *Solver) checkInitial() error {
	n := len(s.points)
	if got, want := s.rel.Remaining(), n*(n-1); got != want {
		return fmt.Errorf("separator: remaining connections %d, want %d: %w", got, want, ErrIntegrity)
	}

	return nil
}

// reset restores the scratch state of a run: the complete relation, no
// committed candidates, an empty solution.
func (s *Solver) reset() error {
	s.rel.Reset()
	for _, a := range []Axis{X, Y} {
		for k := range s.candidates[a] {
			s.candidates[a][k].Committed = false
		}
	}
	s.lines = s.lines[:0]
	s.skipped = 0

	return s.checkInitial()
}

// Len returns the number of points.
func (s *Solver) Len() int { return len(s.points) }

// Points returns a copy of the input points.
func (s *Solver) Points() []Point { return slices.Clone(s.points) }

// Order returns a copy of the point indices sorted ascending along axis a.
func (s *Solver) Order(a Axis) []int { return slices.Clone(s.order[a]) }

// Candidates returns a copy of the candidate sequence for axis a, in
// generation order.
func (s *Solver) Candidates(a Axis) []Line { return slices.Clone(s.candidates[a]) }

// Remaining returns the global remaining-connections counter.
func (s *Solver) Remaining() int { return s.rel.Remaining() }

// RemainingFor returns how many points point i still needs separating from.
func (s *Solver) RemainingFor(i int) (int, error) { return s.rel.Degree(i) }

// Lines returns a copy of the lines committed so far, in commit order.
func (s *Solver) Lines() []Line { return slices.Clone(s.lines) }
