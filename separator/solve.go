// SPDX-License-Identifier: MIT

package separator

// Solve runs the greedy driver. It first resets every piece of scratch
// state, so calling Solve twice on one Solver yields the same Solution.
//
// Two cursors walk the X and Y candidate sequences in strict alternation.
// Each step tests the candidate under the cursor, commits it only if it
// has a live crossing, and advances the cursor either way. The walk stops
// when no connection remains or when either cursor runs off the end of its
// sequence, even if the other axis still has candidates left; in that case
// the Solution comes back with Complete == false.
func (s *Solver) Solve() (*Solution, error) {
	// 1. Fresh scratch state
	if err := s.reset(); err != nil {
		return nil, err
	}

	// 2. Walk both sequences in lock-step
	xs, ys := s.candidates[X], s.candidates[Y]
	var cx, cy int
	for s.rel.Remaining() > 0 && cx < len(xs) && cy < len(ys) {
		if err := s.step(X, cx); err != nil {
			return nil, err
		}
		cx++

		if err := s.step(Y, cy); err != nil {
			return nil, err
		}
		cy++
	}

	// 3. Report
	sol := &Solution{
		Lines:       s.Lines(),
		Remaining:   s.rel.Remaining(),
		Skipped:     s.skipped,
		CandidatesX: len(xs),
		CandidatesY: len(ys),
	}
	sol.Complete = sol.Remaining == 0
	if !sol.Complete {
		s.opts.Logger.Warn("candidate pool exhausted",
			"points", len(s.points),
			"remaining", sol.Remaining,
			"x_tested", cx,
			"y_tested", cy)
	}

	return sol, nil
}

// step tests candidate k of axis a and commits it when useful.
func (s *Solver) step(a Axis, k int) error {
	l := s.candidates[a][k]

	live, err := s.HasLiveCrossing(l)
	if err != nil {
		return err
	}
	if !live {
		s.skipped++
		s.opts.Logger.Debug("candidate skipped",
			"axis", a.String(), "order", l.Order, "intercept", l.Intercept)
		if s.opts.OnSkip != nil {
			s.opts.OnSkip(l)
		}

		return nil
	}

	separated, err := s.Commit(l)
	if err != nil {
		return err
	}
	l.Committed = true
	s.opts.Logger.Debug("candidate committed",
		"axis", a.String(), "order", l.Order, "intercept", l.Intercept,
		"separated", separated, "remaining", s.rel.Remaining())
	if s.opts.OnCommit != nil {
		s.opts.OnCommit(l, separated)
	}

	return nil
}

// Solve is shorthand for New(points, opts...) followed by Solve.
func Solve(points []Point, opts ...Option) (*Solution, error) {
	s, err := New(points, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve()
}
