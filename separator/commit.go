// SPDX-License-Identifier: MIT

package separator

import "fmt"

// Commit adopts candidate l: it marks l committed, appends it to the
// solution, and disconnects every pair on opposite sides of it. It returns
// the number of pairs newly separated. This is the only operation that
// shrinks the relation.
func (s *Solver) Commit(l Line) (int, error) {
	// 1. Resolve the candidate this line refers to
	if l.Axis != X && l.Axis != Y {
		return 0, fmt.Errorf("Commit(%v): %w", l, ErrUnknownLine)
	}
	seq := s.candidates[l.Axis]
	if l.Order < 0 || l.Order >= len(seq) || seq[l.Order].Intercept != l.Intercept {
		return 0, fmt.Errorf("Commit(%v): %w", l, ErrUnknownLine)
	}
	cand := &seq[l.Order]
	if cand.Committed {
		return 0, fmt.Errorf("Commit(%v): %w", l, ErrAlreadyCommitted)
	}

	// 2. Disconnect across the partition
	left, right := s.sides(*cand)
	removed, err := s.rel.DisconnectBetween(left, right)
	if err != nil {
		return 0, fmt.Errorf("Commit(%v): %w", l, err)
	}

	// 3. Record
	cand.Committed = true
	s.lines = append(s.lines, *cand)

	return removed, nil
}
