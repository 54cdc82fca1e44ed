// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"
	"strings"
)

// Relation is a symmetric "still connected" relation over n points.
// cells holds n*n flags in row-major order; degree[i] counts the true
// cells of row i; remaining counts all true cells.
type Relation struct {
	n         int
	cells     []bool
	degree    []int
	remaining int
}

// NewComplete builds the complete relation over n points: every pair of
// distinct points is connected, the diagonal is not.
// Stage 1 (Validate): n >= 0.
// Stage 2 (Prepare): allocate flat storage.
// Stage 3 (Execute): fill via Reset.
// Complexity: O(n²) time and memory.
func NewComplete(n int) (*Relation, error) {
	// Validate size
	if n < 0 {
		return nil, fmt.Errorf("NewComplete(%d): %w", n, ErrNegativeSize)
	}

	r := &Relation{
		n:      n,
		cells:  make([]bool, n*n),
		degree: make([]int, n),
	}
	r.Reset()

	return r, nil
}

// Len returns the number of points the relation covers.
func (r *Relation) Len() int { return r.n }

// Remaining returns the number of true cells. Each connected pair counts
// twice, once per direction.
func (r *Relation) Remaining() int { return r.remaining }

// Reset restores the complete relation, discarding every disconnect.
// Complexity: O(n²).
func (r *Relation) Reset() {
	var i, j int
	r.remaining = 0
	for i = 0; i < r.n; i++ {
		row := r.cells[i*r.n : (i+1)*r.n]
		for j = range row {
			row[j] = i != j
		}
		r.degree[i] = r.n - 1
		r.remaining += r.n - 1
	}
}

// indexOf computes the flat offset of (i, j) or returns ErrOutOfRange.
func (r *Relation) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return 0, relationErrorf(method, i, j, ErrOutOfRange)
	}

	return i*r.n + j, nil
}

// Connected reports whether points i and j still need separating.
// Complexity: O(1).
func (r *Relation) Connected(i, j int) (bool, error) {
	idx, err := r.indexOf("Connected", i, j)
	if err != nil {
		return false, err
	}

	return r.cells[idx], nil
}

// Degree returns the number of points still connected to point i.
func (r *Relation) Degree(i int) (int, error) {
	if i < 0 || i >= r.n {
		return 0, relationErrorf("Degree", i, i, ErrOutOfRange)
	}

	return r.degree[i], nil
}

// Disconnect removes the pair (i, j) from the relation. It reports whether
// an edge was actually removed; disconnecting an already separated pair
// (or i == j) is a no-op.
// Complexity: O(1).
func (r *Relation) Disconnect(i, j int) (bool, error) {
	if _, err := r.indexOf("Disconnect", i, j); err != nil {
		return false, err
	}

	return r.disconnect(i, j), nil
}

// disconnect assumes i and j are in range.
func (r *Relation) disconnect(i, j int) bool {
	if !r.cells[i*r.n+j] {
		return false
	}
	r.cells[i*r.n+j] = false
	r.cells[j*r.n+i] = false
	r.degree[i]--
	r.degree[j]--
	r.remaining -= 2

	return true
}

// checkIndices validates every index in idx against [0, n).
func (r *Relation) checkIndices(method string, idx []int) error {
	for _, i := range idx {
		if i < 0 || i >= r.n {
			return relationErrorf(method, i, i, ErrOutOfRange)
		}
	}

	return nil
}

// AnyBetween reports whether any point in left is still connected to any
// point in right. Rows with a zero degree are skipped without a scan.
// Complexity: O(|left|·|right|) worst case.
func (r *Relation) AnyBetween(left, right []int) (bool, error) {
	// 1. Validate indices once
	if err := r.checkIndices("AnyBetween", left); err != nil {
		return false, err
	}
	if err := r.checkIndices("AnyBetween", right); err != nil {
		return false, err
	}

	// 2. Scan cross pairs, stopping at the first live one
	var i, j int
	for _, i = range left {
		if r.degree[i] == 0 {
			continue
		}
		row := r.cells[i*r.n : (i+1)*r.n]
		for _, j = range right {
			if row[j] {
				return true, nil
			}
		}
	}

	return false, nil
}

// DisconnectBetween disconnects every pair (l, rr) with l in left and rr in
// right, and returns how many pairs were actually removed.
// Complexity: O(|left|·|right|).
func (r *Relation) DisconnectBetween(left, right []int) (int, error) {
	// 1. Validate indices once
	if err := r.checkIndices("DisconnectBetween", left); err != nil {
		return 0, err
	}
	if err := r.checkIndices("DisconnectBetween", right); err != nil {
		return 0, err
	}

	// 2. Remove cross pairs
	removed := 0
	var i, j int
	for _, i = range left {
		for _, j = range right {
			if r.disconnect(i, j) {
				removed++
			}
		}
	}

	return removed, nil
}

// Verify audits every invariant of the relation: empty diagonal, symmetry,
// per-row degrees, and the global counter.
// Complexity: O(n²).
func (r *Relation) Verify() error {
	var i, j, total int
	for i = 0; i < r.n; i++ {
		if r.cells[i*r.n+i] {
			return fmt.Errorf("Verify: point %d connected to itself: %w", i, ErrIntegrity)
		}
		rowCount := 0
		for j = 0; j < r.n; j++ {
			if r.cells[i*r.n+j] != r.cells[j*r.n+i] {
				return fmt.Errorf("Verify: asymmetric pair (%d,%d): %w", i, j, ErrIntegrity)
			}
			if r.cells[i*r.n+j] {
				rowCount++
			}
		}
		if rowCount != r.degree[i] {
			return fmt.Errorf("Verify: point %d degree=%d, row holds %d: %w",
				i, r.degree[i], rowCount, ErrIntegrity)
		}
		total += rowCount
	}
	if total != r.remaining {
		return fmt.Errorf("Verify: remaining=%d, cells hold %d: %w", r.remaining, total, ErrIntegrity)
	}

	return nil
}

// String renders the relation as rows of 0/1 flags, for debugging.
func (r *Relation) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < r.n; i++ {
		fmt.Fprintf(&b, "%d: [", i)
		for j = 0; j < r.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			if r.cells[i*r.n+j] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
