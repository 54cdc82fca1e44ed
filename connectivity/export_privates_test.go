// SPDX-License-Identifier: MIT

package connectivity

// Test bridge: lets connectivity_test corrupt a relation on purpose so that
// Verify can be exercised without widening the production API.

// CorruptCell_TestOnly flips cell (i, j) without touching the mirror cell,
// the degrees, or the counter.
func CorruptCell_TestOnly(r *Relation, i, j int) {
	r.cells[i*r.n+j] = !r.cells[i*r.n+j]
}

// CorruptRemaining_TestOnly shifts the global counter by delta.
func CorruptRemaining_TestOnly(r *Relation, delta int) {
	r.remaining += delta
}
