// SPDX-License-Identifier: MIT

// Package connectivity implements the "still needs separating" relation
// over a fixed set of points addressed by index in [0, n).
//
// What:
//
//   - Relation: a dense, symmetric boolean matrix with an empty diagonal,
//     plus a per-point degree (remaining connections of that point) and a
//     global counter of true cells.
//   - The relation is monotonic: it starts complete and edges are only
//     ever removed, never re-added, until Reset restores the complete state.
//
// Why:
//
//   - The greedy separator asks two questions over and over: "is any point
//     on the left of a line still connected to any point on its right?"
//     and "disconnect every such pair". Both are bulk operations over two
//     index sets; AnyBetween and DisconnectBetween answer them with one
//     bounds check per call instead of one per cell.
//
// Invariants (checked by Verify):
//
//   - connected(i,i) == false for every i.
//   - connected(i,j) == connected(j,i).
//   - Degree(i) equals the number of true cells in row i.
//   - Remaining() equals the number of true cells, i.e. the sum of degrees.
//   - Immediately after NewComplete or Reset, Remaining() == n·(n−1).
//
// Complexity:
//
//   - NewComplete, Reset, Verify:  Time O(n²), Memory O(n²)
//   - Connected, Disconnect:       Time O(1)
//   - AnyBetween, DisconnectBetween: Time O(|left|·|right|)
//
// Errors:
//
//   - ErrNegativeSize  n < 0 passed to NewComplete
//   - ErrOutOfRange    an index outside [0, n)
//   - ErrIntegrity     Verify found a broken invariant
//
// A Relation is not safe for concurrent use. Give every independent run
// its own Relation.
package connectivity
