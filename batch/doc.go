// SPDX-License-Identifier: MIT

// Package batch solves numbered instance files one after another (or with
// bounded parallelism) and writes a solution file for each.
//
// Every instance gets a brand-new separator.Solver, so no scratch state is
// shared between instances, whether they run sequentially or in parallel.
//
// Error policy:
//
//   - PolicyHalt (default): the first instance that cannot be read or
//     solved stops the batch; Run returns an *InstanceError.
//   - PolicySkip: failures are recorded in the Summary and the batch moves
//     on. Missing instance files are counted, not treated as failures.
//   - An integrity violation (separator.ErrIntegrity) halts under either
//     policy: it means the model is broken, not the input.
//
// An instance whose candidate pool ran out before every pair was separated
// still gets its (partial) solution written; it is logged at Warn and
// reported with Complete == false.
//
// Watch keeps solving: it reacts to instance files created or rewritten in
// the input directory until its context is cancelled.
package batch
