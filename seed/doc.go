// Package seed builds an initial multi-member district plan from a
// single-member one by randomly merging adjacent districts into groups of
// prescribed sizes.
//
// What
//
//   - DistrictAdjacency derives a district-level graph from a unit-level
//     partition: one node per district, an edge wherever a cut edge joins
//     two districts, each node carrying its population and the list of
//     original districts ("children") it represents.
//   - Contract consumes a multiset of group sizes by repeated randomized
//     greedy merges. Each step draws a size k and a free root, grows the
//     root by absorbing random free neighbors while the child count stays
//     ≤ k, and commits the group only if it reaches exactly k.
//   - Remap turns a fully contracted graph back into a unit assignment.
//   - Seed drives up to MaxAttempts independent contractions and, on the
//     first success, reports the seeded partition and each group's seat
//     count round(population / seatTarget).
//   - Batch runs independent Seed calls in parallel, one seeded source each.
//
// Invariants
//
//   - sum(sizes) equals the number of original districts; violations fail
//     with ErrConservationViolation before any merge.
//   - Every original district ends up in exactly one group, and every group
//     is connected in the unit graph because merges only follow edges.
//   - Committed groups are frozen: later steps never absorb them, so the
//     final group sizes are exactly the supplied multiset.
//   - Every attempt works on a private copy of the graph and the multiset;
//     failed attempts leave no trace.
//
// Determinism
//
//	All draws come from the *rand.Rand supplied by WithRand or WithSeed
//	(DefaultSeed otherwise), and nodes and neighbors are always enumerated
//	in ascending id order. Equal inputs and seed give equal output.
//
// Complexity (n = districts, m = district adjacencies)
//
//   - One contraction step: O(n + m) for the working copy plus O(k·d) growth.
//   - Contract: O(MaxTries · (n + m)) worst case.
//   - Seed: O(MaxAttempts) contractions.
//
// Errors
//
//   - ErrConservationViolation  sizes do not sum to the district count.
//   - ErrBadSizes               a size is not positive.
//   - ErrContractionExhausted   one attempt ran out of MaxTries.
//   - ErrSeedingExhausted       every top-level attempt failed.
//   - ErrBadSeatTarget          seat target is not a positive finite number.
//   - ErrNilSource, ErrNilGraph nil inputs.
//   - ErrInvalidContraction     graph does not cover the partition's districts.
//   - ErrUnknownNode, ErrDuplicateNode, ErrSelfLoop  district graph misuse.
package seed
