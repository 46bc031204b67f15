// Package costpath selects the cheapest full explanation of a password
// from a bag of overlapping candidate matches.
//
// Overview:
//
//   - Finders disagree, overlap, and leave gaps; the composer resolves all
//     three at once. Positions 0..n form a DAG, candidate matches are its
//     edges weighted by the logarithm of their search-space size, and a
//     synthetic single-character random edge at every position guarantees
//     connectivity. A forward dynamic program finds the shortest 0→n path;
//     its edges, read back through predecessor pointers, are the Path.
//   - The reported total cost is the exact big.Int product of the chosen
//     sizes, not the exponential of the float distance, so magnitudes far
//     beyond float64 range stay precise.
//
// Guarantees (testable):
//
//   - Tiling: the returned Path partitions [0, n) exactly: no gap, no
//     overlap, ascending order.
//   - Optimality bound: total cost never exceeds the random-only cover,
//     because the random edges alone always form a feasible path.
//   - Totality: even a password no finder recognized composes, entirely
//     from random matches.
//   - Ties: equal-weight alternatives resolve toward fewer, larger
//     patterns, deterministically.
//
// Error handling (sentinel errors):
//
//   - ErrNilResults for a nil accumulator.
//   - ErrNoCover, defensive only: the fallback edges make it unreachable.
//   - ErrBrokenTiling from Path.Validate.
//   - ErrBadUniverse (via panic) from WithRandomUniverse below 1.
//
// Composition is a synchronous, single-threaded, CPU-bound pass: do not
// call BestPath until every finder writing the accumulator has returned.
package costpath
