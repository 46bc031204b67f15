// Package analyzer is the front door of the guesspath engine: configure it
// once with a set of finders, then analyze as many passwords as you like.
//
// Pipeline per password:
//
//  1. A fresh pattern.Results accumulator is seeded with the password.
//  2. Every finder runs concurrently against it (errgroup fan-out); the
//     accumulator's Record is the only shared write point and is
//     mutex-guarded.
//  3. A join barrier waits for all finders; composition never reads a
//     half-filled accumulator.
//  4. costpath.BestPath selects the cheapest full covering.
//  5. collapse.Process re-prices repeats of identical earlier matches.
//
// Failure isolation:
//
//	A finder that returns an error (say, a dictionary finder hitting an
//	I/O problem) contributes nothing, but every other finder's matches
//	stand, and the random fallback guarantees the composition still
//	succeeds over any uncovered region. Analyze therefore always returns a
//	complete, valid Path; its error, when non-nil, wraps ErrFinderFailed
//	and merely reports that the estimate may be missing one finder's
//	evidence.
//
// Concurrency:
//
//	An Analyzer holds only immutable configuration, so concurrent Analyze
//	calls for different passwords need no external synchronization.
//
// Example wiring:
//
//	kb, _ := keyboard.NewSequenceFinder(keyboard.QWERTY())
//	a := analyzer.New(analyzer.WithFinders(kb))
//	path, err := a.Analyze("qwerty123")
package analyzer
