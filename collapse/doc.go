// Package collapse is the duplicate-collapsing post-pass of the guesspath
// engine.
//
// Overview:
//
//   - It consumes an already-composed costpath.Path, not raw candidates,
//     which is why it is a standalone step rather than a pattern.Finder.
//   - A later path element that repeats an earlier element exactly (same
//     kind, same matched text, random characters excluded) is replaced by
//     a Duplicate-kind match of search-space size 1: the attacker already
//     paid for that guess once.
//   - Output order, spans, and the tiling invariant are untouched; only
//     costs change.
//
// Properties:
//
//   - Deterministic: the nearest preceding duplicate is the one referenced.
//   - Idempotent: running the pass on its own output returns an equal path.
//
// The pass is a synchronous, single-threaded walk over a finalized path;
// it performs no I/O and returns no errors.
package collapse
