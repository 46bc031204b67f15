// Package pattern provides the shared vocabulary of the guesspath engine:
// the immutable Match value, its Kind classification, the Finder contract,
// and the Results accumulator that collects candidates from every finder.
//
// Overview:
//
//   - A Match explains one substring of the password structurally and prices
//     it with a search-space size: the count of strings an attacker must try
//     to reproduce exactly that match.
//   - Results owns the password text for one analysis and a growing bag of
//     candidate matches. Candidates may overlap, duplicate each other, or
//     leave positions uncovered; disagreement between independently
//     authored finders is expected and legal.
//   - Finder is the one-method contract (Analyze) that keyboard, dictionary
//     and any external finders satisfy.
//
// Concurrency:
//
//   - Results.Record is safe for concurrent writers; multiple finders may
//     run in parallel against the same accumulator.
//   - Reading (Matches, CharSequence, …) must not begin until every finder
//     for that password has returned; the analyzer package provides that
//     join barrier.
//
// Error handling (sentinel errors):
//
//   - ErrNilSearchSpace, ErrBadSearchSpace: a match priced at nil or < 1.
//   - ErrBadLength: a match shorter than one rune.
//   - ErrOutOfRange: a match interval outside the password.
//
// All indexing is rune-based: StartIndex and Length count runes, not bytes,
// so multibyte passwords decompose correctly.
package pattern
