// Package keyboard models physical keyboard geometry and detects
// keyboard-adjacency structure in passwords.
//
// Overview:
//
//   - A Layout is the static geometry of one physical keyboard: each
//     character's Key (shift faces plus adjacency in six directions) and
//     the aggregate combinatorial counts that act as "alphabet sizes" when
//     a detected run is priced. Layouts are constructed once and shared,
//     read-only, across analyses.
//   - SequenceFinder scans a password in one left-to-right pass and emits a
//     pattern.Match for every sub-window of length ≥ 3 of every run it can
//     justify: horizontal (Left/Right), diagonal (the four corner
//     directions), or repeated (Self).
//
// Pricing per window of length L:
//
//   - Horizontal: the 3-and-4 bucket for L ∈ {3,4}, the 5-plus bucket for
//     L ≥ 5 (long one-hand runs are a rarer shape than short ones).
//   - Diagonal: the layout's diagonal combo total.
//   - Repeated: CharacterKeysCount × (passwordLength − 2); the extra factor
//     discounts trivial 1-2 character repeats.
//   - Shift: a window mixing shifted and unshifted characters multiplies
//     its size by 2 × upperCaseFactor(L, nShifted), the falling-factorial
//     placement count; an all-shifted window keeps its size and is only
//     annotated "Upper Case".
//
// Error handling:
//
//   - ErrNilLayout from NewSequenceFinder.
//   - ErrFaceMismatch from Analyze when a character resolves to a Key whose
//     faces both differ from it, i.e. a corrupt layout table, never bad input.
//
// The shipped QWERTY layout is assembled from row tables; its aggregate
// counts are derived from the wired geometry by directed run counting, so
// alternative row-defined layouts stay self-consistent. Any type
// implementing Layout plugs in the same way.
package keyboard
