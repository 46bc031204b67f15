// Package pattern defines the core value types and contracts shared by every
// structural finder in guesspath.
//
// This file declares Kind, Match, the Finder contract, and the sentinel
// errors used by the Results accumulator.
//
// Errors:
//
//	ErrNilSearchSpace  - match carries a nil search-space size.
//	ErrBadSearchSpace  - match carries a search-space size below 1.
//	ErrBadLength       - match length is below 1.
//	ErrOutOfRange      - match interval does not fit inside the password.
package pattern

import (
	"errors"
	"math/big"
)

// Sentinel errors for recording candidate matches.
var (
	// ErrNilSearchSpace indicates that a Match was recorded with a nil size.
	ErrNilSearchSpace = errors.New("pattern: search-space size is nil")

	// ErrBadSearchSpace indicates that a Match was recorded with size < 1.
	ErrBadSearchSpace = errors.New("pattern: search-space size must be ≥ 1")

	// ErrBadLength indicates that a Match was recorded with length < 1.
	ErrBadLength = errors.New("pattern: match length must be ≥ 1")

	// ErrOutOfRange indicates that startIndex+length exceeds the password,
	// or that startIndex is negative.
	ErrOutOfRange = errors.New("pattern: match interval out of password range")
)

// Kind classifies what structural shape a Match explains.
//
// The engine ships the five kinds below; external finders (dictionary,
// date, …) are free to introduce their own Kind values; the composer and
// collapser treat Kind as an opaque tag, special-casing only Random and
// Duplicate.
type Kind string

const (
	// Horizontal marks a left/right keyboard-adjacency run.
	Horizontal Kind = "HORIZONTAL"

	// Diagonal marks a diagonal keyboard-adjacency run.
	Diagonal Kind = "DIAGONAL"

	// Repeated marks a same-key repetition run.
	Repeated Kind = "REPEATED"

	// Random marks a single character priced at the full character universe.
	// Synthesized by the composer as the fallback covering.
	Random Kind = "RANDOM"

	// Duplicate marks a repeat of an identical earlier match, re-priced to 1
	// by the collapser.
	Duplicate Kind = "DUPLICATE"
)

// Match is one discovered structural explanation for a substring of the
// password, together with the number of strings an attacker must try to
// reproduce it (its cost).
//
// A Match is an immutable value: construct it, record it, never mutate it.
// SearchSpaceSize is shared by reference and must be treated as read-only.
type Match struct {
	// StartIndex is the 0-based rune offset of the match in the password.
	StartIndex int

	// Length is the rune count of the match; always ≥ 1.
	Length int

	// MatchedText is the exact matched substring, kept for audit and for
	// duplicate comparison.
	MatchedText string

	// SearchSpaceSize counts the strings an attacker must try to cover
	// exactly this match. Always ≥ 1.
	SearchSpaceSize *big.Int

	// Description explains the match for humans; never used in computation.
	Description string

	// Kind classifies the structural shape (Horizontal, Random, …).
	Kind Kind

	// Source names the finder or layout that produced the match,
	// e.g. the keyboard layout name.
	Source string
}

// EndIndex returns the exclusive end offset, StartIndex+Length.
func (m Match) EndIndex() int { return m.StartIndex + m.Length }

// Finder is the contract every structural finder satisfies, dictionary and
// other external finders included: inspect the accumulator's password text
// and Record zero or more candidate matches. A Finder must never mutate
// matches recorded by another finder.
//
// A Finder holds no per-call mutable state, so one configured instance may
// analyze many passwords concurrently (each with its own Results).
type Finder interface {
	Analyze(res *Results) error
}
