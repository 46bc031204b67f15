// Package keyboard defines the static geometry types for physical keyboard
// layouts and the sentinel errors of the sequence finder.
//
// This file declares Direction, Key, the Layout contract, and error values.
//
// Errors:
//
//	ErrNilLayout     - a nil Layout was passed to NewSequenceFinder.
//	ErrFaceMismatch  - a character matched a Key but equals neither of its
//	                   shift faces; the layout table is corrupt.
package keyboard

import (
	"errors"
)

// Sentinel errors for keyboard sequence detection.
var (
	// ErrNilLayout indicates that NewSequenceFinder received a nil Layout.
	ErrNilLayout = errors.New("keyboard: layout is nil")

	// ErrFaceMismatch indicates that a character resolved to a Key whose
	// upper and lower faces both differ from it. This signals a corrupt
	// static layout table, not bad password input, and is not recoverable
	// at analysis time.
	ErrFaceMismatch = errors.New("keyboard: character matches neither key face")
)

// Direction identifies where a neighboring key sits relative to a Key,
// or Self for the key itself (repeated presses).
type Direction int

const (
	// Left is the horizontally adjacent key to the left.
	Left Direction = iota
	// Right is the horizontally adjacent key to the right.
	Right
	// UpperLeft is the diagonally adjacent key up and to the left.
	UpperLeft
	// UpperRight is the diagonally adjacent key up and to the right.
	UpperRight
	// LowerLeft is the diagonally adjacent key down and to the left.
	LowerLeft
	// LowerRight is the diagonally adjacent key down and to the right.
	LowerRight
	// Self is the key itself; a Self run is a repeated character.
	Self

	// numAdjacent counts the real adjacency directions (Self excluded).
	numAdjacent = int(Self)
)

// sequenceDirections is the probe order used by Key.SequenceStart.
var sequenceDirections = [...]Direction{
	Self, Left, Right, UpperLeft, UpperRight, LowerLeft, LowerRight,
}

// String returns a human-readable direction name, used in match descriptions.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case UpperLeft:
		return "upper-left"
	case UpperRight:
		return "upper-right"
	case LowerLeft:
		return "lower-left"
	case LowerRight:
		return "lower-right"
	case Self:
		return "self"
	default:
		return "unknown"
	}
}

// Key is one physical key: its two shift faces and its adjacency links in
// the six movement directions. Keys are wired once at layout construction
// and never mutated afterwards, so they are safe for shared read access.
type Key struct {
	// Lower is the character the key produces without the shift modifier.
	Lower rune

	// Upper is the character the key produces with the shift modifier held.
	// "Upper" is more than an upper-case letter: '5' has upper face '%'.
	Upper rune

	neighbors [numAdjacent]*Key
}

// NewKey creates an unlinked key with the given shift faces.
func NewKey(lower, upper rune) *Key {
	return &Key{Lower: lower, Upper: upper}
}

// SetNeighbor links the key to n in direction d. Linking Self is a no-op;
// every key is trivially its own Self neighbor.
func (k *Key) SetNeighbor(d Direction, n *Key) {
	if d == Self {
		return
	}
	k.neighbors[d] = n
}

// Neighbor returns the adjacent key in direction d, the key itself for
// Self, or nil when no key sits there.
func (k *Key) Neighbor(d Direction) *Key {
	if d == Self {
		return k
	}

	return k.neighbors[d]
}

// Matches reports whether next is produced by the key adjacent in
// direction d (either face counts; shift state is priced separately).
func (k *Key) Matches(d Direction, next rune) bool {
	n := k.Neighbor(d)
	if n == nil {
		return false
	}

	return n.Lower == next || n.Upper == next
}

// SequenceStart returns the direction in which next is adjacent to this
// key, opening a new candidate run, or ok=false when next is not adjacent
// in any direction.
func (k *Key) SequenceStart(next rune) (Direction, bool) {
	for _, d := range sequenceDirections {
		if k.Matches(d, next) {
			return d, true
		}
	}

	return 0, false
}

// Layout is the static geometry of one physical keyboard: the character→Key
// mapping plus the aggregate combinatorial counts used as "alphabet sizes"
// when a detected sequence of a given length is converted into a
// search-space size.
//
// A Layout is constructed once per physical layout and reused, read-only,
// across many password analyses; it holds no per-password state.
type Layout interface {
	// GenerateKeyboard returns the character→Key mapping. Both faces of a
	// key map to the same *Key.
	GenerateKeyboard() map[rune]*Key

	// CharacterKeysCount returns the number of distinct character keys.
	CharacterKeysCount() int

	// DiagonalComboTotal returns the count of distinct diagonal sequences.
	DiagonalComboTotal() int

	// HorizontalComboSize returns the count of distinct horizontal
	// sequences of exactly the given length.
	HorizontalComboSize(length int) int

	// HorizontalComboTotal returns the count of distinct horizontal
	// sequences of every qualifying length.
	HorizontalComboTotal() int

	// Name identifies the layout, e.g. "qwerty"; it is stamped on every
	// match the sequence finder emits as the source classification.
	Name() string
}
