// Package costpath defines the Path type, configuration options, and
// sentinel errors for the minimum-cost covering composer.
//
// Errors:
//
//	ErrNilResults     - BestPath received a nil accumulator.
//	ErrNoCover        - no covering path exists; defensive only, the random
//	                    fallback guarantees one by construction.
//	ErrBrokenTiling   - a path's intervals do not tile the password exactly.
//	ErrBadUniverse    - WithRandomUniverse was given a size below 1 (panic).
package costpath

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/guesspath/pattern"
)

// DefaultRandomUniverse is the assumed character universe for the random
// fallback: the 95 printable ASCII characters.
const DefaultRandomUniverse = 95

// Sentinel errors for cost-path composition.
var (
	// ErrNilResults indicates that BestPath received a nil *pattern.Results.
	ErrNilResults = errors.New("costpath: results accumulator is nil")

	// ErrNoCover indicates that no path from position 0 to the password end
	// was found. The synthetic random edges make this impossible; seeing it
	// means an engine invariant was violated.
	ErrNoCover = errors.New("costpath: no covering path exists")

	// ErrBrokenTiling indicates that a path's intervals overlap, gap, or
	// fall outside the password.
	ErrBrokenTiling = errors.New("costpath: path does not tile the password")

	// ErrBadUniverse indicates that a random universe size below 1 was
	// configured.
	ErrBadUniverse = errors.New("costpath: random universe size must be ≥ 1")
)

// Options configures composition.
//
// RandomUniverse – size of the assumed character universe priced into each
// synthetic length-1 random fallback match. Must be ≥ 1. Default is
// DefaultRandomUniverse.
type Options struct {
	RandomUniverse int64
}

// Option is a functional option for configuring BestPath.
type Option func(*Options)

// WithRandomUniverse sets the character universe size used by the random
// fallback. Panics with ErrBadUniverse for sizes below 1.
func WithRandomUniverse(size int64) Option {
	return func(o *Options) {
		if size < 1 {
			panic(ErrBadUniverse.Error())
		}
		o.RandomUniverse = size
	}
}

// DefaultOptions returns the composer defaults:
// RandomUniverse = DefaultRandomUniverse.
func DefaultOptions() Options {
	return Options{RandomUniverse: DefaultRandomUniverse}
}

// Path is an ordered sequence of matches that together tile the whole
// password: each element starts where the previous one ended, with no gap
// and no overlap. Its total cost is the product of all element sizes.
//
// A Path value is immutable once built.
type Path struct {
	password string
	patterns []pattern.Match
}

// NewPath builds a Path over the given password. The caller is responsible
// for the tiling invariant; Validate checks it.
func NewPath(password string, patterns []pattern.Match) Path {
	return Path{password: password, patterns: patterns}
}

// Password returns the password text this path covers.
func (p Path) Password() string { return p.password }

// Len returns the number of matches on the path.
func (p Path) Len() int { return len(p.patterns) }

// Patterns returns the path elements in ascending position order.
// The returned slice is the caller's to keep.
func (p Path) Patterns() []pattern.Match {
	out := make([]pattern.Match, len(p.patterns))
	copy(out, p.patterns)

	return out
}

// Cost returns the total search-space size of the path: the product of
// every element's size, accumulated exactly in math/big. An empty path
// costs 1 (the empty product).
func (p Path) Cost() *big.Int {
	total := big.NewInt(1)
	for i := range p.patterns {
		total.Mul(total, p.patterns[i].SearchSpaceSize)
	}

	return total
}

// Validate checks the tiling invariant: the elements' intervals partition
// [0, len(password)) exactly, sorted ascending, no gap, no overlap.
// Returns ErrBrokenTiling (with context) on violation.
func (p Path) Validate() error {
	pos := 0
	for i := range p.patterns {
		m := p.patterns[i]
		if m.StartIndex != pos {
			return fmtBrokenTiling(i, pos, m)
		}
		pos += m.Length
	}
	if pos != len([]rune(p.password)) {
		return fmtBrokenTilingEnd(pos, len([]rune(p.password)))
	}

	return nil
}
