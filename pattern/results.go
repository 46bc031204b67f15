package pattern

import (
	"fmt"
	"sync"
)

// Results accumulates every candidate Match discovered for one password.
//
// Lifecycle: created once per password, written to by every finder run
// against it, then read-only once composition begins. Record is safe for
// concurrent writers, so independent finders may analyze the same password
// in parallel; the order of recorded matches is never semantically
// significant to the composer.
//
// Candidates may overlap and need not cover every position; the composer
// resolves both.
type Results struct {
	password []rune // immutable after construction

	mu      sync.Mutex
	matches []Match // append-only under mu
}

// NewResults creates an accumulator for one password analysis.
func NewResults(password string) *Results {
	return &Results{password: []rune(password)}
}

// CharSequence returns the password text under analysis.
func (r *Results) CharSequence() string { return string(r.password) }

// CharAt returns the rune at offset i of the password.
func (r *Results) CharAt(i int) rune { return r.password[i] }

// Len returns the password length in runes.
func (r *Results) Len() int { return len(r.password) }

// Record appends one candidate match.
//
// The match invariants are enforced here, at the single choke point all
// finders share:
//
//	0 ≤ StartIndex, Length ≥ 1, StartIndex+Length ≤ Len(), SearchSpaceSize ≥ 1.
//
// Returns a sentinel error (wrapped with match context) when violated.
func (r *Results) Record(m Match) error {
	if m.Length < 1 {
		return fmt.Errorf("%w: length=%d", ErrBadLength, m.Length)
	}
	if m.StartIndex < 0 || m.StartIndex+m.Length > len(r.password) {
		return fmt.Errorf("%w: start=%d length=%d password=%d runes",
			ErrOutOfRange, m.StartIndex, m.Length, len(r.password))
	}
	if m.SearchSpaceSize == nil {
		return fmt.Errorf("%w: %q at %d", ErrNilSearchSpace, m.MatchedText, m.StartIndex)
	}
	if m.SearchSpaceSize.Sign() < 1 {
		return fmt.Errorf("%w: %q at %d has size %s",
			ErrBadSearchSpace, m.MatchedText, m.StartIndex, m.SearchSpaceSize)
	}

	r.mu.Lock()
	r.matches = append(r.matches, m)
	r.mu.Unlock()

	return nil
}

// Matches returns a snapshot of all recorded candidates.
// The returned slice is the caller's to keep; recorded matches themselves
// are immutable values.
func (r *Results) Matches() []Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Match, len(r.matches))
	copy(out, r.matches)

	return out
}
