// Package pattern_test verifies Match recording invariants and the
// thread-safety of the Results accumulator under concurrent finders.
package pattern_test

import (
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/katalvlaran/guesspath/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk builds a minimal valid match for the tests below.
func mk(start, length int, text string, size int64) pattern.Match {
	return pattern.Match{
		StartIndex:      start,
		Length:          length,
		MatchedText:     text,
		SearchSpaceSize: big.NewInt(size),
		Description:     "test match",
		Kind:            pattern.Kind("WORD"),
		Source:          "test",
	}
}

// TestRecord_Valid ensures a well-formed match is accepted and visible.
func TestRecord_Valid(t *testing.T) {
	r := pattern.NewResults("password")
	require.NoError(t, r.Record(mk(0, 4, "pass", 1000)))

	got := r.Matches()
	require.Len(t, got, 1)
	assert.Equal(t, "pass", got[0].MatchedText)
	assert.Equal(t, 4, got[0].EndIndex())
}

// TestRecord_BadLength ensures Length < 1 is rejected with ErrBadLength.
func TestRecord_BadLength(t *testing.T) {
	r := pattern.NewResults("password")
	err := r.Record(mk(0, 0, "", 10))
	assert.ErrorIs(t, err, pattern.ErrBadLength)
}

// TestRecord_OutOfRange ensures intervals outside the password are rejected.
func TestRecord_OutOfRange(t *testing.T) {
	r := pattern.NewResults("abc")

	// End beyond the password.
	assert.ErrorIs(t, r.Record(mk(1, 3, "bc?", 10)), pattern.ErrOutOfRange)

	// Negative start.
	assert.ErrorIs(t, r.Record(mk(-1, 2, "?a", 10)), pattern.ErrOutOfRange)
}

// TestRecord_BadSearchSpace ensures nil and non-positive sizes are rejected.
func TestRecord_BadSearchSpace(t *testing.T) {
	r := pattern.NewResults("abc")

	m := mk(0, 3, "abc", 1)
	m.SearchSpaceSize = nil
	assert.ErrorIs(t, r.Record(m), pattern.ErrNilSearchSpace)

	assert.ErrorIs(t, r.Record(mk(0, 3, "abc", 0)), pattern.ErrBadSearchSpace)
	assert.ErrorIs(t, r.Record(mk(0, 3, "abc", -5)), pattern.ErrBadSearchSpace)
}

// TestRuneIndexing ensures offsets count runes, not bytes, so a multibyte
// password accepts a match that byte-indexing would reject.
func TestRuneIndexing(t *testing.T) {
	r := pattern.NewResults("héllo") // 5 runes, 6 bytes
	require.Equal(t, 5, r.Len())
	require.Equal(t, 'é', r.CharAt(1))

	// Covers the full 5-rune password; valid only under rune indexing.
	require.NoError(t, r.Record(mk(0, 5, "héllo", 95)))
}

// TestMatches_Snapshot ensures the returned slice is a copy: appending to it
// does not disturb the accumulator's own state.
func TestMatches_Snapshot(t *testing.T) {
	r := pattern.NewResults("abcdef")
	require.NoError(t, r.Record(mk(0, 3, "abc", 10)))

	snap := r.Matches()
	_ = append(snap, mk(3, 3, "def", 10))

	assert.Len(t, r.Matches(), 1, "accumulator must be unaffected by caller appends")
}

// TestRecord_Concurrent launches many goroutines recording into one
// accumulator and expects every match to land exactly once.
func TestRecord_Concurrent(t *testing.T) {
	password := "abcdefghij"
	r := pattern.NewResults(password)

	const writers = 100
	var wg sync.WaitGroup
	wg.Add(writers)

	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			start := id % (len(password) - 2)
			m := mk(start, 3, password[start:start+3], int64(id+1))
			m.Description = fmt.Sprintf("writer %d", id)
			assert.NoError(t, r.Record(m))
		}(i)
	}
	wg.Wait()

	require.Len(t, r.Matches(), writers)
}
