package keyboard

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/guesspath/pattern"
)

// SequenceFinder detects three families of keyboard structure in a
// password: diagonal runs, repeated characters, and horizontal runs,
// where 3-4 character horizontal runs are priced as a different pattern
// than 5-plus runs, since 5 or more is difficult with one hand.
//
// A SequenceFinder is bound to one Layout at construction and holds no
// per-call mutable state, so a single instance may analyze many passwords
// concurrently (each with its own pattern.Results).
type SequenceFinder struct {
	layout   Layout
	keys     map[rune]*Key
	keyCount int
	diag     int
	horiz3n4 int
	horiz5up int
}

// compile-time contract check
var _ pattern.Finder = (*SequenceFinder)(nil)

// NewSequenceFinder binds a finder to one keyboard layout, caching the
// layout's aggregate counts. Returns ErrNilLayout for a nil layout.
func NewSequenceFinder(layout Layout) (*SequenceFinder, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}

	h34 := layout.HorizontalComboSize(3) + layout.HorizontalComboSize(4)

	return &SequenceFinder{
		layout:   layout,
		keys:     layout.GenerateKeyboard(),
		keyCount: layout.CharacterKeysCount(),
		diag:     layout.DiagonalComboTotal(),
		horiz3n4: h34,
		horiz5up: layout.HorizontalComboTotal() - h34,
	}, nil
}

// Analyze scans the password left to right once, O(length), and records a
// candidate match for every contiguous sub-window of length ≥ 3 of every
// keyboard run it finds. Overlapping windows are intentional: the composer
// later picks the cheapest covering.
//
// Characters without a key on this layout break any in-progress run.
func (f *SequenceFinder) Analyze(res *pattern.Results) error {
	password := []rune(res.CharSequence())
	if len(password) == 0 {
		return nil
	}

	previous := f.keys[password[0]]
	haveDir := false
	var currentDirection Direction
	startOfSequence := 0

	// isUpper marks characters produced with the shift modifier held;
	// more than an upper-case letter: '%' is the upper face of '5'.
	isUpper := make([]bool, len(password))
	isUpper[0] = previous != nil && previous.Upper == password[0]

	for i := 1; i < len(password); i++ {
		c := password[i]
		current := f.keys[c]
		if current == nil {
			// An off-layout character breaks any in-progress run.
			previous = nil
			haveDir = false

			continue
		}
		switch c {
		case current.Upper:
			isUpper[i] = true
		case current.Lower:
			isUpper[i] = false
		default:
			return fmt.Errorf("%w: %q registered as %q/%q",
				ErrFaceMismatch, c, current.Lower, current.Upper)
		}
		if previous == nil {
			previous = current

			continue
		}

		if haveDir {
			if !previous.Matches(currentDirection, c) {
				haveDir = false
			} else if i-startOfSequence >= 2 {
				// The run continues and is big enough: emit every window
				// of length ≥ 3 ending at i.
				for start := startOfSequence; start <= i-2; start++ {
					if err := f.report(res, password, start, i-start+1, currentDirection, isUpper); err != nil {
						return err
					}
				}
			}
		}

		if !haveDir {
			// No open direction? Check if the previous and current
			// characters establish a new run.
			if d, ok := previous.SequenceStart(c); ok {
				currentDirection = d
				haveDir = true
				startOfSequence = i - 1
			}
		}
		previous = current
	}

	return nil
}

// report prices one window [start, start+length) of a run moving in dir
// and records it as a candidate match.
func (f *SequenceFinder) report(res *pattern.Results, password []rune, start, length int, dir Direction, isUpper []bool) error {
	patternSize := int64(1)
	var kind pattern.Kind
	var desc strings.Builder
	switch dir {
	case Left, Right:
		if length > 4 {
			patternSize *= int64(f.horiz5up)
		} else {
			patternSize *= int64(f.horiz3n4)
		}
		fmt.Fprintf(&desc, "%d Keyboard Horizontal Characters", length)
		kind = pattern.Horizontal
	case UpperLeft, UpperRight, LowerLeft, LowerRight:
		patternSize *= int64(f.diag)
		fmt.Fprintf(&desc, "%d Keyboard Diagonal Characters (%s)", length, dir)
		kind = pattern.Diagonal
	case Self:
		// How many passwords fit this pattern? keyCount times the possible
		// counts of repeats, minus one- and two-character repeats because
		// those aren't useful.
		patternSize *= int64(f.keyCount) * int64(len(password)-2)
		fmt.Fprintf(&desc, "%d Keyboard Repeated Character(s)", length)
		kind = pattern.Repeated
	}

	// Price the shift key: a window mixing shifted and unshifted characters
	// multiplies the space by the ways to place the minority.
	hasUpper, hasLower := false, false
	nUpper := 0
	for i := start; i < start+length; i++ {
		if isUpper[i] {
			hasUpper = true
			nUpper++
		} else {
			hasLower = true
		}
	}

	if hasUpper && hasLower {
		patternSize *= 2 * int64(upperCaseFactor(length, nUpper))
		fmt.Fprintf(&desc, " with %d Upper Case letter(s)", nUpper)
	} else if nUpper == length {
		desc.WriteString(", Upper Case")
	}

	return res.Record(pattern.Match{
		StartIndex:      start,
		Length:          length,
		MatchedText:     string(password[start : start+length]),
		SearchSpaceSize: big.NewInt(patternSize),
		Description:     desc.String(),
		Kind:            kind,
		Source:          f.layout.Name(),
	})
}

// upperCaseFactor counts the ways shift could have been placed over a
// window of the given length holding upperLetters shifted characters.
//
// Past half the length we assume all caps with selective lower case, so
// the minority count m is what must be guessed. The result is the falling
// factorial length·(length-1)·…·(length-m+1): a permutation count, not a
// binomial coefficient.
func upperCaseFactor(length, upperLetters int) int {
	charsToGuess := upperLetters
	if upperLetters > length/2 {
		charsToGuess = length - upperLetters
	}

	factor := 1
	for choices := length; choices > length-charsToGuess; choices-- {
		factor *= choices
	}

	return factor
}
