package keyboard_test

import (
	"fmt"

	"github.com/katalvlaran/guesspath/keyboard"
	"github.com/katalvlaran/guesspath/pattern"
)

// ExampleSequenceFinder demonstrates scanning a password that is one long
// keyboard row run. Every sub-window of length ≥ 3 is emitted as its own
// candidate; the composer downstream picks the cheapest covering.
func ExampleSequenceFinder() {
	finder, err := keyboard.NewSequenceFinder(keyboard.QWERTY())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res := pattern.NewResults("qwerty")
	if err = finder.Analyze(res); err != nil {
		fmt.Println("error:", err)

		return
	}

	matches := res.Matches()
	fmt.Printf("candidates=%d\n", len(matches))
	fmt.Printf("first=%q %s\n", matches[0].MatchedText, matches[0].Description)
	last := matches[len(matches)-1]
	fmt.Printf("last=%q %s\n", last.MatchedText, last.Description)
	// Output:
	// candidates=10
	// first="qwe" 3 Keyboard Horizontal Characters
	// last="rty" 3 Keyboard Horizontal Characters
}
