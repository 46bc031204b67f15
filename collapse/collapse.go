// Package collapse cheapens a composed cost path by recognizing that once
// an attacker has guessed a specific structural match, identical repeats
// of it elsewhere in the same password cost nothing extra to retry.
//
// The pass scans the path from its last element toward the first; each
// element is compared against every earlier element of the original path,
// nearest first. The first earlier element sharing both kind and matched
// text (random characters excluded, since two coincidentally equal random
// characters are not a retryable structure) marks the later one a
// duplicate, and the later element is re-priced to a search space of 1
// under the Duplicate kind. Everything else passes through unchanged, and
// the output keeps ascending position order, so the tiling invariant is
// preserved: only costs change.
//
// Elements already of the Duplicate kind pass through untouched, which
// makes the pass idempotent: processing its own output again changes
// nothing.
package collapse

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/guesspath/costpath"
	"github.com/katalvlaran/guesspath/pattern"
)

// Process returns the path with every repeat of an identical earlier match
// re-priced to 1. res must be the accumulator the path was composed from;
// it supplies the password text for the rebuilt path.
func Process(path costpath.Path, res *pattern.Results) costpath.Path {
	in := path.Patterns()
	out := make([]pattern.Match, len(in))

	for i := len(in) - 1; i >= 0; i-- {
		p := in[i]
		out[i] = p
		if p.Kind == pattern.Duplicate {
			continue // already collapsed on an earlier pass
		}

		// Nearest preceding identical match wins; comparisons run against
		// the original path, never against already-rewritten output.
		for j := i - 1; j >= 0; j-- {
			q := in[j]
			if q.Kind == pattern.Random || q.Kind != p.Kind || q.MatchedText != p.MatchedText {
				continue
			}
			out[i] = pattern.Match{
				StartIndex:      p.StartIndex,
				Length:          p.Length,
				MatchedText:     p.MatchedText,
				SearchSpaceSize: big.NewInt(1),
				Description:     fmt.Sprintf("Duplication of an earlier pattern: %s", p.Kind),
				Kind:            pattern.Duplicate,
				Source:          p.Source,
			}

			break
		}
	}

	return costpath.NewPath(res.CharSequence(), out)
}
