// Package collapse_test verifies duplicate re-pricing, the random-kind
// exclusion, ordering preservation, and idempotence of the collapser.
package collapse_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/guesspath/collapse"
	"github.com/katalvlaran/guesspath/costpath"
	"github.com/katalvlaran/guesspath/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// el builds one path element.
func el(start int, text string, kind pattern.Kind, size int64) pattern.Match {
	return pattern.Match{
		StartIndex:      start,
		Length:          len([]rune(text)),
		MatchedText:     text,
		SearchSpaceSize: big.NewInt(size),
		Description:     "test element",
		Kind:            kind,
		Source:          "test",
	}
}

// TestProcess_DuplicateScenario pins the canonical case: cat · x · cat
// collapses its second dictionary hit to size 1, a 1000× cost reduction.
func TestProcess_DuplicateScenario(t *testing.T) {
	res := pattern.NewResults("catxcat")
	path := costpath.NewPath(res.CharSequence(), []pattern.Match{
		el(0, "cat", pattern.Kind("DICTIONARY"), 1000),
		el(3, "x", pattern.Random, 95),
		el(4, "cat", pattern.Kind("DICTIONARY"), 1000),
	})
	require.NoError(t, path.Validate())
	require.Zero(t, path.Cost().Cmp(big.NewInt(1000*95*1000)))

	got := collapse.Process(path, res)
	require.NoError(t, got.Validate(), "collapsing must preserve the tiling")

	elems := got.Patterns()
	require.Len(t, elems, 3)

	assert.Equal(t, pattern.Kind("DICTIONARY"), elems[0].Kind, "first occurrence pays full price")
	assert.Zero(t, elems[0].SearchSpaceSize.Cmp(big.NewInt(1000)))

	assert.Equal(t, pattern.Random, elems[1].Kind, "unrelated elements pass through")

	dup := elems[2]
	assert.Equal(t, pattern.Duplicate, dup.Kind)
	assert.Equal(t, "cat", dup.MatchedText)
	assert.Equal(t, 4, dup.StartIndex)
	assert.Zero(t, dup.SearchSpaceSize.Cmp(big.NewInt(1)))
	assert.Contains(t, dup.Description, "DICTIONARY")

	assert.Zero(t, got.Cost().Cmp(big.NewInt(1000*95)), "total drops by the duplicated factor")
}

// TestProcess_RandomNeverCollapses ensures two equal random characters are
// not treated as a retryable structure.
func TestProcess_RandomNeverCollapses(t *testing.T) {
	res := pattern.NewResults("xx")
	path := costpath.NewPath(res.CharSequence(), []pattern.Match{
		el(0, "x", pattern.Random, 95),
		el(1, "x", pattern.Random, 95),
	})

	got := collapse.Process(path, res)
	for _, m := range got.Patterns() {
		assert.Equal(t, pattern.Random, m.Kind)
	}
	assert.Zero(t, got.Cost().Cmp(big.NewInt(95*95)))
}

// TestProcess_KindMustMatch ensures equal text under different kinds is
// not a duplicate.
func TestProcess_KindMustMatch(t *testing.T) {
	res := pattern.NewResults("abcabc")
	path := costpath.NewPath(res.CharSequence(), []pattern.Match{
		el(0, "abc", pattern.Horizontal, 148),
		el(3, "abc", pattern.Kind("WORD"), 5000),
	})

	got := collapse.Process(path, res)
	for _, m := range got.Patterns() {
		assert.NotEqual(t, pattern.Duplicate, m.Kind)
	}
}

// TestProcess_EveryRepeatCollapses ensures all later repeats collapse, not
// just the first one, each referencing an earlier occurrence.
func TestProcess_EveryRepeatCollapses(t *testing.T) {
	res := pattern.NewResults("ababab")
	path := costpath.NewPath(res.CharSequence(), []pattern.Match{
		el(0, "ab", pattern.Kind("WORD"), 600),
		el(2, "ab", pattern.Kind("WORD"), 600),
		el(4, "ab", pattern.Kind("WORD"), 600),
	})

	got := collapse.Process(path, res)
	elems := got.Patterns()
	assert.Equal(t, pattern.Kind("WORD"), elems[0].Kind)
	assert.Equal(t, pattern.Duplicate, elems[1].Kind)
	assert.Equal(t, pattern.Duplicate, elems[2].Kind)
	assert.Zero(t, got.Cost().Cmp(big.NewInt(600)))
}

// TestProcess_Idempotent ensures processing the collapser's own output
// yields an equal path.
func TestProcess_Idempotent(t *testing.T) {
	res := pattern.NewResults("catxcat")
	path := costpath.NewPath(res.CharSequence(), []pattern.Match{
		el(0, "cat", pattern.Kind("DICTIONARY"), 1000),
		el(3, "x", pattern.Random, 95),
		el(4, "cat", pattern.Kind("DICTIONARY"), 1000),
	})

	once := collapse.Process(path, res)
	twice := collapse.Process(once, res)

	a, b := once.Patterns(), twice.Patterns()
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Kind, b[i].Kind, "element %d kind", i)
		assert.Equal(t, a[i].MatchedText, b[i].MatchedText, "element %d text", i)
		assert.Equal(t, a[i].Description, b[i].Description, "element %d description", i)
		assert.Zero(t, a[i].SearchSpaceSize.Cmp(b[i].SearchSpaceSize), "element %d size", i)
	}
	assert.Zero(t, once.Cost().Cmp(twice.Cost()))
}

// TestProcess_EmptyPath ensures the collapser is a no-op on an empty path.
func TestProcess_EmptyPath(t *testing.T) {
	res := pattern.NewResults("")
	got := collapse.Process(costpath.NewPath("", nil), res)
	assert.Zero(t, got.Len())
	assert.NoError(t, got.Validate())
}
