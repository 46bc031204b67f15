// Package costpath implements the minimum-cost covering composer: given an
// accumulator full of overlapping candidate matches, it selects the single
// ordered, gap-free, overlap-free cover with the smallest total search
// space.
//
// Model: password positions 0..n are nodes of a DAG. Every candidate match
// is an edge start → start+length weighted by log(searchSpaceSize); logs
// turn the multiplicative combination of independent pattern costs into an
// additive shortest-path problem. A synthetic length-1 random edge at every
// position keeps the graph connected end to end no matter what the finders
// found, so a cover always exists.
//
// The DAG is ordered by position, so a single forward dynamic program
// suffices:
//
//	best[0] = 0
//	best[j] = min over edges (i→j) of best[i] + weight(edge)
//
// keeping the edge that achieved each minimum. When two edges into the
// same node tie exactly on weight, the larger length wins: fewer, larger
// structural patterns is a stable, reproducible choice. The path is read
// back through predecessor pointers and the exact total cost is rebuilt as
// a big.Int product of the chosen edges' sizes.
//
// Complexity:
//
//   - Time:  O(n + E) for n password positions and E candidate matches.
//   - Space: O(n + E) for the edge arena and the DP arrays.
package costpath

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/guesspath/pattern"
)

// edge is one candidate covering step in the position DAG. Edges live in a
// flat arena and are addressed by index; the DAG itself is a bucket of
// edge indices per start position.
type edge struct {
	match  pattern.Match
	weight float64 // log of the match's search-space size
}

// BestPath computes the minimum-total-cost Path covering the accumulated
// password exactly. The accumulator must be finalized: every finder for
// this password must have returned before composition starts.
//
// Returns ErrNilResults for a nil accumulator. ErrNoCover is defensive
// only; the random fallback guarantees a cover by construction.
func BestPath(res *pattern.Results, opts ...Option) (Path, error) {
	if res == nil {
		return Path{}, ErrNilResults
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := res.Len()
	if n == 0 {
		// Empty password: the empty path tiles it, cost 1.
		return NewPath("", nil), nil
	}

	// 1) Build the edge arena: every recorded candidate, then one random
	//    fallback edge per position. The fallback keeps every node
	//    reachable and bounds the optimum by the random-only cover.
	candidates := res.Matches()
	arena := make([]edge, 0, len(candidates)+n)
	byStart := make([][]int32, n)
	for _, m := range candidates {
		byStart[m.StartIndex] = append(byStart[m.StartIndex], int32(len(arena)))
		arena = append(arena, edge{match: m, weight: logBig(m.SearchSpaceSize)})
	}

	universe := big.NewInt(cfg.RandomUniverse)
	randomWeight := logBig(universe)
	for i := 0; i < n; i++ {
		byStart[i] = append(byStart[i], int32(len(arena)))
		arena = append(arena, edge{
			match: pattern.Match{
				StartIndex:      i,
				Length:          1,
				MatchedText:     string(res.CharAt(i)),
				SearchSpaceSize: universe,
				Description:     "1 Random Character",
				Kind:            pattern.Random,
				Source:          "random",
			},
			weight: randomWeight,
		})
	}

	// 2) Forward DP over positions. prevEdge[j] is the arena index of the
	//    edge that achieved best[j]; -1 means unreached.
	best := make([]float64, n+1)
	prevEdge := make([]int32, n+1)
	for j := 1; j <= n; j++ {
		best[j] = math.Inf(1)
		prevEdge[j] = -1
	}

	for i := 0; i < n; i++ {
		if math.IsInf(best[i], 1) {
			continue // position not reachable yet
		}
		for _, ei := range byStart[i] {
			e := arena[ei]
			j := i + e.match.Length
			cand := best[i] + e.weight
			switch {
			case cand < best[j]:
				best[j] = cand
				prevEdge[j] = ei
			case cand == best[j] && prevEdge[j] >= 0 &&
				e.match.Length > arena[prevEdge[j]].match.Length:
				// Exact tie: prefer the larger structural step.
				prevEdge[j] = ei
			}
		}
	}

	if prevEdge[n] < 0 {
		return Path{}, fmt.Errorf("%w: password length %d", ErrNoCover, n)
	}

	// 3) Walk predecessor pointers back from n, then reverse into
	//    ascending order.
	var chosen []pattern.Match
	for j := n; j > 0; {
		e := arena[prevEdge[j]]
		chosen = append(chosen, e.match)
		j = e.match.StartIndex
	}
	for l, r := 0, len(chosen)-1; l < r; l, r = l+1, r-1 {
		chosen[l], chosen[r] = chosen[r], chosen[l]
	}

	return NewPath(res.CharSequence(), chosen), nil
}

// logBig returns the natural logarithm of a positive big.Int without
// overflowing float64 range: x is split into mantissa·2^exp with the
// mantissa normalized to [1, 2), so log(x) = log(mant) + exp·ln 2. Exact
// powers of two come out as exact multiples of math.Ln2, which keeps
// equal-product paths tying exactly in the DP.
func logBig(x *big.Int) float64 {
	f := new(big.Float).SetInt(x)
	mant := new(big.Float)
	exp := f.MantExp(mant) // mant ∈ [0.5, 1)

	m, _ := mant.Float64()

	return math.Log(m*2) + float64(exp-1)*math.Ln2
}

// fmtBrokenTiling wraps ErrBrokenTiling with the offending element.
func fmtBrokenTiling(i, wantStart int, m pattern.Match) error {
	return fmt.Errorf("%w: element %d starts at %d, want %d",
		ErrBrokenTiling, i, m.StartIndex, wantStart)
}

// fmtBrokenTilingEnd wraps ErrBrokenTiling when the path stops short of or
// beyond the password end.
func fmtBrokenTilingEnd(got, want int) error {
	return fmt.Errorf("%w: path covers %d of %d runes", ErrBrokenTiling, got, want)
}
