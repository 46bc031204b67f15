// Package guesspath estimates how hard a password is to guess by decomposing
// it into recognized structural patterns and pricing the cheapest full
// decomposition an attacker could exploit.
//
// 🚀 What is guesspath?
//
//	A small, embeddable, thread-aware estimation engine that brings together:
//		• Pattern primitives: immutable matches, kinds, a concurrent accumulator
//		• Keyboard geometry: adjacency, shift faces, combinatorial base counts
//		• Sequence detection: horizontal, diagonal and repeated-key runs
//		• Cost composition: minimum-cost covering via DAG shortest path
//		• Duplicate collapsing: repeats of an earlier match cost nothing extra
//
// ✨ Why choose guesspath?
//
//   - Worst-case-for-the-defender – among all full coverings of the password,
//     the cheapest one is reported
//   - Pluggable finders – any type with Analyze(*pattern.Results) error joins
//     the analysis, dictionary and wordlist finders included
//   - Exact arithmetic – total search-space sizes accumulate in math/big,
//     no floating-range overflow
//
// Under the hood, everything is organized in five subpackages:
//
//	pattern/  — Match value, Kind tags, Finder contract, Results accumulator
//	keyboard/ — Layout model, Key adjacency, QWERTY, the sequence finder
//	costpath/ — Path type and the minimum-cost composer (forward DP on a DAG)
//	collapse/ — post-pass zeroing the marginal cost of repeated matches
//	analyzer/ — configured-once driver: concurrent finders → compose → collapse
//
// Quick ASCII example:
//
//	    p a s s w o r d 1 2 3
//	    └──dictionary──┘ └┬┘
//	                 keyboard run
//
//	two structural matches tile the password; leftover positions fall back
//	to single random characters.
//
//	go get github.com/katalvlaran/guesspath
package guesspath
