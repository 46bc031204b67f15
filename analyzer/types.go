// Package analyzer defines configuration options and sentinel errors for
// the analysis driver.
//
// Errors:
//
//	ErrFinderFailed - at least one finder's Analyze call returned an error;
//	                  the analysis itself still produced a complete path.
package analyzer

import (
	"errors"

	"github.com/katalvlaran/guesspath/costpath"
	"github.com/katalvlaran/guesspath/pattern"
)

// ErrFinderFailed wraps the first error returned by a finder during the
// concurrent analysis phase. It never invalidates the returned path.
var ErrFinderFailed = errors.New("analyzer: finder failed")

// Options configures an Analyzer.
//
// Finders        – the structural finders to run; each must be safe for
// concurrent use across passwords (no per-call mutable state).
// RandomUniverse – character universe size for the random fallback.
// Must be ≥ 1. Default is costpath.DefaultRandomUniverse.
type Options struct {
	Finders        []pattern.Finder
	RandomUniverse int64
}

// Option is a functional option for configuring an Analyzer.
type Option func(*Options)

// WithFinders appends finders to the analysis set, in addition to any
// already configured.
func WithFinders(finders ...pattern.Finder) Option {
	return func(o *Options) {
		o.Finders = append(o.Finders, finders...)
	}
}

// WithRandomUniverse sets the character universe size for the random
// fallback. Panics with costpath.ErrBadUniverse for sizes below 1,
// matching the composer's own option.
func WithRandomUniverse(size int64) Option {
	return func(o *Options) {
		if size < 1 {
			panic(costpath.ErrBadUniverse.Error())
		}
		o.RandomUniverse = size
	}
}

// DefaultOptions returns the analyzer defaults: no finders and the
// printable-ASCII random universe.
func DefaultOptions() Options {
	return Options{RandomUniverse: costpath.DefaultRandomUniverse}
}
