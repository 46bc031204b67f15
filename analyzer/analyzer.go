// Package analyzer drives one full password analysis: every configured
// finder runs concurrently against a fresh accumulator, a join barrier
// waits for all of them, and the finalized match set is composed into the
// minimum-cost path and duplicate-collapsed.
package analyzer

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/guesspath/collapse"
	"github.com/katalvlaran/guesspath/costpath"
	"github.com/katalvlaran/guesspath/pattern"
)

// Analyzer is a configured-once analysis engine. It holds only immutable
// configuration (the finder set and composer options), so one Analyzer may
// serve many passwords from many goroutines concurrently; each call gets
// its own accumulator.
type Analyzer struct {
	finders  []pattern.Finder
	universe int64
}

// New builds an Analyzer from functional options. An Analyzer with no
// finders is legal: every password then composes from random fallback
// characters alone.
func New(opts ...Option) *Analyzer {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Analyzer{
		finders:  cfg.Finders,
		universe: cfg.RandomUniverse,
	}
}

// Analyze runs every finder against the password, composes the cheapest
// full covering, and collapses duplicate repeats.
//
// Finder failures are isolated: a failing finder's partial or zero
// contributions are simply absent from the accumulator and the other
// finders' results are unaffected, so the returned Path is always a
// complete, valid cover even when err is non-nil. A non-nil err reports
// the first finder failure (wrapped in ErrFinderFailed) and is
// informational: callers wanting a best-effort estimate may use the Path
// regardless.
func (a *Analyzer) Analyze(password string) (costpath.Path, error) {
	res := pattern.NewResults(password)

	// Fan out: finders share the accumulator, whose Record is safe for
	// concurrent writers. No finder coordinates with another.
	var g errgroup.Group
	for _, f := range a.finders {
		f := f
		g.Go(func() error {
			return f.Analyze(res)
		})
	}

	// Join barrier: composition must not start until every finder for
	// this password has completed.
	var finderErr error
	if err := g.Wait(); err != nil {
		finderErr = fmt.Errorf("%w: %w", ErrFinderFailed, err)
	}

	path, err := costpath.BestPath(res, costpath.WithRandomUniverse(a.universe))
	if err != nil {
		return costpath.Path{}, err
	}

	return collapse.Process(path, res), finderErr
}
