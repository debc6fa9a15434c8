/*
Package solver finds, scores and ranks every dictionary word traceable on a board.

A solve runs in three stages:

  - Search: a breadth-first walk from each cell, pruned as soon as the letters
    read so far are not a prefix of any dictionary key (Engine).
  - Aggregate: one entry per word, holding its highest-scoring path (Results).
  - Rank: one of four orderings, optionally inverted (Rank).

Typical use:

	s, err := solver.New(grid, dict, solver.WithWorkers(4))
	words, stats, err := s.Solve(solver.SortByScore, false)

With more than one worker the per-cell searches run on an ants pool. Their
candidates are merged back in row-major start order, which is the order a
sequential search emits them in, so the kept path for tied scores is the same
either way.
*/
package solver

import (
	"fmt"
	"sync"
	"time"

	"github.com/bastiangx/wordgrid/pkg/board"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/panjf2000/ants/v2"
)

// Stats summarizes one solve.
type Stats struct {
	Explored    int
	Candidates  int
	Words       int
	TotalScore  int
	LongestWord int
	Elapsed     time.Duration
}

// Solver runs searches over one grid and dictionary.
type Solver struct {
	engine  *Engine
	grid    *board.Grid
	workers int
	logger  *log.Logger
}

// Option configures a Solver.
type Option func(*Solver) error

// WithWorkers sets how many starting cells are searched concurrently.
// Values below 2 keep the search on the calling goroutine.
func WithWorkers(n int) Option {
	return func(s *Solver) error {
		if n < 0 {
			return fmt.Errorf("solver: negative worker count %d", n)
		}
		s.workers = n
		return nil
	}
}

// WithLogger sets a custom logger. Default is the global charm logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Solver) error {
		if logger == nil {
			logger = log.Default()
		}
		s.logger = logger
		return nil
	}
}

// New creates a solver for grid and dict.
func New(grid *board.Grid, dict dictionary.PrefixDictionary, opts ...Option) (*Solver, error) {
	engine, err := NewEngine(grid, dict)
	if err != nil {
		return nil, err
	}
	s := &Solver{
		engine: engine,
		grid:   grid,
		logger: log.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Find searches the board and aggregates the candidates.
// Each call owns a fresh Results; nothing is shared between calls.
func (s *Solver) Find() (*Results, Stats, error) {
	start := time.Now()
	results := NewResults()
	stats := Stats{}

	add := func(c Candidate) {
		stats.Candidates++
		results.Add(c)
	}

	if s.workers > 1 {
		explored, err := s.findParallel(add)
		if err != nil {
			return nil, stats, err
		}
		stats.Explored = explored
	} else {
		stats.Explored = s.engine.Search(add)
	}

	for _, c := range results.entries {
		stats.TotalScore += c.Score
		stats.LongestWord = max(stats.LongestWord, c.Len())
	}
	stats.Words = results.Len()
	stats.Elapsed = time.Since(start)

	s.logger.Debug("search done",
		"explored", stats.Explored,
		"candidates", stats.Candidates,
		"words", stats.Words,
		"workers", s.workers,
		"elapsed", stats.Elapsed)
	return results, stats, nil
}

// Solve finds every word and returns them ranked by mode.
func (s *Solver) Solve(mode SortMode, reverse bool) ([]Candidate, Stats, error) {
	results, stats, err := s.Find()
	if err != nil {
		return nil, stats, err
	}
	return Rank(results.Entries(), mode, reverse), stats, nil
}

// startResult collects what one starting cell produced.
type startResult struct {
	candidates []Candidate
	explored   int
	panicked   any
}

// findParallel searches each starting cell on the pool, then replays the
// candidates into add in row-major start order.
func (s *Solver) findParallel(add func(Candidate)) (int, error) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return 0, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	starts := s.grid.Positions()
	out := make([]startResult, len(starts))

	var wg sync.WaitGroup
	for i, start := range starts {
		wg.Add(1)
		err := pool.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					out[i].panicked = r
				}
				wg.Done()
			}()
			out[i].explored = s.engine.SearchFrom(start, func(c Candidate) {
				out[i].candidates = append(out[i].candidates, c)
			})
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return 0, fmt.Errorf("failed to submit search from %v: %w", start, err)
		}
	}
	wg.Wait()

	explored := 0
	for i := range out {
		if out[i].panicked != nil {
			// engine bug: surface it the same way the sequential path would
			panic(out[i].panicked)
		}
		explored += out[i].explored
		for _, c := range out[i].candidates {
			add(c)
		}
	}
	return explored, nil
}
