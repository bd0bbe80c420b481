package search

import (
	"context"
	"time"

	"github.com/specialistvlad/gridwords/internal/ctxlog"
	"github.com/specialistvlad/gridwords/internal/grid"
	"github.com/specialistvlad/gridwords/internal/lexicon"
)

// FindWords returns, sorted and without duplicates, every word of vocabulary
// that can be spelled along a simple path of adjacent cells in g.
func FindWords(g *grid.Grid, vocabulary []string) []string {
	return Finalize(Search(g, lexicon.Build(vocabulary)))
}

// Solver runs FindWords with a configurable number of workers.
type Solver struct {
	// Workers is the number of concurrent per-cell searches. Values below 2
	// select the sequential search.
	Workers int
}

// NewSolver returns a Solver using the given number of workers.
func NewSolver(workers int) *Solver {
	return &Solver{Workers: workers}
}

// Solve builds the trie for vocabulary and searches g with it. The only
// error it returns is ctx.Err().
func (s *Solver) Solve(ctx context.Context, g *grid.Grid, vocabulary []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	start := time.Now()
	root := lexicon.Build(vocabulary)
	logger.Debug("Trie built.", "words", root.Count(), "duration", time.Since(start))

	start = time.Now()
	var results []string
	if s.Workers > 1 {
		var err error
		results, err = SearchParallel(ctx, g, root, s.Workers)
		if err != nil {
			return nil, err
		}
	} else {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = Search(g, root)
	}

	words := Finalize(results)
	logger.Debug("Grid searched.",
		"size", g.Size(),
		"workers", s.Workers,
		"matches", len(results),
		"unique", len(words),
		"duration", time.Since(start),
	)
	return words, nil
}
