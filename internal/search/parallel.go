package search

import (
	"context"

	"github.com/specialistvlad/gridwords/internal/grid"
	"github.com/specialistvlad/gridwords/internal/lexicon"
	"golang.org/x/sync/errgroup"
)

// SearchParallel is Search with the per-cell searches spread over at most
// workers goroutines. Each search writes only its own result slot, and slots
// are merged in row-major order once every search has returned.
//
// Cancelling ctx stops cells that have not started yet and makes
// SearchParallel return ctx.Err(). A cell search that is already running is
// never interrupted.
func SearchParallel(ctx context.Context, g *grid.Grid, root *lexicon.Node, workers int) ([]string, error) {
	cells := g.Cells()
	slots := make([][]string, len(cells))

	if workers <= 1 {
		for i, start := range cells {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			slots[i] = SearchFrom(g, root, start)
		}
		return merge(slots), nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, start := range cells {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			slots[i] = SearchFrom(g, root, start)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Wait returns nil if ctx was cancelled before any goroutine saw it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return merge(slots), nil
}

func merge(slots [][]string) []string {
	total := 0
	for _, s := range slots {
		total += len(s)
	}
	out := make([]string, 0, total)
	for _, s := range slots {
		out = append(out, s...)
	}
	return out
}
