package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/gridwords/internal/ctxlog"
	"github.com/specialistvlad/gridwords/internal/inputerr"
)

// Run loads every puzzle under the configured path, solves them in name
// order and writes the results in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	a.vocabularies = make(map[string][]string)

	model, err := a.loader.Load(ctx, a.config.PuzzlePath)
	if err != nil {
		return fmt.Errorf("failed to load puzzles: %w", err)
	}
	if len(model.Puzzles) == 0 {
		return inputerr.New("no puzzles found in %s", a.config.PuzzlePath)
	}
	a.logger.Info("Puzzles loaded.", "count", len(model.Puzzles), "path", a.config.PuzzlePath)

	results := make([]*Result, 0, len(model.Puzzles))
	for _, p := range model.Puzzles {
		start := time.Now()
		res, err := a.Solve(ctxlog.With(ctx, "puzzle", p.Name), p)
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", p.Name, err)
		}
		a.logger.Info("Puzzle solved.", "puzzle", p.Name, "words", res.Count, "duration", time.Since(start))
		results = append(results, res)
	}

	if err := a.render(results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
