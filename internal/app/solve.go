package app

import (
	"context"

	"github.com/specialistvlad/gridwords/internal/config"
	"github.com/specialistvlad/gridwords/internal/ctxlog"
	"github.com/specialistvlad/gridwords/internal/grid"
	"github.com/specialistvlad/gridwords/internal/inputerr"
	"github.com/specialistvlad/gridwords/internal/vocabulary"
)

// Result is the outcome of solving one puzzle.
type Result struct {
	Puzzle string   `json:"puzzle"`
	Size   int      `json:"size"`
	Count  int      `json:"count"`
	Words  []string `json:"words"`
}

// Solve validates p's grid and vocabulary and returns the words found in it.
func (a *App) Solve(ctx context.Context, p *config.Puzzle) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	g, err := grid.New(p.Rows)
	if err != nil {
		return nil, err
	}

	raw, err := a.vocabularyFor(ctx, p)
	if err != nil {
		return nil, err
	}
	words, skipped, err := vocabulary.Validate(raw)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logger.Warn("Skipped vocabulary words that are not plain ASCII letters.", "skipped", skipped)
	}
	logger.Debug("Puzzle validated.", "size", g.Size(), "vocabulary", len(words))

	found, err := a.solver.Solve(ctx, g, words)
	if err != nil {
		return nil, err
	}

	return &Result{
		Puzzle: p.Name,
		Size:   g.Size(),
		Count:  len(found),
		Words:  found,
	}, nil
}

// vocabularyFor returns the puzzle's inline words followed by the words of
// its vocabulary file, or of the configured fallback file when it names none.
func (a *App) vocabularyFor(ctx context.Context, p *config.Puzzle) ([]string, error) {
	path := p.Vocabulary
	if path == "" {
		path = a.config.VocabularyPath
	}
	if path == "" && len(p.Words) == 0 {
		return nil, inputerr.New("no vocabulary: set `vocabulary` or `words` in the puzzle, or pass -vocabulary")
	}

	words := append([]string(nil), p.Words...)
	if path == "" {
		return words, nil
	}

	fileWords, ok := a.vocabularies[path]
	if !ok {
		var err error
		fileWords, err = vocabulary.Load(path)
		if err != nil {
			return nil, err
		}
		if a.vocabularies != nil {
			a.vocabularies[path] = fileWords
		}
		ctxlog.FromContext(ctx).Debug("Vocabulary file loaded.", "path", path, "words", len(fileWords))
	}
	return append(words, fileWords...), nil
}
