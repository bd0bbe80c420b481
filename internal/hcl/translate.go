package hcl

import (
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/gridwords/internal/config"
)

// translatePuzzle converts the HCL-specific puzzle schema into the agnostic model.
func translatePuzzle(b *puzzleBlock, file string, evalCtx *hcl.EvalContext) (*config.Puzzle, error) {
	rows, err := decodeStringList(b.Rows, evalCtx)
	if err != nil {
		return nil, err
	}
	words, err := decodeStringList(b.Words, evalCtx)
	if err != nil {
		return nil, err
	}

	p := &config.Puzzle{
		Name:       b.Name,
		Rows:       rows,
		Words:      words,
		SourceFile: file,
	}
	if b.Vocabulary != nil && strings.TrimSpace(*b.Vocabulary) != "" {
		p.Vocabulary = resolvePath(file, *b.Vocabulary)
	}
	return p, nil
}

// resolvePath interprets a relative path against the directory of file.
func resolvePath(file, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(file), path)
}
