package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gridwords/internal/config"
	"github.com/specialistvlad/gridwords/internal/ctxlog"
	"github.com/specialistvlad/gridwords/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL puzzle loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the set of top-level blocks allowed in a puzzle file.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
}

// puzzleBlock is the HCL schema of a `puzzle` block.
type puzzleBlock struct {
	Name       string         `hcl:"name,label"`
	Rows       hcl.Expression `hcl:"rows"`
	Words      hcl.Expression `hcl:"words,optional"`
	Vocabulary *string        `hcl:"vocabulary,optional"`
}

// Load parses every .hcl file reachable from paths and returns the puzzles
// they declare, sorted by name.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	evalCtx := newEvalContext()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Puzzles {
			puzzle, err := translatePuzzle(block, file, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("failed to translate puzzle %q in %s: %w", block.Name, file, err)
			}
			if err := model.Add(puzzle); err != nil {
				return nil, err
			}
			logger.Debug("Puzzle block translated.", "puzzle", puzzle.Name, "file", file, "rows", len(puzzle.Rows))
		}
	}

	model.Sort()
	logger.Debug("HCL loading complete.", "files", len(files), "puzzles", len(model.Puzzles))
	return model, nil
}
