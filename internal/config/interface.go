package config

import "context"

// Loader is the interface for a format-specific puzzle loader.
type Loader interface {
	// Load reads puzzles from the given files or directories and translates
	// them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
