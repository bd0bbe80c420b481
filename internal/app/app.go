package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/gridwords/internal/config"
	"github.com/specialistvlad/gridwords/internal/search"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	solver *search.Solver

	// vocabularies caches loaded vocabulary files by path for one Run.
	vocabularies map[string][]string
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW, through a logger of its own so that several
// instances can run side by side.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		solver: search.NewSolver(cfg.WorkerCount),
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
