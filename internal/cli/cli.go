package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gridwords/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridwords", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridwords - finds every vocabulary word hidden in a square letter grid.

Words are spelled by stepping to any of the 8 neighboring cells, using each
cell at most once per word.

Usage:
  gridwords [options] [PUZZLE_PATH]

Arguments:
  PUZZLE_PATH
    Path to a single .hcl puzzle file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	puzzleFlag := flagSet.String("puzzle", "", "Path to the puzzle file or directory.")
	pFlag := flagSet.String("p", "", "Path to the puzzle file or directory (shorthand).")
	vocabularyFlag := flagSet.String("vocabulary", "", "Vocabulary file for puzzles that do not name one (.json, .yaml, .yml or one word per line).")
	vFlag := flagSet.String("v", "", "Vocabulary file (shorthand).")
	outputFlag := flagSet.String("output", "text", "Result format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 1, "Number of concurrent per-cell searches. 1 searches sequentially.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := firstNonEmpty(*puzzleFlag, *pFlag)
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Puzzle path determined.", "path", path)

	if path == "" {
		slog.Debug("No puzzle path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be at least 1"}
	}

	config, err := app.NewConfig(app.Config{
		PuzzlePath:     path,
		VocabularyPath: firstNonEmpty(*vocabularyFlag, *vFlag),
		OutputFormat:   strings.ToLower(*outputFlag),
		LogFormat:      strings.ToLower(*logFormatFlag),
		LogLevel:       strings.ToLower(*logLevelFlag),
		WorkerCount:    *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
