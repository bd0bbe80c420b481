package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gridwords/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-puzzle", "/test/puzzles",
				"--vocabulary=/test/words.json",
				"--output=JSON",
				"--log-level=debug",
				"--log-format=json",
				"--workers=8",
			},
			expectedConfig: &app.Config{
				PuzzlePath:     "/test/puzzles",
				VocabularyPath: "/test/words.json",
				OutputFormat:   "json",
				LogFormat:      "json",
				LogLevel:       "debug",
				WorkerCount:    8,
			},
		},
		{
			name: "Shorthand flags and defaults",
			args: []string{"-p", "/short/path", "-v", "words.txt"},
			expectedConfig: &app.Config{
				PuzzlePath:     "/short/path",
				VocabularyPath: "words.txt",
				OutputFormat:   "text",
				LogFormat:      "text",
				LogLevel:       "info",
				WorkerCount:    1,
			},
		},
		{
			name: "Positional argument for path",
			args: []string{"/positional/path"},
			expectedConfig: &app.Config{
				PuzzlePath:   "/positional/path",
				OutputFormat: "text",
				LogFormat:    "text",
				LogLevel:     "info",
				WorkerCount:  1,
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
			},
		},
		{
			name:       "No path prints usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "PUZZLE_PATH")
			},
		},
		{
			name:      "Invalid output format",
			args:      []string{"-output", "xml", "p.hcl"},
			expectErr: true,
		},
		{
			name:      "Invalid log level",
			args:      []string{"-log-level", "verbose", "p.hcl"},
			expectErr: true,
		},
		{
			name:      "Zero workers",
			args:      []string{"-workers", "0", "p.hcl"},
			expectErr: true,
		},
		{
			name:      "Unknown flag",
			args:      []string{"--nope"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}

			config, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an ExitError")
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
					t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
