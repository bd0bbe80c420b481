package vocabulary

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gridwords/internal/inputerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		format    Format
		input     string
		expectErr bool
		expected  []string
	}{
		{
			name:     "json flat list",
			format:   FormatJSON,
			input:    `["CAT", "AT"]`,
			expected: []string{"CAT", "AT"},
		},
		{
			name:     "json length buckets",
			format:   FormatJSON,
			input:    `{"3": ["CAT", "CAR"], "2": ["AT"]}`,
			expected: []string{"AT", "CAT", "CAR"},
		},
		{
			name:     "json empty document",
			format:   FormatJSON,
			input:    "  \n",
			expected: nil,
		},
		{
			name:      "json wrong shape",
			format:    FormatJSON,
			input:     `{"3": "CAT"}`,
			expectErr: true,
		},
		{
			name:      "json syntax error",
			format:    FormatJSON,
			input:     `["CAT"`,
			expectErr: true,
		},
		{
			name:     "yaml flat list",
			format:   FormatYAML,
			input:    "- cat\n- at\n",
			expected: []string{"cat", "at"},
		},
		{
			name:     "yaml length buckets",
			format:   FormatYAML,
			input:    "\"3\": [CAT]\n\"2\":\n  - AT\n",
			expected: []string{"AT", "CAT"},
		},
		{
			name:      "yaml scalar document",
			format:    FormatYAML,
			input:     "just a string",
			expectErr: true,
		},
		{
			name:     "text lines with comments",
			format:   FormatText,
			input:    "# fruit\napple\n\n  pear  \n#banana\n",
			expected: []string{"apple", "pear"},
		},
		{
			name:      "unknown format",
			format:    Format("xml"),
			input:     "<words/>",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.format, strings.NewReader(tc.input))

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("/tmp/vocabulary.json"))
	assert.Equal(t, FormatJSON, FormatFor("WORDS.JSON"))
	assert.Equal(t, FormatYAML, FormatFor("words.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("words.yml"))
	assert.Equal(t, FormatText, FormatFor("words.txt"))
	assert.Equal(t, FormatText, FormatFor("words"))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "vocabulary.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"2": ["AT"], "3": ["CAT"]}`), 0600))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AT", "CAT"}, words)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNormalize(t *testing.T) {
	kept, skipped := Normalize([]string{" cat ", "CAT", "", "at", "don't", "café", "   "})

	assert.Equal(t, []string{"AT", "CAT"}, kept)
	assert.Equal(t, 2, skipped)
}

func TestValidate(t *testing.T) {
	t.Run("usable words", func(t *testing.T) {
		kept, skipped, err := Validate([]string{"b", "a", "x-y"})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, kept)
		assert.Equal(t, 1, skipped)
	})

	t.Run("error - nothing left", func(t *testing.T) {
		_, skipped, err := Validate([]string{"", "1234"})
		require.Error(t, err)
		assert.True(t, inputerr.Is(err))
		assert.Equal(t, 1, skipped)
	})
}
