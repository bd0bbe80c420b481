// Package vocabulary reads word lists from disk and normalizes them before
// they are compiled into a trie.
//
// Three formats are understood. JSON and YAML files hold either a flat list
// of words or an object of word lists keyed by length, such as
// {"3": ["CAT"], "2": ["AT"]}. Any other file is read as plain text with one
// word per line, where blank lines and lines starting with '#' are ignored.
package vocabulary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/gridwords/internal/inputerr"
	"gopkg.in/yaml.v3"
)

// Format selects a vocabulary file decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads the file at path and returns its raw words.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary %s: %w", path, err)
	}
	defer f.Close()

	words, err := Parse(FormatFor(path), f)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}
	return words, nil
}

// Parse decodes words from r in the given format. The words are returned as
// written; see Normalize.
func Parse(format Format, r io.Reader) ([]string, error) {
	switch format {
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return decodeShapes(data, json.Unmarshal)
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return decodeShapes(data, yaml.Unmarshal)
	case FormatText:
		return scanLines(r)
	default:
		return nil, fmt.Errorf("unknown vocabulary format %q", format)
	}
}

// decodeShapes tries the flat list shape first, then the bucketed object.
func decodeShapes(data []byte, unmarshal func([]byte, any) error) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var flat []string
	flatErr := unmarshal(data, &flat)
	if flatErr == nil {
		return flat, nil
	}

	var buckets map[string][]string
	if err := unmarshal(data, &buckets); err != nil {
		return nil, fmt.Errorf("want a list of words or an object of word lists: %w", flatErr)
	}
	return FromBuckets(buckets), nil
}

func scanLines(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// FromBuckets flattens word lists keyed by length (or any other grouping),
// visiting keys in sorted order.
func FromBuckets(buckets map[string][]string) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var words []string
	for _, k := range keys {
		words = append(words, buckets[k]...)
	}
	return words
}

// Normalize trims and upper-cases words, then returns them sorted and
// without duplicates. Empty words are dropped silently. Words holding
// anything other than ASCII letters are dropped and counted in skipped.
func Normalize(words []string) (kept []string, skipped int) {
	kept = make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if !isLetters(w) {
			skipped++
			continue
		}
		kept = append(kept, strings.ToUpper(w))
	}
	slices.Sort(kept)
	return slices.Compact(kept), skipped
}

// Validate normalizes words and rejects a vocabulary left empty.
func Validate(words []string) ([]string, int, error) {
	kept, skipped := Normalize(words)
	if len(kept) == 0 {
		return nil, skipped, inputerr.New("vocabulary has no usable words (%d skipped)", skipped)
	}
	return kept, skipped, nil
}

func isLetters(w string) bool {
	for i := 0; i < len(w); i++ {
		c := w[i]
		if !('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z') {
			return false
		}
	}
	return true
}
