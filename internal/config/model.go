package config

import (
	"fmt"
	"slices"
	"strings"
)

// Model is the unified, format-agnostic representation of every puzzle
// found in the configured paths.
type Model struct {
	Puzzles []*Puzzle
}

// Puzzle is the format-agnostic representation of a `puzzle` block.
type Puzzle struct {
	Name string
	// Rows are the grid rows as written; validation happens in the grid package.
	Rows []string
	// Words are inline vocabulary words, merged with the vocabulary file.
	Words []string
	// Vocabulary is the path of a vocabulary file. A relative path has
	// already been resolved against the directory of SourceFile.
	Vocabulary string
	SourceFile string
}

// Add appends p, rejecting a second puzzle with the same name.
func (m *Model) Add(p *Puzzle) error {
	if existing := m.Puzzle(p.Name); existing != nil {
		return fmt.Errorf("puzzle %q declared in %s is already declared in %s", p.Name, p.SourceFile, existing.SourceFile)
	}
	m.Puzzles = append(m.Puzzles, p)
	return nil
}

// Puzzle returns the puzzle with the given name, or nil.
func (m *Model) Puzzle(name string) *Puzzle {
	for _, p := range m.Puzzles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Sort orders the puzzles by name.
func (m *Model) Sort() {
	slices.SortFunc(m.Puzzles, func(a, b *Puzzle) int {
		return strings.Compare(a.Name, b.Name)
	})
}
