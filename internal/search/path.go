package search

import "github.com/specialistvlad/gridwords/internal/grid"

// Path is the stack of cells used by the branch currently being explored.
// It keeps a visited bitmap alongside the stack so membership is O(1).
type Path struct {
	cells   []grid.Cell
	visited []bool
	size    int
}

// NewPath returns an empty path for a grid of the given size.
func NewPath(size int) *Path {
	return &Path{
		cells:   make([]grid.Cell, 0, size*size),
		visited: make([]bool, size*size),
		size:    size,
	}
}

// Push appends c. c must be in bounds and not already on the path.
func (p *Path) Push(c grid.Cell) {
	p.cells = append(p.cells, c)
	p.visited[c.Row*p.size+c.Col] = true
}

// Pop removes and returns the most recently pushed cell.
func (p *Path) Pop() grid.Cell {
	last := p.cells[len(p.cells)-1]
	p.cells = p.cells[:len(p.cells)-1]
	p.visited[last.Row*p.size+last.Col] = false
	return last
}

// Contains reports whether c is on the path. c must be in bounds.
func (p *Path) Contains(c grid.Cell) bool {
	return p.visited[c.Row*p.size+c.Col]
}

// Len returns the number of cells on the path.
func (p *Path) Len() int { return len(p.cells) }

// Cells returns a copy of the path, oldest cell first.
func (p *Path) Cells() []grid.Cell {
	return append([]grid.Cell(nil), p.cells...)
}
