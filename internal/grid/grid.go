// Package grid holds the square letter grid searched for words.
package grid

import (
	"strings"

	"github.com/specialistvlad/gridwords/internal/inputerr"
)

// Cell is a (row, column) coordinate.
type Cell struct {
	Row int
	Col int
}

// Add returns c shifted by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Offsets are the eight neighbor directions, clockwise from north.
var Offsets = [8]Cell{
	{Row: 0, Col: -1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 1},
	{Row: -1, Col: 0},
	{Row: -1, Col: -1},
}

// Grid is an immutable N×N array of upper-case ASCII letters.
type Grid struct {
	size  int
	cells []byte
}

// New validates rows and returns the grid they describe. Surrounding spaces
// are trimmed from each row and letters are upper-cased.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, inputerr.New("grid has no rows")
	}

	n := len(rows)
	g := &Grid{size: n, cells: make([]byte, 0, n*n)}

	for r, raw := range rows {
		row := strings.TrimSpace(raw)
		if len(row) != n {
			return nil, inputerr.New("grid is not square: row %d has %d cells, want %d", r, len(row), n)
		}
		for c := 0; c < len(row); c++ {
			b := row[c]
			switch {
			case 'A' <= b && b <= 'Z':
			case 'a' <= b && b <= 'z':
				b -= 'a' - 'A'
			default:
				return nil, inputerr.New("grid cell (%d,%d) is %q, want an ASCII letter", r, c, b)
			}
			g.cells = append(g.cells, b)
		}
	}

	return g, nil
}

// Size returns N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether c lies in [0,N)×[0,N).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Index returns the row-major index of c. c must be in bounds.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.size + c.Col
}

// At returns the letter at c. c must be in bounds.
func (g *Grid) At(c Cell) byte {
	return g.cells[g.Index(c)]
}

// Cells returns every coordinate in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

// Rows returns the grid as one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for r := range rows {
		rows[r] = string(g.cells[r*g.size : (r+1)*g.size])
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
