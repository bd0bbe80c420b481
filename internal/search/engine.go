package search

import (
	"github.com/specialistvlad/gridwords/internal/grid"
	"github.com/specialistvlad/gridwords/internal/lexicon"
)

// Search runs one backtracking search from every cell of g, in row-major
// order, and returns every word found. The result may hold duplicates.
func Search(g *grid.Grid, root *lexicon.Node) []string {
	var results []string
	for _, start := range g.Cells() {
		results = append(results, SearchFrom(g, root, start)...)
	}
	return results
}

// SearchFrom returns the words spelled by simple paths that begin at start.
// A word is reported once for every such path, so duplicates are possible.
func SearchFrom(g *grid.Grid, root *lexicon.Node, start grid.Cell) []string {
	e := &explorer{grid: g, path: NewPath(g.Size())}
	e.explore(start, root)
	return e.results
}

// explorer owns the mutable state of one per-cell search.
type explorer struct {
	grid    *grid.Grid
	path    *Path
	results []string
}

func (e *explorer) explore(c grid.Cell, node *lexicon.Node) {
	if !e.grid.InBounds(c) {
		return
	}
	if e.path.Contains(c) {
		return
	}

	child := node.Child(e.grid.At(c))
	if child == nil {
		return
	}

	e.path.Push(c)
	if child.Terminal() {
		e.results = append(e.results, child.Word())
	}
	for _, d := range grid.Offsets {
		e.explore(c.Add(d), child)
	}
	e.path.Pop()
}
