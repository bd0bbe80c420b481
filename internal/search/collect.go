package search

import "slices"

// Finalize returns the distinct words of results in ascending byte order.
// results is not modified.
func Finalize(results []string) []string {
	out := slices.Clone(results)
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
