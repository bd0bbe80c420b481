package app

import (
	"bufio"
	"encoding/json"
	"fmt"
)

func (a *App) render(results []*Result) error {
	if a.config.OutputFormat == "json" {
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	w := bufio.NewWriter(a.outW)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d words)\n", r.Puzzle, r.Count)
		for _, word := range r.Words {
			fmt.Fprintln(w, word)
		}
	}
	return w.Flush()
}
