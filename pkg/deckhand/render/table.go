// Package render produces fixed-width text views of deck metadata and
// extracted grids. Rendering is a pure read view with no effect on model
// state.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// WriteGrid writes a grid as a bordered fixed-width table. Column widths are
// the maximum cell display width per column across all rows.
func WriteGrid(w io.Writer, grid models.Grid) {
	if len(grid) == 0 {
		fmt.Fprintln(w, "  Empty table")
		return
	}

	widths := make([]int, len(grid[0]))
	for _, row := range grid {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var sep strings.Builder
	sep.WriteString("  +")
	for _, width := range widths {
		sep.WriteString(strings.Repeat("-", width+2))
		sep.WriteString("+")
	}

	fmt.Fprintln(w, sep.String())
	for _, row := range grid {
		var line strings.Builder
		line.WriteString("  |")
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			pad := widths[i] - runewidth.StringWidth(cell)
			line.WriteString(" ")
			line.WriteString(cell)
			line.WriteString(strings.Repeat(" ", pad))
			line.WriteString(" |")
		}
		fmt.Fprintln(w, line.String())
		fmt.Fprintln(w, sep.String())
	}
}

// WriteGrids writes a numbered sequence of grids.
func WriteGrids(w io.Writer, grids []models.Grid) {
	for i, grid := range grids {
		fmt.Fprintf(w, "Table %d:\n", i+1)
		WriteGrid(w, grid)
		fmt.Fprintln(w)
	}
}
