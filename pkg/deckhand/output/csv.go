package output

import (
	"encoding/csv"
	"io"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// WriteCSV writes grids to w as CSV, one row per grid row. Multiple grids
// are separated by an empty record.
func WriteCSV(w io.Writer, grids []models.Grid) error {
	cw := csv.NewWriter(w)
	for i, grid := range grids {
		if i > 0 {
			if err := cw.Write([]string{""}); err != nil {
				return err
			}
		}
		for _, row := range grid {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
