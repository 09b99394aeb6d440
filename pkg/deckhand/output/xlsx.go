package output

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// ExportXLSX writes extracted grids to an Excel workbook at path, one sheet
// per slide that carried tables. Sheets are named "Slide N" (1-based);
// multiple grids on one slide are stacked with a blank row between them.
func ExportXLSX(path string, tables map[int][]models.Grid) error {
	indices := make([]int, 0, len(tables))
	for idx := range tables {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	f := excelize.NewFile()
	defer f.Close()

	for i, idx := range indices {
		sheet := fmt.Sprintf("Slide %d", idx+1)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}
		rowOffset := 0
		for gi, grid := range tables[idx] {
			if gi > 0 {
				rowOffset++
			}
			for r, row := range grid {
				for c, text := range row {
					cell, err := excelize.CoordinatesToCellName(c+1, rowOffset+r+1)
					if err != nil {
						return err
					}
					if err := f.SetCellValue(sheet, cell, text); err != nil {
						return err
					}
				}
			}
			rowOffset += len(grid)
		}
	}
	return f.SaveAs(path)
}
