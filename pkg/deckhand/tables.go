package deckhand

import (
	"go.uber.org/zap"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// ExtractTables scans the slide's shapes in order and returns one row-major
// grid per table shape, with embedded cell newlines flattened to single
// spaces. When at least one grid is found the result replaces any prior
// cache entry for the slide; when the slide has no tables the cache is left
// untouched, so an absent cache key means "never extracted", not "no tables".
func (d *Deck) ExtractTables(index int) ([]models.Grid, error) {
	if err := d.checkIndex(index); err != nil {
		return nil, err
	}
	var grids []models.Grid
	for _, sh := range d.slides[index].Shapes {
		if sh.HasTable() {
			grids = append(grids, models.GridFromTable(sh.Table))
		}
	}
	if len(grids) > 0 {
		d.tableCache[index] = grids
	}
	return grids, nil
}

// SummaryTable returns the cached grids for a slide, extracting them first
// when absent. An out-of-range index or a slide with no tables yields nil
// with a logged warning rather than an error.
func (d *Deck) SummaryTable(index int) []models.Grid {
	if err := d.checkIndex(index); err != nil {
		d.log.Warn("invalid slide index for table lookup",
			zap.Int("slide", index),
			zap.Int("slide_count", len(d.slides)))
		return nil
	}
	if grids, ok := d.tableCache[index]; ok {
		return grids
	}
	grids, err := d.ExtractTables(index)
	if err != nil || len(grids) == 0 {
		d.log.Warn("no tables found for slide", zap.Int("slide", index))
		return nil
	}
	return grids
}

// ensureTables populates the table cache for a slide, returning the cached
// grids or ErrNoTables when the slide holds no table shapes.
func (d *Deck) ensureTables(index int) ([]models.Grid, error) {
	if grids, ok := d.tableCache[index]; ok {
		return grids, nil
	}
	grids, err := d.ExtractTables(index)
	if err != nil {
		return nil, err
	}
	if len(grids) == 0 {
		return nil, ErrNoTables
	}
	return grids, nil
}
