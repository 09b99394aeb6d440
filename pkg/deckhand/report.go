package deckhand

import (
	"io"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
	"github.com/slidewright/deckhand/pkg/deckhand/render"
)

// WriteReport writes a human-readable view of every slide's metadata to w.
// Summary slides additionally show their extracted grids (populating the
// table cache on first use). Reporting reads the cache and metadata only;
// it never changes classification or edit state.
func (d *Deck) WriteReport(w io.Writer) error {
	if d.closed {
		return ErrClosed
	}
	render.WriteDeckHeader(w, len(d.slides))
	for i, slide := range d.slides {
		var grids []models.Grid
		if d.meta[i].IsSummary {
			grids = d.SummaryTable(i)
		}
		render.WriteSlideMetadata(w, slide, d.meta[i], grids)
	}
	return nil
}
