package deckhand

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/slidewright/deckhand/pkg/deckhand/pptx"
)

// SetTitleSlide updates a slide's title and attribution text. Content is
// assigned by position: the title goes to the slide's first text-bearing
// shape, the attribution to the second. When the slide has exactly one
// text-bearing shape and an attribution is requested, the attribution is
// appended as a new paragraph in that shape's frame instead of overwriting
// the title.
//
// A nil title defaults to "Weekly Update" with today's date; a nil
// attribution defaults to the configured attribution. Missing shape slots
// are logged and do not fail the call.
func (d *Deck) SetTitleSlide(index int, title, attribution *string) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	slide := d.slides[index]
	textShapes := slide.TextShapes()

	titleText := "Weekly Update " + time.Now().Format(d.cfg.TitleDateFormat)
	if title != nil {
		titleText = *title
	}
	attrText := d.cfg.DefaultAttribution
	if attribution != nil {
		attrText = *attribution
	}

	content := []string{titleText, attrText}
	for i, text := range content {
		switch {
		case i < len(textShapes):
			target := textShapes[i]
			if err := d.pkg.SetShapeText(index, target.Index, text); err != nil {
				d.log.Warn("text write failed",
					zap.Int("slide", index),
					zap.Int("shape", target.Index),
					zap.Error(err))
				continue
			}
			target.Text = text
		case i == 1 && len(textShapes) == 1:
			target := textShapes[0]
			appended := "\n\n" + text
			if err := d.pkg.AppendParagraph(index, target.Index, appended); err != nil {
				d.log.Warn("paragraph append failed",
					zap.Int("slide", index),
					zap.Int("shape", target.Index),
					zap.Error(err))
				continue
			}
			target.Text += "\n" + appended
		default:
			d.log.Warn("not enough text shapes for content",
				zap.Int("slide", index),
				zap.Int("content_item", i+1),
				zap.Int("text_shapes", len(textShapes)))
		}
	}
	return nil
}

// SetTableCell updates cell (row, col) of the first table on the slide, in
// both the cached grid and the live document. The table cache for the slide
// is populated first if needed; a slide with no tables fails without
// touching the cache.
//
// When the in-memory update succeeds but the native write then faults, the
// call returns a CellEditError with Partial set and the grid stays mutated.
func (d *Deck) SetTableCell(index, row, col int, text string) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	grids, err := d.ensureTables(index)
	if err != nil {
		return err
	}

	grid := grids[0]
	if row < 0 || row >= len(grid) {
		return &CellEditError{Slide: index, Row: row, Col: col,
			Err: fmt.Errorf("row out of range (0-%d)", len(grid)-1)}
	}
	if col < 0 || col >= len(grid[0]) {
		return &CellEditError{Slide: index, Row: row, Col: col,
			Err: fmt.Errorf("column out of range (0-%d)", len(grid[0])-1)}
	}

	grid[row][col] = text
	if table := d.slides[index].FirstTable(); table != nil &&
		row < len(table.Cells) && col < len(table.Cells[row]) {
		table.Cells[row][col] = text
	}

	if err := d.pkg.SetTableCell(index, row, col, text); err != nil {
		if errors.Is(err, pptx.ErrNoTable) {
			// Grid came from the model but the container holds no table
			// part; the in-memory update stands.
			d.log.Warn("table cell updated in memory only", zap.Int("slide", index))
			return nil
		}
		return &CellEditError{Slide: index, Row: row, Col: col, Partial: true, Err: err}
	}
	d.log.Info("table cell updated",
		zap.Int("slide", index),
		zap.Int("row", row),
		zap.Int("col", col))
	return nil
}

// SetSectionSummary updates the section title and/or summary for a
// section-header slide. Fails with ErrNoSection when the slide was never
// classified as a section header. Non-nil fields update the cached entry
// first; the native write targets shape position 0 for the title and shape
// position 1 for the summary, when those positions exist and carry a text
// frame.
func (d *Deck) SetSectionSummary(index int, title, summary *string) error {
	if d.closed {
		return ErrClosed
	}
	entry, ok := d.sectionSummaries[index]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoSection, index)
	}
	if title != nil {
		entry.Title = *title
	}
	if summary != nil {
		entry.Summary = *summary
	}

	if index >= len(d.slides) {
		d.log.Warn("section summary updated in cache but not in document",
			zap.Int("slide", index))
		return fmt.Errorf("%w: %d: native write skipped", ErrSlideIndex, index)
	}

	slide := d.slides[index]
	if title != nil && len(slide.Shapes) > 0 && slide.Shapes[0].HasText() {
		if err := d.pkg.SetShapeText(index, 0, *title); err != nil {
			d.log.Warn("section title write failed", zap.Int("slide", index), zap.Error(err))
		} else {
			slide.Shapes[0].Text = *title
		}
	}
	if summary != nil && len(slide.Shapes) > 1 && slide.Shapes[1].HasText() {
		if err := d.pkg.SetShapeText(index, 1, *summary); err != nil {
			d.log.Warn("section summary write failed", zap.Int("slide", index), zap.Error(err))
		} else {
			slide.Shapes[1].Text = *summary
		}
	}
	return nil
}
