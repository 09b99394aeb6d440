package deckhand

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
	"github.com/slidewright/deckhand/pkg/deckhand/pptx"
)

// Deck is a single-session, in-memory model of one presentation. It owns the
// underlying container for the session's lifetime; Save or Close ends the
// session.
//
// The table cache and section-summary map are add-only for the session and
// never invalidated automatically: edits made to the container outside the
// Deck's own mutation methods produce stale cached grids.
type Deck struct {
	path   string
	pkg    *pptx.Package
	cfg    *Config
	log    *zap.Logger
	closed bool

	slides []*models.Slide
	meta   []*models.SlideMetadata

	summarySlides    []int
	sectionHeaders   []int
	sectionSummaries map[int]*models.SectionSummary
	tableCache       map[int][]models.Grid
}

// SlideCount returns the number of slides in the deck.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// Slide returns the slide at the given 0-based index.
func (d *Deck) Slide(index int) (*models.Slide, error) {
	if err := d.checkIndex(index); err != nil {
		return nil, err
	}
	return d.slides[index], nil
}

// Metadata returns the metadata record for the slide at index.
func (d *Deck) Metadata(index int) (*models.SlideMetadata, error) {
	if err := d.checkIndex(index); err != nil {
		return nil, err
	}
	return d.meta[index], nil
}

// AllMetadata returns the per-slide metadata records in slide order. The
// slice is positionally parallel to the slide sequence.
func (d *Deck) AllMetadata() []*models.SlideMetadata {
	return d.meta
}

// SectionSummary returns the cached section text for a section-header slide,
// or false when the index was never classified as a section header.
func (d *Deck) SectionSummary(index int) (*models.SectionSummary, bool) {
	entry, ok := d.sectionSummaries[index]
	if !ok {
		d.log.Warn("no section summary for slide", zap.Int("slide", index))
	}
	return entry, ok
}

// Report returns a machine-readable snapshot of the deck's metadata and
// classification state.
func (d *Deck) Report() *models.DeckReport {
	report := &models.DeckReport{
		Path:           d.path,
		SlideCount:     len(d.slides),
		Slides:         d.meta,
		SummarySlides:  d.summarySlides,
		SectionHeaders: d.sectionHeaders,
	}
	if len(d.sectionSummaries) > 0 {
		report.SectionSummaries = d.sectionSummaries
	}
	return report
}

// Save writes the full in-memory document, including all prior edits, to
// outputPath, creating the output directory if absent. Returns the path
// written. Always a complete rewrite of the container.
func (d *Deck) Save(outputPath string) (string, error) {
	if d.closed {
		return "", ErrClosed
	}
	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := d.pkg.Save(outputPath); err != nil {
		return "", fmt.Errorf("saving presentation: %w", err)
	}
	d.log.Info("presentation saved", zap.String("path", outputPath))
	return outputPath, nil
}

// Close releases the container handle. Operations after Close fail with
// ErrClosed. Close is idempotent.
func (d *Deck) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.pkg.Close()
}

func (d *Deck) checkIndex(index int) error {
	if d.closed {
		return ErrClosed
	}
	if index < 0 || index >= len(d.slides) {
		return fmt.Errorf("%w: %d (valid range 0-%d)", ErrSlideIndex, index, len(d.slides)-1)
	}
	return nil
}
