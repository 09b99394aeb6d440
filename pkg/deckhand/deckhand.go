// Package deckhand builds an in-memory structural model of a slide deck,
// classifies slides into structural roles, extracts tables into normalized
// grids, and applies position-addressed edits that round-trip back into the
// container on save.
//
// A Deck is a single-session view over one presentation file. Sessions are
// single-threaded: callers embedding a Deck in a concurrent host must
// serialize access themselves.
package deckhand

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
	"github.com/slidewright/deckhand/pkg/deckhand/pptx"
)

// Options configures a deck session. The zero value uses DefaultConfig and a
// no-op logger.
type Options struct {
	// Config overrides the classification and mutation defaults.
	Config *Config
	// Logger receives session observability; nil means no logging.
	Logger *zap.Logger
}

// Open loads the presentation at path and eagerly builds the slide list and
// one metadata record per slide.
//
// Fails with ErrNotFound when the path does not exist, ErrNotAFile when it is
// not a regular file, and ErrInvalidFormat when the container cannot be
// parsed. No Deck is constructed on failure.
func Open(path string, opts Options) (*Deck, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	pkg, err := pptx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	d := &Deck{
		path:             path,
		pkg:              pkg,
		cfg:              cfg,
		log:              log,
		sectionSummaries: make(map[int]*models.SectionSummary),
		tableCache:       make(map[int][]models.Grid),
	}
	for i, part := range pkg.Slides() {
		slide := &models.Slide{
			Index:      i,
			LayoutName: part.LayoutName,
			Shapes:     part.Shapes,
		}
		if slide.LayoutName == "" {
			slide.LayoutName = "Unknown"
		}
		d.slides = append(d.slides, slide)
		d.meta = append(d.meta, ExtractSlideMetadata(slide))
	}
	log.Info("presentation loaded",
		zap.String("path", path),
		zap.Int("slides", len(d.slides)))
	return d, nil
}

// ExtractSlideMetadata derives the metadata record for a single slide.
//
// Title precedence: the first title-flagged text shape wins and stops the
// scan; otherwise the first shape with non-empty text becomes the title, the
// fallback continuing only while the title is still "Untitled".
func ExtractSlideMetadata(slide *models.Slide) *models.SlideMetadata {
	meta := &models.SlideMetadata{
		SlideNumber: slide.Index + 1,
		LayoutName:  slide.LayoutName,
		Title:       models.UntitledSlide,
		ShapeCounts: make(map[models.ShapeKind]int),
		TotalShapes: len(slide.Shapes),
	}
	for _, sh := range slide.Shapes {
		if sh.HasText() && sh.Text != "" {
			if sh.IsTitle {
				meta.Title = sh.Text
				break
			}
			if meta.Title == models.UntitledSlide {
				meta.Title = sh.Text
			}
		}
	}
	for _, sh := range slide.Shapes {
		meta.ShapeCounts[sh.Kind]++
		switch {
		case sh.HasTable():
			meta.Tables++
		case sh.Kind == models.KindPicture:
			meta.Pictures++
		case sh.HasText() && !sh.IsTitle:
			meta.TextBoxes++
		}
	}
	return meta
}
