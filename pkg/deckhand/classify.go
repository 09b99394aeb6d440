package deckhand

import (
	"strings"

	"go.uber.org/zap"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// Classification holds the structural roles derived from a classification
// pass: the indices of summary slides and of section-header slides.
type Classification struct {
	// SummarySlides lists summary slide indices in slide order.
	SummarySlides []int `json:"summary_slides"`
	// SectionHeaders lists section-header slide indices in slide order.
	SectionHeaders []int `json:"section_header_slides"`
}

// Classify derives each slide's structural role from its layout name and
// title text, annotates the metadata records, and populates the
// section-summary map for section-header slides.
//
// Classification is a pure function of the unmutated model: re-running it
// yields identical role assignments. The two role conditions are keyed on
// disjoint layout names, so no slide is evaluated against both.
func (d *Deck) Classify() Classification {
	d.summarySlides = nil
	d.sectionHeaders = nil

	for i, slide := range d.slides {
		switch slide.LayoutName {
		case d.cfg.SectionHeaderLayout:
			d.classifySectionHeader(i, slide)
		case d.cfg.TitleOnlyLayout:
			d.classifySummary(i, slide)
		}
	}
	return Classification{
		SummarySlides:  d.summarySlides,
		SectionHeaders: d.sectionHeaders,
	}
}

// classifySectionHeader records the slide as a section header and extracts
// its section text: the first shape's text is the section title and the
// second shape's text is the section summary, each only when that shape
// exists and carries a text frame. Shapes at position two and beyond are
// ignored even when they contain text.
func (d *Deck) classifySectionHeader(index int, slide *models.Slide) {
	d.meta[index].IsSectionHeader = true
	d.sectionHeaders = append(d.sectionHeaders, index)

	entry := &models.SectionSummary{}
	if len(slide.Shapes) > 0 && slide.Shapes[0].HasText() {
		entry.Title = slide.Shapes[0].Text
	}
	if len(slide.Shapes) > 1 && slide.Shapes[1].HasText() {
		entry.Summary = slide.Shapes[1].Text
	}
	d.sectionSummaries[index] = entry
	d.log.Info("section header classified",
		zap.Int("slide", index),
		zap.String("title", entry.Title))
}

// classifySummary records the slide as a summary slide when the first
// non-empty text shape's text starts with the summary prefix,
// case-insensitively.
func (d *Deck) classifySummary(index int, slide *models.Slide) {
	var candidate string
	for _, sh := range slide.Shapes {
		if sh.HasText() && sh.Text != "" {
			candidate = sh.Text
			break
		}
	}
	if candidate == "" {
		return
	}
	if !strings.HasPrefix(strings.ToLower(candidate), d.cfg.SummaryTitlePrefix) {
		return
	}
	d.meta[index].IsSummary = true
	d.summarySlides = append(d.summarySlides, index)
	d.log.Info("summary slide classified",
		zap.Int("slide", index),
		zap.String("title", candidate))
}
