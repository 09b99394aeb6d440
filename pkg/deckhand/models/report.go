package models

// DeckReport is a machine-readable snapshot of a loaded deck: metadata for
// every slide plus the classification results.
type DeckReport struct {
	// Path is the container file the deck was loaded from.
	Path string `json:"path"`
	// SlideCount is the number of slides in the deck.
	SlideCount int `json:"slide_count"`
	// Slides holds one metadata record per slide, in slide order.
	Slides []*SlideMetadata `json:"slides"`
	// SummarySlides lists the indices of summary slides.
	SummarySlides []int `json:"summary_slides"`
	// SectionHeaders lists the indices of section-header slides.
	SectionHeaders []int `json:"section_header_slides"`
	// SectionSummaries maps section-header slide index to its section text.
	SectionSummaries map[int]*SectionSummary `json:"section_summaries,omitempty"`
}
