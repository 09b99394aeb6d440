package models

// UntitledSlide is the title recorded for slides with no usable title text.
const UntitledSlide = "Untitled"

// SlideMetadata holds derived, recomputable metadata for one slide. It is
// positionally parallel to the deck's slide sequence.
type SlideMetadata struct {
	// SlideNumber is the 1-based slide number.
	SlideNumber int `json:"slide_number"`
	// LayoutName is the slide's layout name ("Unknown" when absent).
	LayoutName string `json:"layout_name"`
	// Title is the resolved slide title ("Untitled" when none found).
	Title string `json:"title"`
	// ShapeCounts maps shape kind to the number of shapes of that kind.
	ShapeCounts map[ShapeKind]int `json:"shape_counts"`
	// TotalShapes is the number of shapes on the slide.
	TotalShapes int `json:"total_shapes"`
	// Tables is the number of table-bearing shapes.
	Tables int `json:"tables"`
	// Pictures is the number of picture shapes.
	Pictures int `json:"pictures"`
	// TextBoxes is the number of text-bearing shapes that are not title
	// placeholders.
	TextBoxes int `json:"text_boxes"`
	// IsSummary reports whether the slide was classified as a summary slide.
	IsSummary bool `json:"is_summary_slide"`
	// IsSectionHeader reports whether the slide was classified as a
	// section-header slide.
	IsSectionHeader bool `json:"is_section_summary_slide"`
}

// SectionSummary holds the title and summary text extracted from a
// section-header slide.
type SectionSummary struct {
	// Title is the section title (first shape's text).
	Title string `json:"section_title"`
	// Summary is the section summary (second shape's text).
	Summary string `json:"section_summary"`
}
