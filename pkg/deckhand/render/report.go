package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// textPreviewLimit is the maximum rune length of shape text shown in the
// shape listing before truncation.
const textPreviewLimit = 30

// WriteSlideMetadata writes a human-readable view of one slide: its metadata
// record, a listing of its shapes, and optionally the grids extracted from
// it (pass nil when the slide carries none).
func WriteSlideMetadata(w io.Writer, slide *models.Slide, meta *models.SlideMetadata, grids []models.Grid) {
	fmt.Fprintf(w, "Slide #%d:\n", meta.SlideNumber)
	fmt.Fprintf(w, "  Layout: %s\n", meta.LayoutName)
	fmt.Fprintf(w, "  Title: %s\n", meta.Title)
	fmt.Fprintf(w, "  Total shapes: %d\n", meta.TotalShapes)
	fmt.Fprintln(w, "  Shape counts:")
	for _, kind := range []models.ShapeKind{models.KindText, models.KindTable, models.KindPicture, models.KindOther} {
		if count := meta.ShapeCounts[kind]; count > 0 {
			fmt.Fprintf(w, "    %s: %d\n", kind, count)
		}
	}
	fmt.Fprintln(w, "  Shapes:")
	for i, sh := range slide.Shapes {
		name := sh.Name
		if name == "" {
			name = "Unnamed"
		}
		preview := ""
		if text := textPreview(sh.Text); text != "" {
			preview = fmt.Sprintf(" - %q", text)
		}
		fmt.Fprintf(w, "    Shape #%d: %s (%s)%s\n", i+1, name, sh.Kind, preview)
	}
	if grids != nil {
		fmt.Fprintln(w, "  This is a summary slide with tables.")
		fmt.Fprintf(w, "\nTable data from slide (%s):\n", meta.Title)
		WriteGrids(w, grids)
	}
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

// WriteDeckHeader writes the report banner for a deck of the given size.
func WriteDeckHeader(w io.Writer, slideCount int) {
	fmt.Fprintf(w, "\nPresentation contains %d slides\n", slideCount)
	fmt.Fprintln(w, strings.Repeat("=", 50))
}

func textPreview(text string) string {
	runes := []rune(text)
	if len(runes) > textPreviewLimit {
		return string(runes[:textPreviewLimit-3]) + "..."
	}
	return text
}
