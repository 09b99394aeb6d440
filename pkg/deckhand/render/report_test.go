package render

import (
	"strings"
	"testing"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

func sampleSlide() (*models.Slide, *models.SlideMetadata) {
	slide := &models.Slide{
		Index:      0,
		LayoutName: "Title Only",
		Shapes: []*models.Shape{
			{Index: 0, Name: "Title 1", Kind: models.KindText, IsTitle: true, Text: "Summary: Key Results"},
			{Index: 1, Name: "Table 1", Kind: models.KindTable,
				Table: &models.Table{Rows: 1, Cols: 1, Cells: [][]string{{"a"}}}},
			{Index: 2, Kind: models.KindPicture},
		},
	}
	meta := &models.SlideMetadata{
		SlideNumber: 1,
		LayoutName:  "Title Only",
		Title:       "Summary: Key Results",
		ShapeCounts: map[models.ShapeKind]int{
			models.KindText:    1,
			models.KindTable:   1,
			models.KindPicture: 1,
		},
		TotalShapes: 3,
		Tables:      1,
		Pictures:    1,
	}
	return slide, meta
}

func TestWriteSlideMetadata(t *testing.T) {
	slide, meta := sampleSlide()
	var buf strings.Builder
	WriteSlideMetadata(&buf, slide, meta, nil)

	out := buf.String()
	for _, want := range []string{
		"Slide #1:",
		"  Layout: Title Only",
		"  Title: Summary: Key Results",
		"  Total shapes: 3",
		"    TEXT: 1",
		"    TABLE: 1",
		"    PICTURE: 1",
		`    Shape #1: Title 1 (TEXT) - "Summary: Key Results"`,
		"    Shape #2: Table 1 (TABLE)",
		"    Shape #3: Unnamed (PICTURE)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "summary slide with tables") {
		t.Error("nil grids must not trigger the table section")
	}
}

func TestWriteSlideMetadataWithGrids(t *testing.T) {
	slide, meta := sampleSlide()
	var buf strings.Builder
	WriteSlideMetadata(&buf, slide, meta, []models.Grid{{{"Item", "Count"}}})

	out := buf.String()
	if !strings.Contains(out, "This is a summary slide with tables.") {
		t.Errorf("missing summary marker:\n%s", out)
	}
	if !strings.Contains(out, "Table data from slide (Summary: Key Results):") {
		t.Errorf("missing table section heading:\n%s", out)
	}
	if !strings.Contains(out, "| Item | Count |") {
		t.Errorf("missing rendered grid:\n%s", out)
	}
}

func TestTextPreviewTruncates(t *testing.T) {
	long := strings.Repeat("x", 40)
	got := textPreview(long)
	if len([]rune(got)) != textPreviewLimit {
		t.Errorf("preview length = %d, want %d", len([]rune(got)), textPreviewLimit)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("preview %q lacks ellipsis", got)
	}
	if short := textPreview("short"); short != "short" {
		t.Errorf("short preview = %q", short)
	}
}

func TestWriteDeckHeader(t *testing.T) {
	var buf strings.Builder
	WriteDeckHeader(&buf, 4)
	out := buf.String()
	if !strings.Contains(out, "Presentation contains 4 slides") {
		t.Errorf("header output = %q", out)
	}
	if !strings.Contains(out, strings.Repeat("=", 50)) {
		t.Errorf("header missing rule line: %q", out)
	}
}
