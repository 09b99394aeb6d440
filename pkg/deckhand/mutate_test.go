package deckhand

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
	"github.com/slidewright/deckhand/pkg/deckhand/pptx"
	"github.com/slidewright/deckhand/pkg/deckhand/pptx/pptxtest"
)

func strp(s string) *string { return &s }

// reopenDeck saves the session and opens a fresh one over the written file.
func reopenDeck(t *testing.T, d *Deck, path string) *Deck {
	t.Helper()
	if _, err := d.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	reopened, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("reopening saved deck: %v", err)
	}
	t.Cleanup(func() { reopened.Close() })
	return reopened
}

func TestSetTableCell(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)

	if err := d.SetTableCell(2, 1, 1, "42"); err != nil {
		t.Fatalf("SetTableCell failed: %v", err)
	}

	grids := d.SummaryTable(2)
	if grids[0][1][1] != "42" {
		t.Errorf("cached cell = %q, want %q", grids[0][1][1], "42")
	}
	if grids[0][1][0] != "Bugs" {
		t.Errorf("neighboring cell = %q, disturbed by edit", grids[0][1][0])
	}

	reopened := reopenDeck(t, d, d.path+".out.pptx")
	fresh, err := reopened.ExtractTables(2)
	if err != nil {
		t.Fatalf("ExtractTables on reopened deck: %v", err)
	}
	if fresh[0][1][1] != "42" {
		t.Errorf("persisted cell = %q, want %q", fresh[0][1][1], "42")
	}
}

func TestSetTableCellOutOfRange(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)

	err := d.SetTableCell(2, 9, 0, "x")
	var cellErr *CellEditError
	if !errors.As(err, &cellErr) {
		t.Fatalf("SetTableCell = %v, want *CellEditError", err)
	}
	if cellErr.Partial {
		t.Error("bounds failure must not be marked partial")
	}
	if cellErr.Slide != 2 || cellErr.Row != 9 || cellErr.Col != 0 {
		t.Errorf("error carries wrong address: %+v", cellErr)
	}

	// The rejected write must leave the cached grid untouched.
	grids := d.SummaryTable(2)
	if grids[0][1][1] != "7" {
		t.Errorf("cell = %q after rejected write, want %q", grids[0][1][1], "7")
	}
}

func TestSetTableCellPartialWriteFault(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)

	grids, err := d.ExtractTables(2)
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	// Stale cache: the cached grid gains a row the container never had, so
	// the bounds check passes but the native write faults after the grid is
	// already mutated.
	stale := append(grids[0], []string{"Extra", "0"})
	d.tableCache[2] = []models.Grid{stale}

	err = d.SetTableCell(2, 2, 1, "9")
	var cellErr *CellEditError
	if !errors.As(err, &cellErr) {
		t.Fatalf("SetTableCell = %v, want *CellEditError", err)
	}
	if !cellErr.Partial {
		t.Error("native fault after the grid update must be marked partial")
	}
	if !errors.Is(err, pptx.ErrCellIndex) {
		t.Errorf("cause = %v, want ErrCellIndex in the chain", cellErr.Err)
	}
	if stale[2][1] != "9" {
		t.Errorf("grid cell = %q, partial failure must leave the grid mutated", stale[2][1])
	}
}

func TestSetTableCellNoTables(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)
	if err := d.SetTableCell(0, 0, 0, "x"); !errors.Is(err, ErrNoTables) {
		t.Errorf("SetTableCell on tableless slide = %v, want ErrNoTables", err)
	}
}

func TestSetTitleSlide(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)

	if err := d.SetTitleSlide(0, strp("Launch Plan"), strp("By the team")); err != nil {
		t.Fatalf("SetTitleSlide failed: %v", err)
	}

	slide, _ := d.Slide(0)
	shapes := slide.TextShapes()
	if shapes[0].Text != "Launch Plan" || shapes[1].Text != "By the team" {
		t.Errorf("model texts = %q, %q", shapes[0].Text, shapes[1].Text)
	}

	reopened := reopenDeck(t, d, d.path+".out.pptx")
	meta, _ := reopened.Metadata(0)
	if meta.Title != "Launch Plan" {
		t.Errorf("persisted title = %q, want %q", meta.Title, "Launch Plan")
	}
}

func TestSetTitleSlideAppendsToSingleShape(t *testing.T) {
	d := newTestDeck(t, pptxtest.Slide{Layout: "Title Slide", Shapes: []pptxtest.Shape{
		pptxtest.TitleShape("placeholder"),
	}})

	if err := d.SetTitleSlide(0, strp("Launch Plan"), strp("By the team")); err != nil {
		t.Fatalf("SetTitleSlide failed: %v", err)
	}

	want := "Launch Plan\n\n\nBy the team"
	slide, _ := d.Slide(0)
	if got := slide.Shapes[0].Text; got != want {
		t.Errorf("model text = %q, want %q", got, want)
	}

	reopened := reopenDeck(t, d, d.path+".out.pptx")
	fresh, _ := reopened.Slide(0)
	if got := fresh.Shapes[0].Text; got != want {
		t.Errorf("persisted text = %q, want %q", got, want)
	}
}

func TestSetTitleSlideDefaults(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)

	if err := d.SetTitleSlide(0, nil, nil); err != nil {
		t.Fatalf("SetTitleSlide failed: %v", err)
	}

	slide, _ := d.Slide(0)
	shapes := slide.TextShapes()
	wantDate := time.Now().Format("01-02-2006")
	if !strings.HasPrefix(shapes[0].Text, "Weekly Update ") || !strings.Contains(shapes[0].Text, wantDate) {
		t.Errorf("default title = %q", shapes[0].Text)
	}
	if shapes[1].Text != "Updated automatically" {
		t.Errorf("default attribution = %q", shapes[1].Text)
	}
}

func TestSetTitleSlideWithoutTextShapes(t *testing.T) {
	d := newTestDeck(t, pptxtest.Slide{Layout: "Blank", Shapes: []pptxtest.Shape{
		pptxtest.Picture(),
	}})

	// Missing shape slots are logged, not fatal.
	if err := d.SetTitleSlide(0, strp("x"), nil); err != nil {
		t.Errorf("SetTitleSlide = %v, want nil", err)
	}
}

func TestSetSectionSummary(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)
	d.Classify()

	err := d.SetSectionSummary(1, strp("Part One"), strp("Now with more detail"))
	if err != nil {
		t.Fatalf("SetSectionSummary failed: %v", err)
	}

	entry, _ := d.SectionSummary(1)
	if entry.Title != "Part One" || entry.Summary != "Now with more detail" {
		t.Errorf("cached entry = %+v", entry)
	}

	reopened := reopenDeck(t, d, d.path+".out.pptx")
	fresh, _ := reopened.Slide(1)
	if fresh.Shapes[0].Text != "Part One" {
		t.Errorf("persisted title = %q", fresh.Shapes[0].Text)
	}
	if fresh.Shapes[1].Text != "Now with more detail" {
		t.Errorf("persisted summary = %q", fresh.Shapes[1].Text)
	}
}

func TestSetSectionSummaryTitleOnly(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)
	d.Classify()

	if err := d.SetSectionSummary(1, strp("Renamed"), nil); err != nil {
		t.Fatalf("SetSectionSummary failed: %v", err)
	}
	entry, _ := d.SectionSummary(1)
	if entry.Title != "Renamed" {
		t.Errorf("Title = %q, want %q", entry.Title, "Renamed")
	}
	if entry.Summary != "This section covers X" {
		t.Errorf("Summary = %q, must be untouched", entry.Summary)
	}
}

func TestSetSectionSummaryUnclassified(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)
	d.Classify()

	if err := d.SetSectionSummary(0, strp("x"), nil); !errors.Is(err, ErrNoSection) {
		t.Errorf("SetSectionSummary(0) = %v, want ErrNoSection", err)
	}
}

func TestMutationsAfterClose(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)
	d.Classify()
	d.Close()

	if err := d.SetTitleSlide(0, strp("x"), nil); !errors.Is(err, ErrClosed) {
		t.Errorf("SetTitleSlide = %v, want ErrClosed", err)
	}
	if err := d.SetTableCell(2, 0, 0, "x"); !errors.Is(err, ErrClosed) {
		t.Errorf("SetTableCell = %v, want ErrClosed", err)
	}
	if err := d.SetSectionSummary(1, strp("x"), nil); !errors.Is(err, ErrClosed) {
		t.Errorf("SetSectionSummary = %v, want ErrClosed", err)
	}
}
