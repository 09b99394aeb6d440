package deckhand

import (
	"errors"
	"reflect"
	"testing"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
	"github.com/slidewright/deckhand/pkg/deckhand/pptx/pptxtest"
)

func TestExtractTables(t *testing.T) {
	d := newTestDeck(t, pptxtest.Slide{Layout: "Blank", Shapes: []pptxtest.Shape{
		pptxtest.Text("heading"),
		pptxtest.Table([][]string{{"Item", "Status"}, {"A", "done"}}),
		pptxtest.Table([][]string{{"only"}}),
	}})

	grids, err := d.ExtractTables(0)
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	if len(grids) != 2 {
		t.Fatalf("got %d grids, want 2", len(grids))
	}
	want := models.Grid{{"Item", "Status"}, {"A", "done"}}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("grid 0 = %v, want %v", grids[0], want)
	}
	if !reflect.DeepEqual(grids[1], models.Grid{{"only"}}) {
		t.Errorf("grid 1 = %v", grids[1])
	}
}

func TestExtractTablesFlattensCellNewlines(t *testing.T) {
	d := newTestDeck(t, pptxtest.Slide{Layout: "Blank", Shapes: []pptxtest.Shape{
		pptxtest.Table([][]string{{"line one\nline two"}}),
	}})

	grids, err := d.ExtractTables(0)
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	if got := grids[0][0][0]; got != "line one line two" {
		t.Errorf("cell = %q, want newline flattened to space", got)
	}
}

func TestExtractTablesSkipsCacheWhenEmpty(t *testing.T) {
	d := newTestDeck(t, pptxtest.Slide{Layout: "Blank", Shapes: []pptxtest.Shape{
		pptxtest.Text("no tables here"),
	}})

	grids, err := d.ExtractTables(0)
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	if len(grids) != 0 {
		t.Fatalf("got %d grids, want 0", len(grids))
	}
	if _, ok := d.tableCache[0]; ok {
		t.Error("empty extraction must not create a cache entry")
	}
}

func TestExtractTablesIsIdempotent(t *testing.T) {
	d := newTestDeck(t, pptxtest.Slide{Layout: "Blank", Shapes: []pptxtest.Shape{
		pptxtest.Table([][]string{{"a", "b"}}),
	}})

	first, err := d.ExtractTables(0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := d.ExtractTables(0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat extraction diverged: %v vs %v", first, second)
	}
}

func TestSummaryTableUsesCache(t *testing.T) {
	d := newTestDeck(t, pptxtest.Slide{Layout: "Title Only", Shapes: []pptxtest.Shape{
		pptxtest.TitleShape("Summary: metrics"),
		pptxtest.Table([][]string{{"Metric", "Value"}, {"Uptime", "99.9"}}),
	}})

	grids := d.SummaryTable(0)
	if grids == nil {
		t.Fatal("SummaryTable returned nil for a table slide")
	}
	// Scribble on the cached grid, then look it up again: the same backing
	// data must come back.
	grids[0][1][1] = "scribbled"
	again := d.SummaryTable(0)
	if again[0][1][1] != "scribbled" {
		t.Error("second lookup did not serve the cached grid")
	}
}

func TestSummaryTableInvalidIndex(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)
	if grids := d.SummaryTable(99); grids != nil {
		t.Errorf("SummaryTable(99) = %v, want nil", grids)
	}
}

func TestSummaryTableNoTables(t *testing.T) {
	d := newTestDeck(t, pptxtest.Slide{Layout: "Blank", Shapes: []pptxtest.Shape{
		pptxtest.Text("tableless"),
	}})
	if grids := d.SummaryTable(0); grids != nil {
		t.Errorf("SummaryTable = %v, want nil", grids)
	}
}

func TestExtractTablesAfterClose(t *testing.T) {
	d := newTestDeck(t, reviewDeck()...)
	d.Close()
	if _, err := d.ExtractTables(2); !errors.Is(err, ErrClosed) {
		t.Errorf("ExtractTables after Close = %v, want ErrClosed", err)
	}
}
