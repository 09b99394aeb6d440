package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

func TestWriteGrid(t *testing.T) {
	var buf strings.Builder
	WriteGrid(&buf, models.Grid{
		{"Item", "Status"},
		{"A", "done"},
	})

	want := strings.Join([]string{
		"  +------+--------+",
		"  | Item | Status |",
		"  +------+--------+",
		"  | A    | done   |",
		"  +------+--------+",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("WriteGrid output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteGridWideRunes(t *testing.T) {
	// CJK runes occupy two display columns; the border must still line up.
	var buf strings.Builder
	WriteGrid(&buf, models.Grid{
		{"名前", "x"},
		{"ab", "y"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if got := runewidth.StringWidth(line); got != width {
			t.Errorf("line %d display width %d, want %d: %q", i, got, width, line)
		}
	}
}

func TestWriteGridEmpty(t *testing.T) {
	var buf strings.Builder
	WriteGrid(&buf, models.Grid{})
	if buf.String() != "  Empty table\n" {
		t.Errorf("WriteGrid output = %q", buf.String())
	}
}

func TestWriteGrids(t *testing.T) {
	var buf strings.Builder
	WriteGrids(&buf, []models.Grid{
		{{"a"}},
		{{"b"}},
	})

	out := buf.String()
	if !strings.Contains(out, "Table 1:") || !strings.Contains(out, "Table 2:") {
		t.Errorf("missing table numbering:\n%s", out)
	}
	if strings.Index(out, "Table 1:") > strings.Index(out, "Table 2:") {
		t.Error("grids rendered out of order")
	}
}
