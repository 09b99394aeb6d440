// Package models defines data structures for slide-deck extraction.
package models

import "strings"

// ShapeKind classifies a shape by its capability set. Every shape resolves to
// exactly one kind at load time, so downstream code switches on a closed set
// instead of probing capabilities repeatedly.
type ShapeKind string

const (
	// KindText is a shape carrying a text frame.
	KindText ShapeKind = "TEXT"
	// KindTable is a shape carrying a table.
	KindTable ShapeKind = "TABLE"
	// KindPicture is a picture shape.
	KindPicture ShapeKind = "PICTURE"
	// KindOther is any shape with no text, table, or picture capability.
	KindOther ShapeKind = "OTHER"
)

// Shape represents one visual element on a slide.
type Shape struct {
	// Index is the 0-based position of the shape in slide document order.
	Index int `json:"index"`
	// Name is the shape name from the container, if any.
	Name string `json:"name,omitempty"`
	// Kind is the resolved capability kind.
	Kind ShapeKind `json:"kind"`
	// IsTitle reports whether the shape is a title placeholder.
	IsTitle bool `json:"is_title,omitempty"`
	// Text is the shape's text content (paragraphs joined with newlines).
	// Empty for non-text shapes.
	Text string `json:"text,omitempty"`
	// Table holds the table content for KindTable shapes, nil otherwise.
	Table *Table `json:"table,omitempty"`
}

// HasText reports whether the shape carries a text frame.
func (s *Shape) HasText() bool {
	return s.Kind == KindText
}

// HasTable reports whether the shape carries a table.
func (s *Shape) HasTable() bool {
	return s.Kind == KindTable
}

// Table represents a table owned by a single table-bearing shape.
type Table struct {
	// Rows is the row count (>= 1).
	Rows int `json:"rows"`
	// Cols is the column count (>= 1).
	Cols int `json:"cols"`
	// Cells holds cell text in row-major order, Rows x Cols.
	Cells [][]string `json:"cells"`
}

// Grid is a row-major 2D array of cell text extracted from a table shape.
// Cell text has embedded newlines flattened to single spaces.
type Grid [][]string

// GridFromTable builds a Grid from a table, flattening newlines in each cell
// to single spaces.
func GridFromTable(t *Table) Grid {
	grid := make(Grid, t.Rows)
	for r := 0; r < t.Rows; r++ {
		row := make([]string, t.Cols)
		for c := 0; c < t.Cols; c++ {
			text := ""
			if r < len(t.Cells) && c < len(t.Cells[r]) {
				text = t.Cells[r][c]
			}
			row[c] = strings.ReplaceAll(text, "\n", " ")
		}
		grid[r] = row
	}
	return grid
}
