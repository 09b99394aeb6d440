package models

// Slide represents one page of the deck as an ordered collection of shapes.
type Slide struct {
	// Index is the 0-based slide position, stable for the session's lifetime.
	Index int `json:"index"`
	// LayoutName is the name of the layout the slide is based on.
	// "Unknown" when the container reports none.
	LayoutName string `json:"layout_name"`
	// Shapes holds the slide's shapes in document order.
	Shapes []*Shape `json:"shapes"`
}

// FirstTable returns the first table-bearing shape's table, or nil when the
// slide has no table.
func (s *Slide) FirstTable() *Table {
	for _, sh := range s.Shapes {
		if sh.HasTable() {
			return sh.Table
		}
	}
	return nil
}

// TextShapes returns the slide's text-bearing shapes in document order.
func (s *Slide) TextShapes() []*Shape {
	var out []*Shape
	for _, sh := range s.Shapes {
		if sh.HasText() {
			out = append(out, sh)
		}
	}
	return out
}
