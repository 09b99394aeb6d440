package pptx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Edit errors. ErrCellIndex is the native index fault surfaced when a cell
// address exists in no row/column of the stored table.
var (
	ErrNoTextFrame = errors.New("pptx: shape has no text frame")
	ErrNoTable     = errors.New("pptx: slide has no table")
	ErrCellIndex   = errors.New("pptx: table cell index out of range")
)

var xmlTextEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// paragraphXML renders a single-run paragraph carrying the given text. Slides
// conventionally bind the DrawingML namespace to the "a" prefix; edits rely on
// that binding the same way the rest of the OOXML tooling here does.
func paragraphXML(text string) []byte {
	return []byte("<a:p><a:r><a:t>" + xmlTextEscaper.Replace(text) + "</a:t></a:r></a:p>")
}

// SetShapeText replaces the entire text of the shape's text frame with a
// single paragraph. The shape is addressed by its document-order index on the
// slide; it must be a text-bearing shape.
func (p *Package) SetShapeText(slide, shape int, text string) error {
	return p.editShape(slide, shape, func(raw []byte, start, end int64) ([]byte, error) {
		ps, pe, err := paragraphListSpan(raw[start:end])
		if err != nil {
			return nil, err
		}
		return splice(raw, start+ps, start+pe, paragraphXML(text)), nil
	})
}

// AppendParagraph appends a paragraph to the shape's text frame, leaving the
// existing paragraphs in place.
func (p *Package) AppendParagraph(slide, shape int, text string) error {
	return p.editShape(slide, shape, func(raw []byte, start, end int64) ([]byte, error) {
		_, pe, err := paragraphListSpan(raw[start:end])
		if err != nil {
			return nil, err
		}
		return splice(raw, start+pe, start+pe, paragraphXML(text)), nil
	})
}

// SetTableCell replaces the text of cell (row, col) in the first table on the
// slide. Returns ErrNoTable when the slide has no table part and ErrCellIndex
// when the stored table has no such row or column.
func (p *Package) SetTableCell(slide, row, col int, text string) error {
	if p.closed {
		return ErrClosed
	}
	part, err := p.Slide(slide)
	if err != nil {
		return err
	}
	raw := p.parts[part.Path]
	start, end, err := firstTableCellSpan(raw, row, col)
	if err != nil {
		return err
	}
	ps, pe, err := paragraphListSpan(raw[start:end])
	if err != nil {
		return err
	}
	p.parts[part.Path] = splice(raw, start+ps, start+pe, paragraphXML(text))
	return nil
}

// editShape locates the byte span of the addressed shape and stores the
// transformed slide part.
func (p *Package) editShape(slide, shape int, transform func(raw []byte, start, end int64) ([]byte, error)) error {
	if p.closed {
		return ErrClosed
	}
	part, err := p.Slide(slide)
	if err != nil {
		return err
	}
	raw := p.parts[part.Path]
	start, end, err := topShapeSpan(raw, shape)
	if err != nil {
		return err
	}
	edited, err := transform(raw, start, end)
	if err != nil {
		return err
	}
	p.parts[part.Path] = edited
	return nil
}

func splice(raw []byte, start, end int64, repl []byte) []byte {
	out := make([]byte, 0, int64(len(raw))-(end-start)+int64(len(repl)))
	out = append(out, raw[:start]...)
	out = append(out, repl...)
	out = append(out, raw[end:]...)
	return out
}

// topShapeSpan returns the [start, end) byte span of the nth direct child of
// p:spTree, counting the same elements parseShapes counts.
func topShapeSpan(raw []byte, ordinal int) (int64, int64, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	depth := 0
	spTreeDepth := -1
	count := 0

	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, fmt.Errorf("tokenizing slide: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if spTreeDepth == -1 {
				if t.Name.Local == "spTree" {
					spTreeDepth = depth
				}
				continue
			}
			if depth != spTreeDepth+1 {
				continue
			}
			if !isShapeElement(t.Name.Local) {
				if err := dec.Skip(); err != nil {
					return 0, 0, err
				}
				depth--
				continue
			}
			if count == ordinal {
				if err := dec.Skip(); err != nil {
					return 0, 0, err
				}
				return before, dec.InputOffset(), nil
			}
			count++
			if err := dec.Skip(); err != nil {
				return 0, 0, err
			}
			depth--
		case xml.EndElement:
			depth--
		}
	}
	return 0, 0, fmt.Errorf("shape index %d out of range (%d shapes)", ordinal, count)
}

// paragraphListSpan returns the span of the paragraph list inside the first
// text frame of the fragment: from the start of the first a:p element to the
// start of the closing txBody tag. When the frame holds no paragraphs the
// span is empty, positioned for insertion.
func paragraphListSpan(frag []byte) (int64, int64, error) {
	dec := xml.NewDecoder(bytes.NewReader(frag))
	depth := 0
	txDepth := -1
	var pStart int64 = -1

	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, fmt.Errorf("tokenizing text frame: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if txDepth == -1 {
				if t.Name.Local == "txBody" {
					txDepth = depth
				}
				continue
			}
			if depth == txDepth+1 && t.Name.Local == "p" && pStart < 0 {
				pStart = before
			}
		case xml.EndElement:
			if depth == txDepth && t.Name.Local == "txBody" {
				if pStart < 0 {
					pStart = before
				}
				return pStart, before, nil
			}
			depth--
		}
	}
	return 0, 0, ErrNoTextFrame
}

// firstTableCellSpan returns the span of the a:tc element at (row, col) in
// the first table of the slide.
func firstTableCellSpan(raw []byte, row, col int) (int64, int64, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	depth := 0
	tblDepth := -1
	inTargetRow := false
	rowCount := 0
	colCount := 0

	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, fmt.Errorf("tokenizing slide: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if tblDepth == -1 {
				if t.Name.Local == "tbl" {
					tblDepth = depth
				}
				continue
			}
			if depth == tblDepth+1 && t.Name.Local == "tr" {
				if rowCount == row {
					inTargetRow = true
				}
				rowCount++
				continue
			}
			if inTargetRow && depth == tblDepth+2 && t.Name.Local == "tc" {
				if colCount == col {
					if err := dec.Skip(); err != nil {
						return 0, 0, err
					}
					return before, dec.InputOffset(), nil
				}
				colCount++
			}
		case xml.EndElement:
			if tblDepth != -1 && depth == tblDepth {
				// Table ended before the requested row was reached.
				return 0, 0, ErrCellIndex
			}
			if inTargetRow && depth == tblDepth+1 {
				// Target row ended before the requested column was reached.
				return 0, 0, ErrCellIndex
			}
			depth--
		}
	}
	return 0, 0, ErrNoTable
}
