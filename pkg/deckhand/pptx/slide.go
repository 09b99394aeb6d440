package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// spTree children that are shape-tree properties rather than shapes.
func isShapeElement(local string) bool {
	switch local {
	case "nvGrpSpPr", "grpSpPr":
		return false
	}
	return true
}

// parseShapes walks the slide's shape tree and returns one Shape per direct
// child of p:spTree, in document order. Document order is what gives shape
// indices their meaning (position-addressed edits), so the walk is token
// based rather than a single struct unmarshal, which would regroup shapes
// by element name.
func parseShapes(raw []byte) ([]*models.Shape, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	var shapes []*models.Shape
	depth := 0
	spTreeDepth := -1

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenizing slide: %w", err)
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
					return nil, fmt.Errorf("skipping %s: %w", t.Name.Local, err)
				}
				depth--
				continue
			}
			shape, err := decodeShape(dec, &t, len(shapes))
			if err != nil {
				return nil, err
			}
			depth--
			shapes = append(shapes, shape)
		case xml.EndElement:
			depth--
		}
	}
	return shapes, nil
}

// decodeShape consumes one spTree child element and resolves it to a Shape
// with its capability kind fixed.
func decodeShape(dec *xml.Decoder, start *xml.StartElement, index int) (*models.Shape, error) {
	shape := &models.Shape{Index: index, Kind: models.KindOther}

	switch start.Name.Local {
	case "sp":
		var sp spXML
		if err := dec.DecodeElement(&sp, start); err != nil {
			return nil, fmt.Errorf("decoding shape: %w", err)
		}
		shape.Name = sp.NvSpPr.CNvPr.Name
		if ph := sp.NvSpPr.NvPr.Ph; ph != nil {
			shape.IsTitle = ph.Type == "title" || ph.Type == "ctrTitle"
		}
		if sp.TxBody != nil {
			shape.Kind = models.KindText
			shape.Text = textBodyText(sp.TxBody)
		}
	case "graphicFrame":
		var gf graphicFrameXML
		if err := dec.DecodeElement(&gf, start); err != nil {
			return nil, fmt.Errorf("decoding graphic frame: %w", err)
		}
		shape.Name = gf.NvGraphicFramePr.CNvPr.Name
		if tbl := gf.Graphic.GraphicData.Tbl; tbl != nil {
			shape.Kind = models.KindTable
			shape.Table = tableFromXML(tbl)
		}
	case "pic":
		var pic picXML
		if err := dec.DecodeElement(&pic, start); err != nil {
			return nil, fmt.Errorf("decoding picture: %w", err)
		}
		shape.Name = pic.NvPicPr.CNvPr.Name
		shape.Kind = models.KindPicture
	default:
		// Connectors, groups, embedded content: no capability exposed.
		if err := dec.Skip(); err != nil {
			return nil, fmt.Errorf("skipping %s: %w", start.Name.Local, err)
		}
	}
	return shape, nil
}

// textBodyText joins a text body's paragraphs with newlines. In-paragraph
// line breaks already arrive as newlines from the paragraph decoder.
func textBodyText(body *txBodyXML) string {
	paras := make([]string, 0, len(body.P))
	for _, p := range body.P {
		paras = append(paras, p.Text)
	}
	return strings.Join(paras, "\n")
}

// tableFromXML converts an a:tbl into a row-major cell-text table. The column
// count comes from the table grid, falling back to the widest row.
func tableFromXML(tbl *tblXML) *models.Table {
	cols := len(tbl.TblGrid.GridCol)
	for _, tr := range tbl.Tr {
		if len(tr.Tc) > cols {
			cols = len(tr.Tc)
		}
	}
	t := &models.Table{Rows: len(tbl.Tr), Cols: cols}
	t.Cells = make([][]string, len(tbl.Tr))
	for r, tr := range tbl.Tr {
		row := make([]string, cols)
		for c, tc := range tr.Tc {
			if tc.TxBody != nil {
				row[c] = textBodyText(tc.TxBody)
			}
		}
		t.Cells[r] = row
	}
	return t
}
