// Package pptx reads and edits PPTX (Office Open XML Presentation) containers.
//
// A presentation is a ZIP archive of XML parts. This package holds every part
// in memory for the lifetime of a Package, parses slide shape trees in
// document order, applies targeted text edits by splicing the stored slide
// XML, and writes the whole archive back out on save.
package pptx

import (
	"encoding/xml"
	"strings"
)

// relationship type substrings used when resolving part targets.
const (
	relTypeSlide       = "relationships/slide"
	relTypeSlideLayout = "relationships/slideLayout"
)

// presentationXML represents the ppt/presentation.xml part.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIDList *slideIDListXML `xml:"sldIdLst"`
}

type slideIDListXML struct {
	SlideID []slideIDXML `xml:"sldId"`
}

type slideIDXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// relationshipsXML represents a .rels part.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// layoutXML represents a ppt/slideLayouts/slideLayout*.xml part. Only the
// layout name is of interest.
type layoutXML struct {
	XMLName xml.Name     `xml:"sldLayout"`
	CSld    layoutCSldXML `xml:"cSld"`
}

type layoutCSldXML struct {
	Name string `xml:"name,attr"`
}

// spXML represents a p:sp shape element.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

// phXML carries placeholder info; type "title" or "ctrTitle" marks a title
// placeholder.
type phXML struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

// txBodyXML represents text body content (shape or table cell).
type txBodyXML struct {
	P []pXML `xml:"p"`
}

// pXML holds one paragraph's resolved text. Runs, fields, and line breaks
// interleave within a paragraph, so decoding walks the tokens in order; a
// struct decoder would regroup the children by name and drop a:br entirely.
type pXML struct {
	Text string
}

// UnmarshalXML concatenates run and field text in document order and turns
// each a:br into a newline.
func (p *pXML) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			switch t.Name.Local {
			case "r", "fld":
				var run rXML
				if err := dec.DecodeElement(&run, &t); err != nil {
					return err
				}
				sb.WriteString(run.T)
			case "br":
				sb.WriteString("\n")
				if err := dec.Skip(); err != nil {
					return err
				}
			default:
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				p.Text = sb.String()
				return nil
			}
			depth--
		}
	}
}

// rXML carries the text of a run or field child.
type rXML struct {
	T string `xml:"t"`
}

// picXML represents a p:pic picture element.
type picXML struct {
	NvPicPr nvPicPrXML `xml:"nvPicPr"`
}

type nvPicPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

// graphicFrameXML represents a p:graphicFrame (tables, charts).
type graphicFrameXML struct {
	NvGraphicFramePr nvGraphicFramePrXML `xml:"nvGraphicFramePr"`
	Graphic          graphicXML          `xml:"graphic"`
}

type nvGraphicFramePrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type graphicXML struct {
	GraphicData graphicDataXML `xml:"graphicData"`
}

type graphicDataXML struct {
	URI string  `xml:"uri,attr"`
	Tbl *tblXML `xml:"tbl"`
}

// tblXML represents an a:tbl table.
type tblXML struct {
	TblGrid tblGridXML `xml:"tblGrid"`
	Tr      []trXML    `xml:"tr"`
}

type tblGridXML struct {
	GridCol []gridColXML `xml:"gridCol"`
}

type gridColXML struct {
	W string `xml:"w,attr"`
}

type trXML struct {
	Tc []tcXML `xml:"tc"`
}

type tcXML struct {
	TxBody *txBodyXML `xml:"txBody"`
}
