// Package pptxtest builds minimal but structurally complete PPTX archives
// in memory for tests: presentation part, relationships, slide layouts, and
// slides with text, table, and picture shapes.
package pptxtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Shape describes one shape to place on a fixture slide.
type Shape struct {
	// Kind is one of "text", "table", "picture", "other".
	Kind string
	// Name is the shape name attribute.
	Name string
	// Title marks a text shape as a title placeholder.
	Title bool
	// Paragraphs is the text content for text shapes, one entry per paragraph.
	Paragraphs []string
	// Cells is the row-major cell text for table shapes.
	Cells [][]string
}

// Text returns a plain text shape with the given paragraphs.
func Text(paragraphs ...string) Shape {
	return Shape{Kind: "text", Name: "TextBox", Paragraphs: paragraphs}
}

// TitleShape returns a title-placeholder text shape.
func TitleShape(text string) Shape {
	return Shape{Kind: "text", Name: "Title 1", Title: true, Paragraphs: []string{text}}
}

// Table returns a table shape with the given row-major cells.
func Table(cells [][]string) Shape {
	return Shape{Kind: "table", Name: "Table 1", Cells: cells}
}

// Picture returns a picture shape.
func Picture() Shape {
	return Shape{Kind: "picture", Name: "Picture 1"}
}

// Other returns a shape with no text, table, or picture capability.
func Other() Shape {
	return Shape{Kind: "other", Name: "Connector 1"}
}

// Slide describes one fixture slide: its layout name and ordered shapes.
type Slide struct {
	Layout string
	Shapes []Shape
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// Build returns the bytes of a PPTX archive containing the given slides in
// order.
func Build(slides ...Slide) []byte {
	parts := buildParts(slides)
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, _ := zw.Create(part.name)
		_, _ = w.Write([]byte(part.data))
	}
	_ = zw.Close()
	return buf.Bytes()
}

// WriteFile writes a PPTX archive containing the given slides to path.
func WriteFile(path string, slides ...Slide) error {
	return os.WriteFile(path, Build(slides...), 0o644)
}

type part struct {
	name string
	data string
}

func buildParts(slides []Slide) []part {
	layouts := make(map[string]int) // layout name -> layout number
	var layoutOrder []string
	for _, s := range slides {
		if s.Layout != "" {
			if _, ok := layouts[s.Layout]; !ok {
				layouts[s.Layout] = len(layouts) + 1
				layoutOrder = append(layoutOrder, s.Layout)
			}
		}
	}

	parts := []part{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", presentationXML(len(slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(slides))},
	}
	for _, name := range layoutOrder {
		parts = append(parts, part{
			fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", layouts[name]),
			layoutXML(name),
		})
	}
	for i, s := range slides {
		parts = append(parts, part{
			fmt.Sprintf("ppt/slides/slide%d.xml", i+1),
			slideXML(s),
		})
		if s.Layout != "" {
			parts = append(parts, part{
				fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1),
				slideRelsXML(layouts[s.Layout]),
			})
		}
	}
	return parts
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/></Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/></Relationships>`

func presentationXML(slideCount int) string {
	var ids strings.Builder
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+1)
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldIdLst>` + ids.String() + `</p:sldIdLst></p:presentation>`
}

func presentationRelsXML(slideCount int) string {
	var rels strings.Builder
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+1, i+1)
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + rels.String() + `</Relationships>`
}

func layoutXML(name string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld name="` + textEscaper.Replace(name) + `"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld></p:sldLayout>`
}

func slideRelsXML(layoutNum int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout%d.xml"/></Relationships>`, layoutNum)
}

func slideXML(s Slide) string {
	var shapes strings.Builder
	id := 2
	for _, sh := range s.Shapes {
		switch sh.Kind {
		case "text":
			shapes.WriteString(textShapeXML(sh, id))
		case "table":
			shapes.WriteString(tableShapeXML(sh, id))
		case "picture":
			shapes.WriteString(pictureShapeXML(sh, id))
		default:
			shapes.WriteString(otherShapeXML(sh, id))
		}
		id++
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` + shapes.String() + `</p:spTree></p:cSld></p:sld>`
}

func textShapeXML(sh Shape, id int) string {
	ph := ""
	if sh.Title {
		ph = `<p:ph type="title"/>`
	}
	var paras strings.Builder
	for _, text := range sh.Paragraphs {
		paras.WriteString(`<a:p>` + runsXML(text) + `</a:p>`)
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr>%s</p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/>%s</p:txBody></p:sp>`,
		id, textEscaper.Replace(sh.Name), ph, paras.String())
}

func tableShapeXML(sh Shape, id int) string {
	cols := 0
	for _, row := range sh.Cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	var tbl strings.Builder
	tbl.WriteString(`<a:tbl><a:tblGrid>`)
	for c := 0; c < cols; c++ {
		tbl.WriteString(`<a:gridCol w="914400"/>`)
	}
	tbl.WriteString(`</a:tblGrid>`)
	for _, row := range sh.Cells {
		tbl.WriteString(`<a:tr h="370840">`)
		for _, cell := range row {
			tbl.WriteString(`<a:tc><a:txBody><a:bodyPr/><a:p>` +
				runsXML(cell) + `</a:p></a:txBody><a:tcPr/></a:tc>`)
		}
		tbl.WriteString(`</a:tr>`)
	}
	tbl.WriteString(`</a:tbl>`)
	return fmt.Sprintf(`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="%s"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr><p:xfrm><a:off x="0" y="0"/><a:ext cx="914400" cy="370840"/></p:xfrm><a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">%s</a:graphicData></a:graphic></p:graphicFrame>`,
		id, textEscaper.Replace(sh.Name), tbl.String())
}

// runsXML renders paragraph text as runs, storing embedded newlines as a:br
// elements the way PowerPoint stores soft line breaks.
func runsXML(text string) string {
	var sb strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString(`<a:br/>`)
		}
		if line != "" {
			sb.WriteString(`<a:r><a:t>` + textEscaper.Replace(line) + `</a:t></a:r>`)
		}
	}
	return sb.String()
}

func pictureShapeXML(sh Shape, id int) string {
	return fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="%s"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr><p:blipFill><a:blip/></p:blipFill><p:spPr/></p:pic>`,
		id, textEscaper.Replace(sh.Name))
}

func otherShapeXML(sh Shape, id int) string {
	return fmt.Sprintf(`<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="%d" name="%s"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr><p:spPr/></p:cxnSp>`,
		id, textEscaper.Replace(sh.Name))
}
