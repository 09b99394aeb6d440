package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// ErrClosed indicates an operation on a closed package.
var ErrClosed = errors.New("pptx: package is closed")

var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// SlidePart is one slide of the presentation: its part path, resolved layout
// name, and the shapes parsed from the part at open time.
//
// Shapes reflect the load-time parse. Text edits applied through the Package
// update the stored part bytes only; callers keeping a model of the deck are
// responsible for mirroring edits into it.
type SlidePart struct {
	// Path is the part path inside the archive (e.g. "ppt/slides/slide1.xml").
	Path string
	// LayoutName is the slide layout's display name, or "" when unresolvable.
	LayoutName string
	// Shapes holds the slide's shapes in document order.
	Shapes []*models.Shape
}

// Package is an in-memory PPTX archive with parsed slide structure.
type Package struct {
	partNames []string
	parts     map[string][]byte
	slides    []*SlidePart
	closed    bool
}

// Open reads the PPTX archive at path into memory, validates its structure,
// and parses every slide. The file is not held open after Open returns.
func Open(filename string) (*Package, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	p := &Package{parts: make(map[string][]byte)}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}
		p.partNames = append(p.partNames, f.Name)
		p.parts[f.Name] = data
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := p.resolveSlides(); err != nil {
		return nil, err
	}
	return p, nil
}

// validate checks that the required presentation parts exist.
func (p *Package) validate() error {
	required := []string{"[Content_Types].xml", "ppt/presentation.xml"}
	for _, name := range required {
		if _, ok := p.parts[name]; !ok {
			return fmt.Errorf("missing required part: %s", name)
		}
	}
	for name := range p.parts {
		if slidePartPattern.MatchString(name) {
			return nil
		}
	}
	return fmt.Errorf("no slides found in presentation")
}

// resolveSlides determines slide order from presentation.xml and its
// relationships, resolves each slide's layout name, and parses shapes.
func (p *Package) resolveSlides() error {
	paths := p.slidePathsFromPresentation()
	if len(paths) == 0 {
		paths = p.slidePathsByNumber()
	}

	for _, slidePath := range paths {
		raw, ok := p.parts[slidePath]
		if !ok {
			return fmt.Errorf("slide part not found: %s", slidePath)
		}
		shapes, err := parseShapes(raw)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", slidePath, err)
		}
		p.slides = append(p.slides, &SlidePart{
			Path:       slidePath,
			LayoutName: p.layoutName(slidePath),
			Shapes:     shapes,
		})
	}
	return nil
}

// slidePathsFromPresentation returns slide part paths in presentation order,
// resolved through the sldIdLst relationship ids. Returns nil when the
// presentation or its relationships cannot be read.
func (p *Package) slidePathsFromPresentation() []string {
	var pres presentationXML
	if err := xml.Unmarshal(p.parts["ppt/presentation.xml"], &pres); err != nil {
		return nil
	}
	if pres.SlideIDList == nil {
		return nil
	}
	rels := p.relationships("ppt/_rels/presentation.xml.rels")
	if rels == nil {
		return nil
	}
	byID := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		if strings.Contains(rel.Type, relTypeSlide) && !strings.Contains(rel.Type, relTypeSlideLayout) {
			byID[rel.ID] = resolveTarget("ppt", rel.Target)
		}
	}
	var paths []string
	for _, sid := range pres.SlideIDList.SlideID {
		target, ok := byID[sid.RID]
		if !ok {
			continue
		}
		if _, exists := p.parts[target]; exists {
			paths = append(paths, target)
		}
	}
	return paths
}

// slidePathsByNumber returns slide part paths sorted by slide number. Used as
// a fallback when presentation.xml carries no usable slide list.
func (p *Package) slidePathsByNumber() []string {
	var paths []string
	for name := range p.parts {
		if slidePartPattern.MatchString(name) {
			paths = append(paths, name)
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return slideNumber(paths[i]) < slideNumber(paths[j])
	})
	return paths
}

func slideNumber(partPath string) int {
	m := slidePartPattern.FindStringSubmatch(partPath)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// layoutName resolves a slide's layout display name through the slide's
// relationships. Returns "" when the layout cannot be resolved.
func (p *Package) layoutName(slidePath string) string {
	relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
	rels := p.relationships(relsPath)
	if rels == nil {
		return ""
	}
	for _, rel := range rels.Relationship {
		if !strings.Contains(rel.Type, relTypeSlideLayout) {
			continue
		}
		layoutPath := resolveTarget(path.Dir(slidePath), rel.Target)
		data, ok := p.parts[layoutPath]
		if !ok {
			return ""
		}
		var layout layoutXML
		if err := xml.Unmarshal(data, &layout); err != nil {
			return ""
		}
		return layout.CSld.Name
	}
	return ""
}

// relationships parses a .rels part, or returns nil when absent or invalid.
func (p *Package) relationships(relsPath string) *relationshipsXML {
	data, ok := p.parts[relsPath]
	if !ok {
		return nil
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil
	}
	return &rels
}

// resolveTarget resolves a relationship target against the directory of the
// part owning the relationship. Targets may be relative ("../slideLayouts/x")
// or package-absolute ("/ppt/slides/x").
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Clean(path.Join(baseDir, target))
}

// SlideCount returns the number of slides in the presentation.
func (p *Package) SlideCount() int {
	return len(p.slides)
}

// Slide returns the slide part at the given 0-based index.
func (p *Package) Slide(index int) (*SlidePart, error) {
	if len(p.slides) == 0 {
		return nil, fmt.Errorf("slide index %d out of range (presentation has no slides)", index)
	}
	if index < 0 || index >= len(p.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(p.slides)-1)
	}
	return p.slides[index], nil
}

// Slides returns all slide parts in presentation order.
func (p *Package) Slides() []*SlidePart {
	return p.slides
}

// Save writes the full archive, including all prior edits, to filename.
// Every part is written in its original order; this is always a complete
// rewrite, never an incremental update.
func (p *Package) Save(filename string) error {
	if p.closed {
		return ErrClosed
	}
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	zw := zip.NewWriter(out)
	for _, name := range p.partNames {
		w, err := zw.Create(name)
		if err != nil {
			zw.Close()
			out.Close()
			return fmt.Errorf("writing part %s: %w", name, err)
		}
		if _, err := w.Write(p.parts[name]); err != nil {
			zw.Close()
			out.Close()
			return fmt.Errorf("writing part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return out.Close()
}

// Close releases the package. Further edits and saves fail with ErrClosed.
// Close is idempotent.
func (p *Package) Close() error {
	p.closed = true
	return nil
}
