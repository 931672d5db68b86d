package model

import (
	"fmt"
	"strings"
)

// Document is a complete presentation: an ordered sequence of slides on a
// fixed page size. A Document is never modified after NewDocument returns.
type Document struct {
	Metadata Metadata
	size     PageSize
	slides   []Slide
}

// Metadata contains document-level information
type Metadata struct {
	Title   string
	Creator string
}

// NewDocument creates a document from slides in presentation order.
func NewDocument(size PageSize, meta Metadata, slides ...Slide) *Document {
	d := &Document{Metadata: meta, size: size}
	if len(slides) > 0 {
		d.slides = append([]Slide(nil), slides...)
	}
	return d
}

// Size returns the page geometry.
func (d *Document) Size() PageSize {
	return d.size
}

// Slides returns the slides in order.
func (d *Document) Slides() []Slide {
	return append([]Slide(nil), d.slides...)
}

// Slide returns a slide by 0-indexed position
func (d *Document) Slide(index int) (Slide, error) {
	if index < 0 || index >= len(d.slides) {
		return Slide{}, fmt.Errorf("slide index %d out of range (0-%d)", index, len(d.slides)-1)
	}
	return d.slides[index], nil
}

// SlideCount returns the total number of slides
func (d *Document) SlideCount() int {
	return len(d.slides)
}

// ExtractText returns all text content concatenated
func (d *Document) ExtractText() string {
	var text string
	for _, s := range d.slides {
		text += s.ExtractText() + "\n"
	}
	return text
}

// Outline renders the document as an indented plain-text outline, one
// line per paragraph.
func (d *Document) Outline() string {
	var sb strings.Builder
	for i, s := range d.slides {
		fmt.Fprintf(&sb, "%2d. [%s] %s\n", i+1, s.Layout(), firstLine(s.Title()))
		for _, e := range s.elements {
			switch e.Type() {
			case ElementTypeTitle:
				continue
			case ElementTypeShape:
				sh := e.(Shape)
				fmt.Fprintf(&sb, "      <%s #%s>\n", sh.Kind(), sh.Fill().Hex())
			}
			for _, p := range e.Paragraphs() {
				for _, line := range p.Lines() {
					if strings.TrimSpace(line) == "" {
						continue
					}
					fmt.Fprintf(&sb, "    %s%s\n", strings.Repeat("  ", p.Level()), line)
				}
			}
		}
	}
	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
