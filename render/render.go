// Package render serializes a model.Document to the PowerPoint 2007+
// (.pptx) format through the GoPPT presentation library.
//
// Placeholders carry no position of their own; the layout of the slide
// decides where they go and what size and weight their text inherits.
// Text boxes and shapes are written at their absolute positions.
//
//	var buf bytes.Buffer
//	if err := render.Encode(doc, &buf); err != nil {
//	    return err
//	}
//
// WriteFile does the same to a path and never leaves a partial file behind.
package render

import (
	"errors"
	"fmt"
	"io"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/tsawler/deckbuilder/model"
)

// Encode writes doc to w as a .pptx package.
func Encode(doc *model.Document, w io.Writer) error {
	p, err := Presentation(doc)
	if err != nil {
		return err
	}

	writer, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	pw, ok := writer.(*ppt.PPTXWriter)
	if !ok {
		return fmt.Errorf("unexpected writer type %T", writer)
	}
	if err := pw.WriteTo(w); err != nil {
		return fmt.Errorf("writing presentation: %w", err)
	}
	return nil
}

// Presentation converts doc into a library presentation without writing it.
func Presentation(doc *model.Document) (*ppt.Presentation, error) {
	if doc == nil || doc.SlideCount() == 0 {
		return nil, errors.New("document has no slides")
	}

	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = doc.Metadata.Title
	props.Creator = doc.Metadata.Creator

	for i, s := range doc.Slides() {
		// A new presentation starts with one empty slide.
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		if err := addSlide(slide, s); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return p, nil
}

func addSlide(slide *ppt.Slide, s model.Slide) error {
	layout := s.Layout()
	boxes, shapes := 0, 0
	for _, e := range s.Elements() {
		if !layout.Accepts(e.Type()) {
			return fmt.Errorf("%s element not allowed on %s layout", e.Type(), layout)
		}

		var f frame
		switch el := e.(type) {
		case model.TextBox:
			boxes++
			f = frame{
				name: fmt.Sprintf("TextBox %d", boxes),
				rect: mustBounds(el),
				size: fixedSize(TextBoxSize),
			}
		case model.Shape:
			if el.Kind() != model.ShapeRectangle {
				return fmt.Errorf("unsupported shape kind %s", el.Kind())
			}
			shapes++
			fill := el.Fill()
			f = frame{
				name:   fmt.Sprintf("Rectangle %d", shapes),
				rect:   mustBounds(el),
				size:   fixedSize(TextBoxSize),
				fill:   &fill,
				middle: true,
			}
		default:
			var ok bool
			if f, ok = placeholderFrame(layout, e.Type()); !ok {
				return fmt.Errorf("%s layout has no %s placeholder", layout, e.Type())
			}
		}

		writeFrame(slide, f, e.Paragraphs())
	}
	return nil
}

func mustBounds(e model.Element) model.Rect {
	r, _ := e.Bounds()
	return r
}

// writeFrame adds one text shape to the slide. Each model paragraph is
// one paragraph in the file with its lines joined by line breaks, except
// in frames that split lines, where every line is its own paragraph.
func writeFrame(slide *ppt.Slide, f frame, paras []model.Paragraph) {
	var shape *ppt.RichTextShape
	if f.placeholder != "" {
		ph := slide.CreatePlaceholderShape(f.placeholder)
		ph.SetPlaceholderIndex(f.index)
		shape = &ph.RichTextShape
	} else {
		shape = slide.CreateRichTextShape()
	}
	shape.SetName(f.name)
	shape.SetOffsetX(f.rect.X.EMU()).SetOffsetY(f.rect.Y.EMU())
	shape.SetWidth(f.rect.Width.EMU()).SetHeight(f.rect.Height.EMU())
	if f.fill != nil {
		shape.SetFill(solidFill(*f.fill))
	}
	if f.middle {
		shape.SetTextAnchor(ppt.TextAnchorMiddle)
	}

	first := true
	next := func() *ppt.Paragraph {
		if first {
			first = false
			return shape.GetActiveParagraph()
		}
		return shape.CreateParagraph()
	}

	for _, para := range paras {
		if f.splitLines {
			for _, line := range para.Lines() {
				writeLines(next(), f, para, []string{line})
			}
			continue
		}
		writeLines(next(), f, para, para.Lines())
	}
}

// writeLines fills gp with one run per non-empty line and a break between
// consecutive lines.
func writeLines(gp *ppt.Paragraph, f frame, para model.Paragraph, lines []string) {
	gp.SetAlignment(alignment(f, para))
	for i, line := range lines {
		if i > 0 {
			gp.CreateBreak()
		}
		if line == "" {
			continue
		}
		run := gp.CreateTextRun(line)
		applyStyle(run.GetFont(), f, para)
	}
}

func alignment(f frame, para model.Paragraph) *ppt.Alignment {
	h := ppt.HorizontalLeft
	switch {
	case f.center || para.Alignment() == model.AlignCenter:
		h = ppt.HorizontalCenter
	case para.Alignment() == model.AlignRight:
		h = ppt.HorizontalRight
	}
	a := ppt.NewAlignment().SetHorizontal(h)
	a.Level = para.Level()
	a.MarginLeft = int64(para.Level()) * LevelIndent.EMU()
	return a
}

// applyStyle merges the paragraph style over the frame defaults.
func applyStyle(font *ppt.Font, f frame, para model.Paragraph) {
	style := para.Style()

	size := style.Size
	if size == 0 {
		size = f.size(para.Level())
	}
	font.SetSize(size).SetBold(style.Bold || f.bold)
	font.Italic = style.Italic
	if style.Font != "" {
		font.Name = style.Font
	}

	color := style.Color
	if color == nil {
		color = f.color
	}
	if color != nil {
		font.SetColor(ppt.NewColor(color.ARGB()))
	}
}

func solidFill(c model.RGB) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}
