package model

import "golang.org/x/text/unicode/norm"

// ElementType represents the type of slide element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeTitle
	ElementTypeSubtitle
	ElementTypeContent
	ElementTypeTextBox
	ElementTypeShape
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeTitle:
		return "Title"
	case ElementTypeSubtitle:
		return "Subtitle"
	case ElementTypeContent:
		return "Content"
	case ElementTypeTextBox:
		return "TextBox"
	case ElementTypeShape:
		return "Shape"
	default:
		return "Unknown"
	}
}

// Element is the interface for all slide elements
type Element interface {
	Type() ElementType
	// Bounds returns the absolute position of the element. Placeholders
	// are positioned by the layout and report false.
	Bounds() (Rect, bool)
	Paragraphs() []Paragraph
	Text() string
}

// TitlePlaceholder fills the layout's title placeholder
type TitlePlaceholder struct {
	text string
}

// Title creates a title placeholder element.
func Title(text string) TitlePlaceholder {
	return TitlePlaceholder{text: norm.NFC.String(text)}
}

func (t TitlePlaceholder) Type() ElementType    { return ElementTypeTitle }
func (t TitlePlaceholder) Bounds() (Rect, bool) { return Rect{}, false }
func (t TitlePlaceholder) Text() string         { return t.text }
func (t TitlePlaceholder) Paragraphs() []Paragraph {
	return []Paragraph{{text: t.text}}
}

// SubtitlePlaceholder fills the title layout's subtitle placeholder
type SubtitlePlaceholder struct {
	text string
}

// Subtitle creates a subtitle placeholder element.
func Subtitle(text string) SubtitlePlaceholder {
	return SubtitlePlaceholder{text: norm.NFC.String(text)}
}

func (s SubtitlePlaceholder) Type() ElementType    { return ElementTypeSubtitle }
func (s SubtitlePlaceholder) Bounds() (Rect, bool) { return Rect{}, false }
func (s SubtitlePlaceholder) Text() string         { return s.text }
func (s SubtitlePlaceholder) Paragraphs() []Paragraph {
	return []Paragraph{{text: s.text}}
}

// ContentFrame fills the body placeholder of a title-and-content layout
type ContentFrame struct {
	paragraphs []Paragraph
}

// Content creates a content frame from paragraphs in rendered order.
func Content(paras ...Paragraph) ContentFrame {
	return ContentFrame{paragraphs: copyParagraphs(paras)}
}

func (c ContentFrame) Type() ElementType       { return ElementTypeContent }
func (c ContentFrame) Bounds() (Rect, bool)    { return Rect{}, false }
func (c ContentFrame) Paragraphs() []Paragraph { return copyParagraphs(c.paragraphs) }
func (c ContentFrame) Text() string            { return joinText(c.paragraphs) }

// TextBox is a free-standing text box with an absolute position
type TextBox struct {
	rect       Rect
	paragraphs []Paragraph
}

// NewTextBox creates a text box at rect.
func NewTextBox(rect Rect, paras ...Paragraph) TextBox {
	return TextBox{rect: rect, paragraphs: copyParagraphs(paras)}
}

func (t TextBox) Type() ElementType       { return ElementTypeTextBox }
func (t TextBox) Bounds() (Rect, bool)    { return t.rect, true }
func (t TextBox) Paragraphs() []Paragraph { return copyParagraphs(t.paragraphs) }
func (t TextBox) Text() string            { return joinText(t.paragraphs) }

// ShapeKind is the preset geometry of a Shape
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rect"
	default:
		return "unknown"
	}
}

// Shape is a filled geometric shape with an optional embedded text frame
type Shape struct {
	kind       ShapeKind
	rect       Rect
	fill       RGB
	paragraphs []Paragraph
}

// NewShape creates a solid-filled shape at rect.
func NewShape(kind ShapeKind, rect Rect, fill RGB, paras ...Paragraph) Shape {
	return Shape{kind: kind, rect: rect, fill: fill, paragraphs: copyParagraphs(paras)}
}

func (s Shape) Type() ElementType       { return ElementTypeShape }
func (s Shape) Bounds() (Rect, bool)    { return s.rect, true }
func (s Shape) Paragraphs() []Paragraph { return copyParagraphs(s.paragraphs) }
func (s Shape) Text() string            { return joinText(s.paragraphs) }

// Kind returns the shape geometry.
func (s Shape) Kind() ShapeKind { return s.kind }

// Fill returns the solid fill color.
func (s Shape) Fill() RGB { return s.fill }

// HasText reports whether the shape carries an embedded text frame.
func (s Shape) HasText() bool { return len(s.paragraphs) > 0 }
