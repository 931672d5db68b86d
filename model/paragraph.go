package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxLevel is the deepest indentation level a paragraph may use.
const MaxLevel = 8

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// White is the caption color used on filled shapes.
var White = RGB{R: 255, G: 255, B: 255}

// Hex returns the color as an upper-case RRGGBB string.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the color as an opaque AARRGGBB string.
func (c RGB) ARGB() string {
	return "FF" + c.Hex()
}

// Alignment is the horizontal alignment of a paragraph
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Style is the run formatting applied to a whole paragraph. Zero values
// inherit from the placeholder or text frame.
type Style struct {
	Bold   bool
	Italic bool
	Font   string // Typeface name, "" inherits
	Size   int    // Points, 0 inherits
	Color  *RGB   // nil inherits
}

// IsZero reports whether the style overrides nothing.
func (s Style) IsZero() bool {
	return !s.Bold && !s.Italic && s.Font == "" && s.Size == 0 && s.Color == nil
}

func (s Style) clone() Style {
	if s.Color != nil {
		c := *s.Color
		s.Color = &c
	}
	return s
}

// Paragraph is one block of styled text inside an element's text frame.
// Paragraph values are immutable; build them with NewParagraph.
type Paragraph struct {
	text  string
	level int
	style Style
	align Alignment
}

// ParagraphOption configures a paragraph at construction time.
type ParagraphOption func(*Paragraph)

// AtLevel sets the indentation level, clamped to [0, MaxLevel].
func AtLevel(level int) ParagraphOption {
	return func(p *Paragraph) {
		switch {
		case level < 0:
			level = 0
		case level > MaxLevel:
			level = MaxLevel
		}
		p.level = level
	}
}

// Bold forces bold runs.
func Bold() ParagraphOption {
	return func(p *Paragraph) { p.style.Bold = true }
}

// Italic forces italic runs.
func Italic() ParagraphOption {
	return func(p *Paragraph) { p.style.Italic = true }
}

// Font sets the typeface.
func Font(name string) ParagraphOption {
	return func(p *Paragraph) { p.style.Font = name }
}

// Size sets the font size in points.
func Size(points int) ParagraphOption {
	return func(p *Paragraph) {
		if points > 0 {
			p.style.Size = points
		}
	}
}

// Colored sets the font color.
func Colored(c RGB) ParagraphOption {
	return func(p *Paragraph) { p.style.Color = &c }
}

// Centered centers the paragraph horizontally.
func Centered() ParagraphOption {
	return func(p *Paragraph) { p.align = AlignCenter }
}

// WithStyle replaces the whole style record.
func WithStyle(s Style) ParagraphOption {
	return func(p *Paragraph) { p.style = s.clone() }
}

// NewParagraph creates a paragraph. Text is stored in Unicode NFC form.
func NewParagraph(text string, opts ...ParagraphOption) Paragraph {
	p := Paragraph{text: norm.NFC.String(text)}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Text returns the paragraph text, including any embedded line breaks.
func (p Paragraph) Text() string { return p.text }

// Level returns the indentation level (0 = top level).
func (p Paragraph) Level() int { return p.level }

// Style returns a copy of the paragraph style.
func (p Paragraph) Style() Style { return p.style.clone() }

// Alignment returns the horizontal alignment.
func (p Paragraph) Alignment() Alignment { return p.align }

// Lines splits the text on embedded line breaks.
func (p Paragraph) Lines() []string {
	return strings.Split(p.text, "\n")
}

// Equal reports whether two paragraphs carry the same text, level,
// alignment and style.
func (p Paragraph) Equal(other Paragraph) bool {
	if p.text != other.text || p.level != other.level || p.align != other.align {
		return false
	}
	a, b := p.style, other.style
	if a.Bold != b.Bold || a.Italic != b.Italic || a.Font != b.Font || a.Size != b.Size {
		return false
	}
	if (a.Color == nil) != (b.Color == nil) {
		return false
	}
	return a.Color == nil || *a.Color == *b.Color
}

func copyParagraphs(paras []Paragraph) []Paragraph {
	if len(paras) == 0 {
		return nil
	}
	out := make([]Paragraph, len(paras))
	for i, p := range paras {
		p.style = p.style.clone()
		out[i] = p
	}
	return out
}

func joinText(paras []Paragraph) string {
	var sb strings.Builder
	for i, p := range paras {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.text)
	}
	return sb.String()
}
