package model

// LayoutKind names the template a slide starts from. It is independent of
// any particular template file's layout ordering.
type LayoutKind int

const (
	// LayoutTitle has a centered title and a subtitle placeholder.
	LayoutTitle LayoutKind = iota
	// LayoutTitleAndContent has a title and a bulleted body placeholder.
	LayoutTitleAndContent
	// LayoutBlank has no placeholders; every element is positioned by hand.
	LayoutBlank
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutTitle:
		return "title"
	case LayoutTitleAndContent:
		return "title+content"
	case LayoutBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Accepts reports whether an element of type et may be placed on a slide of
// this layout.
func (k LayoutKind) Accepts(et ElementType) bool {
	switch et {
	case ElementTypeTitle:
		return k == LayoutTitle || k == LayoutTitleAndContent
	case ElementTypeSubtitle:
		return k == LayoutTitle
	case ElementTypeContent:
		return k == LayoutTitleAndContent
	case ElementTypeTextBox, ElementTypeShape:
		return true
	default:
		return false
	}
}

// Slide is one page of the presentation
type Slide struct {
	layout   LayoutKind
	elements []Element
}

// NewSlide creates a slide with its elements in z-order.
func NewSlide(layout LayoutKind, elems ...Element) Slide {
	s := Slide{layout: layout}
	if len(elems) > 0 {
		s.elements = append([]Element(nil), elems...)
	}
	return s
}

// Layout returns the slide's layout kind.
func (s Slide) Layout() LayoutKind { return s.layout }

// Elements returns the slide elements in z-order.
func (s Slide) Elements() []Element {
	return append([]Element(nil), s.elements...)
}

// ElementCount returns the number of elements on the slide.
func (s Slide) ElementCount() int { return len(s.elements) }

// Title returns the title placeholder text, or the first text box text on
// a blank slide.
func (s Slide) Title() string {
	for _, e := range s.elements {
		if t, ok := e.(TitlePlaceholder); ok {
			return t.Text()
		}
	}
	if s.layout == LayoutBlank {
		for _, e := range s.elements {
			if tb, ok := e.(TextBox); ok && len(tb.paragraphs) > 0 {
				return tb.paragraphs[0].text
			}
		}
	}
	return ""
}

// Shapes returns the Shape elements on the slide.
func (s Slide) Shapes() []Shape {
	var shapes []Shape
	for _, e := range s.elements {
		if sh, ok := e.(Shape); ok {
			shapes = append(shapes, sh)
		}
	}
	return shapes
}

// ContentFrames returns the ContentFrame elements on the slide.
func (s Slide) ContentFrames() []ContentFrame {
	var frames []ContentFrame
	for _, e := range s.elements {
		if cf, ok := e.(ContentFrame); ok {
			frames = append(frames, cf)
		}
	}
	return frames
}

// ExtractText concatenates all element text
func (s Slide) ExtractText() string {
	var text string
	for _, e := range s.elements {
		text += e.Text() + "\n"
	}
	return text
}
