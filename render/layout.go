package render

import (
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/tsawler/deckbuilder/model"
)

// LevelIndent is the left margin added per paragraph level.
var LevelIndent = model.Inches(0.375)

// Font sizes in points for text that does not set its own size.
const (
	TitleSize      = 40
	SlideTitleSize = 32
	SubtitleSize   = 20
	BodySize       = 20
	TextBoxSize    = 18
	minBodySize    = 12
)

// frame describes where an element's text goes and what it inherits.
// Frames with a placeholder type are written as layout placeholders.
type frame struct {
	name        string
	placeholder ppt.PlaceholderType
	index       int
	// splitLines writes each line of a paragraph as its own paragraph
	// instead of joining the lines with breaks.
	splitLines bool

	rect   model.Rect
	size   func(level int) int
	bold   bool
	color  *model.RGB
	center bool
	fill   *model.RGB
	middle bool
}

var subtitleGray = model.RGB{R: 89, G: 89, B: 89}

func fixedSize(pt int) func(int) int {
	return func(int) int { return pt }
}

// bodySize steps the body text down two points per level.
func bodySize(level int) int {
	if s := BodySize - 2*level; s > minBodySize {
		return s
	}
	return minBodySize
}

// placeholderFrame returns the layout-defined frame for a placeholder
// element. The second result is false when the layout has no such
// placeholder.
func placeholderFrame(layout model.LayoutKind, et model.ElementType) (frame, bool) {
	switch layout {
	case model.LayoutTitle:
		switch et {
		case model.ElementTypeTitle:
			return frame{
				name:        "Title",
				placeholder: ppt.PlaceholderCtrTitle,
				splitLines:  true,
				rect:        model.NewRect(0.75, 1.6, 8.5, 1.2),
				size:        fixedSize(TitleSize),
				bold:        true,
				center:      true,
				middle:      true,
			}, true
		case model.ElementTypeSubtitle:
			return frame{
				name:        "Subtitle",
				placeholder: ppt.PlaceholderSubTitle,
				index:       1,
				splitLines:  true,
				rect:        model.NewRect(0.75, 2.9, 8.5, 2.2),
				size:        fixedSize(SubtitleSize),
				color:       &subtitleGray,
				center:      true,
			}, true
		}
	case model.LayoutTitleAndContent:
		switch et {
		case model.ElementTypeTitle:
			return frame{
				name:        "Title",
				placeholder: ppt.PlaceholderTitle,
				splitLines:  true,
				rect:        model.NewRect(0.5, 0.3, 9, 0.9),
				size:        fixedSize(SlideTitleSize),
				bold:        true,
				middle:      true,
			}, true
		case model.ElementTypeContent:
			return frame{
				name:        "Content",
				placeholder: ppt.PlaceholderBody,
				index:       1,
				rect:        model.NewRect(0.5, 1.3, 9, 4.0),
				size:        bodySize,
			}, true
		}
	}
	return frame{}, false
}
