package pptx

import (
	"strings"

	"github.com/tsawler/deckbuilder/model"
)

// Slide represents a parsed slide.
type Slide struct {
	Index   int         // 0-indexed slide number
	Title   string      // Slide title
	Content []TextBlock // Text frames in z-order
}

// Layout infers the slide layout from its placeholders: a centered title
// or subtitle means a title slide, a title or body placeholder a
// title-and-content slide, and no placeholders a blank slide.
func (s *Slide) Layout() model.LayoutKind {
	layout := model.LayoutBlank
	for _, b := range s.Content {
		switch b.Placeholder {
		case "ctrTitle", "subTitle":
			return model.LayoutTitle
		case "title", "body":
			layout = model.LayoutTitleAndContent
		}
	}
	return layout
}

// Placeholders returns the placeholder types of the slide's text blocks
// in z-order.
func (s *Slide) Placeholders() []string {
	var types []string
	for _, b := range s.Content {
		if b.Placeholder != "" {
			types = append(types, b.Placeholder)
		}
	}
	return types
}

// TextBlock represents one shape with a text frame.
type TextBlock struct {
	Name        string // Shape name from cNvPr
	Text        string
	Paragraphs  []Paragraph
	IsTitle     bool
	IsSubtitle  bool
	Placeholder string // Placeholder type (title, body, etc.)
	Geometry    string // Preset geometry (rect, ...), "" when not set
	Fill        string // Solid fill as RRGGBB, "" when not filled
	Anchor      string // Vertical anchor: t, ctr, b
	X, Y        int    // Position in EMUs
	Width       int    // Width in EMUs
	Height      int    // Height in EMUs
}

// Paragraph represents a paragraph within a text block.
type Paragraph struct {
	Text       string
	Level      int    // Bullet/indent level (0 = top level)
	MarginLeft int    // Left margin in EMUs
	IsBullet   bool   // Has bullet point
	IsNumbered bool   // Is numbered list
	BulletChar string // Bullet character (if custom)
	Alignment  string // l, ctr, r, just
	Runs       []Run
}

// Run represents a text run with consistent formatting.
type Run struct {
	Text     string
	Bold     bool
	Italic   bool
	FontSize int    // In hundredths of a point
	Typeface string // Latin typeface, "" inherits
	Color    string // RRGGBB, "" inherits
}

// Bold reports whether every run of the paragraph is bold.
func (p Paragraph) Bold() bool {
	if len(p.Runs) == 0 {
		return false
	}
	for _, r := range p.Runs {
		if !r.Bold {
			return false
		}
	}
	return true
}

// Filled reports whether the block has a solid fill.
func (b TextBlock) Filled() bool {
	return b.Fill != ""
}

// GetText returns all text from the slide as a single string.
func (s *Slide) GetText() string {
	var sb strings.Builder

	if s.Title != "" {
		sb.WriteString(s.Title)
		sb.WriteString("\n\n")
	}

	for _, block := range s.Content {
		if block.IsTitle {
			continue
		}
		for _, para := range block.Paragraphs {
			if para.Text == "" {
				continue
			}
			if para.IsBullet || para.IsNumbered {
				sb.WriteString(strings.Repeat("  ", para.Level))
				if para.BulletChar != "" {
					sb.WriteString(para.BulletChar + " ")
				} else {
					sb.WriteString("• ")
				}
			}
			sb.WriteString(para.Text)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// GetMarkdown returns the slide content as markdown.
func (s *Slide) GetMarkdown() string {
	var sb strings.Builder

	if s.Title != "" {
		sb.WriteString("# " + s.Title + "\n\n")
	}

	for _, block := range s.Content {
		if block.IsTitle {
			continue
		}
		writeMarkdownBlock(&sb, block)
	}

	return sb.String()
}

// writeMarkdownBlock renders a text block. Indented paragraphs become
// nested list items; bold top-level paragraphs become headings.
func writeMarkdownBlock(sb *strings.Builder, block TextBlock) {
	for _, para := range block.Paragraphs {
		if para.Text == "" {
			continue
		}

		depth := para.Level
		switch {
		case para.IsNumbered:
			sb.WriteString(strings.Repeat("  ", depth) + "1. " + para.Text + "\n")
		case para.IsBullet || depth > 0:
			sb.WriteString(strings.Repeat("  ", max(depth-1, 0)) + "- " + para.Text + "\n")
		case para.Bold() && !block.Filled():
			sb.WriteString("## " + para.Text + "\n\n")
		default:
			sb.WriteString(para.Text + "\n\n")
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
