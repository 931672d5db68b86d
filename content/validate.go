package content

import (
	"fmt"
	"strings"

	"github.com/tsawler/deckbuilder/model"
)

// Issue is a rule violation found by Validate.
type Issue struct {
	Slide   int // 1-indexed, 0 for document-level issues
	Message string
}

func (i Issue) String() string {
	if i.Slide == 0 {
		return i.Message
	}
	return fmt.Sprintf("slide %d: %s", i.Slide, i.Message)
}

// FormatIssues joins issues into a single multi-line message.
func FormatIssues(issues []Issue) string {
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return strings.Join(lines, "\n")
}

// Validate checks a document against the deck's layout and styling rules:
//
//   - exactly SlideCount slides;
//   - first and last slides use the title layout, slide 4 the blank
//     layout, every other slide title-and-content;
//   - every element is allowed by its slide's layout;
//   - in each content frame the first paragraph is a bold level-0 header
//     and every non-bold paragraph sits at level 1 or deeper;
//   - monospace paragraphs sit at level 1 or 2;
//   - the architecture slide carries four on-page rectangles, one of them
//     taller than the rest with a caption of two paragraphs.
func Validate(doc *model.Document) []Issue {
	var issues []Issue

	if doc.SlideCount() != SlideCount {
		issues = append(issues, Issue{Message: fmt.Sprintf("deck has %d slides, want %d", doc.SlideCount(), SlideCount)})
	}

	page := doc.Size().Bounds()
	slides := doc.Slides()
	for i, s := range slides {
		n := i + 1
		if want := expectedLayout(i, len(slides)); s.Layout() != want {
			issues = append(issues, Issue{n, fmt.Sprintf("layout %s, want %s", s.Layout(), want)})
		}
		for _, e := range s.Elements() {
			if !s.Layout().Accepts(e.Type()) {
				issues = append(issues, Issue{n, fmt.Sprintf("%s element on %s layout", e.Type(), s.Layout())})
			}
			if r, ok := e.Bounds(); ok && !r.Within(page) {
				issues = append(issues, Issue{n, fmt.Sprintf("%s element extends past the page", e.Type())})
			}
		}
		for _, frame := range s.ContentFrames() {
			issues = append(issues, checkFrame(n, frame.Paragraphs())...)
		}
		if s.Layout() == model.LayoutBlank {
			issues = append(issues, checkDiagram(n, s)...)
		}
	}

	return issues
}

// expectedLayout applies the per-slide layout policy.
func expectedLayout(index, count int) model.LayoutKind {
	switch {
	case index == 0 || index == count-1:
		return model.LayoutTitle
	case index == 3:
		return model.LayoutBlank
	default:
		return model.LayoutTitleAndContent
	}
}

func checkFrame(slide int, paras []model.Paragraph) []Issue {
	var issues []Issue
	if len(paras) == 0 {
		return []Issue{{slide, "empty content frame"}}
	}
	if first := paras[0]; first.Level() != 0 || !first.Style().Bold {
		issues = append(issues, Issue{slide, fmt.Sprintf("first paragraph %q must be a bold level-0 header", first.Text())})
	}
	for _, p := range paras[1:] {
		style := p.Style()
		if p.Level() == 0 && !style.Bold {
			issues = append(issues, Issue{slide, fmt.Sprintf("bullet %q at level 0", strings.TrimSpace(p.Text()))})
		}
		if style.Font == Monospace && (p.Level() < 1 || p.Level() > 2) {
			issues = append(issues, Issue{slide, fmt.Sprintf("code line %q at level %d", strings.TrimSpace(p.Text()), p.Level())})
		}
	}
	return issues
}

func checkDiagram(slide int, s model.Slide) []Issue {
	var issues []Issue
	shapes := s.Shapes()
	if len(shapes) != 4 {
		return []Issue{{slide, fmt.Sprintf("diagram has %d shapes, want 4", len(shapes))}}
	}

	shortest, _ := shapes[0].Bounds()
	for _, sh := range shapes[1:] {
		if r, _ := sh.Bounds(); r.Height < shortest.Height {
			shortest = r
		}
	}

	tall := 0
	var tallest model.Shape
	for _, sh := range shapes {
		if sh.Kind() != model.ShapeRectangle {
			issues = append(issues, Issue{slide, fmt.Sprintf("diagram shape %q is %s, want rect", sh.Text(), sh.Kind())})
		}
		if r, _ := sh.Bounds(); r.Height > shortest.Height {
			tall++
			tallest = sh
		}
	}
	if tall != 1 {
		issues = append(issues, Issue{slide, fmt.Sprintf("diagram has %d tall boxes, want 1", tall)})
	} else if n := len(tallest.Paragraphs()); n != 2 {
		issues = append(issues, Issue{slide, fmt.Sprintf("tall box has %d paragraphs, want 2", n)})
	}
	return issues
}
