package content

import "github.com/tsawler/deckbuilder/model"

// Monospace is the typeface used for code samples.
const Monospace = "Courier New"

// Architecture diagram fill colors, one per component role.
var (
	ColorUI    = model.RGB{R: 70, G: 130, B: 180}
	ColorAgent = model.RGB{R: 60, G: 179, B: 113}
	ColorAPI   = model.RGB{R: 255, G: 140, B: 0}
	ColorTools = model.RGB{R: 138, G: 43, B: 226}
)

// header is the first paragraph of a content frame.
func header(text string) model.Paragraph {
	return model.NewParagraph(text, model.Bold())
}

// subheader starts a later section inside the same frame. The leading
// break leaves a blank line between the sections.
func subheader(text string) model.Paragraph {
	return model.NewParagraph("\n"+text, model.Bold())
}

func bullet(text string) model.Paragraph {
	return model.NewParagraph(text, model.AtLevel(1))
}

// emphasis is a bullet that carries the slide's key figure.
func emphasis(text string) model.Paragraph {
	return model.NewParagraph(text, model.AtLevel(1), model.Bold())
}

// quote is an example prompt.
func quote(text string) model.Paragraph {
	return model.NewParagraph(text, model.AtLevel(1), model.Italic())
}

// comment and command are shell sample lines: comments at level 1, the
// command they describe one level deeper.
func comment(text string) model.Paragraph {
	return model.NewParagraph(text, model.AtLevel(1), model.Font(Monospace))
}

func command(text string) model.Paragraph {
	return model.NewParagraph(text, model.AtLevel(2), model.Font(Monospace))
}

// box is one labelled rectangle of the architecture diagram.
func box(rect model.Rect, fill model.RGB, caption string) model.Shape {
	return model.NewShape(model.ShapeRectangle, rect, fill,
		model.NewParagraph(caption, model.Bold(), model.Colored(model.White), model.Centered()))
}

// listBox is a taller rectangle whose caption is followed by a small
// list. Neither paragraph is centered.
func listBox(rect model.Rect, fill model.RGB, caption, items string) model.Shape {
	return model.NewShape(model.ShapeRectangle, rect, fill,
		model.NewParagraph(caption, model.Bold(), model.Colored(model.White)),
		model.NewParagraph(items, model.Colored(model.White), model.Size(12)))
}

// titleAndContent is the common shape of a bulleted slide.
func titleAndContent(title string, paras ...model.Paragraph) []model.Element {
	return []model.Element{model.Title(title), model.Content(paras...)}
}
