// Package model provides the in-memory representation of a presentation
// before it is serialized.
//
// The tree is strictly single-owner and built bottom-up: paragraphs first,
// then elements, then slides, then the document.
//
//	title := model.Title("Project Overview")
//	body := model.Content(
//	    model.NewParagraph("What is it?", model.Bold()),
//	    model.NewParagraph("• A bullet", model.AtLevel(1)),
//	)
//	doc := model.NewDocument(model.Widescreen, model.Metadata{},
//	    model.NewSlide(model.LayoutTitleAndContent, title, body))
//
// # Elements
//
// All slide content implements the [Element] interface. The concrete types are:
//
//   - [TitlePlaceholder] and [SubtitlePlaceholder] - layout placeholders
//   - [ContentFrame] - the bulleted body of a title-and-content slide
//   - [TextBox] - free text at an absolute position
//   - [Shape] - a filled geometric shape with optional caption text
//
// # Immutability
//
// Constructors copy the slices they are given and accessors return copies,
// so a [Document] cannot be changed once built.
//
// # Geometry
//
// Positions and sizes are [Length] values in EMUs. [Inches] and [Points]
// convert from the usual units, and [Rect] is anchored at the top-left of
// the slide.
package model
