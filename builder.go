package deckbuilder

import (
	"fmt"
	"io"

	"github.com/tsawler/deckbuilder/content"
	"github.com/tsawler/deckbuilder/model"
	"github.com/tsawler/deckbuilder/render"
)

// Builder provides a fluent interface for building and saving the deck.
// Each configuration method returns a new Builder instance, making it
// safe for concurrent use and allowing method chaining.
type Builder struct {
	options buildOptions
}

// clone creates a copy of the Builder.
// This ensures immutability - each chain method returns a new instance.
func (b *Builder) clone() *Builder {
	return &Builder{options: b.options.clone()}
}

// Output sets the destination file path.
//
// Example:
//
//	err := deckbuilder.New().Output("out/deck.pptx").Save()
func (b *Builder) Output(path string) *Builder {
	newB := b.clone()
	newB.options.output = path
	return newB
}

// Title sets the presentation title stored in the document properties.
// The slide text is not affected.
func (b *Builder) Title(title string) *Builder {
	newB := b.clone()
	newB.options.meta.Title = title
	return newB
}

// Creator sets the author stored in the document properties.
func (b *Builder) Creator(creator string) *Builder {
	newB := b.clone()
	newB.options.meta.Creator = creator
	return newB
}

// Stdout redirects the confirmation line. A nil writer silences it.
func (b *Builder) Stdout(w io.Writer) *Builder {
	newB := b.clone()
	if w == nil {
		w = io.Discard
	}
	newB.options.stdout = w
	return newB
}

// Preview makes Save also render every slide as a PNG into dir.
// An empty dir turns previews off.
//
// Example:
//
//	err := deckbuilder.New().Preview("out/preview").Save()
func (b *Builder) Preview(dir string) *Builder {
	newB := b.clone()
	newB.options.previewDir = dir
	return newB
}

// PreviewWidth sets the width in pixels of preview images. Zero uses
// render.PreviewWidth.
func (b *Builder) PreviewWidth(px int) *Builder {
	newB := b.clone()
	newB.options.previewWidth = px
	return newB
}

// Build returns the deck as a document model. The result is checked
// against the deck rules; a failing check returns an error wrapping
// ErrInvalidDeck.
func (b *Builder) Build() (*model.Document, error) {
	doc := content.Deck(b.options.meta)
	if issues := content.Validate(doc); len(issues) > 0 {
		return nil, fmt.Errorf("%w:\n%s", ErrInvalidDeck, content.FormatIssues(issues))
	}
	return doc, nil
}

// Outline returns a plain-text outline of the deck without writing
// anything.
func (b *Builder) Outline() (string, error) {
	doc, err := b.Build()
	if err != nil {
		return "", err
	}
	return doc.Outline(), nil
}

// Save builds the deck, renders previews when configured, writes the
// presentation and prints one confirmation line. The presentation file
// is written last and in one step, so a failed Save leaves nothing at
// the destination and prints nothing.
func (b *Builder) Save() error {
	if b.options.output == "" {
		return fmt.Errorf("no output path specified")
	}

	doc, err := b.Build()
	if err != nil {
		return err
	}

	if b.options.previewDir != "" {
		if _, err := render.Preview(doc, b.options.previewDir, b.options.previewWidth); err != nil {
			return fmt.Errorf("rendering previews: %w", err)
		}
	}

	if err := render.WriteFile(doc, b.options.output); err != nil {
		return err
	}

	fmt.Fprintf(b.options.stdout, "✅ PowerPoint presentation created successfully: %s\n", b.options.output)
	return nil
}
