package deckbuilder

import (
	"io"
	"os"

	"github.com/tsawler/deckbuilder/content"
	"github.com/tsawler/deckbuilder/model"
)

// buildOptions holds configuration for building and saving a deck.
type buildOptions struct {
	output string
	meta   model.Metadata

	// Confirmation line destination
	stdout io.Writer

	// Slide images, skipped when previewDir is empty
	previewDir   string
	previewWidth int
}

// defaultOptions returns the default build options.
func defaultOptions() buildOptions {
	return buildOptions{
		output:       DefaultOutput,
		meta:         content.DefaultMetadata(),
		stdout:       os.Stdout,
		previewDir:   "",
		previewWidth: 0, // render.PreviewWidth
	}
}

// clone creates a copy of buildOptions.
func (o buildOptions) clone() buildOptions {
	return buildOptions{
		output:       o.output,
		meta:         o.meta,
		stdout:       o.stdout,
		previewDir:   o.previewDir,
		previewWidth: o.previewWidth,
	}
}
