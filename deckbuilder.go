// Package deckbuilder builds the "Computer Use Demo with Claude AI"
// presentation and saves it as a .pptx file.
//
// Basic usage:
//
//	if err := deckbuilder.BuildAndSave("Computer_Use_Demo_Presentation.pptx"); err != nil {
//	    log.Fatal(err)
//	}
//
// With options:
//
//	err := deckbuilder.New().
//	    Output("out/demo.pptx").
//	    Creator("platform-team").
//	    Preview("out/preview").
//	    Save()
//
// The slide content is fixed and lives in the content package. The render
// package turns the model into a presentation; the pptx package reads
// written files back for verification.
package deckbuilder

import (
	"github.com/tsawler/deckbuilder/config"
)

// DefaultOutput is the file written by a Builder with no Output set.
const DefaultOutput = config.DefaultOutput

// New returns a Builder with the default output path and metadata.
//
// Example:
//
//	doc, err := deckbuilder.New().Build()
func New() *Builder {
	return &Builder{options: defaultOptions()}
}

// FromConfig returns a Builder configured from cfg.
//
// Example:
//
//	cfg, err := config.Load("deckbuilder.yaml")
//	if err != nil {
//	    // handle error
//	}
//	err = deckbuilder.FromConfig(cfg).Save()
func FromConfig(cfg config.Config) *Builder {
	return New().
		Output(cfg.Output).
		Title(cfg.Title).
		Creator(cfg.Creator).
		Preview(cfg.PreviewDir).
		PreviewWidth(cfg.PreviewWidth)
}

// BuildAndSave builds the deck and writes it to outputPath, then prints a
// single confirmation line to standard output. On failure nothing is
// printed and no file is left at outputPath; errors creating or writing
// the file are *IOError.
func BuildAndSave(outputPath string) error {
	return New().Output(outputPath).Save()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := deckbuilder.Must(deckbuilder.New().Build())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
