package deckbuilder

import (
	"fmt"
	"os"

	"github.com/tsawler/deckbuilder/format"
	"github.com/tsawler/deckbuilder/pptx"
)

// Inspect opens a written presentation for verification. Files that are
// not OOXML presentations are rejected before parsing.
// The returned Reader must be closed.
//
// Example:
//
//	r, err := deckbuilder.Inspect("Computer_Use_Demo_Presentation.pptx")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	fmt.Println(r.SlideCount())
func Inspect(path string) (*pptx.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	kind, err := format.DetectFromReader(f, info.Size())
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("detecting format of %s: %w", path, err)
	}
	if !kind.IsOOXML() {
		return nil, fmt.Errorf("%s: unsupported file format: %s", path, kind)
	}

	r, err := pptx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPTX: %w", err)
	}
	return r, nil
}
