package render

import (
	"fmt"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/tsawler/deckbuilder/model"
)

// PreviewWidth is the default width in pixels of preview images.
const PreviewWidth = 960

// Preview rasterizes every slide of doc into dir as slide-01.png,
// slide-02.png and so on, and returns the written paths in slide order.
// A width of zero or less uses PreviewWidth.
func Preview(doc *model.Document, dir string, width int) ([]string, error) {
	p, err := Presentation(doc)
	if err != nil {
		return nil, &IOError{Op: "preview", Path: dir, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &IOError{Op: "create", Path: dir, Err: err}
	}

	opts := ppt.DefaultRenderOptions()
	opts.Format = ppt.ImageFormatPNG
	if width > 0 {
		opts.Width = width
	} else {
		opts.Width = PreviewWidth
	}
	opts.FontCache = ppt.NewFontCache()

	paths := make([]string, 0, doc.SlideCount())
	for i := 0; i < doc.SlideCount(); i++ {
		path := filepath.Join(dir, fmt.Sprintf("slide-%02d.png", i+1))
		if err := p.SaveSlideAsImage(i, path, opts); err != nil {
			return paths, &IOError{Op: "preview", Path: path, Err: err}
		}
		paths = append(paths, path)
	}
	return paths, nil
}
