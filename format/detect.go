// Package format identifies presentation file formats by name and content.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates a PowerPoint 2007+ presentation (.pptx).
	PPTX
	// PPTM indicates a macro-enabled PowerPoint presentation (.pptm).
	PPTM
	// POTX indicates a PowerPoint template (.potx).
	POTX
	// PPT indicates a legacy binary PowerPoint presentation (.ppt).
	PPT
	// ODP indicates an OpenDocument presentation (.odp).
	ODP
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PPTX:
		return "PPTX"
	case PPTM:
		return "PPTM"
	case POTX:
		return "POTX"
	case PPT:
		return "PPT"
	case ODP:
		return "ODP"
	case DOCX:
		return "DOCX"
	case XLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PPTX:
		return ".pptx"
	case PPTM:
		return ".pptm"
	case POTX:
		return ".potx"
	case PPT:
		return ".ppt"
	case ODP:
		return ".odp"
	case DOCX:
		return ".docx"
	case XLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// IsPresentation reports whether the format holds slides.
func (f Format) IsPresentation() bool {
	switch f {
	case PPTX, PPTM, POTX, PPT, ODP:
		return true
	}
	return false
}

// IsOOXML reports whether the format is an Office Open XML package that
// the pptx reader can open.
func (f Format) IsOOXML() bool {
	switch f {
	case PPTX, PPTM, POTX:
		return true
	}
	return false
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx":
		return PPTX
	case ".pptm":
		return PPTM
	case ".potx":
		return POTX
	case ".ppt":
		return PPT
	case ".odp":
		return ODP
	case ".docx":
		return DOCX
	case ".xlsx":
		return XLSX
	default:
		return Unknown
	}
}

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFromMagic checks file magic bytes to determine format.
// ZIP archives return Unknown; use DetectFromReader to look inside them.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, oleMagic) {
		return PPT
	}
	return Unknown
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and can
// distinguish between the ZIP-based formats.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// OOXML main-part content types, most specific first.
var contentTypes = []struct {
	marker string
	format Format
}{
	{"ms-powerpoint.presentation.macroEnabled.main+xml", PPTM},
	{"presentationml.template.main+xml", POTX},
	{"presentationml.presentation.main+xml", PPTX},
}

// detectZIPFormat inspects a ZIP archive to determine its format.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	// OpenDocument stores its mimetype as the first entry.
	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		data, err := readEntry(f, 256)
		if err == nil && strings.Contains(string(data), "application/vnd.oasis.opendocument.presentation") {
			return ODP, nil
		}
	}

	for _, f := range zr.File {
		if f.Name != "[Content_Types].xml" {
			continue
		}
		data, err := readEntry(f, 64<<10)
		if err != nil {
			return Unknown, err
		}
		for _, ct := range contentTypes {
			if bytes.Contains(data, []byte(ct.marker)) {
				return ct.format, nil
			}
		}
	}

	// Fall back to the top-level part directories.
	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX, nil
		}
	}

	return Unknown, nil
}

func readEntry(f *zip.File, limit int64) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(io.LimitReader(rc, limit))
}
