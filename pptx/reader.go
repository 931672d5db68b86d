package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/tsawler/deckbuilder/model"
)

// Reader provides access to PPTX document content.
type Reader struct {
	closer       io.Closer
	files        map[string]*zip.File
	presentation *presentationXML
	presRels     *relationshipsXML
	slides       []*Slide
	slidePaths   []string
	coreProps    *corePropertiesXML
}

// Open opens a PPTX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(zr.File)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// OpenBytes reads a PPTX package held in memory.
func OpenBytes(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr.File)
}

func newReader(files []*zip.File) (*Reader, error) {
	r := &Reader{files: make(map[string]*zip.File, len(files))}
	for _, f := range files {
		r.files[f.Name] = f
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	if err := r.parsePresentation(); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	if err := r.parseSlides(); err != nil {
		return nil, fmt.Errorf("parsing slides: %w", err)
	}

	// Metadata is optional
	r.parseCoreProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	for _, name := range []string{"[Content_Types].xml", "ppt/presentation.xml"} {
		if r.files[name] == nil {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	for name := range r.files {
		if isSlidePath(name) {
			return nil
		}
	}
	return fmt.Errorf("no slides found in presentation")
}

func isSlidePath(name string) bool {
	return strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml")
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.files[name]
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseRelationships parses the presentation relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil // Relationships might be optional
	}

	r.presRels = &relationshipsXML{}
	return xml.Unmarshal(data, r.presRels)
}

// parsePresentation parses the main presentation file.
func (r *Reader) parsePresentation() error {
	data, err := r.getFileContent("ppt/presentation.xml")
	if err != nil {
		return err
	}

	r.presentation = &presentationXML{}
	return xml.Unmarshal(data, r.presentation)
}

// slideOrder returns slide part paths in presentation order. The slide id
// list decides the order; file names are the fallback when the list or
// its relationships are missing.
func (r *Reader) slideOrder() []string {
	if r.presentation.SlideIdList != nil && r.presRels != nil {
		targets := make(map[string]string, len(r.presRels.Relationship))
		for _, rel := range r.presRels.Relationship {
			targets[rel.ID] = resolveTarget("ppt", rel.Target)
		}

		var ordered []string
		for _, id := range r.presentation.SlideIdList.SlideId {
			if p, ok := targets[id.RID]; ok && r.files[p] != nil {
				ordered = append(ordered, p)
			}
		}
		if len(ordered) > 0 {
			return ordered
		}
	}

	var slideFiles []string
	for name := range r.files {
		if isSlidePath(name) {
			slideFiles = append(slideFiles, name)
		}
	}
	sort.Slice(slideFiles, func(i, j int) bool {
		return extractSlideNumber(slideFiles[i]) < extractSlideNumber(slideFiles[j])
	})
	return slideFiles
}

// resolveTarget turns a relationship target into a package path relative
// to the directory of the part that owns the relationship.
func resolveTarget(dir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(dir, target))
}

// extractSlideNumber extracts the slide number from a path like "ppt/slides/slide1.xml"
func extractSlideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// parseSlides parses all slide files.
func (r *Reader) parseSlides() error {
	order := r.slideOrder()
	r.slides = make([]*Slide, 0, len(order))

	for _, slidePath := range order {
		slide, err := r.parseSlide(slidePath, len(r.slides))
		if err != nil {
			return fmt.Errorf("%s: %w", slidePath, err)
		}

		r.slides = append(r.slides, slide)
		r.slidePaths = append(r.slidePaths, slidePath)
	}

	if len(r.slides) == 0 {
		return fmt.Errorf("no slides could be parsed")
	}

	return nil
}

// parseSlide parses a single slide file.
func (r *Reader) parseSlide(slidePath string, index int) (*Slide, error) {
	data, err := r.getFileContent(slidePath)
	if err != nil {
		return nil, err
	}

	var sx slideXML
	if err := xml.Unmarshal(data, &sx); err != nil {
		return nil, err
	}

	slide := &Slide{Index: index}
	r.extractShapes(sx.CSld.SpTree.Sp, sx.CSld.SpTree.GrpSp, slide)

	return slide, nil
}

// extractShapes collects text blocks from shapes and, recursively, groups.
func (r *Reader) extractShapes(shapes []spXML, groups []grpSpXML, slide *Slide) {
	for i := range shapes {
		block := r.extractTextBlock(&shapes[i])
		if block == nil {
			continue
		}
		if block.IsTitle && slide.Title == "" {
			slide.Title = block.Text
		}
		slide.Content = append(slide.Content, *block)
	}

	for i := range groups {
		r.extractShapes(groups[i].Sp, groups[i].GrpSp, slide)
	}
}

// extractTextBlock extracts text and shape properties from a shape.
// Shapes without text return nil.
func (r *Reader) extractTextBlock(sp *spXML) *TextBlock {
	if sp.TxBody == nil || len(sp.TxBody.P) == 0 {
		return nil
	}

	block := &TextBlock{
		Name:   sp.NvSpPr.CNvPr.Name,
		Anchor: sp.TxBody.BodyPr.Anchor,
	}

	if ph := sp.NvSpPr.NvPr.Ph; ph != nil {
		block.Placeholder = ph.Type
		block.IsTitle = ph.Type == "title" || ph.Type == "ctrTitle"
		block.IsSubtitle = ph.Type == "subTitle"
	}

	if x := sp.SpPr.Xfrm; x != nil {
		block.X = x.Off.X
		block.Y = x.Off.Y
		block.Width = x.Ext.Cx
		block.Height = x.Ext.Cy
	}
	if g := sp.SpPr.PrstGeom; g != nil {
		block.Geometry = g.Prst
	}
	block.Fill = fillColor(sp.SpPr.SolidFill)

	var allText strings.Builder
	for i := range sp.TxBody.P {
		para := extractParagraph(&sp.TxBody.P[i])
		if para.Text == "" {
			continue
		}
		block.Paragraphs = append(block.Paragraphs, para)
		if allText.Len() > 0 {
			allText.WriteString("\n")
		}
		allText.WriteString(para.Text)
	}

	block.Text = allText.String()
	if block.Text == "" {
		return nil
	}
	return block
}

func fillColor(f *solidFillXML) string {
	if f == nil || f.SrgbClr == nil {
		return ""
	}
	return strings.ToUpper(f.SrgbClr.Val)
}

// extractParagraph extracts text and formatting from a paragraph.
func extractParagraph(p *pXML) Paragraph {
	var para Paragraph

	if p.PPr != nil {
		para.Level = p.PPr.Lvl
		para.MarginLeft = p.PPr.MarL
		para.Alignment = p.PPr.Algn

		if p.PPr.BuNone == nil {
			switch {
			case p.PPr.BuAutoNum != nil:
				para.IsNumbered = true
			case p.PPr.BuChar != nil:
				para.IsBullet = true
				para.BulletChar = p.PPr.BuChar.Char
			}
		}
	}

	var text strings.Builder
	for _, item := range p.Items {
		switch item.XMLName.Local {
		case "br":
			text.WriteString("\n")
		case "fld":
			text.WriteString(item.T)
		case "r":
			text.WriteString(item.T)

			ro := Run{Text: item.T}
			if rp := item.RPr; rp != nil {
				ro.Bold = onOff(rp.B)
				ro.Italic = onOff(rp.I)
				ro.FontSize = rp.Sz
				if rp.Latin != nil {
					ro.Typeface = rp.Latin.Typeface
				}
				ro.Color = fillColor(rp.SolidFill)
			}
			para.Runs = append(para.Runs, ro)
		}
	}

	para.Text = strings.TrimSpace(text.String())
	return para
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	props := &corePropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.coreProps = props
	}
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide returns the slide at the given index (0-indexed).
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}

// Slides returns all slides in presentation order.
func (r *Reader) Slides() []*Slide {
	return append([]*Slide(nil), r.slides...)
}

// SlideXML returns the raw XML of the slide at index.
func (r *Reader) SlideXML(index int) ([]byte, error) {
	if index < 0 || index >= len(r.slidePaths) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slidePaths)-1)
	}
	return r.getFileContent(r.slidePaths[index])
}

// PageSize returns the slide size declared by the presentation.
func (r *Reader) PageSize() (model.PageSize, bool) {
	sz := r.presentation.SlideSz
	if sz == nil || sz.Cx <= 0 || sz.Cy <= 0 {
		return model.PageSize{}, false
	}
	return model.PageSize{Width: model.Length(sz.Cx), Height: model.Length(sz.Cy)}, true
}

// Metadata returns the core document properties.
func (r *Reader) Metadata() model.Metadata {
	var meta model.Metadata
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Creator = r.coreProps.Creator
	}
	return meta
}

// ExtractOptions holds options for text extraction.
type ExtractOptions struct {
	IncludeTitles bool  // Include slide titles
	SlideNumbers  []int // Which slides to include (0-indexed, empty = all)
}

func (r *Reader) selectSlides(numbers []int) []*Slide {
	if len(numbers) == 0 {
		return r.slides
	}
	slides := make([]*Slide, 0, len(numbers))
	for _, idx := range numbers {
		if idx >= 0 && idx < len(r.slides) {
			slides = append(slides, r.slides[idx])
		}
	}
	return slides
}

// Text extracts and returns all text content from the presentation.
func (r *Reader) Text() (string, error) {
	return r.TextWithOptions(ExtractOptions{IncludeTitles: true})
}

// TextWithOptions extracts text content with the specified options.
func (r *Reader) TextWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	for i, slide := range r.selectSlides(opts.SlideNumbers) {
		if i > 0 {
			result.WriteString("\n\n")
		}

		if opts.IncludeTitles && slide.Title != "" {
			result.WriteString(slide.Title)
			result.WriteString("\n\n")
		}

		for _, block := range slide.Content {
			if block.IsTitle && opts.IncludeTitles {
				continue
			}
			for _, para := range block.Paragraphs {
				if para.IsBullet || para.IsNumbered {
					result.WriteString(strings.Repeat("  ", para.Level))
					result.WriteString("• ")
				}
				result.WriteString(para.Text)
				result.WriteString("\n")
			}
		}
	}

	return result.String(), nil
}

// Markdown returns the presentation content as Markdown.
func (r *Reader) Markdown() (string, error) {
	return r.MarkdownWithOptions(ExtractOptions{IncludeTitles: true})
}

// MarkdownWithOptions returns presentation content as Markdown with options.
func (r *Reader) MarkdownWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	for i, slide := range r.selectSlides(opts.SlideNumbers) {
		if i > 0 {
			result.WriteString("\n---\n\n")
		}

		if opts.IncludeTitles && slide.Title != "" {
			result.WriteString("# ")
			result.WriteString(slide.Title)
			result.WriteString("\n\n")
		}

		for _, block := range slide.Content {
			if block.IsTitle && opts.IncludeTitles {
				continue
			}
			writeMarkdownBlock(&result, block)
		}
	}

	return strings.TrimSpace(result.String()), nil
}
