package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/tsawler/deckbuilder/content"
	"github.com/tsawler/deckbuilder/format"
	"github.com/tsawler/deckbuilder/model"
	"github.com/tsawler/deckbuilder/pptx"
)

func encodeDeck(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(content.Deck(content.DefaultMetadata()), &buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.Bytes()
}

func openDeck(t *testing.T, data []byte) *pptx.Reader {
	t.Helper()
	r, err := pptx.OpenBytes(data)
	if err != nil {
		t.Fatalf("OpenBytes() error = %v", err)
	}
	return r
}

// ============================================================================
// Encoding
// ============================================================================

func TestEncodeProducesPresentation(t *testing.T) {
	data := encodeDeck(t)

	f, err := format.DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if f != format.PPTX {
		t.Fatalf("format = %v, want PPTX", f)
	}

	r := openDeck(t, data)
	if r.SlideCount() != content.SlideCount {
		t.Fatalf("SlideCount() = %d, want %d", r.SlideCount(), content.SlideCount)
	}
	if got := r.Metadata().Title; got != content.DefaultMetadata().Title {
		t.Errorf("title = %q", got)
	}
}

func TestEncodeSlideText(t *testing.T) {
	r := openDeck(t, encodeDeck(t))

	tests := []struct {
		index int
		want  []string
	}{
		{0, []string{"Computer Use Demo with Claude AI", "Autonomous Computer Control Through Natural Language", "Transforming Human-Computer Interaction"}},
		{1, []string{"Project Overview", "What is Computer Use?", "• Web-based interface - Easy-to-use Streamlit application"}},
		{3, []string{"Technical Architecture", "Streamlit UI", "Agent Loop", "Claude API", "Tool System", "• Bash"}},
		{8, []string{"Development Workflow", "pip install -r requirements.txt", "streamlit run app.py"}},
		{15, []string{"Thank You!", "Natural Language → Automated Actions"}},
	}

	for _, tt := range tests {
		s, err := r.Slide(tt.index)
		if err != nil {
			t.Fatal(err)
		}
		text := s.GetText()
		for _, want := range tt.want {
			if !strings.Contains(text, want) {
				t.Errorf("slide %d missing %q:\n%s", tt.index+1, want, text)
			}
		}
	}
}

func TestEncodeSplitsEmbeddedLineBreaks(t *testing.T) {
	r := openDeck(t, encodeDeck(t))
	s, _ := r.Slide(0)

	var subtitle *pptx.TextBlock
	for i := range s.Content {
		if strings.HasPrefix(s.Content[i].Text, "Autonomous") {
			subtitle = &s.Content[i]
		}
	}
	if subtitle == nil {
		t.Fatal("subtitle not found")
	}
	// The blank middle line is written but carries no text.
	if len(subtitle.Paragraphs) != 2 {
		t.Fatalf("subtitle has %d paragraphs, want 2", len(subtitle.Paragraphs))
	}
}

func TestEncodeArchitectureDiagram(t *testing.T) {
	r := openDeck(t, encodeDeck(t))
	s, _ := r.Slide(3)

	wantFills := map[string]string{
		"Streamlit UI": content.ColorUI.Hex(),
		"Agent Loop":   content.ColorAgent.Hex(),
		"Claude API":   content.ColorAPI.Hex(),
		"Tool System":  content.ColorTools.Hex(),
	}

	filled := 0
	for _, b := range s.Content {
		if !b.Filled() {
			continue
		}
		filled++
		caption := b.Paragraphs[0].Text
		if want, ok := wantFills[caption]; !ok || b.Fill != want {
			t.Errorf("box %q fill = %s, want %s", caption, b.Fill, want)
		}
		if b.Width != int(model.Inches(2).EMU()) {
			t.Errorf("box %q width = %d", caption, b.Width)
		}
	}
	if filled != 4 {
		t.Errorf("got %d filled boxes, want 4", filled)
	}

	var tall *pptx.TextBlock
	for i := range s.Content {
		if s.Content[i].Height == int(model.Inches(1.5).EMU()) {
			tall = &s.Content[i]
		}
	}
	if tall == nil {
		t.Fatal("no 1.5in box")
	}
	if len(tall.Paragraphs) != 2 {
		t.Fatalf("tall box has %d paragraphs, want 2", len(tall.Paragraphs))
	}
	list := tall.Paragraphs[1]
	if list.Text != "• Computer\n• Bash\n• Edit" {
		t.Errorf("list text = %q", list.Text)
	}
	if list.Alignment != "l" {
		t.Errorf("list alignment = %q, want l", list.Alignment)
	}
	for _, run := range list.Runs {
		if run.FontSize != 1200 || run.Color != "FFFFFF" {
			t.Errorf("list run %q size %d color %s", run.Text, run.FontSize, run.Color)
		}
	}
}

func TestEncodePlaceholders(t *testing.T) {
	r := openDeck(t, encodeDeck(t))

	for _, s := range r.Slides() {
		var want []string
		var layout model.LayoutKind
		switch s.Index {
		case 0, 15:
			want, layout = []string{"ctrTitle", "subTitle"}, model.LayoutTitle
		case 3:
			want, layout = nil, model.LayoutBlank
		default:
			want, layout = []string{"title", "body"}, model.LayoutTitleAndContent
		}

		got := s.Placeholders()
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("slide %d placeholders = %v, want %v", s.Index+1, got, want)
		}
		if s.Layout() != layout {
			t.Errorf("slide %d layout = %v, want %v", s.Index+1, s.Layout(), layout)
		}
	}

	first, _ := r.Slide(0)
	if first.Title != "Computer Use Demo with Claude AI" {
		t.Errorf("title slide title = %q", first.Title)
	}
	diagram, _ := r.Slide(3)
	if diagram.Title != "" {
		t.Errorf("diagram slide title = %q, want none", diagram.Title)
	}
}

func TestEncodeParagraphLevels(t *testing.T) {
	r := openDeck(t, encodeDeck(t))

	for _, s := range r.Slides() {
		for _, b := range s.Content {
			if b.Placeholder != "body" {
				continue
			}
			head := b.Paragraphs[0]
			if head.Level != 0 || !head.Bold() {
				t.Errorf("slide %d: header %q level %d bold %v", s.Index+1, head.Text, head.Level, head.Bold())
			}
			for _, p := range b.Paragraphs[1:] {
				if p.Level < 1 && !p.Bold() {
					t.Errorf("slide %d: bullet %q at level %d", s.Index+1, p.Text, p.Level)
				}
			}
		}
	}

	workflow, _ := r.Slide(8)
	for _, p := range workflow.Content[1].Paragraphs {
		if p.Text == "pip install -r requirements.txt" && p.Level != 2 {
			t.Errorf("command level = %d, want 2", p.Level)
		}
	}
}

func TestEncodeSubheaderIsOneParagraph(t *testing.T) {
	r := openDeck(t, encodeDeck(t))
	s, _ := r.Slide(4)

	body := s.Content[1]
	if len(body.Paragraphs) != 8 {
		t.Fatalf("body has %d paragraphs, want 8", len(body.Paragraphs))
	}
	sub := body.Paragraphs[4]
	if sub.Text != "Model Support" || sub.Level != 0 || !sub.Bold() {
		t.Errorf("subheader = %+v", sub)
	}
	if body.Paragraphs[5].Level != 1 {
		t.Errorf("bullet after subheader at level %d", body.Paragraphs[5].Level)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a := openDeck(t, encodeDeck(t))
	b := openDeck(t, encodeDeck(t))

	for i := 0; i < a.SlideCount(); i++ {
		ax, err := a.SlideXML(i)
		if err != nil {
			t.Fatal(err)
		}
		bx, err := b.SlideXML(i)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(ax, bx) {
			t.Errorf("slide %d XML differs between builds", i+1)
		}
	}
}

func TestEncodeRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  *model.Document
		want string
	}{
		{
			name: "nil document",
			doc:  nil,
			want: "no slides",
		},
		{
			name: "empty document",
			doc:  model.NewDocument(model.Widescreen, model.Metadata{}),
			want: "no slides",
		},
		{
			name: "content frame on title layout",
			doc: model.NewDocument(model.Widescreen, model.Metadata{},
				model.NewSlide(model.LayoutTitle, model.Content(model.NewParagraph("x")))),
			want: "slide 1: Content element not allowed on title layout",
		},
		{
			name: "unknown layout",
			doc: model.NewDocument(model.Widescreen, model.Metadata{},
				model.NewSlide(model.LayoutTitle, model.Title("ok")),
				model.NewSlide(model.LayoutKind(42), model.Title("x"))),
			want: "slide 2:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(tt.doc, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

// ============================================================================
// Formatting
// ============================================================================

func TestAlignment(t *testing.T) {
	tests := []struct {
		name   string
		f      frame
		para   model.Paragraph
		want   ppt.HorizontalAlignment
		level  int
		margin int64
	}{
		{"left body", frame{}, model.NewParagraph("x", model.AtLevel(1)), ppt.HorizontalLeft, 1, 342900},
		{"centered paragraph", frame{}, model.NewParagraph("x", model.Centered()), ppt.HorizontalCenter, 0, 0},
		{"centered frame", frame{center: true}, model.NewParagraph("x"), ppt.HorizontalCenter, 0, 0},
		{"code line", frame{}, model.NewParagraph("x", model.AtLevel(2)), ppt.HorizontalLeft, 2, 685800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := alignment(tt.f, tt.para)
			if a.Horizontal != tt.want {
				t.Errorf("Horizontal = %v, want %v", a.Horizontal, tt.want)
			}
			if a.Level != tt.level {
				t.Errorf("Level = %d, want %d", a.Level, tt.level)
			}
			if a.MarginLeft != tt.margin {
				t.Errorf("MarginLeft = %d, want %d", a.MarginLeft, tt.margin)
			}
		})
	}
}

func TestApplyStyle(t *testing.T) {
	body, _ := placeholderFrame(model.LayoutTitleAndContent, model.ElementTypeContent)
	title, _ := placeholderFrame(model.LayoutTitle, model.ElementTypeTitle)

	tests := []struct {
		name   string
		f      frame
		para   model.Paragraph
		size   int
		bold   bool
		italic bool
		face   string
		color  string
	}{
		{"bullet", body, model.NewParagraph("x", model.AtLevel(1)), 18, false, false, "", ""},
		{"header", body, model.NewParagraph("x", model.Bold()), 20, true, false, "", ""},
		{"quote", body, model.NewParagraph("x", model.AtLevel(1), model.Italic()), 18, false, true, "", ""},
		{"command", body, model.NewParagraph("x", model.AtLevel(2), model.Font("Courier New")), 16, false, false, "Courier New", ""},
		{"title", title, model.NewParagraph("x"), TitleSize, true, false, "", ""},
		{"caption", frame{size: fixedSize(TextBoxSize)}, model.NewParagraph("x", model.Size(12), model.Colored(model.White)), 12, false, false, "", "FFFFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			font := ppt.NewFont()
			font.Name = ""
			applyStyle(font, tt.f, tt.para)
			if font.Size != tt.size || font.Bold != tt.bold || font.Italic != tt.italic {
				t.Errorf("font = size %d bold %v italic %v, want %d %v %v", font.Size, font.Bold, font.Italic, tt.size, tt.bold, tt.italic)
			}
			if font.Name != tt.face {
				t.Errorf("Name = %q, want %q", font.Name, tt.face)
			}
			if tt.color != "" && font.Color.ARGB != tt.color {
				t.Errorf("Color = %q, want %q", font.Color.ARGB, tt.color)
			}
		})
	}
}

func TestBodySizeFloor(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{0, 20},
		{1, 18},
		{2, 16},
		{4, 12},
		{8, 12},
	}
	for _, tt := range tests {
		if got := bodySize(tt.level); got != tt.want {
			t.Errorf("bodySize(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestPlaceholderFrames(t *testing.T) {
	page := model.Widescreen.Bounds()
	for _, layout := range []model.LayoutKind{model.LayoutTitle, model.LayoutTitleAndContent, model.LayoutBlank} {
		for _, et := range []model.ElementType{model.ElementTypeTitle, model.ElementTypeSubtitle, model.ElementTypeContent} {
			f, ok := placeholderFrame(layout, et)
			if ok != (layout.Accepts(et) && layout != model.LayoutBlank) {
				t.Errorf("placeholderFrame(%v, %v) ok = %v", layout, et, ok)
			}
			if ok && !f.rect.Within(page) {
				t.Errorf("placeholderFrame(%v, %v) = %+v extends past the page", layout, et, f.rect)
			}
			if ok && f.placeholder == "" {
				t.Errorf("placeholderFrame(%v, %v) has no placeholder type", layout, et)
			}
		}
	}
}

// ============================================================================
// Files
// ============================================================================

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := WriteFile(content.Deck(content.DefaultMetadata()), path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}

	r, err := pptx.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if r.SlideCount() != content.SlideCount {
		t.Errorf("SlideCount() = %d", r.SlideCount())
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the deck", len(entries))
	}
}

func TestWriteFileFailures(t *testing.T) {
	dir := t.TempDir()
	existingDir := filepath.Join(dir, "taken.pptx")
	if err := os.Mkdir(existingDir, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		doc  *model.Document
		path string
		op   string
	}{
		{"missing directory", content.Deck(content.DefaultMetadata()), filepath.Join(dir, "missing", "deck.pptx"), "create"},
		{"destination is a directory", content.Deck(content.DefaultMetadata()), existingDir, "rename"},
		{"invalid document", model.NewDocument(model.Widescreen, model.Metadata{}), filepath.Join(dir, "empty.pptx"), "encode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteFile(tt.doc, tt.path)
			var ioErr *IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("error = %v, want *IOError", err)
			}
			if ioErr.Op != tt.op || ioErr.Path != tt.path {
				t.Errorf("IOError = %+v, want op %q path %q", ioErr, tt.op, tt.path)
			}
			if ioErr.Unwrap() == nil {
				t.Error("Unwrap() = nil")
			}
		})
	}

	// Only the pre-existing directory remains; no temp files leak.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "taken.pptx" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory entries = %v", names)
	}
}

func TestIOErrorMessage(t *testing.T) {
	err := &IOError{Op: "create", Path: "out/deck.pptx", Err: os.ErrNotExist}
	if got := err.Error(); got != "create out/deck.pptx: file does not exist" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is should see the wrapped error")
	}
}

func TestPreview(t *testing.T) {
	if testing.Short() {
		t.Skip("rasterizing slides is slow")
	}

	dir := filepath.Join(t.TempDir(), "preview")
	paths, err := Preview(content.Deck(content.DefaultMetadata()), dir, 320)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if len(paths) != content.SlideCount {
		t.Fatalf("got %d images, want %d", len(paths), content.SlideCount)
	}
	if filepath.Base(paths[3]) != "slide-04.png" {
		t.Errorf("paths[3] = %s", paths[3])
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("preview is not a PNG")
	}
}

func TestPreviewRejectsEmptyDocument(t *testing.T) {
	_, err := Preview(model.NewDocument(model.Widescreen, model.Metadata{}), t.TempDir(), 0)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "preview" {
		t.Errorf("error = %v, want preview IOError", err)
	}
}
