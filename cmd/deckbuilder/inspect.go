package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tsawler/deckbuilder"
	"github.com/tsawler/deckbuilder/pptx"
)

const titleWidth = 48

var (
	headStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	numStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

func runInspect(args []string, stdout io.Writer, logger *log.Logger) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	markdown := fs.Bool("md", false, "print the deck as Markdown")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(logger.Writer(), "Usage: deckbuilder inspect [-md] <file>\n")
		return 2
	}

	path := fs.Arg(0)
	r, err := deckbuilder.Inspect(path)
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}
	defer r.Close()

	if *markdown {
		md, err := r.Markdown()
		if err != nil {
			logger.Printf("error: %v", err)
			return 1
		}
		fmt.Fprint(stdout, md)
		return 0
	}

	fmt.Fprintln(stdout, summary(filepath.Base(path), r))
	return 0
}

// summary renders one line per slide: number, heading, text frame count
// and the fills of any colored shapes. Slides without a title
// placeholder are named by their first text frame.
func summary(name string, r *pptx.Reader) string {
	meta := r.Metadata()
	head := headStyle.Render(fmt.Sprintf("%s · %d slides", name, r.SlideCount()))
	if meta.Title != "" {
		head += "\n" + noteStyle.Render(meta.Title)
	}

	lines := make([]string, 0, r.SlideCount())
	for _, s := range r.Slides() {
		var fills []string
		for _, b := range s.Content {
			if b.Filled() {
				fills = append(fills, "#"+b.Fill)
			}
		}
		heading := s.Title
		if heading == "" && len(s.Content) > 0 {
			heading = s.Content[0].Text
		}
		line := fmt.Sprintf("%s %s %s",
			numStyle.Render(fmt.Sprintf("%2d", s.Index+1)),
			pad(firstLine(heading), titleWidth),
			noteStyle.Render(fmt.Sprintf("%d frames", len(s.Content))))
		if len(fills) > 0 {
			line += " " + noteStyle.Render(strings.Join(fills, " "))
		}
		lines = append(lines, line)
	}

	return boxStyle.Render(head + "\n\n" + strings.Join(lines, "\n"))
}

// pad truncates or pads s to exactly width terminal cells.
func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
