// Command deckbuilder writes the Computer Use demo presentation.
//
// Usage:
//
//	deckbuilder [-o file.pptx] [-config deckbuilder.yaml] [-preview dir] [-dry-run]
//	deckbuilder inspect [-md] file.pptx
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tsawler/deckbuilder"
	"github.com/tsawler/deckbuilder/config"
	"github.com/tsawler/deckbuilder/format"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "deckbuilder: ", 0)

	if len(args) > 0 && args[0] == "inspect" {
		return runInspect(args[1:], stdout, logger)
	}

	fs := flag.NewFlagSet("deckbuilder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "", "output file (default "+config.DefaultOutput+")")
	configPath := fs.String("config", "", "YAML settings file")
	previewDir := fs.String("preview", "", "also render slide images into this directory")
	dryRun := fs.Bool("dry-run", false, "print the slide outline instead of writing a file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Usage: deckbuilder [flags] | deckbuilder inspect <file>\n")
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Print(err)
			return 1
		}
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *previewDir != "" {
		cfg.PreviewDir = *previewDir
	}

	b := deckbuilder.FromConfig(cfg).Stdout(stdout)

	if *dryRun {
		outline, err := b.Outline()
		if err != nil {
			logger.Print(err)
			return 1
		}
		fmt.Fprint(stdout, outline)
		return 0
	}

	if f := format.Detect(cfg.Output); f != format.PPTX {
		logger.Printf("warning: %s does not end in .pptx; writing a PPTX package anyway", cfg.Output)
	}

	if err := b.Save(); err != nil {
		logger.Printf("error: %v", err)
		return 1
	}
	return 0
}
