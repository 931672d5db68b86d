// Package config loads deckbuilder settings from a YAML file.
//
// Every field is optional; anything left out keeps its default. A missing
// file is not an error.
//
//	output: out/demo.pptx
//	title: Computer Use Demo with Claude AI
//	creator: platform-team
//	preview_dir: out/preview
//	preview_width: 1280
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/deckbuilder/content"
)

// DefaultOutput is the file name written when nothing else is configured.
const DefaultOutput = "Computer_Use_Demo_Presentation.pptx"

// Config models a deckbuilder.yaml file.
type Config struct {
	Output       string `yaml:"output"`
	Title        string `yaml:"title"`
	Creator      string `yaml:"creator"`
	PreviewDir   string `yaml:"preview_dir"`
	PreviewWidth int    `yaml:"preview_width"`
}

// Default returns the built-in settings.
func Default() Config {
	meta := content.DefaultMetadata()
	return Config{
		Output:  DefaultOutput,
		Title:   meta.Title,
		Creator: meta.Creator,
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	defer f.Close()

	if err := decode(f, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) normalize() {
	c.Output = strings.TrimSpace(c.Output)
	c.Title = strings.TrimSpace(c.Title)
	c.Creator = strings.TrimSpace(c.Creator)
	c.PreviewDir = strings.TrimSpace(c.PreviewDir)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("preview_width must be >= 0, got %d", c.PreviewWidth)
	}
	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
