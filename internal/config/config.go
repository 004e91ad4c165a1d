// Package config loads command-line tool settings from YAML files and .env
// files and turns them into segmenter options.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	sbd "github.com/jamesainslie/go-sbd"
	"github.com/jamesainslie/go-sbd/document"
	"github.com/jamesainslie/go-sbd/normalize"
)

// Defaults used by the command-line flags. A flag still holding its default
// may be overridden by the config file.
const (
	DefaultInput  = "auto"
	DefaultOutput = "text"
)

// File is the on-disk configuration schema.
type File struct {
	MinLength   *int   `yaml:"minLength"`
	Concurrency int    `yaml:"concurrency"`
	Unicode     string `yaml:"unicode"`
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
}

// Settings are the effective values after flags, env and file are merged.
type Settings struct {
	MinLength   int
	Concurrency int
	Unicode     string
	Input       string
	Output      string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		MinLength: normalize.DefaultMinLength,
		Input:     DefaultInput,
		Output:    DefaultOutput,
	}
}

// Load reads a YAML config file. A missing file is not an error and yields
// an empty File.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return f, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

// LoadEnv loads variables from .env style files into the process
// environment. Missing files are skipped and variables already set win.
func LoadEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load env %s: %w", p, err)
		}
	}
	return nil
}

// Apply overlays f onto s for every field still at its default.
func Apply(s *Settings, f File) {
	if s == nil {
		return
	}
	if s.MinLength == normalize.DefaultMinLength && f.MinLength != nil {
		s.MinLength = *f.MinLength
	}
	if s.Concurrency == 0 && f.Concurrency > 0 {
		s.Concurrency = f.Concurrency
	}
	if s.Unicode == "" && f.Unicode != "" {
		s.Unicode = f.Unicode
	}
	if (s.Input == "" || s.Input == DefaultInput) && f.Input != "" {
		s.Input = f.Input
	}
	if (s.Output == "" || s.Output == DefaultOutput) && f.Output != "" {
		s.Output = f.Output
	}
}

// Validate checks value ranges and names.
func (s Settings) Validate() error {
	if s.MinLength < 0 {
		return errors.New("config: minLength must not be negative")
	}
	if s.Concurrency < 0 {
		return errors.New("config: concurrency must not be negative")
	}
	if _, _, err := ParseForm(s.Unicode); err != nil {
		return err
	}
	if s.Input != DefaultInput {
		if _, err := document.ParseFormat(s.Input); err != nil {
			return fmt.Errorf("config: input: %w", err)
		}
	}
	switch s.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("config: unknown output %q", s.Output)
	}
	return nil
}

// Format returns the configured input format. ok is false when the format
// should be detected from each file's extension.
func (s Settings) Format() (format document.Format, ok bool, err error) {
	if s.Input == "" || s.Input == DefaultInput {
		return 0, false, nil
	}
	format, err = document.ParseFormat(s.Input)
	if err != nil {
		return 0, false, err
	}
	return format, true, nil
}

// Options converts s into segmenter options.
func (s Settings) Options() ([]sbd.Option, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts := []sbd.Option{sbd.WithMinLength(s.MinLength)}
	if s.Concurrency > 0 {
		opts = append(opts, sbd.WithConcurrency(s.Concurrency))
	}
	if form, ok, _ := ParseForm(s.Unicode); ok {
		opts = append(opts, sbd.WithUnicodeForm(form))
	}
	return opts, nil
}

// ParseForm maps a normalization form name to its norm.Form. The empty name
// and "none" report ok == false.
func ParseForm(name string) (form norm.Form, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return 0, false, nil
	case "nfc":
		return norm.NFC, true, nil
	case "nfd":
		return norm.NFD, true, nil
	case "nfkc":
		return norm.NFKC, true, nil
	case "nfkd":
		return norm.NFKD, true, nil
	}
	return 0, false, fmt.Errorf("config: unknown unicode form %q", name)
}
