package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	sbd "github.com/jamesainslie/go-sbd"
	"github.com/jamesainslie/go-sbd/document"
	"github.com/jamesainslie/go-sbd/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI is the root command. Flags can also be set through SBD_* variables,
// a .env file in the working directory, or the YAML config file.
type CLI struct {
	Config      string `short:"c" help:"Configuration file path" default:"sbd.yaml" env:"SBD_CONFIG"`
	Verbose     bool   `short:"v" help:"Enable debug logging" env:"SBD_VERBOSE"`
	MinLength   int    `name:"min-length" help:"Drop sentences of at most this many characters" default:"3" env:"SBD_MIN_LENGTH"`
	Unicode     string `help:"Unicode normalization form (nfc, nfd, nfkc, nfkd)" env:"SBD_UNICODE"`
	Concurrency int    `help:"Files segmented in parallel (default: number of CPUs)" env:"SBD_CONCURRENCY"`
	Input       string `short:"i" help:"Input format (auto, text, html, markdown)" default:"auto" env:"SBD_INPUT"`
	Output      string `short:"o" help:"Output format (text, json, jsonl)" default:"text" env:"SBD_OUTPUT"`

	Version kong.VersionFlag `help:"Show version and exit"`

	Segment  SegmentCmd  `cmd:"" default:"withargs" help:"Split files or stdin into sentences"`
	Blocks   BlocksCmd   `cmd:"" help:"Print the text blocks found in a document"`
	Complete CompleteCmd `cmd:"" help:"Report whether text ends at a sentence boundary"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// settings merges flags and env with the config file.
func (c *CLI) settings() (config.Settings, error) {
	s := config.Settings{
		MinLength:   c.MinLength,
		Concurrency: c.Concurrency,
		Unicode:     c.Unicode,
		Input:       c.Input,
		Output:      c.Output,
	}
	f, err := config.Load(c.Config)
	if err != nil {
		return s, err
	}
	config.Apply(&s, f)
	return s, s.Validate()
}

func (c *CLI) segmenter(s config.Settings) (*sbd.Segmenter, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, sbd.WithLogger(slog.Default()))
	return sbd.New(opts...), nil
}

// load reads every named file, or stdin when there are none.
func load(s config.Settings, files []string, stdin io.Reader) ([]*document.Document, error) {
	format, explicit, err := s.Format()
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		if !explicit {
			format = document.FormatHTML
		}
		doc, err := document.Read(stdin, format)
		if err != nil {
			return nil, err
		}
		doc.Path = "-"
		return []*document.Document{doc}, nil
	}

	docs := make([]*document.Document, 0, len(files))
	for _, path := range files {
		var doc *document.Document
		if explicit {
			doc, err = document.LoadAs(path, format)
		} else {
			doc, err = document.Load(path)
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// SegmentCmd implements the 'segment' command.
type SegmentCmd struct {
	Files []string `arg:"" optional:"" help:"Files to segment (default: stdin)"`
}

type fileResult struct {
	File      string   `json:"file"`
	Sentences []string `json:"sentences"`
}

type sentenceLine struct {
	File  string `json:"file"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

func (cmd *SegmentCmd) Run(cli *CLI) error {
	s, err := cli.settings()
	if err != nil {
		return err
	}
	seg, err := cli.segmenter(s)
	if err != nil {
		return err
	}
	docs, err := load(s, cmd.Files, os.Stdin)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	results, err := seg.SegmentDocuments(ctx, docs)
	if err != nil {
		return fmt.Errorf("segment: %w", err)
	}

	slog.Debug("segmentation finished", "files", len(docs), "output", s.Output)
	return write(os.Stdout, s.Output, docs, results)
}

func write(w io.Writer, output string, docs []*document.Document, results [][]string) error {
	switch output {
	case "json":
		out := make([]fileResult, len(docs))
		for i, doc := range docs {
			out[i] = fileResult{File: doc.Path, Sentences: results[i]}
			if out[i].Sentences == nil {
				out[i].Sentences = []string{}
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "jsonl":
		enc := json.NewEncoder(w)
		for i, doc := range docs {
			for j, sentence := range results[i] {
				if err := enc.Encode(sentenceLine{File: doc.Path, Index: j, Text: sentence}); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		for i, doc := range docs {
			if len(docs) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "==> %s <==\n", doc.Path)
			}
			for _, sentence := range results[i] {
				fmt.Fprintln(w, sentence)
			}
		}
		return nil
	}
}

// BlocksCmd implements the 'blocks' command.
type BlocksCmd struct {
	File string `arg:"" optional:"" help:"HTML or Markdown file (default: stdin)"`
}

func (cmd *BlocksCmd) Run(cli *CLI) error {
	s, err := cli.settings()
	if err != nil {
		return err
	}
	seg, err := cli.segmenter(s)
	if err != nil {
		return err
	}

	var files []string
	if cmd.File != "" {
		files = []string{cmd.File}
	}
	docs, err := load(s, files, os.Stdin)
	if err != nil {
		return err
	}

	for i, block := range seg.DocumentBlocks(docs[0]) {
		fmt.Printf("%d: %s\n", i+1, block)
	}
	return nil
}

// CompleteCmd implements the 'complete' command.
type CompleteCmd struct {
	Text []string `arg:"" help:"Text to check"`
}

func (cmd *CompleteCmd) Run(cli *CLI) error {
	s, err := cli.settings()
	if err != nil {
		return err
	}
	seg, err := cli.segmenter(s)
	if err != nil {
		return err
	}

	text := strings.Join(cmd.Text, " ")
	fmt.Printf("Text: %q\n", text)
	fmt.Printf("Complete: %v\n", seg.IsComplete(text))
	return nil
}

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sbd-cli"),
		kong.Description("Rule-based sentence boundary detection for HTML, Markdown and text"),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("%s (%s, %s)", version, commit, date)},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
