package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	sbd "github.com/jamesainslie/go-sbd"
	"github.com/jamesainslie/go-sbd/internal/bench"
	"github.com/jamesainslie/go-sbd/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI holds the benchmark flags.
type CLI struct {
	Corpus    string  `help:"Directory containing gold corpus files" default:"testdata/gold" env:"SBD_BENCH_CORPUS"`
	MinLength int     `name:"min-length" help:"Minimum sentence length passed to the segmenter" default:"3"`
	Tolerance int     `help:"Byte tolerance for boundary matching" default:"3"`
	Wp        float64 `name:"wp" help:"Precision weight" default:"1.0"`
	Wr        float64 `name:"wr" help:"Recall weight" default:"1.0"`
	Verbose   bool    `short:"v" help:"Print per-document scores"`

	Sweep     bool `help:"Run a minimum length sweep"`
	SweepMin  int  `name:"sweep-min" help:"Sweep minimum length" default:"0"`
	SweepMax  int  `name:"sweep-max" help:"Sweep maximum length" default:"12"`
	SweepStep int  `name:"sweep-step" help:"Sweep step size" default:"1"`

	Version kong.VersionFlag `help:"Show version and exit"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func (c *CLI) Run() error {
	docs, err := bench.LoadCorpus(c.Corpus)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no corpus files in %s", c.Corpus)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), c.Corpus)

	cfg := bench.Config{
		MinLength:       c.MinLength,
		Tolerance:       c.Tolerance,
		PrecisionWeight: c.Wp,
		RecallWeight:    c.Wr,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if c.Sweep {
		return runSweep(ctx, docs, cfg, c.SweepMin, c.SweepMax, c.SweepStep)
	}
	return c.runSingle(ctx, docs, cfg)
}

func (c *CLI) runSingle(ctx context.Context, docs []*bench.Document, cfg bench.Config) error {
	if c.Verbose {
		seg := sbd.New(sbd.WithMinLength(cfg.MinLength), sbd.WithLogger(slog.Default()))
		for _, doc := range docs {
			m := bench.EvaluateDocument(seg, doc, cfg)
			slog.Info("document scored",
				"id", doc.ID,
				"precision", m.Precision,
				"recall", m.Recall,
				"f1", m.F1)
		}
	}

	m, err := bench.EvaluateCorpus(ctx, docs, cfg)
	if err != nil {
		return fmt.Errorf("evaluating corpus: %w", err)
	}
	printMetrics(m)
	return nil
}

func runSweep(ctx context.Context, docs []*bench.Document, cfg bench.Config, lo, hi, step int) error {
	lengths := bench.SweepMinLengths(lo, hi, step)

	fmt.Printf("Min Length Sweep Results (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-8s %-8s %-8s %-8s %-8s\n", "MinLen", "Prec", "Rec", "F1", "Weighted")

	results, err := bench.Sweep(ctx, docs, cfg, lengths)
	if err != nil {
		return fmt.Errorf("during sweep: %w", err)
	}

	// Print sorted by length for readability
	byLength := append([]bench.SweepResult(nil), results...)
	sort.Slice(byLength, func(i, j int) bool { return byLength[i].MinLength < byLength[j].MinLength })
	for _, r := range byLength {
		fmt.Printf("%-8d %-8.2f %-8.2f %-8.2f %-8.2f\n",
			r.MinLength, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore)
	}

	fmt.Println(strings.Repeat("-", 50))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Optimal: %d (Weighted: %.2f)\n", best.MinLength, best.Metrics.WeightedScore)
	}
	return nil
}

func printMetrics(m bench.Metrics) {
	fmt.Printf("Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sbd-bench"),
		kong.Description("Score the sentence segmenter against a gold corpus"),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("%s (%s, %s)", version, commit, date)},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
