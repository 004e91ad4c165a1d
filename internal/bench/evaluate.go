package bench

import (
	"context"

	"golang.org/x/sync/errgroup"

	sbd "github.com/jamesainslie/go-sbd"
)

// EvaluateDocument segments doc.Text as plain text and scores the sentence
// ends against the gold boundaries.
func EvaluateDocument(seg *sbd.Segmenter, doc *Document, cfg Config) Metrics {
	_, predicted := seg.SegmentTextWithBoundaries(doc.Text)
	return Evaluate(predicted, doc.Boundaries(), cfg)
}

// EvaluateCorpus scores every document in parallel and returns the
// aggregate over all boundaries.
func EvaluateCorpus(ctx context.Context, docs []*Document, cfg Config) (Metrics, error) {
	seg := sbd.New(sbd.WithMinLength(cfg.MinLength))

	perDoc := make([]Metrics, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perDoc[i] = EvaluateDocument(seg, doc, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Metrics{}, err
	}

	total := NewMetrics(0, 0, 0, cfg)
	for _, m := range perDoc {
		total = total.Add(m, cfg)
	}
	return total, nil
}
