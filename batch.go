package sbd

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-sbd/document"
)

// SegmentAll segments independent documents, such as the chapters of a
// book, in parallel. Result i holds the sentences of docs[i].
// Respects context cancellation.
func (s *Segmenter) SegmentAll(ctx context.Context, docs []string) ([][]string, error) {
	return s.parallel(ctx, len(docs), func(i int) []string {
		return s.Segment(docs[i])
	})
}

// SegmentDocuments is SegmentAll for loaded documents of mixed formats.
func (s *Segmenter) SegmentDocuments(ctx context.Context, docs []*document.Document) ([][]string, error) {
	return s.parallel(ctx, len(docs), func(i int) []string {
		return s.SegmentDocument(docs[i])
	})
}

// parallel runs fn for 0..n-1 with at most s.concurrency calls in flight.
// Work not yet started when ctx is done is skipped.
func (s *Segmenter) parallel(ctx context.Context, n int, fn func(i int) []string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([][]string, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fn(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation may have stopped the loop before any goroutine noticed.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
