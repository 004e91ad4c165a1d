package bench

import (
	"context"
	"sort"
)

// SweepResult holds metrics for one minimum sentence length.
type SweepResult struct {
	MinLength int
	Metrics   Metrics
}

// SweepMinLengths generates lengths from min to max inclusive with the given step.
func SweepMinLengths(min, max, step int) []int {
	if step <= 0 {
		step = 1
	}
	var lengths []int
	for n := min; n <= max; n += step {
		lengths = append(lengths, n)
	}
	return lengths
}

// Sweep evaluates multiple minimum lengths and returns results sorted by
// weighted score, best first. Ties keep the order of lengths.
func Sweep(ctx context.Context, docs []*Document, cfg Config, lengths []int) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(lengths))

	for _, n := range lengths {
		cfg.MinLength = n
		m, err := EvaluateCorpus(ctx, docs, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, SweepResult{MinLength: n, Metrics: m})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
