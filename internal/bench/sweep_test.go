package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepMinLengths(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4, 6, 8}, SweepMinLengths(0, 8, 2))
}

func TestSweepMinLengths_BadStep(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, SweepMinLengths(1, 3, 0))
}

func TestSweep(t *testing.T) {
	text, sentences := ParseGold("Go.\nThis is a longer sentence.\nOk then, fine.")
	docs := []*Document{{ID: "short", Text: text, Sentences: sentences}}

	results, err := Sweep(context.Background(), docs, DefaultConfig(), []int{10, 0})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Keeping "Go." finds every gold boundary; dropping it loses one.
	assert.Equal(t, 0, results[0].MinLength)
	assert.Equal(t, 1.0, results[0].Metrics.Recall)
	assert.Equal(t, 1, results[1].Metrics.FalseNegatives)
}
