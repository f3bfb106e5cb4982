package analyze_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_AnalyzeText(t *testing.T) {
	t.Parallel()

	t.Run("counts words, stop words and keywords", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(textAnnotator())

		stats, err := a.AnalyzeText(context.Background(), "The cat and the dog. The cat sleeps.")

		require.NoError(t, err)
		assert.Equal(t, 8, stats.WordCount)
		assert.Equal(t, 4, stats.StopWords)
		assert.Equal(t, 4, stats.ContentWords)
		assert.Equal(t, 2, stats.Sentences)
		assert.Equal(t, 10, stats.Tokens)
		assert.Equal(t, []pagegrade.TermCount{
			{Term: "cat", Count: 2},
			{Term: "dog", Count: 1},
			{Term: "sleeps", Count: 1},
		}, stats.TopKeywords)
		assert.Nil(t, stats.Readability)
		assert.NotNil(t, stats.Entities)
	})

	t.Run("includes readability stats when supported", func(t *testing.T) {
		t.Parallel()

		annotator := textAnnotator()
		annotator.ReadabilityStatsFn = func(_ *pagegrade.RawDocument) (*pagegrade.ReadabilityStats, error) {
			return &pagegrade.ReadabilityStats{FleschReadingEase: 80}, nil
		}

		stats, err := analyze.NewAnalyzer(annotator).AnalyzeText(context.Background(), "Easy text.")

		require.NoError(t, err)
		require.NotNil(t, stats.Readability)
		assert.InDelta(t, 80.0, stats.Readability.FleschReadingEase, 0.001)
	})

	t.Run("rejects blank text", func(t *testing.T) {
		t.Parallel()

		_, err := analyze.NewAnalyzer(textAnnotator()).AnalyzeText(context.Background(), "  \n ")

		assert.Equal(t, pagegrade.EINVALID, pagegrade.ErrorCode(err))
	})
}
