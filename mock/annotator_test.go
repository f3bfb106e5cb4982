package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotator_Annotate(t *testing.T) {
	t.Parallel()

	t.Run("delegates to AnnotateFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		a := &mock.Annotator{
			AnnotateFn: func(_ context.Context, text string) (*pagegrade.RawDocument, error) {
				calledWith = text
				return &pagegrade.RawDocument{Text: text}, nil
			},
		}

		doc, err := a.Annotate(context.Background(), "Some text.")

		require.NoError(t, err)
		assert.Equal(t, "Some text.", calledWith)
		assert.Equal(t, "Some text.", doc.Text)
	})
}

func TestAnnotator_Capabilities(t *testing.T) {
	t.Parallel()

	t.Run("reports unsupported when capability functions are unset", func(t *testing.T) {
		t.Parallel()

		a := &mock.Annotator{}

		_, err := a.ReadabilityStats(&pagegrade.RawDocument{})
		assert.Equal(t, pagegrade.EUNSUPPORTED, pagegrade.ErrorCode(err))

		_, err = a.SentenceImportance(&pagegrade.RawDocument{})
		assert.Equal(t, pagegrade.EUNSUPPORTED, pagegrade.ErrorCode(err))
	})

	t.Run("delegates to capability functions when set", func(t *testing.T) {
		t.Parallel()

		a := &mock.Annotator{
			ReadabilityStatsFn: func(_ *pagegrade.RawDocument) (*pagegrade.ReadabilityStats, error) {
				return &pagegrade.ReadabilityStats{FleschReadingEase: 65}, nil
			},
		}

		stats, err := a.ReadabilityStats(&pagegrade.RawDocument{})

		require.NoError(t, err)
		assert.InDelta(t, 65.0, stats.FleschReadingEase, 0.001)
	})
}
