package gofpdf_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_EncodeReport(t *testing.T) {
	t.Parallel()

	t.Run("writes a PDF document", func(t *testing.T) {
		t.Parallel()

		report := &pagegrade.Report{
			URL:   "https://example.com/roses",
			Score: &pagegrade.Score{Total: 84, Grade: "B", Breakdown: pagegrade.ScoreBreakdown{Readability: 20, Content: 22, Structure: 22, Meta: 20}},
			Recommendations: []pagegrade.Recommendation{
				{Priority: pagegrade.PriorityHigh, Category: pagegrade.CategoryMeta, Message: "Add a meta description – it is missing"},
			},
		}
		var buf bytes.Buffer

		err := gofpdf.NewEncoder().EncodeReport(&buf, report)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		assert.Contains(t, buf.String(), "%%EOF")
	})

	t.Run("writes error results", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		err := gofpdf.NewEncoder().EncodeReport(&buf, &pagegrade.Report{Error: pagegrade.ErrInsufficientContent})

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})
}
