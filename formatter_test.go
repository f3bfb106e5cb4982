package pagegrade_test

import (
	"testing"

	"github.com/fwojciec/pagegrade"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("renders error results with the message only", func(t *testing.T) {
		t.Parallel()

		r := &pagegrade.Report{
			URL:     "https://example.com/",
			Error:   pagegrade.ErrInsufficientContent,
			Content: &pagegrade.Page{BodyText: "Hi."},
		}

		result := pagegrade.FormatReport(r)

		expected := "# Content report: https://example.com/\n\n**Error:** Insufficient content for analysis\n"
		assert.Equal(t, expected, result)
	})

	t.Run("uses the page title as header when present", func(t *testing.T) {
		t.Parallel()

		r := &pagegrade.Report{
			URL:     "https://example.com/",
			Content: &pagegrade.Page{Meta: pagegrade.Meta{Title: "Pricing"}},
		}

		result := pagegrade.FormatReport(r)

		assert.Contains(t, result, "# Content report: Pricing\n")
	})

	t.Run("renders score breakdown and recommendations", func(t *testing.T) {
		t.Parallel()

		ease := 62.5
		r := &pagegrade.Report{
			URL: "https://example.com/",
			Score: &pagegrade.Score{
				Total:     72,
				Grade:     "C",
				Breakdown: pagegrade.ScoreBreakdown{Readability: 25, Content: 17, Structure: 20, Meta: 10},
			},
			Readability: &pagegrade.Readability{
				FleschReadingEase: &ease,
				ReadingLevel:      "Standard (8th-9th grade)",
				WordCount:         400,
				SentenceCount:     20,
			},
			Recommendations: []pagegrade.Recommendation{
				{Priority: pagegrade.PriorityHigh, Category: pagegrade.CategoryMeta, Message: "Missing page title"},
			},
		}

		result := pagegrade.FormatReport(r)

		assert.Contains(t, result, "**Score:** 72/100 (grade C)")
		assert.Contains(t, result, "| Content | 17/25 |")
		assert.Contains(t, result, "- Flesch reading ease: 62.5 (Standard (8th-9th grade))")
		assert.Contains(t, result, "- **high** [meta] Missing page title")
	})

	t.Run("escapes pipes in section headings", func(t *testing.T) {
		t.Parallel()

		r := &pagegrade.Report{
			Chunks: &pagegrade.Chunks{
				Items:   []pagegrade.ChunkResult{{Heading: "A | B", WordCount: 50, SnippetScore: 72, SnippetGrade: "B"}},
				Summary: &pagegrade.ChunkSummary{TotalChunks: 1, AvgSnippetScore: 72, AvgGrade: "B"},
			},
		}

		result := pagegrade.FormatReport(r)

		assert.Contains(t, result, `| A \| B | 50 | 72 | B |`)
	})
}
