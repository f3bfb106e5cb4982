package analyze_test

import (
	"testing"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing for a flawless page", func(t *testing.T) {
		t.Parallel()

		got := analyze.Recommend(perfectInputs())

		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("recommends an h1 before fixing the hierarchy", func(t *testing.T) {
		t.Parallel()

		r, kw, _, meta := perfectInputs()
		page := &pagegrade.Page{
			Headings:       pagegrade.Headings{H2: []string{"Overview"}, H4: []string{"Detail"}},
			Links:          pagegrade.LinkStats{Total: 3},
			StructuredData: []any{map[string]any{}},
		}
		st := analyze.Structure(page)

		got := analyze.Recommend(r, kw, st, meta)

		require.Len(t, got, 2)
		assert.Equal(t, pagegrade.Recommendation{
			Priority: pagegrade.PriorityHigh,
			Category: pagegrade.CategoryStructure,
			Message:  "Add an H1 heading that includes your primary keyword",
		}, got[0])
		assert.Equal(t, pagegrade.PriorityMedium, got[1].Priority)
		assert.Contains(t, got[1].Message, "Fix heading hierarchy")
	})

	t.Run("reports multiple h1 headings with their count", func(t *testing.T) {
		t.Parallel()

		r, kw, st, meta := perfectInputs()
		st.H1Count = 3
		st.H1Status = pagegrade.H1Multiple
		st.HasProperHierarchy = false

		got := analyze.Recommend(r, kw, st, meta)

		require.NotEmpty(t, got)
		assert.Equal(t, "Use only one H1 heading per page (found 3)", got[0].Message)
		assert.Equal(t, pagegrade.PriorityMedium, got[0].Priority)
	})

	t.Run("formats numeric details in messages", func(t *testing.T) {
		t.Parallel()

		r, kw, st, meta := perfectInputs()
		r.FleschReadingEase = ptr(35.5)
		r.AvgWordsPerSentence = 27.3
		kw.TotalContentWords = 120
		kw.LexicalDiversity = 18.2
		st.Images = pagegrade.ImageStats{Total: 4, WithoutAlt: 2}
		st.HasStructuredData = false

		got := analyze.Recommend(r, kw, st, meta)

		assert.Equal(t, []pagegrade.Recommendation{
			{Priority: pagegrade.PriorityHigh, Category: pagegrade.CategoryContent, Message: "Content is thin (120 words). Aim for 600+ words for better ranking"},
			{Priority: pagegrade.PriorityMedium, Category: pagegrade.CategoryReadability, Message: "Content is hard to read (Flesch score: 35.5). Simplify sentences and use shorter words"},
			{Priority: pagegrade.PriorityMedium, Category: pagegrade.CategoryReadability, Message: "Average sentence length is 27.3 words. Keep sentences under 20 words for better readability"},
			{Priority: pagegrade.PriorityMedium, Category: pagegrade.CategoryAccessibility, Message: "2 image(s) missing alt text"},
			{Priority: pagegrade.PriorityLow, Category: pagegrade.CategoryContent, Message: "Low vocabulary diversity (18.2%). Use more varied language"},
			{Priority: pagegrade.PriorityLow, Category: pagegrade.CategoryTechnical, Message: "No structured data (JSON-LD) found. Add schema markup for rich search results"},
		}, got)
	})

	t.Run("skips the hard-to-read item when ease is unknown", func(t *testing.T) {
		t.Parallel()

		r, kw, st, meta := perfectInputs()
		r.FleschReadingEase = nil

		got := analyze.Recommend(r, kw, st, meta)

		assert.Empty(t, got)
	})

	t.Run("puts critical meta issues first and meta warnings last among medium", func(t *testing.T) {
		t.Parallel()

		r, kw, st, _ := perfectInputs()
		st.Images = pagegrade.ImageStats{WithoutAlt: 1}
		m := fullMeta()
		m.Title = ""
		m.Lang = ""
		meta := analyze.AuditMeta(m)

		got := analyze.Recommend(r, kw, st, meta)

		assert.Equal(t, []pagegrade.Recommendation{
			{Priority: pagegrade.PriorityHigh, Category: pagegrade.CategoryMeta, Message: "Missing page title"},
			{Priority: pagegrade.PriorityMedium, Category: pagegrade.CategoryAccessibility, Message: "1 image(s) missing alt text"},
			{Priority: pagegrade.PriorityMedium, Category: pagegrade.CategoryMeta, Message: "Missing lang attribute on html element"},
		}, got)
	})

	t.Run("orders all priorities and keeps generation order", func(t *testing.T) {
		t.Parallel()

		r := &pagegrade.Readability{FleschReadingEase: ptr(20), AvgWordsPerSentence: 30}
		kw := &pagegrade.KeywordStats{TotalContentWords: 10, LexicalDiversity: 5}
		st := analyze.Structure(&pagegrade.Page{Headings: pagegrade.Headings{H1: []string{"a", "b"}, H3: []string{"c"}}})
		meta := analyze.AuditMeta(pagegrade.Meta{Title: "short"})

		got := analyze.Recommend(r, kw, st, meta)

		last := 0
		for _, rec := range got {
			assert.GreaterOrEqual(t, rec.Priority.Rank(), last)
			last = rec.Priority.Rank()
		}
		assert.Equal(t, "Missing meta description", got[0].Message)
		assert.Equal(t, "Content is thin (10 words). Aim for 600+ words for better ranking", got[1].Message)
	})
}
