package analyze

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/pagegrade"
)

// Recommend derives a prioritized list of improvements from the metric
// groups. Candidates are generated independently, then ordered by
// priority keeping generation order among equals.
func Recommend(r *pagegrade.Readability, kw *pagegrade.KeywordStats, st *pagegrade.StructureSummary, meta *pagegrade.MetaAudit) []pagegrade.Recommendation {
	recs := make([]pagegrade.Recommendation, 0)
	add := func(p pagegrade.Priority, c pagegrade.Category, msg string) {
		recs = append(recs, pagegrade.Recommendation{Priority: p, Category: c, Message: msg})
	}

	for _, issue := range meta.Issues {
		if issue.Severity == pagegrade.SeverityCritical {
			add(pagegrade.PriorityHigh, pagegrade.CategoryMeta, issue.Message)
		}
	}

	switch st.H1Status {
	case pagegrade.H1Missing:
		add(pagegrade.PriorityHigh, pagegrade.CategoryStructure,
			"Add an H1 heading that includes your primary keyword")
	case pagegrade.H1Multiple:
		add(pagegrade.PriorityMedium, pagegrade.CategoryStructure,
			fmt.Sprintf("Use only one H1 heading per page (found %d)", st.H1Count))
	}

	if !st.HasProperHierarchy {
		add(pagegrade.PriorityMedium, pagegrade.CategoryStructure,
			"Fix heading hierarchy: avoid skipping levels (e.g., H1 to H3 without H2)")
	}

	if kw.TotalContentWords < 300 {
		add(pagegrade.PriorityHigh, pagegrade.CategoryContent,
			fmt.Sprintf("Content is thin (%d words). Aim for 600+ words for better ranking", kw.TotalContentWords))
	}

	if ease := r.FleschReadingEase; ease != nil && *ease < 40 {
		add(pagegrade.PriorityMedium, pagegrade.CategoryReadability,
			fmt.Sprintf("Content is hard to read (Flesch score: %s). Simplify sentences and use shorter words", formatNumber(*ease)))
	}

	if r.AvgWordsPerSentence > 25 {
		add(pagegrade.PriorityMedium, pagegrade.CategoryReadability,
			fmt.Sprintf("Average sentence length is %s words. Keep sentences under 20 words for better readability", formatNumber(r.AvgWordsPerSentence)))
	}

	if st.Images.WithoutAlt > 0 {
		add(pagegrade.PriorityMedium, pagegrade.CategoryAccessibility,
			fmt.Sprintf("%d image(s) missing alt text", st.Images.WithoutAlt))
	}

	if kw.LexicalDiversity < 25 {
		add(pagegrade.PriorityLow, pagegrade.CategoryContent,
			fmt.Sprintf("Low vocabulary diversity (%s%%). Use more varied language", formatNumber(kw.LexicalDiversity)))
	}

	if !st.HasStructuredData {
		add(pagegrade.PriorityLow, pagegrade.CategoryTechnical,
			"No structured data (JSON-LD) found. Add schema markup for rich search results")
	}

	for _, issue := range meta.Issues {
		if issue.Severity == pagegrade.SeverityWarning {
			add(pagegrade.PriorityMedium, pagegrade.CategoryMeta, issue.Message)
		}
	}

	pagegrade.SortRecommendations(recs)
	return recs
}

// formatNumber prints f in its shortest form, without a trailing ".0".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
