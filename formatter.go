package pagegrade

import (
	"fmt"
	"strings"
)

// FormatReport renders a report as a Markdown summary.
// Error results render as a heading plus the error message.
func FormatReport(r *Report) string {
	var sb strings.Builder

	header := r.URL
	if r.Content != nil && r.Content.Meta.Title != "" {
		header = r.Content.Meta.Title
	}
	fmt.Fprintf(&sb, "# Content report: %s\n", header)

	if r.Failed() {
		fmt.Fprintf(&sb, "\n**Error:** %s\n", r.Error)
		return sb.String()
	}

	if r.Score != nil {
		b := r.Score.Breakdown
		fmt.Fprintf(&sb, "\n**Score:** %d/100 (grade %s)\n\n", r.Score.Total, r.Score.Grade)
		sb.WriteString("| Area | Score |\n|---|---|\n")
		fmt.Fprintf(&sb, "| Readability | %d/25 |\n", b.Readability)
		fmt.Fprintf(&sb, "| Content | %d/25 |\n", b.Content)
		fmt.Fprintf(&sb, "| Structure | %d/25 |\n", b.Structure)
		fmt.Fprintf(&sb, "| Meta | %d/25 |\n", b.Meta)
	}

	if rd := r.Readability; rd != nil {
		sb.WriteString("\n## Readability\n\n")
		if rd.FleschReadingEase != nil {
			fmt.Fprintf(&sb, "- Flesch reading ease: %g (%s)\n", *rd.FleschReadingEase, rd.ReadingLevel)
		} else {
			fmt.Fprintf(&sb, "- Flesch reading ease: %s\n", rd.ReadingLevel)
		}
		fmt.Fprintf(&sb, "- Words: %d in %d sentences\n", rd.WordCount, rd.SentenceCount)
		fmt.Fprintf(&sb, "- Average sentence length: %g words\n", rd.AvgWordsPerSentence)
		fmt.Fprintf(&sb, "- Reading time: %dm %ds\n", rd.ReadingTime.Minutes, rd.ReadingTime.Seconds)
	}

	if kw := r.Keywords; kw != nil && len(kw.TopKeywords) > 0 {
		sb.WriteString("\n## Top keywords\n\n")
		for i, k := range kw.TopKeywords {
			if i == 10 {
				break
			}
			fmt.Fprintf(&sb, "- %s (%d, %g%%)\n", k.Term, k.Count, k.Density)
		}
	}

	if len(r.Recommendations) > 0 {
		sb.WriteString("\n## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&sb, "- **%s** [%s] %s\n", rec.Priority, rec.Category, rec.Message)
		}
	}

	if c := r.Chunks; c != nil && c.Summary != nil {
		sb.WriteString("\n## Sections\n\n")
		fmt.Fprintf(&sb, "Average snippet score: %d (grade %s)\n\n", c.Summary.AvgSnippetScore, c.Summary.AvgGrade)
		sb.WriteString("| Section | Words | Score | Grade |\n|---|---|---|---|\n")
		for _, item := range c.Items {
			fmt.Fprintf(&sb, "| %s | %d | %d | %s |\n", escapeCell(item.Heading), item.WordCount, item.SnippetScore, item.SnippetGrade)
		}
	}

	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
