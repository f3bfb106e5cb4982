package analyze

import "github.com/fwojciec/pagegrade"

// maxSubScore is the starting value and ceiling of each sub-score.
const maxSubScore = 25

// ComputeScore combines the metric groups into a 0-100 score. Each of the
// four sub-scores starts at 25, loses fixed penalties and is floored at 0.
func ComputeScore(r *pagegrade.Readability, kw *pagegrade.KeywordStats, st *pagegrade.StructureSummary, meta *pagegrade.MetaAudit) *pagegrade.Score {
	b := pagegrade.ScoreBreakdown{
		Readability: readabilityScore(r),
		Content:     contentScore(kw),
		Structure:   structureScore(st),
		Meta:        metaScore(meta, st.HasStructuredData),
	}
	total := b.Sum()
	return &pagegrade.Score{
		Total:     total,
		Grade:     pagegrade.Grade(total),
		Breakdown: b,
	}
}

func readabilityScore(r *pagegrade.Readability) int {
	score := maxSubScore
	if ease := r.FleschReadingEase; ease != nil {
		switch {
		case *ease < 30:
			score -= 15
		case *ease < 50:
			score -= 8
		case *ease > 80:
			score -= 3
		}
	}
	if r.AvgWordsPerSentence > 25 {
		score -= 5
	}
	if r.AvgWordsPerSentence < 5 {
		score -= 3
	}
	return max(0, score)
}

func contentScore(kw *pagegrade.KeywordStats) int {
	score := maxSubScore
	switch {
	case kw.TotalContentWords < 100:
		score -= 15
	case kw.TotalContentWords < 300:
		score -= 8
	}
	if kw.LexicalDiversity < 20 {
		score -= 5
	}
	if len(kw.TopBigrams) < 3 {
		score -= 3
	}
	return max(0, score)
}

func structureScore(st *pagegrade.StructureSummary) int {
	score := maxSubScore
	switch st.H1Status {
	case pagegrade.H1Missing:
		score -= 10
	case pagegrade.H1Multiple:
		score -= 5
	}
	if !st.HasProperHierarchy {
		score -= 5
	}
	score -= min(5, st.Images.WithoutAlt)
	if st.Links.Total == 0 {
		score -= 3
	}
	return max(0, score)
}

// metaScore applies the structured-data bonus after the floor.
func metaScore(meta *pagegrade.MetaAudit, hasStructuredData bool) int {
	score := maxSubScore - 8*meta.Summary.Critical - 3*meta.Summary.Warning - meta.Summary.Info
	score = max(0, score)
	if hasStructuredData {
		score = min(maxSubScore, score+3)
	}
	return score
}
