package analyze

import "github.com/fwojciec/pagegrade"

// readabilityStats asks the annotator for readability primitives.
// Returns nil stats when the capability is absent or unsupported.
func readabilityStats(a pagegrade.Annotator, doc *pagegrade.RawDocument) (*pagegrade.ReadabilityStats, error) {
	scorer, ok := a.(pagegrade.ReadabilityScorer)
	if !ok {
		return nil, nil
	}
	stats, err := scorer.ReadabilityStats(doc)
	if pagegrade.ErrorCode(err) == pagegrade.EUNSUPPORTED {
		return nil, nil
	}
	return stats, err
}

// sentenceImportance asks the annotator to rank the sentences of doc.
// Returns nil when the capability is absent or unsupported.
func sentenceImportance(a pagegrade.Annotator, doc *pagegrade.RawDocument) ([]pagegrade.SentenceImportance, error) {
	ranker, ok := a.(pagegrade.ImportanceRanker)
	if !ok {
		return nil, nil
	}
	ranks, err := ranker.SentenceImportance(doc)
	if pagegrade.ErrorCode(err) == pagegrade.EUNSUPPORTED {
		return nil, nil
	}
	return ranks, err
}
