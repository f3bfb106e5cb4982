package analyze

import (
	"sort"

	"github.com/fwojciec/pagegrade"
)

const (
	sentimentTextLength = 120
	sentimentExtremes   = 3
)

// Sentiment summarizes document sentiment and its most positive and most
// negative sentences.
func Sentiment(doc *pagegrade.RawDocument) *pagegrade.SentimentSummary {
	sentences := make([]pagegrade.SentenceSentiment, 0, len(doc.Sentences))
	for _, s := range doc.Sentences {
		sentences = append(sentences, pagegrade.SentenceSentiment{
			Text:  truncate(s.Text, sentimentTextLength),
			Score: s.Sentiment,
		})
	}
	sort.SliceStable(sentences, func(i, j int) bool {
		return sentences[i].Score < sentences[j].Score
	})

	mostNegative := head(sentences, sentimentExtremes)
	mostPositive := make([]pagegrade.SentenceSentiment, 0, sentimentExtremes)
	for i := len(sentences) - 1; i >= 0 && len(mostPositive) < sentimentExtremes; i-- {
		mostPositive = append(mostPositive, sentences[i])
	}

	return &pagegrade.SentimentSummary{
		Overall:      round3(doc.Sentiment),
		Label:        SentimentLabel(doc.Sentiment),
		MostPositive: mostPositive,
		MostNegative: mostNegative,
	}
}

// SentimentLabel labels a sentiment score in [-1, 1].
func SentimentLabel(score float64) string {
	switch {
	case score > 0.2:
		return "positive"
	case score > 0.05:
		return "slightly positive"
	case score < -0.2:
		return "negative"
	case score < -0.05:
		return "slightly negative"
	default:
		return "neutral"
	}
}
