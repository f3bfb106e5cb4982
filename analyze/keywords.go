package analyze

import (
	"strings"

	"github.com/fwojciec/pagegrade"
)

// Result sizes for keyword statistics.
const (
	topKeywordCount = 30
	topBigramCount  = 15
	topTrigramCount = 10

	// minNgramCount drops n-grams seen fewer times than this.
	minNgramCount = 2
)

// Keywords computes keyword and n-gram statistics over the content words
// of doc (word tokens that are not stop words, in normalized form).
func Keywords(doc *pagegrade.RawDocument) *pagegrade.KeywordStats {
	terms := doc.ContentTerms()
	total := len(terms)
	ranked := RankTerms(terms)

	top := make([]pagegrade.Keyword, 0, min(len(ranked), topKeywordCount))
	for _, tc := range head(ranked, topKeywordCount) {
		top = append(top, pagegrade.Keyword{
			Term:    tc.Term,
			Count:   tc.Count,
			Density: roundHalfUp(float64(tc.Count)/float64(total)*10000) / 100,
		})
	}

	stats := &pagegrade.KeywordStats{
		TotalContentWords: total,
		UniqueWords:       len(ranked),
		TopKeywords:       top,
		TopBigrams:        head(Ngrams(terms, 2), topBigramCount),
		TopTrigrams:       head(Ngrams(terms, 3), topTrigramCount),
	}
	if total > 0 {
		stats.LexicalDiversity = roundHalfUp(float64(len(ranked))/float64(total)*1000) / 10
	}
	return stats
}

// Ngrams returns the n-grams of terms seen at least twice, by descending count.
// N-grams are sliding windows over terms joined by a single space.
func Ngrams(terms []string, n int) []pagegrade.TermCount {
	if n <= 0 || len(terms) < n {
		return []pagegrade.TermCount{}
	}
	grams := make([]string, 0, len(terms)-n+1)
	for i := 0; i+n <= len(terms); i++ {
		grams = append(grams, strings.Join(terms[i:i+n], " "))
	}

	out := make([]pagegrade.TermCount, 0)
	for _, tc := range RankTerms(grams) {
		if tc.Count < minNgramCount {
			break
		}
		out = append(out, tc)
	}
	return out
}

// TopTerms returns the set of the first n keywords of stats.
func TopTerms(stats *pagegrade.KeywordStats, n int) map[string]bool {
	set := make(map[string]bool, n)
	for _, kw := range head(stats.TopKeywords, n) {
		set[kw.Term] = true
	}
	return set
}
