// Package analyze implements the content scoring pipeline.
// It turns a page and its annotations into metric groups, a composite
// score, recommendations and per-section snippet scores.
//
// The metric extractors are pure functions over a RawDocument and the page
// model. Analyzer orchestrates them around a pagegrade.Annotator.
package analyze

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/fwojciec/pagegrade"
)

// roundHalfUp rounds x to the nearest integer, halves rounding up.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// round3 rounds x to 3 decimal places.
func round3(x float64) float64 {
	return roundHalfUp(x*1000) / 1000
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// RankTerms counts terms and orders them by descending count.
// Terms with equal counts keep the order of their first occurrence.
func RankTerms(terms []string) []pagegrade.TermCount {
	index := make(map[string]int)
	ranked := make([]pagegrade.TermCount, 0)
	for _, term := range terms {
		if i, ok := index[term]; ok {
			ranked[i].Count++
			continue
		}
		index[term] = len(ranked)
		ranked = append(ranked, pagegrade.TermCount{Term: term, Count: 1})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
