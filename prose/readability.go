package prose

import (
	"math"
	"sort"
	"strings"

	"github.com/fwojciec/pagegrade"
)

const (
	// readingSpeed is the assumed reading speed in words per minute.
	readingSpeed = 250

	// complexSyllables is the syllable count at which a word is complex.
	complexSyllables = 3
)

// ReadabilityStats computes the Flesch reading-ease score, reading time and
// complex words of an annotated document. A document without words has no
// score and reports EUNSUPPORTED.
func (a *Annotator) ReadabilityStats(doc *pagegrade.RawDocument) (*pagegrade.ReadabilityStats, error) {
	if doc == nil {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "document required")
	}

	stats := &pagegrade.ReadabilityStats{}

	var words, syllables int
	seen := make(map[string]bool)
	for _, tok := range doc.Tokens {
		if tok.Type != pagegrade.TokenWord {
			continue
		}
		words++
		n := CountSyllables(tok.Normal)
		syllables += n
		if n >= complexSyllables {
			stats.ComplexWordCount++
			if !seen[tok.Normal] {
				seen[tok.Normal] = true
				stats.ComplexWords = append(stats.ComplexWords, tok.Normal)
			}
		}
	}
	if words == 0 {
		return nil, pagegrade.Errorf(pagegrade.EUNSUPPORTED, "no words to score")
	}

	sentences := max(len(doc.Sentences), 1)
	ease := 206.835 -
		1.015*float64(words)/float64(sentences) -
		84.6*float64(syllables)/float64(words)
	stats.FleschReadingEase = math.Round(ease*10) / 10

	secs := int(math.Round(float64(words) * 60 / readingSpeed))
	stats.ReadingTimeMins = secs / 60
	stats.ReadingTimeSecs = secs % 60

	return stats, nil
}

// CountSyllables estimates the syllables in a lower-case word by counting
// vowel groups. A trailing silent e is dropped; every word has at least one.
func CountSyllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	return max(count, 1)
}

// SentenceImportance ranks sentences by the average document frequency of
// their content words, normalized so the top sentence scores 1.
// Results are ordered by descending importance, ties by position.
func (a *Annotator) SentenceImportance(doc *pagegrade.RawDocument) ([]pagegrade.SentenceImportance, error) {
	if doc == nil {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "document required")
	}

	freq := make(map[string]int)
	for _, term := range doc.ContentTerms() {
		freq[term]++
	}

	lower := newLower()
	ranks := make([]pagegrade.SentenceImportance, len(doc.Sentences))
	var top float64
	for i, sent := range doc.Sentences {
		var sum, n float64
		for _, w := range splitWords(lower, sent.Text) {
			if IsStopWord(w) {
				continue
			}
			sum += float64(freq[w])
			n++
		}
		score := 0.0
		if n > 0 {
			score = sum / n
		}
		ranks[i] = pagegrade.SentenceImportance{Index: i, Importance: score}
		top = math.Max(top, score)
	}
	if top > 0 {
		for i := range ranks {
			ranks[i].Importance /= top
		}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Importance > ranks[j].Importance
	})
	return ranks, nil
}
