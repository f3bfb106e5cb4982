package analyze

import (
	"unicode/utf8"

	"github.com/fwojciec/pagegrade"
)

const (
	// wordsPerMinute is the reading speed used when the annotator cannot
	// estimate reading time.
	wordsPerMinute = 200

	// longWordLength is the length above which a word counts as long.
	longWordLength = 6
)

// UnknownReadingLevel is the reading level when no ease score is available.
const UnknownReadingLevel = "unknown"

// Readability computes sentence and word statistics for doc. Stats may be
// nil when the annotator cannot score readability; reading time is then
// estimated and the ease score reported as unknown.
func Readability(doc *pagegrade.RawDocument, stats *pagegrade.ReadabilityStats) *pagegrade.Readability {
	words := doc.Words()
	wordCount := len(words)
	sentenceCount := len(doc.Sentences)

	var chars, long int
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		chars += n
		if n > longWordLength {
			long++
		}
	}

	r := &pagegrade.Readability{
		ReadingLevel:  UnknownReadingLevel,
		SentenceCount: sentenceCount,
		WordCount:     wordCount,
		TokenCount:    len(doc.Tokens),
		ReadingTime:   EstimateReadingTime(wordCount),
	}
	if sentenceCount > 0 {
		r.AvgWordsPerSentence = roundHalfUp(float64(wordCount)/float64(sentenceCount)*10) / 10
	}
	if wordCount > 0 {
		r.AvgWordLength = roundHalfUp(float64(chars)/float64(wordCount)*10) / 10
		r.LongWordPercentage = roundHalfUp(float64(long)/float64(wordCount)*1000) / 10
	}

	if stats != nil {
		ease := stats.FleschReadingEase
		r.FleschReadingEase = &ease
		r.ReadingLevel = ReadingLevel(ease)
		r.ReadingTime = pagegrade.ReadingTime{Minutes: stats.ReadingTimeMins, Seconds: stats.ReadingTimeSecs}
		if stats.ComplexWordCount > 0 {
			r.ComplexWords = &pagegrade.ComplexWords{
				Count: stats.ComplexWordCount,
				Words: stats.ComplexWords,
			}
		}
	}

	return r
}

// ReadingLevel labels a Flesch reading-ease score.
func ReadingLevel(ease float64) string {
	switch {
	case ease >= 90:
		return "Very Easy (5th grade)"
	case ease >= 80:
		return "Easy (6th grade)"
	case ease >= 70:
		return "Fairly Easy (7th grade)"
	case ease >= 60:
		return "Standard (8th-9th grade)"
	case ease >= 50:
		return "Fairly Difficult (10th-12th grade)"
	case ease >= 30:
		return "Difficult (College level)"
	default:
		return "Very Difficult (Graduate level)"
	}
}

// EstimateReadingTime estimates reading time at 200 words per minute,
// rounded to the nearest second. Seconds always stay below 60.
func EstimateReadingTime(words int) pagegrade.ReadingTime {
	secs := int(roundHalfUp(float64(words) * 60 / wordsPerMinute))
	return pagegrade.ReadingTime{
		Minutes: secs / 60,
		Seconds: secs % 60,
	}
}
