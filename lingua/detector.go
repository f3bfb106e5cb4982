// Package lingua detects the natural language of page text with lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/pagegrade"
	"github.com/pemistahl/lingua-go"
)

// Ensure Detector implements pagegrade.LanguageDetector at compile time.
var _ pagegrade.LanguageDetector = (*Detector)(nil)

// minimumRelativeDistance is how far ahead the top language must be before
// a result is reported.
const minimumRelativeDistance = 0.1

// Detector identifies languages with lingua's statistical models.
// Models load lazily on first use and the detector is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector choosing among languages. Lingua needs
// at least two candidates; with fewer, every supported language is used.
func NewDetector(languages ...lingua.Language) *Detector {
	var builder lingua.LanguageDetectorBuilder
	if len(languages) >= 2 {
		builder = lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	} else {
		builder = lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	}
	return &Detector{
		detector: builder.WithMinimumRelativeDistance(minimumRelativeDistance).Build(),
	}
}

// DetectLanguage returns the ISO 639-1 code of the text's language.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
