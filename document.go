package pagegrade

import "context"

// TokenType classifies an annotated token.
type TokenType string

// Token types reported by an Annotator.
const (
	TokenWord        TokenType = "word"
	TokenNumber      TokenType = "number"
	TokenPunctuation TokenType = "punctuation"
	TokenSymbol      TokenType = "symbol"
)

// Token is a single annotated token.
type Token struct {
	Text   string    `json:"text"`
	Type   TokenType `json:"type"`
	Stop   bool      `json:"stop"`
	Normal string    `json:"normal"` // Normalized (lower-cased) form
}

// Sentence is a segmented sentence with its sentiment in [-1, 1].
type Sentence struct {
	Text      string  `json:"text"`
	Sentiment float64 `json:"sentiment"`
}

// Entity is a detected named entity. Type may be empty when the
// annotator cannot classify it.
type Entity struct {
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// RawDocument is a text together with its annotation.
// It is created once per analysis unit (page or section) and never mutated.
type RawDocument struct {
	Text      string     `json:"text"`
	Tokens    []Token    `json:"tokens"`
	Sentences []Sentence `json:"sentences"`
	Entities  []Entity   `json:"entities"`
	Sentiment float64    `json:"sentiment"` // Document sentiment in [-1, 1]
}

// Words returns the raw text of every word-typed token.
func (d *RawDocument) Words() []string {
	var words []string
	for _, tok := range d.Tokens {
		if tok.Type == TokenWord {
			words = append(words, tok.Text)
		}
	}
	return words
}

// ContentTerms returns the normalized form of every non-stop word token,
// in document order.
func (d *RawDocument) ContentTerms() []string {
	var terms []string
	for _, tok := range d.Tokens {
		if tok.Type == TokenWord && !tok.Stop {
			terms = append(terms, tok.Normal)
		}
	}
	return terms
}

// Annotator is the natural-language engine. Implementations must be safe
// to call concurrently.
type Annotator interface {
	// Annotate tokenizes, segments and tags text.
	Annotate(ctx context.Context, text string) (*RawDocument, error)
}

// ReadabilityStats are readability primitives computed by an annotator.
type ReadabilityStats struct {
	FleschReadingEase float64  `json:"fres"`
	ReadingTimeMins   int      `json:"readingTimeMins"`
	ReadingTimeSecs   int      `json:"readingTimeSecs"`
	ComplexWordCount  int      `json:"numOfComplexWords"`
	ComplexWords      []string `json:"complexWords,omitempty"`
}

// ReadabilityScorer is an optional Annotator capability.
type ReadabilityScorer interface {
	// ReadabilityStats computes readability primitives for an annotated document.
	// Returns EUNSUPPORTED if the capability is not available.
	ReadabilityStats(doc *RawDocument) (*ReadabilityStats, error)
}

// SentenceImportance is the relative importance of one sentence.
type SentenceImportance struct {
	Index      int     `json:"index"` // Position in RawDocument.Sentences
	Importance float64 `json:"importance"`
}

// ImportanceRanker is an optional Annotator capability.
type ImportanceRanker interface {
	// SentenceImportance ranks the sentences of an annotated document.
	// Returns EUNSUPPORTED if the capability is not available.
	SentenceImportance(doc *RawDocument) ([]SentenceImportance, error)
}

// LanguageDetector identifies the natural language of a text.
type LanguageDetector interface {
	// DetectLanguage returns an ISO 639-1 code, or false if the language
	// cannot be determined reliably.
	DetectLanguage(text string) (string, bool)
}
