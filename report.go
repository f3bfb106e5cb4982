package pagegrade

import (
	"context"
	"time"
)

// ErrInsufficientContent is the Report.Error message for pages whose body
// text is too short to analyze.
const ErrInsufficientContent = "Insufficient content for analysis"

// Report is the graded content-quality report for one page.
// A report either carries every metric group or, when the page could not
// be analyzed, only Error and the original Content.
type Report struct {
	ID          string    `json:"id,omitempty"`
	URL         string    `json:"url"`
	Timestamp   time.Time `json:"timestamp"`
	ContentHash string    `json:"contentHash,omitempty"`
	Language    string    `json:"language,omitempty"`

	Score           *Score            `json:"score,omitempty"`
	Readability     *Readability      `json:"readability,omitempty"`
	Keywords        *KeywordStats     `json:"keywords,omitempty"`
	Entities        *EntitySummary    `json:"entities,omitempty"`
	Sentiment       *SentimentSummary `json:"sentiment,omitempty"`
	Structure       *StructureSummary `json:"structure,omitempty"`
	Meta            *MetaAudit        `json:"meta,omitempty"`
	Chunks          *Chunks           `json:"chunks,omitempty"`
	Recommendations []Recommendation  `json:"recommendations,omitempty"`

	Error   string `json:"error,omitempty"`
	Content *Page  `json:"content,omitempty"`
}

// Failed reports whether the report is an error result.
func (r *Report) Failed() bool {
	return r.Error != ""
}

// PageAnalyzer produces reports from parsed pages.
type PageAnalyzer interface {
	// Analyze grades a page. Content-shape problems produce an error
	// result (Report.Error set) rather than an error; the error return is
	// reserved for annotator failures.
	Analyze(ctx context.Context, page *Page) (*Report, error)
}

// ReadingTime is an estimated reading duration.
type ReadingTime struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ComplexWords lists words the annotator considers complex.
type ComplexWords struct {
	Count int      `json:"count"`
	Words []string `json:"words,omitempty"`
}

// Readability holds sentence and word statistics of the page body.
type Readability struct {
	FleschReadingEase   *float64      `json:"fleschReadingEase"` // nil when unknown
	ReadingLevel        string        `json:"readingLevel"`
	SentenceCount       int           `json:"sentenceCount"`
	WordCount           int           `json:"wordCount"`
	TokenCount          int           `json:"tokenCount"`
	AvgWordsPerSentence float64       `json:"avgWordsPerSentence"`
	AvgWordLength       float64       `json:"avgWordLength"`
	LongWordPercentage  float64       `json:"longWordPercentage"`
	ReadingTime         ReadingTime   `json:"readingTime"`
	ComplexWords        *ComplexWords `json:"complexWords"`
}

// Keyword is a term with its frequency and density.
type Keyword struct {
	Term    string  `json:"term"`
	Count   int     `json:"count"`
	Density float64 `json:"density"` // Percent of content words
}

// TermCount is a term or n-gram with its frequency.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// KeywordStats holds keyword and n-gram statistics over content words.
type KeywordStats struct {
	TotalContentWords int         `json:"totalContentWords"`
	UniqueWords       int         `json:"uniqueWords"`
	LexicalDiversity  float64     `json:"lexicalDiversity"` // Percent
	TopKeywords       []Keyword   `json:"topKeywords"`
	TopBigrams        []TermCount `json:"topBigrams"`
	TopTrigrams       []TermCount `json:"topTrigrams"`
}

// UnknownEntityType buckets entities the annotator could not classify.
const UnknownEntityType = "UNKNOWN"

// EntitySummary holds named entities found on the page.
type EntitySummary struct {
	Total       int            `json:"total"`
	Items       []Entity       `json:"items"`
	TypeSummary map[string]int `json:"typeSummary"`
}

// SentenceSentiment is a truncated sentence with its sentiment.
type SentenceSentiment struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// SentimentSummary holds the document sentiment and its extremes.
type SentimentSummary struct {
	Overall      float64             `json:"overall"`
	Label        string              `json:"label"`
	MostPositive []SentenceSentiment `json:"mostPositive"`
	MostNegative []SentenceSentiment `json:"mostNegative"`
}

// H1Status classifies the number of H1 headings on a page.
type H1Status string

// H1 statuses.
const (
	H1Missing  H1Status = "missing"
	H1Single   H1Status = "single"
	H1Multiple H1Status = "multiple"
)

// H1StatusOf returns the status for a count of H1 headings.
func H1StatusOf(count int) H1Status {
	switch {
	case count == 0:
		return H1Missing
	case count > 1:
		return H1Multiple
	default:
		return H1Single
	}
}

// HeadingBreakdown counts headings per level.
type HeadingBreakdown struct {
	H1 int `json:"h1"`
	H2 int `json:"h2"`
	H3 int `json:"h3"`
	H4 int `json:"h4"`
	H5 int `json:"h5"`
	H6 int `json:"h6"`
}

// StructureSummary describes the page's heading hierarchy and markup.
type StructureSummary struct {
	H1Count             int              `json:"h1Count"`
	H1Status            H1Status         `json:"h1Status"`
	H1Text              []string         `json:"h1Text"`
	TotalHeadings       int              `json:"totalHeadings"`
	HeadingBreakdown    HeadingBreakdown `json:"headingBreakdown"`
	HasSkippedLevel     bool             `json:"hasSkippedLevel"`
	HasProperHierarchy  bool             `json:"hasProperHierarchy"`
	ParagraphCount      int              `json:"paragraphCount"`
	Links               LinkStats        `json:"links"`
	Images              ImageStats       `json:"images"`
	HasStructuredData   bool             `json:"hasStructuredData"`
	StructuredDataCount int              `json:"structuredDataCount"`
}

// Severity is the severity of a meta audit issue.
type Severity string

// Issue severities.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Issue is a single meta audit finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// IssueSummary counts issues by severity.
type IssueSummary struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// LengthStatus classifies a meta field against its recommended length range.
type LengthStatus string

// Length statuses.
const (
	LengthMissing  LengthStatus = "missing"
	LengthTooShort LengthStatus = "too_short"
	LengthOK       LengthStatus = "ok"
	LengthTooLong  LengthStatus = "too_long"
)

// LengthStatusOf classifies a field of the given length against [min, max].
// A zero length is missing.
func LengthStatusOf(length, min, max int) LengthStatus {
	switch {
	case length == 0:
		return LengthMissing
	case length < min:
		return LengthTooShort
	case length > max:
		return LengthTooLong
	default:
		return LengthOK
	}
}

// MetaAudit is the result of auditing the page's head metadata.
type MetaAudit struct {
	Title             string       `json:"title"`
	TitleLength       int          `json:"titleLength"`
	TitleStatus       LengthStatus `json:"titleStatus"`
	Description       string       `json:"description"`
	DescriptionLength int          `json:"descriptionLength"`
	DescriptionStatus LengthStatus `json:"descriptionStatus"`
	HasCanonical      bool         `json:"hasCanonical"`
	HasLang           bool         `json:"hasLang"`
	HasViewport       bool         `json:"hasViewport"`
	HasOG             bool         `json:"hasOG"`
	HasTwitterCard    bool         `json:"hasTwitterCard"`
	Issues            []Issue      `json:"issues"`
	Summary           IssueSummary `json:"summary"`
}

// ScoreBreakdown holds the four sub-scores, each in [0, 25].
type ScoreBreakdown struct {
	Readability int `json:"readability"`
	Content     int `json:"content"`
	Structure   int `json:"structure"`
	Meta        int `json:"meta"`
}

// Sum returns the total of the four sub-scores.
func (b ScoreBreakdown) Sum() int {
	return b.Readability + b.Content + b.Structure + b.Meta
}

// Score is the composite content score.
type Score struct {
	Total     int            `json:"total"`
	Grade     string         `json:"grade"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Grade maps a composite score in [0, 100] to a letter grade.
func Grade(total int) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 80:
		return "B"
	case total >= 65:
		return "C"
	case total >= 50:
		return "D"
	default:
		return "F"
	}
}

// SnippetGrade maps a snippet score in [0, 100] to a letter grade.
func SnippetGrade(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 65:
		return "B"
	case score >= 50:
		return "C"
	case score >= 35:
		return "D"
	default:
		return "F"
	}
}

// TextStats is a quick analysis of arbitrary text.
type TextStats struct {
	Readability  *ReadabilityStats `json:"readability"`
	WordCount    int               `json:"wordCount"`
	ContentWords int               `json:"contentWords"`
	StopWords    int               `json:"stopWords"`
	Sentences    int               `json:"sentences"`
	Tokens       int               `json:"tokens"`
	Entities     []Entity          `json:"entities"`
	Sentiment    float64           `json:"sentiment"`
	TopKeywords  []TermCount       `json:"topKeywords"`
}
