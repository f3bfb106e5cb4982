package analyze

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagegrade"
	"github.com/google/uuid"
)

var _ pagegrade.PageAnalyzer = (*Analyzer)(nil)

// minBodyLength is the shortest body text, in characters, that is analyzed.
const minBodyLength = 10

// globalTermCount is the number of page keywords chunks are aligned with.
const globalTermCount = 10

// Analyzer grades pages. It runs every metric extractor once over the
// annotated body text, scores each section, and assembles the report.
type Analyzer struct {
	Annotator pagegrade.Annotator

	// Languages, when set, fills Report.Language.
	Languages pagegrade.LanguageDetector

	// Tokens, when set, adds model token counts to chunk results.
	Tokens pagegrade.TokenCounter

	// Concurrency limits sections annotated at once.
	Concurrency int
}

// NewAnalyzer creates an Analyzer backed by the given annotator.
func NewAnalyzer(annotator pagegrade.Annotator) *Analyzer {
	return &Analyzer{Annotator: annotator}
}

// Analyze grades page. Pages with too little body text produce an error
// result carrying the original page instead of an error.
func (a *Analyzer) Analyze(ctx context.Context, page *pagegrade.Page) (*pagegrade.Report, error) {
	if page == nil {
		return nil, pagegrade.Errorf(pagegrade.EINVALID, "page required")
	}

	if utf8.RuneCountInString(page.BodyText) < minBodyLength {
		return &pagegrade.Report{
			URL:       page.URL,
			Timestamp: page.Timestamp,
			Error:     pagegrade.ErrInsufficientContent,
			Content:   page,
		}, nil
	}

	doc, err := a.Annotator.Annotate(ctx, page.BodyText)
	if err != nil {
		return nil, fmt.Errorf("annotate page: %w", err)
	}
	stats, err := readabilityStats(a.Annotator, doc)
	if err != nil {
		return nil, fmt.Errorf("readability stats: %w", err)
	}

	readability := Readability(doc, stats)
	keywords := Keywords(doc)
	structure := Structure(page)
	meta := AuditMeta(page.Meta)

	scorer := &ChunkScorer{
		Annotator:   a.Annotator,
		Tokens:      a.Tokens,
		Concurrency: a.Concurrency,
	}
	chunks, err := scorer.Score(ctx, page.Sections, TopTerms(keywords, globalTermCount))
	if err != nil {
		return nil, fmt.Errorf("score chunks: %w", err)
	}

	hash := ComputeHash(page.BodyText)
	report := &pagegrade.Report{
		ID:              ReportID(page.URL, hash),
		URL:             page.URL,
		Timestamp:       page.Timestamp,
		ContentHash:     hash,
		Score:           ComputeScore(readability, keywords, structure, meta),
		Readability:     readability,
		Keywords:        keywords,
		Entities:        Entities(doc),
		Sentiment:       Sentiment(doc),
		Structure:       structure,
		Meta:            meta,
		Chunks:          chunks,
		Recommendations: Recommend(readability, keywords, structure, meta),
	}
	if a.Languages != nil {
		if lang, ok := a.Languages.DetectLanguage(page.BodyText); ok {
			report.Language = lang
		}
	}
	return report, nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// ReportID derives a stable report identifier from the page URL and its
// content hash. Identical content at the same URL yields the same ID.
func ReportID(pageURL, contentHash string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(pageURL+"#"+contentHash)).String()
}
