package analyze

import (
	"context"
	"sort"
	"unicode/utf8"

	"github.com/fwojciec/pagegrade"
	"golang.org/x/sync/errgroup"
)

const (
	// minSectionLength is the shortest section text, in characters, that
	// gets scored. Shorter sections are skipped.
	minSectionLength = 20

	chunkTopTerms      = 5
	chunkEntities      = 10
	alignmentTerms     = 10
	keyStatementCount  = 3
	keyStatementLength = 150

	// Summary bands for strong and weak chunks.
	strongSnippetScore = 70
	weakSnippetScore   = 40
)

// ChunkScorer grades every section of a page as a standalone retrieval
// snippet. Sections are annotated and scored independently.
type ChunkScorer struct {
	Annotator pagegrade.Annotator

	// Tokens, when set, adds model token counts to each chunk.
	Tokens pagegrade.TokenCounter

	// Concurrency limits sections annotated at once. Defaults to 4.
	Concurrency int
}

// Score grades sections against the page's global top terms. Results keep
// section order. The summary is nil when there are no sections.
func (s *ChunkScorer) Score(ctx context.Context, sections []pagegrade.Section, globalTerms map[string]bool) (*pagegrade.Chunks, error) {
	if len(sections) == 0 {
		return &pagegrade.Chunks{Items: []pagegrade.ChunkResult{}}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]*pagegrade.ChunkResult, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, sec := range sections {
		if utf8.RuneCountInString(sec.Text) < minSectionLength {
			continue
		}
		g.Go(func() error {
			result, err := s.scoreSection(gctx, i, sec, globalTerms)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]pagegrade.ChunkResult, 0, len(sections))
	for _, r := range results {
		if r != nil {
			items = append(items, *r)
		}
	}

	return &pagegrade.Chunks{
		Items:   items,
		Summary: SummarizeChunks(items),
	}, nil
}

func (s *ChunkScorer) scoreSection(ctx context.Context, index int, sec pagegrade.Section, globalTerms map[string]bool) (*pagegrade.ChunkResult, error) {
	doc, err := s.Annotator.Annotate(ctx, sec.Text)
	if err != nil {
		return nil, err
	}
	importance, err := sentenceImportance(s.Annotator, doc)
	if err != nil {
		return nil, err
	}

	result := ScoreChunk(index, sec, doc, importance, globalTerms)

	if s.Tokens != nil {
		tokens, err := s.Tokens.CountTokens(ctx, sec.Text)
		if err != nil {
			return nil, pagegrade.Errorf(pagegrade.EINTERNAL, "count tokens for section %d: %v", index, err)
		}
		result.Tokens = tokens
	}
	return &result, nil
}

// ScoreChunk computes the snippet metrics of one annotated section.
// It reads nothing from other sections except the read-only globalTerms.
func ScoreChunk(index int, sec pagegrade.Section, doc *pagegrade.RawDocument, importance []pagegrade.SentenceImportance, globalTerms map[string]bool) pagegrade.ChunkResult {
	terms := doc.ContentTerms()
	words := len(terms)
	ranked := RankTerms(terms)

	var entityDensity, uniqueRatio float64
	if words > 0 {
		entityDensity = roundHalfUp(float64(len(doc.Entities))/float64(words)*10000) / 100
		uniqueRatio = roundHalfUp(float64(len(ranked))/float64(words)*1000) / 10
	}

	score := SnippetScore(words, len(doc.Entities), entityDensity, uniqueRatio, sec.Heading)

	heading := sec.Heading
	if heading == "" {
		heading = pagegrade.NoHeading
	}

	return pagegrade.ChunkResult{
		Index:           index,
		Heading:         heading,
		Level:           sec.Level,
		Anchor:          sec.Anchor,
		WordCount:       words,
		SentenceCount:   len(doc.Sentences),
		TopTerms:        head(ranked, chunkTopTerms),
		Entities:        head(doc.Entities, chunkEntities),
		EntityCount:     len(doc.Entities),
		EntityDensity:   entityDensity,
		UniqueTermRatio: uniqueRatio,
		Sentiment:       round3(doc.Sentiment),
		TopicAlignment:  TopicAlignment(ranked, globalTerms),
		SnippetScore:    score,
		SnippetGrade:    pagegrade.SnippetGrade(score),
		KeyStatements:   KeyStatements(doc, importance),
	}
}

// TopicAlignment returns the percentage of the first ten ranked terms that
// are also global top terms. Returns 0 when there are no terms.
func TopicAlignment(ranked []pagegrade.TermCount, globalTerms map[string]bool) int {
	local := head(ranked, alignmentTerms)
	if len(local) == 0 {
		return 0
	}
	var aligned int
	for _, tc := range local {
		if globalTerms[tc.Term] {
			aligned++
		}
	}
	return int(roundHalfUp(float64(aligned) / float64(len(local)) * 100))
}

// SnippetScore rates how well a section stands alone as a retrieval
// snippet, from 0 to 100. The heading bonus applies only to real headings.
func SnippetScore(words, entities int, entityDensity, uniqueRatio float64, heading string) int {
	score := 50

	switch {
	case words >= 40 && words <= 300:
		score += 15
	case words >= 20 && words <= 500:
		score += 8
	case words < 20:
		score -= 20
	default:
		score -= 5 // long enough that chunkers will split it
	}

	switch {
	case entities >= 3:
		score += 10
	case entities >= 1:
		score += 5
	default:
		score -= 5
	}

	switch {
	case entityDensity >= 3 && entityDensity <= 15:
		score += 10
	case entityDensity > 0:
		score += 3
	}

	switch {
	case uniqueRatio >= 50 && uniqueRatio <= 85:
		score += 8
	case uniqueRatio >= 30:
		score += 3
	default:
		score -= 5
	}

	if pagegrade.HasRealHeading(heading) {
		score += 7
	}

	return min(100, max(0, score))
}

// KeyStatements returns up to three of the most important sentences of doc,
// truncated. Returns an empty slice without an importance ranking.
func KeyStatements(doc *pagegrade.RawDocument, importance []pagegrade.SentenceImportance) []string {
	ranked := make([]pagegrade.SentenceImportance, len(importance))
	copy(ranked, importance)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})

	statements := make([]string, 0, keyStatementCount)
	for _, imp := range head(ranked, keyStatementCount) {
		if imp.Index < 0 || imp.Index >= len(doc.Sentences) {
			continue
		}
		if text := truncate(doc.Sentences[imp.Index].Text, keyStatementLength); text != "" {
			statements = append(statements, text)
		}
	}
	return statements
}

// SummarizeChunks aggregates chunk results. Returns a zero-valued summary
// with grade F when items is empty.
func SummarizeChunks(items []pagegrade.ChunkResult) *pagegrade.ChunkSummary {
	summary := &pagegrade.ChunkSummary{
		TotalChunks:         len(items),
		StrongChunkHeadings: []string{},
		WeakChunkHeadings:   []string{},
	}

	var total int
	for _, item := range items {
		total += item.SnippetScore
		if item.SnippetScore >= strongSnippetScore {
			summary.StrongChunks++
			summary.StrongChunkHeadings = append(summary.StrongChunkHeadings, item.Heading)
		}
		if item.SnippetScore < weakSnippetScore {
			summary.WeakChunks++
			summary.WeakChunkHeadings = append(summary.WeakChunkHeadings, item.Heading)
		}
	}
	if len(items) > 0 {
		summary.AvgSnippetScore = int(roundHalfUp(float64(total) / float64(len(items))))
	}
	summary.AvgGrade = pagegrade.SnippetGrade(summary.AvgSnippetScore)
	return summary
}
