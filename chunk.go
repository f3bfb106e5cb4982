package pagegrade

// ChunkResult is the snippet-potential analysis of one section.
type ChunkResult struct {
	Index           int         `json:"index"` // Position in Page.Sections
	Heading         string      `json:"heading"`
	Level           int         `json:"level"`
	Anchor          string      `json:"anchor,omitempty"`
	WordCount       int         `json:"wordCount"` // Content words
	SentenceCount   int         `json:"sentenceCount"`
	TopTerms        []TermCount `json:"topTerms"`
	Entities        []Entity    `json:"entities"`
	EntityCount     int         `json:"entityCount"`
	EntityDensity   float64     `json:"entityDensity"`   // Entities per 100 content words
	UniqueTermRatio float64     `json:"uniqueTermRatio"` // Percent
	Sentiment       float64     `json:"sentiment"`
	TopicAlignment  int         `json:"topicAlignment"` // Percent
	SnippetScore    int         `json:"snippetScore"`
	SnippetGrade    string      `json:"snippetGrade"`
	KeyStatements   []string    `json:"keyStatements"`
	Tokens          int         `json:"tokens,omitempty"` // Model tokens when counted
}

// ChunkSummary aggregates chunk results across a page.
type ChunkSummary struct {
	TotalChunks         int      `json:"totalChunks"`
	AvgSnippetScore     int      `json:"avgSnippetScore"`
	AvgGrade            string   `json:"avgGrade"`
	StrongChunks        int      `json:"strongChunks"`
	WeakChunks          int      `json:"weakChunks"`
	StrongChunkHeadings []string `json:"strongChunkHeadings"`
	WeakChunkHeadings   []string `json:"weakChunkHeadings"`
}

// Chunks holds per-section results and their summary. Summary is nil
// when the page has no sections.
type Chunks struct {
	Items   []ChunkResult `json:"items"`
	Summary *ChunkSummary `json:"summary"`
}
