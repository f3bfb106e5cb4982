package analyze_test

import (
	"context"
	"strings"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/mock"
)

// testStopWords are the stop words recognized by docOf.
var testStopWords = map[string]bool{
	"the": true, "a": true, "is": true, "and": true, "of": true, "to": true, "in": true,
}

// docOf annotates text the way a simple tokenizer would: whitespace
// separated words, trailing periods as punctuation, sentences split on
// periods. Stop words come from testStopWords.
func docOf(text string) *pagegrade.RawDocument {
	doc := &pagegrade.RawDocument{Text: text}
	for _, field := range strings.Fields(text) {
		word := strings.TrimRight(field, ".")
		if word != "" {
			normal := strings.ToLower(word)
			doc.Tokens = append(doc.Tokens, pagegrade.Token{
				Text:   word,
				Type:   pagegrade.TokenWord,
				Stop:   testStopWords[normal],
				Normal: normal,
			})
		}
		if len(word) < len(field) {
			doc.Tokens = append(doc.Tokens, pagegrade.Token{Text: ".", Type: pagegrade.TokenPunctuation, Normal: "."})
		}
	}
	for _, s := range strings.SplitAfter(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			doc.Sentences = append(doc.Sentences, pagegrade.Sentence{Text: s})
		}
	}
	return doc
}

// textAnnotator returns a mock annotator backed by docOf.
func textAnnotator() *mock.Annotator {
	return &mock.Annotator{
		AnnotateFn: func(_ context.Context, text string) (*pagegrade.RawDocument, error) {
			return docOf(text), nil
		},
	}
}

// fullMeta returns head metadata that passes every audit rule.
func fullMeta() pagegrade.Meta {
	return pagegrade.Meta{
		Title:       "A practical guide to grading page content for search engines",
		Description: strings.Repeat("Learn how content quality is measured. ", 4),
		Canonical:   "https://example.com/guide",
		Lang:        "en",
		Viewport:    "width=device-width, initial-scale=1",
		OG: map[string]string{
			"og:title":       "Guide",
			"og:description": "Guide to grading",
			"og:image":       "https://example.com/og.png",
		},
		Twitter: map[string]string{"twitter:card": "summary"},
	}
}

// repeat joins n copies of s with spaces.
func repeat(s string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s
	}
	return strings.Join(parts, " ")
}
