// Package prose implements pagegrade.Annotator on top of the prose NLP library.
package prose

import (
	"context"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/pagegrade"
	"github.com/jdkato/prose/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Ensure Annotator implements the annotator interfaces at compile time.
var (
	_ pagegrade.Annotator         = (*Annotator)(nil)
	_ pagegrade.ReadabilityScorer = (*Annotator)(nil)
	_ pagegrade.ImportanceRanker  = (*Annotator)(nil)
)

// Annotator tokenizes, segments and tags English text with prose.
// It is safe for concurrent use.
type Annotator struct{}

// NewAnnotator creates a new Annotator.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// The tagging and entity models are loaded once and shared by every
// document. They are only read during annotation.
var (
	modelOnce sync.Once
	model     *prose.Model
	modelErr  error
)

func sharedModel() (*prose.Model, error) {
	modelOnce.Do(func() {
		doc, err := prose.NewDocument("")
		if err != nil {
			modelErr = err
			return
		}
		model = doc.Model
	})
	return model, modelErr
}

// Annotate tokenizes text, splits it into sentences and detects named entities.
func (a *Annotator) Annotate(ctx context.Context, text string) (*pagegrade.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := sharedModel()
	if err != nil {
		return nil, pagegrade.Errorf(pagegrade.EINTERNAL, "prose: loading model: %v", err)
	}

	doc, err := prose.NewDocument(text, prose.UsingModel(m))
	if err != nil {
		return nil, pagegrade.Errorf(pagegrade.EINTERNAL, "prose: %v", err)
	}

	lower := newLower()

	raw := &pagegrade.RawDocument{
		Text:      text,
		Tokens:    []pagegrade.Token{},
		Sentences: []pagegrade.Sentence{},
		Entities:  []pagegrade.Entity{},
	}

	var words []string
	for _, tok := range doc.Tokens() {
		normal := normalize(lower, tok.Text)
		typ := tokenType(tok.Text)
		raw.Tokens = append(raw.Tokens, pagegrade.Token{
			Text:   tok.Text,
			Type:   typ,
			Stop:   typ == pagegrade.TokenWord && IsStopWord(normal),
			Normal: normal,
		})
		if typ == pagegrade.TokenWord {
			words = append(words, normal)
		}
	}

	for _, sent := range doc.Sentences() {
		raw.Sentences = append(raw.Sentences, pagegrade.Sentence{
			Text:      sent.Text,
			Sentiment: Sentiment(splitWords(lower, sent.Text)),
		})
	}

	for _, ent := range doc.Entities() {
		raw.Entities = append(raw.Entities, pagegrade.Entity{
			Value: ent.Text,
			Type:  ent.Label,
		})
	}

	raw.Sentiment = Sentiment(words)

	return raw, nil
}

// newLower returns a lower-casing Caser. A Caser is not safe for
// concurrent use, so every call site takes its own.
func newLower() cases.Caser {
	return cases.Lower(language.Und)
}

// normalize lower-cases s and folds compatibility characters.
func normalize(lower cases.Caser, s string) string {
	return norm.NFKC.String(lower.String(s))
}

// splitWords returns the normalized words of s, keeping inner apostrophes.
func splitWords(lower cases.Caser, s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'’")
		if f != "" {
			words = append(words, normalize(lower, f))
		}
	}
	return words
}

// tokenType classifies a token by the characters it contains.
func tokenType(text string) pagegrade.TokenType {
	var letters, digits, puncts int
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsPunct(r):
			puncts++
		}
	}

	switch {
	case letters > 0:
		return pagegrade.TokenWord
	case digits > 0:
		return pagegrade.TokenNumber
	case puncts > 0 && puncts == utf8.RuneCountInString(text):
		return pagegrade.TokenPunctuation
	default:
		return pagegrade.TokenSymbol
	}
}
