// Package gemini counts model tokens with the local Gemini tokenizer.
package gemini

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/pagegrade"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ pagegrade.TokenCounter = (*TokenCounter)(nil)

// DefaultModel is the model whose tokenizer is used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// TokenCounter counts tokens using the Gemini tokenizer.
// The tokenizer model is fetched once on creation; counting is local.
type TokenCounter struct {
	mu  sync.Mutex
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, pagegrade.Errorf(pagegrade.EUNSUPPORTED, "tokenizer for %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, pagegrade.Errorf(pagegrade.EINTERNAL, "count tokens: %v", err)
	}

	return int(result.TotalTokens), nil
}
