package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagegrade/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("downloads the tokenizer model")
	}

	tc, err := gemini.NewTokenCounter(gemini.DefaultModel)
	require.NoError(t, err)

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "Roses need six hours of sun.")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("blank text returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "  \n")

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("longer text returns more tokens", func(t *testing.T) {
		t.Parallel()

		short, err := tc.CountTokens(context.Background(), "Roses")
		require.NoError(t, err)
		long, err := tc.CountTokens(context.Background(), "Roses need at least six hours of direct sunlight every day to bloom well in summer.")
		require.NoError(t, err)

		assert.Greater(t, long, short)
	})
}
