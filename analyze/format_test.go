package analyze_test

import (
	"testing"

	"github.com/fwojciec/pagegrade/analyze"
	"github.com/stretchr/testify/assert"
)

func TestTruncateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short names pass through", "a.html", 20, "a.html"},
		{"keeps the end of long names", "/very/long/path/to/page.html", 12, "...page.html"},
		{"zero length", "page.html", 0, ""},
		{"tiny length without dots", "page.html", 3, "pag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, analyze.TruncateName(tt.input, tt.maxLen))
		})
	}
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~999 tokens", analyze.FormatTokens(999))
	assert.Equal(t, "~2k tokens", analyze.FormatTokens(1500))
	assert.Equal(t, "~12k tokens", analyze.FormatTokens(12345))
}
