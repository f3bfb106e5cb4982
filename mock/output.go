package mock

import "github.com/fwojciec/pagegrade"

var _ pagegrade.MarkdownRenderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer is a mock implementation of pagegrade.MarkdownRenderer.
type MarkdownRenderer struct {
	RenderFn func(markdown string) (string, error)
}

func (m *MarkdownRenderer) Render(markdown string) (string, error) {
	return m.RenderFn(markdown)
}
