package presentation

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour for the document viewer. Rendering
// failures fall back to the raw text so a bad document never blanks the
// panel.
type MarkdownRenderer struct {
	style string
}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{style: "dark"}
}

// Render converts markdown to styled terminal output wrapped to width.
func (r *MarkdownRenderer) Render(content string, width int) string {
	if width < 20 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
