package formatter

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// TerminalRenderer pretty-prints a markdown report for the terminal.
type TerminalRenderer struct {
	// Style is a glamour standard style name; "" or "auto" detects the terminal.
	Style string
	Width int
}

// NewTerminalRenderer creates a renderer with automatic styling and 80 columns.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Style: "auto", Width: 80}
}

// Render returns markdown styled with ANSI escapes.
func (t *TerminalRenderer) Render(markdown string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(t.Width)}
	if t.Style == "" || t.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(t.Style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return out, nil
}
