// Package formatter renders review results as markdown, JSON, SARIF or HTML.
package formatter

import (
	"fmt"

	"github.com/clapsheep/ollama-codellama/internal/engine/config"
	"github.com/clapsheep/ollama-codellama/internal/engine/review"
)

// Report is everything a formatter needs to render one review.
type Report struct {
	File         string        `json:"file"`
	Model        string        `json:"model,omitempty"`
	FallbackUsed bool          `json:"fallback_used"`
	Result       review.Result `json:"-"`
}

// Formatter renders a Report.
type Formatter interface {
	Format(r Report) (string, error)
	// Extension is appended to "<file>.review." to name the output file.
	Extension() string
}

// New returns the formatter for a config.Format* value.
func New(format string, labels Labels) (Formatter, error) {
	switch format {
	case config.FormatMarkdown, "":
		return NewMarkdownFormatter(labels), nil
	case config.FormatJSON:
		return NewJSONFormatter(), nil
	case config.FormatSARIF:
		return NewSARIFFormatter(""), nil
	case config.FormatHTML:
		return NewHTMLFormatter(labels), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}
