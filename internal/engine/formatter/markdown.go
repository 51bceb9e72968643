package formatter

import (
	"fmt"
	"strings"

	"github.com/clapsheep/ollama-codellama/internal/engine/review"
)

// MarkdownFormatter renders the human-readable review report.
type MarkdownFormatter struct {
	Labels Labels
}

// NewMarkdownFormatter creates a MarkdownFormatter using labels.
func NewMarkdownFormatter(labels Labels) *MarkdownFormatter {
	return &MarkdownFormatter{Labels: labels}
}

// Extension implements Formatter.
func (f *MarkdownFormatter) Extension() string { return "md" }

// Format implements Formatter. It never fails.
func (f *MarkdownFormatter) Format(r Report) (string, error) {
	return f.Render(r.Result, r.File), nil
}

// Render assembles the report. Sections whose lists are empty are left out
// entirely, as is an issue's line list when it has no numbers.
func (f *MarkdownFormatter) Render(result review.Result, filePath string) string {
	l := f.Labels
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: %s\n", l.Title, filePath)
	fmt.Fprintf(&b, "## %s\n%s\n", l.Summary, result.Summary)

	if len(result.Issues) > 0 {
		fmt.Fprintf(&b, "## %s\n", l.Issues)
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, "### %s %s (%s)\n", l.emoji(issue.Severity), l.category(issue.Category), l.severity(issue.Severity))
			fmt.Fprintf(&b, "- **%s**: %s\n", l.Description, issue.Description)
			fmt.Fprintf(&b, "- **%s**: %s\n", l.Suggestion, issue.Suggestion)
			if len(issue.LineNumbers) > 0 {
				fmt.Fprintf(&b, "- **%s**: %s\n", l.Lines, strings.Join(issue.LineNumbers, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(result.BestPractices) > 0 {
		fmt.Fprintf(&b, "## %s\n", l.BestPractices)
		for _, practice := range result.BestPractices {
			fmt.Fprintf(&b, "- %s %s\n", l.BestPracticeMarker, practice)
		}
		b.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprintf(&b, "## %s\n", l.Suggestions)
		for _, suggestion := range result.Suggestions {
			fmt.Fprintf(&b, "- %s %s\n", l.SuggestionMarker, suggestion)
		}
	}

	return b.String()
}
