package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/clapsheep/ollama-codellama/internal/engine/review"
)

// JSONFormatter outputs the review as pretty-printed JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Extension implements Formatter.
func (f *JSONFormatter) Extension() string { return "json" }

type jsonReport struct {
	Report
	review.Result
}

// Format returns the report metadata and the review fields as indented JSON.
func (f *JSONFormatter) Format(r Report) (string, error) {
	data, err := json.MarshalIndent(jsonReport{Report: r, Result: r.Result}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling review: %w", err)
	}
	return string(data), nil
}
