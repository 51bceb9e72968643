package formatter

import (
	"bytes"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	defaultToolName = "ollama-codellama-reviewer"
	toolInfoURI     = "https://github.com/clapsheep/ollama-codellama"
)

// SARIFFormatter outputs the review as a SARIF v2.1.0 log so findings can be
// uploaded to code-scanning dashboards.
type SARIFFormatter struct {
	ToolName string
}

// NewSARIFFormatter creates a SARIFFormatter. An empty toolName uses the default.
func NewSARIFFormatter(toolName string) *SARIFFormatter {
	if toolName == "" {
		toolName = defaultToolName
	}
	return &SARIFFormatter{ToolName: toolName}
}

// Extension implements Formatter.
func (f *SARIFFormatter) Extension() string { return "sarif" }

// Format emits one result per issue. The category is the rule ID and the
// severity maps to the SARIF level. Line entries that are neither a line nor
// a span give a file-level location. Summary, best practices and suggestions
// have no SARIF equivalent and are dropped.
func (f *SARIFFormatter) Format(r Report) (string, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return "", fmt.Errorf("creating SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(f.ToolName, toolInfoURI)
	run.AddDistinctArtifact(r.File)

	seen := make(map[string]bool)
	for _, issue := range r.Result.Issues {
		ruleID := ruleIDFor(issue.Category)
		if !seen[ruleID] {
			seen[ruleID] = true
			run.AddRule(ruleID).
				WithShortDescription(sarif.NewMultiformatMessageString(issue.Category))
		}

		msg := issue.Description
		if issue.Suggestion != "" {
			msg += "\n" + issue.Suggestion
		}

		result := run.CreateResultForRule(ruleID).
			WithLevel(sarifLevel(issue.Severity)).
			WithMessage(sarif.NewTextMessage(msg))

		ranges := issue.LineNumbers.Ranges()
		if len(ranges) == 0 {
			result.AddLocation(sarif.NewLocationWithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewSimpleArtifactLocation(r.File)),
			))
			continue
		}
		for _, lines := range ranges {
			result.AddLocation(sarif.NewLocationWithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewSimpleArtifactLocation(r.File)).
					WithRegion(sarif.NewSimpleRegion(lines.Start, lines.End)),
			))
		}
	}

	report.AddRun(run)

	var buf bytes.Buffer
	if err := report.PrettyWrite(&buf); err != nil {
		return "", fmt.Errorf("writing SARIF report: %w", err)
	}
	return buf.String(), nil
}

func ruleIDFor(category string) string {
	if category == "" {
		return "review/uncategorized"
	}
	return "review/" + category
}

// sarifLevel maps review severity onto SARIF result levels.
func sarifLevel(severity string) string {
	switch severity {
	case "high":
		return "error"
	case "medium":
		return "warning"
	case "low":
		return "note"
	default:
		return "none"
	}
}
