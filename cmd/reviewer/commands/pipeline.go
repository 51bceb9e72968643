package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/clapsheep/ollama-codellama/internal/engine/formatter"
	"github.com/clapsheep/ollama-codellama/internal/engine/review"
	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
)

// Reviewer produces a review outcome for a file.
type Reviewer interface {
	Review(ctx context.Context, source, filePath string) (review.Outcome, error)
}

// FileWriter writes a file, creating parent directories.
type FileWriter interface {
	Write(path string, data []byte) error
}

// TerminalRenderer styles markdown for display.
type TerminalRenderer interface {
	Render(markdown string) (string, error)
}

// Pipeline orchestrates one review with injected dependencies.
type Pipeline struct {
	ReadFile  func(name string) ([]byte, error)
	Reviewer  Reviewer
	Formatter formatter.Formatter
	Writer    FileWriter

	// Model is recorded in the report metadata.
	Model string

	// Terminal, when set, prints the markdown report after it is written.
	Terminal TerminalRenderer
	Labels   formatter.Labels

	// Stdout receives the confirmation line and the terminal rendering.
	Stdout io.Writer
}

// Execute reviews filePath and returns the written report path.
// No report is written if the review request fails.
func (p *Pipeline) Execute(ctx context.Context, filePath string) (string, error) {
	log := logger.FromContext(ctx)

	source, err := p.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("reading source file: %w", err)
	}

	outcome, err := p.Reviewer.Review(ctx, string(source), filePath)
	if err != nil {
		return "", err
	}

	report := formatter.Report{
		File:         filePath,
		Model:        p.Model,
		FallbackUsed: outcome.FallbackUsed,
		Result:       outcome.Result,
	}
	text, err := p.Formatter.Format(report)
	if err != nil {
		return "", err
	}

	reportPath := review.ReportPath(filePath, p.Formatter.Extension())
	if err := p.Writer.Write(reportPath, []byte(text)); err != nil {
		return "", err
	}
	fmt.Fprintf(p.Stdout, "Review report generated: %s\n", reportPath)

	if p.Terminal != nil {
		md := formatter.NewMarkdownFormatter(p.Labels).Render(outcome.Result, filePath)
		styled, err := p.Terminal.Render(md)
		if err != nil {
			log.Warn("could not render report to terminal", "error", err)
			return reportPath, nil
		}
		fmt.Fprint(p.Stdout, styled)
	}

	return reportPath, nil
}
