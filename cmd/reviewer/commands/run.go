package commands

import (
	"os"

	"github.com/clapsheep/ollama-codellama/internal/engine/config"
	"github.com/clapsheep/ollama-codellama/internal/engine/formatter"
	"github.com/clapsheep/ollama-codellama/internal/engine/llm"
	"github.com/clapsheep/ollama-codellama/internal/engine/output"
	"github.com/clapsheep/ollama-codellama/internal/engine/review"
	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
	"github.com/spf13/cobra"
)

// runReview wires real infrastructure and delegates to Pipeline.Execute.
func runReview(cmd *cobra.Command, flags *reviewFlags, filePath string) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)

	cfg, err := flags.Resolve(cmd, loadConfig, func(c *config.Config) *config.ModelConfig { return &c.Review })
	if err != nil {
		return err
	}

	format := cfg.Report.Format
	if cmd.Flags().Changed("format") {
		format = flags.format
	}
	labels := formatter.LabelsFor(cfg.Report.Language)
	f, err := formatter.New(format, labels)
	if err != nil {
		return err
	}

	client, err := llm.New(cfg)
	if err != nil {
		return err
	}

	pipeline := &Pipeline{
		ReadFile:  os.ReadFile,
		Reviewer:  review.NewReviewer(client, llm.OptionsFrom(cfg.Review)),
		Formatter: f,
		Writer:    output.NewWriter(),
		Model:     cfg.Review.Model,
		Labels:    labels,
		Stdout:    cmd.OutOrStdout(),
	}
	if flags.print {
		pipeline.Terminal = formatter.NewTerminalRenderer()
	}

	if _, err := pipeline.Execute(ctx, filePath); err != nil {
		log.Error("code review failed", "error", err)
		return err
	}
	return nil
}
