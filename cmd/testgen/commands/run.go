package commands

import (
	"os"

	"github.com/clapsheep/ollama-codellama/internal/engine/config"
	"github.com/clapsheep/ollama-codellama/internal/engine/formatter"
	"github.com/clapsheep/ollama-codellama/internal/engine/llm"
	"github.com/clapsheep/ollama-codellama/internal/engine/output"
	"github.com/clapsheep/ollama-codellama/internal/engine/testgen"
	"github.com/clapsheep/ollama-codellama/internal/platform/cli"
	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
	"github.com/spf13/cobra"
)

// runTestGen wires real infrastructure and delegates to Pipeline.Execute.
func runTestGen(cmd *cobra.Command, flags *cli.Flags, sourcePath string) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)

	cfg, err := flags.Resolve(cmd, loadConfig, func(c *config.Config) *config.ModelConfig { return &c.TestGen })
	if err != nil {
		return err
	}

	client, err := llm.New(cfg)
	if err != nil {
		return err
	}

	pipeline := &Pipeline{
		ReadFile:  os.ReadFile,
		Generator: testgen.NewGenerator(client, llm.OptionsFrom(cfg.TestGen)),
		Writer:    output.NewWriter(),
		Labels:    formatter.LabelsFor(cfg.Report.Language),
		Stdout:    cmd.OutOrStdout(),
	}

	if _, err := pipeline.Execute(ctx, sourcePath); err != nil {
		log.Error("test generation failed", "error", err)
		return err
	}
	return nil
}
