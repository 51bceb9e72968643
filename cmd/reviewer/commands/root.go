// Package commands implements the reviewer command.
package commands

import (
	"fmt"

	"github.com/clapsheep/ollama-codellama/internal/engine/config"
	"github.com/clapsheep/ollama-codellama/internal/platform/cli"
	"github.com/spf13/cobra"
)

// loadConfig is replaced in tests.
var loadConfig cli.LoadFunc = config.Load

// reviewFlags extends the shared flags with report options.
type reviewFlags struct {
	cli.Flags
	format string
	print  bool
}

func newRootCmd() *cobra.Command {
	flags := &reviewFlags{}

	cmd := &cobra.Command{
		Use:   "reviewer <source-file>",
		Short: "Review a source file with a local Ollama model",
		Long: `reviewer sends a source file to a local Ollama model, asks for a structured
review covering code quality, best practices, potential issues and concrete
improvements, and writes the result to <source-file>.review.md.

If the model reply cannot be parsed, a placeholder report asking for manual
review is written instead.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       cli.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags.InstallLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cli.PrintUsage(cmd)
				return nil
			}
			if err := runReview(cmd, flags, args[0]); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error during code review: %v\n", err)
				return err
			}
			return nil
		},
	}

	flags.Register(cmd)
	cmd.Flags().StringVar(&flags.format, "format", config.FormatMarkdown, "Report format: markdown, json, sarif or html")
	cmd.Flags().BoolVar(&flags.print, "print", false, "Also render the report to the terminal")
	cmd.SetVersionTemplate(cli.VersionTemplate("reviewer"))
	return cmd
}

// Execute runs the root command. Returns an error if the command fails.
func Execute() error {
	return newRootCmd().Execute()
}
