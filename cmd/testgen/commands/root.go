// Package commands implements the testgen command.
package commands

import (
	"fmt"

	"github.com/clapsheep/ollama-codellama/internal/engine/config"
	"github.com/clapsheep/ollama-codellama/internal/platform/cli"
	"github.com/spf13/cobra"
)

// loadConfig is replaced in tests.
var loadConfig cli.LoadFunc = config.Load

func newRootCmd() *cobra.Command {
	flags := &cli.Flags{}

	cmd := &cobra.Command{
		Use:   "testgen <source-file>",
		Short: "Generate a Vitest test file for a TypeScript source file",
		Long: `testgen sends a TypeScript source file to a local Ollama model and writes
the returned Vitest tests next to it.

src/utils/dates.ts is written to src/__tests__/utils/dates.test.ts, and the
tests import the module under test as @/utils/dates.`,
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
			if err := runTestGen(cmd, flags, args[0]); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}
			return nil
		},
	}

	flags.Register(cmd)
	cmd.SetVersionTemplate(cli.VersionTemplate("testgen"))
	return cmd
}

// Execute runs the root command. Returns an error if the command fails.
func Execute() error {
	return newRootCmd().Execute()
}
