// Package cli holds the command-line plumbing shared by the testgen and
// reviewer binaries.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clapsheep/ollama-codellama/internal/engine/config"
	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
	"github.com/spf13/cobra"
)

// LoadFunc resolves configuration from a config file path.
type LoadFunc func(ctx context.Context, path string) (*config.Config, error)

// ModelSelector picks the per-tool model section that --model overrides.
type ModelSelector func(cfg *config.Config) *config.ModelConfig

// Flags holds the values of the flags common to both tools.
type Flags struct {
	ConfigPath string
	Endpoint   string
	Model      string
	Timeout    time.Duration
	Verbose    bool
	JSONLog    bool
}

// Register adds the shared flags to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.ConfigPath, "config", "", "Path to config file (default ~/.config/ollama-codellama/config.yaml)")
	pf.StringVar(&f.Endpoint, "endpoint", "", "Model service base URL (default "+config.DefaultEndpoint+")")
	pf.StringVar(&f.Model, "model", "", "Model identifier")
	pf.DurationVar(&f.Timeout, "timeout", config.DefaultTimeout, "HTTP request timeout (0 disables)")
	pf.BoolVar(&f.Verbose, "verbose", false, "Enable debug logging")
	pf.BoolVar(&f.JSONLog, "json-log", false, "Write logs as JSON")
}

// InstallLogger attaches a logger writing to the command's stderr to its context.
func (f *Flags) InstallLogger(cmd *cobra.Command) {
	l := logger.New(cmd.ErrOrStderr(), f.Verbose, f.JSONLog)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx, l))
}

// Resolve loads the configuration and applies the flags the user set
// explicitly. Flags win over the file and the environment.
func (f *Flags) Resolve(cmd *cobra.Command, load LoadFunc, model ModelSelector) (*config.Config, error) {
	cfg, err := load(cmd.Context(), f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if changed(cmd, "endpoint") {
		cfg.Endpoint = f.Endpoint
	}
	if changed(cmd, "model") {
		model(cfg).Model = f.Model
	}
	if changed(cmd, "timeout") {
		cfg.Timeout = f.Timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.FromContext(cmd.Context()).Debug("configuration resolved",
		"provider", cfg.Provider,
		"endpoint", cfg.Endpoint,
		"timeout", cfg.Timeout,
	)
	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	fl := cmd.Flag(name)
	return fl != nil && fl.Changed
}

// PrintUsage writes the command's usage text to stdout.
func PrintUsage(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
}
