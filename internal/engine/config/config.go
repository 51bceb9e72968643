// Package config loads the settings shared by the testgen and reviewer tools.
//
// Values are resolved in order: built-in defaults, the YAML config file,
// a .env file, process environment variables, and finally CLI flags.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

// Provider selects the model backend.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

// Report formats understood by the reviewer.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatSARIF    = "sarif"
	FormatHTML     = "html"
)

// Report languages.
const (
	LanguageKorean  = "ko"
	LanguageEnglish = "en"
)

// Defaults for the local Ollama service.
const (
	DefaultEndpoint     = "http://localhost:11434/api"
	DefaultTestGenModel = "codellama:7b"
	DefaultReviewModel  = "codellama:13b"
	DefaultTemperature  = 0.2
	DefaultTopP         = 0.8
	DefaultMaxTokens    = 2000
	DefaultTimeout      = 5 * time.Minute
)

// DefaultGeminiModel replaces the Ollama model defaults when provider is gemini.
const DefaultGeminiModel = "gemini-2.5-flash"

// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// SecretString is a string that is redacted when printed.
type SecretString string

func (s SecretString) String() string {
	return "[REDACTED]"
}

func (s SecretString) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// IsEmpty returns true if the secret string is empty.
func (s SecretString) IsEmpty() bool {
	return string(s) == ""
}

// Config is the resolved configuration for one invocation.
type Config struct {
	Provider     Provider      `yaml:"provider" env:"PROVIDER"`
	Endpoint     string        `yaml:"endpoint" env:"ENDPOINT"`
	Timeout      time.Duration `yaml:"timeout" env:"TIMEOUT"`
	GeminiAPIKey SecretString  `yaml:"gemini_api_key" env:"GEMINI_KEY"`
	TestGen      ModelConfig   `yaml:"testgen" envPrefix:"TESTGEN_"`
	Review       ModelConfig   `yaml:"review" envPrefix:"REVIEW_"`
	Report       ReportConfig  `yaml:"report" envPrefix:"REPORT_"`
}

// ModelConfig holds the model identifier and sampling parameters for one tool.
type ModelConfig struct {
	Model       string  `yaml:"model" env:"MODEL"`
	Temperature float64 `yaml:"temperature" env:"TEMPERATURE"`
	TopP        float64 `yaml:"top_p" env:"TOP_P"`
	MaxTokens   int     `yaml:"max_tokens" env:"MAX_TOKENS"`
}

// ReportConfig controls how review results are rendered.
type ReportConfig struct {
	Language string `yaml:"language" env:"LANGUAGE"`
	Format   string `yaml:"format" env:"FORMAT"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Provider: ProviderOllama,
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
		TestGen: ModelConfig{
			Model:       DefaultTestGenModel,
			Temperature: DefaultTemperature,
			TopP:        DefaultTopP,
			MaxTokens:   DefaultMaxTokens,
		},
		Review: ModelConfig{
			Model:       DefaultReviewModel,
			Temperature: DefaultTemperature,
			TopP:        DefaultTopP,
			MaxTokens:   DefaultMaxTokens,
		},
		Report: ReportConfig{
			Language: LanguageKorean,
			Format:   FormatMarkdown,
		},
	}
}

// Loader handles loading configuration from the file system and environment.
type Loader struct {
	fs      FileSystem
	environ func() map[string]string
}

// NewLoader creates a Loader that reads the process environment and ./.env.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, environ: defaultEnviron}
}

// NewLoaderWithEnv creates a Loader with a fixed environment for testability.
func NewLoaderWithEnv(fs FileSystem, environ map[string]string) *Loader {
	return &Loader{fs: fs, environ: func() map[string]string { return environ }}
}

// DefaultPath returns ~/.config/ollama-codellama/config.yaml.
func (l *Loader) DefaultPath() (string, error) {
	home, err := l.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ollama-codellama", "config.yaml"), nil
}

// Load resolves the configuration.
// An empty path means the default location, which may be absent.
// A non-empty path must exist, otherwise ErrConfigNotFound is returned.
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	log := logger.FromContext(ctx)
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := l.DefaultPath()
		if err != nil {
			log.Debug("no home directory, skipping config file", "error", err)
		}
		path = p
	}

	if path != "" {
		// [SEC] Clean path
		path = filepath.Clean(path)
		log.Debug("loading config file", "path", path)

		data, err := l.fs.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case l.fs.IsNotExist(err) && !explicit:
			log.Debug("config file not present, using defaults", "path", path)
		case l.fs.IsNotExist(err):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg, l.environ()); err != nil {
		return nil, err
	}
	cfg.applyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load resolves the configuration using the real file system and environment.
func Load(ctx context.Context, path string) (*Config, error) {
	return NewLoader(&RealFileSystem{}).Load(ctx, path)
}

// applyProviderDefaults swaps model names still at their Ollama defaults for
// the Gemini default. Models set explicitly are kept.
func (c *Config) applyProviderDefaults() {
	if c.Provider != ProviderGemini {
		return
	}
	if c.TestGen.Model == DefaultTestGenModel {
		c.TestGen.Model = DefaultGeminiModel
	}
	if c.Review.Model == DefaultReviewModel {
		c.Review.Model = DefaultGeminiModel
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Provider {
	case ProviderOllama:
		u, err := url.Parse(c.Endpoint)
		if c.Endpoint == "" || err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("endpoint %q is not an absolute URL", c.Endpoint))
		}
	case ProviderGemini:
		if c.GeminiAPIKey.IsEmpty() {
			errs = append(errs, errors.New("provider 'gemini' requires gemini_api_key"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q (valid: ollama, gemini)", c.Provider))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %v", c.Timeout))
	}

	errs = append(errs, c.TestGen.validate("testgen")...)
	errs = append(errs, c.Review.validate("review")...)

	switch c.Report.Language {
	case LanguageKorean, LanguageEnglish:
	default:
		errs = append(errs, fmt.Errorf("report.language %q is not supported (valid: ko, en)", c.Report.Language))
	}

	switch c.Report.Format {
	case FormatMarkdown, FormatJSON, FormatSARIF, FormatHTML:
	default:
		errs = append(errs, fmt.Errorf("report.format %q is not supported (valid: markdown, json, sarif, html)", c.Report.Format))
	}

	return errors.Join(errs...)
}

func (m ModelConfig) validate(section string) []error {
	var errs []error
	if m.Model == "" {
		errs = append(errs, fmt.Errorf("%s.model must not be empty", section))
	}
	if m.Temperature < 0 {
		errs = append(errs, fmt.Errorf("%s.temperature must not be negative, got %v", section, m.Temperature))
	}
	if m.TopP < 0 || m.TopP > 1 {
		errs = append(errs, fmt.Errorf("%s.top_p must be within [0, 1], got %v", section, m.TopP))
	}
	if m.MaxTokens < 0 {
		errs = append(errs, fmt.Errorf("%s.max_tokens must not be negative, got %d", section, m.MaxTokens))
	}
	return errs
}
