package config

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const defaultPath = "/home/test/.config/ollama-codellama/config.yaml"

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	loader := NewLoaderWithEnv(NewMockFileSystem(), nil)

	cfg, err := loader.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_MatchesLocalService(t *testing.T) {
	cfg := Default()

	if cfg.Endpoint != "http://localhost:11434/api" {
		t.Errorf("unexpected endpoint %q", cfg.Endpoint)
	}
	if cfg.TestGen.Model != "codellama:7b" {
		t.Errorf("unexpected testgen model %q", cfg.TestGen.Model)
	}
	if cfg.Review.Model != "codellama:13b" {
		t.Errorf("unexpected review model %q", cfg.Review.Model)
	}
	for _, m := range []ModelConfig{cfg.TestGen, cfg.Review} {
		if m.Temperature != 0.2 || m.TopP != 0.8 || m.MaxTokens != 2000 {
			t.Errorf("unexpected sampling parameters: %+v", m)
		}
	}
	if cfg.Timeout != 5*time.Minute {
		t.Errorf("unexpected timeout %v", cfg.Timeout)
	}
}

func TestLoad_DefaultPathFile(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.Files[defaultPath] = []byte(`
endpoint: http://gpu-box:11434/api
timeout: 90s
review:
  model: codellama:34b
  max_tokens: 4000
report:
  language: en
`)

	cfg, err := NewLoaderWithEnv(mockFS, nil).Load(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Endpoint != "http://gpu-box:11434/api" {
		t.Errorf("expected endpoint from file, got %q", cfg.Endpoint)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("expected timeout 90s, got %v", cfg.Timeout)
	}
	if cfg.Review.Model != "codellama:34b" {
		t.Errorf("expected review model from file, got %q", cfg.Review.Model)
	}
	if cfg.Review.MaxTokens != 4000 {
		t.Errorf("expected review max_tokens 4000, got %d", cfg.Review.MaxTokens)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Review.Temperature != DefaultTemperature {
		t.Errorf("expected default temperature, got %v", cfg.Review.Temperature)
	}
	if cfg.TestGen.Model != DefaultTestGenModel {
		t.Errorf("expected default testgen model, got %q", cfg.TestGen.Model)
	}
	if cfg.Report.Language != LanguageEnglish {
		t.Errorf("expected language en, got %q", cfg.Report.Language)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	loader := NewLoaderWithEnv(NewMockFileSystem(), nil)

	_, err := loader.Load(context.Background(), "/etc/missing.yaml")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoad_ReadError(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.ReadErrors[defaultPath] = errors.New("disk error")

	_, err := NewLoaderWithEnv(mockFS, nil).Load(context.Background(), "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "disk error") {
		t.Errorf("expected wrapped read error, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.Files["/config.yaml"] = []byte("\t: invalid")

	_, err := NewLoaderWithEnv(mockFS, nil).Load(context.Background(), "/config.yaml")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestLoad_UserHomeDirError(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.UserHomeErr = errors.New("no home dir")

	cfg, err := NewLoaderWithEnv(mockFS, nil).Load(context.Background(), "")
	if err != nil {
		t.Fatalf("expected defaults when home is unknown, got: %v", err)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.Files["/config.yaml"] = []byte(`
endpoint: http://file-host:11434/api
testgen:
  model: file-model
`)
	environ := map[string]string{
		"OLLAMA_CODELLAMA_ENDPOINT":          "http://env-host:11434/api",
		"OLLAMA_CODELLAMA_TIMEOUT":           "30s",
		"OLLAMA_CODELLAMA_TESTGEN_MODEL":     "env-model",
		"OLLAMA_CODELLAMA_REVIEW_TOP_P":      "0.5",
		"OLLAMA_CODELLAMA_REVIEW_MAX_TOKENS": "1024",
		"OLLAMA_CODELLAMA_REPORT_FORMAT":     "sarif",
		"UNRELATED":                          "ignored",
	}

	cfg, err := NewLoaderWithEnv(mockFS, environ).Load(context.Background(), "/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Endpoint != "http://env-host:11434/api" {
		t.Errorf("expected env endpoint, got %q", cfg.Endpoint)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected env timeout, got %v", cfg.Timeout)
	}
	if cfg.TestGen.Model != "env-model" {
		t.Errorf("expected env testgen model, got %q", cfg.TestGen.Model)
	}
	if cfg.Review.TopP != 0.5 {
		t.Errorf("expected env top_p 0.5, got %v", cfg.Review.TopP)
	}
	if cfg.Review.MaxTokens != 1024 {
		t.Errorf("expected env max_tokens 1024, got %d", cfg.Review.MaxTokens)
	}
	if cfg.Report.Format != FormatSARIF {
		t.Errorf("expected env report format sarif, got %q", cfg.Report.Format)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	environ := map[string]string{"OLLAMA_CODELLAMA_TIMEOUT": "not-a-duration"}

	_, err := NewLoaderWithEnv(NewMockFileSystem(), environ).Load(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for unparsable duration")
	}
}

func TestLoad_GeminiProvider(t *testing.T) {
	environ := map[string]string{
		"OLLAMA_CODELLAMA_PROVIDER":   "gemini",
		"OLLAMA_CODELLAMA_GEMINI_KEY": "env-key-456",
	}

	cfg, err := NewLoaderWithEnv(NewMockFileSystem(), environ).Load(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderGemini {
		t.Errorf("expected gemini provider, got %q", cfg.Provider)
	}
	if cfg.GeminiAPIKey != "env-key-456" {
		t.Errorf("expected key from env, got %q", string(cfg.GeminiAPIKey))
	}
	if cfg.TestGen.Model != DefaultGeminiModel || cfg.Review.Model != DefaultGeminiModel {
		t.Errorf("expected Gemini model defaults, got testgen %q review %q", cfg.TestGen.Model, cfg.Review.Model)
	}
}

func TestLoad_GeminiProviderKeepsExplicitModel(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.Files["/config.yaml"] = []byte(`
provider: gemini
gemini_api_key: file-key
review:
  model: gemini-2.5-pro
`)

	cfg, err := NewLoaderWithEnv(mockFS, nil).Load(context.Background(), "/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Review.Model != "gemini-2.5-pro" {
		t.Errorf("expected explicit review model, got %q", cfg.Review.Model)
	}
	if cfg.TestGen.Model != DefaultGeminiModel {
		t.Errorf("expected Gemini default for testgen, got %q", cfg.TestGen.Model)
	}
}

func TestLoad_OllamaProviderKeepsOllamaModels(t *testing.T) {
	cfg, err := NewLoaderWithEnv(NewMockFileSystem(), nil).Load(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Review.Model != DefaultReviewModel || cfg.TestGen.Model != DefaultTestGenModel {
		t.Errorf("expected Ollama models, got testgen %q review %q", cfg.TestGen.Model, cfg.Review.Model)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
		},
		{
			name:    "relative endpoint",
			mutate:  func(c *Config) { c.Endpoint = "localhost:11434" },
			wantErr: []string{"not an absolute URL"},
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "openai" },
			wantErr: []string{`unknown provider "openai"`},
		},
		{
			name:    "gemini without key",
			mutate:  func(c *Config) { c.Provider = ProviderGemini },
			wantErr: []string{"requires gemini_api_key"},
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: []string{"timeout must not be negative"},
		},
		{
			name: "several model problems reported together",
			mutate: func(c *Config) {
				c.TestGen.Model = ""
				c.Review.TopP = 1.5
				c.Review.MaxTokens = -1
			},
			wantErr: []string{"testgen.model", "review.top_p", "review.max_tokens"},
		},
		{
			name:    "unsupported language",
			mutate:  func(c *Config) { c.Report.Language = "fr" },
			wantErr: []string{`report.language "fr"`},
		},
		{
			name:    "unsupported format",
			mutate:  func(c *Config) { c.Report.Format = "pdf" },
			wantErr: []string{`report.format "pdf"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("expected error to contain %q, got: %v", want, err)
				}
			}
		})
	}
}

func TestSecretString_Redaction(t *testing.T) {
	s := SecretString("my-secret-key")
	if s.String() != "[REDACTED]" {
		t.Errorf("expected redacted string, got %q", s.String())
	}

	val, err := s.MarshalYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "[REDACTED]" {
		t.Errorf("expected [REDACTED], got %q", val)
	}
	if s.IsEmpty() || !SecretString("").IsEmpty() {
		t.Error("IsEmpty returned the wrong answer")
	}
}

func TestToMap(t *testing.T) {
	got := toMap([]string{"A=1", "B=x=y", "MALFORMED", "C="})
	want := map[string]string{"A": "1", "B": "x=y", "C": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("toMap mismatch (-want +got):\n%s", diff)
	}
}
