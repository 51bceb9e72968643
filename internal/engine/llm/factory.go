package llm

import (
	"fmt"

	"github.com/clapsheep/ollama-codellama/internal/engine/config"
)

// New builds the Client selected by cfg.Provider.
func New(cfg *config.Config) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOllama, "":
		return NewOllamaClient(cfg.Endpoint, WithTimeout(cfg.Timeout)), nil
	case config.ProviderGemini:
		if cfg.GeminiAPIKey.IsEmpty() {
			return nil, fmt.Errorf("provider %q requires an API key", cfg.Provider)
		}
		return NewGeminiClient(string(cfg.GeminiAPIKey), "", cfg.Timeout, DefaultClientFactory), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}

// OptionsFrom converts a per-tool model section into request options.
func OptionsFrom(m config.ModelConfig) Options {
	return Options{
		Model:       m.Model,
		Temperature: m.Temperature,
		TopP:        m.TopP,
		MaxTokens:   m.MaxTokens,
	}
}
