package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. OLLAMA_CODELLAMA_ENDPOINT or OLLAMA_CODELLAMA_REVIEW_MODEL.
const EnvPrefix = "OLLAMA_CODELLAMA_"

// applyEnvOverrides overlays variables from environ onto cfg.
// Unset variables leave the current value untouched.
func applyEnvOverrides(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return fmt.Errorf("parsing environment overrides: %w", err)
	}
	return nil
}

// defaultEnviron merges ./.env (if present) under the process environment.
func defaultEnviron() map[string]string {
	merged := make(map[string]string)
	if dotenv, err := godotenv.Read(); err == nil {
		for k, v := range dotenv {
			merged[k] = v
		}
	}
	for k, v := range toMap(os.Environ()) {
		merged[k] = v
	}
	return merged
}

func toMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
