// Package testgen generates Vitest test files for TypeScript sources by
// delegating to a language model.
package testgen

import (
	"context"
	"fmt"
	"time"

	"github.com/clapsheep/ollama-codellama/internal/engine/llm"
	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
)

// Generator turns a source file into test source text.
type Generator struct {
	client llm.Client
	opts   llm.Options
}

// NewGenerator creates a Generator that calls client with opts.
func NewGenerator(client llm.Client, opts llm.Options) *Generator {
	return &Generator{client: client, opts: opts}
}

// Generate asks the model for tests covering source and returns the reply
// unmodified. The text is not validated as code.
func (g *Generator) Generate(ctx context.Context, source, sourcePath string) (string, error) {
	log := logger.FromContext(ctx)
	importPath := ImportPath(sourcePath)
	log.Debug("building test prompt", "source", sourcePath, "import_path", importPath)

	start := time.Now()
	text, err := g.client.Chat(ctx, BuildPrompt(source, importPath), g.opts)
	elapsed := time.Since(start)
	log.Info("API request processed", "seconds", fmt.Sprintf("%.2f", elapsed.Seconds()))
	if err != nil {
		return "", fmt.Errorf("generating tests for %s: %w", sourcePath, err)
	}

	return text, nil
}
