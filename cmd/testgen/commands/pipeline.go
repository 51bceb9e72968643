package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/clapsheep/ollama-codellama/internal/engine/formatter"
	"github.com/clapsheep/ollama-codellama/internal/engine/testgen"
	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
)

// Generator produces test source for a file.
type Generator interface {
	Generate(ctx context.Context, source, sourcePath string) (string, error)
}

// FileWriter writes a file, creating parent directories.
type FileWriter interface {
	Write(path string, data []byte) error
}

// Pipeline orchestrates one test generation with injected dependencies.
type Pipeline struct {
	ReadFile  func(name string) ([]byte, error)
	Generator Generator
	Writer    FileWriter

	// Labels supplies the console wording.
	Labels formatter.Labels

	// Stdout receives the request time and the confirmation line.
	Stdout io.Writer
}

// Execute generates tests for sourcePath and returns the written test path.
// Nothing is written if generation fails.
func (p *Pipeline) Execute(ctx context.Context, sourcePath string) (string, error) {
	log := logger.FromContext(ctx)
	log.Info("test generation started", "source", sourcePath)

	source, err := p.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("reading source file: %w", err)
	}

	testPath := testgen.TestPath(sourcePath)

	start := time.Now()
	code, err := p.Generator.Generate(ctx, string(source), sourcePath)
	fmt.Fprintf(p.Stdout, p.Labels.RequestTime+"\n", time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	if err := p.Writer.Write(testPath, []byte(code)); err != nil {
		return "", err
	}

	fmt.Fprintf(p.Stdout, "%s: %s\n", p.Labels.TestFileGenerated, testPath)
	return testPath, nil
}
