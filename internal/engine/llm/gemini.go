package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clapsheep/ollama-codellama/internal/engine/config"
	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
	"google.golang.org/genai"
)

// GenerativeClient abstracts the Gemini generative AI client for testability.
type GenerativeClient interface {
	// GenerateContent sends a prompt and returns a response.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates a GenerativeClient. Production code uses DefaultClientFactory;
// tests inject a factory that returns a mock.
type ClientFactory func(ctx context.Context, apiKey string) (GenerativeClient, error)

// genaiClient wraps the real genai.Client to satisfy GenerativeClient.
type genaiClient struct {
	inner *genai.Client
}

func (g *genaiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.inner.Models.GenerateContent(ctx, model, contents, config)
}

// DefaultClientFactory creates a real Gemini API client.
func DefaultClientFactory(ctx context.Context, apiKey string) (GenerativeClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &genaiClient{inner: c}, nil
}

// GeminiClient implements Client using the Google Gemini API.
// Options.Model names the Gemini model; an empty model falls back to the
// client default.
type GeminiClient struct {
	apiKey       string
	defaultModel string
	timeout      time.Duration
	factory      ClientFactory
}

// NewGeminiClient creates a new GeminiClient.
// The apiKey must be non-empty; callers should validate before construction.
// A zero timeout leaves the request bounded only by ctx.
func NewGeminiClient(apiKey, defaultModel string, timeout time.Duration, factory ClientFactory) *GeminiClient {
	if defaultModel == "" {
		defaultModel = config.DefaultGeminiModel
	}
	if factory == nil {
		factory = DefaultClientFactory
	}
	return &GeminiClient{
		apiKey:       apiKey,
		defaultModel: defaultModel,
		timeout:      timeout,
		factory:      factory,
	}
}

// Chat sends prompt to Gemini once. There is no retry.
func (c *GeminiClient) Chat(ctx context.Context, prompt string, opts Options) (string, error) {
	log := logger.FromContext(ctx)
	model := opts.Model
	if model == "" {
		model = c.defaultModel
	}
	log.Debug("sending Gemini request", "model", model, "prompt_bytes", len(prompt))
	start := time.Now()

	client, err := c.factory(ctx, c.apiKey)
	if err != nil {
		return "", fmt.Errorf("creating Gemini client: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := client.GenerateContent(ctx, model, genai.Text(prompt), generationConfig(opts))
	if err != nil {
		if apiErr := asAPIError(err); apiErr != nil {
			return "", apiErr
		}
		return "", fmt.Errorf("executing request: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", &ResponseError{Err: err}
	}

	log.Info("chat request complete",
		"model", model,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// asAPIError converts a Gemini HTTP error into *APIError, or returns nil.
func asAPIError(err error) *APIError {
	var gerr genai.APIError
	if errors.As(err, &gerr) && gerr.Code != 0 {
		return &APIError{StatusCode: gerr.Code, Body: gerr.Message}
	}
	var gptr *genai.APIError
	if errors.As(err, &gptr) && gptr != nil && gptr.Code != 0 {
		return &APIError{StatusCode: gptr.Code, Body: gptr.Message}
	}
	return nil
}

// generationConfig maps sampling options onto Gemini's request config.
func generationConfig(opts Options) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(opts.Temperature)),
		TopP:        genai.Ptr(float32(opts.TopP)),
	}
	if opts.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxTokens)
	}
	return cfg
}

// extractText pulls the text content from a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("empty response from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content parts in response")
	}
	part := candidate.Content.Parts[0]
	if part.Text == "" {
		return "", errors.New("empty text in response part")
	}
	return part.Text, nil
}

// Ensure GeminiClient implements Client.
var _ Client = (*GeminiClient)(nil)
