package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
)

// DefaultOllamaEndpoint is the local Ollama API base URL.
const DefaultOllamaEndpoint = "http://localhost:11434/api"

// OllamaClient implements Client against Ollama's native /chat API.
type OllamaClient struct {
	endpoint   string
	httpClient *http.Client

	timeout    time.Duration
	hasTimeout bool
}

// OllamaOption is a functional option for configuring OllamaClient.
type OllamaOption func(*OllamaClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) OllamaOption {
	return func(c *OllamaClient) {
		c.httpClient = client
	}
}

// WithTimeout bounds the whole request, response body included.
// Zero disables the bound. The timeout is applied to a copy of the HTTP
// client, so a client passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) OllamaOption {
	return func(c *OllamaClient) {
		c.timeout = d
		c.hasTimeout = true
	}
}

// NewOllamaClient creates a client for the API rooted at endpoint,
// e.g. "http://localhost:11434/api".
func NewOllamaClient(endpoint string, opts ...OllamaOption) *OllamaClient {
	if endpoint == "" {
		endpoint = DefaultOllamaEndpoint
	}
	c := &OllamaClient{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hasTimeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Message *struct {
		Role    string  `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
	Done          bool  `json:"done"`
	TotalDuration int64 `json:"total_duration,omitempty"`
	EvalCount     int   `json:"eval_count,omitempty"`
}

// Chat posts a single non-streaming chat request and returns message.content.
func (c *OllamaClient) Chat(ctx context.Context, prompt string, opts Options) (string, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(chatRequest{
		Model:    opts.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
		Options: chatOptions{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
			MaxTokens:   opts.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("sending chat request", "endpoint", c.endpoint, "model", opts.Model, "prompt_bytes", len(prompt))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ResponseError{Raw: string(raw), Err: fmt.Errorf("decoding response: %w", err)}
	}
	if parsed.Message == nil || parsed.Message.Content == nil {
		return "", &ResponseError{Raw: string(raw), Err: errors.New("missing message.content")}
	}

	log.Info("chat request complete",
		"model", opts.Model,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"eval_count", parsed.EvalCount,
	)

	return *parsed.Message.Content, nil
}

// Ensure OllamaClient implements Client.
var _ Client = (*OllamaClient)(nil)
