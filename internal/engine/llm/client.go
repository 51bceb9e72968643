// Package llm talks to the model-serving backends used by both tools.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Options carries the model identifier and sampling parameters for one request.
type Options struct {
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Client abstracts a single-turn chat call for testability.
type Client interface {
	// Chat sends prompt as one user message and returns the reply text.
	// It blocks until the complete, non-streamed response arrives.
	Chat(ctx context.Context, prompt string, opts Options) (string, error)
}

// ErrMalformedResponse is returned when a successful response lacks the reply text.
var ErrMalformedResponse = errors.New("malformed model response")

// APIError reports a non-success HTTP status from the model endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API call failed: %d", e.StatusCode)
}

// ResponseError wraps a response-shape failure together with the raw body
// so callers can surface it in diagnostics.
type ResponseError struct {
	Raw string
	Err error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMalformedResponse, e.Err)
}

func (e *ResponseError) Unwrap() []error {
	return []error{ErrMalformedResponse, e.Err}
}
