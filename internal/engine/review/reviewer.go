package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/clapsheep/ollama-codellama/internal/engine/llm"
	"github.com/clapsheep/ollama-codellama/internal/platform/logger"
)

// ErrProcessing is returned when the model reply could not be read at all.
// API failures are not wrapped in it; they surface as *llm.APIError.
var ErrProcessing = errors.New("failed to process review response")

// Reviewer requests a review and extracts the structured result.
type Reviewer struct {
	client llm.Client
	opts   llm.Options
}

// NewReviewer creates a Reviewer that calls client with opts.
func NewReviewer(client llm.Client, opts llm.Options) *Reviewer {
	return &Reviewer{client: client, opts: opts}
}

// Review sends source to the model and returns the parsed outcome.
// A reply that does not contain a parseable review is not an error: the
// outcome carries Fallback with FallbackUsed set.
func (r *Reviewer) Review(ctx context.Context, source, filePath string) (Outcome, error) {
	log := logger.FromContext(ctx)
	log.Info("starting code review", "file", filePath, "model", r.opts.Model)

	text, err := r.client.Chat(ctx, BuildPrompt(source, filePath), r.opts)
	if err != nil {
		var apiErr *llm.APIError
		if errors.As(err, &apiErr) {
			return Outcome{}, err
		}
		var respErr *llm.ResponseError
		if errors.As(err, &respErr) {
			log.Error("unexpected review response", "error", respErr.Err, "raw_response", respErr.Raw)
			return Outcome{}, fmt.Errorf("%w: %w", ErrProcessing, err)
		}
		return Outcome{}, err
	}

	outcome := Parse(text)
	if outcome.FallbackUsed {
		log.Warn("could not parse review JSON, using placeholder result", "raw_content", text)
	} else {
		log.Info("code review complete", "file", filePath, "issues", len(outcome.Result.Issues))
	}
	return outcome, nil
}
