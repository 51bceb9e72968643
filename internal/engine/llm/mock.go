package llm

import (
	"context"
)

// MockClient is a test double for llm.Client.
// It records the last prompt and options it was called with.
type MockClient struct {
	Reply string
	Err   error

	Calls      int
	LastPrompt string
	LastOpts   Options
}

// Chat returns the configured reply and error.
func (m *MockClient) Chat(_ context.Context, prompt string, opts Options) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastOpts = opts
	return m.Reply, m.Err
}
