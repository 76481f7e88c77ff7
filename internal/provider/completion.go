package provider

import "context"

// CompletionRequest is a single-turn model request.
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Completer sends one request to a language model and returns the reply text.
// Implementations return a *domain.UpstreamError on failure.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
