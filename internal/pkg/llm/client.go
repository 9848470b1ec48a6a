package llm

import "context"

// Client is a minimal text-generation collaborator.
type Client interface {
	// Complete sends one free-text prompt and returns the raw completion.
	Complete(ctx context.Context, prompt string) (string, error)
}
