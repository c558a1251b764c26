package llm

import "context"

// Provider is the interface all model providers implement. One submission
// maps to one blocking Generate call; there are no retries and no streaming.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate sends the assembled prompt and returns the model's text
	Generate(ctx context.Context, prompt string) (string, error)

	// Ping checks if the provider is reachable and the credential works
	Ping(ctx context.Context) error
}
