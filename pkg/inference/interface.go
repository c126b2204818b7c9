package inference

import "context"

// IClient sends one two-message chat completion and returns the first choice's text.
// Implementations are safe for concurrent use.
type IClient interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new inference client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
