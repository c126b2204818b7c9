package generation

import "context"

// UseCase defines the business logic interface for the task generation domain.
type UseCase interface {
	// Generate resolves the request content, asks the model for task drafts and
	// extracts a JSON array from its reply, falling back to the raw reply.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
