package generation

import "errors"

// Domain-specific errors for the generation package.
var (
	ErrInvalidInput = errors.New("no valid input provided")
)
