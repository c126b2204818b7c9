package inference

import "fmt"

// UpstreamError reports an error-shaped or structurally unexpected reply from the endpoint.
// Message carries the upstream error text when one was present.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func newUpstreamError(status int, format string, args ...any) *UpstreamError {
	return &UpstreamError{StatusCode: status, Message: fmt.Sprintf(format, args...)}
}
