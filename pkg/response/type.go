package response

// ErrorResp is the JSON body of every failed request.
type ErrorResp struct {
	Error string `json:"error"`
}

const (
	// DefaultErrorMessage is used when an error carries no text.
	DefaultErrorMessage = "Internal server error"

	MessageTooManyRequests = "Too many requests, please slow down."
)
