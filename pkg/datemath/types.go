package datemath

import "errors"

const (
	// DateLayout is the calendar date format used in prompts and task drafts.
	DateLayout = "2006-01-02"

	// NoDeadline is what the prompt shows when the caller sent no deadline.
	NoDeadline = "None"
)

// ErrUnrecognized is returned by Parse for phrases it does not understand.
var ErrUnrecognized = errors.New("unrecognized relative date")
