package http

import (
	"errors"
	"net/http"

	"taskextreme-ai/internal/generation"
	"taskextreme-ai/pkg/inference"
)

const msgInvalidInput = "No valid input provided."

var errMalformedBody = errors.New("malformed request body")

// mapError translates domain and client errors into a status and message.
func (h *handler) mapError(err error) (int, string) {
	var upErr *inference.UpstreamError

	switch {
	case errors.Is(err, generation.ErrInvalidInput), errors.Is(err, errMalformedBody):
		return http.StatusBadRequest, msgInvalidInput
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge, errBodyTooLarge.Error()
	case errors.As(err, &upErr):
		return http.StatusInternalServerError, upErr.Message
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
