package http

import (
	"github.com/gin-gonic/gin"

	"taskextreme-ai/internal/generation"
	"taskextreme-ai/pkg/log"
)

// Handler is the public interface for the generation HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        generation.UseCase
	maxUpload int64
}

// DefaultMaxUpload is the body limit used when New is given a non-positive one.
const DefaultMaxUpload int64 = 20 << 20

// New creates a new HTTP handler for the generation domain.
// maxUpload bounds the request body in bytes and is also the in-memory budget for
// multipart file parts, so uploads are never spooled to disk.
func New(l log.Logger, uc generation.UseCase, maxUpload int64) *handler {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	return &handler{
		l:         l,
		uc:        uc,
		maxUpload: maxUpload,
	}
}
