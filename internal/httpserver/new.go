package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	genHTTP "taskextreme-ai/internal/generation/delivery/http"
	"taskextreme-ai/internal/middleware"
	"taskextreme-ai/internal/model"
	"taskextreme-ai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	mw          middleware.Middleware

	// Generation domain
	generationHandler genHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string
	Middleware  middleware.Middleware

	// Generation domain
	GenerationHandler genHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.Environment == "" {
		cfg.Environment = string(model.EnvironmentDevelopment)
	}

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		corsOrigins:       cfg.CORSOrigins,
		mw:                cfg.Middleware,
		generationHandler: cfg.GenerationHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.generationHandler == nil {
		return errors.New("generation handler is required")
	}
	return nil
}
