package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskextreme-ai/config"
	_ "taskextreme-ai/docs" // Swagger docs
	genHTTP "taskextreme-ai/internal/generation/delivery/http"
	genUC "taskextreme-ai/internal/generation/usecase"
	"taskextreme-ai/internal/httpserver"
	"taskextreme-ai/internal/middleware"
	"taskextreme-ai/pkg/datemath"
	"taskextreme-ai/pkg/gsheets"
	"taskextreme-ai/pkg/inference"
	"taskextreme-ai/pkg/log"
	"taskextreme-ai/pkg/taskprompt"
)

// @title       TaskExtreme AI Backend
// @description Turns project descriptions into scheduled task drafts using a chat-completion model.
// @version     1.0.0
// @host        localhost:3001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskExtreme AI Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Inference: endpoint=%s model=%s", cfg.Inference.Endpoint, cfg.Inference.Model)

	// 3. Generation domain
	dateMathParser, err := datemath.NewParser(cfg.Inference.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Inference.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	llm, err := inference.New(inference.Config{
		Token:    cfg.Inference.Token,
		Endpoint: cfg.Inference.Endpoint,
		Model:    cfg.Inference.Model,
		Timeout:  cfg.Inference.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize inference client: ", err)
		os.Exit(1)
	}

	// Google Sheets client (optional)
	var sheets genUC.SheetReader
	if cfg.GoogleSheets.CredentialsPath != "" {
		sheetsClient, sheetsErr := gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
		if sheetsErr != nil {
			logger.Warnf(ctx, "Google Sheets not available (optional): %v", sheetsErr)
		} else {
			sheets = sheetsClient
			logger.Info(ctx, "Google Sheets enrichment enabled")
		}
	}

	generationUC := genUC.New(logger, llm, taskprompt.New(dateMathParser), sheets)
	generationHandler := genHTTP.New(logger, generationUC, cfg.Upload.MaxBytes)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		CORSOrigins:       cfg.CORS.Origins(),
		Middleware:        middleware.New(logger, cfg.RateLimit.RequestsPerMin),
		GenerationHandler: generationHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
