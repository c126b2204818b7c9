package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	genHTTP "taskextreme-ai/internal/generation/delivery/http"
	"taskextreme-ai/internal/model"
	"taskextreme-ai/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	if err := srv.registerMiddlewares(); err != nil {
		return err
	}
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv HTTPServer) registerMiddlewares() error {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())

	corsHandler, err := srv.mw.CORS(srv.corsOrigins)
	if err != nil {
		return err
	}
	srv.gin.Use(corsHandler)

	srv.l.Infof(context.Background(), "CORS mode: %s, origins=%v", srv.environment, srv.corsOrigins)
	return nil
}

// recoverPanic answers a panicking request with a generic 500 body.
func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	srv.l.Errorf(c.Request.Context(), "panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	response.InternalError(c, nil)
	c.Abort()
}

func (srv HTTPServer) isProduction() bool {
	return srv.environment == string(model.EnvironmentProduction)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootInfo)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API docs are not published in production.
	if srv.isProduction() {
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api")
	genHTTP.RegisterRoutes(api, srv.generationHandler, srv.mw)
	srv.l.Infof(context.Background(), "Generation route registered at POST %s", GenerateTasksPath)
}
