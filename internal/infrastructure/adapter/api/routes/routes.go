package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the HTTP handlers the router dispatches to
type Handlers struct {
	Health *handler.HealthHandler
	Sync   *handler.SyncHandler
	Logs   *handler.LogHandler
}

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	Logger         coreport.Logger
	TimeProvider   coreport.TimeProvider
	IDGenerator    coreport.IDGenerator
	CORSOrigins    []string
	BodyLimitBytes int64
}

// SetupRoutes configures all the routes for the API. A non-empty staticDir
// serves a built client with an index.html fallback.
func SetupRoutes(router *gin.Engine, h Handlers, staticDir string) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/data", h.Sync.GetData)

		api.POST("/users", h.Sync.PostUsers)
		api.DELETE("/users/:id", h.Sync.DeleteUser)
		api.POST("/loans", h.Sync.PostLoans)
		api.POST("/notifications", h.Sync.PostNotifications)

		api.POST("/budget", h.Sync.PostBudget)
		api.POST("/rankProfit", h.Sync.PostRankProfit)

		api.GET("/logs", h.Logs.ListLogs)
		api.POST("/logs", h.Logs.AppendLog)
	}

	if staticDir != "" {
		router.NoRoute(middleware.SPA(staticDir))
		return
	}
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not Found"})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, opts MiddlewareOptions) {
	router.Use(middleware.RequestID(opts.IDGenerator))
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.Logger(opts.Logger, opts.TimeProvider))
	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(middleware.BodyLimit(opts.BodyLimitBytes))
}
