package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/usecase/audit"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/usecase/datasync"

	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Environment == config.Test {
		gin.SetMode(gin.TestMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		Level:      cfg.Logger.Level,
		CallerInfo: cfg.Logger.CallerInfo,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	dbConfig := database.FromAppConfig(cfg.Database)
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	tp := timeProvider.NewRealTimeProvider()
	ids := id.NewUUIDGenerator()
	health := database.NewHealthState()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An unreachable store is not fatal: the server starts, /health reports
	// the state and the health checker bootstraps once the store comes up.
	dbManager := database.NewManager(dbConfig, appLogger, tp, ids, health)
	if _, err := dbManager.Connect(ctx); err != nil && dbManager.DB() == nil {
		appLogger.Error("Failed to open database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	checker := database.NewHealthChecker(dbManager, appLogger, cfg.Database.HealthCheckInterval, dbManager.Bootstrap)
	if health.Snapshot().State == database.StateConnected {
		if err := dbManager.Bootstrap(ctx); err != nil {
			appLogger.Error("Failed to bootstrap database", map[string]any{
				"error": err.Error(),
			})
		} else {
			checker.MarkBootstrapped()
		}
	}
	checker.StartMonitoring(ctx)

	repos := dbManager.Repositories()

	syncService := datasync.NewSyncService(
		dbManager.CreateUnitOfWork(),
		repos.Users,
		repos.Loans,
		repos.Notifications,
		repos.Settings,
		appLogger,
	).WithNotificationLimit(cfg.Sync.NotificationLimit)

	auditService := audit.NewAuditService(repos.Logs, ids, appLogger).
		WithListLimit(cfg.Sync.LogLimit)

	router := gin.New()
	routes.SetupMiddlewares(router, routes.MiddlewareOptions{
		Logger:         appLogger,
		TimeProvider:   tp,
		IDGenerator:    ids,
		CORSOrigins:    cfg.Server.CORSOrigins,
		BodyLimitBytes: cfg.Server.BodyLimitBytes,
	})
	routes.SetupRoutes(router, routes.Handlers{
		Health: handler.NewHealthHandler(health, cfg.Environment),
		Sync:   handler.NewSyncHandler(syncService, appLogger),
		Logs:   handler.NewLogHandler(auditService, appLogger),
	}, cfg.Server.StaticDir)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address":     server.Addr,
			"environment": cfg.Environment,
			"db_driver":   dbConfig.Driver,
			"db_target":   dbConfig.Target(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	appLogger.Info("Shutting down server", map[string]any{"signal": sig.String()})

	checker.StopMonitoring()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited", nil)
}

// validateConfig checks that the essential configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Server.BodyLimitBytes <= 0 {
		missingConfigs = append(missingConfigs, "server.bodyLimitBytes")
	}

	if cfg.Database.Driver == "" {
		missingConfigs = append(missingConfigs, "database.driver")
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Database.HealthCheckInterval == 0 {
		missingConfigs = append(missingConfigs, "database.healthCheckInterval")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverPostgres && cfg.Database.URL == "" {
			mode := strings.ToLower(cfg.Database.SSLMode)
			if mode != "require" && mode != "verify-ca" && mode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		for _, origin := range cfg.Server.CORSOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.corsOrigins allows any origin in production")
				break
			}
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
