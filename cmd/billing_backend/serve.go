package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/construction_billing_app/internal/core/services"
	"github.com/SscSPs/construction_billing_app/internal/handlers"
	"github.com/SscSPs/construction_billing_app/internal/metrics"
	"github.com/SscSPs/construction_billing_app/internal/middleware"
	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/SscSPs/construction_billing_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/construction_billing_app/internal/repositories/memory"
	"github.com/SscSPs/construction_billing_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		skipMigrations, _ := cmd.Flags().GetBool("skip-migrations")
		return serve(cmd.Context(), cfg, logger, !skipMigrations)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on, overrides PORT")
	serveCmd.Flags().Bool("skip-migrations", false, "Do not apply pending migrations on start")
}

// openRepositories selects the storage driver. The returned cleanup closes any
// pool that was opened.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger, runMigrations bool) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	if runMigrations {
		logger.Info("Running database migrations...")
		if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, runMigrations bool) error {
	repos, cleanup, err := openRepositories(ctx, cfg, logger, runMigrations)
	if err != nil {
		return err
	}
	defer cleanup()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	serviceContainer := services.NewServiceContainer(cfg, repos, m)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	r.Use(middleware.MetricsMiddleware(m))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, registry); err != nil {
		return err
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("storage", string(cfg.StorageDriver)),
		slog.String("debit_policy", string(cfg.DebitPolicy)),
		slog.String("delete_policy", string(cfg.DeletePolicy)),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}

// corsConfig allows the configured origins; with none configured any origin is
// accepted without credentials.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Deletion-Secret"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}
