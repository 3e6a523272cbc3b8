package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"product-catalog/internal/catalog"
	"product-catalog/internal/config"
	"product-catalog/internal/database"
	"product-catalog/internal/logger"
	"product-catalog/internal/render"
	"product-catalog/internal/repository"
	"product-catalog/internal/server"
	"product-catalog/internal/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

// openSource returns the configured catalog source and, for Postgres, the migrated database service
func openSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (catalog.Source, *database.Service, error) {
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		dbService, err := database.New(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		log.Info("Database health check", zap.Any("health", dbService.Health(ctx)))

		if err := database.RunMigrations(dbService.DB(), log); err != nil {
			dbService.Close()
			return nil, nil, err
		}

		version, err := database.GetMigrationStatus(dbService.DB())
		if err != nil {
			dbService.Close()
			return nil, nil, err
		}
		log.Info("Database schema ready", zap.Int64("version", version))

		if cfg.Catalog.Seed {
			if err := seedFixtures(ctx, dbService, log); err != nil {
				dbService.Close()
				return nil, nil, err
			}
		}

		return repository.NewPostgresSource(dbService.DB()), dbService, nil

	case config.SourceFixtures:
		src, err := repository.NewDefaultFixtureSource()
		return src, nil, err

	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func seedFixtures(ctx context.Context, dbService *database.Service, log *zap.Logger) error {
	fixtures, err := repository.NewDefaultFixtureSource()
	if err != nil {
		return err
	}

	inserted, err := repository.Seed(ctx, dbService.DB(), fixtures)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Info("Catalog seeded from fixtures", zap.Int("inserted", inserted))
	return nil
}

func openRedis(ctx context.Context, cfg *config.Config, log *zap.Logger) *redis.Client {
	if !cfg.RateLimit.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		// The limiter fails open, so an unreachable Redis only disables limiting
		log.Warn("Redis unreachable, rate limiting will allow all requests", zap.Error(err))
	}

	return client
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		log = logger.NewWithDefaults(cfg.Server.Env)
		log.Warn("Invalid log level, falling back to info", zap.String("level", cfg.Server.LogLevel), zap.Error(err))
	}
	defer log.Sync()

	log.Info("Starting product catalog",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("source", cfg.Catalog.Source),
	)

	ctx := context.Background()

	locale, err := service.ParseLocale(cfg.Catalog.Locale)
	if err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	src, dbService, err := openSource(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open catalog source", zap.Error(err))
	}

	catalogService, err := service.NewCatalogService(ctx, src, locale, log)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatal("Failed to initialize renderer", zap.Error(err))
	}

	deps := server.Dependencies{
		CatalogService: catalogService,
		Renderer:       renderer,
		Redis:          openRedis(ctx, cfg, log),
	}
	if dbService != nil {
		deps.DB = dbService.DB()
	}

	srv := server.NewServer(cfg, log, deps)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
