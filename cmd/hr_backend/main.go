package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/hr_records_app/internal/adapters/database/mongodb"
	"github.com/SscSPs/hr_records_app/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	"github.com/SscSPs/hr_records_app/internal/core/services"
	"github.com/SscSPs/hr_records_app/internal/handlers"
	"github.com/SscSPs/hr_records_app/internal/middleware"
	"github.com/SscSPs/hr_records_app/internal/platform/config"
	"github.com/SscSPs/hr_records_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title HR Records Backend API
// @version 1.0
// @description Employees, departments, roles and users behind an API key, plus account login.

// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
	}

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create login rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.APIKeyLoopbackBypass {
		logger.Warn("API key check is bypassed for loopback callers; set API_KEY_LOOPBACK_BYPASS=false to disable")
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		Health:       repos.Health,
		LoginLimiter: loginLimiter,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore connects the configured backing store and prepares its schema.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreDriver == config.StorePostgres {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := pgsql.EnsureSchema(ctx, dbPool); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("PostgreSQL schema ready")
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}

	client, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		database.CloseMongoClient(client)
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("MongoDB indexes ready", slog.String("database", cfg.MongoDatabase))
	return mongodb.NewRepositoryProvider(client, db, cfg.MongoUseTransactions), func() { database.CloseMongoClient(client) }, nil
}
