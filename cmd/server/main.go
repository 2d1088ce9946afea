package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/Nebur23/bizsense-ai/internal/adapter/http"
	"github.com/Nebur23/bizsense-ai/internal/adapter/http/handler"
	"github.com/Nebur23/bizsense-ai/internal/adapter/http/middleware"
	postgresRepo "github.com/Nebur23/bizsense-ai/internal/adapter/repository/postgres"
	redisRepo "github.com/Nebur23/bizsense-ai/internal/adapter/repository/redis"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/auth"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/config"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/logger"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/metrics"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/postgres"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/redis"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis. The cache and idempotency layers are optional; without
	// Redis the API still serves every endpoint, just without replay protection.
	var redisClient *redislib.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	} else {
		log.Warn().Msg("no redis configured, running without cache and idempotency")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	businessRepo := postgresRepo.NewBusinessRepository(pool)
	reportRepo := postgresRepo.NewReportRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	var cache usecase.Cache
	var idempotencyStore usecase.IdempotencyStore
	if redisClient != nil {
		cache = redisRepo.NewCache(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	m := metrics.New()

	// Initialize use cases
	userUC := usecase.NewUserUseCase(userRepo, idGen)
	businessUC := usecase.NewBusinessUseCase(txManager, businessRepo, userRepo, idGen)
	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, movementRepo, idGen)
	postingUC := usecase.NewPostingUseCase(txManager, accountRepo, transactionRepo, movementRepo, categoryRepo, customerRepo, idGen, retrier, m)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, movementRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, cache, idGen)
	reportUC := usecase.NewReportUseCase(reportRepo)

	// Seed default categories so posting works out of the box.
	if err := categoryUC.SeedCategories(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed categories")
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userUC, jwtManager)
	businessHandler := handler.NewBusinessHandler(businessUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	transactionHandler := handler.NewTransactionHandler(postingUC, transactionUC)
	categoryHandler := handler.NewCategoryHandler(categoryUC)
	reportHandler := handler.NewReportHandler(reportUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        authHandler,
		BusinessHandler:    businessHandler,
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		CategoryHandler:    categoryHandler,
		ReportHandler:      reportHandler,
		HealthHandler:      healthHandler,
		JWTManager:         jwtManager,
		Logger:             log.Logger,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		IdempotencyStore:   idempotencyStore,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
