package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"provably-fair-casino/config"
	httpHandler "provably-fair-casino/internal/adapter/http/handler"
	pgStorage "provably-fair-casino/internal/adapter/storage/postgres"
	redisStorage "provably-fair-casino/internal/adapter/storage/redis"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/internal/service"
	"provably-fair-casino/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Provably Fair Casino")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	playerRepo := pgStorage.NewPlayerRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	resultRepo := pgStorage.NewGameResultRepo(pool)
	achievementRepo := pgStorage.NewAchievementRepo(pool)
	streakRepo := pgStorage.NewStreakRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	leaderboard := redisStorage.NewLeaderboardStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	fairness := service.NewFairnessService()
	codec, err := service.NewRoundStateCodecService(cfg.Round.SeedSealingKey, cfg.Round.StateSigningKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize round state codec")
	}

	// Initialize business services
	ledger := service.NewLedgerService(balanceRepo, txRepo, resultRepo, transactor, log)
	risk := service.NewRiskService(ledger, cfg.Games.DailyLossCap, log)
	progression := service.NewProgressionService(
		playerRepo,
		resultRepo,
		achievementRepo,
		streakRepo,
		ledger,
		transactor,
		cfg.Progression.DailyBonusBase,
		log,
	)
	gameSvc := service.NewGameService(fairness, ledger, risk, codec, progression, leaderboard, cfg.Games, log)
	walletSvc := service.NewWalletService(ledger)
	authSvc := service.NewAuthService(playerRepo, balanceRepo, hashSvc, tokenSvc)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		GameSvc:        gameSvc,
		WalletSvc:      walletSvc,
		Ledger:         ledger,
		ProgressionSvc: progression,
		PlayerRepo:     playerRepo,
		Leaderboard:    leaderboard,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
