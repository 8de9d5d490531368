package handler

import (
	"provably-fair-casino/internal/adapter/http/middleware"
	redisStore "provably-fair-casino/internal/adapter/storage/redis"
	"provably-fair-casino/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	GameSvc        ports.GameService
	WalletSvc      ports.WalletService
	Ledger         ports.Ledger
	ProgressionSvc ports.ProgressionTracker
	PlayerRepo     ports.PlayerRepository
	Leaderboard    ports.LeaderboardStore
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check verifies PostgreSQL and Redis.
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	gameHandler := NewGameHandler(deps.GameSvc)
	progressionHandler := NewProgressionHandler(deps.ProgressionSvc, deps.PlayerRepo, deps.Ledger, deps.Leaderboard)

	// Fairness verification and the leaderboard are public.
	v1.POST("/games/verify", rl("public"), gameHandler.Verify)
	v1.GET("/leaderboard", rl("public"), progressionHandler.Leaderboard)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	games := v1.Group("/games", jwtAuth)
	{
		games.POST("/slots", rl("games"), gameHandler.PlaySlots)
		games.POST("/roulette", rl("games"), gameHandler.PlayRoulette)
		games.POST("/crash", rl("games"), gameHandler.PlayCrash)
		games.POST("/dice", rl("games"), gameHandler.PlayDice)
		games.POST("/plinko", rl("games"), gameHandler.PlayPlinko)
		games.POST("/limbo", rl("games"), gameHandler.PlayLimbo)
		games.POST("/mines", rl("games"), gameHandler.PlayMines)
		games.POST("/blackjack/deal", rl("games"), gameHandler.BlackjackDeal)
		games.POST("/blackjack/hit", rl("games"), gameHandler.BlackjackHit)
		games.POST("/blackjack/stand", rl("games"), gameHandler.BlackjackStand)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.Ledger)
	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("account"), walletHandler.GetBalance)
		wallet.POST("/deposit", rl("wallet"), walletHandler.Deposit)
		wallet.POST("/withdraw", rl("wallet"), walletHandler.Withdraw)
		wallet.GET("/transactions", rl("account"), walletHandler.ListTransactions)
		wallet.GET("/rounds", rl("account"), walletHandler.ListRounds)
	}

	players := v1.Group("/players/me", jwtAuth)
	{
		players.GET("", rl("account"), progressionHandler.GetProfile)
		players.GET("/achievements", rl("account"), progressionHandler.ListAchievements)
		players.GET("/streak", rl("account"), progressionHandler.GetStreak)
		players.POST("/daily-bonus", rl("account"), progressionHandler.ClaimDailyBonus)
	}

	return r
}
