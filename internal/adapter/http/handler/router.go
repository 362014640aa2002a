package handler

import (
	"velo-relay/config"
	"velo-relay/internal/adapter/http/middleware"
	redisStore "velo-relay/internal/adapter/storage/redis"
	"velo-relay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	NoteSvc         ports.NoteService
	RelaySvc        ports.RelayService
	StealthSvc      ports.StealthService
	ConfidentialSvc ports.ConfidentialService
	RouterSvc       ports.RouterService
	TransferRepo    ports.TransferRepository
	ChainClient     ports.ChainClient
	TxFactory       ports.TransactionFactory
	RelayerCfg      config.RelayerConfig
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
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

	noteHandler := NewNoteHandler(deps.NoteSvc)
	v1.POST("/notes", rl("notes"), noteHandler.GenerateNote)

	relayHandler := NewRelayHandler(deps.RelaySvc, deps.StealthSvc)
	relay := v1.Group("/relay")
	{
		relay.POST("", rl("relay"), relayHandler.Relay)
		relay.POST("/withdraw", rl("relay"), relayHandler.Relay)
		relay.POST("/stealth", rl("relay"), relayHandler.RelayToStealth)
	}

	stealthHandler := NewStealthHandler(deps.StealthSvc)
	v1.POST("/stealth/meta-address", rl("stealth"), stealthHandler.GenerateMetaAddress)

	routerHandler := NewRouterHandler(deps.RouterSvc)
	send := v1.Group("/send")
	{
		send.POST("", rl("private_send"), routerHandler.Send)
		send.GET("/:id", rl("private_send"), routerHandler.GetJob)
	}

	transferHandler := NewTransferHandler(deps.ConfidentialSvc, deps.TransferRepo)
	transfers := v1.Group("/transfers")
	{
		transfers.POST("", rl("transfers"), transferHandler.CreateTransfer)
		transfers.GET("", rl("transfers"), transferHandler.ListTransfers)
		transfers.POST("/:id/claim", rl("claim"), transferHandler.ClaimTransfer)
	}

	infoHandler := NewInfoHandler(deps.RelaySvc, deps.ChainClient, deps.TxFactory, deps.RelayerCfg)
	v1.GET("/info", rl("info"), infoHandler.Info)
	v1.GET("/pools", rl("info"), infoHandler.Pools)
	v1.POST("/estimate-fee", rl("info"), infoHandler.EstimateFee)

	return r
}
