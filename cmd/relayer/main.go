package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"velo-relay/config"
	"velo-relay/internal/adapter/chain"
	httpHandler "velo-relay/internal/adapter/http/handler"
	pgStorage "velo-relay/internal/adapter/storage/postgres"
	redisStorage "velo-relay/internal/adapter/storage/redis"
	"velo-relay/internal/core/ports"
	"velo-relay/internal/crypto"
	"velo-relay/internal/service"
	"velo-relay/internal/zkproof"
	"velo-relay/pkg/logger"
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
		Msg("Starting Velo Relay")

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

	// Relayer signing key and vault encryption key
	relayerKey, err := crypto.DecodeKeypair(cfg.Relayer.Keypair)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid relayer keypair")
	}
	var vaultKey [32]byte
	rawVaultKey, err := hex.DecodeString(cfg.Relayer.VaultKey)
	if err != nil || len(rawVaultKey) != 32 {
		log.Fatal().Msg("Vault key must be 64 hex characters (32 bytes)")
	}
	copy(vaultKey[:], rawVaultKey)

	// Initialize chain adapter
	rpcClient := chain.NewRPCClient(cfg.Chain.RPCURL, cfg.Chain.RequestTimeout, log)
	txFactory, err := chain.NewFactory(cfg.Chain.ProgramID, relayerKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize transaction factory")
	}
	log.Info().Str("relayer", txFactory.RelayerPublicKey()).Msg("Relayer key loaded")

	// Initialize repositories
	nullifierRepo := pgStorage.NewNullifierRepo(pool)
	transferRepo := pgStorage.NewTransferRepo(pool)
	keyVault := pgStorage.NewKeyVaultRepo(pool)
	hopJobRepo := pgStorage.NewHopJobRepo(pool)

	// Initialize Redis stores
	nullifierGuard := redisStorage.NewNullifierGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize crypto primitives
	hasher := crypto.NewMiMCHasher()
	aead := crypto.NewXChaChaAEAD()

	// Compile the withdraw circuit once at startup
	prover, err := zkproof.NewProver()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up withdraw prover")
	}
	log.Info().Msg("Withdraw circuit compiled")

	// Initialize business services
	noteSvc := service.NewNoteService(hasher, prover, log)
	relaySvc := service.NewRelayService(hasher, nullifierRepo, nullifierGuard, rpcClient, txFactory, cfg.Relayer, log)
	stealthSvc := service.NewStealthService(log)
	confidentialSvc := service.NewConfidentialService(aead, transferRepo, log)
	routerSvc := service.NewRouterService(relaySvc, rpcClient, txFactory, hopJobRepo, keyVault, aead, vaultKey, cfg.Router, cfg.Relayer.ConfirmTimeout, log)
	decoySvc := service.NewDecoyService(rpcClient, txFactory, cfg.Decoy, log)

	// Replay hop jobs a previous process left mid-flight
	if err := routerSvc.Recover(ctx); err != nil {
		log.Error().Err(err).Msg("Hop job recovery sweep failed")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		NoteSvc:         noteSvc,
		RelaySvc:        relaySvc,
		StealthSvc:      stealthSvc,
		ConfidentialSvc: confidentialSvc,
		RouterSvc:       routerSvc,
		TransferRepo:    transferRepo,
		ChainClient:     rpcClient,
		TxFactory:       txFactory,
		RelayerCfg:      cfg.Relayer,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
	})

	// Background decoy traffic
	decoyCtx, stopDecoy := context.WithCancel(ctx)
	defer stopDecoy()
	go decoySvc.Run(decoyCtx)

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
	stopDecoy()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
