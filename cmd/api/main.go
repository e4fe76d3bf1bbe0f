package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vnpay-connector/config"
	httpHandler "vnpay-connector/internal/adapter/http/handler"
	redisStorage "vnpay-connector/internal/adapter/storage/redis"
	"vnpay-connector/internal/core/ports"
	"vnpay-connector/internal/service"
	"vnpay-connector/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("tmn_code", cfg.VNPay.TmnCode).
		Str("hash_secret", logger.Redact(cfg.VNPay.HashSecret)).
		Str("api_url", cfg.VNPay.APIURL).
		Msg("Starting VNPAY connector")

	// Payment creation and merchant API calls fail with CFG_001 and every
	// callback is rejected until the credentials are set. The server still
	// starts so /health can report it.
	if err := cfg.VNPay.Validate(); err != nil {
		log.Warn().Err(err).Msg("VNPAY credentials incomplete")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("auth.jwt_secret not set, query and refund routes will refuse every request")
	}

	ctx := context.Background()

	deps := httpHandler.RouterDeps{
		TokenSvc:       service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry, cfg.Auth.JWTIssuer),
		HealthCheckers: []ports.HealthChecker{service.NewConfigHealthCheck(cfg.VNPay)},
		VNPay:          cfg.VNPay,
		Logger:         log,
	}

	// Redis backs IPN replay protection, refund idempotency and rate limiting.
	// Without it the connector runs stateless.
	var replayGuard ports.ReplayGuard
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, running without replay protection, idempotency or rate limiting")
		} else {
			defer rdb.Close()
			log.Info().Msg("Redis connected")

			replayGuard = redisStorage.NewReplayGuard(rdb)
			deps.IdempotencyCache = redisStorage.NewIdempotencyCache(rdb, cfg.VNPay.TmnCode)
			deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
			deps.HealthCheckers = append(deps.HealthCheckers, redisStorage.NewHealthCheck(rdb))
		}
	}

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	verifier := service.NewResponseVerifierService(cfg.VNPay.HashSecret, sigSvc, logger.Component(log, "verifier"))

	deps.URLBuilder = service.NewPaymentURLService(cfg.VNPay, sigSvc, logger.Component(log, "payment_url"))
	deps.Verifier = verifier
	deps.IPNSvc = service.NewIPNService(verifier, replayGuard, cfg.VNPay.TmnCode, cfg.VNPay.IPNReplayTTL, logger.Component(log, "ipn"))
	deps.MerchantAPI = service.NewMerchantAPIService(cfg.VNPay, sigSvc, nil, logger.Component(log, "merchant_api"))

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
