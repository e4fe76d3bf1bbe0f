package handler

import (
	"vnpay-connector/config"
	"vnpay-connector/internal/adapter/http/middleware"
	redisStore "vnpay-connector/internal/adapter/storage/redis"
	"vnpay-connector/internal/core/ports"
	"vnpay-connector/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	URLBuilder       ports.PaymentURLBuilder
	Verifier         ports.ResponseVerifier
	IPNSvc           ports.IPNService
	MerchantAPI      ports.MerchantAPI
	TokenSvc         ports.TokenService         // nil = merchant API answers CFG_001
	IdempotencyCache ports.IdempotencyCache     // nil = Idempotency-Key ignored
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers   []ports.HealthChecker
	VNPay            config.VNPayConfig
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.AuditLog(deps.Logger))

	health := HealthCheck(deps.VNPay, deps.HealthCheckers...)
	r.GET("/", health)
	r.GET("/health", health)

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

	h := NewVNPayHandler(
		deps.URLBuilder,
		deps.Verifier,
		deps.IPNSvc,
		deps.MerchantAPI,
		deps.IdempotencyCache,
		deps.VNPay,
		deps.Logger,
	)

	// Gateway callbacks
	r.GET("/vnpay_return", rl(middleware.GroupCallback), h.Return)
	r.GET("/vnpay_ipn", rl(middleware.GroupCallback), h.IPN)

	api := r.Group("/api/vnpay")
	{
		api.POST("/create_payment", rl(middleware.GroupPayment), h.CreatePayment)
		api.POST("/query",
			rl(middleware.GroupMerchantAPI),
			middleware.JWTAuth(deps.TokenSvc, service.ScopeQuery, deps.Logger),
			h.Query,
		)
		api.POST("/refund",
			rl(middleware.GroupMerchantAPI),
			middleware.JWTAuth(deps.TokenSvc, service.ScopeRefund, deps.Logger),
			h.Refund,
		)
	}

	return r
}
