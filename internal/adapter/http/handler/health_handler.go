package handler

import (
	"net/http"

	"vnpay-connector/config"
	"vnpay-connector/internal/adapter/http/dto"
	"vnpay-connector/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports the gateway endpoints in use and the health of each dependency.
func HealthCheck(cfg config.VNPayConfig, checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps := make(map[string]dto.DependencyStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = dto.DependencyStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = dto.DependencyStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, dto.HealthResponse{
			Status:       status,
			ReturnURL:    cfg.ReturnURL,
			IPNURL:       cfg.IPNURL,
			TmnCode:      cfg.TmnCode,
			Dependencies: deps,
		})
	}
}
