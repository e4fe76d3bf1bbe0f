package service

import (
	"context"

	"vnpay-connector/config"
)

// ConfigHealthCheck reports missing gateway credentials on the health route.
type ConfigHealthCheck struct {
	cfg config.VNPayConfig
}

// NewConfigHealthCheck creates a ConfigHealthCheck.
func NewConfigHealthCheck(cfg config.VNPayConfig) *ConfigHealthCheck {
	return &ConfigHealthCheck{cfg: cfg}
}

// Ping returns the configuration error, if any.
func (h *ConfigHealthCheck) Ping(_ context.Context) error {
	return h.cfg.Validate()
}

// Name returns the dependency name.
func (h *ConfigHealthCheck) Name() string {
	return "vnpay_config"
}
