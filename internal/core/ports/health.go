package ports

import "context"

// HealthChecker reports whether one dependency of the connector is usable.
// The health route answers 503 as soon as any checker fails.
type HealthChecker interface {
	// Name identifies the dependency in the health response ("redis", "vnpay_config").
	Name() string
	// Ping returns nil when the dependency is usable.
	Ping(ctx context.Context) error
}
