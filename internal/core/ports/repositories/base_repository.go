package repositories

import "context"

// HealthChecker is implemented by store adapters able to report connectivity.
type HealthChecker interface {
	// Ping verifies the underlying store is reachable.
	Ping(ctx context.Context) error
}
