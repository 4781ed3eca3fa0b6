package database

import (
	"context"
	"database/sql"
	"time"
)

// Health states reported by the readiness endpoint.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// degradedPingThreshold marks the database degraded when a round trip is slow
// but still succeeding.
const degradedPingThreshold = 500 * time.Millisecond

// HealthStatus represents database health and connection pool statistics
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health checks database connectivity and returns connection pool statistics
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       StatusUnhealthy,
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	elapsed := time.Since(start)
	status := StatusHealthy
	if elapsed > degradedPingThreshold {
		status = StatusDegraded
	}

	stats := db.Stats()

	return &HealthStatus{
		Status:          status,
		ResponseTime:    elapsed.Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
