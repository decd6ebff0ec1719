package service

import (
	"database/sql"

	"github.com/khairulanwar/birthday-engine/internal/gateway"
	"github.com/khairulanwar/birthday-engine/internal/models"
)

type HealthStatus struct {
	Status               string                 `json:"status"`
	SchedulerStatus      string                 `json:"scheduler_status"`
	DatabaseStatus       models.ComponentStatus `json:"database_status"`
	RedisStatus          models.ComponentStatus `json:"redis_status"`
	CircuitBreakerStatus string                 `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  gateway.BreakerState   `json:"circuit_breaker_state,omitempty"`
}

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"
)

const (
	SchedulerStatusRunning = "running"
	SchedulerStatusStopped = "stopped"
)

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
