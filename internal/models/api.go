package models

import (
	"time"

	"github.com/google/uuid"
)

// Request and response DTOs for the HTTP API.

type SendBirthdayRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

type SendBirthdayBulkRequest struct {
	CustomerIDs []uuid.UUID `json:"customer_ids"`
}

type MessageListResponse struct {
	Messages   []BirthdayMessage `json:"messages"`
	Pagination Pagination        `json:"pagination"`
}

type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

type SchedulerStatus string

const (
	SchedulerStatusStarted SchedulerStatus = "started"
	SchedulerStatusStopped SchedulerStatus = "stopped"
)

type SchedulerResponse struct {
	Status  SchedulerStatus `json:"status"`
	Message string          `json:"message"`
}

type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ComponentStatus string

const (
	ComponentConnected    ComponentStatus = "connected"
	ComponentDisconnected ComponentStatus = "disconnected"
)

type HealthResponse struct {
	Status               string          `json:"status"`
	SchedulerStatus      string          `json:"scheduler_status,omitempty"`
	DatabaseStatus       ComponentStatus `json:"database_status,omitempty"`
	RedisStatus          ComponentStatus `json:"redis_status,omitempty"`
	CircuitBreakerStatus string          `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  string          `json:"circuit_breaker_state,omitempty"`
	Timestamp            time.Time       `json:"timestamp"`
}
