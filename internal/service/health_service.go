package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/khairulanwar/birthday-engine/internal/gateway"
	"github.com/khairulanwar/birthday-engine/internal/models"
	"github.com/khairulanwar/birthday-engine/internal/repository"
)

type healthService struct {
	repo             repository.Repository
	redisClient      *redis.Client
	schedulerService SchedulerService
	gatewayClient    gateway.Client
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	schedulerService SchedulerService,
	gatewayClient gateway.Client,
) HealthService {
	return &healthService{
		repo:             repo,
		redisClient:      redisClient,
		schedulerService: schedulerService,
		gatewayClient:    gatewayClient,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: HealthStatusHealthy,
	}

	if s.schedulerService.IsRunning() {
		status.SchedulerStatus = SchedulerStatusRunning
	} else {
		status.SchedulerStatus = SchedulerStatusStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.gatewayClient.BreakerState()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	if status.DatabaseStatus != models.ComponentConnected || status.RedisStatus != models.ComponentConnected {
		status.Status = HealthStatusUnhealthy
	}

	// An open breaker means the gateway is refusing traffic; the service
	// itself still works, so report degraded rather than unhealthy.
	if state == gateway.BreakerOpen {
		status.Status = HealthStatusDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() models.ComponentStatus {
	if err := s.repo.Ping(); err != nil {
		return models.ComponentDisconnected
	}
	return models.ComponentConnected
}

func (s *healthService) checkRedisHealth() models.ComponentStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return models.ComponentDisconnected
	}

	return models.ComponentConnected
}
