// Package service provides business logic implementation for the application.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/khairulanwar/birthday-engine/internal/config"
	"github.com/khairulanwar/birthday-engine/internal/gateway"
	"github.com/khairulanwar/birthday-engine/internal/repository"
)

type Service struct {
	Sender     SenderService
	Automation AutomationService
	Scheduler  SchedulerService
	Health     HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	gatewayClient gateway.Client,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	senderService := NewSenderService(cfg, repo, gatewayClient, redisClient, logger)
	automationService := NewAutomationService(cfg, repo, senderService, NewSleepWait(), logger)
	schedulerService := NewSchedulerService(cfg, automationService, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, gatewayClient)

	return &Service{
		Sender:     senderService,
		Automation: automationService,
		Scheduler:  schedulerService,
		Health:     healthService,
	}
}
