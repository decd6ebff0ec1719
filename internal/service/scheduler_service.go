package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/khairulanwar/birthday-engine/internal/config"
	"github.com/khairulanwar/birthday-engine/internal/scheduler"
)

type schedulerService struct {
	scheduler  *scheduler.Scheduler
	automation AutomationService
	logger     *zap.Logger
}

func NewSchedulerService(
	cfg *config.Config,
	automation AutomationService,
	logger *zap.Logger,
) SchedulerService {
	svc := &schedulerService{
		automation: automation,
		logger:     logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, cfg.Scheduler.CronSpec, svc.executeCheckTask)
	return svc
}

func (s *schedulerService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) executeCheckTask(ctx context.Context) error {
	report, err := s.automation.RunHourlyCheck(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("Hourly birthday check completed",
		zap.String("reference_date", report.ReferenceDate),
		zap.Int("tenants_processed", report.TenantsProcessed),
		zap.Int("total_sent", report.TotalSent),
		zap.Int("total_failed", report.TotalFailed))
	return nil
}
