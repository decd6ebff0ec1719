package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler drives the recurring automation task off a cron expression.
type Scheduler struct {
	logger    *zap.Logger
	spec      string
	taskFunc  func(context.Context) error
	cron      *cron.Cron
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler instance. The spec accepts standard
// five-field cron expressions and @every descriptors.
func NewScheduler(logger *zap.Logger, spec string, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		logger:   logger,
		spec:     spec,
		taskFunc: taskFunc,
	}
}

// Start begins the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() { s.executeTask(ctx) }); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCronSpec, s.spec)
	}

	s.cron = c
	s.isRunning = true
	c.Start()

	s.logger.Info("Scheduler started", zap.String("spec", s.spec))
	return nil
}

// Stop halts the scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	c := s.cron
	s.mu.Unlock()

	<-c.Stop().Done()

	s.mu.Lock()
	s.isRunning = false
	s.cron = nil
	s.mu.Unlock()

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// executeTask runs the task function with error handling
func (s *Scheduler) executeTask(ctx context.Context) {
	s.logger.Info("Executing scheduled task")
	start := time.Now()

	if err := s.taskFunc(ctx); err != nil {
		s.logger.Error("Task execution failed", zap.Error(err))
		return
	}

	s.logger.Info("Task execution completed successfully",
		zap.Duration("duration", time.Since(start)))
}
