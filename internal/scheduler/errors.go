// Package scheduler provides the recurring trigger for birthday automation.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")
	ErrSchedulerNotRunning     = errors.New("scheduler is not running")
	ErrInvalidCronSpec         = errors.New("invalid cron spec")
)
