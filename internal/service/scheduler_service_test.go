package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/khairulanwar/birthday-engine/internal/config"
	"github.com/khairulanwar/birthday-engine/internal/models"
	"github.com/khairulanwar/birthday-engine/internal/scheduler"
	"github.com/khairulanwar/birthday-engine/internal/service"
	servicemocks "github.com/khairulanwar/birthday-engine/internal/service/mocks"
)

func schedulerConfig(spec string) *config.Config {
	return &config.Config{
		Scheduler: config.SchedulerConfig{
			CronSpec: spec,
		},
	}
}

func TestSchedulerService_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAutomation := servicemocks.NewMockAutomationService(ctrl)
	mockAutomation.EXPECT().RunHourlyCheck(gomock.Any()).Return(&models.AutomationReport{}, nil).AnyTimes()

	svc := service.NewSchedulerService(schedulerConfig("0 * * * *"), mockAutomation, zap.NewNop())

	assert.False(t, svc.IsRunning())

	require.NoError(t, svc.Start())
	assert.True(t, svc.IsRunning())

	err := svc.Start()
	assert.ErrorIs(t, err, scheduler.ErrSchedulerAlreadyRunning)

	require.NoError(t, svc.Stop())
	assert.False(t, svc.IsRunning())

	err = svc.Stop()
	assert.ErrorIs(t, err, scheduler.ErrSchedulerNotRunning)
}

func TestSchedulerService_InvalidCronSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAutomation := servicemocks.NewMockAutomationService(ctrl)

	svc := service.NewSchedulerService(schedulerConfig("not a cron spec"), mockAutomation, zap.NewNop())

	err := svc.Start()
	assert.ErrorIs(t, err, scheduler.ErrInvalidCronSpec)
	assert.False(t, svc.IsRunning())
}

func TestSchedulerService_RunsHourlyCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var runs int64
	mockAutomation := servicemocks.NewMockAutomationService(ctrl)
	mockAutomation.EXPECT().
		RunHourlyCheck(gomock.Any()).
		DoAndReturn(func(_ context.Context) (*models.AutomationReport, error) {
			atomic.AddInt64(&runs, 1)
			return &models.AutomationReport{}, nil
		}).
		AnyTimes()

	svc := service.NewSchedulerService(schedulerConfig("@every 50ms"), mockAutomation, zap.NewNop())

	require.NoError(t, svc.Start())
	defer func() {
		if svc.IsRunning() {
			require.NoError(t, svc.Stop())
		}
	}()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&runs) >= 2
	}, 2*time.Second, 10*time.Millisecond)
}
