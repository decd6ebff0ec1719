package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khairulanwar/birthday-engine/internal/models"
)

// SendInput carries everything the single-customer sender needs; the batch
// runner resolves connection and settings once per tenant and reuses them.
type SendInput struct {
	Customer   *models.Customer
	Connection *models.GatewayConnection
	Settings   *models.MessageSettings
	Ref        time.Time
}

// SenderService runs the single-customer send state machine. Every outcome
// is folded into the result; nothing here aborts a batch.
type SenderService interface {
	SendBirthdayMessage(ctx context.Context, in SendInput) *models.CustomerSendResult
}

// AutomationService drives the tenant fan-out and the manual send paths.
type AutomationService interface {
	// RunDaily processes every customer whose birthday matches today,
	// regardless of each tenant's configured send time.
	RunDaily(ctx context.Context) (*models.AutomationReport, error)

	// RunHourlyCheck is the recurring variant: a tenant is only processed
	// when auto-send is enabled and the current time in the tenant's
	// timezone matches its configured send time within one minute.
	RunHourlyCheck(ctx context.Context) (*models.AutomationReport, error)

	SendToCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*models.CustomerSendResult, error)
	SendToCustomers(ctx context.Context, tenantID uuid.UUID, customerIDs []uuid.UUID) (*models.TenantReport, error)

	ListMessages(ctx context.Context, tenantID uuid.UUID, page, limit int) (*models.MessageListResponse, error)
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}
