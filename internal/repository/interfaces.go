package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khairulanwar/birthday-engine/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Customer() CustomerRepository
	Connection() ConnectionRepository
	Settings() SettingsRepository
	BirthdayMessage() BirthdayMessageRepository
}

// CustomerRepository defines customer read operations used by the send paths.
type CustomerRepository interface {
	// GetBirthdayCandidates returns every customer across all tenants with
	// a phone and a birth date on record. Month/day matching against the
	// reference date happens in the caller.
	GetBirthdayCandidates(ctx context.Context) ([]*models.Customer, error)

	GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*models.Customer, error)
	GetByIDs(ctx context.Context, tenantID uuid.UUID, customerIDs []uuid.UUID) ([]*models.Customer, error)
}

// ConnectionRepository defines gateway connection operations.
type ConnectionRepository interface {
	// GetActive returns the tenant's most recently created connection in
	// state connected, or ErrNotFound.
	GetActive(ctx context.Context, tenantID uuid.UUID) (*models.GatewayConnection, error)

	IncrementMessagesSent(ctx context.Context, connectionID uuid.UUID) error
}

// SettingsRepository defines message settings operations.
type SettingsRepository interface {
	// Get returns the tenant's settings, or the defaults when none are
	// persisted.
	Get(ctx context.Context, tenantID uuid.UUID) (*models.MessageSettings, error)
}

// BirthdayMessageRepository defines birthday message record operations.
type BirthdayMessageRepository interface {
	// Find returns the record for the dedupe key, or ErrNotFound.
	Find(ctx context.Context, tenantID, customerID uuid.UUID, birthdayDate time.Time, year int) (*models.BirthdayMessage, error)

	// Create inserts one record, returning ErrDuplicateMessage when the
	// unique constraint rejects it.
	Create(ctx context.Context, msg *models.BirthdayMessage) error

	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]*models.BirthdayMessage, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
