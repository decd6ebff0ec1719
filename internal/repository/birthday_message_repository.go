package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/khairulanwar/birthday-engine/internal/models"
)

type birthdayMessageRepository struct {
	db *sqlx.DB
}

func NewBirthdayMessageRepository(db *sqlx.DB) BirthdayMessageRepository {
	return &birthdayMessageRepository{
		db: db,
	}
}

const birthdayMessageColumns = `id, tenant_id, customer_id, connection_id, phone_number, content, status, error, birthday_date, year, sent_at, created_at`

// Find looks up the record for (tenant, customer, birthday date, year).
func (r *birthdayMessageRepository) Find(ctx context.Context, tenantID, customerID uuid.UUID, birthdayDate time.Time, year int) (*models.BirthdayMessage, error) {
	query := `
		SELECT ` + birthdayMessageColumns + `
		FROM birthday_messages
		WHERE tenant_id = $1 AND customer_id = $2 AND birthday_date = $3 AND year = $4
	`

	var msg models.BirthdayMessage
	err := r.db.GetContext(ctx, &msg, query, tenantID, customerID, birthdayDate, year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find birthday message: %w", err)
	}

	return &msg, nil
}

// Create appends one record. The unique index on
// (tenant_id, customer_id, birthday_date, year) closes the check-then-insert
// race window; a violation surfaces as ErrDuplicateMessage.
func (r *birthdayMessageRepository) Create(ctx context.Context, msg *models.BirthdayMessage) error {
	query := `
		INSERT INTO birthday_messages
			(tenant_id, customer_id, connection_id, phone_number, content, status, error, birthday_date, year, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var sentAt sql.NullTime
	if msg.Status == models.MessageStatusSent {
		sentAt = sql.NullTime{Time: time.Now(), Valid: true}
	}
	msg.SentAt = sentAt
	msg.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		msg.TenantID, msg.CustomerID, msg.ConnectionID,
		msg.PhoneNumber, msg.Content, msg.Status, msg.Error,
		msg.BirthdayDate, msg.Year, msg.SentAt, msg.CreatedAt,
	).Scan(&msg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateMessage
		}
		return fmt.Errorf("failed to create birthday message: %w", err)
	}

	return nil
}

// ListByTenant retrieves a tenant's records, newest first.
func (r *birthdayMessageRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]*models.BirthdayMessage, error) {
	query := `
		SELECT ` + birthdayMessageColumns + `
		FROM birthday_messages
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var messages []*models.BirthdayMessage
	if err := r.db.SelectContext(ctx, &messages, query, tenantID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list birthday messages: %w", err)
	}

	return messages, nil
}

func (r *birthdayMessageRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM birthday_messages WHERE tenant_id = $1`

	if err := r.db.GetContext(ctx, &count, query, tenantID); err != nil {
		return 0, fmt.Errorf("failed to count birthday messages: %w", err)
	}

	return count, nil
}
