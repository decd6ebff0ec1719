package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/khairulanwar/birthday-engine/internal/models"
)

type connectionRepository struct {
	db *sqlx.DB
}

func NewConnectionRepository(db *sqlx.DB) ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// GetActive returns the newest connected gateway connection for the tenant.
func (r *connectionRepository) GetActive(ctx context.Context, tenantID uuid.UUID) (*models.GatewayConnection, error) {
	query := `
		SELECT id, tenant_id, sender_id, api_key, status, messages_sent,
		       connected_at, disconnected_at, created_at, updated_at
		FROM gateway_connections
		WHERE tenant_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var conn models.GatewayConnection
	err := r.db.GetContext(ctx, &conn, query, tenantID, models.ConnectionStatusConnected)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active connection: %w", err)
	}

	return &conn, nil
}

// IncrementMessagesSent bumps the cumulative counter by one.
func (r *connectionRepository) IncrementMessagesSent(ctx context.Context, connectionID uuid.UUID) error {
	query := `
		UPDATE gateway_connections
		SET messages_sent = messages_sent + 1,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, connectionID)
	if err != nil {
		return fmt.Errorf("failed to increment messages sent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check increment result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
