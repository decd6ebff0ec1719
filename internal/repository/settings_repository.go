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

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the tenant's message settings, falling back to the defaults
// when the tenant has never saved any.
func (r *settingsRepository) Get(ctx context.Context, tenantID uuid.UUID) (*models.MessageSettings, error) {
	query := `
		SELECT tenant_id, auto_send_enabled, send_time, timezone, template, updated_at
		FROM message_settings
		WHERE tenant_id = $1
	`

	var settings models.MessageSettings
	err := r.db.GetContext(ctx, &settings, query, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultMessageSettings(tenantID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message settings: %w", err)
	}

	return &settings, nil
}
