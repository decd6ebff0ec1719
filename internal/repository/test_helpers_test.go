package repository_test

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/khairulanwar/birthday-engine/internal/models"
)

func insertTestCustomer(db *sqlx.DB, tenantID uuid.UUID, name string, phone, birthDate interface{}) (uuid.UUID, error) {
	var id uuid.UUID
	query := `
		INSERT INTO customers (tenant_id, name, phone, birth_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := db.QueryRow(query, tenantID, name, phone, birthDate).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert test customer: %w", err)
	}

	return id, nil
}

func insertTestConnection(db *sqlx.DB, tenantID uuid.UUID, status models.ConnectionStatus, createdAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	query := `
		INSERT INTO gateway_connections (tenant_id, sender_id, api_key, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := db.QueryRow(query, tenantID, "60115551234", "test-api-key", status, createdAt).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert test connection: %w", err)
	}

	return id, nil
}

func insertTestSettings(db *sqlx.DB, settings *models.MessageSettings) error {
	query := `
		INSERT INTO message_settings (tenant_id, auto_send_enabled, send_time, timezone, template)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := db.Exec(query, settings.TenantID, settings.AutoSendEnabled, settings.SendTime, settings.Timezone, settings.Template); err != nil {
		return fmt.Errorf("failed to insert test settings: %w", err)
	}

	return nil
}

func testMessage(tenantID, customerID, connectionID uuid.UUID, status models.MessageStatus, birthdayDate time.Time, year int) *models.BirthdayMessage {
	return &models.BirthdayMessage{
		TenantID:     tenantID,
		CustomerID:   customerID,
		ConnectionID: connectionID,
		PhoneNumber:  "60123456789",
		Content:      "Selamat Hari Jadi!",
		Status:       status,
		BirthdayDate: birthdayDate,
		Year:         year,
	}
}
