package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// MessageStatus is the outcome recorded for a birthday message attempt.
type MessageStatus string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusSent    MessageStatus = "sent"
	MessageStatusFailed  MessageStatus = "failed"
)

// BirthdayMessage is the append-only record of one birthday send attempt.
// The tuple (tenant_id, customer_id, birthday_date, year) is unique at the
// storage layer; it is the idempotency anchor that keeps a customer from
// receiving two birthday messages in the same calendar year.
//
// BirthdayDate carries the sending year, never the birth year.
type BirthdayMessage struct {
	ID           int64          `db:"id" json:"id"`
	TenantID     uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	CustomerID   uuid.UUID      `db:"customer_id" json:"customer_id"`
	ConnectionID uuid.UUID      `db:"connection_id" json:"connection_id"`
	PhoneNumber  string         `db:"phone_number" json:"phone_number"`
	Content      string         `db:"content" json:"content"`
	Status       MessageStatus  `db:"status" json:"status"`
	Error        sql.NullString `db:"error" json:"error,omitempty"`
	BirthdayDate time.Time      `db:"birthday_date" json:"birthday_date"`
	Year         int            `db:"year" json:"year"`
	SentAt       sql.NullTime   `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}
