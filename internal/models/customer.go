// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a CRM customer owned by a tenant. Field names are canonical:
// import aliases from upstream CRM feeds are resolved at import time, so
// the rest of the engine only ever sees these fields.
type Customer struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	TenantID   uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	Name       string         `db:"name" json:"name"`
	SenderName sql.NullString `db:"sender_name" json:"sender_name,omitempty"`
	SaveName   sql.NullString `db:"save_name" json:"save_name,omitempty"`
	Phone      sql.NullString `db:"phone" json:"phone,omitempty"`
	BirthDate  sql.NullTime   `db:"birth_date" json:"birth_date,omitempty"`
	Age        sql.NullInt64  `db:"age" json:"age,omitempty"`
	PGCode     sql.NullString `db:"pg_code" json:"pg_code,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// HasUsablePhone reports whether the customer has a phone number containing
// at least one digit. Format problems beyond that are the gateway's concern.
func (c *Customer) HasUsablePhone() bool {
	if !c.Phone.Valid {
		return false
	}
	return strings.ContainsAny(c.Phone.String, "0123456789")
}

// SenderDisplayName returns the name the message signs off with,
// falling back to the customer name when no sender name is set.
func (c *Customer) SenderDisplayName() string {
	if c.SenderName.Valid && c.SenderName.String != "" {
		return c.SenderName.String
	}
	return c.Name
}

// AgeString renders the precomputed age, empty when unknown.
func (c *Customer) AgeString() string {
	if !c.Age.Valid {
		return ""
	}
	return strconv.FormatInt(c.Age.Int64, 10)
}
