package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus is the lifecycle state of a WhatsApp gateway connection.
type ConnectionStatus string

const (
	ConnectionStatusConnected    ConnectionStatus = "connected"
	ConnectionStatusDisconnected ConnectionStatus = "disconnected"
	ConnectionStatusConnecting   ConnectionStatus = "connecting"
	ConnectionStatusFailed       ConnectionStatus = "failed"
	ConnectionStatusError        ConnectionStatus = "error"
)

// GatewayConnection is a tenant's registered WhatsApp gateway device.
// The send path only ever uses the most recently created connection in
// state connected; older rows are kept for history.
type GatewayConnection struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	TenantID       uuid.UUID        `db:"tenant_id" json:"tenant_id"`
	SenderID       string           `db:"sender_id" json:"sender_id"`
	APIKey         string           `db:"api_key" json:"-"`
	Status         ConnectionStatus `db:"status" json:"status"`
	MessagesSent   int64            `db:"messages_sent" json:"messages_sent"`
	ConnectedAt    sql.NullTime     `db:"connected_at" json:"connected_at,omitempty"`
	DisconnectedAt sql.NullTime     `db:"disconnected_at" json:"disconnected_at,omitempty"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updated_at"`
}
