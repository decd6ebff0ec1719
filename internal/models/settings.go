package models

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a tenant has never saved message settings.
const (
	DefaultSendTime = "08:00"
	DefaultTimezone = "Asia/Kuala_Lumpur"

	DefaultBirthdayTemplate = "Selamat Hari Jadi, {Name}! \U0001F382 Semoga panjang umur, sihat sentiasa dan dimurahkan rezeki. Daripada {SenderName}."
)

// MessageSettings holds a tenant's birthday automation preferences.
type MessageSettings struct {
	TenantID        uuid.UUID `db:"tenant_id" json:"tenant_id"`
	AutoSendEnabled bool      `db:"auto_send_enabled" json:"auto_send_enabled"`
	SendTime        string    `db:"send_time" json:"send_time"`
	Timezone        string    `db:"timezone" json:"timezone"`
	Template        string    `db:"template" json:"template"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultMessageSettings returns the settings used for a tenant that has
// never persisted any: automatic sending on, 08:00 Malaysia time, Malay
// template.
func DefaultMessageSettings(tenantID uuid.UUID) *MessageSettings {
	return &MessageSettings{
		TenantID:        tenantID,
		AutoSendEnabled: true,
		SendTime:        DefaultSendTime,
		Timezone:        DefaultTimezone,
		Template:        DefaultBirthdayTemplate,
	}
}
