package birthday_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khairulanwar/birthday-engine/internal/birthday"
	"github.com/khairulanwar/birthday-engine/internal/models"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		customer *models.Customer
		expected string
	}{
		{
			name:     "name and age",
			template: "Hi {Name}, age {Age}!",
			customer: &models.Customer{
				Name: "Ali",
				Age:  sql.NullInt64{Int64: 30, Valid: true},
			},
			expected: "Hi Ali, age 30!",
		},
		{
			name:     "sender name falls back to name",
			template: "From {SenderName} to {Name}",
			customer: &models.Customer{Name: "Ali"},
			expected: "From Ali to Ali",
		},
		{
			name:     "explicit sender name wins",
			template: "From {SenderName}",
			customer: &models.Customer{
				Name:       "Ali",
				SenderName: sql.NullString{String: "Kedai Bunga Siti", Valid: true},
			},
			expected: "From Kedai Bunga Siti",
		},
		{
			name:     "missing fields render empty",
			template: "{SaveName}|{Age}|{PGCode}",
			customer: &models.Customer{Name: "Ali"},
			expected: "||",
		},
		{
			name:     "all occurrences replaced",
			template: "{Name} {Name} {Name}",
			customer: &models.Customer{Name: "Ali"},
			expected: "Ali Ali Ali",
		},
		{
			name:     "unknown placeholders left verbatim",
			template: "Hi {Name}, code {Voucher}",
			customer: &models.Customer{Name: "Ali"},
			expected: "Hi Ali, code {Voucher}",
		},
		{
			name:     "placeholders are case sensitive",
			template: "Hi {name}",
			customer: &models.Customer{Name: "Ali"},
			expected: "Hi {name}",
		},
		{
			name:     "pg code and save name",
			template: "{SaveName} ({PGCode})",
			customer: &models.Customer{
				Name:     "Ali",
				SaveName: sql.NullString{String: "Ali Kedai", Valid: true},
				PGCode:   sql.NullString{String: "PG-042", Valid: true},
			},
			expected: "Ali Kedai (PG-042)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := birthday.RenderTemplate(tt.template, tt.customer)
			assert.Equal(t, tt.expected, got)

			// Rendering is deterministic.
			assert.Equal(t, got, birthday.RenderTemplate(tt.template, tt.customer))
		})
	}
}
