package birthday_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khairulanwar/birthday-engine/internal/birthday"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "trunk zero replaced with country code",
			raw:      "0123456789",
			expected: "60123456789",
		},
		{
			name:     "already normalized left unchanged",
			raw:      "60123456789",
			expected: "60123456789",
		},
		{
			name:     "formatting stripped",
			raw:      "+60 12-345 6789",
			expected: "60123456789",
		},
		{
			name:     "bare subscriber number gets country code",
			raw:      "123456789",
			expected: "60123456789",
		},
		{
			name:     "empty input",
			raw:      "",
			expected: "",
		},
		{
			name:     "no digits at all",
			raw:      "n/a",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := birthday.NormalizePhone(tt.raw, "60")
			assert.Equal(t, tt.expected, got)

			// Normalization is idempotent.
			assert.Equal(t, got, birthday.NormalizePhone(got, "60"))
		})
	}
}
