package birthday

import (
	"strings"

	"github.com/khairulanwar/birthday-engine/internal/models"
)

// RenderTemplate substitutes the recognized placeholders with customer
// fields. Matching is case sensitive and global; unknown placeholders are
// left verbatim. {SenderName} falls back to the customer name when no
// sender name is set, every other missing field renders as empty string.
func RenderTemplate(template string, c *models.Customer) string {
	saveName := ""
	if c.SaveName.Valid {
		saveName = c.SaveName.String
	}
	pgCode := ""
	if c.PGCode.Valid {
		pgCode = c.PGCode.String
	}

	result := template
	result = strings.ReplaceAll(result, "{Name}", c.Name)
	result = strings.ReplaceAll(result, "{SenderName}", c.SenderDisplayName())
	result = strings.ReplaceAll(result, "{SaveName}", saveName)
	result = strings.ReplaceAll(result, "{Age}", c.AgeString())
	result = strings.ReplaceAll(result, "{PGCode}", pgCode)
	return result
}
