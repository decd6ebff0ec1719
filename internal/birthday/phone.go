package birthday

import (
	"strings"
	"unicode"
)

// NormalizePhone canonicalizes a raw phone string to international format
// for the given country calling code: strip everything that is not a
// digit, keep numbers already carrying the country code, replace a single
// leading trunk zero with the country code, otherwise prepend it. No
// length validation happens here; the gateway rejects malformed numbers.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, countryCode):
		return digits
	case strings.HasPrefix(digits, "0"):
		return countryCode + digits[1:]
	default:
		return countryCode + digits
	}
}
