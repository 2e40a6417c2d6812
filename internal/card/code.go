package card

import (
	"strings"

	"gift-kiosk/internal/model"
)

// MaxCodeLength is the longest canonical code the service accepts.
const MaxCodeLength = 25

// NormalizeCode canonicalises a raw gift-card code: trims surrounding
// whitespace, uppercases, then validates the result against
// [A-Z0-9]{1,25}. Every other component keys on the canonical form.
func NormalizeCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	if code == "" || len(code) > MaxCodeLength {
		return "", model.ErrInvalidFormat
	}

	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return "", model.ErrInvalidFormat
		}
	}

	return code, nil
}
