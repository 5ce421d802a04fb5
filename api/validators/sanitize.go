package validators

import "strings"

// SanitizeString trims whitespace and truncates free-text filter input before
// it reaches a query. Catalog search terms arrive through here.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}
