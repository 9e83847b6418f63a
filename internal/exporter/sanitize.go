package exporter

import (
	"strings"
	"unicode"
)

// SanitizeFilename makes a menu label safe to use as a file name: letters,
// digits, spaces, hyphens and underscores pass through, every other rune
// becomes an underscore. The result is truncated to maxLen runes.
func SanitizeFilename(name string, maxLen int) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := []rune(b.String())
	if maxLen > 0 && len(sanitized) > maxLen {
		sanitized = sanitized[:maxLen]
	}
	return string(sanitized)
}
