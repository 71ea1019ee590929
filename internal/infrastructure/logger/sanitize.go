package logger

import (
	"fmt"
	"strings"
)

// SanitizeForLog escapes control characters so user-controlled strings such as
// uploaded filenames or tool output cannot forge log lines. Printable Unicode
// is kept as is.
func SanitizeForLog(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\n':
			result.WriteString("\\n")
		case '\r':
			result.WriteString("\\r")
		case '\t':
			result.WriteString("\\t")
		default:
			if r < 32 || r == 127 {
				result.WriteString(fmt.Sprintf("\\x%02x", r))
			} else {
				result.WriteRune(r)
			}
		}
	}
	return result.String()
}

// Truncate sanitizes s and cuts it to at most max runes, marking the cut.
func Truncate(s string, max int) string {
	s = SanitizeForLog(strings.TrimSpace(s))
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "...(truncated)"
}
