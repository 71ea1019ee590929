package validation

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxFilenameLength = 255

// SanitizeFilename makes a client supplied name safe to keep on the job
// record, return in JSON and write to logs. Path separators, quotes, colons
// and control characters become '_'; other Unicode is kept. Names longer than
// 255 bytes are cut on a rune boundary with the extension kept. A name with
// nothing usable left becomes "file".
func SanitizeFilename(name string) string {
	cleaned := strings.TrimSpace(strings.Map(replaceUnsafe, name))
	if strings.Trim(cleaned, "_") == "" {
		return "file"
	}
	if len(cleaned) <= maxFilenameLength {
		return cleaned
	}

	ext := filepath.Ext(cleaned)
	if ext == "" || len(ext) >= maxFilenameLength {
		return cutRunes(cleaned, maxFilenameLength)
	}
	return cutRunes(strings.TrimSuffix(cleaned, ext), maxFilenameLength-len(ext)) + ext
}

func replaceUnsafe(r rune) rune {
	switch {
	case r < 0x20, r == 0x7F:
		return '_'
	case r == '"', r == '\\', r == '/', r == ':':
		return '_'
	}
	return r
}

// cutRunes returns the longest prefix of s that fits in limit bytes without
// splitting a rune.
func cutRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
