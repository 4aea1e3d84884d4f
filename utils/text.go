package utils

import (
	"strings"
	"unicode/utf8"
)

// JoinTrimmed trims every part, joins them with a single space and trims
// the result. Blank parts still contribute their separator, so a blank
// middle part leaves a double space.
func JoinTrimmed(parts ...string) string {
	trimmed := make([]string, len(parts))
	for i, p := range parts {
		trimmed[i] = strings.TrimSpace(p)
	}
	return strings.TrimSpace(strings.Join(trimmed, " "))
}

// Truncate cuts s to at most n characters (runes, not bytes).
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
