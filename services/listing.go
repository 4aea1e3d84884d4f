package services

import (
	"math"
	"strconv"
	"strings"

	"BudgetPilot/utils"
)

const (
	MinLimit = 1
	MaxLimit = 200

	DefaultAttractionLimit = 80
	DefaultRestaurantLimit = 50
)

// ClampLimit bounds a requested page size to [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// matchKeyword reports whether address passes the keyword filter. An empty
// keyword matches everything. Matching is plain case-insensitive substring
// containment, so "강" matches any address with that syllable anywhere.
func matchKeyword(address, keyword string) bool {
	return keyword == "" || utils.ContainsFold(address, keyword)
}

// ParseCount reads a count column. Blank, non-numeric or negative values
// yield 0; fractional values are truncated.
func ParseCount(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
