package statservice

import "strings"

// DefaultMonthKey is substituted for any missing or malformed month key.
// Malformed input is coerced, never rejected.
const DefaultMonthKey = "2025-09"

// ResolveMonthKey validates a YYYY-MM month key. A key is accepted when it is
// non-empty and contains the year-month separator; anything else falls back
// to DefaultMonthKey.
func ResolveMonthKey(monthKey string) string {
	if monthKey == "" || !strings.Contains(monthKey, "-") {
		return DefaultMonthKey
	}
	return monthKey
}
