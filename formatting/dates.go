package formatting

import (
	"strings"
	"time"
)

// ParseDate accepts the two date shapes the upstream emits: a bare
// YYYY-MM-DD date or a full RFC 3339 timestamp.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate renders a date in DD.MM.YYYY form, "-" when absent or
// unparseable.
func FormatDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return "-"
	}
	return t.Format("02.01.2006")
}
