package domain

import (
	"strings"
	"time"
)

// TimestampLayout matches the millisecond UTC form used for generated dates,
// e.g. 2025-03-14T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var sessionDateLayouts = []string{
	time.RFC3339Nano,
	TimestampLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseSessionDate parses the ISO-8601 shapes a session date may take.
func ParseSessionDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range sessionDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
