package repository

import (
	"time"

	"github.com/alexanderramin/edpay/internal/domain"
)

// formatTime renders t for storage with millisecond precision in UTC.
func formatTime(t time.Time) string {
	return domain.FormatTimestamp(t)
}

// parseTime parses a stored timestamp, falling back to RFC3339 for rows
// written by hand.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(domain.TimestampLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// orNow returns t, or the current UTC time when t is zero.
func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
