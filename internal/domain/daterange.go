package domain

import (
	"strings"
	"time"
)

type DateRange string

const (
	RangeLast7  DateRange = "last7"
	RangeLast15 DateRange = "last15"
	RangeLast30 DateRange = "last30"
	RangeAll    DateRange = "all"
)

// ParseDateRange maps a user-supplied range name to a DateRange.
// Unknown names fall back to the 30-day window.
func ParseDateRange(s string) DateRange {
	switch DateRange(strings.ToLower(strings.TrimSpace(s))) {
	case RangeLast7:
		return RangeLast7
	case RangeLast15:
		return RangeLast15
	case RangeAll:
		return RangeAll
	default:
		return RangeLast30
	}
}

// Days returns the window length, or 0 for RangeAll.
func (r DateRange) Days() int {
	switch r {
	case RangeLast7:
		return 7
	case RangeLast15:
		return 15
	case RangeAll:
		return 0
	default:
		return 30
	}
}

// Cutoff returns the inclusive lower bound for the range, or nil when unbounded.
func (r DateRange) Cutoff(now time.Time) *time.Time {
	days := r.Days()
	if days == 0 {
		return nil
	}
	c := now.AddDate(0, 0, -days)
	return &c
}

// Contains reports whether the session falls inside the range. Sessions whose
// date does not parse are outside every bounded range.
func (r DateRange) Contains(s Session, now time.Time) bool {
	cutoff := r.Cutoff(now)
	if cutoff == nil {
		return true
	}
	t, ok := s.ParsedDate()
	if !ok {
		return false
	}
	return !t.Before(*cutoff)
}

// String returns a human label such as "Last 7 days".
func (r DateRange) String() string {
	switch r {
	case RangeLast7:
		return "Last 7 days"
	case RangeLast15:
		return "Last 15 days"
	case RangeAll:
		return "All time"
	default:
		return "Last 30 days"
	}
}
