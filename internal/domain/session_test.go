package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_BaseAmount(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		rate     int
		want     float64
	}{
		{"one hour", 60, 4000, 4000},
		{"half hour", 30, 4000, 2000},
		{"ninety minutes", 90, 3000, 4500},
		{"fractional", 45, 1000, 750},
		{"zero duration", 0, 4000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Duration: tt.duration, RatePerHour: tt.rate}
			assert.InDelta(t, tt.want, s.BaseAmount(), 1e-9)
		})
	}
}

func TestSession_Validate(t *testing.T) {
	valid := Session{MentorID: "mentor-1", Duration: 60, RatePerHour: 4000}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Session)
		message string
	}{
		{"missing mentor", func(s *Session) { s.MentorID = "" }, "mentor is required"},
		{"zero duration", func(s *Session) { s.Duration = 0 }, "duration must be positive"},
		{"negative duration", func(s *Session) { s.Duration = -15 }, "duration must be positive"},
		{"zero rate", func(s *Session) { s.RatePerHour = 0 }, "rate per hour must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			assert.True(t, errors.Is(err, ErrInvalidSession))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSessionIDs_PreservesOrder(t *testing.T) {
	ids := SessionIDs([]Session{{ID: "c"}, {ID: "a"}, {ID: "b"}})
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.Empty(t, SessionIDs(nil))
}

func TestParseSessionDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		want  time.Time
	}{
		{"2025-03-14T09:30:00.000Z", true, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"2025-03-14T09:30:00Z", true, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"2025-03-14T09:30", true, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"2025-03-14", true, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{" 2025-03-14 ", true, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"yesterday", false, time.Time{}},
		{"", false, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSessionDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2025, 3, 14, 15, 0, 0, 0, loc)
	assert.Equal(t, "2025-03-14T09:30:00.000Z", FormatTimestamp(ts))
}

func TestParseDateRange(t *testing.T) {
	assert.Equal(t, RangeLast7, ParseDateRange("last7"))
	assert.Equal(t, RangeLast15, ParseDateRange("LAST15"))
	assert.Equal(t, RangeLast30, ParseDateRange("last30"))
	assert.Equal(t, RangeAll, ParseDateRange("all"))
	assert.Equal(t, RangeLast30, ParseDateRange("fortnight"), "unknown ranges fall back to 30 days")
	assert.Equal(t, RangeLast30, ParseDateRange(""))
}

func TestDateRange_Contains(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	recent := Session{Date: "2025-03-28T10:00:00.000Z"}
	edge := Session{Date: "2025-03-24T12:00:00.000Z"}
	old := Session{Date: "2025-02-01"}
	garbage := Session{Date: "not a date"}

	assert.True(t, RangeLast7.Contains(recent, now))
	assert.True(t, RangeLast7.Contains(edge, now), "cutoff is inclusive")
	assert.False(t, RangeLast7.Contains(old, now))
	assert.True(t, RangeLast30.Contains(edge, now))
	assert.False(t, RangeLast30.Contains(old, now))
	assert.False(t, RangeLast30.Contains(garbage, now), "unparseable dates fall outside bounded ranges")

	assert.True(t, RangeAll.Contains(old, now))
	assert.True(t, RangeAll.Contains(garbage, now))
	assert.Nil(t, RangeAll.Cutoff(now))
}
