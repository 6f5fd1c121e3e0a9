package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
)

// Recognized header names. Matching is case-sensitive.
const (
	ColMentorID    = "mentorId"
	ColMentorName  = "mentorName"
	ColDate        = "date"
	ColType        = "type"
	ColDuration    = "duration"
	ColRatePerHour = "ratePerHour"
)

// ParseCSV converts a comma-delimited table into sessions.
//
// The first line names the columns; each later line is split on commas and
// matched to the headers by position. There is no quoting: a value holding a
// comma shifts every column after it. No line is rejected. Missing or
// unusable fields take the defaults in domain, and every row gets a fresh id.
func ParseCSV(content string, clock payout.Clock, ids payout.IDGenerator) []domain.Session {
	clock = payout.ClockOrSystem(clock)
	ids = payout.IDsOrUUID(ids)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	headers := splitTrimmed(lines[0])

	sessions := make([]domain.Session, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitTrimmed(line)
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			} else {
				row[h] = ""
			}
		}
		sessions = append(sessions, rowToSession(row, clock, ids))
	}
	return sessions
}

// ParseCSVReader reads all of r and parses it with ParseCSV.
func ParseCSVReader(r io.Reader, clock payout.Clock, ids payout.IDGenerator) ([]domain.Session, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return ParseCSV(string(data), clock, ids), nil
}

func rowToSession(row map[string]string, clock payout.Clock, ids payout.IDGenerator) domain.Session {
	now := clock.Now()
	return domain.Session{
		ID:          ids.NewID(),
		MentorID:    row[ColMentorID],
		MentorName:  row[ColMentorName],
		Date:        domain.CoalesceStr(row[ColDate], domain.FormatTimestamp(now)),
		Type:        domain.CoalesceStr(row[ColType], domain.DefaultSessionType),
		Duration:    leadingIntOr(row[ColDuration], domain.DefaultDuration),
		RatePerHour: leadingIntOr(row[ColRatePerHour], domain.DefaultRatePerHour),
		CreatedAt:   now,
	}
}

func splitTrimmed(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// leadingIntOr parses the integer prefix of s ("90min" -> 90, "12.5" -> 12).
// A missing prefix or a zero value yields fallback.
func leadingIntOr(s string, fallback int) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return fallback
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return fallback
	}
	return n
}
