package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	sessions := []domain.Session{
		{ID: "s1", MentorName: "Jane Smith", Date: "2025-03-10", Type: "Live Session", Duration: 60, RatePerHour: 4000},
		{ID: "s2", MentorName: "John Davis", Date: "2025-03-11", Type: "Evaluation", Duration: 45, RatePerHour: 3333},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, sessions))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Mentor,Type,Duration,Rate,Amount", lines[0])
	assert.Equal(t, "2025-03-10,Jane Smith,Live Session,60,4000,4000.0000000000005", lines[1])
	assert.Equal(t, "2025-03-11,John Davis,Evaluation,45,3333,2499.75", lines[2])
}

func TestExportCSV_AmountUsesPerMinuteRate(t *testing.T) {
	tests := []struct {
		rate, duration int
		want           string
	}{
		{1, 23, "0.3833333333333333"},
		{4000, 30, "2000.0000000000002"},
		{4000, 45, "3000"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		s := domain.Session{ID: "s", MentorName: "M", Date: "d", Type: "t", Duration: tt.duration, RatePerHour: tt.rate}
		require.NoError(t, ExportCSV(&buf, []domain.Session{s}))
		assert.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), ","+tt.want),
			"rate=%d duration=%d: %q", tt.rate, tt.duration, buf.String())
	}
}

func TestExportCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))
	assert.Equal(t, ExportHeader+"\n", buf.String())
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "sessions-export-2025-03-14.csv", ExportFileName("2025-03-14"))
}
