package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/edpay/internal/domain"
)

// ExportHeader is the first line written by ExportCSV.
const ExportHeader = "Date,Mentor,Type,Duration,Rate,Amount"

// ExportCSV writes one line per session with its amount, computed as the
// per-minute rate times duration. Values are joined with bare commas, the same
// unquoted format ParseCSV reads.
func ExportCSV(w io.Writer, sessions []domain.Session) error {
	if _, err := io.WriteString(w, ExportHeader+"\n"); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range sessions {
		line := strings.Join([]string{
			s.Date,
			s.MentorName,
			s.Type,
			strconv.Itoa(s.Duration),
			strconv.Itoa(s.RatePerHour),
			strconv.FormatFloat(exportAmount(s), 'f', -1, 64),
		}, ",")
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("writing csv row for session %s: %w", s.ID, err)
		}
	}
	return nil
}

// exportAmount differs from Session.BaseAmount in the last digit for some
// inputs; exported files keep the per-minute order of operations.
func exportAmount(s domain.Session) float64 {
	return float64(s.RatePerHour) / 60 * float64(s.Duration)
}

// ExportFileName returns the default export file name for the given day.
func ExportFileName(day string) string {
	return "sessions-export-" + day + ".csv"
}
