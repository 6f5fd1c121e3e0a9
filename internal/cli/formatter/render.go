package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/edpay/internal/contract"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
)

const chartWidth = 24

func FormatMentorTable(mentors []*domain.Mentor) string {
	rows := make([][]string, 0, len(mentors))
	for _, m := range mentors {
		rows = append(rows, []string{m.ID, Bold(m.Name), Dim(m.Email)})
	}
	return RenderTable([]string{"ID", "NAME", "EMAIL"}, rows)
}

func FormatSessionTable(sessions []*domain.Session) string {
	rows := make([][]string, 0, len(sessions))
	var total float64
	for _, s := range sessions {
		total += s.BaseAmount()
		rows = append(rows, []string{
			TruncID(s.ID),
			FormatSessionDate(s.Date),
			s.MentorName,
			s.Type,
			FormatDuration(s.Duration),
			FormatINR(float64(s.RatePerHour)),
			FormatINR(s.BaseAmount()),
		})
	}
	table := RenderTable([]string{"ID", "DATE", "MENTOR", "TYPE", "DURATION", "RATE/HR", "AMOUNT"}, rows, 5, 6)
	return table + Dim(fmt.Sprintf("%d sessions, %s before deductions", len(sessions), FormatINR(total))) + "\n"
}

func FormatReceiptTable(receipts []*domain.Receipt) string {
	rows := make([][]string, 0, len(receipts))
	for _, r := range receipts {
		rows = append(rows, []string{
			TruncID(r.ID),
			FormatDay(r.GeneratedAt),
			r.MentorName,
			strconv.Itoa(len(r.Sessions)),
			AmountStyled(r.TotalAmount),
			ReceiptStatusPill(r.Status),
		})
	}
	return RenderTable([]string{"ID", "GENERATED", "MENTOR", "SESSIONS", "TOTAL", "STATUS"}, rows, 3, 4)
}

// FormatReceipt renders a single receipt. sessions may be shorter than the
// manifest when covered sessions have since been deleted.
func FormatReceipt(r *domain.Receipt, sessions map[string]*domain.Session) string {
	var b strings.Builder
	b.WriteString(RenderKV([][2]string{
		{"Receipt", r.ID},
		{"Mentor", fmt.Sprintf("%s (%s)", r.MentorName, r.MentorID)},
		{"Generated", r.GeneratedAt.Format("2 Jan 2006 15:04 MST")},
		{"Status", ReceiptStatusPill(r.Status)},
		{"Total", AmountStyled(r.TotalAmount)},
	}))

	b.WriteString("\n" + Header("Sessions") + "\n")
	if len(r.Sessions) == 0 {
		b.WriteString(Dim("none") + "\n")
	}
	for i, id := range r.Sessions {
		s, ok := sessions[id]
		if !ok {
			b.WriteString(fmt.Sprintf("%2d. %s %s\n", i+1, TruncID(id), Dim("(removed)")))
			continue
		}
		b.WriteString(fmt.Sprintf("%2d. %s  %s  %s  %s\n", i+1, TruncID(id),
			FormatSessionDate(s.Date), s.Type, FormatDuration(s.Duration)))
	}
	return RenderBox("Payout Receipt", strings.TrimRight(b.String(), "\n"))
}

// FormatBreakdown shows each step of a payout calculation.
func FormatBreakdown(title string, res payout.Result, cfg *payout.Config) string {
	if cfg == nil {
		cfg = payout.DefaultConfig()
	}
	fee := domain.Float64FromPtrWithDefault(0, cfg.PlatformFeePercentage)
	gst := domain.Float64FromPtrWithDefault(0, cfg.GSTPercentage)

	pairs := [][2]string{
		{"Base amount", FormatINR(res.Base)},
		{"Platform fee (" + FormatPercent(fee) + ")", "-" + FormatINR(res.PlatformFee)},
		{"Subtotal", FormatINR(res.Subtotal)},
		{"GST (" + FormatPercent(gst) + ")", "-" + FormatINR(res.GST)},
	}
	for _, c := range cfg.AdditionalCharges {
		pairs = append(pairs, [2]string{c.Name, "-" + FormatINR(c.Amount)})
	}
	pairs = append(pairs, [2]string{"Payout", Bold(AmountStyled(res.Total))})
	return RenderBox(title, strings.TrimRight(RenderKV(pairs), "\n"))
}

func FormatAdminDashboard(resp *contract.AdminDashboardResponse) string {
	var b strings.Builder

	b.WriteString(Header("Admin Dashboard") + "\n")
	b.WriteString(Dim(resp.Range.String()+" as of "+FormatDay(resp.GeneratedAt)) + "\n\n")
	b.WriteString(RenderKV([][2]string{
		{"Total sessions", strconv.Itoa(resp.TotalSessions)},
		{"Total payout", AmountStyled(resp.TotalPayout)},
		{"Active mentors", strconv.Itoa(resp.ActiveMentors)},
		{"Pending receipts", strconv.Itoa(resp.PendingReceipts)},
	}))

	if len(resp.Mentors) == 0 {
		b.WriteString("\n" + Dim("No sessions in this range.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Mentors))
	bars := make([]Bar, 0, len(resp.Mentors))
	for _, m := range resp.Mentors {
		rows = append(rows, []string{
			m.MentorName,
			strconv.Itoa(m.SessionCount),
			FormatDuration(m.TotalMinutes),
			FormatINR(m.BaseAmount),
			AmountStyled(m.Payout),
		})
		bars = append(bars, Bar{Label: m.MentorName, Value: m.BaseAmount, Text: FormatINR(m.BaseAmount)})
	}
	b.WriteString("\n" + Header("Mentors") + "\n")
	b.WriteString(RenderTable([]string{"MENTOR", "SESSIONS", "TIME", "EARNED", "PAYOUT"}, rows, 1, 3, 4))

	b.WriteString("\n" + Header("Earnings by mentor") + "\n")
	b.WriteString(RenderBars(bars, chartWidth))

	typeBars := make([]Bar, 0, len(resp.SessionTypes))
	for _, st := range resp.SessionTypes {
		typeBars = append(typeBars, Bar{Label: st.Type, Value: float64(st.Count), Text: strconv.Itoa(st.Count)})
	}
	b.WriteString("\n" + Header("Session types") + "\n")
	b.WriteString(RenderBars(typeBars, chartWidth))
	return b.String()
}

func FormatMentorDashboard(resp *contract.MentorDashboardResponse, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header(resp.Mentor.Name) + "\n")
	b.WriteString(RenderKV([][2]string{
		{"Sessions", fmt.Sprintf("%d (%s)", resp.SessionCount, FormatDuration(resp.TotalMinutes))},
		{"Pending payout", fmt.Sprintf("%s %s", FormatINR(float64(resp.PendingAmount)),
			Dim(fmt.Sprintf("from %d receipts", resp.PendingCount)))},
		{"Paid out", fmt.Sprintf("%s %s", FormatINR(float64(resp.PaidAmount)),
			Dim(fmt.Sprintf("from %d receipts", resp.PaidCount)))},
	}))

	b.WriteString("\n" + Header("Receipts") + "\n")
	if len(resp.Receipts) == 0 {
		b.WriteString(Dim("No receipts yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(resp.Receipts))
		for _, r := range resp.Receipts {
			rows = append(rows, []string{
				TruncID(r.ID),
				HumanTimestamp(r.GeneratedAt, now),
				strconv.Itoa(len(r.Sessions)),
				AmountStyled(r.TotalAmount),
				ReceiptStatusPill(r.Status),
			})
		}
		b.WriteString(RenderTable([]string{"ID", "GENERATED", "SESSIONS", "TOTAL", "STATUS"}, rows, 2, 3))
	}
	return b.String()
}
