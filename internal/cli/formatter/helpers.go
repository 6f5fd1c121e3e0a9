package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatINR formats amount as whole rupees with Indian digit grouping:
// the last three digits, then groups of two (₹12,34,567). Halves round away
// from zero.
func FormatINR(amount float64) string {
	r := math.Round(amount)
	if r == 0 {
		return "₹0"
	}
	sign := ""
	if r < 0 {
		sign = "-"
		r = -r
	}
	return sign + "₹" + groupIndian(strconv.FormatFloat(r, 'f', 0, 64))
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

// FormatSessionDate renders an ISO session date as "14 Mar 2025". Dates that
// do not parse are shown as written.
func FormatSessionDate(date string) string {
	t, ok := domain.ParseSessionDate(date)
	if !ok {
		return date
	}
	return FormatDay(t)
}

// FormatDay renders t as "14 Mar 2025".
func FormatDay(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// FormatDuration renders minutes as "45 mins", "2 hrs" or "1 hr 30 mins".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	plural := func(n int, unit string) string {
		if n > 1 {
			return fmt.Sprintf("%d %ss", n, unit)
		}
		return fmt.Sprintf("%d %s", n, unit)
	}

	if hours == 0 {
		return fmt.Sprintf("%d mins", mins)
	}
	if mins == 0 {
		return plural(hours, "hr")
	}
	return plural(hours, "hr") + " " + plural(mins, "min")
}

// FormatPercent trims trailing zeros: 5 -> "5%", 2.5 -> "2.5%".
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanTimestamp returns a relative description of t as seen from now.
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return FormatDay(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return FormatDay(t)
	}
}
