package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ReceiptStatusPill returns a colored indicator for a receipt status.
func ReceiptStatusPill(status domain.ReceiptStatus) string {
	switch status {
	case domain.ReceiptPending:
		return StyleYellow.Render("○ Pending")
	case domain.ReceiptPaid:
		return StyleGreen.Render("● Paid")
	case domain.ReceiptUnderReview:
		return StyleBlue.Render("◐ Under Review")
	default:
		return StyleDim.Render(string(status))
	}
}

// RoleBadge renders the signed-in role.
func RoleBadge(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return StylePurple.Render("ADMIN")
	case domain.RoleMentor:
		return StyleBlue.Render("MENTOR")
	default:
		return StyleDim.Render(strings.ToUpper(string(role)))
	}
}

// AmountStyled colors negative amounts red.
func AmountStyled(amount int) string {
	text := FormatINR(float64(amount))
	if amount < 0 {
		return StyleRed.Render(text)
	}
	return StyleGreen.Render(text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
